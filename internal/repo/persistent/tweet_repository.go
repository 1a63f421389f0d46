package persistent

import (
	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *entity.Tweet) error
	GetByID(id string) (*entity.Tweet, error)
	GetByOwner(ownerID string) ([]*entity.Tweet, error)
	Update(tweet *entity.Tweet) error
	Delete(id string) error
	Exists(id string) (bool, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *entity.Tweet) error {
	tweetModel := &model.TweetModel{
		OwnerID: tweet.OwnerID,
		Content: tweet.Content,
	}
	if err := r.db.Create(tweetModel).Error; err != nil {
		return err
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(id string) (*entity.Tweet, error) {
	var tweetModel model.TweetModel
	if err := r.db.Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, err
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) GetByOwner(ownerID string) ([]*entity.Tweet, error) {
	var tweetModels []model.TweetModel
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&tweetModels).Error; err != nil {
		return nil, err
	}

	tweets := make([]*entity.Tweet, len(tweetModels))
	for i := range tweetModels {
		tweets[i] = ToTweetEntity(&tweetModels[i])
	}
	return tweets, nil
}

func (r *tweetRepository) Update(tweet *entity.Tweet) error {
	return r.db.Model(&model.TweetModel{}).Where("id = ?", tweet.ID).
		Update("content", tweet.Content).Error
}

func (r *tweetRepository) Delete(id string) error {
	return r.db.Delete(&model.TweetModel{}, "id = ?", id).Error
}

func (r *tweetRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.TweetModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
