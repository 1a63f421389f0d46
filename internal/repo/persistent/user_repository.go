package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateRefreshToken(userID, token string) error
	Exists(id string) (bool, error)
	UpsertWatchHistory(userID, videoID string) error
	GetWatchHistory(userID string) ([]*entity.WatchHistoryItem, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdateRefreshToken(userID, token string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", userID).
		Update("refresh_token", token).Error
}

func (r *userRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpsertWatchHistory(userID, videoID string) error {
	entry := &model.WatchHistoryModel{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
	}).Create(entry).Error
}

func (r *userRepository) GetWatchHistory(userID string) ([]*entity.WatchHistoryItem, error) {
	var entries []model.WatchHistoryModel
	if err := r.db.Where("user_id = ?", userID).
		Order("watched_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return []*entity.WatchHistoryItem{}, nil
	}

	videoIDs := make([]string, len(entries))
	for i, e := range entries {
		videoIDs[i] = e.VideoID
	}

	var videoModels []model.VideoModel
	if err := r.db.Where("id IN ?", videoIDs).Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videosByID := make(map[string]*entity.Video, len(videoModels))
	for i := range videoModels {
		videosByID[videoModels[i].ID] = ToVideoEntity(&videoModels[i])
	}

	items := make([]*entity.WatchHistoryItem, 0, len(entries))
	for _, e := range entries {
		video, ok := videosByID[e.VideoID]
		if !ok {
			// video deleted since it was watched
			continue
		}
		items = append(items, &entity.WatchHistoryItem{
			Video:     video,
			WatchedAt: e.WatchedAt,
		})
	}
	return items, nil
}
