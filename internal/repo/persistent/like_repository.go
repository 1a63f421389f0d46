package persistent

import (
	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository implements the toggle halves as single statements: deletes
// report how many rows went away and creates rely on ON CONFLICT DO NOTHING
// against the unique (user, target) indexes, so concurrent toggles cannot
// produce duplicate links.
type LikeRepository interface {
	CreateVideoLike(userID, videoID string) (*entity.Like, error)
	DeleteVideoLike(userID, videoID string) (int64, error)
	CreateCommentLike(userID, commentID string) (*entity.Like, error)
	DeleteCommentLike(userID, commentID string) (int64, error)
	CreateTweetLike(userID, tweetID string) (*entity.Like, error)
	DeleteTweetLike(userID, tweetID string) (int64, error)
	GetLikedVideos(userID string) ([]*entity.LikedVideo, error)
	CountVideoLikesByChannel(channelID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) createLike(likeModel *model.LikeModel) (*entity.Like, error) {
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(likeModel).Error; err != nil {
		return nil, err
	}
	return ToLikeEntity(likeModel), nil
}

func (r *likeRepository) CreateVideoLike(userID, videoID string) (*entity.Like, error) {
	return r.createLike(&model.LikeModel{LikedBy: userID, VideoID: &videoID})
}

func (r *likeRepository) DeleteVideoLike(userID, videoID string) (int64, error) {
	result := r.db.Where("liked_by = ? AND video_id = ?", userID, videoID).
		Delete(&model.LikeModel{})
	return result.RowsAffected, result.Error
}

func (r *likeRepository) CreateCommentLike(userID, commentID string) (*entity.Like, error) {
	return r.createLike(&model.LikeModel{LikedBy: userID, CommentID: &commentID})
}

func (r *likeRepository) DeleteCommentLike(userID, commentID string) (int64, error) {
	result := r.db.Where("liked_by = ? AND comment_id = ?", userID, commentID).
		Delete(&model.LikeModel{})
	return result.RowsAffected, result.Error
}

func (r *likeRepository) CreateTweetLike(userID, tweetID string) (*entity.Like, error) {
	return r.createLike(&model.LikeModel{LikedBy: userID, TweetID: &tweetID})
}

func (r *likeRepository) DeleteTweetLike(userID, tweetID string) (int64, error) {
	result := r.db.Where("liked_by = ? AND tweet_id = ?", userID, tweetID).
		Delete(&model.LikeModel{})
	return result.RowsAffected, result.Error
}

func (r *likeRepository) GetLikedVideos(userID string) ([]*entity.LikedVideo, error) {
	var likeModels []model.LikeModel
	if err := r.db.Where("liked_by = ? AND video_id IS NOT NULL", userID).
		Order("created_at DESC").Find(&likeModels).Error; err != nil {
		return nil, err
	}

	if len(likeModels) == 0 {
		return []*entity.LikedVideo{}, nil
	}

	videoIDs := make([]string, len(likeModels))
	for i, l := range likeModels {
		videoIDs[i] = *l.VideoID
	}

	var videoModels []model.VideoModel
	if err := r.db.Where("id IN ?", videoIDs).Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videosByID := make(map[string]*entity.Video, len(videoModels))
	for i := range videoModels {
		videosByID[videoModels[i].ID] = ToVideoEntity(&videoModels[i])
	}

	liked := make([]*entity.LikedVideo, 0, len(likeModels))
	for _, l := range likeModels {
		video, ok := videosByID[*l.VideoID]
		if !ok {
			// video deleted after it was liked
			continue
		}
		liked = append(liked, &entity.LikedVideo{
			ID:        l.ID,
			LikedBy:   l.LikedBy,
			Video:     video,
			CreatedAt: l.CreatedAt,
		})
	}
	return liked, nil
}

func (r *likeRepository) CountVideoLikesByChannel(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("videos.owner_id = ? AND videos.deleted_at IS NULL", channelID).
		Count(&count).Error
	return count, err
}
