package usecase

import (
	"errors"
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
	"vidtube/pkg/response"

	"gorm.io/gorm"
)

type LikeUseCase interface {
	ToggleVideoLike(userID, videoID string) (*entity.Like, bool, error)
	ToggleCommentLike(userID, commentID string) (*entity.Like, bool, error)
	ToggleTweetLike(userID, tweetID string) (*entity.Like, bool, error)
	GetLikedVideos(userID string) ([]*entity.LikedVideo, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	queueClient *queue.Client,
	log *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		queueClient: queueClient,
		logger:      log,
	}
}

// ToggleVideoLike removes an existing like first; only when nothing was
// removed does it insert, so the toggle needs no check-then-act window.
func (uc *likeUseCase) ToggleVideoLike(userID, videoID string) (*entity.Like, bool, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, response.NotFound("Video not found")
		}
		return nil, false, fmt.Errorf("failed to load video: %w", err)
	}

	removed, err := uc.likeRepo.DeleteVideoLike(userID, videoID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unlike video: %w", err)
	}
	if removed > 0 {
		return nil, false, nil
	}

	like, err := uc.likeRepo.CreateVideoLike(userID, videoID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to like video: %w", err)
	}

	uc.notifyLike(video.OwnerID, userID, "video", videoID)
	return like, true, nil
}

func (uc *likeUseCase) ToggleCommentLike(userID, commentID string) (*entity.Like, bool, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, response.NotFound("Comment not found")
		}
		return nil, false, fmt.Errorf("failed to load comment: %w", err)
	}

	removed, err := uc.likeRepo.DeleteCommentLike(userID, commentID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unlike comment: %w", err)
	}
	if removed > 0 {
		return nil, false, nil
	}

	like, err := uc.likeRepo.CreateCommentLike(userID, commentID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to like comment: %w", err)
	}

	uc.notifyLike(comment.OwnerID, userID, "comment", commentID)
	return like, true, nil
}

func (uc *likeUseCase) ToggleTweetLike(userID, tweetID string) (*entity.Like, bool, error) {
	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, response.NotFound("Tweet not found")
		}
		return nil, false, fmt.Errorf("failed to load tweet: %w", err)
	}

	removed, err := uc.likeRepo.DeleteTweetLike(userID, tweetID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unlike tweet: %w", err)
	}
	if removed > 0 {
		return nil, false, nil
	}

	like, err := uc.likeRepo.CreateTweetLike(userID, tweetID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to like tweet: %w", err)
	}

	uc.notifyLike(tweet.OwnerID, userID, "tweet", tweetID)
	return like, true, nil
}

func (uc *likeUseCase) GetLikedVideos(userID string) ([]*entity.LikedVideo, error) {
	liked, err := uc.likeRepo.GetLikedVideos(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked videos: %w", err)
	}
	return liked, nil
}

func (uc *likeUseCase) notifyLike(ownerID, likerID, targetType, targetID string) {
	if uc.queueClient == nil || ownerID == likerID {
		return
	}
	go func() {
		task := map[string]interface{}{
			"type":        "like",
			"user_id":     ownerID,
			"liker_id":    likerID,
			"target_type": targetType,
			"target_id":   targetID,
			"priority":    3,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish like notification task: %v", err)
		}
	}()
}
