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

type CommentUseCase interface {
	GetVideoComments(videoID string, page, limit int) (*entity.CommentPage, error)
	AddComment(videoID, userID, content string) (*entity.Comment, error)
	UpdateComment(commentID, userID, content string) (*entity.Comment, error)
	DeleteComment(commentID, userID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	queueClient *queue.Client,
	log *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		queueClient: queueClient,
		logger:      log,
	}
}

func (uc *commentUseCase) GetVideoComments(videoID string, page, limit int) (*entity.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	comments, err := uc.commentRepo.GetByVideoID(videoID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (uc *commentUseCase) AddComment(videoID, userID, content string) (*entity.Comment, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Video not found")
		}
		return nil, fmt.Errorf("failed to load video: %w", err)
	}

	comment := &entity.Comment{
		VideoID: videoID,
		OwnerID: userID,
		Content: content,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if uc.queueClient != nil && video.OwnerID != userID {
		go uc.publishNotification(map[string]interface{}{
			"type":         "new_comment",
			"user_id":      video.OwnerID,
			"commenter_id": userID,
			"video_id":     videoID,
			"comment_id":   comment.ID,
			"priority":     3,
		})
	}

	return comment, nil
}

func (uc *commentUseCase) UpdateComment(commentID, userID, content string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Comment not found")
		}
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}

	if comment.OwnerID != userID {
		return nil, response.Forbidden("You are not authorized to update this comment")
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Comment not found")
		}
		return fmt.Errorf("failed to load comment: %w", err)
	}

	if comment.OwnerID != userID {
		return response.Forbidden("You are not authorized to delete this comment")
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (uc *commentUseCase) publishNotification(task map[string]interface{}) {
	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Error("Failed to publish notification task: %v", err)
	}
}
