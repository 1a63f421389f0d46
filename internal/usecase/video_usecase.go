package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/pkg/s3"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ListVideosParams struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string
	UserID   string
}

type VideoUseCase interface {
	ListVideos(params ListVideosParams) (*entity.VideoList, error)
	PublishVideo(userID, title, description string, duration float64, videoFile, thumbnail *multipart.FileHeader) (*entity.Video, error)
	GetVideoByID(videoID, viewerID string) (*entity.VideoWithOwner, error)
	UpdateVideo(videoID, userID string, title, description, thumbnail *string) (*entity.Video, error)
	DeleteVideo(videoID, userID string) error
	TogglePublish(videoID, userID string) (*entity.Video, error)
	RecordView(videoID, userID string) (bool, error)
	GetWatchHistory(userID string) ([]*entity.WatchHistoryItem, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	userRepo    persistent.UserRepository
	s3Client    *s3.Client
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	s3Client *s3.Client,
	redisClient *redis.Client,
	log *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		s3Client:    s3Client,
		redisClient: redisClient,
		logger:      log,
	}
}

func (uc *videoUseCase) ListVideos(params ListVideosParams) (*entity.VideoList, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	videos, total, err := uc.videoRepo.List(persistent.VideoFilter{
		Query:    params.Query,
		OwnerID:  params.UserID,
		SortBy:   params.SortBy,
		SortType: params.SortType,
		Page:     params.Page,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	return &entity.VideoList{
		Videos:      videos,
		CurrentPage: params.Page,
		TotalVideos: total,
		TotalPages:  totalPages,
	}, nil
}

func (uc *videoUseCase) uploadMedia(prefix, fallbackContentType string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallbackContentType
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), filepath.Ext(file.Filename))
	return uc.s3Client.UploadFile(key, src, contentType)
}

func (uc *videoUseCase) PublishVideo(userID, title, description string, duration float64, videoFile, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	videoURL, err := uc.uploadMedia("videos", "video/mp4", videoFile)
	if err != nil {
		uc.logger.Error("Failed to upload video file: %v", err)
		return nil, response.Internal("Failed to upload video file")
	}

	thumbnailURL, err := uc.uploadMedia("thumbnails", "image/jpeg", thumbnail)
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail: %v", err)
		return nil, response.Internal("Failed to upload thumbnail")
	}

	video := &entity.Video{
		OwnerID:      userID,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Title:        title,
		Description:  description,
		Duration:     duration,
		IsPublished:  true,
	}

	if err := uc.videoRepo.Create(video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return video, nil
}

func (uc *videoUseCase) GetVideoByID(videoID, viewerID string) (*entity.VideoWithOwner, error) {
	video, err := uc.videoRepo.GetByIDWithOwner(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Video not found")
		}
		return nil, fmt.Errorf("failed to load video: %w", err)
	}

	if viewerID != "" {
		if err := uc.userRepo.UpsertWatchHistory(viewerID, videoID); err != nil {
			uc.logger.Warn("Failed to record watch history: %v", err)
		}
	}

	return video, nil
}

func (uc *videoUseCase) getOwnedVideo(videoID, userID string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Video not found")
		}
		return nil, fmt.Errorf("failed to load video: %w", err)
	}
	if video.OwnerID != userID {
		return nil, response.Forbidden("You are not authorized to modify this video")
	}
	return video, nil
}

func (uc *videoUseCase) UpdateVideo(videoID, userID string, title, description, thumbnail *string) (*entity.Video, error) {
	video, err := uc.getOwnedVideo(videoID, userID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		video.Title = *title
	}
	if description != nil {
		video.Description = *description
	}
	if thumbnail != nil {
		video.ThumbnailURL = *thumbnail
	}

	if err := uc.videoRepo.Update(video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return video, nil
}

func (uc *videoUseCase) DeleteVideo(videoID, userID string) error {
	if _, err := uc.getOwnedVideo(videoID, userID); err != nil {
		return err
	}
	if err := uc.videoRepo.Delete(videoID); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}

func (uc *videoUseCase) TogglePublish(videoID, userID string) (*entity.Video, error) {
	video, err := uc.getOwnedVideo(videoID, userID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := uc.videoRepo.Update(video); err != nil {
		return nil, fmt.Errorf("failed to toggle publish status: %w", err)
	}
	return video, nil
}

// RecordView counts at most one view per (video, user) pair, deduplicated in
// redis. Returns whether this call incremented the counter.
func (uc *videoUseCase) RecordView(videoID, userID string) (bool, error) {
	exists, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return false, fmt.Errorf("failed to check video: %w", err)
	}
	if !exists {
		return false, response.NotFound("Video not found")
	}

	ctx := context.Background()
	viewKey := fmt.Sprintf("video_viewed:%s:%s", videoID, userID)

	set, err := uc.redisClient.SetNX(ctx, viewKey, "1", 365*24*time.Hour).Result()
	if err != nil {
		return false, fmt.Errorf("failed to track view: %w", err)
	}
	if !set {
		return false, nil
	}

	if err := uc.videoRepo.IncrementViews(videoID); err != nil {
		return false, fmt.Errorf("failed to increment views: %w", err)
	}
	return true, nil
}

func (uc *videoUseCase) GetWatchHistory(userID string) ([]*entity.WatchHistoryItem, error) {
	items, err := uc.userRepo.GetWatchHistory(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load watch history: %w", err)
	}
	return items, nil
}
