package usecase

import (
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/response"
)

type DashboardUseCase interface {
	GetChannelStats(channelID string) (*entity.ChannelStats, error)
	GetChannelVideos(channelID string) ([]*entity.Video, error)
}

type dashboardUseCase struct {
	videoRepo persistent.VideoRepository
	likeRepo  persistent.LikeRepository
	userRepo  persistent.UserRepository
}

func NewDashboardUseCase(
	videoRepo persistent.VideoRepository,
	likeRepo persistent.LikeRepository,
	userRepo persistent.UserRepository,
) DashboardUseCase {
	return &dashboardUseCase{
		videoRepo: videoRepo,
		likeRepo:  likeRepo,
		userRepo:  userRepo,
	}
}

func (uc *dashboardUseCase) GetChannelStats(channelID string) (*entity.ChannelStats, error) {
	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check channel: %w", err)
	}
	if !exists {
		return nil, response.BadRequest("Channel not found")
	}

	totalVideos, err := uc.videoRepo.CountByOwner(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}

	viewCount, err := uc.videoRepo.SumViewsByOwner(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum views: %w", err)
	}

	totalLikes, err := uc.likeRepo.CountVideoLikesByChannel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &entity.ChannelStats{
		TotalVideos: totalVideos,
		ViewCount:   viewCount,
		TotalLikes:  totalLikes,
	}, nil
}

func (uc *dashboardUseCase) GetChannelVideos(channelID string) ([]*entity.Video, error) {
	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check channel: %w", err)
	}
	if !exists {
		return nil, response.NotFound("Channel not found")
	}

	videos, err := uc.videoRepo.GetByOwner(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel videos: %w", err)
	}
	return videos, nil
}
