package usecase

import (
	"errors"
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/response"

	"gorm.io/gorm"
)

type PlaylistUseCase interface {
	CreatePlaylist(userID, name, description string) (*entity.Playlist, error)
	GetUserPlaylists(userID string) ([]*entity.PlaylistStats, error)
	GetPlaylistByID(playlistID string) (*entity.PlaylistStats, error)
	AddVideoToPlaylist(playlistID, videoID string) (*entity.Playlist, error)
	RemoveVideoFromPlaylist(playlistID, videoID string) (*entity.Playlist, error)
	UpdatePlaylist(playlistID, userID string, name, description *string) (*entity.Playlist, error)
	DeletePlaylist(playlistID, userID string) (*entity.Playlist, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	userRepo     persistent.UserRepository
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

func (uc *playlistUseCase) CreatePlaylist(userID, name, description string) (*entity.Playlist, error) {
	playlist := &entity.Playlist{
		OwnerID:     userID,
		Name:        name,
		Description: description,
	}
	if err := uc.playlistRepo.Create(playlist); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) GetUserPlaylists(userID string) ([]*entity.PlaylistStats, error) {
	exists, err := uc.userRepo.Exists(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, response.NotFound("User not found")
	}

	playlists, err := uc.playlistRepo.GetStatsByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

func (uc *playlistUseCase) GetPlaylistByID(playlistID string) (*entity.PlaylistStats, error) {
	stats, err := uc.playlistRepo.GetStatsByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Playlist not found")
		}
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}
	return stats, nil
}

func (uc *playlistUseCase) AddVideoToPlaylist(playlistID, videoID string) (*entity.Playlist, error) {
	if _, err := uc.playlistRepo.GetByID(playlistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Playlist not found")
		}
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}

	exists, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check video: %w", err)
	}
	if !exists {
		return nil, response.NotFound("Video not found")
	}

	hasVideo, err := uc.playlistRepo.HasVideo(playlistID, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check playlist membership: %w", err)
	}
	if hasVideo {
		return nil, response.BadRequest("Video already added to playlist")
	}

	if err := uc.playlistRepo.AddVideo(playlistID, videoID); err != nil {
		return nil, fmt.Errorf("failed to add video to playlist: %w", err)
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload playlist: %w", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) RemoveVideoFromPlaylist(playlistID, videoID string) (*entity.Playlist, error) {
	if _, err := uc.playlistRepo.GetByID(playlistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Playlist not found")
		}
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}

	removed, err := uc.playlistRepo.RemoveVideo(playlistID, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove video from playlist: %w", err)
	}
	if removed == 0 {
		return nil, response.BadRequest("Video not found in playlist")
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload playlist: %w", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) getOwnedPlaylist(playlistID, userID string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Playlist not found")
		}
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}
	if playlist.OwnerID != userID {
		return nil, response.Forbidden("You are not authorized to modify this playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) UpdatePlaylist(playlistID, userID string, name, description *string) (*entity.Playlist, error) {
	playlist, err := uc.getOwnedPlaylist(playlistID, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		playlist.Name = *name
	}
	if description != nil {
		playlist.Description = *description
	}

	if err := uc.playlistRepo.Update(playlist); err != nil {
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) DeletePlaylist(playlistID, userID string) (*entity.Playlist, error) {
	playlist, err := uc.getOwnedPlaylist(playlistID, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.playlistRepo.Delete(playlistID); err != nil {
		return nil, fmt.Errorf("failed to delete playlist: %w", err)
	}
	return playlist, nil
}
