package usecase

import (
	"errors"
	"net/http"
	"testing"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlaylistRepository is a mock implementation of PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(id string) (*entity.Playlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetStatsByID(id string) (*entity.PlaylistStats, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistStats), args.Error(1)
}

func (m *MockPlaylistRepository) GetStatsByOwner(ownerID string) ([]*entity.PlaylistStats, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PlaylistStats), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(playlistID, videoID string) error {
	args := m.Called(playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(playlistID, videoID string) (int64, error) {
	args := m.Called(playlistID, videoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlaylistRepository) HasVideo(playlistID, videoID string) (bool, error) {
	args := m.Called(playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) Update(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)

func TestRemoveVideoFromPlaylist_AbsentIsBadRequest(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	uc := NewPlaylistUseCase(playlistRepo, nil, nil)

	playlist := &entity.Playlist{ID: "playlist-1", OwnerID: "user-1"}
	playlistRepo.On("GetByID", "playlist-1").Return(playlist, nil)
	playlistRepo.On("RemoveVideo", "playlist-1", "video-1").Return(int64(0), nil)

	_, err := uc.RemoveVideoFromPlaylist("playlist-1", "video-1")

	var apiErr *response.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Video not found in playlist", apiErr.Message)
}

func TestRemoveVideoFromPlaylist_Removed(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	uc := NewPlaylistUseCase(playlistRepo, nil, nil)

	playlist := &entity.Playlist{ID: "playlist-1", OwnerID: "user-1"}
	playlistRepo.On("GetByID", "playlist-1").Return(playlist, nil)
	playlistRepo.On("RemoveVideo", "playlist-1", "video-1").Return(int64(1), nil)

	got, err := uc.RemoveVideoFromPlaylist("playlist-1", "video-1")

	assert.NoError(t, err)
	assert.Equal(t, "playlist-1", got.ID)
	playlistRepo.AssertExpectations(t)
}

func TestDeletePlaylist_ReturnsDeletedPlaylist(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	uc := NewPlaylistUseCase(playlistRepo, nil, nil)

	playlist := &entity.Playlist{ID: "playlist-1", OwnerID: "user-1", Name: "Favorites"}
	playlistRepo.On("GetByID", "playlist-1").Return(playlist, nil)
	playlistRepo.On("Delete", "playlist-1").Return(nil)

	got, err := uc.DeletePlaylist("playlist-1", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "Favorites", got.Name)
	playlistRepo.AssertExpectations(t)
}

func TestDeletePlaylist_NotOwner(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	uc := NewPlaylistUseCase(playlistRepo, nil, nil)

	playlist := &entity.Playlist{ID: "playlist-1", OwnerID: "user-1"}
	playlistRepo.On("GetByID", "playlist-1").Return(playlist, nil)

	_, err := uc.DeletePlaylist("playlist-1", "intruder")

	var apiErr *response.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	playlistRepo.AssertNotCalled(t, "Delete")
}
