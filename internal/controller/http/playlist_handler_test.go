package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlaylistUseCase is a mock implementation of PlaylistUseCase
type MockPlaylistUseCase struct {
	mock.Mock
}

func (m *MockPlaylistUseCase) CreatePlaylist(userID, name, description string) (*entity.Playlist, error) {
	args := m.Called(userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) GetUserPlaylists(userID string) ([]*entity.PlaylistStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PlaylistStats), args.Error(1)
}

func (m *MockPlaylistUseCase) GetPlaylistByID(playlistID string) (*entity.PlaylistStats, error) {
	args := m.Called(playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistStats), args.Error(1)
}

func (m *MockPlaylistUseCase) AddVideoToPlaylist(playlistID, videoID string) (*entity.Playlist, error) {
	args := m.Called(playlistID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) RemoveVideoFromPlaylist(playlistID, videoID string) (*entity.Playlist, error) {
	args := m.Called(playlistID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) UpdatePlaylist(playlistID, userID string, name, description *string) (*entity.Playlist, error) {
	args := m.Called(playlistID, userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) DeletePlaylist(playlistID, userID string) (*entity.Playlist, error) {
	args := m.Called(playlistID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

var _ usecase.PlaylistUseCase = (*MockPlaylistUseCase)(nil)

const (
	testPlaylistID = "c4b7e6d2-93a1-4f58-8b0c-2e5d7a9f3c61"
	testUserID     = "7d3f5a18-2b6c-4e90-a1d4-8f2c6b0e9a55"
)

func TestCreatePlaylist_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/playlists", authed("user-123", handler.CreatePlaylist))

	mockPlaylist := &entity.Playlist{ID: testPlaylistID, OwnerID: "user-123", Name: "Favorites", Description: "best of"}
	mockUseCase.On("CreatePlaylist", "user-123", "Favorites", "best of").Return(mockPlaylist, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists", bytes.NewBufferString(`{"name":"Favorites","description":"best of"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Playlist created successfully")
	mockUseCase.AssertExpectations(t)
}

func TestCreatePlaylist_MissingFields(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/playlists", authed("user-123", handler.CreatePlaylist))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists", bytes.NewBufferString(`{"name":"Favorites"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name and description are required")
	mockUseCase.AssertNotCalled(t, "CreatePlaylist")
}

func TestGetUserPlaylists_NoneFound(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/:userId/playlists", authed("user-123", handler.GetUserPlaylists))

	mockUseCase.On("GetUserPlaylists", testUserID).Return([]*entity.PlaylistStats{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/"+testUserID+"/playlists", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No playlists found")
	mockUseCase.AssertExpectations(t)
}

func TestAddVideo_AlreadyInPlaylist(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/playlists/:playlistId/videos/:videoId", authed("user-123", handler.AddVideo))

	mockUseCase.On("AddVideoToPlaylist", testPlaylistID, testVideoID).
		Return(nil, response.BadRequest("Video already added to playlist"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/playlists/"+testPlaylistID+"/videos/"+testVideoID, nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Video already added to playlist")
	mockUseCase.AssertExpectations(t)
}

func TestAddVideo_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/playlists/:playlistId/videos/:videoId", authed("user-123", handler.AddVideo))

	mockPlaylist := &entity.Playlist{ID: testPlaylistID, VideoIDs: []string{testVideoID}}
	mockUseCase.On("AddVideoToPlaylist", testPlaylistID, testVideoID).Return(mockPlaylist, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/playlists/"+testPlaylistID+"/videos/"+testVideoID, nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Video added to playlist successfully")
	mockUseCase.AssertExpectations(t)
}

func TestRemoveVideo_NotInPlaylist(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/playlists/:playlistId/videos/:videoId", authed("user-123", handler.RemoveVideo))

	mockUseCase.On("RemoveVideoFromPlaylist", testPlaylistID, testVideoID).
		Return(nil, response.BadRequest("Video not found in playlist"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/playlists/"+testPlaylistID+"/videos/"+testVideoID, nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found in playlist")
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePlaylist_NotOwner(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/playlists/:playlistId", authed("intruder", handler.UpdatePlaylist))

	name := "Renamed"
	mockUseCase.On("UpdatePlaylist", testPlaylistID, "intruder", &name, (*string)(nil)).
		Return(nil, response.Forbidden("You are not authorized to modify this playlist"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/playlists/"+testPlaylistID, bytes.NewBufferString(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePlaylist_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/playlists/:playlistId", authed("user-123", handler.DeletePlaylist))

	deleted := &entity.Playlist{ID: testPlaylistID, OwnerID: "user-123", Name: "Favorites"}
	mockUseCase.On("DeletePlaylist", testPlaylistID, "user-123").Return(deleted, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/playlists/"+testPlaylistID, nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Playlist deleted successfully")
	assert.Contains(t, w.Body.String(), testPlaylistID)
	mockUseCase.AssertExpectations(t)
}
