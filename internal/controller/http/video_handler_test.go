package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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

// MockVideoUseCase is a mock implementation of VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) ListVideos(params usecase.ListVideosParams) (*entity.VideoList, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoList), args.Error(1)
}

func (m *MockVideoUseCase) PublishVideo(userID, title, description string, duration float64, videoFile, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	args := m.Called(userID, title, description, duration, videoFile, thumbnail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) GetVideoByID(videoID, viewerID string) (*entity.VideoWithOwner, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoWithOwner), args.Error(1)
}

func (m *MockVideoUseCase) UpdateVideo(videoID, userID string, title, description, thumbnail *string) (*entity.Video, error) {
	args := m.Called(videoID, userID, title, description, thumbnail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) DeleteVideo(videoID, userID string) error {
	args := m.Called(videoID, userID)
	return args.Error(0)
}

func (m *MockVideoUseCase) TogglePublish(videoID, userID string) (*entity.Video, error) {
	args := m.Called(videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) RecordView(videoID, userID string) (bool, error) {
	args := m.Called(videoID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoUseCase) GetWatchHistory(userID string) ([]*entity.WatchHistoryItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WatchHistoryItem), args.Error(1)
}

var _ usecase.VideoUseCase = (*MockVideoUseCase)(nil)

func TestListVideos_Pagination(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos", authed("user-123", handler.ListVideos))

	list := &entity.VideoList{
		Videos:      []*entity.Video{{ID: testVideoID, Title: "a video"}},
		CurrentPage: 2,
		TotalVideos: 25,
		TotalPages:  3,
	}
	mockUseCase.On("ListVideos", usecase.ListVideosParams{
		Page:  2,
		Limit: 10,
		Query: "cats",
	}).Return(list, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?page=2&limit=10&query=cats", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["currentPage"])
	assert.Equal(t, float64(25), data["totalVideos"])
	assert.Equal(t, float64(3), data["totalPages"])
	mockUseCase.AssertExpectations(t)
}

func TestListVideos_InvalidOwnerFilter(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos", authed("user-123", handler.ListVideos))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?userId=not-a-uuid", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid user id")
	mockUseCase.AssertNotCalled(t, "ListVideos")
}

func TestGetVideo_Success(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:videoId", authed("user-123", handler.GetVideo))

	video := &entity.VideoWithOwner{
		Video: entity.Video{ID: testVideoID, Title: "a video"},
		Owner: entity.UserSummary{ID: testUserID, Username: "creator"},
	}
	mockUseCase.On("GetVideoByID", testVideoID, "user-123").Return(video, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/"+testVideoID, nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Video fetched successfully")
	assert.Contains(t, w.Body.String(), "creator")
	mockUseCase.AssertExpectations(t)
}

func TestGetVideo_InvalidID(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:videoId", authed("user-123", handler.GetVideo))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/not-a-uuid", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid video id")
	mockUseCase.AssertNotCalled(t, "GetVideoByID")
}

func TestGetVideo_NotFound(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:videoId", authed("user-123", handler.GetVideo))

	mockUseCase.On("GetVideoByID", testVideoID, "user-123").
		Return(nil, response.NotFound("Video not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/"+testVideoID, nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateVideo_NoFields(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/videos/:videoId", authed("user-123", handler.UpdateVideo))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/videos/"+testVideoID, bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "At least one field is required")
	mockUseCase.AssertNotCalled(t, "UpdateVideo")
}

func TestTogglePublish_Success(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/videos/:videoId/toggle-publish", authed("user-123", handler.TogglePublish))

	video := &entity.Video{ID: testVideoID, OwnerID: "user-123", IsPublished: false}
	mockUseCase.On("TogglePublish", testVideoID, "user-123").Return(video, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/videos/"+testVideoID+"/toggle-publish", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Video publish status toggled successfully")
	mockUseCase.AssertExpectations(t)
}

func TestRecordView_Counted(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:videoId/view", authed("user-123", handler.RecordView))

	mockUseCase.On("RecordView", testVideoID, "user-123").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/"+testVideoID+"/view", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, "View counted", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["viewed"])
	mockUseCase.AssertExpectations(t)
}

func TestRecordView_AlreadyCounted(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:videoId/view", authed("user-123", handler.RecordView))

	mockUseCase.On("RecordView", testVideoID, "user-123").Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/"+testVideoID+"/view", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, "View already counted", body["message"])
	mockUseCase.AssertExpectations(t)
}

func TestGetWatchHistory_EmptyAllowed(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/history", authed("user-123", handler.GetWatchHistory))

	mockUseCase.On("GetWatchHistory", "user-123").Return([]*entity.WatchHistoryItem{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/history", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Watch history fetched successfully")
	mockUseCase.AssertExpectations(t)
}
