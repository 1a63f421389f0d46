package http

import (
	"bytes"
	"encoding/json"
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

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) GetVideoComments(videoID string, page, limit int) (*entity.CommentPage, error) {
	args := m.Called(videoID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommentPage), args.Error(1)
}

func (m *MockCommentUseCase) AddComment(videoID, userID, content string) (*entity.Comment, error) {
	args := m.Called(videoID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(commentID, userID, content string) (*entity.Comment, error) {
	args := m.Called(commentID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(commentID, userID string) error {
	args := m.Called(commentID, userID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

const testCommentID = "5a8e2d71-1f60-4c2e-b3a4-6c0d8e9f1a23"

func TestGetVideoComments_Pagination(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:videoId/comments", authed("user-123", handler.GetVideoComments))

	page := &entity.CommentPage{
		Comments: []*entity.CommentWithOwner{
			{Comment: entity.Comment{ID: testCommentID, VideoID: testVideoID, Content: "nice"}},
		},
		TotalDocs:  25,
		Page:       2,
		Limit:      10,
		TotalPages: 3,
	}
	mockUseCase.On("GetVideoComments", testVideoID, 2, 10).Return(page, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/"+testVideoID+"/comments?page=2&limit=10", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(25), data["totalDocs"])
	assert.Equal(t, float64(2), data["page"])
	assert.Equal(t, float64(3), data["totalPages"])
	mockUseCase.AssertExpectations(t)
}

func TestAddComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:videoId/comments", authed("user-123", handler.AddComment))

	mockComment := &entity.Comment{ID: testCommentID, VideoID: testVideoID, OwnerID: "user-123", Content: "nice"}
	mockUseCase.On("AddComment", testVideoID, "user-123", "nice").Return(mockComment, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/"+testVideoID+"/comments", bytes.NewBufferString(`{"content":"nice"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Comment added successfully")
	mockUseCase.AssertExpectations(t)
}

func TestAddComment_VideoNotFound(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:videoId/comments", authed("user-123", handler.AddComment))

	mockUseCase.On("AddComment", testVideoID, "user-123", "nice").
		Return(nil, response.NotFound("Video not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/"+testVideoID+"/comments", bytes.NewBufferString(`{"content":"nice"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
	mockUseCase.AssertExpectations(t)
}

func TestAddComment_EmptyContent(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:videoId/comments", authed("user-123", handler.AddComment))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/"+testVideoID+"/comments", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Content is required")
	mockUseCase.AssertNotCalled(t, "AddComment")
}

func TestUpdateComment_NotOwner(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/comments/:commentId", authed("intruder", handler.UpdateComment))

	mockUseCase.On("UpdateComment", testCommentID, "intruder", "edited").
		Return(nil, response.Forbidden("You are not authorized to update this comment"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/comments/"+testCommentID, bytes.NewBufferString(`{"content":"edited"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/comments/:commentId", authed("user-123", handler.DeleteComment))

	mockUseCase.On("DeleteComment", testCommentID, "user-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/"+testCommentID, nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Comment deleted successfully")
	mockUseCase.AssertExpectations(t)
}
