package http

import (
	"net/http"
	"strconv"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

// ListVideos godoc
// @Summary      List videos
// @Description  Get a page of videos with optional text search, owner filter and sorting
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10)"
// @Param        query query string false "Match against title and description"
// @Param        sortBy query string false "Sort column (created_at, views, duration, title)"
// @Param        sortType query string false "asc or desc"
// @Param        userId query string false "Filter by owner"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ownerID := c.Query("userId")
	if ownerID != "" {
		if err := uuid.Validate(ownerID); err != nil {
			return response.BadRequest("Invalid user id")
		}
	}

	list, err := h.videoUseCase.ListVideos(usecase.ListVideosParams{
		Page:     page,
		Limit:    limit,
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		UserID:   ownerID,
	})
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, list, "Videos fetched successfully")
	return nil
}

type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Duration    float64 `form:"duration"`
}

// PublishVideo godoc
// @Summary      Publish a video
// @Description  Upload a video file with thumbnail and create the video record
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string true "Description"
// @Param        duration formData number false "Duration in seconds"
// @Param        videoFile formData file true "Video file"
// @Param        thumbNail formData file true "Thumbnail image"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      500  {object}  response.APIError
// @Router       /videos [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) error {
	userID := c.GetString("user_id")

	var req PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.BadRequest("Title and description are required", err.Error())
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		return response.BadRequest("Video file is required")
	}

	thumbnail, err := c.FormFile("thumbNail")
	if err != nil {
		return response.BadRequest("Thumbnail file is required")
	}

	video, err := h.videoUseCase.PublishVideo(userID, req.Title, req.Description, req.Duration, videoFile, thumbnail)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusCreated, video, "Video published successfully")
	return nil
}

// GetVideo godoc
// @Summary      Get video by ID
// @Description  Get video details with the owner summary; records the video in the caller's watch history
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) error {
	videoID := c.Param("videoId")
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	video, err := h.videoUseCase.GetVideoByID(videoID, c.GetString("user_id"))
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, video, "Video fetched successfully")
	return nil
}

type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
}

// UpdateVideo godoc
// @Summary      Update video
// @Description  Update title, description or thumbnail. Only the owner can update.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        request body UpdateVideoRequest true "Fields to update"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) error {
	videoID := c.Param("videoId")
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Invalid request body", err.Error())
	}
	if req.Title == nil && req.Description == nil && req.Thumbnail == nil {
		return response.BadRequest("At least one field is required")
	}

	video, err := h.videoUseCase.UpdateVideo(videoID, c.GetString("user_id"), req.Title, req.Description, req.Thumbnail)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, video, "Video updated successfully")
	return nil
}

// DeleteVideo godoc
// @Summary      Delete video
// @Description  Delete a video. Only the owner can delete.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) error {
	videoID := c.Param("videoId")
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	if err := h.videoUseCase.DeleteVideo(videoID, c.GetString("user_id")); err != nil {
		return err
	}

	response.OK(c, http.StatusOK, nil, "Video deleted successfully")
	return nil
}

// TogglePublish godoc
// @Summary      Toggle publish status
// @Description  Flip the published flag of a video. Only the owner can toggle.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /videos/{videoId}/toggle-publish [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) error {
	videoID := c.Param("videoId")
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	video, err := h.videoUseCase.TogglePublish(videoID, c.GetString("user_id"))
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, video, "Video publish status toggled successfully")
	return nil
}

// RecordView godoc
// @Summary      Record a view
// @Description  Count a view for the video, at most once per user
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /videos/{videoId}/view [post]
func (h *VideoHandler) RecordView(c *gin.Context) error {
	videoID := c.Param("videoId")
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	viewed, err := h.videoUseCase.RecordView(videoID, c.GetString("user_id"))
	if err != nil {
		return err
	}

	message := "View counted"
	if !viewed {
		message = "View already counted"
	}

	response.OK(c, http.StatusOK, gin.H{"viewed": viewed}, message)
	return nil
}

// GetWatchHistory godoc
// @Summary      Watch history
// @Description  Get the authenticated user's watch history, most recent first
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body
// @Router       /users/history [get]
func (h *VideoHandler) GetWatchHistory(c *gin.Context) error {
	items, err := h.videoUseCase.GetWatchHistory(c.GetString("user_id"))
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, items, "Watch history fetched successfully")
	return nil
}
