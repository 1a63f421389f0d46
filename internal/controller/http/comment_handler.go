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

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

// GetVideoComments godoc
// @Summary      List video comments
// @Description  Get a page of comments for a video with the owner username and avatar
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10)"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Router       /videos/{videoId}/comments [get]
func (h *CommentHandler) GetVideoComments(c *gin.Context) error {
	videoID := c.Param("videoId")
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	comments, err := h.commentUseCase.GetVideoComments(videoID, page, limit)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, comments, "Comments fetched successfully")
	return nil
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment godoc
// @Summary      Add a comment
// @Description  Comment on a video as the authenticated user
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        request body CommentRequest true "Comment content"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /videos/{videoId}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) error {
	videoID := c.Param("videoId")
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Content is required")
	}

	comment, err := h.commentUseCase.AddComment(videoID, c.GetString("user_id"), req.Content)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusCreated, comment, "Comment added successfully")
	return nil
}

// UpdateComment godoc
// @Summary      Update a comment
// @Description  Edit comment content. Only the author can update.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Param        request body CommentRequest true "New content"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /comments/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) error {
	commentID := c.Param("commentId")
	if err := uuid.Validate(commentID); err != nil {
		return response.BadRequest("Invalid comment id")
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Content is required")
	}

	comment, err := h.commentUseCase.UpdateComment(commentID, c.GetString("user_id"), req.Content)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, comment, "Comment updated successfully")
	return nil
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Delete a comment. Only the author can delete.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) error {
	commentID := c.Param("commentId")
	if err := uuid.Validate(commentID); err != nil {
		return response.BadRequest("Invalid comment id")
	}

	if err := h.commentUseCase.DeleteComment(commentID, c.GetString("user_id")); err != nil {
		return err
	}

	response.OK(c, http.StatusOK, nil, "Comment deleted successfully")
	return nil
}
