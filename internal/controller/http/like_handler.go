package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// ToggleVideoLike godoc
// @Summary      Toggle video like
// @Description  Like a video, or remove the like when it already exists
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Body "Unliked"
// @Success      201  {object}  response.Body "Liked"
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /videos/{videoId}/like [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) error {
	videoID := c.Param("videoId")
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	like, liked, err := h.likeUseCase.ToggleVideoLike(c.GetString("user_id"), videoID)
	if err != nil {
		return err
	}

	if !liked {
		response.OK(c, http.StatusOK, nil, "Video unliked successfully")
		return nil
	}

	response.OK(c, http.StatusCreated, like, "Video liked successfully")
	return nil
}

// ToggleCommentLike godoc
// @Summary      Toggle comment like
// @Description  Like a comment, or remove the like when it already exists
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  response.Body "Unliked"
// @Success      201  {object}  response.Body "Liked"
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /comments/{commentId}/like [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) error {
	commentID := c.Param("commentId")
	if err := uuid.Validate(commentID); err != nil {
		return response.BadRequest("Invalid comment id")
	}

	like, liked, err := h.likeUseCase.ToggleCommentLike(c.GetString("user_id"), commentID)
	if err != nil {
		return err
	}

	if !liked {
		response.OK(c, http.StatusOK, nil, "Comment unliked successfully")
		return nil
	}

	response.OK(c, http.StatusCreated, like, "Comment liked successfully")
	return nil
}

// ToggleTweetLike godoc
// @Summary      Toggle tweet like
// @Description  Like a tweet, or remove the like when it already exists
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  response.Body "Unliked"
// @Success      201  {object}  response.Body "Liked"
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /tweets/{tweetId}/like [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) error {
	tweetID := c.Param("tweetId")
	if err := uuid.Validate(tweetID); err != nil {
		return response.BadRequest("Invalid tweet id")
	}

	like, liked, err := h.likeUseCase.ToggleTweetLike(c.GetString("user_id"), tweetID)
	if err != nil {
		return err
	}

	if !liked {
		response.OK(c, http.StatusOK, nil, "Tweet unliked successfully")
		return nil
	}

	response.OK(c, http.StatusCreated, like, "Tweet liked successfully")
	return nil
}

// GetLikedVideos godoc
// @Summary      Liked videos
// @Description  Get all videos liked by the authenticated user
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.APIError
// @Router       /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *gin.Context) error {
	liked, err := h.likeUseCase.GetLikedVideos(c.GetString("user_id"))
	if err != nil {
		return err
	}
	if len(liked) == 0 {
		return response.NotFound("No liked videos found")
	}

	response.OK(c, http.StatusOK, liked, "Liked videos fetched successfully")
	return nil
}
