package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		logger:       logger,
	}
}

type TweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateTweet godoc
// @Summary      Create a tweet
// @Description  Post a short text update as the authenticated user
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TweetRequest true "Tweet content"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) error {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Content is required")
	}

	tweet, err := h.tweetUseCase.CreateTweet(c.GetString("user_id"), req.Content)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusCreated, tweet, "Tweet created successfully")
	return nil
}

// GetUserTweets godoc
// @Summary      Current user's tweets
// @Description  Get all tweets posted by the authenticated user, newest first
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.APIError
// @Router       /tweets [get]
func (h *TweetHandler) GetUserTweets(c *gin.Context) error {
	tweets, err := h.tweetUseCase.GetUserTweets(c.GetString("user_id"))
	if err != nil {
		return err
	}
	if len(tweets) == 0 {
		return response.NotFound("No tweets found")
	}

	response.OK(c, http.StatusOK, tweets, "Tweets fetched successfully")
	return nil
}

// UpdateTweet godoc
// @Summary      Update a tweet
// @Description  Edit tweet content. Only the author can update.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Param        request body TweetRequest true "New content"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /tweets/{tweetId} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) error {
	tweetID := c.Param("tweetId")
	if err := uuid.Validate(tweetID); err != nil {
		return response.BadRequest("Invalid tweet id")
	}

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Content is required")
	}

	tweet, err := h.tweetUseCase.UpdateTweet(tweetID, c.GetString("user_id"), req.Content)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, tweet, "Tweet updated successfully")
	return nil
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Description  Delete a tweet. Only the author can delete.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /tweets/{tweetId} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) error {
	tweetID := c.Param("tweetId")
	if err := uuid.Validate(tweetID); err != nil {
		return response.BadRequest("Invalid tweet id")
	}

	if err := h.tweetUseCase.DeleteTweet(tweetID, c.GetString("user_id")); err != nil {
		return err
	}

	response.OK(c, http.StatusOK, nil, "Tweet deleted successfully")
	return nil
}
