package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// ToggleSubscription godoc
// @Summary      Toggle subscription
// @Description  Subscribe to a channel, or unsubscribe when already subscribed
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel ID"
// @Success      200  {object}  response.Body "Unsubscribed"
// @Success      201  {object}  response.Body "Subscribed"
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /channels/{channelId}/subscribe [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) error {
	channelID := c.Param("channelId")
	if err := uuid.Validate(channelID); err != nil {
		return response.BadRequest("Invalid channel id")
	}

	subscription, subscribed, err := h.subscriptionUseCase.ToggleSubscription(c.GetString("user_id"), channelID)
	if err != nil {
		return err
	}

	if !subscribed {
		response.OK(c, http.StatusOK, nil, "Unsubscribed successfully")
		return nil
	}

	response.OK(c, http.StatusCreated, subscription, "Subscribed successfully")
	return nil
}

// GetChannelSubscribers godoc
// @Summary      Channel subscribers
// @Description  Get the subscribers of a channel with user summaries
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /channels/{channelId}/subscribers [get]
func (h *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) error {
	channelID := c.Param("channelId")
	if err := uuid.Validate(channelID); err != nil {
		return response.BadRequest("Invalid channel id")
	}

	subscribers, err := h.subscriptionUseCase.GetChannelSubscribers(channelID)
	if err != nil {
		return err
	}
	if len(subscribers) == 0 {
		return response.NotFound("No subscribers found")
	}

	response.OK(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
	return nil
}

// GetSubscribedChannels godoc
// @Summary      Subscribed channels
// @Description  Get the channels a user is subscribed to with channel summaries
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "Subscriber ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /users/{userId}/subscriptions [get]
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) error {
	subscriberID := c.Param("userId")
	if err := uuid.Validate(subscriberID); err != nil {
		return response.BadRequest("Invalid subscriber id")
	}

	channels, err := h.subscriptionUseCase.GetSubscribedChannels(subscriberID)
	if err != nil {
		return err
	}
	if len(channels) == 0 {
		return response.NotFound("No subscribed channels found")
	}

	response.OK(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
	return nil
}
