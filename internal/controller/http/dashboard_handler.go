package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// GetChannelStats godoc
// @Summary      Channel stats
// @Description  Get total videos, views and likes for a channel
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Router       /channels/{channelId}/stats [get]
func (h *DashboardHandler) GetChannelStats(c *gin.Context) error {
	channelID := c.Param("channelId")
	if err := uuid.Validate(channelID); err != nil {
		return response.BadRequest("Invalid channel id")
	}

	stats, err := h.dashboardUseCase.GetChannelStats(channelID)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, stats, "Channel stats fetched successfully")
	return nil
}

// GetChannelVideos godoc
// @Summary      Channel videos
// @Description  Get all videos uploaded by a channel
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /channels/{channelId}/videos [get]
func (h *DashboardHandler) GetChannelVideos(c *gin.Context) error {
	channelID := c.Param("channelId")
	if err := uuid.Validate(channelID); err != nil {
		return response.BadRequest("Invalid channel id")
	}

	videos, err := h.dashboardUseCase.GetChannelVideos(channelID)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, videos, "Channel videos fetched successfully")
	return nil
}
