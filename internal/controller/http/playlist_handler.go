package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Description  Create an empty playlist owned by the authenticated user
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist name and description"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) error {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Name and description are required")
	}

	playlist, err := h.playlistUseCase.CreatePlaylist(c.GetString("user_id"), req.Name, req.Description)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusCreated, playlist, "Playlist created successfully")
	return nil
}

// GetUserPlaylists godoc
// @Summary      User playlists
// @Description  Get a user's playlists with video count and total views
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /users/{userId}/playlists [get]
func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) error {
	userID := c.Param("userId")
	if err := uuid.Validate(userID); err != nil {
		return response.BadRequest("Invalid user id")
	}

	playlists, err := h.playlistUseCase.GetUserPlaylists(userID)
	if err != nil {
		return err
	}
	if len(playlists) == 0 {
		return response.NotFound("No playlists found")
	}

	response.OK(c, http.StatusOK, playlists, "User playlists fetched successfully")
	return nil
}

// GetPlaylist godoc
// @Summary      Get playlist by ID
// @Description  Get a playlist with video count and total views
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) error {
	playlistID := c.Param("playlistId")
	if err := uuid.Validate(playlistID); err != nil {
		return response.BadRequest("Invalid playlist id")
	}

	playlist, err := h.playlistUseCase.GetPlaylistByID(playlistID)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, playlist, "Playlist fetched successfully")
	return nil
}

// AddVideo godoc
// @Summary      Add video to playlist
// @Description  Append a video to the end of a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /playlists/{playlistId}/videos/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) error {
	playlistID := c.Param("playlistId")
	videoID := c.Param("videoId")
	if err := uuid.Validate(playlistID); err != nil {
		return response.BadRequest("Invalid playlist id")
	}
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	playlist, err := h.playlistUseCase.AddVideoToPlaylist(playlistID, videoID)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, playlist, "Video added to playlist successfully")
	return nil
}

// RemoveVideo godoc
// @Summary      Remove video from playlist
// @Description  Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /playlists/{playlistId}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) error {
	playlistID := c.Param("playlistId")
	videoID := c.Param("videoId")
	if err := uuid.Validate(playlistID); err != nil {
		return response.BadRequest("Invalid playlist id")
	}
	if err := uuid.Validate(videoID); err != nil {
		return response.BadRequest("Invalid video id")
	}

	playlist, err := h.playlistUseCase.RemoveVideoFromPlaylist(playlistID, videoID)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, playlist, "Video removed from playlist successfully")
	return nil
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdatePlaylist godoc
// @Summary      Update playlist
// @Description  Update the playlist name or description. Only the owner can update.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        request body UpdatePlaylistRequest true "Fields to update"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /playlists/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) error {
	playlistID := c.Param("playlistId")
	if err := uuid.Validate(playlistID); err != nil {
		return response.BadRequest("Invalid playlist id")
	}

	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Invalid request body", err.Error())
	}
	if req.Name == nil && req.Description == nil {
		return response.BadRequest("At least one field is required")
	}

	playlist, err := h.playlistUseCase.UpdatePlaylist(playlistID, c.GetString("user_id"), req.Name, req.Description)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, playlist, "Playlist updated successfully")
	return nil
}

// DeletePlaylist godoc
// @Summary      Delete playlist
// @Description  Delete a playlist. Only the owner can delete.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      403  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) error {
	playlistID := c.Param("playlistId")
	if err := uuid.Validate(playlistID); err != nil {
		return response.BadRequest("Invalid playlist id")
	}

	playlist, err := h.playlistUseCase.DeletePlaylist(playlistID, c.GetString("user_id"))
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, playlist, "Playlist deleted successfully")
	return nil
}
