package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"fullName" binding:"required"`
	Password string `form:"password" binding:"required,min=6"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user account with avatar (required) and cover image (optional)
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        username formData string true "Username"
// @Param        email formData string true "Email"
// @Param        fullName formData string true "Full name"
// @Param        password formData string true "Password (min 6 chars)"
// @Param        avatar formData file true "Avatar image"
// @Param        coverImage formData file false "Cover image"
// @Success      201  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      500  {object}  response.APIError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) error {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.BadRequest("All fields are required", err.Error())
	}

	avatar, err := c.FormFile("avatar")
	if err != nil {
		return response.BadRequest("Avatar file is required")
	}

	coverImage, err := c.FormFile("coverImage")
	if err != nil {
		coverImage = nil
	}

	user, err := h.authUseCase.Register(req.Username, req.Email, req.FullName, req.Password, avatar, coverImage)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusCreated, user, "User registered successfully")
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for an access and refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      401  {object}  response.APIError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) error {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Email and password are required", err.Error())
	}

	user, accessToken, refreshToken, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "User logged in successfully")
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Rotate the refresh token and issue a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh token"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.APIError
// @Failure      401  {object}  response.APIError
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) error {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Refresh token is required", err.Error())
	}

	accessToken, refreshToken, err := h.authUseCase.Refresh(req.RefreshToken)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "Access token refreshed")
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Clear the stored refresh token for the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body
// @Failure      401  {object}  response.APIError
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) error {
	userID := c.GetString("user_id")
	if err := h.authUseCase.Logout(userID); err != nil {
		return err
	}

	response.OK(c, http.StatusOK, nil, "User logged out successfully")
	return nil
}

// Me godoc
// @Summary      Current user
// @Description  Get the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Body
// @Failure      401  {object}  response.APIError
// @Failure      404  {object}  response.APIError
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) error {
	userID := c.GetString("user_id")

	user, err := h.authUseCase.GetUser(userID)
	if err != nil {
		return err
	}

	response.OK(c, http.StatusOK, user, "User fetched successfully")
	return nil
}
