package usecase

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Register(username, email, fullName, password string, avatar, coverImage *multipart.FileHeader) (*entity.User, error)
	Login(email, password string) (*entity.User, string, string, error)
	Refresh(refreshToken string) (string, string, error)
	Logout(userID string) error
	GetUser(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	log *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     log,
	}
}

func (uc *authUseCase) uploadImage(prefix string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), filepath.Ext(file.Filename))
	return uc.s3Client.UploadFile(key, src, contentType)
}

func (uc *authUseCase) Register(username, email, fullName, password string, avatar, coverImage *multipart.FileHeader) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, response.BadRequest("User with this email already exists")
	}
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, response.BadRequest("Username already taken")
	}

	avatarURL, err := uc.uploadImage("avatars", avatar)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, response.Internal("Failed to upload avatar")
	}

	var coverImageURL string
	if coverImage != nil {
		coverImageURL, err = uc.uploadImage("covers", coverImage)
		if err != nil {
			uc.logger.Error("Failed to upload cover image: %v", err)
			return nil, response.Internal("Failed to upload cover image")
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:      username,
		Email:         email,
		FullName:      strings.TrimSpace(fullName),
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		Password:      string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, string, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", "", response.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", response.Unauthorized("Invalid credentials")
	}

	accessToken, refreshToken, err := uc.issueTokens(user.ID)
	if err != nil {
		return nil, "", "", err
	}

	user.Password = ""
	return user, accessToken, refreshToken, nil
}

func (uc *authUseCase) Refresh(refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", "", response.Unauthorized("Invalid or expired refresh token")
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", response.Unauthorized("Invalid or expired refresh token")
	}

	// A stored token mismatch means the token was rotated or revoked.
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return "", "", response.Unauthorized("Invalid or expired refresh token")
	}

	return uc.issueTokens(user.ID)
}

func (uc *authUseCase) issueTokens(userID string) (string, string, error) {
	accessToken, err := uc.jwtService.GenerateToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := uc.userRepo.UpdateRefreshToken(userID, refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (uc *authUseCase) Logout(userID string) error {
	return uc.userRepo.UpdateRefreshToken(userID, "")
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	user.Password = ""
	return user, nil
}
