package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	Username      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email         string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName      string         `gorm:"type:varchar(255);not null" json:"full_name"`
	AvatarURL     string         `gorm:"type:varchar(500);not null" json:"avatar_url"`
	CoverImageURL string         `gorm:"type:varchar(500)" json:"cover_image_url"`
	Password      string         `gorm:"type:varchar(255);not null" json:"-"`
	RefreshToken  string         `gorm:"type:varchar(500)" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// WatchHistoryModel records which videos a user has opened, newest first.
// Rows are upserted so a rewatch only refreshes watched_at.
type WatchHistoryModel struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;primaryKey" json:"video_id"`
	WatchedAt time.Time `gorm:"not null" json:"watched_at"`
}

func (WatchHistoryModel) TableName() string { return "watch_history" }
