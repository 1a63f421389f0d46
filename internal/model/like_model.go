package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel holds exactly one non-null target reference; the schema enforces
// the exclusivity with a CHECK constraint and per-target unique indexes, so a
// (user, target) pair can never be inserted twice.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	LikedBy   string    `gorm:"type:uuid;not null;index" json:"liked_by"`
	VideoID   *string   `gorm:"type:uuid;index" json:"video_id"`
	CommentID *string   `gorm:"type:uuid;index" json:"comment_id"`
	TweetID   *string   `gorm:"type:uuid;index" json:"tweet_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string { return "likes" }

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
