package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string               `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     string               `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string               `gorm:"type:varchar(255);not null" json:"name"`
	Description string               `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	DeletedAt   gorm.DeletedAt       `gorm:"index" json:"-"`
	Videos      []PlaylistVideoModel `gorm:"foreignKey:PlaylistID" json:"videos,omitempty"`
}

func (PlaylistModel) TableName() string { return "playlists" }

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideoModel is the ordered join table; the composite primary key
// keeps a video from appearing twice in the same playlist.
type PlaylistVideoModel struct {
	PlaylistID string    `gorm:"type:uuid;primaryKey" json:"playlist_id"`
	VideoID    string    `gorm:"type:uuid;primaryKey" json:"video_id"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PlaylistVideoModel) TableName() string { return "playlist_videos" }
