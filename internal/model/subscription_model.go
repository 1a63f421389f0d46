package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	SubscriberID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_subscriptions_pair" json:"subscriber_id"`
	ChannelID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_subscriptions_pair" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
