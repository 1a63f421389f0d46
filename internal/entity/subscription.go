package entity

import "time"

type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	ChannelID    string    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type ChannelSubscriber struct {
	ID         string      `json:"id"`
	Subscriber UserSummary `json:"subscriber"`
	CreatedAt  time.Time   `json:"created_at"`
}

type SubscribedChannel struct {
	ID        string      `json:"id"`
	Channel   UserSummary `json:"channel"`
	CreatedAt time.Time   `json:"created_at"`
}
