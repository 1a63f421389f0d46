package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	Create(subscriberID, channelID string) (*entity.Subscription, error)
	Delete(subscriberID, channelID string) (int64, error)
	GetSubscribers(channelID string) ([]*entity.ChannelSubscriber, error)
	GetSubscribedChannels(subscriberID string) ([]*entity.SubscribedChannel, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(subscriberID, channelID string) (*entity.Subscription, error) {
	subModel := &model.SubscriptionModel{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(subModel).Error; err != nil {
		return nil, err
	}
	return ToSubscriptionEntity(subModel), nil
}

func (r *subscriptionRepository) Delete(subscriberID, channelID string) (int64, error) {
	result := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{})
	return result.RowsAffected, result.Error
}

type subscriptionUserRow struct {
	ID        string
	CreatedAt time.Time
	UserID    string
	Username  string
	FullName  string
	Email     string
	AvatarURL string
}

func (r *subscriptionRepository) GetSubscribers(channelID string) ([]*entity.ChannelSubscriber, error) {
	var rows []subscriptionUserRow
	err := r.db.Model(&model.SubscriptionModel{}).
		Select("subscriptions.id, subscriptions.created_at, users.id AS user_id, users.username, users.full_name, users.email, users.avatar_url").
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	subscribers := make([]*entity.ChannelSubscriber, len(rows))
	for i, row := range rows {
		subscribers[i] = &entity.ChannelSubscriber{
			ID:        row.ID,
			CreatedAt: row.CreatedAt,
			Subscriber: entity.UserSummary{
				ID:        row.UserID,
				Username:  row.Username,
				FullName:  row.FullName,
				Email:     row.Email,
				AvatarURL: row.AvatarURL,
			},
		}
	}
	return subscribers, nil
}

func (r *subscriptionRepository) GetSubscribedChannels(subscriberID string) ([]*entity.SubscribedChannel, error) {
	var rows []subscriptionUserRow
	err := r.db.Model(&model.SubscriptionModel{}).
		Select("subscriptions.id, subscriptions.created_at, users.id AS user_id, users.username, users.full_name, users.email, users.avatar_url").
		Joins("JOIN users ON users.id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	channels := make([]*entity.SubscribedChannel, len(rows))
	for i, row := range rows {
		channels[i] = &entity.SubscribedChannel{
			ID:        row.ID,
			CreatedAt: row.CreatedAt,
			Channel: entity.UserSummary{
				ID:        row.UserID,
				Username:  row.Username,
				FullName:  row.FullName,
				Email:     row.Email,
				AvatarURL: row.AvatarURL,
			},
		}
	}
	return channels, nil
}
