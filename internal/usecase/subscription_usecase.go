package usecase

import (
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
	"vidtube/pkg/response"
)

type SubscriptionUseCase interface {
	ToggleSubscription(subscriberID, channelID string) (*entity.Subscription, bool, error)
	GetChannelSubscribers(channelID string) ([]*entity.ChannelSubscriber, error)
	GetSubscribedChannels(subscriberID string) ([]*entity.SubscribedChannel, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	queueClient      *queue.Client
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	queueClient *queue.Client,
	log *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		queueClient:      queueClient,
		logger:           log,
	}
}

func (uc *subscriptionUseCase) ToggleSubscription(subscriberID, channelID string) (*entity.Subscription, bool, error) {
	if subscriberID == channelID {
		return nil, false, response.BadRequest("You cannot subscribe to your own channel")
	}

	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check channel: %w", err)
	}
	if !exists {
		return nil, false, response.NotFound("Channel not found")
	}

	removed, err := uc.subscriptionRepo.Delete(subscriberID, channelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if removed > 0 {
		return nil, false, nil
	}

	subscription, err := uc.subscriptionRepo.Create(subscriberID, channelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to subscribe: %w", err)
	}

	if uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":          "new_subscriber",
				"user_id":       channelID,
				"subscriber_id": subscriberID,
				"priority":      5,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish subscription notification task: %v", err)
			}
		}()
	}

	return subscription, true, nil
}

func (uc *subscriptionUseCase) GetChannelSubscribers(channelID string) ([]*entity.ChannelSubscriber, error) {
	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to check channel: %w", err)
	}
	if !exists {
		return nil, response.NotFound("Channel not found")
	}

	subscribers, err := uc.subscriptionRepo.GetSubscribers(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}

func (uc *subscriptionUseCase) GetSubscribedChannels(subscriberID string) ([]*entity.SubscribedChannel, error) {
	exists, err := uc.userRepo.Exists(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, response.NotFound("User not found")
	}

	channels, err := uc.subscriptionRepo.GetSubscribedChannels(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	return channels, nil
}
