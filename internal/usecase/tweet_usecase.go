package usecase

import (
	"errors"
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/response"

	"gorm.io/gorm"
)

type TweetUseCase interface {
	CreateTweet(userID, content string) (*entity.Tweet, error)
	GetUserTweets(userID string) ([]*entity.Tweet, error)
	UpdateTweet(tweetID, userID, content string) (*entity.Tweet, error)
	DeleteTweet(tweetID, userID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository, userRepo persistent.UserRepository) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
	}
}

func (uc *tweetUseCase) CreateTweet(userID, content string) (*entity.Tweet, error) {
	tweet := &entity.Tweet{
		OwnerID: userID,
		Content: content,
	}
	if err := uc.tweetRepo.Create(tweet); err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) GetUserTweets(userID string) ([]*entity.Tweet, error) {
	exists, err := uc.userRepo.Exists(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, response.NotFound("User not found")
	}

	tweets, err := uc.tweetRepo.GetByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	return tweets, nil
}

func (uc *tweetUseCase) UpdateTweet(tweetID, userID, content string) (*entity.Tweet, error) {
	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Tweet not found")
		}
		return nil, fmt.Errorf("failed to load tweet: %w", err)
	}

	if tweet.OwnerID != userID {
		return nil, response.Forbidden("You are not authorized to update this tweet")
	}

	tweet.Content = content
	if err := uc.tweetRepo.Update(tweet); err != nil {
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) DeleteTweet(tweetID, userID string) error {
	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Tweet not found")
		}
		return fmt.Errorf("failed to load tweet: %w", err)
	}

	if tweet.OwnerID != userID {
		return response.Forbidden("You are not authorized to delete this tweet")
	}

	if err := uc.tweetRepo.Delete(tweetID); err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	return nil
}
