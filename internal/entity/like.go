package entity

import "time"

// Like links a user to exactly one of a video, a comment or a tweet.
type Like struct {
	ID        string    `json:"id"`
	LikedBy   string    `json:"liked_by"`
	VideoID   *string   `json:"video_id,omitempty"`
	CommentID *string   `json:"comment_id,omitempty"`
	TweetID   *string   `json:"tweet_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LikedVideo struct {
	ID        string    `json:"id"`
	LikedBy   string    `json:"liked_by"`
	Video     *Video    `json:"video"`
	CreatedAt time.Time `json:"created_at"`
}
