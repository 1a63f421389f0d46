package entity

import "time"

type Video struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type VideoWithOwner struct {
	Video
	Owner UserSummary `json:"owner"`
}

// VideoList is the paginated result of the video listing endpoint.
type VideoList struct {
	Videos      []*Video `json:"videos"`
	CurrentPage int      `json:"currentPage"`
	TotalVideos int64    `json:"totalVideos"`
	TotalPages  int      `json:"totalPages"`
}

type ChannelStats struct {
	TotalVideos int64 `json:"totalVideos"`
	ViewCount   int64 `json:"viewCount"`
	TotalLikes  int64 `json:"totalLikes"`
}
