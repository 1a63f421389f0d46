package entity

import "time"

type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	OwnerID   string    `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentWithOwner struct {
	Comment
	Owner UserSummary `json:"owner"`
}

// CommentPage mirrors the paginated listing shape: the documents for the
// requested page plus the pagination bookkeeping.
type CommentPage struct {
	Comments   []*CommentWithOwner `json:"comments"`
	TotalDocs  int64               `json:"totalDocs"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
}
