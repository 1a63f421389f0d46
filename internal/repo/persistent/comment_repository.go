package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	GetByVideoID(videoID string, page, limit int) (*entity.CommentPage, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		VideoID: comment.VideoID,
		OwnerID: comment.OwnerID,
		Content: comment.Content,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

type commentOwnerRow struct {
	ID             string
	VideoID        string
	OwnerID        string
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	OwnerUsername  string
	OwnerAvatarURL string
}

func (r *commentRepository) GetByVideoID(videoID string, page, limit int) (*entity.CommentPage, error) {
	var total int64
	if err := r.db.Model(&model.CommentModel{}).
		Where("video_id = ?", videoID).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []commentOwnerRow
	err := r.db.Model(&model.CommentModel{}).
		Select("comments.id, comments.video_id, comments.owner_id, comments.content, comments.created_at, comments.updated_at, users.username AS owner_username, users.avatar_url AS owner_avatar_url").
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.CommentWithOwner, len(rows))
	for i, row := range rows {
		comments[i] = &entity.CommentWithOwner{
			Comment: entity.Comment{
				ID:        row.ID,
				VideoID:   row.VideoID,
				OwnerID:   row.OwnerID,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Owner: entity.UserSummary{
				ID:        row.OwnerID,
				Username:  row.OwnerUsername,
				AvatarURL: row.OwnerAvatarURL,
			},
		}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &entity.CommentPage{
		Comments:   comments,
		TotalDocs:  total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Model(&model.CommentModel{}).Where("id = ?", comment.ID).
		Update("content", comment.Content).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Delete(&model.CommentModel{}, "id = ?", id).Error
}
