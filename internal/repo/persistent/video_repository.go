package persistent

import (
	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VideoFilter describes the listing query; zero values mean "no constraint".
type VideoFilter struct {
	Query    string
	OwnerID  string
	SortBy   string
	SortType string
	Page     int
	Limit    int
}

var allowedSortColumns = map[string]bool{
	"created_at": true,
	"views":      true,
	"duration":   true,
	"title":      true,
}

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	GetByIDWithOwner(id string) (*entity.VideoWithOwner, error)
	List(filter VideoFilter) ([]*entity.Video, int64, error)
	GetByOwner(ownerID string) ([]*entity.Video, error)
	CountByOwner(ownerID string) (int64, error)
	SumViewsByOwner(ownerID string) (int64, error)
	Update(video *entity.Video) error
	Delete(id string) error
	IncrementViews(id string) error
	Exists(id string) (bool, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) GetByIDWithOwner(id string) (*entity.VideoWithOwner, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}

	var ownerModel model.UserModel
	if err := r.db.Where("id = ?", videoModel.OwnerID).First(&ownerModel).Error; err != nil {
		return nil, err
	}

	return &entity.VideoWithOwner{
		Video: *ToVideoEntity(&videoModel),
		Owner: entity.UserSummary{
			ID:        ownerModel.ID,
			Username:  ownerModel.Username,
			FullName:  ownerModel.FullName,
			AvatarURL: ownerModel.AvatarURL,
		},
	}, nil
}

func (r *videoRepository) List(filter VideoFilter) ([]*entity.Video, int64, error) {
	query := r.db.Model(&model.VideoModel{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filter.SortBy
	if !allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}
	direction := "DESC"
	if filter.SortType == "asc" {
		direction = "ASC"
	}
	query = query.Order(sortBy + " " + direction)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit)
	}

	var videoModels []model.VideoModel
	if err := query.Find(&videoModels).Error; err != nil {
		return nil, 0, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, total, nil
}

func (r *videoRepository) GetByOwner(ownerID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

func (r *videoRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *videoRepository) SumViewsByOwner(ownerID string) (int64, error) {
	var total int64
	err := r.db.Model(&model.VideoModel{}).Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").Scan(&total).Error
	return total, err
}

func (r *videoRepository) Update(video *entity.Video) error {
	return r.db.Save(ToVideoModel(video)).Error
}

func (r *videoRepository) Delete(id string) error {
	return r.db.Delete(&model.VideoModel{}, "id = ?", id).Error
}

func (r *videoRepository) IncrementViews(id string) error {
	return r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

func (r *videoRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
