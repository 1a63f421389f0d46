package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	GetStatsByID(id string) (*entity.PlaylistStats, error)
	GetStatsByOwner(ownerID string) ([]*entity.PlaylistStats, error)
	AddVideo(playlistID, videoID string) error
	RemoveVideo(playlistID, videoID string) (int64, error)
	HasVideo(playlistID, videoID string) (bool, error)
	Update(playlist *entity.Playlist) error
	Delete(id string) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := &model.PlaylistModel{
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
	}
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	err := r.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("playlist_videos.position ASC")
	}).Where("id = ?", id).First(&playlistModel).Error
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel), nil
}

type playlistStatsRow struct {
	ID          string
	Name        string
	Description string
	TotalVideos int
	TotalViews  int64
	UpdatedAt   time.Time
}

func (r *playlistRepository) statsQuery() *gorm.DB {
	return r.db.Model(&model.PlaylistModel{}).
		Select("playlists.id, playlists.name, playlists.description, playlists.updated_at, COUNT(pv.video_id) AS total_videos, COALESCE(SUM(v.views), 0) AS total_views").
		Joins("LEFT JOIN playlist_videos pv ON pv.playlist_id = playlists.id").
		Joins("LEFT JOIN videos v ON v.id = pv.video_id AND v.deleted_at IS NULL").
		Group("playlists.id")
}

func (r *playlistRepository) GetStatsByID(id string) (*entity.PlaylistStats, error) {
	var rows []playlistStatsRow
	if err := r.statsQuery().Where("playlists.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return statsRowToEntity(&rows[0]), nil
}

func (r *playlistRepository) GetStatsByOwner(ownerID string) ([]*entity.PlaylistStats, error) {
	var rows []playlistStatsRow
	if err := r.statsQuery().Where("playlists.owner_id = ?", ownerID).
		Order("playlists.updated_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make([]*entity.PlaylistStats, len(rows))
	for i := range rows {
		stats[i] = statsRowToEntity(&rows[i])
	}
	return stats, nil
}

func statsRowToEntity(row *playlistStatsRow) *entity.PlaylistStats {
	return &entity.PlaylistStats{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		TotalVideos: row.TotalVideos,
		TotalViews:  row.TotalViews,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *playlistRepository) AddVideo(playlistID, videoID string) error {
	var position int64
	if err := r.db.Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ?", playlistID).Count(&position).Error; err != nil {
		return err
	}

	return r.db.Create(&model.PlaylistVideoModel{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   int(position),
	}).Error
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) (int64, error) {
	result := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{})
	return result.RowsAffected, result.Error
}

func (r *playlistRepository) HasVideo(playlistID, videoID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Count(&count).Error
	return count > 0, err
}

func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	return r.db.Model(&model.PlaylistModel{}).Where("id = ?", playlist.ID).
		Updates(map[string]interface{}{
			"name":        playlist.Name,
			"description": playlist.Description,
		}).Error
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Delete(&model.PlaylistModel{}, "id = ?", id).Error
}
