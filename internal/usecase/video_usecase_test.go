package usecase

import (
	"testing"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newVideoUseCaseForTest(videoRepo persistent.VideoRepository) VideoUseCase {
	return NewVideoUseCase(videoRepo, nil, nil, nil, logger.New())
}

func TestListVideos_RoundsTotalPagesUp(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("List", persistent.VideoFilter{Page: 3, Limit: 10}).
		Return([]*entity.Video{{ID: "video-25"}}, int64(25), nil)

	list, err := uc.ListVideos(ListVideosParams{Page: 3, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 3, list.TotalPages)
	assert.Equal(t, int64(25), list.TotalVideos)
	assert.Equal(t, 3, list.CurrentPage)
	videoRepo.AssertExpectations(t)
}

func TestListVideos_ExactMultipleOfLimit(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("List", persistent.VideoFilter{Page: 1, Limit: 10}).
		Return([]*entity.Video{{ID: "video-1"}}, int64(20), nil)

	list, err := uc.ListVideos(ListVideosParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 2, list.TotalPages)
}

func TestListVideos_EmptyResult(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("List", persistent.VideoFilter{Page: 1, Limit: 10}).
		Return([]*entity.Video{}, int64(0), nil)

	list, err := uc.ListVideos(ListVideosParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 0, list.TotalPages)
	assert.Empty(t, list.Videos)
}

func TestListVideos_DefaultsPageAndLimit(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("List", persistent.VideoFilter{Page: 1, Limit: 10}).
		Return([]*entity.Video{}, int64(0), nil)

	list, err := uc.ListVideos(ListVideosParams{Page: 0, Limit: -5})

	assert.NoError(t, err)
	assert.Equal(t, 1, list.CurrentPage)
	videoRepo.AssertExpectations(t)
}
