package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/fablestream/fablestream/internal/domain"
)

// CatalogRepository defines read access to stories and episodes. The catalog
// is ingested elsewhere; this service only reads it.
type CatalogRepository interface {
	ListStories(ctx context.Context, offset, limit int) ([]domain.Story, error)
	GetStory(ctx context.Context, id uuid.UUID) (domain.Story, error)
	ListEpisodes(ctx context.Context, storyID uuid.UUID) ([]domain.Episode, error)
	GetEpisode(ctx context.Context, id uuid.UUID) (domain.Episode, error)
}

const maxPageSize = 100

type CatalogUsecase struct {
	repo CatalogRepository
}

func NewCatalogUsecase(repo CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: repo}
}

func (uc *CatalogUsecase) ListStories(ctx context.Context, offset, limit int) ([]domain.Story, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	return uc.repo.ListStories(ctx, offset, limit)
}

func (uc *CatalogUsecase) GetStory(ctx context.Context, id uuid.UUID) (domain.Story, error) {
	return uc.repo.GetStory(ctx, id)
}

func (uc *CatalogUsecase) ListEpisodes(ctx context.Context, storyID uuid.UUID) ([]domain.Episode, error) {
	if _, err := uc.repo.GetStory(ctx, storyID); err != nil {
		return nil, err
	}
	return uc.repo.ListEpisodes(ctx, storyID)
}

func (uc *CatalogUsecase) GetEpisode(ctx context.Context, id uuid.UUID) (domain.Episode, error) {
	return uc.repo.GetEpisode(ctx, id)
}
