package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/internal/infrastructure/database/models"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func storyToDomain(m models.Story) domain.Story {
	return domain.Story{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Thumbnail:    m.Thumbnail,
		Genres:       m.Genres,
		AvgRating:    m.AvgRating,
		LikesCount:   m.LikesCount,
		CommentCount: m.CommentCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func episodeToDomain(m models.Episode) domain.Episode {
	return domain.Episode{
		ID:              m.ID,
		StoryID:         m.StoryID,
		Title:           m.Title,
		Description:     m.Description,
		StreamURL:       m.StreamURL,
		DurationSeconds: m.DurationSeconds,
		ReleaseDate:     m.ReleaseDate,
		AvgRating:       m.AvgRating,
		LikesCount:      m.LikesCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *CatalogRepository) ListStories(ctx context.Context, offset, limit int) ([]domain.Story, error) {
	var stories []models.Story
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Story, 0, len(stories))
	for _, story := range stories {
		out = append(out, storyToDomain(story))
	}
	return out, nil
}

func (r *CatalogRepository) GetStory(ctx context.Context, id uuid.UUID) (domain.Story, error) {
	var story models.Story
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&story).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Story{}, domain.NotFoundError{Resource: "story"}
	}
	if err != nil {
		return domain.Story{}, err
	}
	return storyToDomain(story), nil
}

func (r *CatalogRepository) ListEpisodes(ctx context.Context, storyID uuid.UUID) ([]domain.Episode, error) {
	var episodes []models.Episode
	err := r.db.WithContext(ctx).
		Where("story_id = ?", storyID).
		Order("release_date ASC NULLS LAST, created_at ASC").
		Find(&episodes).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Episode, 0, len(episodes))
	for _, episode := range episodes {
		out = append(out, episodeToDomain(episode))
	}
	return out, nil
}

func (r *CatalogRepository) GetEpisode(ctx context.Context, id uuid.UUID) (domain.Episode, error) {
	var episode models.Episode
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&episode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Episode{}, domain.NotFoundError{Resource: "episode"}
	}
	if err != nil {
		return domain.Episode{}, err
	}
	return episodeToDomain(episode), nil
}
