package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/internal/infrastructure/database/models"
)

type WatchRepository struct {
	db *gorm.DB
}

func NewWatchRepository(db *gorm.DB) *WatchRepository {
	return &WatchRepository{db: db}
}

func watchToDomain(m models.WatchProgress) domain.WatchProgress {
	return domain.WatchProgress{
		ID:              m.ID,
		UserID:          m.UserID,
		StoryID:         m.StoryID,
		EpisodeID:       m.EpisodeID,
		ProgressSeconds: m.ProgressSeconds,
		TotalDuration:   m.TotalDuration,
		Completed:       m.Completed,
		LastWatchedAt:   m.LastWatchedAt,
	}
}

func (r *WatchRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.WatchProgress, error) {
	var entry models.WatchProgress
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.WatchProgress{}, domain.NotFoundError{Resource: "continue watching entry"}
	}
	if err != nil {
		return domain.WatchProgress{}, err
	}
	return watchToDomain(entry), nil
}

func (r *WatchRepository) GetByOwnerAndEpisode(ctx context.Context, owner uuid.UUID, episodeID uuid.UUID) (domain.WatchProgress, error) {
	var entry models.WatchProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND episode_id = ?", owner, episodeID).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.WatchProgress{}, domain.NotFoundError{Resource: "continue watching entry"}
	}
	if err != nil {
		return domain.WatchProgress{}, err
	}
	return watchToDomain(entry), nil
}

func (r *WatchRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.WatchProgress, error) {
	var entries []models.WatchProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("last_watched_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.WatchProgress, 0, len(entries))
	for _, entry := range entries {
		out = append(out, watchToDomain(entry))
	}
	return out, nil
}

func (r *WatchRepository) Create(ctx context.Context, entry domain.WatchProgress) (domain.WatchProgress, error) {
	record := models.WatchProgress{
		UserID:          entry.UserID,
		StoryID:         entry.StoryID,
		EpisodeID:       entry.EpisodeID,
		ProgressSeconds: entry.ProgressSeconds,
		TotalDuration:   entry.TotalDuration,
		Completed:       entry.Completed,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.WatchProgress{}, err
	}
	return watchToDomain(record), nil
}

func (r *WatchRepository) Update(ctx context.Context, entry domain.WatchProgress) (domain.WatchProgress, error) {
	var record models.WatchProgress
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.WatchProgress{}).Where("id = ?", entry.ID).
			Updates(map[string]any{
				"progress_seconds": entry.ProgressSeconds,
				"total_duration":   entry.TotalDuration,
				"completed":        entry.Completed,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "continue watching entry"}
		}
		return tx.Where("id = ?", entry.ID).Take(&record).Error
	})
	if err != nil {
		return domain.WatchProgress{}, err
	}
	return watchToDomain(record), nil
}

func (r *WatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.WatchProgress{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "continue watching entry"}
	}
	return nil
}
