package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/internal/infrastructure/database/models"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func likeToDomain(m models.Like) domain.Like {
	return domain.Like{
		ID:        m.ID,
		StoryID:   m.StoryID,
		EpisodeID: m.EpisodeID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func (r *LikeRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Like{}, domain.NotFoundError{Resource: "like"}
	}
	if err != nil {
		return domain.Like{}, err
	}
	return likeToDomain(like), nil
}

func (r *LikeRepository) GetByOwnerAndTarget(ctx context.Context, owner uuid.UUID, target domain.TargetRef) (domain.Like, error) {
	var like models.Like
	err := scopeTarget(r.db.WithContext(ctx).Where("user_id = ?", owner), target).Take(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Like{}, domain.NotFoundError{Resource: "like"}
	}
	if err != nil {
		return domain.Like{}, err
	}
	return likeToDomain(like), nil
}

func (r *LikeRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Like, error) {
	var likes []models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Like, 0, len(likes))
	for _, like := range likes {
		out = append(out, likeToDomain(like))
	}
	return out, nil
}

func (r *LikeRepository) ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Like, error) {
	var likes []models.Like
	err := scopeTarget(r.db.WithContext(ctx), target).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Like, 0, len(likes))
	for _, like := range likes {
		out = append(out, likeToDomain(like))
	}
	return out, nil
}

func (r *LikeRepository) Create(ctx context.Context, like domain.Like) (domain.Like, error) {
	record := models.Like{
		StoryID:   like.StoryID,
		EpisodeID: like.EpisodeID,
		UserID:    like.UserID,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Like{}, err
	}
	return likeToDomain(record), nil
}

func (r *LikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Like{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "like"}
	}
	return nil
}
