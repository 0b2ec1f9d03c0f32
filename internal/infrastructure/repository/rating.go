package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/internal/infrastructure/database/models"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func ratingToDomain(m models.Rating) domain.Rating {
	return domain.Rating{
		ID:        m.ID,
		StoryID:   m.StoryID,
		EpisodeID: m.EpisodeID,
		UserID:    m.UserID,
		Value:     m.Value,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *RatingRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Rating{}, domain.NotFoundError{Resource: "rating"}
	}
	if err != nil {
		return domain.Rating{}, err
	}
	return ratingToDomain(rating), nil
}

func (r *RatingRepository) GetByOwnerAndTarget(ctx context.Context, owner uuid.UUID, target domain.TargetRef) (domain.Rating, error) {
	var rating models.Rating
	err := scopeTarget(r.db.WithContext(ctx).Where("user_id = ?", owner), target).Take(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Rating{}, domain.NotFoundError{Resource: "rating"}
	}
	if err != nil {
		return domain.Rating{}, err
	}
	return ratingToDomain(rating), nil
}

func (r *RatingRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("updated_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Rating, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, ratingToDomain(rating))
	}
	return out, nil
}

func (r *RatingRepository) ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Rating, error) {
	var ratings []models.Rating
	err := scopeTarget(r.db.WithContext(ctx), target).
		Order("updated_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Rating, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, ratingToDomain(rating))
	}
	return out, nil
}

func (r *RatingRepository) Create(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	record := models.Rating{
		StoryID:   rating.StoryID,
		EpisodeID: rating.EpisodeID,
		UserID:    rating.UserID,
		Value:     rating.Value,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Rating{}, err
	}
	return ratingToDomain(record), nil
}

func (r *RatingRepository) UpdateValue(ctx context.Context, id uuid.UUID, value int) (domain.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Rating{}).Where("id = ?", id).Update("value", value)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "rating"}
		}
		return tx.Where("id = ?", id).Take(&rating).Error
	})
	if err != nil {
		return domain.Rating{}, err
	}
	return ratingToDomain(rating), nil
}

func (r *RatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "rating"}
	}
	return nil
}
