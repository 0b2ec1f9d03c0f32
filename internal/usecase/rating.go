package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fablestream/fablestream/internal/domain"
)

// RatingRepository defines storage operations for ratings.
type RatingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Rating, error)
	GetByOwnerAndTarget(ctx context.Context, owner uuid.UUID, target domain.TargetRef) (domain.Rating, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Rating, error)
	ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Rating, error)
	Create(ctx context.Context, rating domain.Rating) (domain.Rating, error)
	UpdateValue(ctx context.Context, id uuid.UUID, value int) (domain.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	minRatingValue = 1
	maxRatingValue = 5
)

type RatingUsecase struct {
	repo RatingRepository
}

func NewRatingUsecase(repo RatingRepository) *RatingUsecase {
	return &RatingUsecase{repo: repo}
}

func validateRatingValue(value int) error {
	if value < minRatingValue || value > maxRatingValue {
		return domain.InvalidInputError{Reason: "rating_value must be between 1 and 5"}
	}
	return nil
}

// Upsert replaces the actor's rating for a target, creating it on first
// submission. The response shape is identical either way; callers cannot
// tell create from update.
func (uc *RatingUsecase) Upsert(ctx context.Context, owner uuid.UUID, target domain.TargetRef, value int) (domain.Rating, error) {
	if err := target.Validate(); err != nil {
		return domain.Rating{}, err
	}
	if err := validateRatingValue(value); err != nil {
		return domain.Rating{}, err
	}

	existing, err := uc.repo.GetByOwnerAndTarget(ctx, owner, target)
	switch {
	case err == nil:
		return uc.repo.UpdateValue(ctx, existing.ID, value)
	case errors.Is(err, domain.ErrNotFound):
		rating := domain.Rating{
			UserID:    owner,
			StoryID:   target.StoryID,
			EpisodeID: target.EpisodeID,
			Value:     value,
		}
		return uc.repo.Create(ctx, rating)
	default:
		return domain.Rating{}, err
	}
}

// Update changes a rating's value by id, owner only.
func (uc *RatingUsecase) Update(ctx context.Context, actor uuid.UUID, id uuid.UUID, value int) (domain.Rating, error) {
	if err := validateRatingValue(value); err != nil {
		return domain.Rating{}, err
	}

	rating, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Rating{}, err
	}
	if err := authorizeOwner(actor, rating, "rating"); err != nil {
		return domain.Rating{}, err
	}
	return uc.repo.UpdateValue(ctx, id, value)
}

// Delete removes a rating by id, owner only.
func (uc *RatingUsecase) Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	rating, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actor, rating, "rating"); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// GetOwn returns the actor's rating for a target, if any.
func (uc *RatingUsecase) GetOwn(ctx context.Context, actor uuid.UUID, target domain.TargetRef) (domain.Rating, error) {
	if err := target.Validate(); err != nil {
		return domain.Rating{}, err
	}
	return uc.repo.GetByOwnerAndTarget(ctx, actor, target)
}

func (uc *RatingUsecase) ListOwn(ctx context.Context, actor uuid.UUID) ([]domain.Rating, error) {
	return uc.repo.ListByOwner(ctx, actor)
}

func (uc *RatingUsecase) ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Rating, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.ListByTarget(ctx, target)
}
