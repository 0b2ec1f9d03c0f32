package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fablestream/fablestream/internal/domain"
)

// LikeRepository defines storage operations for likes.
type LikeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Like, error)
	GetByOwnerAndTarget(ctx context.Context, owner uuid.UUID, target domain.TargetRef) (domain.Like, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Like, error)
	ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Like, error)
	Create(ctx context.Context, like domain.Like) (domain.Like, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ToggleResult reports which side of the toggle a call landed on.
type ToggleResult struct {
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
}

type LikeUsecase struct {
	repo LikeRepository
}

func NewLikeUsecase(repo LikeRepository) *LikeUsecase {
	return &LikeUsecase{repo: repo}
}

// Toggle flips the like state for the (owner, target) pair: an existing like
// is removed, a missing one is created. Two consecutive calls are an
// involution, returning the pair to its original state.
func (uc *LikeUsecase) Toggle(ctx context.Context, owner uuid.UUID, target domain.TargetRef) (ToggleResult, error) {
	if err := target.Validate(); err != nil {
		return ToggleResult{}, err
	}

	existing, err := uc.repo.GetByOwnerAndTarget(ctx, owner, target)
	switch {
	case err == nil:
		if err := uc.repo.Delete(ctx, existing.ID); err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Liked: false, Message: "like removed"}, nil
	case errors.Is(err, domain.ErrNotFound):
		like := domain.Like{
			UserID:    owner,
			StoryID:   target.StoryID,
			EpisodeID: target.EpisodeID,
		}
		if _, err := uc.repo.Create(ctx, like); err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Liked: true, Message: "liked"}, nil
	default:
		return ToggleResult{}, err
	}
}

// Delete removes a like by id, owner only.
func (uc *LikeUsecase) Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	like, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actor, like, "like"); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// GetOwn returns the actor's like for a target, if any.
func (uc *LikeUsecase) GetOwn(ctx context.Context, actor uuid.UUID, target domain.TargetRef) (domain.Like, error) {
	if err := target.Validate(); err != nil {
		return domain.Like{}, err
	}
	return uc.repo.GetByOwnerAndTarget(ctx, actor, target)
}

func (uc *LikeUsecase) ListOwn(ctx context.Context, actor uuid.UUID) ([]domain.Like, error) {
	return uc.repo.ListByOwner(ctx, actor)
}

func (uc *LikeUsecase) ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Like, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.ListByTarget(ctx, target)
}
