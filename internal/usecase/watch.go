package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fablestream/fablestream/internal/domain"
)

// WatchRepository defines storage operations for continue-watching entries.
type WatchRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.WatchProgress, error)
	GetByOwnerAndEpisode(ctx context.Context, owner uuid.UUID, episodeID uuid.UUID) (domain.WatchProgress, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.WatchProgress, error)
	Create(ctx context.Context, entry domain.WatchProgress) (domain.WatchProgress, error)
	Update(ctx context.Context, entry domain.WatchProgress) (domain.WatchProgress, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// completionRatio is the watched fraction at which an episode counts as
// finished when the client reports a total duration.
const completionRatio = 0.9

// ProgressInput is a client-reported playback position. The server accepts
// whatever position the client submits; there is no monotonic enforcement.
type ProgressInput struct {
	StoryID         uuid.UUID
	EpisodeID       uuid.UUID
	ProgressSeconds int
	TotalDuration   *int
}

type WatchUsecase struct {
	repo WatchRepository
}

func NewWatchUsecase(repo WatchRepository) *WatchUsecase {
	return &WatchUsecase{repo: repo}
}

func completed(progress int, duration *int) bool {
	if duration == nil || *duration <= 0 {
		return false
	}
	return float64(progress) >= float64(*duration)*completionRatio
}

// SaveProgress upserts the (owner, episode) entry. An existing entry keeps
// its known duration when the client omits one; the completed flag is
// recomputed whenever a duration is known.
func (uc *WatchUsecase) SaveProgress(ctx context.Context, owner uuid.UUID, input ProgressInput) (domain.WatchProgress, error) {
	if input.ProgressSeconds < 0 {
		return domain.WatchProgress{}, domain.InvalidInputError{Reason: "progress_seconds must not be negative"}
	}

	existing, err := uc.repo.GetByOwnerAndEpisode(ctx, owner, input.EpisodeID)
	switch {
	case err == nil:
		existing.ProgressSeconds = input.ProgressSeconds
		if input.TotalDuration != nil {
			existing.TotalDuration = input.TotalDuration
		}
		existing.Completed = completed(input.ProgressSeconds, existing.TotalDuration)
		return uc.repo.Update(ctx, existing)
	case errors.Is(err, domain.ErrNotFound):
		entry := domain.WatchProgress{
			UserID:          owner,
			StoryID:         input.StoryID,
			EpisodeID:       input.EpisodeID,
			ProgressSeconds: input.ProgressSeconds,
			TotalDuration:   input.TotalDuration,
			Completed:       completed(input.ProgressSeconds, input.TotalDuration),
		}
		return uc.repo.Create(ctx, entry)
	default:
		return domain.WatchProgress{}, err
	}
}

// MarkCompleted sets the completed flag explicitly, independent of progress.
func (uc *WatchUsecase) MarkCompleted(ctx context.Context, owner uuid.UUID, episodeID uuid.UUID) (domain.WatchProgress, error) {
	entry, err := uc.repo.GetByOwnerAndEpisode(ctx, owner, episodeID)
	if err != nil {
		return domain.WatchProgress{}, err
	}
	entry.Completed = true
	return uc.repo.Update(ctx, entry)
}

// GetForEpisode returns the actor's entry for an episode.
func (uc *WatchUsecase) GetForEpisode(ctx context.Context, actor uuid.UUID, episodeID uuid.UUID) (domain.WatchProgress, error) {
	return uc.repo.GetByOwnerAndEpisode(ctx, actor, episodeID)
}

func (uc *WatchUsecase) ListOwn(ctx context.Context, actor uuid.UUID) ([]domain.WatchProgress, error) {
	return uc.repo.ListByOwner(ctx, actor)
}

// Delete removes an entry by id, owner only.
func (uc *WatchUsecase) Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	entry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actor, entry, "continue watching entry"); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
