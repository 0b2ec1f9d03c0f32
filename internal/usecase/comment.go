package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fablestream/fablestream/internal/domain"
)

// CommentRepository defines storage operations for comments.
type CommentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Comment, error)
	ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Comment, error)
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentCreateInput is the validated input for posting a comment.
type CommentCreateInput struct {
	Target   domain.TargetRef
	ParentID *uuid.UUID
	Text     string
}

type CommentUsecase struct {
	repo CommentRepository
}

func NewCommentUsecase(repo CommentRepository) *CommentUsecase {
	return &CommentUsecase{repo: repo}
}

func (uc *CommentUsecase) Create(ctx context.Context, owner uuid.UUID, input CommentCreateInput) (domain.Comment, error) {
	if err := input.Target.Validate(); err != nil {
		return domain.Comment{}, err
	}
	if strings.TrimSpace(input.Text) == "" {
		return domain.Comment{}, domain.InvalidInputError{Reason: "comment_text must not be empty"}
	}

	if input.ParentID != nil {
		// Replies attach to an existing comment on the same target.
		if _, err := uc.repo.GetByID(ctx, *input.ParentID); err != nil {
			return domain.Comment{}, err
		}
	}

	comment := domain.Comment{
		UserID:    owner,
		StoryID:   input.Target.StoryID,
		EpisodeID: input.Target.EpisodeID,
		ParentID:  input.ParentID,
		Text:      input.Text,
	}
	return uc.repo.Create(ctx, comment)
}

// Update rewrites the comment text, owner only. Edited comments carry the
// edited flag from then on.
func (uc *CommentUsecase) Update(ctx context.Context, actor uuid.UUID, id uuid.UUID, text string) (domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, domain.InvalidInputError{Reason: "comment_text must not be empty"}
	}

	comment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := authorizeOwner(actor, comment, "comment"); err != nil {
		return domain.Comment{}, err
	}
	return uc.repo.UpdateText(ctx, id, text)
}

// Delete removes a comment, owner only.
func (uc *CommentUsecase) Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	comment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actor, comment, "comment"); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CommentUsecase) Get(ctx context.Context, id uuid.UUID) (domain.Comment, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *CommentUsecase) ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Comment, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.ListByTarget(ctx, target)
}
