package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fablestream/fablestream/internal/domain"
)

type mockCommentRepo struct {
	comments map[uuid.UUID]domain.Comment
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: map[uuid.UUID]domain.Comment{}}
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return domain.Comment{}, domain.NotFoundError{Resource: "comment"}
	}
	return comment, nil
}

func (m *mockCommentRepo) ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, comment := range m.comments {
		if target.StoryID != nil && comment.StoryID != nil && *comment.StoryID == *target.StoryID {
			out = append(out, comment)
		}
		if target.EpisodeID != nil && comment.EpisodeID != nil && *comment.EpisodeID == *target.EpisodeID {
			out = append(out, comment)
		}
	}
	return out, nil
}

func (m *mockCommentRepo) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	m.comments[comment.ID] = comment
	return comment, nil
}

func (m *mockCommentRepo) UpdateText(ctx context.Context, id uuid.UUID, text string) (domain.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return domain.Comment{}, domain.NotFoundError{Resource: "comment"}
	}
	comment.Text = text
	comment.Edited = true
	comment.UpdatedAt = time.Now()
	m.comments[id] = comment
	return comment, nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.comments[id]; !ok {
		return domain.NotFoundError{Resource: "comment"}
	}
	delete(m.comments, id)
	return nil
}

func TestCommentUpdateOwnerOnly(t *testing.T) {
	repo := newMockCommentRepo()
	uc := NewCommentUsecase(repo)

	userA := uuid.New()
	userB := uuid.New()
	episodeID := uuid.New()

	created, err := uc.Create(context.Background(), userA, CommentCreateInput{
		Target: domain.EpisodeTarget(episodeID),
		Text:   "first watch, loving it",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// A different subject must be rejected and the text must not change.
	_, err = uc.Update(context.Background(), userB, created.ID, "hijacked")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
	current, _ := repo.GetByID(context.Background(), created.ID)
	if current.Text != "first watch, loving it" {
		t.Fatalf("comment text changed after forbidden update: %q", current.Text)
	}
	if current.UserID != userA {
		t.Fatalf("owner changed after forbidden update")
	}

	updated, err := uc.Update(context.Background(), userA, created.ID, "second watch, still loving it")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Text != "second watch, still loving it" {
		t.Fatalf("unexpected text %q", updated.Text)
	}
	if !updated.Edited {
		t.Fatalf("expected edited flag set")
	}
	if updated.UserID != userA {
		t.Fatalf("owner must not change on update")
	}
}

func TestCommentUpdateMissing(t *testing.T) {
	uc := NewCommentUsecase(newMockCommentRepo())

	_, err := uc.Update(context.Background(), uuid.New(), uuid.New(), "text")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestCommentCreateValidation(t *testing.T) {
	uc := NewCommentUsecase(newMockCommentRepo())

	storyID := uuid.New()
	episodeID := uuid.New()

	_, err := uc.Create(context.Background(), uuid.New(), CommentCreateInput{
		Target: domain.TargetRef{StoryID: &storyID, EpisodeID: &episodeID},
		Text:   "both targets",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for double target got %v", err)
	}

	_, err = uc.Create(context.Background(), uuid.New(), CommentCreateInput{
		Target: domain.StoryTarget(storyID),
		Text:   "   ",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank text got %v", err)
	}
}

func TestCommentReplyRequiresParent(t *testing.T) {
	uc := NewCommentUsecase(newMockCommentRepo())

	parentID := uuid.New()
	_, err := uc.Create(context.Background(), uuid.New(), CommentCreateInput{
		Target:   domain.StoryTarget(uuid.New()),
		ParentID: &parentID,
		Text:     "reply to nothing",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestCommentDeleteOwnership(t *testing.T) {
	repo := newMockCommentRepo()
	uc := NewCommentUsecase(repo)

	owner := uuid.New()
	created, err := uc.Create(context.Background(), owner, CommentCreateInput{
		Target: domain.StoryTarget(uuid.New()),
		Text:   "to be deleted",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.Delete(context.Background(), uuid.New(), created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
	if err := uc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.comments) != 0 {
		t.Fatalf("expected comment removed")
	}
}
