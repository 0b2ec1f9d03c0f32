package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/internal/infrastructure/database/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func commentToDomain(m models.Comment) domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		StoryID:   m.StoryID,
		EpisodeID: m.EpisodeID,
		UserID:    m.UserID,
		ParentID:  m.ParentID,
		Text:      m.Text,
		Edited:    m.Edited,
		LikeCount: m.LikeCount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Comment{}, domain.NotFoundError{Resource: "comment"}
	}
	if err != nil {
		return domain.Comment{}, err
	}
	return commentToDomain(comment), nil
}

func (r *CommentRepository) ListByTarget(ctx context.Context, target domain.TargetRef) ([]domain.Comment, error) {
	var comments []models.Comment
	err := scopeTarget(r.db.WithContext(ctx), target).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		out = append(out, commentToDomain(comment))
	}
	return out, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	record := models.Comment{
		StoryID:   comment.StoryID,
		EpisodeID: comment.EpisodeID,
		UserID:    comment.UserID,
		ParentID:  comment.ParentID,
		Text:      comment.Text,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Comment{}, err
	}
	return commentToDomain(record), nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) (domain.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Comment{}).Where("id = ?", id).
			Updates(map[string]any{"text": text, "edited": true})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "comment"}
		}
		return tx.Where("id = ?", id).Take(&comment).Error
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return commentToDomain(comment), nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "comment"}
	}
	return nil
}
