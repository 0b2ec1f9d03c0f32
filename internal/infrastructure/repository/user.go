package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/internal/domain"
	"github.com/fablestream/fablestream/internal/infrastructure/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userToDomain(m models.User) domain.User {
	return domain.User{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		CreatedAt: m.CreatedAt,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return domain.User{}, err
	}
	return userToDomain(user), nil
}
