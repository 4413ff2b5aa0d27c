// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
	"github.com/finlog/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateWithCategories creates the user and their starter categories in one
// database transaction. A duplicate email losing the race at the unique index
// comes back as domainerror.ErrEmailAlreadyExists.
func (r *userRepository) CreateWithCategories(ctx context.Context, user *entity.User, categories []*entity.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.FromEntity(user)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domainerror.ErrEmailAlreadyExists
			}
			return err
		}

		for _, category := range categories {
			if err := tx.Create(model.CategoryFromEntity(category)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// ExistsByEmail checks if a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
