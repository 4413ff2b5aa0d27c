// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// CreateWithCategories creates a new user together with their starter
	// categories in a single database transaction. If any insert fails the
	// whole registration is rolled back.
	CreateWithCategories(ctx context.Context, user *entity.User, categories []*entity.Category) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
