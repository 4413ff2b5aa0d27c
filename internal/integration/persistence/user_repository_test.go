// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/usecase/category"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
	"github.com/finlog/backend/internal/integration/persistence/model"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user together with starter categories", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		user := entity.NewUser("ana@example.com", "Ana Souza", "hashed-password")
		starters := category.DefaultCategories(user.ID)
		if err := repo.CreateWithCategories(ctx, user, starters); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("failed to find user: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}

		categories, err := NewCategoryRepository(db).FindByUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("failed to list categories: %v", err)
		}
		if len(categories) != len(starters) {
			t.Errorf("expected %d starter categories, got %d", len(starters), len(categories))
		}
	})

	t.Run("duplicate email maps to the domain sentinel and rolls back", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		first := entity.NewUser("ana@example.com", "Ana Souza", "hash-one")
		if err := repo.CreateWithCategories(ctx, first, category.DefaultCategories(first.ID)); err != nil {
			t.Fatalf("first create failed: %v", err)
		}

		second := entity.NewUser("ana@example.com", "Impostor", "hash-two")
		err := repo.CreateWithCategories(ctx, second, category.DefaultCategories(second.ID))
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}

		var categoryCount int64
		if err := db.Model(&model.CategoryModel{}).Count(&categoryCount).Error; err != nil {
			t.Fatalf("failed to count categories: %v", err)
		}
		if categoryCount != 10 {
			t.Errorf("losing registration must not leave categories behind, got %d", categoryCount)
		}
	})

	t.Run("missing users map to the domain sentinel", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound by ID, got %v", err)
		}
		if _, err := repo.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound by email, got %v", err)
		}
	})

	t.Run("exists by email", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		seedUser(t, db, "ana@example.com")

		exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
		if err != nil || !exists {
			t.Errorf("expected existing email to be reported, got %v/%v", exists, err)
		}
		exists, err = repo.ExistsByEmail(ctx, "ghost@example.com")
		if err != nil || exists {
			t.Errorf("expected unknown email to be absent, got %v/%v", exists, err)
		}
	})
}
