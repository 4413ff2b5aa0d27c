// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("lists only the owner's categories, ordered by name", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepository(db)
		owner := seedUser(t, db, "ana@example.com")
		other := seedUser(t, db, "bob@example.com")

		seedCategory(t, db, owner.ID, "Transportation", entity.CategoryTypeExpense)
		seedCategory(t, db, owner.ID, "Food & Dining", entity.CategoryTypeExpense)
		seedCategory(t, db, other.ID, "Alien Expenses", entity.CategoryTypeExpense)

		categories, err := repo.FindByUser(ctx, owner.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[0].Name != "Food & Dining" || categories[1].Name != "Transportation" {
			t.Errorf("expected name ordering, got %q then %q", categories[0].Name, categories[1].Name)
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepository(db)
		owner := seedUser(t, db, "ana@example.com")

		seedCategory(t, db, owner.ID, "Salary", entity.CategoryTypeIncome)
		seedCategory(t, db, owner.ID, "Food & Dining", entity.CategoryTypeExpense)

		income, err := repo.FindByUserAndType(ctx, owner.ID, entity.CategoryTypeIncome)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(income) != 1 || income[0].Name != "Salary" {
			t.Errorf("expected only the income category, got %+v", income)
		}
	})

	t.Run("update persists changed fields", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepository(db)
		owner := seedUser(t, db, "ana@example.com")
		category := seedCategory(t, db, owner.ID, "Food", entity.CategoryTypeExpense)

		category.Name = "Groceries"
		category.Color = "#F44336"
		if err := repo.Update(ctx, category); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, category.ID)
		if err != nil {
			t.Fatalf("failed to reload category: %v", err)
		}
		if found.Name != "Groceries" || found.Color != "#F44336" {
			t.Errorf("update did not persist: %+v", found)
		}
	})

	t.Run("missing category maps to the domain sentinel", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("counts transactions referencing the category", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepository(db)
		owner := seedUser(t, db, "ana@example.com")
		food := seedCategory(t, db, owner.ID, "Food", entity.CategoryTypeExpense)
		transport := seedCategory(t, db, owner.ID, "Transport", entity.CategoryTypeExpense)

		seedTransaction(t, db, owner.ID, food.ID, "10.00", date(2024, 1, 1))
		seedTransaction(t, db, owner.ID, food.ID, "20.00", date(2024, 1, 2))

		count, err := repo.CountTransactions(ctx, food.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 transactions, got %d", count)
		}

		count, err = repo.CountTransactions(ctx, transport.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0 transactions, got %d", count)
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepository(db)
		owner := seedUser(t, db, "ana@example.com")
		category := seedCategory(t, db, owner.ID, "Food", entity.CategoryTypeExpense)

		if err := repo.Delete(ctx, category.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, category.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected the category to be gone, got %v", err)
		}
	})
}
