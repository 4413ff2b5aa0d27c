// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"

	"github.com/finlog/backend/internal/domain/entity"
)

func TestAnalyticsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("ledger carries category details", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		owner := seedUser(t, db, "ana@example.com")
		salary := seedCategory(t, db, owner.ID, "Salary", entity.CategoryTypeIncome)
		seedTransaction(t, db, owner.ID, salary.ID, "1000.00", date(2024, 1, 15))

		entries, err := repo.FindLedger(ctx, owner.ID, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 ledger entry, got %d", len(entries))
		}
		entry := entries[0]
		if !entry.Amount.Equal(mustDecimal(t, "1000.00")) {
			t.Errorf("expected amount 1000.00, got %s", entry.Amount)
		}
		if entry.CategoryName != "Salary" || entry.CategoryType != entity.CategoryTypeIncome {
			t.Errorf("expected category details on the entry, got %+v", entry)
		}
	})

	t.Run("ledger respects inclusive date bounds and ownership", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		owner := seedUser(t, db, "ana@example.com")
		other := seedUser(t, db, "bob@example.com")
		food := seedCategory(t, db, owner.ID, "Food", entity.CategoryTypeExpense)
		alien := seedCategory(t, db, other.ID, "Alien", entity.CategoryTypeExpense)

		seedTransaction(t, db, owner.ID, food.ID, "10.00", date(2024, 1, 31))
		seedTransaction(t, db, owner.ID, food.ID, "20.00", date(2024, 2, 1))
		seedTransaction(t, db, owner.ID, food.ID, "30.00", date(2024, 2, 29))
		seedTransaction(t, db, owner.ID, food.ID, "40.00", date(2024, 3, 1))
		seedTransaction(t, db, other.ID, alien.ID, "99.00", date(2024, 2, 15))

		start := date(2024, 2, 1)
		end := date(2024, 2, 29)
		entries, err := repo.FindLedger(ctx, owner.ID, &start, &end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected the 2 February entries, got %d", len(entries))
		}
		for _, entry := range entries {
			if entry.Date.Before(start) || entry.Date.After(end) {
				t.Errorf("entry outside the bounds: %s", entry.Date)
			}
		}
	})

	t.Run("recent returns newest first, capped at the limit", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAnalyticsRepository(db)
		owner := seedUser(t, db, "ana@example.com")
		food := seedCategory(t, db, owner.ID, "Food", entity.CategoryTypeExpense)

		for day := 1; day <= 4; day++ {
			seedTransaction(t, db, owner.ID, food.ID, "10.00", date(2024, 1, day))
		}

		recent, err := repo.FindRecent(ctx, owner.ID, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recent) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(recent))
		}
		if recent[0].Transaction.Date.Day() != 4 || recent[2].Transaction.Date.Day() != 2 {
			t.Errorf("expected newest first, got days %d..%d", recent[0].Transaction.Date.Day(), recent[2].Transaction.Date.Day())
		}
		if recent[0].Category == nil || recent[0].Category.Name != "Food" {
			t.Error("expected categories to be loaded on recent transactions")
		}
	})
}
