// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finlog/backend/internal/domain/entity"
	"github.com/finlog/backend/internal/integration/persistence/model"
)

// newTestDB opens an in-memory sqlite database with the same schema and
// error translation the real connection uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}, &model.CategoryModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedUser persists a user without starter categories and returns it.
func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := entity.NewUser(email, "Test User", "hashed-password")
	if err := NewUserRepository(db).CreateWithCategories(context.Background(), user, nil); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// seedCategory persists a category owned by the given user.
func seedCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()

	category := entity.NewCategory(name, "#6366F1", "tag", categoryType, userID)
	if err := NewCategoryRepository(db).Create(context.Background(), category); err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

// seedTransaction persists a transaction and returns it.
func seedTransaction(t *testing.T, db *gorm.DB, userID, categoryID uuid.UUID, amount string, day time.Time) *entity.Transaction {
	t.Helper()

	transaction := entity.NewTransaction(userID, categoryID, mustDecimal(t, amount), "seeded", "", day)
	if err := NewTransactionRepository(db).Create(context.Background(), transaction); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return transaction
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", value, err)
	}
	return d
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
