// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Every query is implicitly scoped to UserID.
type TransactionFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionPagination defines offset pagination options.
type TransactionPagination struct {
	Skip  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithCategory retrieves a transaction with its category by ID.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByFilter retrieves transactions matching the filter, ordered by
	// transaction date descending.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) ([]*entity.TransactionWithCategory, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
