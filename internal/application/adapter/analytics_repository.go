// Package adapter contains the contracts the application layer depends on.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlog/backend/internal/domain/entity"
)

// LedgerEntry is a flattened transaction row carrying the category fields the
// aggregation operations need. Amounts stay decimal so sums are exact.
type LedgerEntry struct {
	Amount        decimal.Decimal
	Date          time.Time
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryType  entity.CategoryType
	CategoryColor string
}

// AnalyticsRepository provides read access to a user's ledger for the
// aggregation use cases. All aggregation happens in the application layer
// over the returned rows.
type AnalyticsRepository interface {
	// FindLedger returns the user's ledger entries, optionally bounded by an
	// inclusive date range. A nil bound leaves that side open.
	FindLedger(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]LedgerEntry, error)

	// FindRecent returns the user's most recent transactions with categories,
	// ordered by transaction date descending, capped at limit.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error)
}
