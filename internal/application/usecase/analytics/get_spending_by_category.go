// Package analytics contains the aggregation use cases built over the
// user's transaction ledger.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
)

// GetSpendingByCategoryInput represents the input for the per-category
// spending breakdown. Both date bounds are optional.
type GetSpendingByCategoryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// CategorySpending is one row of the breakdown. Percentage is always zero:
// the API contract leaves share-of-total computation to the client.
type CategorySpending struct {
	CategoryID   uuid.UUID
	CategoryName string
	Color        string
	Amount       decimal.Decimal
	Percentage   float64
}

// GetSpendingByCategoryOutput represents the breakdown result.
type GetSpendingByCategoryOutput struct {
	Spending []CategorySpending
}

// GetSpendingByCategoryUseCase groups expense transactions by category and
// sums them. Income categories are excluded. Rows are ordered by amount
// descending so the biggest spending bucket comes first.
type GetSpendingByCategoryUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetSpendingByCategoryUseCase creates a new GetSpendingByCategoryUseCase instance.
func NewGetSpendingByCategoryUseCase(analyticsRepo adapter.AnalyticsRepository) *GetSpendingByCategoryUseCase {
	return &GetSpendingByCategoryUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute computes the spending breakdown.
func (uc *GetSpendingByCategoryUseCase) Execute(ctx context.Context, input GetSpendingByCategoryInput) (*GetSpendingByCategoryOutput, error) {
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	entries, err := uc.analyticsRepo.FindLedger(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	totals := make(map[uuid.UUID]*CategorySpending)
	for _, entry := range entries {
		if entry.CategoryType != entity.CategoryTypeExpense {
			continue
		}
		row, ok := totals[entry.CategoryID]
		if !ok {
			row = &CategorySpending{
				CategoryID:   entry.CategoryID,
				CategoryName: entry.CategoryName,
				Color:        entry.CategoryColor,
				Amount:       decimal.Zero,
			}
			totals[entry.CategoryID] = row
		}
		row.Amount = row.Amount.Add(entry.Amount)
	}

	spending := make([]CategorySpending, 0, len(totals))
	for _, row := range totals {
		spending = append(spending, *row)
	}
	sort.Slice(spending, func(i, j int) bool {
		if spending[i].Amount.Equal(spending[j].Amount) {
			return spending[i].CategoryName < spending[j].CategoryName
		}
		return spending[i].Amount.GreaterThan(spending[j].Amount)
	})

	return &GetSpendingByCategoryOutput{
		Spending: spending,
	}, nil
}
