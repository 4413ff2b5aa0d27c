// Package analytics contains the aggregation use cases built over the
// user's transaction ledger.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

// GetSummaryInput represents the input for the financial summary. Both date
// bounds are optional; when present the range is inclusive.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetSummaryOutput represents the computed financial summary. StartDate and
// EndDate echo the requested period.
type GetSummaryOutput struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
	StartDate        *time.Time
	EndDate          *time.Time
}

// GetSummaryUseCase computes income, expense and balance totals over the
// user's ledger. Sums run on decimals in the application layer rather than
// in SQL so the arithmetic is exact regardless of the database backend.
type GetSummaryUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(analyticsRepo adapter.AnalyticsRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	entries, err := uc.analyticsRepo.FindLedger(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, entry := range entries {
		switch entry.CategoryType {
		case entity.CategoryTypeIncome:
			totalIncome = totalIncome.Add(entry.Amount)
		case entity.CategoryTypeExpense:
			totalExpenses = totalExpenses.Add(entry.Amount)
		}
	}

	return &GetSummaryOutput{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		Balance:          totalIncome.Sub(totalExpenses),
		TransactionCount: len(entries),
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
	}, nil
}

func validateDateRange(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}
