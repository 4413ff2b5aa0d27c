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

// GetMonthlyTrendsInput represents the input for the monthly trend series.
type GetMonthlyTrendsInput struct {
	UserID uuid.UUID
	Year   int
}

// MonthlyTrend is one month's totals. Month is 1-12.
type MonthlyTrend struct {
	Month    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// GetMonthlyTrendsOutput represents the trend series for a year.
type GetMonthlyTrendsOutput struct {
	Year   int
	Trends []MonthlyTrend
}

// GetMonthlyTrendsUseCase computes per-month income/expense totals for one
// calendar year. The series is dense: all twelve months are present, months
// without transactions carry zero totals.
type GetMonthlyTrendsUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetMonthlyTrendsUseCase creates a new GetMonthlyTrendsUseCase instance.
func NewGetMonthlyTrendsUseCase(analyticsRepo adapter.AnalyticsRepository) *GetMonthlyTrendsUseCase {
	return &GetMonthlyTrendsUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute computes the monthly trend series.
func (uc *GetMonthlyTrendsUseCase) Execute(ctx context.Context, input GetMonthlyTrendsInput) (*GetMonthlyTrendsOutput, error) {
	if input.Year == 0 {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingYear,
			"year is required",
			domainerror.ErrMissingYear,
		)
	}

	yearStart := time.Date(input.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(input.Year, time.December, 31, 23, 59, 59, 999999999, time.UTC)

	entries, err := uc.analyticsRepo.FindLedger(ctx, input.UserID, &yearStart, &yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	trends := make([]MonthlyTrend, 12)
	for i := range trends {
		trends[i] = MonthlyTrend{
			Month:    i + 1,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Balance:  decimal.Zero,
		}
	}

	for _, entry := range entries {
		if entry.Date.Year() != input.Year {
			continue
		}
		month := int(entry.Date.Month()) - 1
		switch entry.CategoryType {
		case entity.CategoryTypeIncome:
			trends[month].Income = trends[month].Income.Add(entry.Amount)
		case entity.CategoryTypeExpense:
			trends[month].Expenses = trends[month].Expenses.Add(entry.Amount)
		}
	}

	for i := range trends {
		trends[i].Balance = trends[i].Income.Sub(trends[i].Expenses)
	}

	return &GetMonthlyTrendsOutput{
		Year:   input.Year,
		Trends: trends,
	}, nil
}
