// Package analytics contains the aggregation use cases built over the
// user's transaction ledger.
package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

const (
	// MaxRecentLimit is the largest allowed recent-transactions page.
	MaxRecentLimit = 50
	// DefaultRecentLimit is applied when no limit is requested.
	DefaultRecentLimit = 10
)

// GetRecentTransactionsInput represents the input for the recent list.
// Limit defaults to DefaultRecentLimit when nil.
type GetRecentTransactionsInput struct {
	UserID uuid.UUID
	Limit  *int
}

// GetRecentTransactionsOutput represents the recent transactions result.
type GetRecentTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// GetRecentTransactionsUseCase returns the user's newest transactions by
// transaction date with their categories embedded.
type GetRecentTransactionsUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetRecentTransactionsUseCase creates a new GetRecentTransactionsUseCase instance.
func NewGetRecentTransactionsUseCase(analyticsRepo adapter.AnalyticsRepository) *GetRecentTransactionsUseCase {
	return &GetRecentTransactionsUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute fetches the recent transactions.
func (uc *GetRecentTransactionsUseCase) Execute(ctx context.Context, input GetRecentTransactionsInput) (*GetRecentTransactionsOutput, error) {
	limit := DefaultRecentLimit
	if input.Limit != nil {
		if *input.Limit < 1 || *input.Limit > MaxRecentLimit {
			return nil, domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidRecentLimit,
				fmt.Sprintf("limit must be between 1 and %d", MaxRecentLimit),
				domainerror.ErrInvalidRecentLimit,
			)
		}
		limit = *input.Limit
	}

	transactions, err := uc.analyticsRepo.FindRecent(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	return &GetRecentTransactionsOutput{
		Transactions: transactions,
	}, nil
}
