// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

const (
	// MaxListLimit is the maximum page size for transaction listing.
	MaxListLimit = 100
	// DefaultListLimit is the page size applied when none is requested.
	DefaultListLimit = 100
)

// ListTransactionsInput represents the input for listing transactions.
// Skip defaults to 0, Limit to DefaultListLimit when nil.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	Skip       *int
	Limit      *int
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
	Skip         int
	Limit        int
}

// ListTransactionsUseCase handles paginated, filtered transaction listing.
// Results are always ordered by transaction date descending.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	skip := 0
	if input.Skip != nil {
		if *input.Skip < 0 {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidListLimit,
				"skip must be greater than or equal to 0",
				domainerror.ErrInvalidListLimit,
			)
		}
		skip = *input.Skip
	}

	limit := DefaultListLimit
	if input.Limit != nil {
		if *input.Limit < 1 || *input.Limit > MaxListLimit {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidListLimit,
				fmt.Sprintf("limit must be between 1 and %d", MaxListLimit),
				domainerror.ErrInvalidListLimit,
			)
		}
		limit = *input.Limit
	}

	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"end_date must not be before start_date",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	pagination := adapter.TransactionPagination{
		Skip:  skip,
		Limit: limit,
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Skip:         skip,
		Limit:        limit,
	}, nil
}
