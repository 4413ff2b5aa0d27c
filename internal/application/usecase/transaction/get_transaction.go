// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/usecase/ownership"
	"github.com/finlog/backend/internal/domain/entity"
)

// GetTransactionInput represents the input for fetching a single transaction.
type GetTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// GetTransactionOutput represents the output of fetching a single transaction.
type GetTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// GetTransactionUseCase handles fetching a single owned transaction with its
// category embedded.
type GetTransactionUseCase struct {
	guard *ownership.Guard
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(guard *ownership.Guard) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		guard: guard,
	}
}

// Execute fetches the transaction under the ownership rule.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	transaction, err := uc.guard.TransactionWithCategory(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetTransactionOutput{
		Transaction: transaction,
	}, nil
}
