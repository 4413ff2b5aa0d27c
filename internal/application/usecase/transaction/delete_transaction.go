// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/application/usecase/ownership"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	guard           *ownership.Guard
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	guard *ownership.Guard,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		guard:           guard,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if _, err := uc.guard.Transaction(ctx, input.TransactionID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
