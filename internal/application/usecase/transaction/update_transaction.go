// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/application/usecase/ownership"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. Fields
// left nil retain their prior values. A new CategoryID is re-checked through
// the ownership guard before it replaces the old reference.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Description   *string
	Notes         *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	guard           *ownership.Guard
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	guard *ownership.Guard,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		guard:           guard,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.guard.TransactionWithCategory(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	transaction := existing.Transaction
	category := existing.Category

	if input.CategoryID != nil && *input.CategoryID != transaction.CategoryID {
		newCategory, err := uc.guard.Category(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = *input.CategoryID
		category = newCategory
	}

	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}

	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		transaction.Description = *input.Description
	}

	if input.Notes != nil {
		if err := validateNotes(*input.Notes); err != nil {
			return nil, err
		}
		transaction.Notes = *input.Notes
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"transaction date must not be empty",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = *input.Date
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
		Category:    category,
	}, nil
}
