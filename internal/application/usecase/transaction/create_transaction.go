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

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Notes       string
	Date        time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// CreateTransactionUseCase handles transaction creation logic. The referenced
// category is resolved through the ownership guard before anything is written,
// so a missing or foreign category fails the whole operation with no partial
// state.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	guard           *ownership.Guard
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	guard *ownership.Guard,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		guard:           guard,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	category, err := uc.guard.Category(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.CategoryID,
		input.Amount,
		input.Description,
		input.Notes,
		input.Date,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
		Category:    category,
	}, nil
}

func validateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func validateNotes(notes string) error {
	if len(notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	return nil
}
