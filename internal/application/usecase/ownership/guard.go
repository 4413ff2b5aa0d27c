// Package ownership provides the single owner-scoping check applied to every
// category and transaction access. Centralizing the check here prevents the
// class of bug where a new endpoint forgets the filter.
package ownership

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

// Guard resolves entities under the ownership rule: an entity that is absent
// and an entity owned by another user both surface the same not-found error,
// so callers can never leak whether a foreign ID exists.
type Guard struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewGuard creates a new Guard instance.
func NewGuard(categoryRepo adapter.CategoryRepository, transactionRepo adapter.TransactionRepository) *Guard {
	return &Guard{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Category fetches the category with the given ID if it is owned by userID.
func (g *Guard) Category(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := g.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, categoryNotFound()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return nil, categoryNotFound()
	}
	return category, nil
}

// Transaction fetches the transaction with the given ID if it is owned by userID.
func (g *Guard) Transaction(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := g.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, transactionNotFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if transaction.UserID != userID {
		return nil, transactionNotFound()
	}
	return transaction, nil
}

// TransactionWithCategory fetches the transaction and its category if the
// transaction is owned by userID.
func (g *Guard) TransactionWithCategory(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error) {
	twc, err := g.transactionRepo.FindByIDWithCategory(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, transactionNotFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if twc.Transaction.UserID != userID {
		return nil, transactionNotFound()
	}
	return twc, nil
}

func categoryNotFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}

func transactionNotFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
