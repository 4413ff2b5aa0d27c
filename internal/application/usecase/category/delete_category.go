// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/application/usecase/ownership"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion. Deletion is restricted:
// a category still referenced by transactions is rejected with an explicit
// error instead of cascading or orphaning the rows.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	guard        *ownership.Guard
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, guard *ownership.Guard) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if _, err := uc.guard.Category(ctx, input.CategoryID, input.UserID); err != nil {
		return nil, err
	}

	count, err := uc.categoryRepo.CountTransactions(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("category has %d transactions and cannot be deleted", count),
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
