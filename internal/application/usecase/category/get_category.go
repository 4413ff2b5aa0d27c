// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/usecase/ownership"
	"github.com/finlog/backend/internal/domain/entity"
)

// GetCategoryInput represents the input for fetching a single category.
type GetCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// GetCategoryOutput represents the output of fetching a single category.
type GetCategoryOutput struct {
	Category *entity.Category
}

// GetCategoryUseCase handles fetching a single owned category.
type GetCategoryUseCase struct {
	guard *ownership.Guard
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(guard *ownership.Guard) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		guard: guard,
	}
}

// Execute fetches the category under the ownership rule.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := uc.guard.Category(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetCategoryOutput{
		Category: category,
	}, nil
}
