// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID       uuid.UUID
	CategoryType *entity.CategoryType // Optional filter by category type
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing the acting user's categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	var categories []*entity.Category
	var err error

	if input.CategoryType != nil {
		categories, err = uc.categoryRepo.FindByUserAndType(ctx, input.UserID, *input.CategoryType)
	} else {
		categories, err = uc.categoryRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
