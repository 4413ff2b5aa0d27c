// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/application/usecase/ownership"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Only name,
// color and icon can change; the category type is fixed at creation because
// existing transactions aggregate under it.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Color      *string
	Icon       *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	guard        *ownership.Guard
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, guard *ownership.Guard) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// Execute performs the category update with partial semantics: fields left
// nil retain their prior values.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.guard.Category(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if len(*input.Name) > MaxCategoryNameLength {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameTooLong,
				fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
				domainerror.ErrCategoryNameTooLong,
			)
		}
		category.Name = *input.Name
	}

	if input.Color != nil {
		if !isValidHexColor(*input.Color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidColorFormat,
				"color must be a valid hex format (#XXXXXX)",
				domainerror.ErrInvalidColorFormat,
			)
		}
		category.Color = *input.Color
	}

	if input.Icon != nil {
		category.Icon = *input.Icon
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
