// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
)

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Color  string // Optional, defaults to entity.DefaultCategoryColor
	Icon   string // Optional, defaults to entity.DefaultCategoryIcon
	Type   entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if len(input.Name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	if input.Color != "" && !isValidHexColor(input.Color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}

	if !isValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'income' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	// Apply default values for optional fields
	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	category := entity.NewCategory(input.Name, color, icon, input.Type, input.UserID)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// isValidHexColor validates hex color format (#XXXXXX or #XXX).
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// isValidCategoryType validates the category type.
func isValidCategoryType(categoryType entity.CategoryType) bool {
	return categoryType == entity.CategoryTypeIncome || categoryType == entity.CategoryTypeExpense
}
