// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finlog/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
// Color and icon fall back to server defaults when omitted.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Type  string `json:"type" binding:"required,oneof=income expense"`
}

// UpdateCategoryRequest represents the request body for category update.
// The type field is absent on purpose: a category's type cannot change.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		Type:      string(category.Type),
		UserID:    category.UserID.String(),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts a slice of categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Categories: responses,
		Total:      len(responses),
	}
}
