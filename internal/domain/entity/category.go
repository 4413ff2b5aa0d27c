// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (income or expense).
// A transaction contributes to the income or expense aggregate bucket
// according to its category's type; the type is never stored on the
// transaction itself.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a named transaction bucket owned by a single user.
// The Type is fixed at creation; update paths only touch name, color and icon.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	Type      CategoryType
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. Defaulting of color and icon
// is an application-layer responsibility and happens before this call.
func NewCategory(name, color, icon string, categoryType CategoryType, userID uuid.UUID) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		Type:      categoryType,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
