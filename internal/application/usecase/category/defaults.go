// Package category contains category-related use cases.
package category

import (
	"github.com/google/uuid"

	"github.com/finlog/backend/internal/domain/entity"
)

// defaultCategory describes one entry of the starter category set.
type defaultCategory struct {
	name  string
	ctype entity.CategoryType
	color string
	icon  string
}

// defaultCategorySet is the fixed starter set provisioned for every new user
// at registration: 3 income and 7 expense categories.
var defaultCategorySet = []defaultCategory{
	{"Salary", entity.CategoryTypeIncome, "#4CAF50", "💰"},
	{"Freelance", entity.CategoryTypeIncome, "#2196F3", "💻"},
	{"Investment", entity.CategoryTypeIncome, "#FF9800", "📈"},

	{"Food & Dining", entity.CategoryTypeExpense, "#F44336", "🍽️"},
	{"Transportation", entity.CategoryTypeExpense, "#9C27B0", "🚗"},
	{"Shopping", entity.CategoryTypeExpense, "#E91E63", "🛍️"},
	{"Entertainment", entity.CategoryTypeExpense, "#FF5722", "🎬"},
	{"Bills & Utilities", entity.CategoryTypeExpense, "#607D8B", "⚡"},
	{"Healthcare", entity.CategoryTypeExpense, "#009688", "🏥"},
	{"Education", entity.CategoryTypeExpense, "#3F51B5", "📚"},
}

// DefaultCategories builds the starter category entities for a new user.
// The caller persists them together with the user in one transaction.
func DefaultCategories(userID uuid.UUID) []*entity.Category {
	categories := make([]*entity.Category, len(defaultCategorySet))
	for i, dc := range defaultCategorySet {
		categories[i] = entity.NewCategory(dc.name, dc.color, dc.icon, dc.ctype, userID)
	}
	return categories
}
