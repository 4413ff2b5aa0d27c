// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finlog/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is a decimal string so values like "19.99" survive the trip exactly.
type CreateTransactionRequest struct {
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description,omitempty" binding:"omitempty,max=255"`
	Notes       string `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Date        string `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// All fields are optional; omitted fields keep their prior values.
type UpdateTransactionRequest struct {
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      *string `json:"amount,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
	Notes       *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Date        *string `json:"date,omitempty"`
}

// TransactionCategoryResponse represents category information embedded in a
// transaction response.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
// Amount is rendered as a JSON number.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	CategoryID  string                       `json:"category_id"`
	Amount      float64                      `json:"amount"`
	Description string                       `json:"description"`
	Notes       string                       `json:"notes"`
	Date        string                       `json:"date"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Skip         int                   `json:"skip"`
	Limit        int                   `json:"limit"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a transaction and its category to a
// TransactionResponse DTO. The category may be nil.
func ToTransactionResponse(transaction *entity.Transaction, category *entity.Category) TransactionResponse {
	response := TransactionResponse{
		ID:          transaction.ID.String(),
		UserID:      transaction.UserID.String(),
		CategoryID:  transaction.CategoryID.String(),
		Amount:      transaction.Amount.InexactFloat64(),
		Description: transaction.Description,
		Notes:       transaction.Notes,
		Date:        transaction.Date.Format("2006-01-02"),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}

	if category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    category.ID.String(),
			Name:  category.Name,
			Color: category.Color,
			Icon:  category.Icon,
			Type:  string(category.Type),
		}
	}

	return response
}

// ToTransactionListResponse converts listed transactions to a TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory, skip, limit int) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, item := range transactions {
		responses[i] = ToTransactionResponse(item.Transaction, item.Category)
	}
	return TransactionListResponse{
		Transactions: responses,
		Skip:         skip,
		Limit:        limit,
		Total:        len(responses),
	}
}
