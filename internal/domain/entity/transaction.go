// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single monetary event recorded by a user.
// Date is the date the transaction occurred, which is distinct from
// CreatedAt. The category must belong to the same user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Notes       string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	description string,
	notes string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Notes:       notes,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory represents a transaction with its owning category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
