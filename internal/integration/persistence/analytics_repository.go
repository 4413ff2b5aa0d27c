// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	"github.com/finlog/backend/internal/integration/persistence/model"
)

// analyticsRepository implements the adapter.AnalyticsRepository interface.
// It only reads raw rows; all summing happens in the application layer on
// decimals, so results do not depend on the database's float arithmetic.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) adapter.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// FindLedger returns the user's ledger entries, optionally bounded by an
// inclusive date range.
func (r *analyticsRepository) FindLedger(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]adapter.LedgerEntry, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID)

	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	var transactionModels []model.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	entries := make([]adapter.LedgerEntry, len(transactionModels))
	for i := range transactionModels {
		m := &transactionModels[i]
		entry := adapter.LedgerEntry{
			Amount:     m.Amount,
			Date:       m.Date,
			CategoryID: m.CategoryID,
		}
		if m.Category != nil {
			entry.CategoryName = m.Category.Name
			entry.CategoryType = entity.CategoryType(m.Category.Type)
			entry.CategoryColor = m.Category.Color
		}
		entries[i] = entry
	}
	return entries, nil
}

// FindRecent returns the user's most recent transactions with categories.
func (r *analyticsRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntityWithCategory()
	}
	return transactions, nil
}
