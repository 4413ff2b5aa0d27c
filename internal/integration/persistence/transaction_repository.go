// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
	"github.com/finlog/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDWithCategory retrieves a transaction with its category by ID.
func (r *transactionRepository) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithCategory(), nil
}

// FindByFilter retrieves transactions matching the filter, newest first by
// transaction date.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) ([]*entity.TransactionWithCategory, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var transactionModels []model.TransactionModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(pagination.Skip).
		Limit(pagination.Limit).
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

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Save(model.TransactionFromEntity(transaction)).Error
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id).Error
}
