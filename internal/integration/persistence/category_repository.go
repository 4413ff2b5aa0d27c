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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUser retrieves all categories for a given user, ordered by name.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCategoryEntities(categoryModels), nil
}

// FindByUserAndType retrieves categories for a given user filtered by type.
func (r *categoryRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(categoryType)).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCategoryEntities(categoryModels), nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(model.CategoryFromEntity(category)).Error
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id).Error
}

// CountTransactions counts transactions referencing the category.
func (r *categoryRepository) CountTransactions(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category_id = ?", id).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func toCategoryEntities(models []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, len(models))
	for i := range models {
		categories[i] = models[i].ToEntity()
	}
	return categories
}
