// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Color     string    `gorm:"type:varchar(7);not null"`
	Icon      string    `gorm:"type:varchar(50);not null"`
	Type      string    `gorm:"type:varchar(10);not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		Icon:      m.Icon,
		Type:      entity.CategoryType(m.Type),
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		Type:      string(category.Type),
		UserID:    category.UserID,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
