// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finlog/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
