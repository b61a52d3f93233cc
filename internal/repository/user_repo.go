package repository

import (
	"context"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*UserRow, error) {
	var row UserRow
	if err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*UserRow, error) {
	var row UserRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
