package repository

import (
	"context"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByOffer(ctx context.Context, offerID string) ([]CommentRow, error) {
	var rows []CommentRow
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("offer_id = ?", offerID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CommentRepository) Create(ctx context.Context, row *CommentRow) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("User").First(row, "id = ?", row.ID).Error
}
