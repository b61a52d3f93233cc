package repository

import (
	"context"

	"gorm.io/gorm"
)

const nearbyLimit = 3

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) List(ctx context.Context) ([]OfferRow, error) {
	var rows []OfferRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*OfferRow, error) {
	var row OfferRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Nearby returns other offers in the same city, capped at nearbyLimit.
func (r *OfferRepository) Nearby(ctx context.Context, id string) ([]OfferRow, error) {
	origin, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var rows []OfferRow
	err = r.db.WithContext(ctx).
		Where("city_name = ? AND id <> ?", origin.CityName, id).
		Order("id").
		Limit(nearbyLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
