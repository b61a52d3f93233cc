package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) ListOffers(ctx context.Context, userID int64) ([]OfferRow, error) {
	var rows []OfferRow
	err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.offer_id = offers.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID int64, offerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FavoriteRow{}).
		Where("user_id = ? AND offer_id = ?", userID, offerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Set makes the favorite membership match isFavorite. Both directions are
// idempotent: re-adding an existing favorite or removing a missing one is
// not an error.
func (r *FavoriteRepository) Set(ctx context.Context, userID int64, offerID string, isFavorite bool) error {
	if !isFavorite {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND offer_id = ?", userID, offerID).
			Delete(&FavoriteRow{}).Error
	}

	err := r.db.WithContext(ctx).Create(&FavoriteRow{UserID: userID, OfferID: offerID}).Error
	if err != nil && isUniqueViolation(err) {
		return nil
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "23505")
}
