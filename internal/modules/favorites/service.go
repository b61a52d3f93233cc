package favorites

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sixcities/internal/domain"
	"sixcities/internal/repository"
)

var ErrOfferNotFound = errors.New("offer not found")

type Service struct {
	favorites *repository.FavoriteRepository
	offers    *repository.OfferRepository
}

func NewService(favorites *repository.FavoriteRepository, offers *repository.OfferRepository) *Service {
	return &Service{favorites: favorites, offers: offers}
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Offer, error) {
	rows, err := s.favorites.ListOffers(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Offer, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Offer(true))
	}
	return out, nil
}

// Set flips the favorite membership and returns the updated summary with the
// settled flag.
func (s *Service) Set(ctx context.Context, userID int64, offerID string, isFavorite bool) (*domain.Offer, error) {
	row, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	if err := s.favorites.Set(ctx, userID, offerID, isFavorite); err != nil {
		return nil, err
	}

	updated := row.Offer(isFavorite)
	return &updated, nil
}
