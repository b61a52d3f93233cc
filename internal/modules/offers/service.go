package offers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sixcities/internal/domain"
	"sixcities/internal/repository"
)

type Service struct {
	offers    *repository.OfferRepository
	favorites *repository.FavoriteRepository
}

func NewService(offers *repository.OfferRepository, favorites *repository.FavoriteRepository) *Service {
	return &Service{offers: offers, favorites: favorites}
}

// favoriteIDs returns the set of offer ids the user has favorited; empty for
// anonymous requests.
func (s *Service) favoriteIDs(ctx context.Context, user *repository.UserRow) (map[string]bool, error) {
	if user == nil {
		return nil, nil
	}
	rows, err := s.favorites.ListOffers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(rows))
	for _, r := range rows {
		ids[r.ID] = true
	}
	return ids, nil
}

func (s *Service) List(ctx context.Context, user *repository.UserRow) ([]domain.Offer, error) {
	rows, err := s.offers.List(ctx)
	if err != nil {
		return nil, err
	}
	favs, err := s.favoriteIDs(ctx, user)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Offer, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Offer(favs[rows[i].ID]))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, user *repository.UserRow, id string) (*domain.OfferDetail, error) {
	row, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	favs, err := s.favoriteIDs(ctx, user)
	if err != nil {
		return nil, err
	}

	detail := row.Detail(favs[row.ID])
	return &detail, nil
}

func (s *Service) Nearby(ctx context.Context, user *repository.UserRow, id string) ([]domain.Offer, error) {
	rows, err := s.offers.Nearby(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	favs, err := s.favoriteIDs(ctx, user)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Offer, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Offer(favs[rows[i].ID]))
	}
	return out, nil
}
