package comments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sixcities/internal/domain"
	"sixcities/internal/repository"
)

type Service struct {
	comments *repository.CommentRepository
	offers   *repository.OfferRepository
}

func NewService(comments *repository.CommentRepository, offers *repository.OfferRepository) *Service {
	return &Service{comments: comments, offers: offers}
}

func (s *Service) ListByOffer(ctx context.Context, offerID string) ([]domain.Comment, error) {
	if _, err := s.offers.GetByID(ctx, offerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	rows, err := s.comments.ListByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Comment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Comment())
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, user *repository.UserRow, offerID, text string, rating int) (*domain.Comment, error) {
	if _, err := s.offers.GetByID(ctx, offerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	row := &repository.CommentRow{
		ID:        uuid.NewString(),
		OfferID:   offerID,
		UserID:    user.ID,
		Text:      text,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, row); err != nil {
		return nil, err
	}

	created := row.Comment()
	return &created, nil
}
