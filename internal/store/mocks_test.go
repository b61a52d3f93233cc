package store

import (
	"fmt"
	"time"

	"sixcities/internal/domain"
)

func makeOffer(id string, mutate ...func(*domain.Offer)) domain.Offer {
	o := domain.Offer{
		ID:           id,
		Title:        "Offer " + id,
		Type:         "apartment",
		Price:        100,
		City:         domain.Cities[0],
		Location:     domain.Location{Latitude: 48.85, Longitude: 2.35, Zoom: 16},
		Rating:       4,
		PreviewImage: "preview.jpg",
	}
	for _, fn := range mutate {
		fn(&o)
	}
	return o
}

func makeOffers(n int, mutate ...func(*domain.Offer)) []domain.Offer {
	out := make([]domain.Offer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, makeOffer(fmt.Sprintf("offer-%d", i), mutate...))
	}
	return out
}

func makeDetail(id string) *domain.OfferDetail {
	return &domain.OfferDetail{
		ID:        id,
		Title:     "Offer " + id,
		Type:      "apartment",
		Price:     100,
		City:      domain.Cities[0],
		Rating:    4,
		Bedrooms:  2,
		MaxAdults: 3,
		Goods:     []string{"Wi-Fi"},
		Host:      domain.Host{Name: "Host", IsPro: true},
	}
}

func makeComment(id string, date time.Time) domain.Comment {
	return domain.Comment{
		ID:     id,
		Date:   date,
		User:   domain.Host{Name: "Author"},
		Text:   "The building is green and from 18th century, a quiet cozy house.",
		Rating: 4,
	}
}

func inCity(name string) func(*domain.Offer) {
	return func(o *domain.Offer) {
		city, ok := domain.CityByName(name)
		if !ok {
			city = domain.City{Name: name}
		}
		o.City = city
	}
}

func favorite(o *domain.Offer) { o.IsFavorite = true }
