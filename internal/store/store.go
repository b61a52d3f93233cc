// Package store is the client-side state engine: normalized state slices
// kept consistent under asynchronous settlements from the action layer,
// plus the synchronous user-triggered transitions (switch city, switch
// sorting, reset error) and read-only selectors over the slices.
//
// Every mutation goes through a method that takes the store lock, so
// concurrently settling actions interleave safely. Within one action the
// pending phase always precedes fulfilled or rejected; no ordering is
// guaranteed between distinct in-flight actions.
package store

import (
	"sync"

	"sixcities/internal/domain"
)

type Store struct {
	mu sync.Mutex

	offers offersState
	cities citiesState
	user   userState
	srvErr *domain.ServerError
}

func New() *Store {
	return &Store{
		offers: newOffersState(),
		cities: newCitiesState(),
		user:   newUserState(),
	}
}

func cloneOffers(src []domain.Offer) []domain.Offer {
	if src == nil {
		return nil
	}
	out := make([]domain.Offer, len(src))
	copy(out, src)
	return out
}
