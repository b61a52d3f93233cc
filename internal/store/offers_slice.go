package store

import (
	"sort"

	"sixcities/internal/domain"
)

type offersState struct {
	offer          *domain.OfferDetail
	comments       []domain.Comment
	nearbyOffers   []domain.Offer
	favoriteOffers []domain.Offer
	offersInCity   []domain.Offer
	allOffers      []domain.Offer
	sorting        domain.SortingType

	// Loading flags start true so the UI shows a spinner until the first
	// fetch settles.
	isOffersLoading bool
	isOfferLoading  bool
}

func newOffersState() offersState {
	return offersState{
		sorting:         domain.SortPopular,
		isOffersLoading: true,
		isOfferLoading:  true,
	}
}

// sortOffers returns a sorted copy. Sorts are stable: equal keys keep their
// input order, and SortPopular is the input order itself.
func sortOffers(offers []domain.Offer, sorting domain.SortingType) []domain.Offer {
	sorted := cloneOffers(offers)
	switch sorting {
	case domain.SortPriceLowToHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case domain.SortPriceHighToLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case domain.SortTopRatedFirst:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	}
	return sorted
}

func filterByCity(offers []domain.Offer, cityName string) []domain.Offer {
	filtered := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if o.City.Name == cityName {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// setFavoriteFlag flips isFavorite on every copy of the offer in the list.
// This is the single routine every mutation path uses to keep duplicated
// collections consistent.
func setFavoriteFlag(offers []domain.Offer, id string, isFavorite bool) {
	for i := range offers {
		if offers[i].ID == id {
			offers[i].IsFavorite = isFavorite
		}
	}
}

func dropFavoriteFlags(offers []domain.Offer) {
	for i := range offers {
		offers[i].IsFavorite = false
	}
}

/* ---------- settlement transitions ---------- */

func (s *Store) offersRequested() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.isOffersLoading = true
}

// offersLoaded stores the catalog sorted by the current sorting and
// recomputes the city view for the first catalog city. The first city is
// used even when another city is currently selected; a city switch dispatched
// before the catalog settles is silently overridden.
func (s *Store) offersLoaded(offers []domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers.allOffers = sortOffers(offers, s.offers.sorting)
	defaultCity := domain.Cities[0]
	s.offers.offersInCity = sortOffers(
		filterByCity(s.offers.allOffers, defaultCity.Name),
		s.offers.sorting,
	)
	s.offers.isOffersLoading = false
}

func (s *Store) offersFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.isOffersLoading = false
}

func (s *Store) offerRequested() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.isOfferLoading = true
}

func (s *Store) offerLoaded(detail *domain.OfferDetail, comments []domain.Comment, nearby []domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers.offer = detail
	s.offers.comments = comments
	s.offers.nearbyOffers = nearby
	s.offers.isOfferLoading = false
}

func (s *Store) offerFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.isOfferLoading = false
}

// commentAdded appends; storage order is submission order, never re-sorted.
func (s *Store) commentAdded(c domain.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.comments = append(s.offers.comments, c)
}

func (s *Store) favoritesLoaded(offers []domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers.favoriteOffers = offers
}

// favoriteUpdated propagates the settled favorite flag to every collection
// that may hold a copy of the offer, and adjusts favorites membership.
func (s *Store) favoriteUpdated(updated domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	setFavoriteFlag(s.offers.allOffers, updated.ID, updated.IsFavorite)
	setFavoriteFlag(s.offers.nearbyOffers, updated.ID, updated.IsFavorite)

	inCity := cloneOffers(s.offers.offersInCity)
	setFavoriteFlag(inCity, updated.ID, updated.IsFavorite)
	s.offers.offersInCity = sortOffers(inCity, s.offers.sorting)

	if s.offers.offer != nil && s.offers.offer.ID == updated.ID {
		s.offers.offer.IsFavorite = updated.IsFavorite
	}

	if updated.IsFavorite {
		s.offers.favoriteOffers = append(s.offers.favoriteOffers, updated)
		return
	}
	kept := s.offers.favoriteOffers[:0:0]
	for _, o := range s.offers.favoriteOffers {
		if o.ID != updated.ID {
			kept = append(kept, o)
		}
	}
	s.offers.favoriteOffers = kept
}

func (s *Store) favoritesReset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers.favoriteOffers = nil
	dropFavoriteFlags(s.offers.allOffers)
	dropFavoriteFlags(s.offers.offersInCity)
	if s.offers.offer != nil {
		s.offers.offer.IsFavorite = false
	}
}

func (s *Store) recomputeCityViewLocked(cityName string) {
	s.offers.offersInCity = sortOffers(
		filterByCity(s.offers.allOffers, cityName),
		s.offers.sorting,
	)
}

/* ---------- synchronous actions ---------- */

// SwitchSorting re-sorts the city view by the requested criterion. The
// sorting persists across city switches.
func (s *Store) SwitchSorting(sorting domain.SortingType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offers.sorting = sorting
	s.offers.offersInCity = sortOffers(s.offers.offersInCity, sorting)
}

/* ---------- selectors ---------- */

func (s *Store) AllOffers() []domain.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOffers(s.offers.allOffers)
}

func (s *Store) OffersInCity() []domain.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOffers(s.offers.offersInCity)
}

func (s *Store) NearbyOffers() []domain.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOffers(s.offers.nearbyOffers)
}

func (s *Store) FavoriteOffers() []domain.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOffers(s.offers.favoriteOffers)
}

func (s *Store) Offer() *domain.OfferDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offers.offer == nil {
		return nil
	}
	detail := *s.offers.offer
	return &detail
}

func (s *Store) Comments() []domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Comment, len(s.offers.comments))
	copy(out, s.offers.comments)
	return out
}

// DisplayComments is the review-list projection: newest first, capped at
// DisplayedCommentCount. Storage order is untouched.
func (s *Store) DisplayComments() []domain.Comment {
	comments := s.Comments()
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Date.After(comments[j].Date)
	})
	if len(comments) > domain.DisplayedCommentCount {
		comments = comments[:domain.DisplayedCommentCount]
	}
	return comments
}

func (s *Store) CurrentSorting() domain.SortingType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers.sorting
}

func (s *Store) IsOffersLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers.isOffersLoading
}

func (s *Store) IsOfferLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers.isOfferLoading
}
