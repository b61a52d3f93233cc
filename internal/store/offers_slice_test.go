package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sixcities/internal/domain"
)

func TestOffersLoadingFlags(t *testing.T) {
	s := New()
	require.True(t, s.IsOffersLoading(), "flag starts true until the first fetch settles")

	s.offersLoaded(nil)
	assert.False(t, s.IsOffersLoading())

	s.offersRequested()
	assert.True(t, s.IsOffersLoading())

	s.offersFailed()
	assert.False(t, s.IsOffersLoading(), "flag never stays true after settlement")
}

func TestOfferLoadingFlags(t *testing.T) {
	s := New()
	require.True(t, s.IsOfferLoading())

	s.offerRequested()
	s.offerFailed()
	assert.False(t, s.IsOfferLoading())

	s.offerRequested()
	s.offerLoaded(makeDetail("a"), nil, nil)
	assert.False(t, s.IsOfferLoading())
}

func TestOffersLoadedRecomputesDefaultCityView(t *testing.T) {
	s := New()
	paris := makeOffers(3, inCity("Paris"))
	cologne := makeOffers(2, inCity("Cologne"))

	// City switched away before the catalog settles: the view is still
	// recomputed for the first catalog city.
	s.SwitchCity(domain.Cities[1])
	s.offersLoaded(append(paris, cologne...))

	assert.Len(t, s.AllOffers(), 5)
	view := s.OffersInCity()
	require.Len(t, view, 3)
	for _, o := range view {
		assert.Equal(t, "Paris", o.City.Name)
	}
}

func TestOffersLoadedEmptyCatalog(t *testing.T) {
	s := New()
	s.offersLoaded(nil)

	assert.Empty(t, s.AllOffers())
	assert.Empty(t, s.OffersInCity(), "empty catalog is a zero-length view, not an error")
	assert.False(t, s.IsOffersLoading())
}

func TestOffersFailedKeepsCatalog(t *testing.T) {
	s := New()
	s.offersLoaded(makeOffers(2))

	s.offersRequested()
	s.offersFailed()

	assert.Len(t, s.AllOffers(), 2)
}

func TestSwitchCityFiltersCatalog(t *testing.T) {
	s := New()
	offers := append(makeOffers(3, inCity("Paris")), makeOffers(4, inCity("Amsterdam"))...)
	s.offersLoaded(offers)

	for _, city := range s.Cities() {
		s.SwitchCity(city)

		want := 0
		for _, o := range offers {
			if o.City.Name == city.Name {
				want++
			}
		}
		view := s.OffersInCity()
		assert.Len(t, view, want, city.Name)
		for _, o := range view {
			assert.Equal(t, city.Name, o.City.Name)
		}
	}
}

func TestSortingPersistsAcrossCitySwitch(t *testing.T) {
	s := New()
	offers := []domain.Offer{
		makeOffer("a", inCity("Paris"), func(o *domain.Offer) { o.Price = 300 }),
		makeOffer("b", inCity("Paris"), func(o *domain.Offer) { o.Price = 100 }),
		makeOffer("c", inCity("Cologne"), func(o *domain.Offer) { o.Price = 500 }),
		makeOffer("d", inCity("Cologne"), func(o *domain.Offer) { o.Price = 200 }),
	}
	s.offersLoaded(offers)
	s.SwitchSorting(domain.SortPriceLowToHigh)

	cologne, _ := domain.CityByName("Cologne")
	s.SwitchCity(cologne)

	view := s.OffersInCity()
	require.Len(t, view, 2)
	assert.Equal(t, "d", view[0].ID)
	assert.Equal(t, "c", view[1].ID)
	assert.Equal(t, domain.SortPriceLowToHigh, s.CurrentSorting())
}

func TestSorting(t *testing.T) {
	prices := []int{300, 100, 200}
	ratings := []float64{3, 5, 4}

	offers := make([]domain.Offer, 3)
	for i := range offers {
		offers[i] = makeOffer(fmt.Sprintf("o%d", i), func(o *domain.Offer) {
			o.Price = prices[i]
			o.Rating = ratings[i]
		})
	}

	tests := []struct {
		sorting domain.SortingType
		wantIDs []string
	}{
		{domain.SortPopular, []string{"o0", "o1", "o2"}},
		{domain.SortPriceLowToHigh, []string{"o1", "o2", "o0"}},
		{domain.SortPriceHighToLow, []string{"o0", "o2", "o1"}},
		{domain.SortTopRatedFirst, []string{"o1", "o2", "o0"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.sorting), func(t *testing.T) {
			s := New()
			s.offersLoaded(offers)
			s.SwitchSorting(tc.sorting)

			got := s.OffersInCity()
			require.Len(t, got, 3)
			for i, id := range tc.wantIDs {
				assert.Equal(t, id, got[i].ID)
			}

			// Idempotence: applying the same sort twice changes nothing.
			s.SwitchSorting(tc.sorting)
			assert.Equal(t, got, s.OffersInCity())
		})
	}
}

func TestSortingIsStable(t *testing.T) {
	s := New()
	offers := makeOffers(5) // identical prices
	s.offersLoaded(offers)
	s.SwitchSorting(domain.SortPriceLowToHigh)

	got := s.OffersInCity()
	require.Len(t, got, 5)
	for i, o := range offers {
		assert.Equal(t, o.ID, got[i].ID)
	}
}

func TestOfferLoaded(t *testing.T) {
	s := New()
	detail := makeDetail("x")
	comments := []domain.Comment{makeComment("c1", time.Now())}
	nearby := makeOffers(2)

	s.offerLoaded(detail, comments, nearby)

	require.NotNil(t, s.Offer())
	assert.Equal(t, "x", s.Offer().ID)
	assert.Len(t, s.Comments(), 1)
	assert.Len(t, s.NearbyOffers(), 2)
	assert.False(t, s.IsOfferLoading())
}

func TestCommentAddedAppends(t *testing.T) {
	s := New()
	first := makeComment("c1", time.Now().Add(-time.Hour))
	second := makeComment("c2", time.Now())

	s.commentAdded(first)
	s.commentAdded(second)

	got := s.Comments()
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID, "storage keeps submission order")
	assert.Equal(t, "c2", got[1].ID)
}

func TestDisplayCommentsProjection(t *testing.T) {
	s := New()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		s.commentAdded(makeComment(fmt.Sprintf("c%d", i), base.Add(time.Duration(i)*time.Hour)))
	}

	got := s.DisplayComments()
	require.Len(t, got, domain.DisplayedCommentCount)
	assert.Equal(t, "c14", got[0].ID, "newest first")
	assert.Equal(t, "c5", got[len(got)-1].ID)

	// Storage order is untouched by the projection.
	assert.Equal(t, "c0", s.Comments()[0].ID)
}

func TestDisplayCommentsTwoDates(t *testing.T) {
	s := New()
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s.commentAdded(makeComment("old", d1))
	s.commentAdded(makeComment("new", d2))

	got := s.DisplayComments()
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestFavoritesLoadedReplacesWholesale(t *testing.T) {
	s := New()
	s.favoritesLoaded(makeOffers(2, favorite))
	s.favoritesLoaded(makeOffers(1, favorite))

	assert.Len(t, s.FavoriteOffers(), 1)
}

func TestFavoriteUpdatedPropagatesEverywhere(t *testing.T) {
	s := New()
	target := makeOffer("t")
	s.offersLoaded([]domain.Offer{target, makeOffer("other")})
	s.offerLoaded(makeDetail("t"), nil, []domain.Offer{makeOffer("t"), makeOffer("n")})

	updated := target
	updated.IsFavorite = true
	s.favoriteUpdated(updated)

	findByID := func(offers []domain.Offer, id string) *domain.Offer {
		for i := range offers {
			if offers[i].ID == id {
				return &offers[i]
			}
		}
		return nil
	}

	assert.True(t, findByID(s.AllOffers(), "t").IsFavorite)
	assert.True(t, findByID(s.OffersInCity(), "t").IsFavorite)
	assert.True(t, findByID(s.NearbyOffers(), "t").IsFavorite)
	assert.True(t, s.Offer().IsFavorite)
	require.Len(t, s.FavoriteOffers(), 1)
	assert.Equal(t, "t", s.FavoriteOffers()[0].ID)

	// Untouched offers keep their flags.
	assert.False(t, findByID(s.AllOffers(), "other").IsFavorite)
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	s := New()
	target := makeOffer("t")
	s.offersLoaded([]domain.Offer{target})

	before := s.AllOffers()

	on := target
	on.IsFavorite = true
	s.favoriteUpdated(on)

	off := target
	off.IsFavorite = false
	s.favoriteUpdated(off)

	assert.Empty(t, s.FavoriteOffers())
	assert.Equal(t, before, s.AllOffers())
	assert.Equal(t, before, s.OffersInCity())
}

func TestFavoritesResetOnLogout(t *testing.T) {
	s := New()
	s.offersLoaded(makeOffers(2, favorite))
	s.favoritesLoaded(makeOffers(2, favorite))
	detail := makeDetail("d")
	detail.IsFavorite = true
	s.offerLoaded(detail, nil, nil)

	s.favoritesReset()

	assert.Empty(t, s.FavoriteOffers())
	for _, o := range s.AllOffers() {
		assert.False(t, o.IsFavorite)
	}
	for _, o := range s.OffersInCity() {
		assert.False(t, o.IsFavorite)
	}
	assert.False(t, s.Offer().IsFavorite)
}
