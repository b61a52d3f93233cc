package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sixcities/internal/domain"
)

func TestCitiesCatalogIsFixed(t *testing.T) {
	s := New()

	cities := s.Cities()
	require.Len(t, cities, 6)
	assert.Equal(t, cities[0], s.CurrentCity(), "first city is selected at startup")
}

func TestSwitchCity(t *testing.T) {
	s := New()
	amsterdam, ok := domain.CityByName("Amsterdam")
	require.True(t, ok)

	s.SwitchCity(amsterdam)

	assert.Equal(t, amsterdam, s.CurrentCity())
}
