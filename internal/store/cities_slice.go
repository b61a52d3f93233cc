package store

import "sixcities/internal/domain"

type citiesState struct {
	city   domain.City
	cities []domain.City
}

func newCitiesState() citiesState {
	return citiesState{
		city:   domain.Cities[0],
		cities: domain.Cities,
	}
}

// SwitchCity changes the current city and recomputes the city-filtered view,
// keeping the current sorting.
func (s *Store) SwitchCity(city domain.City) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cities.city = city
	s.recomputeCityViewLocked(city.Name)
}

func (s *Store) CurrentCity() domain.City {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cities.city
}

func (s *Store) Cities() []domain.City {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.City, len(s.cities.cities))
	copy(out, s.cities.cities)
	return out
}
