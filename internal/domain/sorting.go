package domain

type SortingType string

// SortPopular keeps the server-provided order; the rest re-order the
// city-filtered view only.
const (
	SortPopular        SortingType = "Popular"
	SortPriceLowToHigh SortingType = "Price: low to high"
	SortPriceHighToLow SortingType = "Price: high to low"
	SortTopRatedFirst  SortingType = "Top rated first"
)
