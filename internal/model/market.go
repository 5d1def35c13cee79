package model

// MarketRecord represents one street-market listing as it appears in the
// dataset file, under a single day key.
type MarketRecord struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`     // human-readable address
	Neighborhood string  `json:"neighborhood"` // slug form, e.g. "punta-carretas"
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// Dataset is the day-keyed source dataset: one record list per weekday key.
// It is loaded once and never mutated.
type Dataset map[string][]MarketRecord

// AggregatedMarket is one unique market location together with every day it
// operates on. Days keeps the order in which they were discovered during
// aggregation (week order, then list order).
type AggregatedMarket struct {
	MarketRecord
	Days []string `json:"days"`
}

// HasDay reports whether the market operates on the given day identifier.
func (m AggregatedMarket) HasDay(day string) bool {
	for _, d := range m.Days {
		if d == day {
			return true
		}
	}
	return false
}
