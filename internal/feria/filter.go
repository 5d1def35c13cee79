package feria

import (
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

// Criteria is the caller-supplied filter. Both fields default to
// model.FilterAll.
type Criteria struct {
	Day          string
	Neighborhood string
}

// DefaultCriteria returns the unfiltered criteria ("all"/"all").
func DefaultCriteria() Criteria {
	return Criteria{Day: model.FilterAll, Neighborhood: model.FilterAll}
}

// Matches reports whether the market passes the criteria.
//
// The day side is a literal membership test against the market's day set.
// "all" gets no special handling here: day sets only ever contain real weekday
// identifiers, so Day == "all" matches nothing. That is long-standing observed
// behavior and callers rely on it; do not "fix" it by special-casing the
// sentinel.
//
// The neighborhood side does honor the sentinel: "all" passes everything,
// otherwise the slug must match exactly (case-sensitive).
func (c Criteria) Matches(m model.AggregatedMarket) bool {
	if !m.HasDay(c.Day) {
		return false
	}
	return c.Neighborhood == model.FilterAll || m.Neighborhood == c.Neighborhood
}

// Apply returns the markets passing the criteria, preserving input order. The
// result is always a fresh slice; the input is never mutated.
func Apply(markets []model.AggregatedMarket, c Criteria) []model.AggregatedMarket {
	out := []model.AggregatedMarket{}
	for _, m := range markets {
		if c.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}
