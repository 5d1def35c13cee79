package feria

import (
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

// coordKey identifies a market location by its exact coordinates. Equality is
// bit-exact float comparison: no rounding, no tolerance. Because NaN != NaN,
// records with NaN coordinates never merge with anything, including each
// other.
type coordKey struct {
	lat float64
	lng float64
}

// Aggregate collapses the day-keyed dataset into one entry per unique
// (lat, lng) pair. Days are walked in model.WeekDays order and each day's
// records in list order; the first record seen for a coordinate supplies the
// representative name/location/neighborhood. Output order is first-seen order.
func Aggregate(ds model.Dataset) []model.AggregatedMarket {
	var out []model.AggregatedMarket
	seen := map[coordKey]int{} // coordinate -> index into out

	for _, day := range model.WeekDays {
		for _, rec := range ds[day] {
			key := coordKey{lat: rec.Lat, lng: rec.Lng}
			idx, ok := seen[key]
			if !ok {
				out = append(out, model.AggregatedMarket{
					MarketRecord: rec,
					Days:         []string{day},
				})
				seen[key] = len(out) - 1
				continue
			}
			// Guard against malformed input listing the same location twice
			// under one day key.
			if !out[idx].HasDay(day) {
				out[idx].Days = append(out[idx].Days, day)
			}
		}
	}

	return out
}

// Neighborhoods returns the distinct neighborhood slugs present in the
// aggregated list, in first-seen order.
func Neighborhoods(markets []model.AggregatedMarket) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range markets {
		if !seen[m.Neighborhood] {
			seen[m.Neighborhood] = true
			out = append(out, m.Neighborhood)
		}
	}
	return out
}
