package render

import (
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

// Marker is one renderable map marker: position, tinted pin icon and popup
// HTML. This is what the map client consumes.
type Marker struct {
	Name         string   `json:"name"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Neighborhood string   `json:"neighborhood"`
	Days         []string `json:"days"`
	Icon         IconSpec `json:"icon"`
	PopupHTML    string   `json:"popup_html"`
}

// ColorFor resolves the marker color for a market: the color of the first day
// in its day set. Multi-day markets keep that single color, never a blend. A
// day missing from the table resolves to the empty string (the dataset is
// trusted, see the loader).
func ColorFor(m model.AggregatedMarket, tables model.DayTables) string {
	if len(m.Days) == 0 {
		return ""
	}
	return tables.Colors[m.Days[0]]
}

// BuildMarkers produces one marker per market, preserving input order.
func BuildMarkers(markets []model.AggregatedMarket, tables model.DayTables) []Marker {
	out := make([]Marker, len(markets))
	for i, m := range markets {
		out[i] = Marker{
			Name:         m.Name,
			Lat:          m.Lat,
			Lng:          m.Lng,
			Neighborhood: m.Neighborhood,
			Days:         m.Days,
			Icon:         NewIcon(ColorFor(m, tables)),
			PopupHTML:    Popup(m, tables),
		}
	}
	return out
}
