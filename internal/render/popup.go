package render

import (
	"html/template"
	"strings"
	"unicode"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

var popupTmpl = template.Must(template.New("popup").Parse(
	`<div class="feria-popup">` +
		`<h3>{{.Name}}</h3>` +
		`<p class="feria-location">{{.Location}}</p>` +
		`<p class="feria-neighborhood">{{.Neighborhood}}</p>` +
		`<div class="feria-days">` +
		`{{range .Days}}<span class="feria-day-badge" style="background-color:{{.Color}}">{{.Label}}</span>{{end}}` +
		`</div>` +
		`</div>`))

type popupData struct {
	Name         string
	Location     string
	Neighborhood string
	Days         []dayBadge
}

type dayBadge struct {
	Label string
	Color template.CSS
}

// Popup renders the info popup HTML for one market: name heading, address
// line, humanized neighborhood, and one colored badge per active day.
func Popup(m model.AggregatedMarket, tables model.DayTables) string {
	data := popupData{
		Name:         m.Name,
		Location:     m.Location,
		Neighborhood: Humanize(m.Neighborhood),
	}
	for _, day := range m.Days {
		data.Days = append(data.Days, dayBadge{
			Label: tables.Labels[day],
			Color: template.CSS(tables.Colors[day]),
		})
	}

	var b strings.Builder
	if err := popupTmpl.Execute(&b, data); err != nil {
		// The template is static and the data is plain strings; execution
		// cannot fail at runtime.
		panic(err)
	}
	return b.String()
}

// Humanize turns a neighborhood slug into display form: hyphens become spaces
// and each word is capitalized ("punta-carretas" -> "Punta Carretas").
func Humanize(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
