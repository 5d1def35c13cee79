package data

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

// WriteMarketsCSV exports aggregated markets to CSV, one row per unique
// location. Days are joined with "|" in day-set order; the color column is
// the pin color of the first day.
func WriteMarketsCSV(path string, markets []model.AggregatedMarket, tables model.DayTables) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"name",
		"location",
		"neighborhood",
		"lat",
		"lng",
		"days",
		"color",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, m := range markets {
		color := ""
		if len(m.Days) > 0 {
			color = tables.Colors[m.Days[0]]
		}
		row := []string{
			m.Name,
			m.Location,
			m.Neighborhood,
			fmtCoord(m.Lat),
			fmtCoord(m.Lng),
			strings.Join(m.Days, "|"),
			color,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtCoord(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
