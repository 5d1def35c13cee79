package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/data"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/feria"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "markers":
		cmdMarkers(os.Args[2:])
	case "days":
		cmdDays()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli markers --data data/markets.json --day sunday --neighborhood all --out results/markers.csv")
	fmt.Println("  cli days")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - markers aggregates the dataset, applies the day/neighborhood filter and writes CSV")
	fmt.Println("  - a day filter of 'all' matches nothing (day sets only contain real weekdays)")
	fmt.Println("  - days prints the weekday table (id, label, pin color)")
}

func cmdMarkers(args []string) {
	fs := flag.NewFlagSet("markers", flag.ExitOnError)
	dataPath := fs.String("data", data.GetDefaultMarketsPath(), "Path to day-keyed markets JSON")
	day := fs.String("day", model.FilterAll, "Day filter (weekday identifier or 'all')")
	neighborhood := fs.String("neighborhood", model.FilterAll, "Neighborhood filter (slug or 'all')")
	outPath := fs.String("out", "results/markers.csv", "Output CSV path")
	_ = fs.Parse(args)

	dataset, err := data.LoadMarkets(*dataPath)
	if err != nil {
		fmt.Printf("failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	aggregated := feria.Aggregate(dataset)
	crit := feria.Criteria{Day: *day, Neighborhood: *neighborhood}
	filtered := feria.Apply(aggregated, crit)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Printf("failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := data.WriteMarketsCSV(*outPath, filtered, model.DefaultDayTables()); err != nil {
		fmt.Printf("failed to write CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Aggregated %d unique locations from %s\n", len(aggregated), *dataPath)
	fmt.Printf("Wrote %d rows to %s (day=%s neighborhood=%s)\n", len(filtered), *outPath, crit.Day, crit.Neighborhood)
}

func cmdDays() {
	tables := model.DefaultDayTables()
	for _, day := range model.WeekDays {
		fmt.Printf("%-10s %-10s %s\n", day, tables.Labels[day], tables.Colors[day])
	}
}
