package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/data"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/feria"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

// Dataset maintenance tool: rewrites the markets file in canonical form and
// reports per-day and aggregate counts, so dataset edits can be reviewed as
// clean diffs.
func main() {
	var (
		inputPath  = flag.String("input", "", "Input markets JSON (default: the default dataset path)")
		outputPath = flag.String("output", "", "Output file path (default: overwrite input)")
		dryRun     = flag.Bool("dry-run", false, "Report only; do not write")
	)
	flag.Parse()

	if *inputPath == "" {
		*inputPath = data.GetDefaultMarketsPath()
	}
	if *outputPath == "" {
		*outputPath = *inputPath
	}

	dataset, err := data.LoadMarkets(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load markets: %v", err)
	}

	total := 0
	for _, day := range model.WeekDays {
		n := len(dataset[day])
		total += n
		fmt.Printf("%-10s %3d records\n", day, n)
	}

	if unknown := data.UnknownDayKeys(dataset); len(unknown) > 0 {
		fmt.Printf("WARNING: unknown day keys (their records are never shown): %v\n", unknown)
	}

	aggregated := feria.Aggregate(dataset)
	fmt.Printf("%d records across %d unique locations in %d neighborhoods\n",
		total, len(aggregated), len(feria.Neighborhoods(aggregated)))

	if *dryRun {
		fmt.Println("Dry run, not writing")
		return
	}

	if err := data.SaveMarkets(dataset, *outputPath); err != nil {
		log.Fatalf("Failed to write markets: %v", err)
	}
	fmt.Printf("Wrote %s\n", *outputPath)
}
