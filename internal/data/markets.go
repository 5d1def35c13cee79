package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

// LoadMarkets loads the day-keyed market dataset from a JSON file. The file
// maps weekday identifiers to record lists:
//
//	{
//	  "sunday": [ {"name": "...", "location": "...", ...}, ... ],
//	  ...
//	}
//
// The dataset is trusted: records are not validated here. Unknown top-level
// keys are kept in the map (they are simply never visited by aggregation);
// tooling can surface them via UnknownDayKeys.
func LoadMarkets(filePath string) (model.Dataset, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read markets file: %w", err)
	}

	var ds model.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse markets file: %w", err)
	}

	return ds, nil
}

// SaveMarkets writes the dataset back to disk, pretty-printed.
func SaveMarkets(ds model.Dataset, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal markets: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write markets file: %w", err)
	}

	return nil
}

// UnknownDayKeys returns dataset keys that are not one of the seven weekday
// identifiers, sorted. Records under such keys never reach the map.
func UnknownDayKeys(ds model.Dataset) []string {
	var out []string
	for key := range ds {
		if !model.IsWeekDay(key) {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// GetDefaultMarketsPath returns the default path for the dataset file.
func GetDefaultMarketsPath() string {
	// Try environment variable first
	if path := os.Getenv("DATASET_FILE"); path != "" {
		return path
	}
	// Default to data/markets.json in project root
	return "./data/markets.json"
}
