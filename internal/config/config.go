package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Path to the day-keyed market dataset JSON. A relative path is resolved
	// against the config file directory first, falling back to the working
	// directory.
	DatasetFile string    `yaml:"dataset_file"`
	Map         MapConfig `yaml:"map"`
}

// MapConfig describes the map viewport handed to the client: initial center
// and zoom plus the tile layer rendered underneath the markers.
type MapConfig struct {
	CenterLat   float64 `yaml:"center_lat" json:"center_lat"`
	CenterLng   float64 `yaml:"center_lng" json:"center_lng"`
	Zoom        int     `yaml:"zoom" json:"zoom"`
	TileURL     string  `yaml:"tile_url" json:"tile_url"`
	Attribution string  `yaml:"attribution" json:"attribution"`
}

// DefaultMap returns the stock viewport: Montevideo city center over OSM
// tiles.
func DefaultMap() MapConfig {
	return MapConfig{
		CenterLat:   -34.9011,
		CenterLng:   -56.1645,
		Zoom:        13,
		TileURL:     "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "&copy; OpenStreetMap contributors",
	}
}

// Default returns a fully usable config without reading any file.
func Default() *Config {
	return &Config{
		DatasetFile: "./data/markets.json",
		Map:         DefaultMap(),
	}
}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Fill anything the file left out from the defaults so partial configs
	// stay usable.
	c.Map = MergeMap(DefaultMap(), c.Map)
	if c.DatasetFile == "" {
		c.DatasetFile = Default().DatasetFile
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a config file without defaulting or validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.DatasetFile != "" && !filepath.IsAbs(c.DatasetFile) {
		cand := filepath.Join(filepath.Dir(path), c.DatasetFile)
		if _, err := os.Stat(cand); err == nil {
			c.DatasetFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DatasetFile == "" {
		return errors.New("dataset_file is required")
	}
	if c.Map.Zoom < 1 || c.Map.Zoom > 19 {
		return fmt.Errorf("map.zoom %d out of range [1,19]", c.Map.Zoom)
	}
	if c.Map.CenterLat < -90 || c.Map.CenterLat > 90 {
		return fmt.Errorf("map.center_lat %v out of range [-90,90]", c.Map.CenterLat)
	}
	if c.Map.CenterLng < -180 || c.Map.CenterLng > 180 {
		return fmt.Errorf("map.center_lng %v out of range [-180,180]", c.Map.CenterLng)
	}
	if c.Map.TileURL == "" {
		return errors.New("map.tile_url is required")
	}
	return nil
}

// MergeMap overlays non-zero fields from override onto base. Used to apply a
// partial config file on top of the defaults.
func MergeMap(base, override MapConfig) MapConfig {
	out := base
	if override.CenterLat != 0 {
		out.CenterLat = override.CenterLat
	}
	if override.CenterLng != 0 {
		out.CenterLng = override.CenterLng
	}
	if override.Zoom != 0 {
		out.Zoom = override.Zoom
	}
	if override.TileURL != "" {
		out.TileURL = override.TileURL
	}
	if override.Attribution != "" {
		out.Attribution = override.Attribution
	}
	return out
}
