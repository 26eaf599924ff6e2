package static

import (
	"fmt"
	"path/filepath"
)

// Bundle groups the three reference providers loaded at startup.
type Bundle struct {
	Points   *PointProvider
	Signals  *SignalProvider
	Railcars *RailcarProvider
}

// Load reads points.json, signals.json and railcars.json from dataDir.
// Any uniqueness violation inside the bundles aborts startup.
func Load(dataDir string) (*Bundle, error) {
	points, err := LoadPoints(filepath.Join(dataDir, "points.json"))
	if err != nil {
		return nil, fmt.Errorf("load points: %w", err)
	}
	signals, err := LoadSignals(filepath.Join(dataDir, "signals.json"))
	if err != nil {
		return nil, fmt.Errorf("load signals: %w", err)
	}
	railcars, err := LoadRailcars(filepath.Join(dataDir, "railcars.json"))
	if err != nil {
		return nil, fmt.Errorf("load railcars: %w", err)
	}
	return &Bundle{Points: points, Signals: signals, Railcars: railcars}, nil
}
