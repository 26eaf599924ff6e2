package static

import (
	"encoding/json"
	"fmt"
	"os"
)

// Railcar describes one vehicle model from the reference bundle.
type Railcar struct {
	ID          string `json:"id"`
	APIID       string `json:"api_id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"` // "locomotive", "wagon", "unit"
	MaxSpeedKmh int    `json:"max_speed_kmh"`
}

// RailcarProvider indexes railcars by id and by the identifier the live API
// reports in vehicle lists.
type RailcarProvider struct {
	byID    map[string]*Railcar
	byAPIID map[string]*Railcar
}

// LoadRailcars reads the railcar bundle from path.
func LoadRailcars(path string) (*RailcarProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read railcars bundle: %w", err)
	}
	var cars []*Railcar
	if err := json.Unmarshal(raw, &cars); err != nil {
		return nil, fmt.Errorf("parse railcars bundle %s: %w", path, err)
	}
	return NewRailcarProvider(cars)
}

// NewRailcarProvider builds the indexes; duplicates are a startup error.
func NewRailcarProvider(cars []*Railcar) (*RailcarProvider, error) {
	p := &RailcarProvider{
		byID:    make(map[string]*Railcar, len(cars)),
		byAPIID: make(map[string]*Railcar, len(cars)),
	}
	for _, c := range cars {
		if _, dup := p.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate railcar id %q", c.ID)
		}
		p.byID[c.ID] = c
		if c.APIID != "" {
			if _, dup := p.byAPIID[c.APIID]; dup {
				return nil, fmt.Errorf("duplicate railcar api id %q", c.APIID)
			}
			p.byAPIID[c.APIID] = c
		}
	}
	return p, nil
}

// ByID returns the railcar with the given id.
func (p *RailcarProvider) ByID(id string) (*Railcar, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// ByAPIID returns the railcar the live API reports under apiID.
func (p *RailcarProvider) ByAPIID(apiID string) (*Railcar, bool) {
	c, ok := p.byAPIID[apiID]
	return c, ok
}
