// Package static loads the bundled reference data (points, signals,
// railcars) once at startup and exposes it as immutable, thread-safe
// indexes. The data never changes while the process runs, so every index is
// built during Load and only read afterwards.
package static

import (
	"encoding/json"
	"fmt"
	"os"
)

// LatLon is a WGS84 coordinate.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point is a named location (station, stop, junction) with its playable
// border polygon.
type Point struct {
	ID        string   `json:"id"`
	ForeignID string   `json:"foreign_id"`
	Name      string   `json:"name"`
	Position  LatLon   `json:"position"`
	Border    []LatLon `json:"border"`

	// bounding box of Border, precomputed at load for the containment test
	minLat, maxLat float64
	minLon, maxLon float64
}

// Playable reports whether the point carries a playable border polygon.
func (p *Point) Playable() bool {
	return len(p.Border) >= 3
}

// Contains reports whether the coordinate lies inside the point's playable
// border polygon. Points without a border contain nothing.
func (p *Point) Contains(c LatLon) bool {
	if len(p.Border) < 3 {
		return false
	}
	if c.Lat < p.minLat || c.Lat > p.maxLat || c.Lon < p.minLon || c.Lon > p.maxLon {
		return false
	}
	// Ray casting over the polygon edges.
	inside := false
	n := len(p.Border)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Border[i], p.Border[j]
		if (a.Lat > c.Lat) != (b.Lat > c.Lat) {
			x := (b.Lon-a.Lon)*(c.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
			if c.Lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

func (p *Point) computeBounds() {
	if len(p.Border) == 0 {
		return
	}
	p.minLat, p.maxLat = p.Border[0].Lat, p.Border[0].Lat
	p.minLon, p.maxLon = p.Border[0].Lon, p.Border[0].Lon
	for _, v := range p.Border[1:] {
		if v.Lat < p.minLat {
			p.minLat = v.Lat
		}
		if v.Lat > p.maxLat {
			p.maxLat = v.Lat
		}
		if v.Lon < p.minLon {
			p.minLon = v.Lon
		}
		if v.Lon > p.maxLon {
			p.maxLon = v.Lon
		}
	}
}

// PointProvider indexes points by internal id, upstream foreign id and name.
type PointProvider struct {
	byID      map[string]*Point
	byForeign map[string]*Point
	byName    map[string]*Point
	all       []*Point
}

// LoadPoints reads the point bundle from path and builds the indexes.
// Duplicate ids, foreign ids or names are a startup error.
func LoadPoints(path string) (*PointProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points bundle: %w", err)
	}
	var points []*Point
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("parse points bundle %s: %w", path, err)
	}
	return NewPointProvider(points)
}

// NewPointProvider builds the indexes from an in-memory point list.
func NewPointProvider(points []*Point) (*PointProvider, error) {
	p := &PointProvider{
		byID:      make(map[string]*Point, len(points)),
		byForeign: make(map[string]*Point, len(points)),
		byName:    make(map[string]*Point, len(points)),
		all:       points,
	}
	for _, pt := range points {
		pt.computeBounds()
		if _, dup := p.byID[pt.ID]; dup {
			return nil, fmt.Errorf("duplicate point id %q", pt.ID)
		}
		p.byID[pt.ID] = pt
		if pt.ForeignID != "" {
			if _, dup := p.byForeign[pt.ForeignID]; dup {
				return nil, fmt.Errorf("duplicate point foreign id %q", pt.ForeignID)
			}
			p.byForeign[pt.ForeignID] = pt
		}
		if _, dup := p.byName[pt.Name]; dup {
			return nil, fmt.Errorf("duplicate point name %q", pt.Name)
		}
		p.byName[pt.Name] = pt
	}
	return p, nil
}

// ByID returns the point with the given internal id.
func (p *PointProvider) ByID(id string) (*Point, bool) {
	pt, ok := p.byID[id]
	return pt, ok
}

// ByForeignID returns the point with the given upstream foreign id.
func (p *PointProvider) ByForeignID(id string) (*Point, bool) {
	pt, ok := p.byForeign[id]
	return pt, ok
}

// ByName returns the point with the given name.
func (p *PointProvider) ByName(name string) (*Point, bool) {
	pt, ok := p.byName[name]
	return pt, ok
}

// ByContaining returns the point whose playable border contains the
// coordinate, or nil when the position is outside every border.
func (p *PointProvider) ByContaining(c LatLon) *Point {
	for _, pt := range p.all {
		if pt.Contains(c) {
			return pt
		}
	}
	return nil
}

// Len returns the number of loaded points.
func (p *PointProvider) Len() int { return len(p.all) }
