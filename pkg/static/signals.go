package static

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/simtrack/sit-collector/pkg/railid"
)

// Signal maps a trackside signal to the platform and track it guards.
// PlatformRoman is the upstream platform designation ("I", "IIa", ...);
// Platform is its decoded number.
type Signal struct {
	PointID       string `json:"point_id"`
	SignalID      string `json:"signal_id"`
	PlatformRoman string `json:"platform"`
	Track         int    `json:"track"`

	Platform int `json:"-"`
}

// SignalProvider indexes signals by (point id, signal id).
type SignalProvider struct {
	byKey map[string]*Signal
}

func signalKey(pointID, signalID string) string {
	return pointID + "\x00" + signalID
}

// LoadSignals reads the signal bundle from path.
func LoadSignals(path string) (*SignalProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signals bundle: %w", err)
	}
	var signals []*Signal
	if err := json.Unmarshal(raw, &signals); err != nil {
		return nil, fmt.Errorf("parse signals bundle %s: %w", path, err)
	}
	return NewSignalProvider(signals)
}

// NewSignalProvider builds the index; duplicate (point, signal) pairs are a
// startup error.
func NewSignalProvider(signals []*Signal) (*SignalProvider, error) {
	p := &SignalProvider{byKey: make(map[string]*Signal, len(signals))}
	for _, s := range signals {
		s.Platform = railid.ParseRoman(s.PlatformRoman)
		key := signalKey(s.PointID, s.SignalID)
		if _, dup := p.byKey[key]; dup {
			return nil, fmt.Errorf("duplicate signal %q at point %q", s.SignalID, s.PointID)
		}
		p.byKey[key] = s
	}
	return p, nil
}

// Lookup returns the signal registered for (pointID, signalID).
func (p *SignalProvider) Lookup(pointID, signalID string) (*Signal, bool) {
	s, ok := p.byKey[signalKey(pointID, signalID)]
	return s, ok
}
