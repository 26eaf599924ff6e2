package collector

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/static"
	"github.com/simtrack/sit-collector/pkg/upstream"
)

// TrainAPI is the slice of the upstream client the train collector uses.
type TrainAPI interface {
	ActiveTrains(ctx context.Context, serverCode string) ([]upstream.TrainEntry, error)
	TrainPositions(ctx context.Context, serverCode string) ([]upstream.PositionEntry, error)
}

// Runs is the journey surface the train collector drives.
type Runs interface {
	Observe(ctx context.Context, obs journey.Observation) error
	SyncActive(ctx context.Context, serverID string, present map[string]struct{}, serverNow time.Time)
}

// TrainSource exposes the last full train listing per server. The vehicle
// collector consumes it instead of refetching the listing, which would
// invalidate the shared conditional-request state.
type TrainSource interface {
	Last(serverCode string) []upstream.TrainEntry
}

// TrainCollector turns the active-train listing into run observations. When
// the listing is unchanged it falls back to the cheap position listing so
// speed and position keep flowing at full rate.
type TrainCollector struct {
	api     TrainAPI
	runs    Runs
	servers ServerLister
	points  *static.PointProvider
	clock   *ServerClock
	logger  *slog.Logger

	mu   sync.RWMutex
	last map[string][]upstream.TrainEntry
}

// NewTrainCollector wires the active-train collector.
func NewTrainCollector(api TrainAPI, runs Runs, servers ServerLister, points *static.PointProvider, clock *ServerClock, logger *slog.Logger) *TrainCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrainCollector{
		api:     api,
		runs:    runs,
		servers: servers,
		points:  points,
		clock:   clock,
		logger:  logger,
		last:    make(map[string][]upstream.TrainEntry),
	}
}

// Last returns the most recent full listing for a server code.
func (c *TrainCollector) Last(serverCode string) []upstream.TrainEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last[serverCode]
}

// Tick processes every server sequentially.
func (c *TrainCollector) Tick(ctx context.Context) {
	servers, err := c.servers.List(ctx)
	if err != nil {
		c.logger.Error("listing servers for train collection failed", slog.Any("error", err))
		return
	}
	for _, srv := range servers {
		c.collectServer(ctx, srv.ID, srv.Code, srv.UtcOffsetHours)
	}
}

func (c *TrainCollector) collectServer(ctx context.Context, serverID, serverCode string, offsetHours int) {
	serverNow := c.clock.Now(serverCode, offsetHours)

	entries, err := c.api.ActiveTrains(ctx, serverCode)
	if err != nil {
		if errors.Is(err, upstream.ErrNotModified) {
			c.collectPositions(ctx, serverID, serverCode, serverNow)
			return
		}
		logUpstreamError(c.logger, "active train listing failed", err)
		return
	}

	c.mu.Lock()
	c.last[serverCode] = entries
	c.mu.Unlock()

	present := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.RunID == "" {
			continue
		}
		present[entry.RunID] = struct{}{}
		obs := c.observation(serverID, serverNow, entry)
		if err := c.runs.Observe(ctx, obs); err != nil {
			c.logger.Error("run observation failed",
				slog.String("run_id", entry.RunID),
				slog.String("server_code", serverCode),
				slog.Any("error", err))
		}
	}
	c.runs.SyncActive(ctx, serverID, present, serverNow)
}

// collectPositions drives the 304 path: the full listing is unchanged, so
// only speed and position move.
func (c *TrainCollector) collectPositions(ctx context.Context, serverID, serverCode string, serverNow time.Time) {
	positions, err := c.api.TrainPositions(ctx, serverCode)
	if err != nil {
		if errors.Is(err, upstream.ErrNotModified) {
			return
		}
		logUpstreamError(c.logger, "train position listing failed", err)
		return
	}

	known := make(map[string]upstream.TrainEntry)
	for _, entry := range c.Last(serverCode) {
		known[entry.RunID] = entry
	}

	present := make(map[string]struct{}, len(positions))
	for _, pos := range positions {
		entry, ok := known[pos.RunID]
		if !ok {
			// A run the full listing has not shown yet; the next full
			// listing will introduce it.
			continue
		}
		present[pos.RunID] = struct{}{}
		obs := journey.Observation{
			RunID:        pos.RunID,
			ServerID:     serverID,
			TrainNumber:  entry.TrainNoLocal,
			SpeedKmh:     speedKmh(pos.VelocityKmh),
			Position:     journey.Position{Lat: pos.Latitude, Lon: pos.Longitude},
			PositionOnly: true,
			ServerNow:    serverNow,
		}
		if err := c.runs.Observe(ctx, obs); err != nil {
			c.logger.Error("run position observation failed",
				slog.String("run_id", pos.RunID),
				slog.String("server_code", serverCode),
				slog.Any("error", err))
		}
	}
	c.runs.SyncActive(ctx, serverID, present, serverNow)
}

func (c *TrainCollector) observation(serverID string, serverNow time.Time, entry upstream.TrainEntry) journey.Observation {
	obs := journey.Observation{
		RunID:       entry.RunID,
		ServerID:    serverID,
		TrainNumber: entry.TrainNoLocal,
		SpeedKmh:    speedKmh(entry.TrainData.VelocityKmh),
		Position: journey.Position{
			Lat: entry.TrainData.Latitude,
			Lon: entry.TrainData.Longitude,
		},
		ServerNow: serverNow,
	}
	if entry.Driver != nil && entry.Driver.SteamID != "" {
		id := entry.Driver.SteamID
		obs.Driver = &id
	}
	if entry.TrainData.InBorderStationID != "" {
		if pt, ok := c.points.ByName(entry.TrainData.InBorderStationID); ok {
			obs.CurrentPointID = pt.ID
		}
	}
	if sig := signalAhead(entry); sig != nil {
		obs.NextSignal = sig
	}
	return obs
}

// signalAhead parses the "<name>@<internals>" signal reference.
func signalAhead(entry upstream.TrainEntry) *journey.SignalAhead {
	raw := entry.TrainData.SignalInFront
	if raw == "" {
		return nil
	}
	name, _, _ := strings.Cut(raw, "@")
	if name == "" {
		return nil
	}
	sig := &journey.SignalAhead{
		ID:        name,
		DistanceM: entry.TrainData.DistanceToSignalM,
	}
	if entry.TrainData.SignalSpeedLimit != nil && *entry.TrainData.SignalSpeedLimit > 0 {
		sig.SpeedLimitKmh = uint32(*entry.TrainData.SignalSpeedLimit)
	}
	return sig
}

func speedKmh(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(math.Round(v))
}
