package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/server"
	"github.com/simtrack/sit-collector/pkg/dirty"
	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/livecache"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/upstream"
)

// ServerAPI is the slice of the upstream client the server collector uses.
type ServerAPI interface {
	Servers(ctx context.Context) ([]upstream.ServerEntry, error)
	TimeOffset(ctx context.Context, serverCode string) (upstream.TimeOffset, error)
}

// ServerStore is the persistence surface, satisfied by services.ServerService.
type ServerStore interface {
	Upsert(ctx context.Context, rec services.ServerRecord) (*ent.Server, error)
	MarkMissingDeleted(ctx context.Context, presentIDs []string) ([]string, error)
}

// ServerCollector reconciles the upstream server listing: upserts rows,
// keeps the online snapshot in the cache and emits sparse server frames.
type ServerCollector struct {
	api    ServerAPI
	store  ServerStore
	cache  *livecache.Cache[ServerSnapshot]
	events Events
	logger *slog.Logger
}

// NewServerCollector wires the server collector.
func NewServerCollector(api ServerAPI, store ServerStore, cache *livecache.Cache[ServerSnapshot], events Events, logger *slog.Logger) *ServerCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServerCollector{api: api, store: store, cache: cache, events: events, logger: logger}
}

// Tick runs one reconciliation pass over the full server listing.
func (c *ServerCollector) Tick(ctx context.Context) {
	entries, err := c.api.Servers(ctx)
	if err != nil {
		if errors.Is(err, upstream.ErrNotModified) {
			return
		}
		logUpstreamError(c.logger, "server listing failed", err)
		return
	}
	if len(entries) == 0 {
		c.logger.Warn("upstream returned an empty server listing, skipping tick")
		return
	}

	present := make([]string, 0, len(entries))
	for _, entry := range entries {
		id, err := c.reconcile(ctx, entry)
		if err != nil {
			c.logger.Error("server reconciliation failed",
				slog.String("server_code", entry.ServerCode),
				slog.Any("error", err))
			continue
		}
		present = append(present, id)
	}

	removed, err := c.store.MarkMissingDeleted(ctx, present)
	if err != nil {
		c.logger.Error("marking missing servers failed", slog.Any("error", err))
		return
	}
	for _, id := range removed {
		c.cache.RemovePrimary(id)
		if c.events != nil {
			c.events.ServerChanged(ServerDelta{ServerID: id, Kind: journey.KindRemove})
		}
	}
}

func (c *ServerCollector) reconcile(ctx context.Context, entry upstream.ServerEntry) (string, error) {
	id := railid.ServerID(entry.ID)

	registered, err := railid.ForeignIDTimestamp(entry.ID)
	if err != nil {
		return "", fmt.Errorf("decode foreign id %q: %w", entry.ID, err)
	}
	region, err := mapRegion(entry.Region)
	if err != nil {
		return "", err
	}

	offsetHours := 0
	if off, err := c.api.TimeOffset(ctx, entry.ServerCode); err == nil {
		offsetHours = off.UTCOffsetHours
	} else if prev, ok := c.cache.FindPrimary(id); ok {
		// The clock endpoint is flaky; keep the last known offset.
		offsetHours = prev.UTCOffsetHours
	}

	if _, err := c.store.Upsert(ctx, services.ServerRecord{
		ID:              id,
		ForeignID:       entry.ID,
		Code:            entry.ServerCode,
		Region:          region,
		Scenery:         entry.Scenery,
		UTCOffsetHours:  offsetHours,
		Language:        entry.Language,
		Tags:            entry.Tags,
		RegisteredSince: registered,
	}); err != nil {
		return "", err
	}

	prev, known := c.cache.FindPrimary(id)
	snap := ServerSnapshot{
		ServerID:       id,
		Code:           entry.ServerCode,
		Online:         entry.IsActive,
		UTCOffsetHours: offsetHours,
		ZoneOffset:     zoneOffset(offsetHours),
		Scenery:        entry.Scenery,
		Version:        time.Now().UnixNano(),
	}
	c.cache.Set(snap)

	if c.events == nil {
		return id, nil
	}
	delta := diffServer(prevPtr(prev, known), snap)
	if delta != nil {
		delta.ServerID = id
		c.events.ServerChanged(*delta)
	}
	return id, nil
}

func prevPtr(prev ServerSnapshot, known bool) *ServerSnapshot {
	if !known {
		return nil
	}
	return &prev
}

// diffServer builds the sparse change set against the previous snapshot.
// With no previous snapshot every field is present and the frame is an ADD.
func diffServer(prev *ServerSnapshot, cur ServerSnapshot) *ServerDelta {
	g := dirty.NewGroup()
	var online *dirty.NullableField[bool]
	var zone *dirty.NullableField[string]
	var offset *dirty.NullableField[int]
	var scenery *dirty.NullableField[string]
	if prev != nil {
		online = dirty.NewNullableField(g, "online", &prev.Online)
		zone = dirty.NewNullableField(g, "zone_offset", &prev.ZoneOffset)
		offset = dirty.NewNullableField(g, "utc_offset_hours", &prev.UTCOffsetHours)
		scenery = dirty.NewNullableField(g, "server_scenery", &prev.Scenery)
	} else {
		online = dirty.NewNullableField[bool](g, "online", nil)
		zone = dirty.NewNullableField[string](g, "zone_offset", nil)
		offset = dirty.NewNullableField[int](g, "utc_offset_hours", nil)
		scenery = dirty.NewNullableField[string](g, "server_scenery", nil)
	}

	online.Set(cur.Online)
	zone.Set(cur.ZoneOffset)
	offset.Set(cur.UTCOffsetHours)
	scenery.Set(cur.Scenery)

	if !g.ConsumeDirty() {
		return nil
	}
	kind := journey.KindUpdate
	if prev == nil {
		kind = journey.KindAdd
	}
	return &ServerDelta{Kind: kind, Changes: g.Changes()}
}

func mapRegion(raw string) (server.Region, error) {
	switch raw {
	case "Asia":
		return server.RegionASIA, nil
	case "Europe":
		return server.RegionEUROPE, nil
	case "US_North":
		return server.RegionUS_NORTH, nil
	default:
		return "", fmt.Errorf("unknown server region %q", raw)
	}
}

func zoneOffset(hours int) string {
	return fmt.Sprintf("%+03d:00", hours)
}

// permanentLogInterval caps how often one failing (endpoint, status) pair is
// logged. A permanent 4xx repeats identically every tick until the upstream
// contract changes.
const permanentLogInterval = 10 * time.Minute

var permanentLog = struct {
	mu   sync.Mutex
	last map[string]time.Time
}{last: make(map[string]time.Time)}

// logUpstreamError classifies the failure: 5xx and transport errors retry
// silently next tick, 4xx point at a contract problem and log louder, rate
// limited per (endpoint, status code).
func logUpstreamError(logger *slog.Logger, msg string, err error) {
	var status *upstream.StatusError
	if errors.As(err, &status) && !status.Transient() {
		key := fmt.Sprintf("%s|%d", status.Endpoint, status.Code)
		now := time.Now()
		permanentLog.mu.Lock()
		last, seen := permanentLog.last[key]
		if seen && now.Sub(last) < permanentLogInterval {
			permanentLog.mu.Unlock()
			return
		}
		permanentLog.last[key] = now
		permanentLog.mu.Unlock()
		logger.Error(msg, slog.Any("error", err), slog.Int("status", status.Code))
		return
	}
	logger.Warn(msg, slog.Any("error", err))
}
