package collector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/livecache"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/static"
	"github.com/simtrack/sit-collector/pkg/upstream"
)

// postWriteInterval caps how often an unchanged post row is rewritten. The
// dispatcher identity is exempt: it lives in the cache and updates on every
// tick.
const postWriteInterval = 5 * time.Minute

// coordOverrides corrects upstream dispatch post coordinates that are known
// to be wrong, keyed by foreign id.
var coordOverrides = map[string]static.LatLon{
	"638fec6e15ce5d585a191b5d": {Lat: 50.09252, Lon: 19.39501}, // Jaworzno Szczakowa
	"63a7d94e7b78205fc2572258": {Lat: 50.27838, Lon: 19.46902}, // Dąbrowa Górnicza Wschodnia
}

// PostAPI is the slice of the upstream client the post collector uses.
type PostAPI interface {
	DispatchPosts(ctx context.Context, serverCode string) ([]upstream.DispatchPostEntry, error)
}

// PostStore is the persistence surface, satisfied by services.DispatchPostService.
type PostStore interface {
	Upsert(ctx context.Context, rec services.DispatchPostRecord) (*ent.DispatchPost, error)
	MarkMissingDeleted(ctx context.Context, serverID string, presentIDs []string) ([]string, error)
}

// ServerLister enumerates the servers a per-server collector iterates.
type ServerLister interface {
	List(ctx context.Context) ([]*ent.Server, error)
}

// PostCollector reconciles dispatch posts per server. Rows are written only
// on content change or every five minutes to keep write amplification down;
// dispatcher identities always land in the cache immediately.
type PostCollector struct {
	api     PostAPI
	store   PostStore
	servers ServerLister
	points  *static.PointProvider
	cache   *livecache.Cache[PostSnapshot]
	events  Events
	logger  *slog.Logger

	mu        sync.Mutex
	lastWrite map[string]time.Time
	lastHash  map[string]string
}

// NewPostCollector wires the dispatch post collector.
func NewPostCollector(api PostAPI, store PostStore, servers ServerLister, points *static.PointProvider, cache *livecache.Cache[PostSnapshot], events Events, logger *slog.Logger) *PostCollector {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostCollector{
		api:       api,
		store:     store,
		servers:   servers,
		points:    points,
		cache:     cache,
		events:    events,
		logger:    logger,
		lastWrite: make(map[string]time.Time),
		lastHash:  make(map[string]string),
	}
}

// Tick processes every server sequentially.
func (c *PostCollector) Tick(ctx context.Context) {
	servers, err := c.servers.List(ctx)
	if err != nil {
		c.logger.Error("listing servers for post collection failed", slog.Any("error", err))
		return
	}
	for _, srv := range servers {
		c.collectServer(ctx, srv.ID, srv.Code)
	}
}

func (c *PostCollector) collectServer(ctx context.Context, serverID, serverCode string) {
	entries, err := c.api.DispatchPosts(ctx, serverCode)
	if err != nil {
		if errors.Is(err, upstream.ErrNotModified) {
			return
		}
		logUpstreamError(c.logger, "dispatch post listing failed", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	present := make([]string, 0, len(entries))
	for _, entry := range entries {
		id, err := c.reconcile(ctx, serverID, entry)
		if err != nil {
			c.logger.Error("dispatch post reconciliation failed",
				slog.String("post", entry.Name),
				slog.String("server_id", serverID),
				slog.Any("error", err))
			continue
		}
		present = append(present, id)
	}

	removed, err := c.store.MarkMissingDeleted(ctx, serverID, present)
	if err != nil {
		c.logger.Error("marking missing posts failed",
			slog.String("server_id", serverID), slog.Any("error", err))
		return
	}
	for _, id := range removed {
		c.cache.RemovePrimary(id)
		c.forgetWrites(id)
		if c.events != nil {
			c.events.DispatchPostChanged(PostDelta{PostID: id, ServerID: serverID, Kind: journey.KindRemove})
		}
	}
}

func (c *PostCollector) reconcile(ctx context.Context, serverID string, entry upstream.DispatchPostEntry) (string, error) {
	id := railid.DispatchPostID(entry.ID)

	var pointID *string
	if pt, ok := c.points.ByName(entry.PointName); ok {
		pointID = &pt.ID
	}

	lat, lon := entry.Latitude, entry.Longitude
	if fix, ok := coordOverrides[entry.ID]; ok {
		lat, lon = fix.Lat, fix.Lon
	}

	dispatchers := make([]string, 0, len(entry.DispatchedBy))
	for _, p := range entry.DispatchedBy {
		if p.SteamID != "" {
			dispatchers = append(dispatchers, p.SteamID)
		}
	}
	slices.Sort(dispatchers)

	prev, known := c.cache.FindPrimary(id)
	c.cache.Set(PostSnapshot{
		PostID:      id,
		ServerID:    serverID,
		Dispatchers: dispatchers,
		Version:     time.Now().UnixNano(),
	})
	if c.events != nil {
		kind := journey.KindUpdate
		if !known {
			kind = journey.KindAdd
		}
		if !known || !slices.Equal(prev.Dispatchers, dispatchers) {
			c.events.DispatchPostChanged(PostDelta{
				PostID:             id,
				ServerID:           serverID,
				Kind:               kind,
				Dispatchers:        dispatchers,
				DispatchersChanged: true,
			})
		}
	}

	if !c.shouldWrite(id, contentHash(entry, pointID, lat, lon)) {
		return id, nil
	}
	if _, err := c.store.Upsert(ctx, services.DispatchPostRecord{
		ID:             id,
		ForeignID:      entry.ID,
		ServerID:       serverID,
		Name:           entry.Name,
		PointID:        pointID,
		Latitude:       lat,
		Longitude:      lon,
		Difficulty:     entry.Difficulty,
		MainImageURL:   entry.MainImageURL,
		DetailImageURL: entry.DetailImageURL,
	}); err != nil {
		return "", err
	}
	c.markWritten(id, contentHash(entry, pointID, lat, lon))
	return id, nil
}

func contentHash(entry upstream.DispatchPostEntry, pointID *string, lat, lon float64) string {
	pid := ""
	if pointID != nil {
		pid = *pointID
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%f|%f|%d|%s|%s",
		entry.Name, pid, lat, lon, entry.Difficulty, entry.MainImageURL, entry.DetailImageURL)))
	return hex.EncodeToString(sum[:])
}

func (c *PostCollector) shouldWrite(id, hash string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastHash[id] != hash {
		return true
	}
	return time.Since(c.lastWrite[id]) >= postWriteInterval
}

func (c *PostCollector) markWritten(id, hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastHash[id] = hash
	c.lastWrite[id] = time.Now()
}

func (c *PostCollector) forgetWrites(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lastHash, id)
	delete(c.lastWrite, id)
}
