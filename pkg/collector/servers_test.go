package collector

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/server"
	"github.com/simtrack/sit-collector/pkg/dirty"
	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/livecache"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServerAPI struct {
	entries   []upstream.ServerEntry
	err       error
	offsets   map[string]int
	offsetErr error
}

func (f *fakeServerAPI) Servers(ctx context.Context) ([]upstream.ServerEntry, error) {
	return f.entries, f.err
}

func (f *fakeServerAPI) TimeOffset(ctx context.Context, serverCode string) (upstream.TimeOffset, error) {
	if f.offsetErr != nil {
		return upstream.TimeOffset{}, f.offsetErr
	}
	return upstream.TimeOffset{UTCOffsetHours: f.offsets[serverCode]}, nil
}

type fakeServerStore struct {
	upserts []services.ServerRecord
	removed []string
}

func (f *fakeServerStore) Upsert(ctx context.Context, rec services.ServerRecord) (*ent.Server, error) {
	f.upserts = append(f.upserts, rec)
	return &ent.Server{ID: rec.ID, Code: rec.Code, UtcOffsetHours: rec.UTCOffsetHours}, nil
}

func (f *fakeServerStore) MarkMissingDeleted(ctx context.Context, presentIDs []string) ([]string, error) {
	return f.removed, nil
}

type fakeEvents struct {
	servers []ServerDelta
	posts   []PostDelta
}

func (f *fakeEvents) ServerChanged(d ServerDelta)     { f.servers = append(f.servers, d) }
func (f *fakeEvents) DispatchPostChanged(d PostDelta) { f.posts = append(f.posts, d) }

func changeNames(changes []dirty.Change) []string {
	names := make([]string, len(changes))
	for i, c := range changes {
		names[i] = c.Name
	}
	return names
}

func serverEntry(foreignID, code string) upstream.ServerEntry {
	return upstream.ServerEntry{
		ID:         foreignID,
		ServerCode: code,
		Region:     "Europe",
		IsActive:   true,
		Scenery:    "classic",
		Language:   "de",
	}
}

func newServerCollector(t *testing.T, api *fakeServerAPI, store *fakeServerStore, events *fakeEvents) (*ServerCollector, *livecache.Cache[ServerSnapshot]) {
	t.Helper()
	cache := NewServerCache(nil, time.Hour)
	t.Cleanup(cache.Close)
	return NewServerCollector(api, store, cache, events, nil), cache
}

func TestServerCollector_FirstSightingEmitsFullAddFrame(t *testing.T) {
	api := &fakeServerAPI{
		entries: []upstream.ServerEntry{serverEntry("6390db9a000000000000de01", "de1")},
		offsets: map[string]int{"de1": 1},
	}
	store := &fakeServerStore{}
	events := &fakeEvents{}
	c, _ := newServerCollector(t, api, store, events)

	c.Tick(context.Background())

	require.Len(t, store.upserts, 1)
	rec := store.upserts[0]
	assert.Equal(t, railid.ServerID("6390db9a000000000000de01"), rec.ID)
	assert.Equal(t, server.RegionEUROPE, rec.Region)
	assert.Equal(t, 1, rec.UTCOffsetHours)
	assert.Equal(t, time.Date(2022, 12, 7, 18, 29, 46, 0, time.UTC), rec.RegisteredSince.UTC())

	require.Len(t, events.servers, 1)
	delta := events.servers[0]
	assert.Equal(t, journey.KindAdd, delta.Kind)
	assert.ElementsMatch(t,
		[]string{"online", "zone_offset", "utc_offset_hours", "server_scenery"},
		changeNames(delta.Changes))
}

func TestServerCollector_UnchangedTickEmitsNothing(t *testing.T) {
	api := &fakeServerAPI{
		entries: []upstream.ServerEntry{serverEntry("6390db9a000000000000de01", "de1")},
		offsets: map[string]int{"de1": 1},
	}
	store := &fakeServerStore{}
	events := &fakeEvents{}
	c, _ := newServerCollector(t, api, store, events)

	c.Tick(context.Background())
	c.Tick(context.Background())

	// Rows keep being written, frames do not.
	assert.Len(t, store.upserts, 2)
	assert.Len(t, events.servers, 1)
}

func TestServerCollector_OnlineFlipEmitsSparseUpdate(t *testing.T) {
	api := &fakeServerAPI{
		entries: []upstream.ServerEntry{serverEntry("6390db9a000000000000de01", "de1")},
		offsets: map[string]int{"de1": 1},
	}
	store := &fakeServerStore{}
	events := &fakeEvents{}
	c, _ := newServerCollector(t, api, store, events)

	c.Tick(context.Background())
	api.entries[0].IsActive = false
	c.Tick(context.Background())

	require.Len(t, events.servers, 2)
	delta := events.servers[1]
	assert.Equal(t, journey.KindUpdate, delta.Kind)
	require.Len(t, delta.Changes, 1)
	assert.Equal(t, "online", delta.Changes[0].Name)
	assert.Equal(t, false, delta.Changes[0].Value)
}

func TestServerCollector_OffsetFailureKeepsLastKnown(t *testing.T) {
	api := &fakeServerAPI{
		entries: []upstream.ServerEntry{serverEntry("6390db9a000000000000de01", "de1")},
		offsets: map[string]int{"de1": 2},
	}
	store := &fakeServerStore{}
	events := &fakeEvents{}
	c, _ := newServerCollector(t, api, store, events)

	c.Tick(context.Background())
	api.offsetErr = assert.AnError
	c.Tick(context.Background())

	require.Len(t, store.upserts, 2)
	assert.Equal(t, 2, store.upserts[1].UTCOffsetHours)
	// No offset change, no frame.
	assert.Len(t, events.servers, 1)
}

func TestServerCollector_RemovalTombstonesAndEmitsRemove(t *testing.T) {
	gone := railid.ServerID("6390db9a000000000000en01")
	api := &fakeServerAPI{
		entries: []upstream.ServerEntry{
			serverEntry("6390db9a000000000000de01", "de1"),
			serverEntry("6390db9a000000000000en01", "en1"),
		},
		offsets: map[string]int{"de1": 1, "en1": 1},
	}
	store := &fakeServerStore{}
	events := &fakeEvents{}
	c, cache := newServerCollector(t, api, store, events)

	c.Tick(context.Background())
	_, known := cache.FindPrimary(gone)
	require.True(t, known)

	api.entries = api.entries[:1]
	store.removed = []string{gone}
	c.Tick(context.Background())

	_, known = cache.FindPrimary(gone)
	assert.False(t, known)

	last := events.servers[len(events.servers)-1]
	assert.Equal(t, journey.KindRemove, last.Kind)
	assert.Equal(t, gone, last.ServerID)
}

func TestServerCollector_EmptyListingSkipsTick(t *testing.T) {
	api := &fakeServerAPI{}
	store := &fakeServerStore{}
	events := &fakeEvents{}
	c, _ := newServerCollector(t, api, store, events)

	c.Tick(context.Background())

	assert.Empty(t, store.upserts)
	assert.Empty(t, events.servers)
}

func TestServerCollector_NotModifiedSkipsTick(t *testing.T) {
	api := &fakeServerAPI{err: upstream.ErrNotModified}
	store := &fakeServerStore{}
	events := &fakeEvents{}
	c, _ := newServerCollector(t, api, store, events)

	c.Tick(context.Background())

	assert.Empty(t, store.upserts)
	assert.Empty(t, events.servers)
}

func TestMapRegion(t *testing.T) {
	region, err := mapRegion("US_North")
	require.NoError(t, err)
	assert.Equal(t, server.RegionUS_NORTH, region)

	_, err = mapRegion("Atlantis")
	assert.Error(t, err)
}

func TestLogUpstreamErrorRateLimitsPermanentFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	forbidden := &upstream.StatusError{Endpoint: "https://panel.example/servers", Code: 403}
	logUpstreamError(logger, "server listing failed", forbidden)
	logUpstreamError(logger, "server listing failed", forbidden)
	logUpstreamError(logger, "server listing failed", forbidden)
	assert.Equal(t, 1, strings.Count(buf.String(), "status=403"),
		"repeated permanent failures log once per interval")

	// A different status on the same endpoint is limited separately.
	logUpstreamError(logger, "server listing failed",
		&upstream.StatusError{Endpoint: "https://panel.example/servers", Code: 404})
	assert.Equal(t, 1, strings.Count(buf.String(), "status=404"))

	// Transient failures are not limited.
	buf.Reset()
	transient := &upstream.StatusError{Endpoint: "https://panel.example/servers", Code: 502}
	logUpstreamError(logger, "server listing failed", transient)
	logUpstreamError(logger, "server listing failed", transient)
	assert.Equal(t, 2, strings.Count(buf.String(), "level=WARN"))
}

func TestZoneOffset(t *testing.T) {
	assert.Equal(t, "+01:00", zoneOffset(1))
	assert.Equal(t, "-05:00", zoneOffset(-5))
	assert.Equal(t, "+00:00", zoneOffset(0))
}
