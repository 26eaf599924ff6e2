package collector

import (
	"context"
	"testing"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/livecache"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/static"
	"github.com/simtrack/sit-collector/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostAPI struct {
	entries map[string][]upstream.DispatchPostEntry
	err     error
}

func (f *fakePostAPI) DispatchPosts(ctx context.Context, serverCode string) ([]upstream.DispatchPostEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[serverCode], nil
}

type fakePostStore struct {
	upserts []services.DispatchPostRecord
	removed []string
}

func (f *fakePostStore) Upsert(ctx context.Context, rec services.DispatchPostRecord) (*ent.DispatchPost, error) {
	f.upserts = append(f.upserts, rec)
	return &ent.DispatchPost{ID: rec.ID, Name: rec.Name}, nil
}

func (f *fakePostStore) MarkMissingDeleted(ctx context.Context, serverID string, presentIDs []string) ([]string, error) {
	return f.removed, nil
}

type fakeLister struct {
	servers []*ent.Server
}

func (f *fakeLister) List(ctx context.Context) ([]*ent.Server, error) {
	return f.servers, nil
}

func testPoints(t *testing.T) *static.PointProvider {
	t.Helper()
	points, err := static.NewPointProvider([]*static.Point{
		{ID: "katowice", ForeignID: "3991", Name: "Katowice", Border: []static.LatLon{
			{Lat: 50.25, Lon: 19.01}, {Lat: 50.27, Lon: 19.01}, {Lat: 50.26, Lon: 19.03},
		}},
		{ID: "sosnowiec", ForeignID: "4518", Name: "Sosnowiec Główny"},
	})
	require.NoError(t, err)
	return points
}

func postEntry(foreignID, name string, dispatchers ...string) upstream.DispatchPostEntry {
	entry := upstream.DispatchPostEntry{
		ID:         foreignID,
		Name:       name,
		PointName:  name,
		Latitude:   50.258,
		Longitude:  19.02,
		Difficulty: 3,
	}
	for _, d := range dispatchers {
		entry.DispatchedBy = append(entry.DispatchedBy, upstream.Player{SteamID: d})
	}
	return entry
}

func newPostCollector(t *testing.T, api *fakePostAPI, store *fakePostStore, events *fakeEvents) (*PostCollector, *livecache.Cache[PostSnapshot]) {
	t.Helper()
	cache := NewPostCache(nil, time.Hour)
	t.Cleanup(cache.Close)
	lister := &fakeLister{servers: []*ent.Server{{ID: "srv-de1", Code: "de1"}}}
	return NewPostCollector(api, store, lister, testPoints(t), cache, events, nil), cache
}

func TestPostCollector_FirstSightingWritesAndEmitsAdd(t *testing.T) {
	api := &fakePostAPI{entries: map[string][]upstream.DispatchPostEntry{
		"de1": {postEntry("6390db9a00000000000000a1", "Katowice", "steam-2", "steam-1")},
	}}
	store := &fakePostStore{}
	events := &fakeEvents{}
	c, _ := newPostCollector(t, api, store, events)

	c.Tick(context.Background())

	require.Len(t, store.upserts, 1)
	rec := store.upserts[0]
	assert.Equal(t, railid.DispatchPostID("6390db9a00000000000000a1"), rec.ID)
	assert.Equal(t, "srv-de1", rec.ServerID)
	require.NotNil(t, rec.PointID)
	assert.Equal(t, "katowice", *rec.PointID)

	require.Len(t, events.posts, 1)
	delta := events.posts[0]
	assert.Equal(t, journey.KindAdd, delta.Kind)
	assert.True(t, delta.DispatchersChanged)
	assert.Equal(t, []string{"steam-1", "steam-2"}, delta.Dispatchers)
}

func TestPostCollector_UnchangedRowIsNotRewritten(t *testing.T) {
	api := &fakePostAPI{entries: map[string][]upstream.DispatchPostEntry{
		"de1": {postEntry("6390db9a00000000000000a1", "Katowice")},
	}}
	store := &fakePostStore{}
	events := &fakeEvents{}
	c, _ := newPostCollector(t, api, store, events)

	c.Tick(context.Background())
	c.Tick(context.Background())

	assert.Len(t, store.upserts, 1)
	assert.Len(t, events.posts, 1)
}

func TestPostCollector_DispatcherChangeSkipsRowWrite(t *testing.T) {
	api := &fakePostAPI{entries: map[string][]upstream.DispatchPostEntry{
		"de1": {postEntry("6390db9a00000000000000a1", "Katowice", "steam-1")},
	}}
	store := &fakePostStore{}
	events := &fakeEvents{}
	c, _ := newPostCollector(t, api, store, events)

	c.Tick(context.Background())
	api.entries["de1"] = []upstream.DispatchPostEntry{
		postEntry("6390db9a00000000000000a1", "Katowice", "steam-9"),
	}
	c.Tick(context.Background())

	// Identity lives in the cache, not the row.
	assert.Len(t, store.upserts, 1)
	require.Len(t, events.posts, 2)
	assert.Equal(t, journey.KindUpdate, events.posts[1].Kind)
	assert.Equal(t, []string{"steam-9"}, events.posts[1].Dispatchers)
}

func TestPostCollector_ContentChangeWritesRow(t *testing.T) {
	api := &fakePostAPI{entries: map[string][]upstream.DispatchPostEntry{
		"de1": {postEntry("6390db9a00000000000000a1", "Katowice")},
	}}
	store := &fakePostStore{}
	events := &fakeEvents{}
	c, _ := newPostCollector(t, api, store, events)

	c.Tick(context.Background())
	changed := postEntry("6390db9a00000000000000a1", "Katowice")
	changed.Difficulty = 5
	api.entries["de1"] = []upstream.DispatchPostEntry{changed}
	c.Tick(context.Background())

	require.Len(t, store.upserts, 2)
	assert.Equal(t, 5, store.upserts[1].Difficulty)
	// Same dispatchers, no extra frame.
	assert.Len(t, events.posts, 1)
}

func TestPostCollector_CoordinateOverride(t *testing.T) {
	entry := postEntry("638fec6e15ce5d585a191b5d", "Jaworzno Szczakowa")
	entry.Latitude = 0
	entry.Longitude = 0
	api := &fakePostAPI{entries: map[string][]upstream.DispatchPostEntry{"de1": {entry}}}
	store := &fakePostStore{}
	c, _ := newPostCollector(t, api, store, &fakeEvents{})

	c.Tick(context.Background())

	require.Len(t, store.upserts, 1)
	assert.InDelta(t, 50.09252, store.upserts[0].Latitude, 1e-6)
	assert.InDelta(t, 19.39501, store.upserts[0].Longitude, 1e-6)
}

func TestPostCollector_RemovalTombstonesAndEmitsRemove(t *testing.T) {
	gone := railid.DispatchPostID("6390db9a00000000000000a2")
	api := &fakePostAPI{entries: map[string][]upstream.DispatchPostEntry{
		"de1": {
			postEntry("6390db9a00000000000000a1", "Katowice"),
			postEntry("6390db9a00000000000000a2", "Sosnowiec Główny"),
		},
	}}
	store := &fakePostStore{}
	events := &fakeEvents{}
	c, cache := newPostCollector(t, api, store, events)

	c.Tick(context.Background())
	_, known := cache.FindPrimary(gone)
	require.True(t, known)

	api.entries["de1"] = api.entries["de1"][:1]
	store.removed = []string{gone}
	c.Tick(context.Background())

	_, known = cache.FindPrimary(gone)
	assert.False(t, known)

	last := events.posts[len(events.posts)-1]
	assert.Equal(t, journey.KindRemove, last.Kind)
	assert.Equal(t, gone, last.PostID)
}

func TestPostCollector_NotModifiedSkipsServer(t *testing.T) {
	api := &fakePostAPI{err: upstream.ErrNotModified}
	store := &fakePostStore{}
	events := &fakeEvents{}
	c, _ := newPostCollector(t, api, store, events)

	c.Tick(context.Background())

	assert.Empty(t, store.upserts)
	assert.Empty(t, events.posts)
}
