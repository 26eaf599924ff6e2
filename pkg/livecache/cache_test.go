package livecache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Code    string `json:"code"`
	Foreign string `json:"foreign"`
	Version int64  `json:"version"`
	Online  bool   `json:"online"`
}

func newTestCache(t *testing.T, remote *redis.Client) *Cache[snapshot] {
	t.Helper()
	c := New(Options[snapshot]{
		Prefix:       "sit:server",
		TTL:          time.Hour,
		PrimaryKey:   func(s snapshot) string { return s.Code },
		SecondaryKey: func(s snapshot) string { return s.Foreign },
		Version:      func(s snapshot) int64 { return s.Version },
		Encode:       func(s snapshot) ([]byte, error) { return json.Marshal(s) },
		Decode: func(b []byte) (snapshot, error) {
			var s snapshot
			err := json.Unmarshal(b, &s)
			return s, err
		},
	}, remote)
	t.Cleanup(c.Close)
	return c
}

func TestUpdateLocalVersionedSwap(t *testing.T) {
	c := newTestCache(t, nil)

	_, installed := c.UpdateLocal(snapshot{Code: "K", Version: 10})
	assert.True(t, installed)

	// Older version: no-op, cache still holds v10.
	replaced, installed := c.UpdateLocal(snapshot{Code: "K", Version: 9, Online: true})
	assert.False(t, installed)
	assert.Nil(t, replaced)
	cur, ok := c.FindPrimary("K")
	require.True(t, ok)
	assert.Equal(t, int64(10), cur.Version)

	// Newer version: swap, replaced value is v10.
	replaced, installed = c.UpdateLocal(snapshot{Code: "K", Version: 11, Online: true})
	assert.True(t, installed)
	require.NotNil(t, replaced)
	assert.Equal(t, int64(10), replaced.Version)
	cur, ok = c.FindPrimary("K")
	require.True(t, ok)
	assert.Equal(t, int64(11), cur.Version)
	assert.True(t, cur.Online)
}

func TestEqualVersionIsNoOp(t *testing.T) {
	c := newTestCache(t, nil)
	c.UpdateLocal(snapshot{Code: "K", Version: 5})
	_, installed := c.UpdateLocal(snapshot{Code: "K", Version: 5, Online: true})
	assert.False(t, installed)
}

func TestSecondaryKeyAliasesSameNode(t *testing.T) {
	c := newTestCache(t, nil)
	c.UpdateLocal(snapshot{Code: "de1", Foreign: "6390db9a9401bed7d6409dbb", Version: 1})

	bySecondary, ok := c.FindSecondary("6390db9a9401bed7d6409dbb")
	require.True(t, ok)
	assert.Equal(t, "de1", bySecondary.Code)

	// Removal is observed through both keys atomically.
	c.RemovePrimary("de1")
	_, ok = c.FindPrimary("de1")
	assert.False(t, ok)
	_, ok = c.FindSecondary("6390db9a9401bed7d6409dbb")
	assert.False(t, ok)
}

func TestRemovedNodeRejectsLateWriters(t *testing.T) {
	c := newTestCache(t, nil)
	c.UpdateLocal(snapshot{Code: "K", Version: 3})
	c.RemovePrimary("K")

	_, installed := c.UpdateLocal(snapshot{Code: "K", Version: 4})
	assert.False(t, installed, "late writer must detect the tombstone and skip")
	_, ok := c.FindPrimary("K")
	assert.False(t, ok)
}

func TestSweepDropsExpiredTombstones(t *testing.T) {
	c := newTestCache(t, nil)
	c.UpdateLocal(snapshot{Code: "K", Version: 1})
	c.RemovePrimary("K")

	// Before the grace period the tombstone survives the sweep.
	c.sweep(time.Now())
	_, loaded := c.primary.Load("K")
	assert.True(t, loaded)

	// After the grace period it is dropped; the key becomes writable again.
	c.sweep(time.Now().Add(removalGrace + time.Second))
	_, loaded = c.primary.Load("K")
	assert.False(t, loaded)

	_, installed := c.UpdateLocal(snapshot{Code: "K", Version: 1})
	assert.True(t, installed)
}

func TestSweepTombstonesStaleNodes(t *testing.T) {
	c := newTestCache(t, nil)
	c.UpdateLocal(snapshot{Code: "K", Version: 1})

	c.sweep(time.Now().Add(2 * time.Hour))
	_, ok := c.FindPrimary("K")
	assert.False(t, ok, "node past TTL must read as absent")
	assert.Equal(t, 0, c.Len())
}

func TestSetMirrorsToRemote(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := newTestCache(t, client)

	_, installed := c.Set(snapshot{Code: "de1", Version: 7, Online: true})
	require.True(t, installed)

	require.Eventually(t, func() bool {
		return mr.Exists("sit:server:de1")
	}, 2*time.Second, 10*time.Millisecond)

	raw, err := mr.Get("sit:server:de1")
	require.NoError(t, err)
	var got snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, int64(7), got.Version)
}

func TestPullRehydratesFromRemote(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	for _, s := range []snapshot{
		{Code: "de1", Version: 3, Online: true},
		{Code: "pl2", Version: 8},
	} {
		raw, err := json.Marshal(s)
		require.NoError(t, err)
		mr.Set("sit:server:"+s.Code, string(raw))
	}
	// Foreign-prefix key that must not be picked up.
	mr.Set("sit:post:xx", `{"code":"xx","version":1}`)

	c := newTestCache(t, client)
	require.NoError(t, c.Pull(context.Background()))

	assert.Equal(t, 2, c.Len())
	got, ok := c.FindPrimary("de1")
	require.True(t, ok)
	assert.True(t, got.Online)
	_, ok = c.FindPrimary("xx")
	assert.False(t, ok)
}

func TestVersionMonotonicUnderConcurrency(t *testing.T) {
	c := newTestCache(t, nil)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for v := int64(1); v <= 500; v++ {
			c.UpdateLocal(snapshot{Code: "K", Version: v})
		}
	}()

	last := int64(0)
	for {
		select {
		case <-done:
			cur, ok := c.FindPrimary("K")
			require.True(t, ok)
			assert.Equal(t, int64(500), cur.Version)
			return
		default:
			if cur, ok := c.FindPrimary("K"); ok {
				require.GreaterOrEqual(t, cur.Version, last)
				last = cur.Version
			}
		}
	}
}
