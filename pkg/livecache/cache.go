// Package livecache is the hot realtime snapshot store. Reads dominate the
// realtime path by orders of magnitude, so the local map is authoritative
// and lock-free; a redis byte bucket mirrors the snapshots for crash
// recovery only. Full correctness of the remote side is not required.
//
// Values carry a monotonic version; a node only ever swaps to a strictly
// newer value, so a single reader observes non-decreasing versions.
package livecache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sweepPeriod   = 10 * time.Second
	removalGrace  = 30 * time.Second
	pullChunkSize = 200
)

// Options parameterises a Cache over its value type.
type Options[T any] struct {
	// Prefix namespaces this cache's keys in the shared remote bucket.
	Prefix string
	// TTL evicts nodes that have not been rewritten; also the remote TTL.
	TTL time.Duration
	// PrimaryKey extracts the node key.
	PrimaryKey func(T) string
	// SecondaryKey optionally extracts an alias key; the alias resolves to
	// the same underlying node, so removal is observed atomically.
	SecondaryKey func(T) string
	// Version extracts the monotonic version used for conflict resolution.
	Version func(T) int64
	// Encode/Decode serialise snapshots for the remote bucket.
	Encode func(T) ([]byte, error)
	Decode func([]byte) (T, error)
}

type node[T any] struct {
	val       atomic.Pointer[T]
	writtenAt atomic.Int64 // unix nanos of last successful swap
	removed   atomic.Bool
	removedAt atomic.Int64
	secondary atomic.Pointer[string] // alias registered for the current value
}

type remoteWrite struct {
	key string
	val []byte
}

// Cache is a local versioned map with an asynchronous remote mirror.
type Cache[T any] struct {
	opts   Options[T]
	remote *redis.Client // nil disables the mirror

	primary   sync.Map // string -> *node[T]
	secondary sync.Map // string -> *node[T]

	writes   chan remoteWrite
	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a cache and starts its sweeper and remote writer. remote may
// be nil for a purely local cache.
func New[T any](opts Options[T], remote *redis.Client) *Cache[T] {
	c := &Cache[T]{
		opts:   opts,
		remote: remote,
		writes: make(chan remoteWrite, 1024),
		stopCh: make(chan struct{}),
	}
	c.wg.Add(1)
	go c.sweepLoop()
	if remote != nil {
		c.wg.Add(1)
		go c.writeLoop()
	}
	return c
}

// Close stops the sweeper and gives the remote writer a short grace period
// to drain queued writes.
func (c *Cache[T]) Close() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		slog.Warn("Cache close timed out draining remote writes", "prefix", c.opts.Prefix)
	}
}

// FindPrimary returns the current value under the primary key. Never
// touches the remote store.
func (c *Cache[T]) FindPrimary(key string) (T, bool) {
	return c.read(&c.primary, key)
}

// FindSecondary returns the current value under the secondary (alias) key.
func (c *Cache[T]) FindSecondary(key string) (T, bool) {
	return c.read(&c.secondary, key)
}

func (c *Cache[T]) read(m *sync.Map, key string) (T, bool) {
	var zero T
	v, ok := m.Load(key)
	if !ok {
		return zero, false
	}
	n := v.(*node[T])
	if n.removed.Load() {
		return zero, false
	}
	p := n.val.Load()
	if p == nil {
		return zero, false
	}
	return *p, true
}

// UpdateLocal installs v iff its version is strictly newer than the current
// one (or no value exists). Returns the replaced value when a replacement
// happened and whether v was installed. Writers that hit a removal
// tombstone skip silently.
func (c *Cache[T]) UpdateLocal(v T) (replaced *T, installed bool) {
	key := c.opts.PrimaryKey(v)
	actual, _ := c.primary.LoadOrStore(key, &node[T]{})
	n := actual.(*node[T])

	if n.removed.Load() {
		return nil, false
	}

	for {
		cur := n.val.Load()
		if cur != nil && c.opts.Version(*cur) >= c.opts.Version(v) {
			return nil, false
		}
		vCopy := v
		if n.val.CompareAndSwap(cur, &vCopy) {
			n.writtenAt.Store(time.Now().UnixNano())
			c.realias(n, cur, v)
			return cur, true
		}
	}
}

// realias keeps the secondary index pointing at the node for the current
// value's alias key.
func (c *Cache[T]) realias(n *node[T], old *T, v T) {
	if c.opts.SecondaryKey == nil {
		return
	}
	sk := c.opts.SecondaryKey(v)
	prev := n.secondary.Load()
	if prev != nil && *prev == sk {
		return
	}
	if prev != nil && *prev != "" {
		c.secondary.Delete(*prev)
	}
	n.secondary.Store(&sk)
	if sk != "" {
		c.secondary.Store(sk, n)
	}
	_ = old
}

// Set behaves like UpdateLocal and, on any install, queues the serialised
// snapshot for the remote mirror with the cache TTL. A full queue drops the
// write — the local map stays authoritative.
func (c *Cache[T]) Set(v T) (replaced *T, installed bool) {
	replaced, installed = c.UpdateLocal(v)
	if !installed || c.remote == nil {
		return replaced, installed
	}
	raw, err := c.opts.Encode(v)
	if err != nil {
		slog.Warn("Cache snapshot encode failed", "prefix", c.opts.Prefix, "error", err)
		return replaced, installed
	}
	select {
	case c.writes <- remoteWrite{key: c.remoteKey(c.opts.PrimaryKey(v)), val: raw}:
	default:
		// Queue full: drop in favour of liveness.
	}
	return replaced, installed
}

// RemovePrimary marks the node removed. Reads observe absence immediately;
// the node itself is retained for the removal grace period so late writers
// detect the tombstone and skip instead of resurrecting the value.
func (c *Cache[T]) RemovePrimary(key string) {
	v, ok := c.primary.Load(key)
	if !ok {
		return
	}
	n := v.(*node[T])
	if n.removed.CompareAndSwap(false, true) {
		n.removedAt.Store(time.Now().UnixNano())
		if c.remote != nil {
			select {
			case c.writes <- remoteWrite{key: c.remoteKey(key), val: nil}:
			default:
			}
		}
	}
}

// Pull rehydrates the local map from the remote bucket in chunked scans.
// This is the only path that reads from the remote store; call it once at
// startup before the collectors start.
func (c *Cache[T]) Pull(ctx context.Context) error {
	if c.remote == nil {
		return nil
	}
	var cursor uint64
	pattern := c.opts.Prefix + ":*"
	for {
		keys, next, err := c.remote.Scan(ctx, cursor, pattern, pullChunkSize).Result()
		if err != nil {
			return err
		}
		for _, key := range keys {
			raw, err := c.remote.Get(ctx, key).Bytes()
			if err != nil {
				if !errors.Is(err, redis.Nil) {
					slog.Warn("Cache pull read failed", "key", key, "error", err)
				}
				continue
			}
			v, err := c.opts.Decode(raw)
			if err != nil {
				slog.Warn("Cache pull decode failed", "key", key, "error", err)
				continue
			}
			c.UpdateLocal(v)
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Len returns the number of live (non-removed) primary nodes.
func (c *Cache[T]) Len() int {
	count := 0
	c.primary.Range(func(_, v any) bool {
		if !v.(*node[T]).removed.Load() {
			count++
		}
		return true
	})
	return count
}

func (c *Cache[T]) remoteKey(primary string) string {
	return c.opts.Prefix + ":" + primary
}

func (c *Cache[T]) sweepLoop() {
	defer c.wg.Done()
	ticker := time.NewTicker(sweepPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.sweep(time.Now())
		}
	}
}

// sweep drops tombstones past their grace period and tombstones nodes past
// their TTL.
func (c *Cache[T]) sweep(now time.Time) {
	c.primary.Range(func(k, v any) bool {
		n := v.(*node[T])
		switch {
		case n.removed.Load():
			if now.UnixNano()-n.removedAt.Load() >= int64(removalGrace) {
				c.primary.Delete(k)
				if sk := n.secondary.Load(); sk != nil && *sk != "" {
					c.secondary.Delete(*sk)
				}
			}
		case c.opts.TTL > 0 && now.UnixNano()-n.writtenAt.Load() >= int64(c.opts.TTL):
			if n.removed.CompareAndSwap(false, true) {
				n.removedAt.Store(now.UnixNano())
			}
		}
		return true
	})
}

func (c *Cache[T]) writeLoop() {
	defer c.wg.Done()
	ctx := context.Background()
	for {
		select {
		case w := <-c.writes:
			c.flush(ctx, w)
		case <-c.stopCh:
			// Drain what is already queued, then exit.
			for {
				select {
				case w := <-c.writes:
					c.flush(ctx, w)
				default:
					return
				}
			}
		}
	}
}

func (c *Cache[T]) flush(ctx context.Context, w remoteWrite) {
	opCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	var err error
	if w.val == nil {
		err = c.remote.Del(opCtx, w.key).Err()
	} else {
		err = c.remote.Set(opCtx, w.key, w.val, c.opts.TTL).Err()
	}
	if err != nil {
		slog.Warn("Cache remote write failed", "key", w.key, "error", err)
	}
}
