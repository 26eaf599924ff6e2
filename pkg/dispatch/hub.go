package dispatch

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/simtrack/sit-collector/pkg/collector"
	"github.com/simtrack/sit-collector/pkg/journey"
	sitv1 "github.com/simtrack/sit-collector/proto"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber that
// falls further behind than this loses frames.
const subscriberBuffer = 256

type subscriber[F any] struct {
	ch       chan F
	serverID string // empty subscribes to every server
}

type topic[F any] struct {
	mu      sync.RWMutex
	nextID  uint64
	subs    map[uint64]*subscriber[F]
	dropped atomic.Uint64
}

func newTopic[F any]() *topic[F] {
	return &topic[F]{subs: make(map[uint64]*subscriber[F])}
}

func (t *topic[F]) subscribe(serverID string) (<-chan F, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	sub := &subscriber[F]{ch: make(chan F, subscriberBuffer), serverID: serverID}
	t.subs[id] = sub
	return sub.ch, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if s, ok := t.subs[id]; ok {
			delete(t.subs, id)
			close(s.ch)
		}
	}
}

// publish delivers to every matching subscriber, dropping on full buffers.
func (t *topic[F]) publish(serverID string, frame F) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, sub := range t.subs {
		if sub.serverID != "" && sub.serverID != serverID {
			continue
		}
		select {
		case sub.ch <- frame:
		default:
			t.dropped.Add(1)
		}
	}
}

// Sink receives every built frame exactly once, regardless of subscribers.
// The NATS publisher implements it.
type Sink interface {
	PublishJourney(f *sitv1.JourneyUpdateFrame)
	PublishServer(f *sitv1.ServerUpdateFrame)
	PublishDispatchPost(f *sitv1.DispatchPostUpdateFrame)
}

// Hub builds frames from the collector and journey deltas and fans them out
// to stream subscribers and the broker sink.
type Hub struct {
	journeys *topic[*sitv1.JourneyUpdateFrame]
	servers  *topic[*sitv1.ServerUpdateFrame]
	posts    *topic[*sitv1.DispatchPostUpdateFrame]

	sink   Sink // may be nil
	logger *slog.Logger
}

// NewHub creates a hub. sink may be nil when no broker is configured.
func NewHub(sink Sink, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		journeys: newTopic[*sitv1.JourneyUpdateFrame](),
		servers:  newTopic[*sitv1.ServerUpdateFrame](),
		posts:    newTopic[*sitv1.DispatchPostUpdateFrame](),
		sink:     sink,
		logger:   logger,
	}
}

// JourneyChanged implements journey.Sink.
func (h *Hub) JourneyChanged(d journey.Delta) {
	frame := journeyFrame(d)
	h.journeys.publish(d.ServerID, frame)
	if h.sink != nil {
		h.sink.PublishJourney(frame)
	}
}

// ServerChanged implements collector.Events.
func (h *Hub) ServerChanged(d collector.ServerDelta) {
	frame := serverFrame(d)
	h.servers.publish(d.ServerID, frame)
	if h.sink != nil {
		h.sink.PublishServer(frame)
	}
}

// DispatchPostChanged implements collector.Events.
func (h *Hub) DispatchPostChanged(d collector.PostDelta) {
	frame := postFrame(d)
	h.posts.publish(d.ServerID, frame)
	if h.sink != nil {
		h.sink.PublishDispatchPost(frame)
	}
}

// SubscribeJourneys registers a journey frame subscriber, optionally
// filtered by server id. The returned cancel closes the channel.
func (h *Hub) SubscribeJourneys(serverID string) (<-chan *sitv1.JourneyUpdateFrame, func()) {
	return h.journeys.subscribe(serverID)
}

// SubscribeServers registers a server frame subscriber.
func (h *Hub) SubscribeServers(serverID string) (<-chan *sitv1.ServerUpdateFrame, func()) {
	return h.servers.subscribe(serverID)
}

// SubscribeDispatchPosts registers a dispatch post frame subscriber.
func (h *Hub) SubscribeDispatchPosts(serverID string) (<-chan *sitv1.DispatchPostUpdateFrame, func()) {
	return h.posts.subscribe(serverID)
}

// Dropped returns the total number of frames discarded due to slow
// subscribers, for the status endpoint.
func (h *Hub) Dropped() uint64 {
	return h.journeys.dropped.Load() + h.servers.dropped.Load() + h.posts.dropped.Load()
}
