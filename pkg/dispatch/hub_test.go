package dispatch

import (
	"testing"

	"github.com/simtrack/sit-collector/pkg/collector"
	"github.com/simtrack/sit-collector/pkg/dirty"
	"github.com/simtrack/sit-collector/pkg/journey"
	sitv1 "github.com/simtrack/sit-collector/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	journeys []*sitv1.JourneyUpdateFrame
	servers  []*sitv1.ServerUpdateFrame
	posts    []*sitv1.DispatchPostUpdateFrame
}

func (r *recordingSink) PublishJourney(f *sitv1.JourneyUpdateFrame) {
	r.journeys = append(r.journeys, f)
}

func (r *recordingSink) PublishServer(f *sitv1.ServerUpdateFrame) {
	r.servers = append(r.servers, f)
}

func (r *recordingSink) PublishDispatchPost(f *sitv1.DispatchPostUpdateFrame) {
	r.posts = append(r.posts, f)
}

func journeyDelta(serverID string) journey.Delta {
	return journey.Delta{
		JourneyID: "j-1",
		ServerID:  serverID,
		Kind:      journey.KindUpdate,
		Changes:   []dirty.Change{{Name: "speed", Value: uint32(50)}},
	}
}

func TestHub_DeliversToSubscriberAndSink(t *testing.T) {
	sink := &recordingSink{}
	hub := NewHub(sink, nil)

	ch, cancel := hub.SubscribeJourneys("")
	defer cancel()

	hub.JourneyChanged(journeyDelta("s-1"))

	require.Len(t, sink.journeys, 1)
	select {
	case f := <-ch:
		assert.Equal(t, "j-1", f.JourneyId)
	default:
		t.Fatal("subscriber did not receive the frame")
	}
}

func TestHub_ServerFilter(t *testing.T) {
	hub := NewHub(nil, nil)

	all, cancelAll := hub.SubscribeJourneys("")
	defer cancelAll()
	one, cancelOne := hub.SubscribeJourneys("s-1")
	defer cancelOne()

	hub.JourneyChanged(journeyDelta("s-1"))
	hub.JourneyChanged(journeyDelta("s-2"))

	assert.Len(t, all, 2)
	assert.Len(t, one, 1)
}

func TestHub_SlowSubscriberLosesFramesNotLiveness(t *testing.T) {
	hub := NewHub(nil, nil)
	ch, cancel := hub.SubscribeJourneys("")
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.JourneyChanged(journeyDelta("s-1"))
	}

	assert.Len(t, ch, subscriberBuffer)
	assert.Equal(t, uint64(10), hub.Dropped())
}

func TestHub_CancelClosesChannel(t *testing.T) {
	hub := NewHub(nil, nil)
	ch, cancel := hub.SubscribeJourneys("")
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after cancel must not panic.
	hub.JourneyChanged(journeyDelta("s-1"))
}

func TestHub_FansOutAllTopics(t *testing.T) {
	sink := &recordingSink{}
	hub := NewHub(sink, nil)

	servers, cancelS := hub.SubscribeServers("")
	defer cancelS()
	posts, cancelP := hub.SubscribeDispatchPosts("s-1")
	defer cancelP()

	hub.ServerChanged(collector.ServerDelta{ServerID: "s-1", Kind: journey.KindAdd})
	hub.DispatchPostChanged(collector.PostDelta{PostID: "p-1", ServerID: "s-1", Kind: journey.KindAdd})

	assert.Len(t, servers, 1)
	assert.Len(t, posts, 1)
	assert.Len(t, sink.servers, 1)
	assert.Len(t, sink.posts, 1)
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "sit-events.server-updates.v1.s-1", serverSubject(kindServerUpdates, "s-1"))
	assert.Equal(t, "sit-events.journey-removals.v1.s-1.j-1", objectSubject(kindJourneyRemovals, "s-1", "j-1"))
	assert.Equal(t, "sit-events.dispatch-post-updates.v1.s-1.p-1", objectSubject(kindPostUpdates, "s-1", "p-1"))
}
