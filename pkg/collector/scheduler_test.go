package collector

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_TicksOnFixedDelay(t *testing.T) {
	s := NewScheduler("test", 5*time.Millisecond, nil)
	var ticks atomic.Int32
	s.Start(func(ctx context.Context) {
		ticks.Add(1)
	})
	defer s.Stop()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, time.Millisecond)
}

func TestScheduler_TickNeverOverlaps(t *testing.T) {
	s := NewScheduler("test", time.Millisecond, nil)
	var inFlight atomic.Int32
	var overlapped atomic.Bool
	var ticks atomic.Int32
	s.Start(func(ctx context.Context) {
		if inFlight.Add(1) > 1 {
			overlapped.Store(true)
		}
		time.Sleep(3 * time.Millisecond)
		inFlight.Add(-1)
		ticks.Add(1)
	})
	defer s.Stop()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 5
	}, time.Second, time.Millisecond)
	assert.False(t, overlapped.Load())
}

func TestScheduler_SurvivesPanic(t *testing.T) {
	s := NewScheduler("test", time.Millisecond, nil)
	var ticks atomic.Int32
	s.Start(func(ctx context.Context) {
		if ticks.Add(1) == 1 {
			panic("boom")
		}
	})
	defer s.Stop()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, time.Millisecond)
}

func TestScheduler_StopCancelsTickContext(t *testing.T) {
	s := NewScheduler("test", time.Millisecond, nil)
	started := make(chan struct{})
	cancelled := make(chan struct{})
	s.Start(func(ctx context.Context) {
		select {
		case started <- struct{}{}:
		default:
		}
		select {
		case <-ctx.Done():
			select {
			case cancelled <- struct{}{}:
			default:
			}
		case <-time.After(time.Second):
		}
	})

	<-started
	go s.Stop()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("tick context was not cancelled on stop")
	}
}
