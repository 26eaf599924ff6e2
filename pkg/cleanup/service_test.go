package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	cutoffs   []time.Time
	batchSize int
	deleted   int
	err       error
}

func (f *fakePurger) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time, batchSize int) (int, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	f.batchSize = batchSize
	return f.deleted, f.err
}

func TestService_RunUsesRetentionCutoff(t *testing.T) {
	purger := &fakePurger{deleted: 12}
	s := NewService(purger, Options{}, nil)

	s.Run(context.Background())

	require.Len(t, purger.cutoffs, 1)
	want := time.Now().AddDate(0, 0, -90)
	assert.WithinDuration(t, want, purger.cutoffs[0], time.Minute)
	assert.Equal(t, 30000, purger.batchSize)
}

func TestService_RunHonorsOptions(t *testing.T) {
	purger := &fakePurger{}
	s := NewService(purger, Options{RetentionDays: 7, BatchSize: 100}, nil)

	s.Run(context.Background())

	require.Len(t, purger.cutoffs, 1)
	want := time.Now().AddDate(0, 0, -7)
	assert.WithinDuration(t, want, purger.cutoffs[0], time.Minute)
	assert.Equal(t, 100, purger.batchSize)
}

func TestService_RunSurvivesPurgeError(t *testing.T) {
	purger := &fakePurger{err: assert.AnError}
	s := NewService(purger, Options{}, nil)

	// Must not panic; the next scheduled run retries.
	s.Run(context.Background())
	s.Run(context.Background())

	assert.Len(t, purger.cutoffs, 2)
}

func TestService_StartRejectsBadSchedule(t *testing.T) {
	s := NewService(&fakePurger{}, Options{Schedule: "not a schedule"}, nil)
	assert.Error(t, s.Start())
}

func TestService_StartStop(t *testing.T) {
	s := NewService(&fakePurger{}, Options{}, nil)
	require.NoError(t, s.Start())
	s.Stop()
}
