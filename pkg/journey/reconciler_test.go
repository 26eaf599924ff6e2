package journey

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/static"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedState struct {
	rec    services.JourneyRecord
	events []services.EventRecord
}

type fakeStore struct {
	mu           sync.Mutex
	rows         map[string]*ent.Journey // preloaded, by run id
	saved        map[string]savedState   // by run id
	saveCalls    int
	continuation *ent.Journey
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:  make(map[string]*ent.Journey),
		saved: make(map[string]savedState),
	}
}

func (f *fakeStore) GetByRunID(_ context.Context, runID string) (*ent.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[runID]; ok {
		return row, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeStore) SaveWithEvents(_ context.Context, rec services.JourneyRecord, events []services.EventRecord) (*ent.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	f.saved[rec.RunID] = savedState{rec: rec, events: events}
	return &ent.Journey{ID: rec.ID, RunID: rec.RunID, ServerID: rec.ServerID}, nil
}

func (f *fakeStore) FindContinuation(_ context.Context, _, _, _ string, _ time.Time) (*ent.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.continuation != nil {
		return f.continuation, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeStore) savedFor(runID string) (savedState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.saved[runID]
	return s, ok
}

type fakeSink struct {
	mu     sync.Mutex
	deltas []Delta
}

func (f *fakeSink) JourneyChanged(d Delta) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deltas = append(f.deltas, d)
}

func (f *fakeSink) all() []Delta {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Delta, len(f.deltas))
	copy(out, f.deltas)
	return out
}

func newTestReconciler(t *testing.T, store Store, sink Sink, signals *static.SignalProvider) *Reconciler {
	t.Helper()
	digests := NewDigestCache(nil, time.Hour)
	t.Cleanup(digests.Close)
	return NewReconciler(store, signals, digests, sink, 3, nil)
}

var testBase = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

// fourStopRun is a run with one arrival event per point, ten minutes apart.
func fourStopRun(runID string, playable bool) TimetableRun {
	rows := make([]TimetableRow, 4)
	for i := range rows {
		at := testBase.Add(time.Duration(i) * 10 * time.Minute)
		rows[i] = TimetableRow{
			PointID:          []string{"p0", "p1", "p2", "p3"}[i],
			PointName:        []string{"p0", "p1", "p2", "p3"}[i],
			InPlayableBorder: playable,
			Arrival:          &at,
			Stop:             StopPassenger,
		}
	}
	return TimetableRun{
		RunID:       runID,
		ServerID:    "srv-1",
		TrainNumber: "4024",
		Category:    "REGIONAL_TRAIN",
		Rows:        rows,
	}
}

func TestApplyTimetableBuildsDenseEvents(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(t, store, nil, nil)
	ctx := context.Background()

	arr := testBase
	dep := testBase.Add(2 * time.Minute)
	arr2 := testBase.Add(12 * time.Minute)
	run := TimetableRun{
		RunID:       "run-1",
		ServerID:    "srv-1",
		TrainNumber: "4024",
		Category:    "REGIONAL_TRAIN",
		Rows: []TimetableRow{
			{PointID: "katowice", Arrival: &arr, Departure: &dep, Stop: StopPassenger, InPlayableBorder: true},
			{PointID: "sosnowiec", Arrival: &arr2, Stop: StopPassenger, InPlayableBorder: true},
		},
	}
	require.NoError(t, rec.ApplyTimetable(ctx, run))

	saved, ok := store.savedFor("run-1")
	require.True(t, ok)
	require.Len(t, saved.events, 3)
	for i, ev := range saved.events {
		assert.Equal(t, i, ev.Index)
	}
	// Arrival precedes departure at the same point.
	assert.Equal(t, "ARRIVAL", string(saved.events[0].Type))
	assert.Equal(t, "DEPARTURE", string(saved.events[1].Type))
	assert.Equal(t, "katowice", saved.events[1].PointID)
	assert.Equal(t, "ARRIVAL", string(saved.events[2].Type))
	// Deterministic event ids.
	assert.Equal(t, railid.JourneyEventID(saved.rec.ID, 0, "ARRIVAL"), saved.events[0].ID)
}

func TestApplyTimetableSecondRunIsSuppressed(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	rec := newTestReconciler(t, store, sink, nil)
	ctx := context.Background()

	run := fourStopRun("run-1", true)
	require.NoError(t, rec.ApplyTimetable(ctx, run))
	require.Equal(t, 1, store.saveCalls)
	require.Len(t, sink.all(), 1)
	assert.Equal(t, KindAdd, sink.all()[0].Kind)

	// Identical input: checksum matches, nothing persists, nothing fans out.
	require.NoError(t, rec.ApplyTimetable(ctx, run))
	assert.Equal(t, 1, store.saveCalls)
	assert.Len(t, sink.all(), 1)
}

func TestObserveFirstSightingEmitsAdd(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	rec := newTestReconciler(t, store, sink, nil)
	ctx := context.Background()

	require.NoError(t, rec.ApplyTimetable(ctx, fourStopRun("run-1", true)))
	driver := "steam-123"
	obs := Observation{
		RunID:       "run-1",
		ServerID:    "srv-1",
		TrainNumber: "4024",
		Driver:      &driver,
		SpeedKmh:    80,
		Position:    Position{Lat: 50.25, Lon: 19.02},
		ServerNow:   testBase,
	}
	require.NoError(t, rec.Observe(ctx, obs))

	deltas := sink.all()
	require.Len(t, deltas, 2)
	add := deltas[1]
	assert.Equal(t, KindAdd, add.Kind)
	names := make(map[string]bool)
	for _, c := range add.Changes {
		names[c.Name] = true
	}
	assert.True(t, names["driver"])
	assert.True(t, names["speed"])
	assert.True(t, names["position"])
	assert.False(t, names["next_signal"], "no signal reported, wrapper stays absent")

	st, ok := rec.State("run-1")
	require.True(t, ok)
	assert.Equal(t, StateActive, st)

	// Same observation again: persisted state unchanged, live values equal,
	// so no further frame.
	require.NoError(t, rec.Observe(ctx, obs))
	assert.Len(t, sink.all(), 2)
}

func TestObservePointChangeSetsRealAndPredictions(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(t, store, nil, nil)
	ctx := context.Background()

	require.NoError(t, rec.ApplyTimetable(ctx, fourStopRun("run-1", true)))

	// Reach p0 on time, then p1 four minutes late.
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", CurrentPointID: "p0", ServerNow: testBase,
	}))
	late := testBase.Add(14 * time.Minute)
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", CurrentPointID: "p1", ServerNow: late,
	}))

	saved, ok := store.savedFor("run-1")
	require.True(t, ok)
	require.Len(t, saved.events, 4)

	assert.Equal(t, "REAL", string(saved.events[0].RealtimeTimeType))
	assert.Equal(t, "REAL", string(saved.events[1].RealtimeTimeType))
	require.NotNil(t, saved.events[1].RealtimeTime)
	assert.True(t, saved.events[1].RealtimeTime.Equal(late))

	// The rest of the route carries the four minute delay as predictions.
	for _, ev := range saved.events[2:] {
		assert.Equal(t, "PREDICTION", string(ev.RealtimeTimeType))
		require.NotNil(t, ev.RealtimeTime)
		assert.True(t, ev.RealtimeTime.Equal(ev.ScheduledTime.Add(4*time.Minute)))
	}
}

func TestObserveNeverRetroMutatesReal(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(t, store, nil, nil)
	ctx := context.Background()

	require.NoError(t, rec.ApplyTimetable(ctx, fourStopRun("run-1", true)))
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", CurrentPointID: "p0", ServerNow: testBase,
	}))

	// A later timetable refresh keeps the REAL projection on p0.
	require.NoError(t, rec.ApplyTimetable(ctx, fourStopRun("run-1", true)))
	saved, _ := store.savedFor("run-1")
	assert.Equal(t, "REAL", string(saved.events[0].RealtimeTimeType))
	require.NotNil(t, saved.events[0].RealtimeTime)
	assert.True(t, saved.events[0].RealtimeTime.Equal(testBase))
}

func TestObserveSignalResolvesPlatformAndTrack(t *testing.T) {
	signals, err := static.NewSignalProvider([]*static.Signal{
		{PointID: "p0", SignalID: "KO_J2", PlatformRoman: "II", Track: 3},
	})
	require.NoError(t, err)

	store := newFakeStore()
	rec := newTestReconciler(t, store, nil, signals)
	ctx := context.Background()

	require.NoError(t, rec.ApplyTimetable(ctx, fourStopRun("run-1", true)))
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID:          "run-1",
		ServerID:       "srv-1",
		CurrentPointID: "p0",
		NextSignal:     &SignalAhead{ID: "KO_J2", DistanceM: 120},
		ServerNow:      testBase,
	}))

	saved, _ := store.savedFor("run-1")
	ev := saved.events[0]
	require.NotNil(t, ev.RealtimePlatform)
	assert.Equal(t, 2, *ev.RealtimePlatform)
	require.NotNil(t, ev.RealtimeTrack)
	assert.Equal(t, 3, *ev.RealtimeTrack)
}

func TestSignalOutOfRangeClearsWrapper(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	rec := newTestReconciler(t, store, sink, nil)
	ctx := context.Background()

	require.NoError(t, rec.Observe(ctx, Observation{
		RunID:      "run-1",
		ServerID:   "srv-1",
		NextSignal: &SignalAhead{ID: "KO_J2", DistanceM: 900},
		ServerNow:  testBase,
	}))
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID:      "run-1",
		ServerID:   "srv-1",
		NextSignal: &SignalAhead{ID: "KO_J2", DistanceM: 7200},
		ServerNow:  testBase.Add(4 * time.Second),
	}))

	deltas := sink.all()
	require.NotEmpty(t, deltas)
	last := deltas[len(deltas)-1]
	var cleared bool
	for _, c := range last.Changes {
		if c.Name == "next_signal" {
			cleared = c.Cleared
		}
	}
	assert.True(t, cleared, "signal beyond 5 km publishes as cleared")
}

func TestRemovalCancelsFutureEventsOnly(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	rec := newTestReconciler(t, store, sink, nil)
	ctx := context.Background()

	require.NoError(t, rec.ApplyTimetable(ctx, fourStopRun("run-1", true)))
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", CurrentPointID: "p0", ServerNow: testBase,
	}))
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", CurrentPointID: "p1", ServerNow: testBase.Add(10 * time.Minute),
	}))

	// The run vanishes; after three consecutive absences it goes.
	now := testBase.Add(12 * time.Minute)
	for i := 0; i < 3; i++ {
		rec.SyncActive(ctx, "srv-1", map[string]struct{}{}, now)
	}

	saved, _ := store.savedFor("run-1")
	assert.False(t, saved.rec.Cancelled)
	require.NotNil(t, saved.rec.LastSeenTime)
	assert.False(t, saved.events[0].Cancelled)
	assert.False(t, saved.events[1].Cancelled)
	assert.True(t, saved.events[2].Cancelled)
	assert.True(t, saved.events[3].Cancelled)

	deltas := sink.all()
	assert.Equal(t, KindRemove, deltas[len(deltas)-1].Kind)
}

func TestRemovalCancelsWholeJourneyWhenNeverReached(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(t, store, nil, nil)
	ctx := context.Background()

	require.NoError(t, rec.ApplyTimetable(ctx, fourStopRun("run-1", true)))
	// Seen live between points only, then gone before reaching anything.
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", ServerNow: testBase.Add(-5 * time.Minute),
	}))
	for i := 0; i < 3; i++ {
		rec.SyncActive(ctx, "srv-1", map[string]struct{}{}, testBase.Add(-4*time.Minute))
	}

	saved, _ := store.savedFor("run-1")
	assert.True(t, saved.rec.Cancelled)
	for _, ev := range saved.events {
		assert.True(t, ev.Cancelled)
	}
}

func TestRemovalBelowThresholdKeepsJourneyActive(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(t, store, nil, nil)
	ctx := context.Background()

	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", ServerNow: testBase,
	}))
	rec.SyncActive(ctx, "srv-1", map[string]struct{}{}, testBase)
	rec.SyncActive(ctx, "srv-1", map[string]struct{}{}, testBase)

	st, ok := rec.State("run-1")
	require.True(t, ok)
	assert.Equal(t, StateActive, st)

	// A reappearance resets the absence counter.
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", ServerNow: testBase.Add(12 * time.Second),
	}))
	rec.SyncActive(ctx, "srv-1", map[string]struct{}{"run-1": {}}, testBase.Add(16*time.Second))
	st, _ = rec.State("run-1")
	assert.Equal(t, StateActive, st)
}

func TestRemovalChainsContinuation(t *testing.T) {
	store := newFakeStore()
	store.continuation = &ent.Journey{ID: "next-journey", RunID: "run-2", ServerID: "srv-1"}
	rec := newTestReconciler(t, store, nil, nil)
	ctx := context.Background()

	run := fourStopRun("run-1", true)
	run.ContinuesAs = "4025"
	require.NoError(t, rec.ApplyTimetable(ctx, run))
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", CurrentPointID: "p0", ServerNow: testBase,
	}))
	for i := 0; i < 3; i++ {
		rec.SyncActive(ctx, "srv-1", map[string]struct{}{}, testBase.Add(40*time.Minute))
	}

	saved, _ := store.savedFor("run-1")
	require.NotNil(t, saved.rec.ContinuationJourneyID)
	assert.Equal(t, "next-journey", *saved.rec.ContinuationJourneyID)
}

func TestSlotKeyDistinguishesDepartures(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(t, store, nil, nil)
	ctx := context.Background()

	slotRun := func(runID string, departure time.Time) TimetableRun {
		arr := departure.Add(30 * time.Minute)
		return TimetableRun{
			RunID:       runID,
			ServerID:    "srv-1",
			TrainNumber: "4024",
			Category:    "REGIONAL_FAST_TRAIN",
			Rows: []TimetableRow{
				{PointID: "katowice", PointName: "Katowice", Departure: &departure},
				{PointID: "sosnowiec", PointName: "Sosnowiec", Arrival: &arr},
			},
		}
	}

	require.NoError(t, rec.ApplyTimetable(ctx, slotRun("run-am", testBase)))
	require.NoError(t, rec.ApplyTimetable(ctx, slotRun("run-pm", testBase.Add(6*time.Hour))))
	require.NoError(t, rec.ApplyTimetable(ctx, slotRun("run-am-tomorrow", testBase.AddDate(0, 0, 1))))

	am, ok := rec.SlotKey("run-am")
	require.True(t, ok)
	assert.Equal(t, "REGIONAL_FAST_TRAIN|4024|Katowice|Sosnowiec|12:00:00", am)

	// Same number and route six hours later is a different slot.
	pm, ok := rec.SlotKey("run-pm")
	require.True(t, ok)
	assert.NotEqual(t, am, pm)

	// The same slot the next day resolves to the same key.
	tomorrow, ok := rec.SlotKey("run-am-tomorrow")
	require.True(t, ok)
	assert.Equal(t, am, tomorrow)

	_, ok = rec.SlotKey("run-unknown")
	assert.False(t, ok)
}

func TestSyncActiveEvictsNeverSeenScheduledRuns(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	rec := newTestReconciler(t, store, sink, nil)
	ctx := context.Background()

	require.NoError(t, rec.ApplyTimetable(ctx, fourStopRun("run-1", true)))

	// While the schedule can still happen the run stays tracked.
	rec.SyncActive(ctx, "srv-1", map[string]struct{}{}, testBase.Add(40*time.Minute))
	st, ok := rec.State("run-1")
	require.True(t, ok)
	assert.Equal(t, StateUnseen, st)

	// Well past the last scheduled event the run is finalised as never-ran.
	rec.SyncActive(ctx, "srv-1", map[string]struct{}{}, testBase.Add(2*time.Hour))
	_, ok = rec.State("run-1")
	assert.False(t, ok, "evicted from the shard")

	saved, found := store.savedFor("run-1")
	require.True(t, found)
	assert.True(t, saved.rec.Cancelled)
	assert.Nil(t, saved.rec.LastSeenTime, "never observed live")
	deltas := sink.all()
	assert.Equal(t, KindRemove, deltas[len(deltas)-1].Kind)
}

func TestPointRevisitStampsForwardEvent(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(t, store, nil, nil)
	ctx := context.Background()

	// A loop route visiting p0 twice.
	t0 := testBase
	t1 := testBase.Add(10 * time.Minute)
	t2 := testBase.Add(20 * time.Minute)
	require.NoError(t, rec.ApplyTimetable(ctx, TimetableRun{
		RunID:       "run-1",
		ServerID:    "srv-1",
		TrainNumber: "4024",
		Category:    "REGIONAL_TRAIN",
		Rows: []TimetableRow{
			{PointID: "p0", PointName: "p0", Arrival: &t0},
			{PointID: "p1", PointName: "p1", Arrival: &t1},
			{PointID: "p0", PointName: "p0", Arrival: &t2},
		},
	}))

	// First observed at p1, then back at p0: the second visit must be the
	// one stamped REAL, not the missed first one.
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", CurrentPointID: "p1", ServerNow: t1,
	}))
	revisit := testBase.Add(21 * time.Minute)
	require.NoError(t, rec.Observe(ctx, Observation{
		RunID: "run-1", ServerID: "srv-1", CurrentPointID: "p0", ServerNow: revisit,
	}))

	saved, _ := store.savedFor("run-1")
	require.Len(t, saved.events, 3)
	assert.NotEqual(t, "REAL", string(saved.events[0].RealtimeTimeType))
	assert.Equal(t, "REAL", string(saved.events[2].RealtimeTimeType))
	require.NotNil(t, saved.events[2].RealtimeTime)
	assert.True(t, saved.events[2].RealtimeTime.Equal(revisit))
}

func TestChecksumIgnoresNilFields(t *testing.T) {
	j1 := newJourney("run-1", "srv-1", "4024")
	j2 := newJourney("run-1", "srv-1", "4024")
	assert.Equal(t, j1.Checksum(), j2.Checksum())

	seen := testBase
	j2.FirstSeen = &seen
	assert.NotEqual(t, j1.Checksum(), j2.Checksum())
}
