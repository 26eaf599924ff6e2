package collector

import (
	"context"
	"testing"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrainAPI struct {
	trains    []upstream.TrainEntry
	trainsErr error
	positions []upstream.PositionEntry
	posErr    error
}

func (f *fakeTrainAPI) ActiveTrains(ctx context.Context, serverCode string) ([]upstream.TrainEntry, error) {
	if f.trainsErr != nil {
		return nil, f.trainsErr
	}
	return f.trains, nil
}

func (f *fakeTrainAPI) TrainPositions(ctx context.Context, serverCode string) ([]upstream.PositionEntry, error) {
	if f.posErr != nil {
		return nil, f.posErr
	}
	return f.positions, nil
}

type fakeRuns struct {
	observations []journey.Observation
	present      []map[string]struct{}
}

func (f *fakeRuns) Observe(ctx context.Context, obs journey.Observation) error {
	f.observations = append(f.observations, obs)
	return nil
}

func (f *fakeRuns) SyncActive(ctx context.Context, serverID string, present map[string]struct{}, serverNow time.Time) {
	f.present = append(f.present, present)
}

func trainEntry(runID, number string) upstream.TrainEntry {
	e := upstream.TrainEntry{
		RunID:        runID,
		TrainNoLocal: number,
		TrainType:    "EIJ",
		StartStation: "Katowice",
		EndStation:   "Warszawa Wschodnia",
	}
	e.TrainData.Latitude = 50.26
	e.TrainData.Longitude = 19.02
	e.TrainData.VelocityKmh = 83.4
	return e
}

func newTrainCollector(t *testing.T, api *fakeTrainAPI, runs *fakeRuns) *TrainCollector {
	t.Helper()
	clock := NewServerClockAt(func() time.Time {
		return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	})
	lister := &fakeLister{servers: []*ent.Server{{ID: "srv-de1", Code: "de1", UtcOffsetHours: 1}}}
	return NewTrainCollector(api, runs, lister, testPoints(t), clock, nil)
}

func TestTrainCollector_ObservationMapping(t *testing.T) {
	entry := trainEntry("run-1", "4100")
	entry.Driver = &upstream.Player{SteamID: "steam-7"}
	entry.TrainData.InBorderStationID = "Katowice"
	entry.TrainData.SignalInFront = "L1@7845,4564"
	entry.TrainData.DistanceToSignalM = 350.5
	limit := 60
	entry.TrainData.SignalSpeedLimit = &limit

	api := &fakeTrainAPI{trains: []upstream.TrainEntry{entry}}
	runs := &fakeRuns{}
	c := newTrainCollector(t, api, runs)

	c.Tick(context.Background())

	require.Len(t, runs.observations, 1)
	obs := runs.observations[0]
	assert.Equal(t, "run-1", obs.RunID)
	assert.Equal(t, "srv-de1", obs.ServerID)
	assert.Equal(t, "4100", obs.TrainNumber)
	require.NotNil(t, obs.Driver)
	assert.Equal(t, "steam-7", *obs.Driver)
	assert.Equal(t, uint32(83), obs.SpeedKmh)
	assert.Equal(t, "katowice", obs.CurrentPointID)
	require.NotNil(t, obs.NextSignal)
	assert.Equal(t, "L1", obs.NextSignal.ID)
	assert.InDelta(t, 350.5, obs.NextSignal.DistanceM, 1e-9)
	assert.Equal(t, uint32(60), obs.NextSignal.SpeedLimitKmh)
	assert.False(t, obs.PositionOnly)

	require.Len(t, runs.present, 1)
	assert.Contains(t, runs.present[0], "run-1")

	// Server-local clock: UTC noon at +01:00.
	assert.Equal(t, 13, obs.ServerNow.Hour())
}

func TestTrainCollector_BotRunHasNoDriverOrSignal(t *testing.T) {
	api := &fakeTrainAPI{trains: []upstream.TrainEntry{trainEntry("run-1", "4100")}}
	runs := &fakeRuns{}
	c := newTrainCollector(t, api, runs)

	c.Tick(context.Background())

	require.Len(t, runs.observations, 1)
	obs := runs.observations[0]
	assert.Nil(t, obs.Driver)
	assert.Nil(t, obs.NextSignal)
	assert.Empty(t, obs.CurrentPointID)
}

func TestTrainCollector_UnknownBorderStationIsDropped(t *testing.T) {
	entry := trainEntry("run-1", "4100")
	entry.TrainData.InBorderStationID = "Nowhere"
	api := &fakeTrainAPI{trains: []upstream.TrainEntry{entry}}
	runs := &fakeRuns{}
	c := newTrainCollector(t, api, runs)

	c.Tick(context.Background())

	require.Len(t, runs.observations, 1)
	assert.Empty(t, runs.observations[0].CurrentPointID)
}

func TestTrainCollector_NotModifiedFallsBackToPositions(t *testing.T) {
	api := &fakeTrainAPI{trains: []upstream.TrainEntry{trainEntry("run-1", "4100")}}
	runs := &fakeRuns{}
	c := newTrainCollector(t, api, runs)

	c.Tick(context.Background())
	require.Len(t, runs.observations, 1)

	api.trainsErr = upstream.ErrNotModified
	api.positions = []upstream.PositionEntry{
		{RunID: "run-1", Latitude: 50.3, Longitude: 19.1, VelocityKmh: 120.2},
		{RunID: "run-unseen", Latitude: 51, Longitude: 20, VelocityKmh: 60},
	}
	c.Tick(context.Background())

	// Only the run the full listing has shown produces an observation.
	require.Len(t, runs.observations, 2)
	obs := runs.observations[1]
	assert.True(t, obs.PositionOnly)
	assert.Equal(t, "run-1", obs.RunID)
	assert.Equal(t, "4100", obs.TrainNumber)
	assert.Equal(t, uint32(120), obs.SpeedKmh)
	assert.InDelta(t, 50.3, obs.Position.Lat, 1e-9)

	require.Len(t, runs.present, 2)
	assert.Contains(t, runs.present[1], "run-1")
	assert.NotContains(t, runs.present[1], "run-unseen")
}

func TestTrainCollector_LastExposesListing(t *testing.T) {
	api := &fakeTrainAPI{trains: []upstream.TrainEntry{trainEntry("run-1", "4100")}}
	c := newTrainCollector(t, api, &fakeRuns{})

	assert.Nil(t, c.Last("de1"))
	c.Tick(context.Background())
	require.Len(t, c.Last("de1"), 1)
	assert.Equal(t, "run-1", c.Last("de1")[0].RunID)
}

func TestSignalAhead_Parsing(t *testing.T) {
	entry := trainEntry("run-1", "4100")
	assert.Nil(t, signalAhead(entry))

	entry.TrainData.SignalInFront = "KZ_D@1234"
	entry.TrainData.DistanceToSignalM = 900
	sig := signalAhead(entry)
	require.NotNil(t, sig)
	assert.Equal(t, "KZ_D", sig.ID)
	assert.Equal(t, uint32(0), sig.SpeedLimitKmh)
}
