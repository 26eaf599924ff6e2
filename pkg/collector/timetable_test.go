package collector

import (
	"context"
	"testing"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/pkg/journey"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimetableAPI struct {
	entries []upstream.TimetableEntry
	err     error
}

func (f *fakeTimetableAPI) Timetable(ctx context.Context, serverCode string) ([]upstream.TimetableEntry, error) {
	return f.entries, f.err
}

type fakeSchedules struct {
	runs     []journey.TimetableRun
	slotKeys map[string]string // run id -> slot key
}

func (f *fakeSchedules) ApplyTimetable(ctx context.Context, run journey.TimetableRun) error {
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeSchedules) SlotKey(runID string) (string, bool) {
	key, ok := f.slotKeys[runID]
	return key, ok
}

type seedCall struct {
	journeyID  string
	resolveKey string
}

type fakeSeeder struct {
	calls []seedCall
	err   error
}

func (f *fakeSeeder) SeedPrediction(ctx context.Context, journeyID, resolveKey string) (*ent.VehicleSequence, error) {
	f.calls = append(f.calls, seedCall{journeyID: journeyID, resolveKey: resolveKey})
	if f.err != nil {
		return nil, f.err
	}
	return &ent.VehicleSequence{JourneyID: journeyID, ResolveKey: resolveKey}, nil
}

func newTimetableCollector(t *testing.T, api *fakeTimetableAPI, schedules *fakeSchedules, consists ConsistSeeder) *TimetableCollector {
	t.Helper()
	lister := &fakeLister{servers: []*ent.Server{{ID: "srv-de1", Code: "de1", UtcOffsetHours: 1}}}
	return NewTimetableCollector(api, schedules, consists, lister, testPoints(t), NewServerClock(), nil)
}

func TestTimetableCollector_ResolvesRun(t *testing.T) {
	api := &fakeTimetableAPI{entries: []upstream.TimetableEntry{{
		RunID:        "run-1",
		TrainNoLocal: "4100",
		TrainName:    "Odra",
		TrainType:    "EIJ",
		ContinuesAs:  "4103",
		Rows: []upstream.TimetableRow{
			{
				PointForeignID: "3991",
				PointName:      "Katowice",
				DepartureTime:  "2026-08-25 13:05:00",
				StopType:       "CommercialStop",
				Platform:       "II",
				Track:          3,
				Line:           "1",
				MaxSpeedKmh:    120,
			},
			{
				PointForeignID: "4518",
				PointName:      "Sosnowiec Główny",
				ArrivalTime:    "2026-08-25 13:15:00",
				DepartureTime:  "2026-08-25 13:16:00",
				StopType:       "NoncommercialStop",
			},
		},
	}}}
	schedules := &fakeSchedules{}
	c := newTimetableCollector(t, api, schedules, nil)

	c.Tick(context.Background())

	require.Len(t, schedules.runs, 1)
	run := schedules.runs[0]
	assert.Equal(t, "run-1", run.RunID)
	assert.Equal(t, "srv-de1", run.ServerID)
	assert.Equal(t, "NATIONAL_EXPRESS_TRAIN", run.Category)
	assert.Equal(t, "EIJ", run.Label)
	assert.Equal(t, "4103", run.ContinuesAs)
	require.Len(t, run.Rows, 2)

	origin := run.Rows[0]
	assert.Equal(t, "katowice", origin.PointID)
	assert.True(t, origin.InPlayableBorder)
	assert.Nil(t, origin.Arrival)
	require.NotNil(t, origin.Departure)
	// 13:05 server-local at +01:00 is 12:05 UTC.
	assert.Equal(t, time.Date(2026, 8, 25, 12, 5, 0, 0, time.UTC), origin.Departure.UTC())
	assert.Equal(t, journey.StopPassenger, origin.Stop)
	require.NotNil(t, origin.Platform)
	assert.Equal(t, 2, *origin.Platform)
	require.NotNil(t, origin.Track)
	assert.Equal(t, 3, *origin.Track)

	stop := run.Rows[1]
	assert.Equal(t, "sosnowiec", stop.PointID)
	assert.False(t, stop.InPlayableBorder)
	assert.Equal(t, journey.StopNonPassenger, stop.Stop)
	assert.Nil(t, stop.Platform)
	assert.Nil(t, stop.Track)
}

func TestTimetableCollector_DropsRowsWithUnknownPoints(t *testing.T) {
	api := &fakeTimetableAPI{entries: []upstream.TimetableEntry{{
		RunID:        "run-1",
		TrainNoLocal: "4100",
		TrainType:    "EIJ",
		Rows: []upstream.TimetableRow{
			{PointForeignID: "9999", PointName: "Ghost", DepartureTime: "2026-08-25 13:05:00"},
			{PointForeignID: "3991", PointName: "Katowice", ArrivalTime: "2026-08-25 13:15:00"},
		},
	}}}
	schedules := &fakeSchedules{}
	c := newTimetableCollector(t, api, schedules, nil)

	c.Tick(context.Background())

	require.Len(t, schedules.runs, 1)
	require.Len(t, schedules.runs[0].Rows, 1)
	assert.Equal(t, "katowice", schedules.runs[0].Rows[0].PointID)
}

func TestTimetableCollector_SkipsRunsWithoutResolvableRows(t *testing.T) {
	api := &fakeTimetableAPI{entries: []upstream.TimetableEntry{{
		RunID:        "run-1",
		TrainNoLocal: "4100",
		TrainType:    "EIJ",
		Rows: []upstream.TimetableRow{
			{PointForeignID: "9999", PointName: "Ghost"},
		},
	}}}
	schedules := &fakeSchedules{}
	c := newTimetableCollector(t, api, schedules, nil)

	c.Tick(context.Background())

	assert.Empty(t, schedules.runs)
}

func TestTimetableCollector_UnknownTrainTypeMapsToUnknownCategory(t *testing.T) {
	api := &fakeTimetableAPI{entries: []upstream.TimetableEntry{{
		RunID:        "run-1",
		TrainNoLocal: "4100",
		TrainType:    "??",
		Rows: []upstream.TimetableRow{
			{PointForeignID: "3991", PointName: "Katowice", ArrivalTime: "2026-08-25 13:15:00"},
		},
	}}}
	schedules := &fakeSchedules{}
	c := newTimetableCollector(t, api, schedules, nil)

	c.Tick(context.Background())

	require.Len(t, schedules.runs, 1)
	assert.Equal(t, "UNKNOWN", schedules.runs[0].Category)
}

func TestTimetableCollector_SeedsPredictedConsist(t *testing.T) {
	api := &fakeTimetableAPI{entries: []upstream.TimetableEntry{{
		RunID:        "run-1",
		TrainNoLocal: "4100",
		TrainType:    "EIJ",
		Rows: []upstream.TimetableRow{
			{PointForeignID: "3991", PointName: "Katowice", DepartureTime: "2026-08-25 13:05:00"},
		},
	}}}
	key := "NATIONAL_EXPRESS_TRAIN|4100|Katowice|Katowice|13:05:00"
	schedules := &fakeSchedules{slotKeys: map[string]string{"run-1": key}}
	consists := &fakeSeeder{}
	c := newTimetableCollector(t, api, schedules, consists)

	c.Tick(context.Background())

	require.Len(t, consists.calls, 1)
	assert.Equal(t, railid.JourneyID("run-1"), consists.calls[0].journeyID)
	assert.Equal(t, key, consists.calls[0].resolveKey)
}

func TestTimetableCollector_SkipsSeedingWithoutSlotKey(t *testing.T) {
	api := &fakeTimetableAPI{entries: []upstream.TimetableEntry{{
		RunID:        "run-1",
		TrainNoLocal: "4100",
		TrainType:    "EIJ",
		Rows: []upstream.TimetableRow{
			{PointForeignID: "3991", PointName: "Katowice", DepartureTime: "2026-08-25 13:05:00"},
		},
	}}}
	schedules := &fakeSchedules{}
	consists := &fakeSeeder{}
	c := newTimetableCollector(t, api, schedules, consists)

	c.Tick(context.Background())

	assert.Empty(t, consists.calls)
}

func TestStopType_Mapping(t *testing.T) {
	assert.Equal(t, journey.StopPassenger, stopType("CommercialStop"))
	assert.Equal(t, journey.StopNonPassenger, stopType("NoncommercialStop"))
	assert.Equal(t, journey.StopNone, stopType("NoStopOver"))
	assert.Equal(t, journey.StopNone, stopType(""))
}

func TestPlatform_RomanParsing(t *testing.T) {
	require.NotNil(t, platform("IV"))
	assert.Equal(t, 4, *platform("IV"))
	assert.Nil(t, platform(""))
	assert.Nil(t, platform("-"))
}
