package collector

import (
	"context"
	"testing"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	"github.com/simtrack/sit-collector/pkg/static"
	"github.com/simtrack/sit-collector/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSequenceStore struct {
	upserts []services.SequenceRecord
}

func (f *fakeSequenceStore) Upsert(ctx context.Context, rec services.SequenceRecord) (*ent.VehicleSequence, error) {
	f.upserts = append(f.upserts, rec)
	return &ent.VehicleSequence{ID: rec.ID}, nil
}

type fakeTrainSource struct {
	listings map[string][]upstream.TrainEntry
}

func (f *fakeTrainSource) Last(serverCode string) []upstream.TrainEntry {
	return f.listings[serverCode]
}

type fakeSlots struct {
	keys map[string]string // run id -> slot key
}

func (f *fakeSlots) SlotKey(runID string) (string, bool) {
	key, ok := f.keys[runID]
	return key, ok
}

func testRailcars(t *testing.T) *static.RailcarProvider {
	t.Helper()
	cars, err := static.NewRailcarProvider([]*static.Railcar{
		{ID: "eu07", APIID: "4E/EU07-096", Name: "EU07-096", Kind: "locomotive", MaxSpeedKmh: 125},
		{ID: "111a", APIID: "111a/B10", Name: "111a B10", Kind: "wagon", MaxSpeedKmh: 160},
	})
	require.NoError(t, err)
	return cars
}

func newVehicleCollector(t *testing.T, source TrainSource, slots SlotSource, store SequenceStore) *VehicleCollector {
	t.Helper()
	lister := &fakeLister{servers: []*ent.Server{{ID: "srv-de1", Code: "de1"}}}
	return NewVehicleCollector(source, slots, store, lister, testRailcars(t), nil)
}

func TestVehicleCollector_BuildsSequenceFromListing(t *testing.T) {
	entry := trainEntry("run-1", "4100")
	entry.Vehicles = []string{"4E/EU07-096", "111a/B10:Passengers@40t", "2ltr/Ghost"}
	source := &fakeTrainSource{listings: map[string][]upstream.TrainEntry{"de1": {entry}}}
	slots := &fakeSlots{keys: map[string]string{
		"run-1": "NATIONAL_EXPRESS_TRAIN|4100|Katowice|Warszawa Wschodnia|04:30:00",
	}}
	store := &fakeSequenceStore{}
	c := newVehicleCollector(t, source, slots, store)

	c.Tick(context.Background())

	require.Len(t, store.upserts, 1)
	rec := store.upserts[0]
	assert.Equal(t, railid.JourneyID("run-1"), rec.JourneyID)
	assert.Equal(t, vehiclesequence.StatusREAL, rec.Status)
	assert.Equal(t, "NATIONAL_EXPRESS_TRAIN|4100|Katowice|Warszawa Wschodnia|04:30:00", rec.ResolveKey)
	require.Len(t, rec.Vehicles, 3)

	loco := rec.Vehicles[0]
	assert.Equal(t, "EU07-096", loco["name"])
	assert.Equal(t, "locomotive", loco["kind"])
	assert.Equal(t, 125, loco["max_speed_kmh"])

	wagon := rec.Vehicles[1]
	assert.Equal(t, "111a B10", wagon["name"])
	assert.Equal(t, "Passengers", wagon["load"])
	assert.Equal(t, "40t", wagon["load_weight"])

	unknown := rec.Vehicles[2]
	assert.Equal(t, "2ltr/Ghost", unknown["name"])
	assert.Equal(t, "UNKNOWN", unknown["kind"])
}

func TestVehicleCollector_SkipsRunsWithoutConsist(t *testing.T) {
	entry := trainEntry("run-1", "4100")
	source := &fakeTrainSource{listings: map[string][]upstream.TrainEntry{"de1": {entry}}}
	slots := &fakeSlots{keys: map[string]string{"run-1": "key"}}
	store := &fakeSequenceStore{}
	c := newVehicleCollector(t, source, slots, store)

	c.Tick(context.Background())

	assert.Empty(t, store.upserts)
}

func TestVehicleCollector_WaitsForSlotKey(t *testing.T) {
	entry := trainEntry("run-1", "4100")
	entry.Vehicles = []string{"4E/EU07-096"}
	source := &fakeTrainSource{listings: map[string][]upstream.TrainEntry{"de1": {entry}}}
	slots := &fakeSlots{keys: map[string]string{}}
	store := &fakeSequenceStore{}
	c := newVehicleCollector(t, source, slots, store)

	// The timetable has not been reconciled for the run yet: no slot key,
	// no write. Once it lands, the next tick saves.
	c.Tick(context.Background())
	assert.Empty(t, store.upserts)

	slots.keys["run-1"] = "REGIONAL_FAST_TRAIN|4100|Katowice|Warszawa Wschodnia|06:10:00"
	c.Tick(context.Background())
	require.Len(t, store.upserts, 1)
	assert.Equal(t, "REGIONAL_FAST_TRAIN|4100|Katowice|Warszawa Wschodnia|06:10:00", store.upserts[0].ResolveKey)
}
