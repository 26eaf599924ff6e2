package services

import (
	"context"
	"testing"

	"github.com/simtrack/sit-collector/ent/vehiclesequence"
	"github.com/simtrack/sit-collector/pkg/railid"
	testdb "github.com/simtrack/sit-collector/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSequenceRecord(journeyID, resolveKey string, status vehiclesequence.Status) SequenceRecord {
	return SequenceRecord{
		ID:         railid.SequenceID(),
		JourneyID:  journeyID,
		Status:     status,
		Vehicles:   []map[string]any{{"railcar_id": "en76", "load": nil}},
		ResolveKey: resolveKey,
	}
}

func TestVehicleService_UpsertCreatesAndUpgrades(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	vehicles := NewVehicleService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	j := testJourneyRecord("de1-4024-2026-08-25", serverID, "4024")
	_, err := journeys.SaveWithEvents(ctx, j, nil)
	require.NoError(t, err)

	key := "REGIONAL_TRAIN|4024|katowice|sosnowiec|12:00"
	created, err := vehicles.Upsert(ctx, testSequenceRecord(j.ID, key, vehiclesequence.StatusPREDICTION))
	require.NoError(t, err)
	assert.Equal(t, vehiclesequence.StatusPREDICTION, created.Status)

	// A live observation upgrades the same row to REAL.
	real := testSequenceRecord(j.ID, key, vehiclesequence.StatusREAL)
	real.Vehicles = []map[string]any{{"railcar_id": "en76", "load": "passengers"}}
	upgraded, err := vehicles.Upsert(ctx, real)
	require.NoError(t, err)
	assert.Equal(t, created.ID, upgraded.ID)
	assert.Equal(t, vehiclesequence.StatusREAL, upgraded.Status)
}

func TestVehicleService_UpsertNeverDowngradesReal(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	vehicles := NewVehicleService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	j := testJourneyRecord("de1-4024-2026-08-25", serverID, "4024")
	_, err := journeys.SaveWithEvents(ctx, j, nil)
	require.NoError(t, err)

	key := "REGIONAL_TRAIN|4024|katowice|sosnowiec|12:00"
	_, err = vehicles.Upsert(ctx, testSequenceRecord(j.ID, key, vehiclesequence.StatusREAL))
	require.NoError(t, err)

	kept, err := vehicles.Upsert(ctx, testSequenceRecord(j.ID, key, vehiclesequence.StatusPREDICTION))
	require.NoError(t, err)
	assert.Equal(t, vehiclesequence.StatusREAL, kept.Status)
}

func TestVehicleService_UpsertCarriesPredictionForward(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	vehicles := NewVehicleService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	yesterday := testJourneyRecord("de1-4024-2026-08-24", serverID, "4024")
	_, err := journeys.SaveWithEvents(ctx, yesterday, nil)
	require.NoError(t, err)
	today := testJourneyRecord("de1-4024-2026-08-25", serverID, "4024")
	_, err = journeys.SaveWithEvents(ctx, today, nil)
	require.NoError(t, err)

	key := "REGIONAL_TRAIN|4024|katowice|sosnowiec|12:00"
	old, err := vehicles.Upsert(ctx, testSequenceRecord(yesterday.ID, key, vehiclesequence.StatusPREDICTION))
	require.NoError(t, err)

	// Same slot the next day: the predicted consist moves to today's journey.
	carried, err := vehicles.Upsert(ctx, testSequenceRecord(today.ID, key, vehiclesequence.StatusPREDICTION))
	require.NoError(t, err)
	assert.Equal(t, old.ID, carried.ID)
	assert.Equal(t, today.ID, carried.JourneyID)

	_, err = vehicles.GetByJourney(ctx, yesterday.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := vehicles.ResolveByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, today.ID, got.JourneyID)
}

func TestVehicleService_SeedPredictionCarriesRealSighting(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	vehicles := NewVehicleService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	yesterday := testJourneyRecord("de1-4024-2026-08-24", serverID, "4024")
	_, err := journeys.SaveWithEvents(ctx, yesterday, nil)
	require.NoError(t, err)
	today := testJourneyRecord("de1-4024-2026-08-25", serverID, "4024")
	_, err = journeys.SaveWithEvents(ctx, today, nil)
	require.NoError(t, err)

	key := "REGIONAL_TRAIN|4024|katowice|sosnowiec|12:00:00"
	observed, err := vehicles.Upsert(ctx, testSequenceRecord(yesterday.ID, key, vehiclesequence.StatusREAL))
	require.NoError(t, err)

	// The next scheduled run of the slot inherits yesterday's real consist
	// as a prediction.
	seeded, err := vehicles.SeedPrediction(ctx, today.ID, key)
	require.NoError(t, err)
	assert.Equal(t, observed.ID, seeded.ID)
	assert.Equal(t, today.ID, seeded.JourneyID)
	assert.Equal(t, vehiclesequence.StatusPREDICTION, seeded.Status)
	assert.Equal(t, observed.Vehicles, seeded.Vehicles)

	// Once the run is observed live, the seeded row upgrades in place.
	upgraded, err := vehicles.Upsert(ctx, testSequenceRecord(today.ID, key, vehiclesequence.StatusREAL))
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, upgraded.ID)
	assert.Equal(t, vehiclesequence.StatusREAL, upgraded.Status)
}

func TestVehicleService_SeedPredictionNoPriorSighting(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	vehicles := NewVehicleService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	j := testJourneyRecord("de1-4024-2026-08-25", serverID, "4024")
	_, err := journeys.SaveWithEvents(ctx, j, nil)
	require.NoError(t, err)

	_, err = vehicles.SeedPrediction(ctx, j.ID, "REGIONAL_TRAIN|4024|katowice|sosnowiec|12:00:00")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleService_SeedPredictionKeepsExistingSequence(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	vehicles := NewVehicleService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	j := testJourneyRecord("de1-4024-2026-08-25", serverID, "4024")
	_, err := journeys.SaveWithEvents(ctx, j, nil)
	require.NoError(t, err)

	key := "REGIONAL_TRAIN|4024|katowice|sosnowiec|12:00:00"
	observed, err := vehicles.Upsert(ctx, testSequenceRecord(j.ID, key, vehiclesequence.StatusREAL))
	require.NoError(t, err)

	// A later timetable refresh of the same run must not demote the
	// already observed consist.
	kept, err := vehicles.SeedPrediction(ctx, j.ID, key)
	require.NoError(t, err)
	assert.Equal(t, observed.ID, kept.ID)
	assert.Equal(t, vehiclesequence.StatusREAL, kept.Status)
}
