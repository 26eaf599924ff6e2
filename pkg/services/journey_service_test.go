package services

import (
	"context"
	"testing"
	"time"

	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/ent/server"
	"github.com/simtrack/sit-collector/pkg/railid"
	testdb "github.com/simtrack/sit-collector/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJourneyRecord(runID, serverID, trainNumber string) JourneyRecord {
	return JourneyRecord{
		ID:          railid.JourneyID(runID),
		RunID:       runID,
		ServerID:    serverID,
		TrainNumber: trainNumber,
		Category:    "REGIONAL_TRAIN",
	}
}

func testEventRecord(journeyID string, index int, typ journeyevent.EventType, point string, at time.Time) EventRecord {
	return EventRecord{
		ID:               railid.JourneyEventID(journeyID, index, string(typ)),
		Index:            index,
		Type:             typ,
		PointID:          point,
		PointName:        point,
		InPlayableBorder: true,
		ScheduledTime:    at,
		RealtimeTimeType: journeyevent.RealtimeTimeTypeSCHEDULE,
		StopType:         journeyevent.StopTypePASSENGER,
	}
}

// seedServer satisfies no FK (journeys carry server_id without a constraint)
// but keeps the fixtures realistic.
func seedServer(t *testing.T, svc *ServerService, foreignID, code string) string {
	t.Helper()
	created, err := svc.Upsert(context.Background(), ServerRecord{
		ID:              railid.ServerID(foreignID),
		ForeignID:       foreignID,
		Code:            code,
		Region:          server.RegionEUROPE,
		RegisteredSince: time.Now().UTC(),
	})
	require.NoError(t, err)
	return created.ID
}

func TestJourneyService_SaveWithEventsInsertsAndUpdates(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	rec := testJourneyRecord("de1-4024-2026-08-25", serverID, "4024")
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	events := []EventRecord{
		testEventRecord(rec.ID, 0, journeyevent.EventTypeDEPARTURE, "katowice", base),
		testEventRecord(rec.ID, 1, journeyevent.EventTypeARRIVAL, "sosnowiec", base.Add(12*time.Minute)),
	}

	saved, err := journeys.SaveWithEvents(ctx, rec, events)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, saved.ID)

	got, err := journeys.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, got.Edges.Events, 2)
	assert.Equal(t, 0, got.Edges.Events[0].EventIndex)
	assert.Equal(t, "katowice", got.Edges.Events[0].PointID)

	// Second save flips one event to a REAL time and drops the other.
	real := base.Add(90 * time.Second)
	events[0].RealtimeTime = &real
	events[0].RealtimeTimeType = journeyevent.RealtimeTimeTypeREAL
	_, err = journeys.SaveWithEvents(ctx, rec, events[:1])
	require.NoError(t, err)

	got, err = journeys.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, got.Edges.Events, 1)
	assert.Equal(t, journeyevent.RealtimeTimeTypeREAL, got.Edges.Events[0].RealtimeTimeType)
	require.NotNil(t, got.Edges.Events[0].RealtimeTime)
	assert.WithinDuration(t, real, *got.Edges.Events[0].RealtimeTime, time.Second)
}

func TestJourneyService_GetByRunID(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	rec := testJourneyRecord("de1-4024-2026-08-25", serverID, "4024")
	_, err := journeys.SaveWithEvents(ctx, rec, nil)
	require.NoError(t, err)

	got, err := journeys.GetByRunID(ctx, rec.RunID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	_, err = journeys.GetByRunID(ctx, "no-such-run")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJourneyService_FindContinuation(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	departure := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	next := testJourneyRecord("de1-4025-2026-08-25", serverID, "4025")
	_, err := journeys.SaveWithEvents(ctx, next, []EventRecord{
		testEventRecord(next.ID, 0, journeyevent.EventTypeDEPARTURE, "sosnowiec", departure),
	})
	require.NoError(t, err)

	found, err := journeys.FindContinuation(ctx, serverID, "4025", "sosnowiec", departure)
	require.NoError(t, err)
	assert.Equal(t, next.ID, found.ID)

	_, err = journeys.FindContinuation(ctx, serverID, "4025", "sosnowiec", departure.Add(time.Minute))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = journeys.FindContinuation(ctx, serverID, "4025", "katowice", departure)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJourneyService_DeleteUpdatedBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	journeys := NewJourneyService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")

	old := testJourneyRecord("de1-1001-2026-05-01", serverID, "1001")
	_, err := journeys.SaveWithEvents(ctx, old, []EventRecord{
		testEventRecord(old.ID, 0, journeyevent.EventTypeDEPARTURE, "katowice", time.Now().UTC()),
	})
	require.NoError(t, err)

	fresh := testJourneyRecord("de1-1002-2026-08-25", serverID, "1002")
	_, err = journeys.SaveWithEvents(ctx, fresh, nil)
	require.NoError(t, err)

	// Backdate the old journey's update_time past the cutoff.
	past := time.Now().Add(-91 * 24 * time.Hour)
	_, err = client.Journey.UpdateOneID(old.ID).SetUpdateTime(past).Save(ctx)
	require.NoError(t, err)

	total, err := journeys.DeleteUpdatedBefore(ctx, time.Now().Add(-90*24*time.Hour), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, err = journeys.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = journeys.Get(ctx, fresh.ID)
	require.NoError(t, err)

	// Events went with the journey via cascade.
	n, err := client.JourneyEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
