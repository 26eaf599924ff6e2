package services

import (
	"context"
	"testing"
	"time"

	"github.com/simtrack/sit-collector/ent/server"
	"github.com/simtrack/sit-collector/pkg/railid"
	testdb "github.com/simtrack/sit-collector/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerRecord(foreignID, code string) ServerRecord {
	return ServerRecord{
		ID:              railid.ServerID(foreignID),
		ForeignID:       foreignID,
		Code:            code,
		Region:          server.RegionEUROPE,
		Scenery:         "classic",
		UTCOffsetHours:  1,
		Language:        "de",
		Tags:            []string{"vanilla"},
		RegisteredSince: time.Date(2022, 12, 7, 18, 29, 46, 0, time.UTC),
	}
}

func TestServerService_UpsertCreatesAndUpdates(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewServerService(client.Client)
	ctx := context.Background()

	rec := testServerRecord("6390db9a000000000000de01", "de1")
	created, err := svc.Upsert(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, created.ID)
	assert.Equal(t, "de1", created.Code)
	assert.False(t, created.Deleted)

	rec.UTCOffsetHours = 2 // DST shift
	rec.Scenery = "winter"
	updated, err := svc.Upsert(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 2, updated.UtcOffsetHours)
	assert.Equal(t, "winter", updated.Scenery)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestServerService_UpsertResurrectsDeleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewServerService(client.Client)
	ctx := context.Background()

	rec := testServerRecord("6390db9a000000000000de01", "de1")
	created, err := svc.Upsert(ctx, rec)
	require.NoError(t, err)

	_, err = client.Server.UpdateOneID(created.ID).SetDeleted(true).Save(ctx)
	require.NoError(t, err)

	resurrected, err := svc.Upsert(ctx, rec)
	require.NoError(t, err)
	assert.False(t, resurrected.Deleted)
}

func TestServerService_MarkMissingDeleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewServerService(client.Client)
	ctx := context.Background()

	a, err := svc.Upsert(ctx, testServerRecord("6390db9a000000000000de01", "de1"))
	require.NoError(t, err)
	b, err := svc.Upsert(ctx, testServerRecord("6390db9a000000000000en01", "en1"))
	require.NoError(t, err)

	ids, err := svc.MarkMissingDeleted(ctx, []string{a.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, ids)

	gone, err := client.Server.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, gone.Deleted)

	kept, err := client.Server.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, kept.Deleted)
}

func TestServerService_MarkMissingDeletedRefusesEmptyListing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewServerService(client.Client)

	_, err := svc.MarkMissingDeleted(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
