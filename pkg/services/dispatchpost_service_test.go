package services

import (
	"context"
	"testing"

	"github.com/simtrack/sit-collector/pkg/railid"
	testdb "github.com/simtrack/sit-collector/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPostRecord(foreignID, serverID, name string) DispatchPostRecord {
	return DispatchPostRecord{
		ID:         railid.DispatchPostID(foreignID),
		ForeignID:  foreignID,
		ServerID:   serverID,
		Name:       name,
		Latitude:   50.258,
		Longitude:  19.02,
		Difficulty: 3,
	}
}

func TestDispatchPostService_UpsertCreatesAndUpdates(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	posts := NewDispatchPostService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")

	rec := testPostRecord("6390db9a00000000000000a1", serverID, "Katowice")
	created, err := posts.Upsert(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, "Katowice", created.Name)
	assert.Nil(t, created.PointID)

	pointID := "katowice"
	rec.PointID = &pointID
	rec.Difficulty = 4
	updated, err := posts.Upsert(ctx, rec)
	require.NoError(t, err)
	require.NotNil(t, updated.PointID)
	assert.Equal(t, "katowice", *updated.PointID)
	assert.Equal(t, 4, updated.Difficulty)

	listed, err := posts.ListByServer(ctx, serverID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestDispatchPostService_UpsertValidatesDifficulty(t *testing.T) {
	client := testdb.NewTestClient(t)
	posts := NewDispatchPostService(client.Client)

	rec := testPostRecord("6390db9a00000000000000a1", "srv", "Katowice")
	rec.Difficulty = 6
	_, err := posts.Upsert(context.Background(), rec)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestDispatchPostService_MarkMissingDeleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	servers := NewServerService(client.Client)
	posts := NewDispatchPostService(client.Client)
	ctx := context.Background()

	serverID := seedServer(t, servers, "6390db9a000000000000de01", "de1")
	otherServerID := seedServer(t, servers, "6390db9a000000000000en01", "en1")

	a, err := posts.Upsert(ctx, testPostRecord("6390db9a00000000000000a1", serverID, "Katowice"))
	require.NoError(t, err)
	b, err := posts.Upsert(ctx, testPostRecord("6390db9a00000000000000a2", serverID, "Sosnowiec"))
	require.NoError(t, err)
	other, err := posts.Upsert(ctx, testPostRecord("6390db9a00000000000000a3", otherServerID, "Katowice"))
	require.NoError(t, err)

	ids, err := posts.MarkMissingDeleted(ctx, serverID, []string{a.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, ids)

	gone, err := client.DispatchPost.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, gone.Deleted)

	// Posts on other servers are untouched.
	kept, err := client.DispatchPost.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.False(t, kept.Deleted)
}
