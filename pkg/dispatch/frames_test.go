package dispatch

import (
	"testing"

	"github.com/simtrack/sit-collector/pkg/collector"
	"github.com/simtrack/sit-collector/pkg/dirty"
	"github.com/simtrack/sit-collector/pkg/journey"
	sitv1 "github.com/simtrack/sit-collector/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneyFrame_FullChangeSet(t *testing.T) {
	f := journeyFrame(journey.Delta{
		JourneyID: "j-1",
		ServerID:  "s-1",
		Kind:      journey.KindAdd,
		Changes: []dirty.Change{
			{Name: "driver", Value: "steam-7"},
			{Name: "speed", Value: uint32(83)},
			{Name: "position", Value: journey.Position{Lat: 50.26, Lon: 19.02}},
			{Name: "next_signal", Value: journey.SignalAhead{ID: "L1", DistanceM: 350.5, SpeedLimitKmh: 60}},
		},
		EventUpdated: true,
	})

	assert.Equal(t, sitv1.UpdateType_UPDATE_TYPE_ADD, f.UpdateType)
	require.NotNil(t, f.Driver)
	assert.Equal(t, "steam-7", f.Driver.GetDriverId())
	assert.Equal(t, uint32(83), f.GetSpeedKmh())
	require.NotNil(t, f.Position)
	assert.InDelta(t, 50.26, f.Position.Latitude, 1e-9)
	require.NotNil(t, f.NextSignal)
	require.NotNil(t, f.NextSignal.Signal)
	assert.Equal(t, "L1", f.NextSignal.Signal.Name)
	assert.Equal(t, uint32(350), f.NextSignal.Signal.DistanceM)
	assert.Equal(t, uint32(60), f.NextSignal.Signal.GetSpeedLimitKmh())
	assert.True(t, f.EventUpdated)
}

func TestJourneyFrame_SparseAndCleared(t *testing.T) {
	f := journeyFrame(journey.Delta{
		JourneyID: "j-1",
		ServerID:  "s-1",
		Kind:      journey.KindUpdate,
		Changes: []dirty.Change{
			{Name: "driver", Cleared: true},
			{Name: "next_signal", Cleared: true},
		},
	})

	// Cleared fields carry the wrapper with an unset inner value.
	require.NotNil(t, f.Driver)
	assert.Nil(t, f.Driver.DriverId)
	require.NotNil(t, f.NextSignal)
	assert.Nil(t, f.NextSignal.Signal)

	// Untouched fields are absent, not zero.
	assert.Nil(t, f.SpeedKmh)
	assert.Nil(t, f.Position)
}

func TestJourneyFrame_SignalWithoutLimitOmitsLimit(t *testing.T) {
	f := journeyFrame(journey.Delta{
		Changes: []dirty.Change{
			{Name: "next_signal", Value: journey.SignalAhead{ID: "KZ_D", DistanceM: 900}},
		},
	})
	require.NotNil(t, f.NextSignal.Signal)
	assert.Nil(t, f.NextSignal.Signal.SpeedLimitKmh)
}

func TestServerFrame(t *testing.T) {
	f := serverFrame(collector.ServerDelta{
		ServerID: "s-1",
		Kind:     journey.KindUpdate,
		Changes: []dirty.Change{
			{Name: "online", Value: false},
			{Name: "utc_offset_hours", Value: -5},
		},
	})

	assert.Equal(t, sitv1.UpdateType_UPDATE_TYPE_UPDATE, f.UpdateType)
	require.NotNil(t, f.Online)
	assert.False(t, *f.Online)
	require.NotNil(t, f.UtcOffsetHours)
	assert.Equal(t, int32(-5), *f.UtcOffsetHours)
	assert.Nil(t, f.ZoneOffset)
	assert.Nil(t, f.ServerScenery)
}

func TestPostFrame(t *testing.T) {
	f := postFrame(collector.PostDelta{
		PostID:             "p-1",
		ServerID:           "s-1",
		Kind:               journey.KindUpdate,
		Dispatchers:        []string{"steam-1"},
		DispatchersChanged: true,
	})
	assert.True(t, f.DispatchersChanged)
	assert.Equal(t, []string{"steam-1"}, f.DispatcherIds)

	removal := postFrame(collector.PostDelta{PostID: "p-1", ServerID: "s-1", Kind: journey.KindRemove})
	assert.Equal(t, sitv1.UpdateType_UPDATE_TYPE_REMOVE, removal.UpdateType)
	assert.Empty(t, removal.DispatcherIds)
}
