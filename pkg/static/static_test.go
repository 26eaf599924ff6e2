package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square around (50.0, 19.0), roughly 2x2 km
func testPoint(id, name string) *Point {
	return &Point{
		ID:        id,
		ForeignID: "f-" + id,
		Name:      name,
		Position:  LatLon{Lat: 50.0, Lon: 19.0},
		Border: []LatLon{
			{Lat: 49.99, Lon: 18.99},
			{Lat: 49.99, Lon: 19.01},
			{Lat: 50.01, Lon: 19.01},
			{Lat: 50.01, Lon: 18.99},
		},
	}
}

func TestPointContains(t *testing.T) {
	p := testPoint("p1", "Katowice")
	p.computeBounds()

	assert.True(t, p.Contains(LatLon{Lat: 50.0, Lon: 19.0}))
	assert.True(t, p.Contains(LatLon{Lat: 49.995, Lon: 19.005}))
	assert.False(t, p.Contains(LatLon{Lat: 50.02, Lon: 19.0}))
	assert.False(t, p.Contains(LatLon{Lat: 50.0, Lon: 19.02}))
}

func TestPointWithoutBorderContainsNothing(t *testing.T) {
	p := &Point{ID: "p1", Name: "x"}
	p.computeBounds()
	assert.False(t, p.Contains(LatLon{Lat: 50.0, Lon: 19.0}))
}

func TestPointProviderIndexes(t *testing.T) {
	prov, err := NewPointProvider([]*Point{testPoint("p1", "Katowice"), testPoint("p2", "Sosnowiec")})
	require.NoError(t, err)

	byID, ok := prov.ByID("p1")
	require.True(t, ok)
	assert.Equal(t, "Katowice", byID.Name)

	byForeign, ok := prov.ByForeignID("f-p2")
	require.True(t, ok)
	assert.Equal(t, "p2", byForeign.ID)

	byName, ok := prov.ByName("Sosnowiec")
	require.True(t, ok)
	assert.Equal(t, "p2", byName.ID)

	_, ok = prov.ByName("Gliwice")
	assert.False(t, ok)
}

func TestPointProviderRejectsDuplicates(t *testing.T) {
	_, err := NewPointProvider([]*Point{testPoint("p1", "A"), testPoint("p1", "B")})
	assert.Error(t, err)

	dup := testPoint("p2", "A")
	_, err = NewPointProvider([]*Point{testPoint("p1", "A"), dup})
	assert.Error(t, err, "duplicate name must fail load")
}

func TestByContaining(t *testing.T) {
	a := testPoint("p1", "A")
	b := testPoint("p2", "B")
	// move B's square far away
	for i := range b.Border {
		b.Border[i].Lat += 1
	}
	b.Position.Lat += 1
	prov, err := NewPointProvider([]*Point{a, b})
	require.NoError(t, err)

	hit := prov.ByContaining(LatLon{Lat: 51.0, Lon: 19.0})
	require.NotNil(t, hit)
	assert.Equal(t, "p2", hit.ID)

	assert.Nil(t, prov.ByContaining(LatLon{Lat: 40.0, Lon: 0.0}))
}

func TestSignalProvider(t *testing.T) {
	prov, err := NewSignalProvider([]*Signal{
		{PointID: "p1", SignalID: "KO_G", PlatformRoman: "III", Track: 2},
		{PointID: "p1", SignalID: "KO_H", PlatformRoman: "IV", Track: 1},
	})
	require.NoError(t, err)

	s, ok := prov.Lookup("p1", "KO_G")
	require.True(t, ok)
	assert.Equal(t, 3, s.Platform)
	assert.Equal(t, 2, s.Track)

	_, ok = prov.Lookup("p2", "KO_G")
	assert.False(t, ok)
}

func TestSignalProviderRejectsDuplicates(t *testing.T) {
	_, err := NewSignalProvider([]*Signal{
		{PointID: "p1", SignalID: "KO_G"},
		{PointID: "p1", SignalID: "KO_G"},
	})
	assert.Error(t, err)
}

func TestRailcarProvider(t *testing.T) {
	prov, err := NewRailcarProvider([]*Railcar{
		{ID: "r1", APIID: "EU07-005", Name: "EU07", Kind: "locomotive", MaxSpeedKmh: 125},
		{ID: "r2", APIID: "441V", Name: "441V", Kind: "wagon", MaxSpeedKmh: 100},
	})
	require.NoError(t, err)

	c, ok := prov.ByAPIID("EU07-005")
	require.True(t, ok)
	assert.Equal(t, "r1", c.ID)

	_, ok = prov.ByID("r3")
	assert.False(t, ok)
}

func TestDistanceM(t *testing.T) {
	// Katowice -> Sosnowiec Gl, about 7.6 km
	d := DistanceM(LatLon{Lat: 50.2575, Lon: 19.0170}, LatLon{Lat: 50.2793, Lon: 19.1262})
	assert.InDelta(t, 8100, d, 600)

	assert.InDelta(t, 0, DistanceM(LatLon{Lat: 50, Lon: 19}, LatLon{Lat: 50, Lon: 19}), 0.001)
}
