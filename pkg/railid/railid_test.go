package railid

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv5Determinism(t *testing.T) {
	ns := uuid.MustParse("d32b76b2-d083-45d3-ab8f-d4d76398318b")
	got := uuid.NewSHA1(ns, []byte("hello world"))
	assert.Equal(t, "ccc93e04-5a2a-5691-a386-71c99fa4dc48", got.String())
}

func TestJourneyEventIDStableAcrossCalls(t *testing.T) {
	a := JourneyEventID("j-1", 3, "ARRIVAL")
	b := JourneyEventID("j-1", 3, "ARRIVAL")
	c := JourneyEventID("j-1", 3, "DEPARTURE")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestForeignIDTimestamp(t *testing.T) {
	ts, err := ForeignIDTimestamp("6390db9a9401bed7d6409dbb")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 12, 7, 18, 29, 46, 0, time.UTC), ts)
}

func TestForeignIDTimestampRoundTrip(t *testing.T) {
	const id = "6390db9a9401bed7d6409dbb"
	ts, err := ForeignIDTimestamp(id)
	require.NoError(t, err)
	assert.Equal(t, id[:8], EncodeTimestampPrefix(ts))
}

func TestForeignIDTimestampRejectsBadInput(t *testing.T) {
	_, err := ForeignIDTimestamp("short")
	assert.Error(t, err)

	_, err = ForeignIDTimestamp("zzzzzzzz9401bed7d6409dbb")
	assert.Error(t, err)
}

func TestParseRoman(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"LXXXVIII", 88},
		{"IV", 4},
		{"Ia", 1},
		{"IX", 9},
		{"MCMXCIV", 1994},
		{"III", 3},
		{"", 0},
		{"ab", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRoman(tt.in), "input %q", tt.in)
	}
}

func TestParseTrainType(t *testing.T) {
	tests := []struct {
		code string
		want TransportCategory
	}{
		{"EIJ", CategoryNationalExpress},
		{"RP5", CategoryRegionalFast},
		{"ZG7", CategoryMaintenance},
		{"TLK", CategoryNationalCargo},
		{"MPE", CategoryInterRegionalExpress},
	}
	for _, tt := range tests {
		got, err := ParseTrainType(tt.code)
		require.NoError(t, err, "code %q", tt.code)
		assert.Equal(t, tt.want, got, "code %q", tt.code)
	}
}

func TestParseTrainTypeUnknown(t *testing.T) {
	_, err := ParseTrainType("QQ9")
	assert.Error(t, err)

	_, err = ParseTrainType("Z")
	assert.Error(t, err)
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "NATIONAL_EXPRESS_TRAIN", CategoryNationalExpress.String())
	assert.Equal(t, "REGIONAL_FAST_TRAIN", CategoryRegionalFast.String())
	assert.Equal(t, "MAINTENANCE_TRAIN", CategoryMaintenance.String())
	assert.Equal(t, "UNKNOWN", CategoryUnknown.String())
	assert.Equal(t, "UNKNOWN", TransportCategory(99).String())
}
