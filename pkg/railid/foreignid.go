package railid

import (
	"encoding/hex"
	"fmt"
	"time"
)

// ForeignIDTimestamp decodes the registration time embedded in a 24-hex
// mongo-style foreign id. The first 4 bytes, big-endian, are seconds since
// the Unix epoch.
func ForeignIDTimestamp(foreignID string) (time.Time, error) {
	if len(foreignID) != 24 {
		return time.Time{}, fmt.Errorf("foreign id %q: want 24 hex chars, got %d", foreignID, len(foreignID))
	}
	raw, err := hex.DecodeString(foreignID[:8])
	if err != nil {
		return time.Time{}, fmt.Errorf("foreign id %q: %w", foreignID, err)
	}
	secs := uint32(raw[0])<<24 | uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3])
	return time.Unix(int64(secs), 0).UTC(), nil
}

// EncodeTimestampPrefix is the inverse of ForeignIDTimestamp: it renders a
// time as the 8-hex-char prefix of a foreign id. Used only to verify the
// round-trip property in tests and diagnostics.
func EncodeTimestampPrefix(t time.Time) string {
	secs := uint32(t.Unix())
	raw := []byte{byte(secs >> 24), byte(secs >> 16), byte(secs >> 8), byte(secs)}
	return hex.EncodeToString(raw)
}
