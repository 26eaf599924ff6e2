package journey

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// StateDigest is the cached checksum of a journey's reconciled state,
// keyed by the upstream run id. When the freshly computed checksum matches
// the cached one, persistence and fan-out are skipped for the tick.
type StateDigest struct {
	RunID    string `json:"run_id"`
	Checksum string `json:"checksum"`
	Version  int64  `json:"version"`
}

// Checksum returns the canonical-JSON SHA-256 of the journey's persistable
// state. Keys are emitted in sorted order and null-valued keys are
// suppressed, so semantically identical states always hash identically.
func (j *Journey) Checksum() string {
	state := map[string]any{
		"cancelled":    j.Cancelled,
		"category":     j.Category,
		"continuation": j.ContinuationID,
		"events":       eventStates(j.Events),
		"first_seen":   timeState(j.FirstSeen),
		"last_seen":    timeState(j.LastSeen),
		"run_id":       j.RunID,
		"server_id":    j.ServerID,
		"train_name":   j.TrainName,
		"train_number": j.TrainNumber,
	}
	var b strings.Builder
	writeCanonical(&b, state)
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func eventStates(events []*Event) []any {
	out := make([]any, 0, len(events))
	for _, ev := range events {
		out = append(out, map[string]any{
			"additional":         ev.Additional,
			"cancelled":          ev.Cancelled,
			"index":              ev.Index,
			"playable":           ev.InPlayableBorder,
			"point_id":           ev.PointID,
			"realtime":           timeState(ev.Realtime),
			"realtime_platform":  intState(ev.RealtimePlatform),
			"realtime_track":     intState(ev.RealtimeTrack),
			"scheduled":          ev.Scheduled.UTC().Format(time.RFC3339),
			"scheduled_platform": intState(ev.ScheduledPlatform),
			"scheduled_track":    intState(ev.ScheduledTrack),
			"stop":               string(ev.Stop),
			"time_type":          string(ev.TimeType),
			"transport":          ev.Transport,
			"type":               string(ev.Type),
		})
	}
	return out
}

func timeState(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func intState(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// writeCanonical emits v as canonical JSON: object keys sorted, null-valued
// object members suppressed.
func writeCanonical(b *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k, inner := range val {
			if isNull(inner) {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSONString(b, k)
			b.WriteByte(':')
			writeCanonical(b, val[k])
		}
		b.WriteByte('}')
	case []any:
		b.WriteByte('[')
		for i, inner := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, inner)
		}
		b.WriteByte(']')
	case string:
		writeJSONString(b, val)
	case bool:
		if val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *string:
		if val == nil {
			b.WriteString("null")
		} else {
			writeJSONString(b, *val)
		}
	default:
		// Numbers and anything else take the encoding/json rendering.
		raw, err := json.Marshal(val)
		if err != nil {
			b.WriteString(fmt.Sprintf("%q", fmt.Sprint(val)))
			return
		}
		b.Write(raw)
	}
}

func isNull(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case *string:
		return val == nil
	}
	return false
}

func writeJSONString(b *strings.Builder, s string) {
	raw, _ := json.Marshal(s)
	b.Write(raw)
}
