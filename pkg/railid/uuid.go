// Package railid derives deterministic identities and decodes the upstream
// API's identifier formats (mongo-style foreign ids, roman platform numbers,
// three-letter train type codes).
package railid

import (
	"fmt"

	"github.com/google/uuid"
)

// Fixed UUIDv5 namespaces. These encode entity identity across deployments
// and must never change.
var (
	NamespaceServer       = uuid.MustParse("8fb462f5-82ab-4096-8538-fff7a96a0094")
	NamespaceDispatchPost = uuid.MustParse("07b68676-9816-48ef-bd8a-cf15e3f38f4e")
	NamespaceJourneyEvent = uuid.MustParse("e869adba-bca7-485f-8c0c-edc61582b4f4")
	NamespaceJourney      = uuid.MustParse("c2b77bd5-2d95-4b19-9431-9d91e5502a4d")
)

// ServerID derives the persistent server id from the upstream foreign id.
func ServerID(foreignID string) string {
	return uuid.NewSHA1(NamespaceServer, []byte(foreignID)).String()
}

// DispatchPostID derives the persistent dispatch post id from the upstream foreign id.
func DispatchPostID(foreignID string) string {
	return uuid.NewSHA1(NamespaceDispatchPost, []byte(foreignID)).String()
}

// JourneyID derives the persistent journey id from the upstream run identifier.
func JourneyID(runID string) string {
	return uuid.NewSHA1(NamespaceJourney, []byte(runID)).String()
}

// JourneyEventID derives the persistent event id from the owning journey, the
// ordinal index along the route and the event type ("ARRIVAL"/"DEPARTURE").
// The triple is the event's identity; re-deriving it on every tick is what
// makes event upserts idempotent.
func JourneyEventID(journeyID string, index int, eventType string) string {
	name := fmt.Sprintf("%s|%d|%s", journeyID, index, eventType)
	return uuid.NewSHA1(NamespaceJourneyEvent, []byte(name)).String()
}

// SequenceID mints a fresh UUIDv7 for a vehicle sequence. Sequences are the
// only entity without a deterministic key; the resolve key (see journey
// package) carries identity across runs instead.
func SequenceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.New().String()
	}
	return id.String()
}
