package collector

import (
	"github.com/simtrack/sit-collector/pkg/dirty"
	"github.com/simtrack/sit-collector/pkg/journey"
)

// ServerDelta is the sparse change set of one server, built from the dirty
// tracker against the cached snapshot. An ADD carries the full field set so
// a reappearing server re-asserts its state.
type ServerDelta struct {
	ServerID string
	Kind     journey.UpdateKind
	Changes  []dirty.Change
}

// PostDelta is the change notification for one dispatch post. The
// dispatcher list is always the complete current set when it changed.
type PostDelta struct {
	PostID             string
	ServerID           string
	Kind               journey.UpdateKind
	Dispatchers        []string
	DispatchersChanged bool
}

// Events is the fan-out surface the collectors publish into, implemented by
// the update dispatcher. Journey deltas travel separately via journey.Sink.
type Events interface {
	ServerChanged(d ServerDelta)
	DispatchPostChanged(d PostDelta)
}
