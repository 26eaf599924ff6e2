// Package journey reconciles live train-run observations against persistent
// journey records: it maintains the event timetable, projects realtime
// times, infers cancellations when a run vanishes and chains continuations.
// All mutations of one journey are serialised through a per-journey lock.
package journey

import (
	"fmt"
	"time"

	"github.com/simtrack/sit-collector/pkg/dirty"
)

// EventType distinguishes arrivals from departures at a point.
type EventType string

const (
	EventArrival   EventType = "ARRIVAL"
	EventDeparture EventType = "DEPARTURE"
)

// TimeType is the precision of an event's realtime time.
type TimeType string

const (
	TimeSchedule   TimeType = "SCHEDULE"
	TimePrediction TimeType = "PREDICTION"
	TimeReal       TimeType = "REAL"
)

// StopType describes what kind of stop an event represents.
type StopType string

const (
	StopNone         StopType = "NONE"
	StopNonPassenger StopType = "NON_PASSENGER"
	StopPassenger    StopType = "PASSENGER"
)

// State is the lifecycle state of a run.
type State int

const (
	// StateUnseen: present in the timetable only, never observed live.
	StateUnseen State = iota
	// StateActive: currently observed in the live train listing.
	StateActive
	// StateGone: absent from enough consecutive listings; terminal decision pending.
	StateGone
	// StateCancelled: all playable events cancelled. Terminal.
	StateCancelled
	// StateCompleted: reached its terminal point. Terminal.
	StateCompleted
)

// Event is one scheduled or realised arrival/departure of a journey.
type Event struct {
	ID               string
	Index            int
	Type             EventType
	PointID          string
	PointName        string
	InPlayableBorder bool
	Scheduled        time.Time
	Realtime         *time.Time
	TimeType         TimeType
	Transport        map[string]any
	Stop             StopType

	ScheduledPlatform *int
	ScheduledTrack    *int
	RealtimePlatform  *int
	RealtimeTrack     *int

	Cancelled  bool
	Additional bool
}

// Journey is the reconciler's in-memory view of one run.
type Journey struct {
	ID          string
	RunID       string
	ServerID    string
	TrainNumber string
	TrainName   string
	Category    string
	ContinuesAs string

	FirstSeen      *time.Time
	LastSeen       *time.Time
	Cancelled      bool
	ContinuationID *string
	Events         []*Event

	state       State
	absences    int
	lastReached int // highest event index with a REAL time, -1 before any
	lastPointID string
	live        *liveState
}

// slotKey builds the scheduled-slot identity of the journey. The departure
// component is the wall time of the first scheduled departure (first event
// when the origin has none), so recurrences of the slot on later days
// resolve to the same key. Requires at least one event.
func (j *Journey) slotKey() string {
	first := j.Events[0]
	last := j.Events[len(j.Events)-1]
	departure := first.Scheduled
	for _, ev := range j.Events {
		if ev.Type == EventDeparture {
			departure = ev.Scheduled
			break
		}
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		j.Category, j.TrainNumber, first.PointName, last.PointName,
		departure.Format("15:04:05"))
}

// scheduleEnd returns the latest scheduled event time of the journey.
func (j *Journey) scheduleEnd() (time.Time, bool) {
	if len(j.Events) == 0 {
		return time.Time{}, false
	}
	return j.Events[len(j.Events)-1].Scheduled, true
}

// Position is a WGS84 train position.
type Position struct {
	Lat float64
	Lon float64
}

// SignalAhead is the next signal in front of a run. A zero SpeedLimitKmh
// means the signal imposes no limit.
type SignalAhead struct {
	ID            string
	DistanceM     float64
	SpeedLimitKmh uint32
}

// maxSignalDistanceM is the visibility horizon for next-signal reporting.
// Signals further out are published as "out of range".
const maxSignalDistanceM = 5000.0

// liveState holds the realtime-only attributes of an active run. They are
// never persisted; their diffs feed the realtime stream directly.
type liveState struct {
	group      *dirty.Group
	driver     *dirty.NullableField[string]
	speed      *dirty.Field[uint32]
	position   *dirty.Field[Position]
	nextSignal *dirty.NullableField[SignalAhead]
}

func newLiveState() *liveState {
	g := dirty.NewGroup()
	return &liveState{
		group:      g,
		driver:     dirty.NewNullableField[string](g, "driver", nil),
		speed:      dirty.NewField[uint32](g, "speed", 0),
		position:   dirty.NewField(g, "position", Position{}),
		nextSignal: dirty.NewNullableField[SignalAhead](g, "next_signal", nil),
	}
}

// Observation is one live sighting of a run by the active-train collector.
// Point ids are already resolved against the static provider; unresolvable
// references are dropped before they get here.
type Observation struct {
	RunID       string
	ServerID    string
	TrainNumber string

	Driver         *string // nil when the train is bot-driven
	SpeedKmh       uint32
	Position       Position
	CurrentPointID string // empty while between points
	NextSignal     *SignalAhead

	// PositionOnly marks a sighting from the cheap position listing: only
	// speed and position are trusted, everything else stays untouched.
	PositionOnly bool

	ServerNow time.Time
}

// TimetableRow is one resolved stop of a scheduled run.
type TimetableRow struct {
	PointID          string
	PointName        string
	InPlayableBorder bool
	Arrival          *time.Time
	Departure        *time.Time
	Stop             StopType
	Platform         *int
	Track            *int
	Line             string
	MaxSpeedKmh      int
}

// TimetableRun is the full schedule of one run as fetched by the timetable
// collector.
type TimetableRun struct {
	RunID       string
	ServerID    string
	TrainNumber string
	TrainName   string
	Category    string
	Label       string
	ContinuesAs string
	Rows        []TimetableRow
}

// UpdateKind mirrors the frame-level update type.
type UpdateKind int

const (
	KindAdd UpdateKind = iota
	KindUpdate
	KindRemove
)

// Delta is the reconciler's output for one mutated journey: the sparse set
// of realtime field changes plus a flag for event-list mutations. It is
// handed to the dispatcher only after the backing transaction committed.
type Delta struct {
	JourneyID    string
	RunID        string
	ServerID     string
	Kind         UpdateKind
	Changes      []dirty.Change
	EventUpdated bool
}

// Sink receives deltas for fan-out.
type Sink interface {
	JourneyChanged(d Delta)
}
