// Code generated by ent, DO NOT EDIT.

package journeyevent

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the journeyevent type in the database.
	Label = "journey_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldJourneyID holds the string denoting the journey_id field in the database.
	FieldJourneyID = "journey_id"
	// FieldEventIndex holds the string denoting the event_index field in the database.
	FieldEventIndex = "event_index"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPointID holds the string denoting the point_id field in the database.
	FieldPointID = "point_id"
	// FieldPointName holds the string denoting the point_name field in the database.
	FieldPointName = "point_name"
	// FieldInPlayableBorder holds the string denoting the in_playable_border field in the database.
	FieldInPlayableBorder = "in_playable_border"
	// FieldScheduledTime holds the string denoting the scheduled_time field in the database.
	FieldScheduledTime = "scheduled_time"
	// FieldRealtimeTime holds the string denoting the realtime_time field in the database.
	FieldRealtimeTime = "realtime_time"
	// FieldRealtimeTimeType holds the string denoting the realtime_time_type field in the database.
	FieldRealtimeTimeType = "realtime_time_type"
	// FieldTransport holds the string denoting the transport field in the database.
	FieldTransport = "transport"
	// FieldStopType holds the string denoting the stop_type field in the database.
	FieldStopType = "stop_type"
	// FieldScheduledPlatform holds the string denoting the scheduled_platform field in the database.
	FieldScheduledPlatform = "scheduled_platform"
	// FieldScheduledTrack holds the string denoting the scheduled_track field in the database.
	FieldScheduledTrack = "scheduled_track"
	// FieldRealtimePlatform holds the string denoting the realtime_platform field in the database.
	FieldRealtimePlatform = "realtime_platform"
	// FieldRealtimeTrack holds the string denoting the realtime_track field in the database.
	FieldRealtimeTrack = "realtime_track"
	// FieldCancelled holds the string denoting the cancelled field in the database.
	FieldCancelled = "cancelled"
	// FieldAdditional holds the string denoting the additional field in the database.
	FieldAdditional = "additional"
	// EdgeJourney holds the string denoting the journey edge name in mutations.
	EdgeJourney = "journey"
	// JourneyFieldID holds the string denoting the ID field of the Journey.
	JourneyFieldID = "journey_id"
	// Table holds the table name of the journeyevent in the database.
	Table = "journey_events"
	// JourneyTable is the table that holds the journey relation/edge.
	JourneyTable = "journey_events"
	// JourneyInverseTable is the table name for the Journey entity.
	// It exists in this package in order to avoid circular dependency with the "journey" package.
	JourneyInverseTable = "journeys"
	// JourneyColumn is the table column denoting the journey relation/edge.
	JourneyColumn = "journey_id"
)

// Columns holds all SQL columns for journeyevent fields.
var Columns = []string{
	FieldID,
	FieldJourneyID,
	FieldEventIndex,
	FieldEventType,
	FieldPointID,
	FieldPointName,
	FieldInPlayableBorder,
	FieldScheduledTime,
	FieldRealtimeTime,
	FieldRealtimeTimeType,
	FieldTransport,
	FieldStopType,
	FieldScheduledPlatform,
	FieldScheduledTrack,
	FieldRealtimePlatform,
	FieldRealtimeTrack,
	FieldCancelled,
	FieldAdditional,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EventIndexValidator is a validator for the "event_index" field. It is called by the builders before save.
	EventIndexValidator func(int) error
	// DefaultInPlayableBorder holds the default value on creation for the "in_playable_border" field.
	DefaultInPlayableBorder bool
	// DefaultCancelled holds the default value on creation for the "cancelled" field.
	DefaultCancelled bool
	// DefaultAdditional holds the default value on creation for the "additional" field.
	DefaultAdditional bool
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeARRIVAL   EventType = "ARRIVAL"
	EventTypeDEPARTURE EventType = "DEPARTURE"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeARRIVAL, EventTypeDEPARTURE:
		return nil
	default:
		return fmt.Errorf("journeyevent: invalid enum value for event_type field: %q", et)
	}
}

// RealtimeTimeType defines the type for the "realtime_time_type" enum field.
type RealtimeTimeType string

// RealtimeTimeTypeSCHEDULE is the default value of the RealtimeTimeType enum.
const DefaultRealtimeTimeType = RealtimeTimeTypeSCHEDULE

// RealtimeTimeType values.
const (
	RealtimeTimeTypeSCHEDULE   RealtimeTimeType = "SCHEDULE"
	RealtimeTimeTypePREDICTION RealtimeTimeType = "PREDICTION"
	RealtimeTimeTypeREAL       RealtimeTimeType = "REAL"
)

func (rtt RealtimeTimeType) String() string {
	return string(rtt)
}

// RealtimeTimeTypeValidator is a validator for the "realtime_time_type" field enum values. It is called by the builders before save.
func RealtimeTimeTypeValidator(rtt RealtimeTimeType) error {
	switch rtt {
	case RealtimeTimeTypeSCHEDULE, RealtimeTimeTypePREDICTION, RealtimeTimeTypeREAL:
		return nil
	default:
		return fmt.Errorf("journeyevent: invalid enum value for realtime_time_type field: %q", rtt)
	}
}

// StopType defines the type for the "stop_type" enum field.
type StopType string

// StopTypeNONE is the default value of the StopType enum.
const DefaultStopType = StopTypeNONE

// StopType values.
const (
	StopTypeNONE          StopType = "NONE"
	StopTypeNON_PASSENGER StopType = "NON_PASSENGER"
	StopTypePASSENGER     StopType = "PASSENGER"
)

func (st StopType) String() string {
	return string(st)
}

// StopTypeValidator is a validator for the "stop_type" field enum values. It is called by the builders before save.
func StopTypeValidator(st StopType) error {
	switch st {
	case StopTypeNONE, StopTypeNON_PASSENGER, StopTypePASSENGER:
		return nil
	default:
		return fmt.Errorf("journeyevent: invalid enum value for stop_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the JourneyEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJourneyID orders the results by the journey_id field.
func ByJourneyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJourneyID, opts...).ToFunc()
}

// ByEventIndex orders the results by the event_index field.
func ByEventIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventIndex, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByPointID orders the results by the point_id field.
func ByPointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointID, opts...).ToFunc()
}

// ByPointName orders the results by the point_name field.
func ByPointName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointName, opts...).ToFunc()
}

// ByInPlayableBorder orders the results by the in_playable_border field.
func ByInPlayableBorder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInPlayableBorder, opts...).ToFunc()
}

// ByScheduledTime orders the results by the scheduled_time field.
func ByScheduledTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledTime, opts...).ToFunc()
}

// ByRealtimeTime orders the results by the realtime_time field.
func ByRealtimeTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealtimeTime, opts...).ToFunc()
}

// ByRealtimeTimeType orders the results by the realtime_time_type field.
func ByRealtimeTimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealtimeTimeType, opts...).ToFunc()
}

// ByStopType orders the results by the stop_type field.
func ByStopType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopType, opts...).ToFunc()
}

// ByScheduledPlatform orders the results by the scheduled_platform field.
func ByScheduledPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledPlatform, opts...).ToFunc()
}

// ByScheduledTrack orders the results by the scheduled_track field.
func ByScheduledTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledTrack, opts...).ToFunc()
}

// ByRealtimePlatform orders the results by the realtime_platform field.
func ByRealtimePlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealtimePlatform, opts...).ToFunc()
}

// ByRealtimeTrack orders the results by the realtime_track field.
func ByRealtimeTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealtimeTrack, opts...).ToFunc()
}

// ByCancelled orders the results by the cancelled field.
func ByCancelled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelled, opts...).ToFunc()
}

// ByAdditional orders the results by the additional field.
func ByAdditional(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdditional, opts...).ToFunc()
}

// ByJourneyField orders the results by journey field.
func ByJourneyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJourneyStep(), sql.OrderByField(field, opts...))
	}
}
func newJourneyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JourneyInverseTable, JourneyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JourneyTable, JourneyColumn),
	)
}
