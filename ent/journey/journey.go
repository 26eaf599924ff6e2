// Code generated by ent, DO NOT EDIT.

package journey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the journey type in the database.
	Label = "journey"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "journey_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldServerID holds the string denoting the server_id field in the database.
	FieldServerID = "server_id"
	// FieldTrainNumber holds the string denoting the train_number field in the database.
	FieldTrainNumber = "train_number"
	// FieldTrainName holds the string denoting the train_name field in the database.
	FieldTrainName = "train_name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldFirstSeenTime holds the string denoting the first_seen_time field in the database.
	FieldFirstSeenTime = "first_seen_time"
	// FieldLastSeenTime holds the string denoting the last_seen_time field in the database.
	FieldLastSeenTime = "last_seen_time"
	// FieldCancelled holds the string denoting the cancelled field in the database.
	FieldCancelled = "cancelled"
	// FieldContinuationJourneyID holds the string denoting the continuation_journey_id field in the database.
	FieldContinuationJourneyID = "continuation_journey_id"
	// FieldStateChecksum holds the string denoting the state_checksum field in the database.
	FieldStateChecksum = "state_checksum"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeSequence holds the string denoting the sequence edge name in mutations.
	EdgeSequence = "sequence"
	// JourneyEventFieldID holds the string denoting the ID field of the JourneyEvent.
	JourneyEventFieldID = "event_id"
	// VehicleSequenceFieldID holds the string denoting the ID field of the VehicleSequence.
	VehicleSequenceFieldID = "sequence_id"
	// Table holds the table name of the journey in the database.
	Table = "journeys"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "journey_events"
	// EventsInverseTable is the table name for the JourneyEvent entity.
	// It exists in this package in order to avoid circular dependency with the "journeyevent" package.
	EventsInverseTable = "journey_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "journey_id"
	// SequenceTable is the table that holds the sequence relation/edge.
	SequenceTable = "vehicle_sequences"
	// SequenceInverseTable is the table name for the VehicleSequence entity.
	// It exists in this package in order to avoid circular dependency with the "vehiclesequence" package.
	SequenceInverseTable = "vehicle_sequences"
	// SequenceColumn is the table column denoting the sequence relation/edge.
	SequenceColumn = "journey_id"
)

// Columns holds all SQL columns for journey fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldServerID,
	FieldTrainNumber,
	FieldTrainName,
	FieldCategory,
	FieldFirstSeenTime,
	FieldLastSeenTime,
	FieldCancelled,
	FieldContinuationJourneyID,
	FieldStateChecksum,
	FieldDeleted,
	FieldUpdateTime,
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
	// DefaultCancelled holds the default value on creation for the "cancelled" field.
	DefaultCancelled bool
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
)

// OrderOption defines the ordering options for the Journey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByServerID orders the results by the server_id field.
func ByServerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerID, opts...).ToFunc()
}

// ByTrainNumber orders the results by the train_number field.
func ByTrainNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrainNumber, opts...).ToFunc()
}

// ByTrainName orders the results by the train_name field.
func ByTrainName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrainName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByFirstSeenTime orders the results by the first_seen_time field.
func ByFirstSeenTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenTime, opts...).ToFunc()
}

// ByLastSeenTime orders the results by the last_seen_time field.
func ByLastSeenTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenTime, opts...).ToFunc()
}

// ByCancelled orders the results by the cancelled field.
func ByCancelled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelled, opts...).ToFunc()
}

// ByContinuationJourneyID orders the results by the continuation_journey_id field.
func ByContinuationJourneyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContinuationJourneyID, opts...).ToFunc()
}

// ByStateChecksum orders the results by the state_checksum field.
func ByStateChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateChecksum, opts...).ToFunc()
}

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySequenceField orders the results by sequence field.
func BySequenceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSequenceStep(), sql.OrderByField(field, opts...))
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, JourneyEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newSequenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SequenceInverseTable, VehicleSequenceFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SequenceTable, SequenceColumn),
	)
}
