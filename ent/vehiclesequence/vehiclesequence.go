// Code generated by ent, DO NOT EDIT.

package vehiclesequence

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the vehiclesequence type in the database.
	Label = "vehicle_sequence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sequence_id"
	// FieldJourneyID holds the string denoting the journey_id field in the database.
	FieldJourneyID = "journey_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVehicles holds the string denoting the vehicles field in the database.
	FieldVehicles = "vehicles"
	// FieldResolveKey holds the string denoting the resolve_key field in the database.
	FieldResolveKey = "resolve_key"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// EdgeJourney holds the string denoting the journey edge name in mutations.
	EdgeJourney = "journey"
	// JourneyFieldID holds the string denoting the ID field of the Journey.
	JourneyFieldID = "journey_id"
	// Table holds the table name of the vehiclesequence in the database.
	Table = "vehicle_sequences"
	// JourneyTable is the table that holds the journey relation/edge.
	JourneyTable = "vehicle_sequences"
	// JourneyInverseTable is the table name for the Journey entity.
	// It exists in this package in order to avoid circular dependency with the "journey" package.
	JourneyInverseTable = "journeys"
	// JourneyColumn is the table column denoting the journey relation/edge.
	JourneyColumn = "journey_id"
)

// Columns holds all SQL columns for vehiclesequence fields.
var Columns = []string{
	FieldID,
	FieldJourneyID,
	FieldStatus,
	FieldVehicles,
	FieldResolveKey,
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
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusPREDICTION Status = "PREDICTION"
	StatusREAL       Status = "REAL"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPREDICTION, StatusREAL:
		return nil
	default:
		return fmt.Errorf("vehiclesequence: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the VehicleSequence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJourneyID orders the results by the journey_id field.
func ByJourneyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJourneyID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResolveKey orders the results by the resolve_key field.
func ByResolveKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolveKey, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, JourneyTable, JourneyColumn),
	)
}
