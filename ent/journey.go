// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// Journey is the model entity for the Journey schema.
type Journey struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Upstream run identifier
	RunID string `json:"run_id,omitempty"`
	// ServerID holds the value of the "server_id" field.
	ServerID string `json:"server_id,omitempty"`
	// TrainNumber holds the value of the "train_number" field.
	TrainNumber string `json:"train_number,omitempty"`
	// TrainName holds the value of the "train_name" field.
	TrainName string `json:"train_name,omitempty"`
	// Transport category derived from the train type code
	Category string `json:"category,omitempty"`
	// Null until the run first appears live
	FirstSeenTime *time.Time `json:"first_seen_time,omitempty"`
	// Set when the run disappears from the live listing
	LastSeenTime *time.Time `json:"last_seen_time,omitempty"`
	// Cancelled holds the value of the "cancelled" field.
	Cancelled bool `json:"cancelled,omitempty"`
	// The journey this one flows into at its terminal point
	ContinuationJourneyID *string `json:"continuation_journey_id,omitempty"`
	// Canonical-JSON checksum of the reconciled state, for update suppression
	StateChecksum string `json:"state_checksum,omitempty"`
	// Deleted holds the value of the "deleted" field.
	Deleted bool `json:"deleted,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JourneyQuery when eager-loading is set.
	Edges        JourneyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JourneyEdges holds the relations/edges for other nodes in the graph.
type JourneyEdges struct {
	// Events holds the value of the events edge.
	Events []*JourneyEvent `json:"events,omitempty"`
	// Sequence holds the value of the sequence edge.
	Sequence *VehicleSequence `json:"sequence,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e JourneyEdges) EventsOrErr() ([]*JourneyEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// SequenceOrErr returns the Sequence value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JourneyEdges) SequenceOrErr() (*VehicleSequence, error) {
	if e.Sequence != nil {
		return e.Sequence, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: vehiclesequence.Label}
	}
	return nil, &NotLoadedError{edge: "sequence"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Journey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journey.FieldCancelled, journey.FieldDeleted:
			values[i] = new(sql.NullBool)
		case journey.FieldID, journey.FieldRunID, journey.FieldServerID, journey.FieldTrainNumber, journey.FieldTrainName, journey.FieldCategory, journey.FieldContinuationJourneyID, journey.FieldStateChecksum:
			values[i] = new(sql.NullString)
		case journey.FieldFirstSeenTime, journey.FieldLastSeenTime, journey.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Journey fields.
func (_m *Journey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journey.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case journey.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case journey.FieldServerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_id", values[i])
			} else if value.Valid {
				_m.ServerID = value.String
			}
		case journey.FieldTrainNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field train_number", values[i])
			} else if value.Valid {
				_m.TrainNumber = value.String
			}
		case journey.FieldTrainName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field train_name", values[i])
			} else if value.Valid {
				_m.TrainName = value.String
			}
		case journey.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case journey.FieldFirstSeenTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_time", values[i])
			} else if value.Valid {
				_m.FirstSeenTime = new(time.Time)
				*_m.FirstSeenTime = value.Time
			}
		case journey.FieldLastSeenTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_time", values[i])
			} else if value.Valid {
				_m.LastSeenTime = new(time.Time)
				*_m.LastSeenTime = value.Time
			}
		case journey.FieldCancelled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled", values[i])
			} else if value.Valid {
				_m.Cancelled = value.Bool
			}
		case journey.FieldContinuationJourneyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field continuation_journey_id", values[i])
			} else if value.Valid {
				_m.ContinuationJourneyID = new(string)
				*_m.ContinuationJourneyID = value.String
			}
		case journey.FieldStateChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_checksum", values[i])
			} else if value.Valid {
				_m.StateChecksum = value.String
			}
		case journey.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				_m.Deleted = value.Bool
			}
		case journey.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Journey.
// This includes values selected through modifiers, order, etc.
func (_m *Journey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Journey entity.
func (_m *Journey) QueryEvents() *JourneyEventQuery {
	return NewJourneyClient(_m.config).QueryEvents(_m)
}

// QuerySequence queries the "sequence" edge of the Journey entity.
func (_m *Journey) QuerySequence() *VehicleSequenceQuery {
	return NewJourneyClient(_m.config).QuerySequence(_m)
}

// Update returns a builder for updating this Journey.
// Note that you need to call Journey.Unwrap() before calling this method if this Journey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Journey) Update() *JourneyUpdateOne {
	return NewJourneyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Journey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Journey) Unwrap() *Journey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Journey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Journey) String() string {
	var builder strings.Builder
	builder.WriteString("Journey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("server_id=")
	builder.WriteString(_m.ServerID)
	builder.WriteString(", ")
	builder.WriteString("train_number=")
	builder.WriteString(_m.TrainNumber)
	builder.WriteString(", ")
	builder.WriteString("train_name=")
	builder.WriteString(_m.TrainName)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	if v := _m.FirstSeenTime; v != nil {
		builder.WriteString("first_seen_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSeenTime; v != nil {
		builder.WriteString("last_seen_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("cancelled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cancelled))
	builder.WriteString(", ")
	if v := _m.ContinuationJourneyID; v != nil {
		builder.WriteString("continuation_journey_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("state_checksum=")
	builder.WriteString(_m.StateChecksum)
	builder.WriteString(", ")
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deleted))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Journeys is a parsable slice of Journey.
type Journeys []*Journey
