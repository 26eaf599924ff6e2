// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// VehicleSequence is the model entity for the VehicleSequence schema.
type VehicleSequence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JourneyID holds the value of the "journey_id" field.
	JourneyID string `json:"journey_id,omitempty"`
	// Status holds the value of the "status" field.
	Status vehiclesequence.Status `json:"status,omitempty"`
	// Railcar references with per-vehicle loads and optional named locomotives
	Vehicles []map[string]interface{} `json:"vehicles,omitempty"`
	// category‖number‖origin‖destination‖departure-time
	ResolveKey string `json:"resolve_key,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VehicleSequenceQuery when eager-loading is set.
	Edges        VehicleSequenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VehicleSequenceEdges holds the relations/edges for other nodes in the graph.
type VehicleSequenceEdges struct {
	// Journey holds the value of the journey edge.
	Journey *Journey `json:"journey,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JourneyOrErr returns the Journey value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VehicleSequenceEdges) JourneyOrErr() (*Journey, error) {
	if e.Journey != nil {
		return e.Journey, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: journey.Label}
	}
	return nil, &NotLoadedError{edge: "journey"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VehicleSequence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vehiclesequence.FieldVehicles:
			values[i] = new([]byte)
		case vehiclesequence.FieldID, vehiclesequence.FieldJourneyID, vehiclesequence.FieldStatus, vehiclesequence.FieldResolveKey:
			values[i] = new(sql.NullString)
		case vehiclesequence.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VehicleSequence fields.
func (_m *VehicleSequence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vehiclesequence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case vehiclesequence.FieldJourneyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field journey_id", values[i])
			} else if value.Valid {
				_m.JourneyID = value.String
			}
		case vehiclesequence.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = vehiclesequence.Status(value.String)
			}
		case vehiclesequence.FieldVehicles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vehicles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Vehicles); err != nil {
					return fmt.Errorf("unmarshal field vehicles: %w", err)
				}
			}
		case vehiclesequence.FieldResolveKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolve_key", values[i])
			} else if value.Valid {
				_m.ResolveKey = value.String
			}
		case vehiclesequence.FieldUpdateTime:
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

// Value returns the ent.Value that was dynamically selected and assigned to the VehicleSequence.
// This includes values selected through modifiers, order, etc.
func (_m *VehicleSequence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJourney queries the "journey" edge of the VehicleSequence entity.
func (_m *VehicleSequence) QueryJourney() *JourneyQuery {
	return NewVehicleSequenceClient(_m.config).QueryJourney(_m)
}

// Update returns a builder for updating this VehicleSequence.
// Note that you need to call VehicleSequence.Unwrap() before calling this method if this VehicleSequence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VehicleSequence) Update() *VehicleSequenceUpdateOne {
	return NewVehicleSequenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VehicleSequence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VehicleSequence) Unwrap() *VehicleSequence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VehicleSequence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VehicleSequence) String() string {
	var builder strings.Builder
	builder.WriteString("VehicleSequence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("journey_id=")
	builder.WriteString(_m.JourneyID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("vehicles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vehicles))
	builder.WriteString(", ")
	builder.WriteString("resolve_key=")
	builder.WriteString(_m.ResolveKey)
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VehicleSequences is a parsable slice of VehicleSequence.
type VehicleSequences []*VehicleSequence
