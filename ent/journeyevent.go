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
	"github.com/simtrack/sit-collector/ent/journeyevent"
)

// JourneyEvent is the model entity for the JourneyEvent schema.
type JourneyEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JourneyID holds the value of the "journey_id" field.
	JourneyID string `json:"journey_id,omitempty"`
	// Dense ordinal along route order, starting at 0
	EventIndex int `json:"event_index,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType journeyevent.EventType `json:"event_type,omitempty"`
	// PointID holds the value of the "point_id" field.
	PointID string `json:"point_id,omitempty"`
	// PointName holds the value of the "point_name" field.
	PointName string `json:"point_name,omitempty"`
	// True iff the point lies inside the server's playable polygon
	InPlayableBorder bool `json:"in_playable_border,omitempty"`
	// Server-local schedule time
	ScheduledTime time.Time `json:"scheduled_time,omitempty"`
	// RealtimeTime holds the value of the "realtime_time" field.
	RealtimeTime *time.Time `json:"realtime_time,omitempty"`
	// RealtimeTimeType holds the value of the "realtime_time_type" field.
	RealtimeTimeType journeyevent.RealtimeTimeType `json:"realtime_time_type,omitempty"`
	// Embedded descriptor: category/number/line/label/type/max speed
	Transport map[string]interface{} `json:"transport,omitempty"`
	// StopType holds the value of the "stop_type" field.
	StopType journeyevent.StopType `json:"stop_type,omitempty"`
	// ScheduledPlatform holds the value of the "scheduled_platform" field.
	ScheduledPlatform *int `json:"scheduled_platform,omitempty"`
	// ScheduledTrack holds the value of the "scheduled_track" field.
	ScheduledTrack *int `json:"scheduled_track,omitempty"`
	// RealtimePlatform holds the value of the "realtime_platform" field.
	RealtimePlatform *int `json:"realtime_platform,omitempty"`
	// RealtimeTrack holds the value of the "realtime_track" field.
	RealtimeTrack *int `json:"realtime_track,omitempty"`
	// Cancelled holds the value of the "cancelled" field.
	Cancelled bool `json:"cancelled,omitempty"`
	// Additional holds the value of the "additional" field.
	Additional bool `json:"additional,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JourneyEventQuery when eager-loading is set.
	Edges        JourneyEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JourneyEventEdges holds the relations/edges for other nodes in the graph.
type JourneyEventEdges struct {
	// Journey holds the value of the journey edge.
	Journey *Journey `json:"journey,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JourneyOrErr returns the Journey value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JourneyEventEdges) JourneyOrErr() (*Journey, error) {
	if e.Journey != nil {
		return e.Journey, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: journey.Label}
	}
	return nil, &NotLoadedError{edge: "journey"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JourneyEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journeyevent.FieldTransport:
			values[i] = new([]byte)
		case journeyevent.FieldInPlayableBorder, journeyevent.FieldCancelled, journeyevent.FieldAdditional:
			values[i] = new(sql.NullBool)
		case journeyevent.FieldEventIndex, journeyevent.FieldScheduledPlatform, journeyevent.FieldScheduledTrack, journeyevent.FieldRealtimePlatform, journeyevent.FieldRealtimeTrack:
			values[i] = new(sql.NullInt64)
		case journeyevent.FieldID, journeyevent.FieldJourneyID, journeyevent.FieldEventType, journeyevent.FieldPointID, journeyevent.FieldPointName, journeyevent.FieldRealtimeTimeType, journeyevent.FieldStopType:
			values[i] = new(sql.NullString)
		case journeyevent.FieldScheduledTime, journeyevent.FieldRealtimeTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JourneyEvent fields.
func (_m *JourneyEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journeyevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case journeyevent.FieldJourneyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field journey_id", values[i])
			} else if value.Valid {
				_m.JourneyID = value.String
			}
		case journeyevent.FieldEventIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_index", values[i])
			} else if value.Valid {
				_m.EventIndex = int(value.Int64)
			}
		case journeyevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = journeyevent.EventType(value.String)
			}
		case journeyevent.FieldPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field point_id", values[i])
			} else if value.Valid {
				_m.PointID = value.String
			}
		case journeyevent.FieldPointName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field point_name", values[i])
			} else if value.Valid {
				_m.PointName = value.String
			}
		case journeyevent.FieldInPlayableBorder:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field in_playable_border", values[i])
			} else if value.Valid {
				_m.InPlayableBorder = value.Bool
			}
		case journeyevent.FieldScheduledTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_time", values[i])
			} else if value.Valid {
				_m.ScheduledTime = value.Time
			}
		case journeyevent.FieldRealtimeTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field realtime_time", values[i])
			} else if value.Valid {
				_m.RealtimeTime = new(time.Time)
				*_m.RealtimeTime = value.Time
			}
		case journeyevent.FieldRealtimeTimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field realtime_time_type", values[i])
			} else if value.Valid {
				_m.RealtimeTimeType = journeyevent.RealtimeTimeType(value.String)
			}
		case journeyevent.FieldTransport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transport", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Transport); err != nil {
					return fmt.Errorf("unmarshal field transport: %w", err)
				}
			}
		case journeyevent.FieldStopType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stop_type", values[i])
			} else if value.Valid {
				_m.StopType = journeyevent.StopType(value.String)
			}
		case journeyevent.FieldScheduledPlatform:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_platform", values[i])
			} else if value.Valid {
				_m.ScheduledPlatform = new(int)
				*_m.ScheduledPlatform = int(value.Int64)
			}
		case journeyevent.FieldScheduledTrack:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_track", values[i])
			} else if value.Valid {
				_m.ScheduledTrack = new(int)
				*_m.ScheduledTrack = int(value.Int64)
			}
		case journeyevent.FieldRealtimePlatform:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field realtime_platform", values[i])
			} else if value.Valid {
				_m.RealtimePlatform = new(int)
				*_m.RealtimePlatform = int(value.Int64)
			}
		case journeyevent.FieldRealtimeTrack:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field realtime_track", values[i])
			} else if value.Valid {
				_m.RealtimeTrack = new(int)
				*_m.RealtimeTrack = int(value.Int64)
			}
		case journeyevent.FieldCancelled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled", values[i])
			} else if value.Valid {
				_m.Cancelled = value.Bool
			}
		case journeyevent.FieldAdditional:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field additional", values[i])
			} else if value.Valid {
				_m.Additional = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JourneyEvent.
// This includes values selected through modifiers, order, etc.
func (_m *JourneyEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJourney queries the "journey" edge of the JourneyEvent entity.
func (_m *JourneyEvent) QueryJourney() *JourneyQuery {
	return NewJourneyEventClient(_m.config).QueryJourney(_m)
}

// Update returns a builder for updating this JourneyEvent.
// Note that you need to call JourneyEvent.Unwrap() before calling this method if this JourneyEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JourneyEvent) Update() *JourneyEventUpdateOne {
	return NewJourneyEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JourneyEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JourneyEvent) Unwrap() *JourneyEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JourneyEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JourneyEvent) String() string {
	var builder strings.Builder
	builder.WriteString("JourneyEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("journey_id=")
	builder.WriteString(_m.JourneyID)
	builder.WriteString(", ")
	builder.WriteString("event_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventIndex))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("point_id=")
	builder.WriteString(_m.PointID)
	builder.WriteString(", ")
	builder.WriteString("point_name=")
	builder.WriteString(_m.PointName)
	builder.WriteString(", ")
	builder.WriteString("in_playable_border=")
	builder.WriteString(fmt.Sprintf("%v", _m.InPlayableBorder))
	builder.WriteString(", ")
	builder.WriteString("scheduled_time=")
	builder.WriteString(_m.ScheduledTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RealtimeTime; v != nil {
		builder.WriteString("realtime_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("realtime_time_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RealtimeTimeType))
	builder.WriteString(", ")
	builder.WriteString("transport=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transport))
	builder.WriteString(", ")
	builder.WriteString("stop_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StopType))
	builder.WriteString(", ")
	if v := _m.ScheduledPlatform; v != nil {
		builder.WriteString("scheduled_platform=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScheduledTrack; v != nil {
		builder.WriteString("scheduled_track=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RealtimePlatform; v != nil {
		builder.WriteString("realtime_platform=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RealtimeTrack; v != nil {
		builder.WriteString("realtime_track=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("cancelled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cancelled))
	builder.WriteString(", ")
	builder.WriteString("additional=")
	builder.WriteString(fmt.Sprintf("%v", _m.Additional))
	builder.WriteByte(')')
	return builder.String()
}

// JourneyEvents is a parsable slice of JourneyEvent.
type JourneyEvents []*JourneyEvent
