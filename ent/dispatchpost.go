// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/simtrack/sit-collector/ent/dispatchpost"
)

// DispatchPost is the model entity for the DispatchPost schema.
type DispatchPost struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// 24-hex upstream identifier
	ForeignID string `json:"foreign_id,omitempty"`
	// ServerID holds the value of the "server_id" field.
	ServerID string `json:"server_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Resolved by name against the static point provider
	PointID *string `json:"point_id,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude float64 `json:"longitude,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty int `json:"difficulty,omitempty"`
	// MainImageURL holds the value of the "main_image_url" field.
	MainImageURL string `json:"main_image_url,omitempty"`
	// DetailImageURL holds the value of the "detail_image_url" field.
	DetailImageURL string `json:"detail_image_url,omitempty"`
	// Deleted holds the value of the "deleted" field.
	Deleted bool `json:"deleted,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime   time.Time `json:"update_time,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DispatchPost) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dispatchpost.FieldDeleted:
			values[i] = new(sql.NullBool)
		case dispatchpost.FieldLatitude, dispatchpost.FieldLongitude:
			values[i] = new(sql.NullFloat64)
		case dispatchpost.FieldDifficulty:
			values[i] = new(sql.NullInt64)
		case dispatchpost.FieldID, dispatchpost.FieldForeignID, dispatchpost.FieldServerID, dispatchpost.FieldName, dispatchpost.FieldPointID, dispatchpost.FieldMainImageURL, dispatchpost.FieldDetailImageURL:
			values[i] = new(sql.NullString)
		case dispatchpost.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DispatchPost fields.
func (_m *DispatchPost) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dispatchpost.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dispatchpost.FieldForeignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field foreign_id", values[i])
			} else if value.Valid {
				_m.ForeignID = value.String
			}
		case dispatchpost.FieldServerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_id", values[i])
			} else if value.Valid {
				_m.ServerID = value.String
			}
		case dispatchpost.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case dispatchpost.FieldPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field point_id", values[i])
			} else if value.Valid {
				_m.PointID = new(string)
				*_m.PointID = value.String
			}
		case dispatchpost.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case dispatchpost.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		case dispatchpost.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case dispatchpost.FieldMainImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field main_image_url", values[i])
			} else if value.Valid {
				_m.MainImageURL = value.String
			}
		case dispatchpost.FieldDetailImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail_image_url", values[i])
			} else if value.Valid {
				_m.DetailImageURL = value.String
			}
		case dispatchpost.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				_m.Deleted = value.Bool
			}
		case dispatchpost.FieldUpdateTime:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DispatchPost.
// This includes values selected through modifiers, order, etc.
func (_m *DispatchPost) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DispatchPost.
// Note that you need to call DispatchPost.Unwrap() before calling this method if this DispatchPost
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DispatchPost) Update() *DispatchPostUpdateOne {
	return NewDispatchPostClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DispatchPost entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DispatchPost) Unwrap() *DispatchPost {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DispatchPost is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DispatchPost) String() string {
	var builder strings.Builder
	builder.WriteString("DispatchPost(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("foreign_id=")
	builder.WriteString(_m.ForeignID)
	builder.WriteString(", ")
	builder.WriteString("server_id=")
	builder.WriteString(_m.ServerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.PointID; v != nil {
		builder.WriteString("point_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("main_image_url=")
	builder.WriteString(_m.MainImageURL)
	builder.WriteString(", ")
	builder.WriteString("detail_image_url=")
	builder.WriteString(_m.DetailImageURL)
	builder.WriteString(", ")
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deleted))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DispatchPosts is a parsable slice of DispatchPost.
type DispatchPosts []*DispatchPost
