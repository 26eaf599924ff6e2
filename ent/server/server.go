// Code generated by ent, DO NOT EDIT.

package server

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the server type in the database.
	Label = "server"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "server_id"
	// FieldForeignID holds the string denoting the foreign_id field in the database.
	FieldForeignID = "foreign_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldScenery holds the string denoting the scenery field in the database.
	FieldScenery = "scenery"
	// FieldUtcOffsetHours holds the string denoting the utc_offset_hours field in the database.
	FieldUtcOffsetHours = "utc_offset_hours"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// FieldRegisteredSince holds the string denoting the registered_since field in the database.
	FieldRegisteredSince = "registered_since"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// Table holds the table name of the server in the database.
	Table = "servers"
)

// Columns holds all SQL columns for server fields.
var Columns = []string{
	FieldID,
	FieldForeignID,
	FieldCode,
	FieldRegion,
	FieldScenery,
	FieldUtcOffsetHours,
	FieldLanguage,
	FieldTags,
	FieldDeleted,
	FieldRegisteredSince,
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
	// DefaultUtcOffsetHours holds the default value on creation for the "utc_offset_hours" field.
	DefaultUtcOffsetHours int
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
)

// Region defines the type for the "region" enum field.
type Region string

// Region values.
const (
	RegionASIA     Region = "ASIA"
	RegionEUROPE   Region = "EUROPE"
	RegionUS_NORTH Region = "US_NORTH"
)

func (r Region) String() string {
	return string(r)
}

// RegionValidator is a validator for the "region" field enum values. It is called by the builders before save.
func RegionValidator(r Region) error {
	switch r {
	case RegionASIA, RegionEUROPE, RegionUS_NORTH:
		return nil
	default:
		return fmt.Errorf("server: invalid enum value for region field: %q", r)
	}
}

// OrderOption defines the ordering options for the Server queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByForeignID orders the results by the foreign_id field.
func ByForeignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForeignID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByScenery orders the results by the scenery field.
func ByScenery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenery, opts...).ToFunc()
}

// ByUtcOffsetHours orders the results by the utc_offset_hours field.
func ByUtcOffsetHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtcOffsetHours, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}

// ByRegisteredSince orders the results by the registered_since field.
func ByRegisteredSince(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisteredSince, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}
