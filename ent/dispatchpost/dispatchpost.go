// Code generated by ent, DO NOT EDIT.

package dispatchpost

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dispatchpost type in the database.
	Label = "dispatch_post"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "post_id"
	// FieldForeignID holds the string denoting the foreign_id field in the database.
	FieldForeignID = "foreign_id"
	// FieldServerID holds the string denoting the server_id field in the database.
	FieldServerID = "server_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPointID holds the string denoting the point_id field in the database.
	FieldPointID = "point_id"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldMainImageURL holds the string denoting the main_image_url field in the database.
	FieldMainImageURL = "main_image_url"
	// FieldDetailImageURL holds the string denoting the detail_image_url field in the database.
	FieldDetailImageURL = "detail_image_url"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// Table holds the table name of the dispatchpost in the database.
	Table = "dispatch_posts"
)

// Columns holds all SQL columns for dispatchpost fields.
var Columns = []string{
	FieldID,
	FieldForeignID,
	FieldServerID,
	FieldName,
	FieldPointID,
	FieldLatitude,
	FieldLongitude,
	FieldDifficulty,
	FieldMainImageURL,
	FieldDetailImageURL,
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
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(int) error
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
)

// OrderOption defines the ordering options for the DispatchPost queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByForeignID orders the results by the foreign_id field.
func ByForeignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForeignID, opts...).ToFunc()
}

// ByServerID orders the results by the server_id field.
func ByServerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPointID orders the results by the point_id field.
func ByPointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointID, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByMainImageURL orders the results by the main_image_url field.
func ByMainImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMainImageURL, opts...).ToFunc()
}

// ByDetailImageURL orders the results by the detail_image_url field.
func ByDetailImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetailImageURL, opts...).ToFunc()
}

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}
