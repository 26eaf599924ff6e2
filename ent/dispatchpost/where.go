// Code generated by ent, DO NOT EDIT.

package dispatchpost

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContainsFold(FieldID, id))
}

// ForeignID applies equality check predicate on the "foreign_id" field. It's identical to ForeignIDEQ.
func ForeignID(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldForeignID, v))
}

// ServerID applies equality check predicate on the "server_id" field. It's identical to ServerIDEQ.
func ServerID(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldServerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldName, v))
}

// PointID applies equality check predicate on the "point_id" field. It's identical to PointIDEQ.
func PointID(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldPointID, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldLongitude, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldDifficulty, v))
}

// MainImageURL applies equality check predicate on the "main_image_url" field. It's identical to MainImageURLEQ.
func MainImageURL(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldMainImageURL, v))
}

// DetailImageURL applies equality check predicate on the "detail_image_url" field. It's identical to DetailImageURLEQ.
func DetailImageURL(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldDetailImageURL, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldDeleted, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldUpdateTime, v))
}

// ForeignIDEQ applies the EQ predicate on the "foreign_id" field.
func ForeignIDEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldForeignID, v))
}

// ForeignIDNEQ applies the NEQ predicate on the "foreign_id" field.
func ForeignIDNEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldForeignID, v))
}

// ForeignIDIn applies the In predicate on the "foreign_id" field.
func ForeignIDIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldForeignID, vs...))
}

// ForeignIDNotIn applies the NotIn predicate on the "foreign_id" field.
func ForeignIDNotIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldForeignID, vs...))
}

// ForeignIDGT applies the GT predicate on the "foreign_id" field.
func ForeignIDGT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldForeignID, v))
}

// ForeignIDGTE applies the GTE predicate on the "foreign_id" field.
func ForeignIDGTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldForeignID, v))
}

// ForeignIDLT applies the LT predicate on the "foreign_id" field.
func ForeignIDLT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldForeignID, v))
}

// ForeignIDLTE applies the LTE predicate on the "foreign_id" field.
func ForeignIDLTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldForeignID, v))
}

// ForeignIDContains applies the Contains predicate on the "foreign_id" field.
func ForeignIDContains(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContains(FieldForeignID, v))
}

// ForeignIDHasPrefix applies the HasPrefix predicate on the "foreign_id" field.
func ForeignIDHasPrefix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasPrefix(FieldForeignID, v))
}

// ForeignIDHasSuffix applies the HasSuffix predicate on the "foreign_id" field.
func ForeignIDHasSuffix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasSuffix(FieldForeignID, v))
}

// ForeignIDEqualFold applies the EqualFold predicate on the "foreign_id" field.
func ForeignIDEqualFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEqualFold(FieldForeignID, v))
}

// ForeignIDContainsFold applies the ContainsFold predicate on the "foreign_id" field.
func ForeignIDContainsFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContainsFold(FieldForeignID, v))
}

// ServerIDEQ applies the EQ predicate on the "server_id" field.
func ServerIDEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldServerID, v))
}

// ServerIDNEQ applies the NEQ predicate on the "server_id" field.
func ServerIDNEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldServerID, v))
}

// ServerIDIn applies the In predicate on the "server_id" field.
func ServerIDIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldServerID, vs...))
}

// ServerIDNotIn applies the NotIn predicate on the "server_id" field.
func ServerIDNotIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldServerID, vs...))
}

// ServerIDGT applies the GT predicate on the "server_id" field.
func ServerIDGT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldServerID, v))
}

// ServerIDGTE applies the GTE predicate on the "server_id" field.
func ServerIDGTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldServerID, v))
}

// ServerIDLT applies the LT predicate on the "server_id" field.
func ServerIDLT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldServerID, v))
}

// ServerIDLTE applies the LTE predicate on the "server_id" field.
func ServerIDLTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldServerID, v))
}

// ServerIDContains applies the Contains predicate on the "server_id" field.
func ServerIDContains(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContains(FieldServerID, v))
}

// ServerIDHasPrefix applies the HasPrefix predicate on the "server_id" field.
func ServerIDHasPrefix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasPrefix(FieldServerID, v))
}

// ServerIDHasSuffix applies the HasSuffix predicate on the "server_id" field.
func ServerIDHasSuffix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasSuffix(FieldServerID, v))
}

// ServerIDEqualFold applies the EqualFold predicate on the "server_id" field.
func ServerIDEqualFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEqualFold(FieldServerID, v))
}

// ServerIDContainsFold applies the ContainsFold predicate on the "server_id" field.
func ServerIDContainsFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContainsFold(FieldServerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContainsFold(FieldName, v))
}

// PointIDEQ applies the EQ predicate on the "point_id" field.
func PointIDEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldPointID, v))
}

// PointIDNEQ applies the NEQ predicate on the "point_id" field.
func PointIDNEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldPointID, v))
}

// PointIDIn applies the In predicate on the "point_id" field.
func PointIDIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldPointID, vs...))
}

// PointIDNotIn applies the NotIn predicate on the "point_id" field.
func PointIDNotIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldPointID, vs...))
}

// PointIDGT applies the GT predicate on the "point_id" field.
func PointIDGT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldPointID, v))
}

// PointIDGTE applies the GTE predicate on the "point_id" field.
func PointIDGTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldPointID, v))
}

// PointIDLT applies the LT predicate on the "point_id" field.
func PointIDLT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldPointID, v))
}

// PointIDLTE applies the LTE predicate on the "point_id" field.
func PointIDLTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldPointID, v))
}

// PointIDContains applies the Contains predicate on the "point_id" field.
func PointIDContains(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContains(FieldPointID, v))
}

// PointIDHasPrefix applies the HasPrefix predicate on the "point_id" field.
func PointIDHasPrefix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasPrefix(FieldPointID, v))
}

// PointIDHasSuffix applies the HasSuffix predicate on the "point_id" field.
func PointIDHasSuffix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasSuffix(FieldPointID, v))
}

// PointIDIsNil applies the IsNil predicate on the "point_id" field.
func PointIDIsNil() predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIsNull(FieldPointID))
}

// PointIDNotNil applies the NotNil predicate on the "point_id" field.
func PointIDNotNil() predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotNull(FieldPointID))
}

// PointIDEqualFold applies the EqualFold predicate on the "point_id" field.
func PointIDEqualFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEqualFold(FieldPointID, v))
}

// PointIDContainsFold applies the ContainsFold predicate on the "point_id" field.
func PointIDContainsFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContainsFold(FieldPointID, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldLatitude, v))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldLongitude, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldDifficulty, v))
}

// MainImageURLEQ applies the EQ predicate on the "main_image_url" field.
func MainImageURLEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldMainImageURL, v))
}

// MainImageURLNEQ applies the NEQ predicate on the "main_image_url" field.
func MainImageURLNEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldMainImageURL, v))
}

// MainImageURLIn applies the In predicate on the "main_image_url" field.
func MainImageURLIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldMainImageURL, vs...))
}

// MainImageURLNotIn applies the NotIn predicate on the "main_image_url" field.
func MainImageURLNotIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldMainImageURL, vs...))
}

// MainImageURLGT applies the GT predicate on the "main_image_url" field.
func MainImageURLGT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldMainImageURL, v))
}

// MainImageURLGTE applies the GTE predicate on the "main_image_url" field.
func MainImageURLGTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldMainImageURL, v))
}

// MainImageURLLT applies the LT predicate on the "main_image_url" field.
func MainImageURLLT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldMainImageURL, v))
}

// MainImageURLLTE applies the LTE predicate on the "main_image_url" field.
func MainImageURLLTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldMainImageURL, v))
}

// MainImageURLContains applies the Contains predicate on the "main_image_url" field.
func MainImageURLContains(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContains(FieldMainImageURL, v))
}

// MainImageURLHasPrefix applies the HasPrefix predicate on the "main_image_url" field.
func MainImageURLHasPrefix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasPrefix(FieldMainImageURL, v))
}

// MainImageURLHasSuffix applies the HasSuffix predicate on the "main_image_url" field.
func MainImageURLHasSuffix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasSuffix(FieldMainImageURL, v))
}

// MainImageURLIsNil applies the IsNil predicate on the "main_image_url" field.
func MainImageURLIsNil() predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIsNull(FieldMainImageURL))
}

// MainImageURLNotNil applies the NotNil predicate on the "main_image_url" field.
func MainImageURLNotNil() predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotNull(FieldMainImageURL))
}

// MainImageURLEqualFold applies the EqualFold predicate on the "main_image_url" field.
func MainImageURLEqualFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEqualFold(FieldMainImageURL, v))
}

// MainImageURLContainsFold applies the ContainsFold predicate on the "main_image_url" field.
func MainImageURLContainsFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContainsFold(FieldMainImageURL, v))
}

// DetailImageURLEQ applies the EQ predicate on the "detail_image_url" field.
func DetailImageURLEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldDetailImageURL, v))
}

// DetailImageURLNEQ applies the NEQ predicate on the "detail_image_url" field.
func DetailImageURLNEQ(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldDetailImageURL, v))
}

// DetailImageURLIn applies the In predicate on the "detail_image_url" field.
func DetailImageURLIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldDetailImageURL, vs...))
}

// DetailImageURLNotIn applies the NotIn predicate on the "detail_image_url" field.
func DetailImageURLNotIn(vs ...string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldDetailImageURL, vs...))
}

// DetailImageURLGT applies the GT predicate on the "detail_image_url" field.
func DetailImageURLGT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldDetailImageURL, v))
}

// DetailImageURLGTE applies the GTE predicate on the "detail_image_url" field.
func DetailImageURLGTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldDetailImageURL, v))
}

// DetailImageURLLT applies the LT predicate on the "detail_image_url" field.
func DetailImageURLLT(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldDetailImageURL, v))
}

// DetailImageURLLTE applies the LTE predicate on the "detail_image_url" field.
func DetailImageURLLTE(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldDetailImageURL, v))
}

// DetailImageURLContains applies the Contains predicate on the "detail_image_url" field.
func DetailImageURLContains(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContains(FieldDetailImageURL, v))
}

// DetailImageURLHasPrefix applies the HasPrefix predicate on the "detail_image_url" field.
func DetailImageURLHasPrefix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasPrefix(FieldDetailImageURL, v))
}

// DetailImageURLHasSuffix applies the HasSuffix predicate on the "detail_image_url" field.
func DetailImageURLHasSuffix(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldHasSuffix(FieldDetailImageURL, v))
}

// DetailImageURLIsNil applies the IsNil predicate on the "detail_image_url" field.
func DetailImageURLIsNil() predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIsNull(FieldDetailImageURL))
}

// DetailImageURLNotNil applies the NotNil predicate on the "detail_image_url" field.
func DetailImageURLNotNil() predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotNull(FieldDetailImageURL))
}

// DetailImageURLEqualFold applies the EqualFold predicate on the "detail_image_url" field.
func DetailImageURLEqualFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEqualFold(FieldDetailImageURL, v))
}

// DetailImageURLContainsFold applies the ContainsFold predicate on the "detail_image_url" field.
func DetailImageURLContainsFold(v string) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldContainsFold(FieldDetailImageURL, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldDeleted, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.DispatchPost {
	return predicate.DispatchPost(sql.FieldLTE(FieldUpdateTime, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DispatchPost) predicate.DispatchPost {
	return predicate.DispatchPost(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DispatchPost) predicate.DispatchPost {
	return predicate.DispatchPost(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DispatchPost) predicate.DispatchPost {
	return predicate.DispatchPost(sql.NotPredicates(p))
}
