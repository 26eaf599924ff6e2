// Code generated by ent, DO NOT EDIT.

package server

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Server {
	return predicate.Server(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Server {
	return predicate.Server(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Server {
	return predicate.Server(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Server {
	return predicate.Server(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Server {
	return predicate.Server(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Server {
	return predicate.Server(sql.FieldContainsFold(FieldID, id))
}

// ForeignID applies equality check predicate on the "foreign_id" field. It's identical to ForeignIDEQ.
func ForeignID(v string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldForeignID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldCode, v))
}

// Scenery applies equality check predicate on the "scenery" field. It's identical to SceneryEQ.
func Scenery(v string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldScenery, v))
}

// UtcOffsetHours applies equality check predicate on the "utc_offset_hours" field. It's identical to UtcOffsetHoursEQ.
func UtcOffsetHours(v int) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldUtcOffsetHours, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldLanguage, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldDeleted, v))
}

// RegisteredSince applies equality check predicate on the "registered_since" field. It's identical to RegisteredSinceEQ.
func RegisteredSince(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldRegisteredSince, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldUpdateTime, v))
}

// ForeignIDEQ applies the EQ predicate on the "foreign_id" field.
func ForeignIDEQ(v string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldForeignID, v))
}

// ForeignIDNEQ applies the NEQ predicate on the "foreign_id" field.
func ForeignIDNEQ(v string) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldForeignID, v))
}

// ForeignIDIn applies the In predicate on the "foreign_id" field.
func ForeignIDIn(vs ...string) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldForeignID, vs...))
}

// ForeignIDNotIn applies the NotIn predicate on the "foreign_id" field.
func ForeignIDNotIn(vs ...string) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldForeignID, vs...))
}

// ForeignIDGT applies the GT predicate on the "foreign_id" field.
func ForeignIDGT(v string) predicate.Server {
	return predicate.Server(sql.FieldGT(FieldForeignID, v))
}

// ForeignIDGTE applies the GTE predicate on the "foreign_id" field.
func ForeignIDGTE(v string) predicate.Server {
	return predicate.Server(sql.FieldGTE(FieldForeignID, v))
}

// ForeignIDLT applies the LT predicate on the "foreign_id" field.
func ForeignIDLT(v string) predicate.Server {
	return predicate.Server(sql.FieldLT(FieldForeignID, v))
}

// ForeignIDLTE applies the LTE predicate on the "foreign_id" field.
func ForeignIDLTE(v string) predicate.Server {
	return predicate.Server(sql.FieldLTE(FieldForeignID, v))
}

// ForeignIDContains applies the Contains predicate on the "foreign_id" field.
func ForeignIDContains(v string) predicate.Server {
	return predicate.Server(sql.FieldContains(FieldForeignID, v))
}

// ForeignIDHasPrefix applies the HasPrefix predicate on the "foreign_id" field.
func ForeignIDHasPrefix(v string) predicate.Server {
	return predicate.Server(sql.FieldHasPrefix(FieldForeignID, v))
}

// ForeignIDHasSuffix applies the HasSuffix predicate on the "foreign_id" field.
func ForeignIDHasSuffix(v string) predicate.Server {
	return predicate.Server(sql.FieldHasSuffix(FieldForeignID, v))
}

// ForeignIDEqualFold applies the EqualFold predicate on the "foreign_id" field.
func ForeignIDEqualFold(v string) predicate.Server {
	return predicate.Server(sql.FieldEqualFold(FieldForeignID, v))
}

// ForeignIDContainsFold applies the ContainsFold predicate on the "foreign_id" field.
func ForeignIDContainsFold(v string) predicate.Server {
	return predicate.Server(sql.FieldContainsFold(FieldForeignID, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Server {
	return predicate.Server(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Server {
	return predicate.Server(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Server {
	return predicate.Server(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Server {
	return predicate.Server(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Server {
	return predicate.Server(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Server {
	return predicate.Server(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Server {
	return predicate.Server(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Server {
	return predicate.Server(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Server {
	return predicate.Server(sql.FieldContainsFold(FieldCode, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v Region) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v Region) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...Region) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...Region) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldRegion, vs...))
}

// SceneryEQ applies the EQ predicate on the "scenery" field.
func SceneryEQ(v string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldScenery, v))
}

// SceneryNEQ applies the NEQ predicate on the "scenery" field.
func SceneryNEQ(v string) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldScenery, v))
}

// SceneryIn applies the In predicate on the "scenery" field.
func SceneryIn(vs ...string) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldScenery, vs...))
}

// SceneryNotIn applies the NotIn predicate on the "scenery" field.
func SceneryNotIn(vs ...string) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldScenery, vs...))
}

// SceneryGT applies the GT predicate on the "scenery" field.
func SceneryGT(v string) predicate.Server {
	return predicate.Server(sql.FieldGT(FieldScenery, v))
}

// SceneryGTE applies the GTE predicate on the "scenery" field.
func SceneryGTE(v string) predicate.Server {
	return predicate.Server(sql.FieldGTE(FieldScenery, v))
}

// SceneryLT applies the LT predicate on the "scenery" field.
func SceneryLT(v string) predicate.Server {
	return predicate.Server(sql.FieldLT(FieldScenery, v))
}

// SceneryLTE applies the LTE predicate on the "scenery" field.
func SceneryLTE(v string) predicate.Server {
	return predicate.Server(sql.FieldLTE(FieldScenery, v))
}

// SceneryContains applies the Contains predicate on the "scenery" field.
func SceneryContains(v string) predicate.Server {
	return predicate.Server(sql.FieldContains(FieldScenery, v))
}

// SceneryHasPrefix applies the HasPrefix predicate on the "scenery" field.
func SceneryHasPrefix(v string) predicate.Server {
	return predicate.Server(sql.FieldHasPrefix(FieldScenery, v))
}

// SceneryHasSuffix applies the HasSuffix predicate on the "scenery" field.
func SceneryHasSuffix(v string) predicate.Server {
	return predicate.Server(sql.FieldHasSuffix(FieldScenery, v))
}

// SceneryIsNil applies the IsNil predicate on the "scenery" field.
func SceneryIsNil() predicate.Server {
	return predicate.Server(sql.FieldIsNull(FieldScenery))
}

// SceneryNotNil applies the NotNil predicate on the "scenery" field.
func SceneryNotNil() predicate.Server {
	return predicate.Server(sql.FieldNotNull(FieldScenery))
}

// SceneryEqualFold applies the EqualFold predicate on the "scenery" field.
func SceneryEqualFold(v string) predicate.Server {
	return predicate.Server(sql.FieldEqualFold(FieldScenery, v))
}

// SceneryContainsFold applies the ContainsFold predicate on the "scenery" field.
func SceneryContainsFold(v string) predicate.Server {
	return predicate.Server(sql.FieldContainsFold(FieldScenery, v))
}

// UtcOffsetHoursEQ applies the EQ predicate on the "utc_offset_hours" field.
func UtcOffsetHoursEQ(v int) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldUtcOffsetHours, v))
}

// UtcOffsetHoursNEQ applies the NEQ predicate on the "utc_offset_hours" field.
func UtcOffsetHoursNEQ(v int) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldUtcOffsetHours, v))
}

// UtcOffsetHoursIn applies the In predicate on the "utc_offset_hours" field.
func UtcOffsetHoursIn(vs ...int) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldUtcOffsetHours, vs...))
}

// UtcOffsetHoursNotIn applies the NotIn predicate on the "utc_offset_hours" field.
func UtcOffsetHoursNotIn(vs ...int) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldUtcOffsetHours, vs...))
}

// UtcOffsetHoursGT applies the GT predicate on the "utc_offset_hours" field.
func UtcOffsetHoursGT(v int) predicate.Server {
	return predicate.Server(sql.FieldGT(FieldUtcOffsetHours, v))
}

// UtcOffsetHoursGTE applies the GTE predicate on the "utc_offset_hours" field.
func UtcOffsetHoursGTE(v int) predicate.Server {
	return predicate.Server(sql.FieldGTE(FieldUtcOffsetHours, v))
}

// UtcOffsetHoursLT applies the LT predicate on the "utc_offset_hours" field.
func UtcOffsetHoursLT(v int) predicate.Server {
	return predicate.Server(sql.FieldLT(FieldUtcOffsetHours, v))
}

// UtcOffsetHoursLTE applies the LTE predicate on the "utc_offset_hours" field.
func UtcOffsetHoursLTE(v int) predicate.Server {
	return predicate.Server(sql.FieldLTE(FieldUtcOffsetHours, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Server {
	return predicate.Server(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Server {
	return predicate.Server(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Server {
	return predicate.Server(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Server {
	return predicate.Server(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Server {
	return predicate.Server(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Server {
	return predicate.Server(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Server {
	return predicate.Server(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Server {
	return predicate.Server(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Server {
	return predicate.Server(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Server {
	return predicate.Server(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Server {
	return predicate.Server(sql.FieldContainsFold(FieldLanguage, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Server {
	return predicate.Server(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Server {
	return predicate.Server(sql.FieldNotNull(FieldTags))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldDeleted, v))
}

// RegisteredSinceEQ applies the EQ predicate on the "registered_since" field.
func RegisteredSinceEQ(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldRegisteredSince, v))
}

// RegisteredSinceNEQ applies the NEQ predicate on the "registered_since" field.
func RegisteredSinceNEQ(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldRegisteredSince, v))
}

// RegisteredSinceIn applies the In predicate on the "registered_since" field.
func RegisteredSinceIn(vs ...time.Time) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldRegisteredSince, vs...))
}

// RegisteredSinceNotIn applies the NotIn predicate on the "registered_since" field.
func RegisteredSinceNotIn(vs ...time.Time) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldRegisteredSince, vs...))
}

// RegisteredSinceGT applies the GT predicate on the "registered_since" field.
func RegisteredSinceGT(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldGT(FieldRegisteredSince, v))
}

// RegisteredSinceGTE applies the GTE predicate on the "registered_since" field.
func RegisteredSinceGTE(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldGTE(FieldRegisteredSince, v))
}

// RegisteredSinceLT applies the LT predicate on the "registered_since" field.
func RegisteredSinceLT(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldLT(FieldRegisteredSince, v))
}

// RegisteredSinceLTE applies the LTE predicate on the "registered_since" field.
func RegisteredSinceLTE(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldLTE(FieldRegisteredSince, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.Server {
	return predicate.Server(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.Server {
	return predicate.Server(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.Server {
	return predicate.Server(sql.FieldLTE(FieldUpdateTime, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Server) predicate.Server {
	return predicate.Server(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Server) predicate.Server {
	return predicate.Server(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Server) predicate.Server {
	return predicate.Server(sql.NotPredicates(p))
}
