// Code generated by ent, DO NOT EDIT.

package journey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldRunID, v))
}

// ServerID applies equality check predicate on the "server_id" field. It's identical to ServerIDEQ.
func ServerID(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldServerID, v))
}

// TrainNumber applies equality check predicate on the "train_number" field. It's identical to TrainNumberEQ.
func TrainNumber(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldTrainNumber, v))
}

// TrainName applies equality check predicate on the "train_name" field. It's identical to TrainNameEQ.
func TrainName(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldTrainName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCategory, v))
}

// FirstSeenTime applies equality check predicate on the "first_seen_time" field. It's identical to FirstSeenTimeEQ.
func FirstSeenTime(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldFirstSeenTime, v))
}

// LastSeenTime applies equality check predicate on the "last_seen_time" field. It's identical to LastSeenTimeEQ.
func LastSeenTime(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldLastSeenTime, v))
}

// Cancelled applies equality check predicate on the "cancelled" field. It's identical to CancelledEQ.
func Cancelled(v bool) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCancelled, v))
}

// ContinuationJourneyID applies equality check predicate on the "continuation_journey_id" field. It's identical to ContinuationJourneyIDEQ.
func ContinuationJourneyID(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldContinuationJourneyID, v))
}

// StateChecksum applies equality check predicate on the "state_checksum" field. It's identical to StateChecksumEQ.
func StateChecksum(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldStateChecksum, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldDeleted, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUpdateTime, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldRunID, v))
}

// ServerIDEQ applies the EQ predicate on the "server_id" field.
func ServerIDEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldServerID, v))
}

// ServerIDNEQ applies the NEQ predicate on the "server_id" field.
func ServerIDNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldServerID, v))
}

// ServerIDIn applies the In predicate on the "server_id" field.
func ServerIDIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldServerID, vs...))
}

// ServerIDNotIn applies the NotIn predicate on the "server_id" field.
func ServerIDNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldServerID, vs...))
}

// ServerIDGT applies the GT predicate on the "server_id" field.
func ServerIDGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldServerID, v))
}

// ServerIDGTE applies the GTE predicate on the "server_id" field.
func ServerIDGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldServerID, v))
}

// ServerIDLT applies the LT predicate on the "server_id" field.
func ServerIDLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldServerID, v))
}

// ServerIDLTE applies the LTE predicate on the "server_id" field.
func ServerIDLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldServerID, v))
}

// ServerIDContains applies the Contains predicate on the "server_id" field.
func ServerIDContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldServerID, v))
}

// ServerIDHasPrefix applies the HasPrefix predicate on the "server_id" field.
func ServerIDHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldServerID, v))
}

// ServerIDHasSuffix applies the HasSuffix predicate on the "server_id" field.
func ServerIDHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldServerID, v))
}

// ServerIDEqualFold applies the EqualFold predicate on the "server_id" field.
func ServerIDEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldServerID, v))
}

// ServerIDContainsFold applies the ContainsFold predicate on the "server_id" field.
func ServerIDContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldServerID, v))
}

// TrainNumberEQ applies the EQ predicate on the "train_number" field.
func TrainNumberEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldTrainNumber, v))
}

// TrainNumberNEQ applies the NEQ predicate on the "train_number" field.
func TrainNumberNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldTrainNumber, v))
}

// TrainNumberIn applies the In predicate on the "train_number" field.
func TrainNumberIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldTrainNumber, vs...))
}

// TrainNumberNotIn applies the NotIn predicate on the "train_number" field.
func TrainNumberNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldTrainNumber, vs...))
}

// TrainNumberGT applies the GT predicate on the "train_number" field.
func TrainNumberGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldTrainNumber, v))
}

// TrainNumberGTE applies the GTE predicate on the "train_number" field.
func TrainNumberGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldTrainNumber, v))
}

// TrainNumberLT applies the LT predicate on the "train_number" field.
func TrainNumberLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldTrainNumber, v))
}

// TrainNumberLTE applies the LTE predicate on the "train_number" field.
func TrainNumberLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldTrainNumber, v))
}

// TrainNumberContains applies the Contains predicate on the "train_number" field.
func TrainNumberContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldTrainNumber, v))
}

// TrainNumberHasPrefix applies the HasPrefix predicate on the "train_number" field.
func TrainNumberHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldTrainNumber, v))
}

// TrainNumberHasSuffix applies the HasSuffix predicate on the "train_number" field.
func TrainNumberHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldTrainNumber, v))
}

// TrainNumberEqualFold applies the EqualFold predicate on the "train_number" field.
func TrainNumberEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldTrainNumber, v))
}

// TrainNumberContainsFold applies the ContainsFold predicate on the "train_number" field.
func TrainNumberContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldTrainNumber, v))
}

// TrainNameEQ applies the EQ predicate on the "train_name" field.
func TrainNameEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldTrainName, v))
}

// TrainNameNEQ applies the NEQ predicate on the "train_name" field.
func TrainNameNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldTrainName, v))
}

// TrainNameIn applies the In predicate on the "train_name" field.
func TrainNameIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldTrainName, vs...))
}

// TrainNameNotIn applies the NotIn predicate on the "train_name" field.
func TrainNameNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldTrainName, vs...))
}

// TrainNameGT applies the GT predicate on the "train_name" field.
func TrainNameGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldTrainName, v))
}

// TrainNameGTE applies the GTE predicate on the "train_name" field.
func TrainNameGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldTrainName, v))
}

// TrainNameLT applies the LT predicate on the "train_name" field.
func TrainNameLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldTrainName, v))
}

// TrainNameLTE applies the LTE predicate on the "train_name" field.
func TrainNameLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldTrainName, v))
}

// TrainNameContains applies the Contains predicate on the "train_name" field.
func TrainNameContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldTrainName, v))
}

// TrainNameHasPrefix applies the HasPrefix predicate on the "train_name" field.
func TrainNameHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldTrainName, v))
}

// TrainNameHasSuffix applies the HasSuffix predicate on the "train_name" field.
func TrainNameHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldTrainName, v))
}

// TrainNameIsNil applies the IsNil predicate on the "train_name" field.
func TrainNameIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldTrainName))
}

// TrainNameNotNil applies the NotNil predicate on the "train_name" field.
func TrainNameNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldTrainName))
}

// TrainNameEqualFold applies the EqualFold predicate on the "train_name" field.
func TrainNameEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldTrainName, v))
}

// TrainNameContainsFold applies the ContainsFold predicate on the "train_name" field.
func TrainNameContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldTrainName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldCategory, v))
}

// FirstSeenTimeEQ applies the EQ predicate on the "first_seen_time" field.
func FirstSeenTimeEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldFirstSeenTime, v))
}

// FirstSeenTimeNEQ applies the NEQ predicate on the "first_seen_time" field.
func FirstSeenTimeNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldFirstSeenTime, v))
}

// FirstSeenTimeIn applies the In predicate on the "first_seen_time" field.
func FirstSeenTimeIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldFirstSeenTime, vs...))
}

// FirstSeenTimeNotIn applies the NotIn predicate on the "first_seen_time" field.
func FirstSeenTimeNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldFirstSeenTime, vs...))
}

// FirstSeenTimeGT applies the GT predicate on the "first_seen_time" field.
func FirstSeenTimeGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldFirstSeenTime, v))
}

// FirstSeenTimeGTE applies the GTE predicate on the "first_seen_time" field.
func FirstSeenTimeGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldFirstSeenTime, v))
}

// FirstSeenTimeLT applies the LT predicate on the "first_seen_time" field.
func FirstSeenTimeLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldFirstSeenTime, v))
}

// FirstSeenTimeLTE applies the LTE predicate on the "first_seen_time" field.
func FirstSeenTimeLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldFirstSeenTime, v))
}

// FirstSeenTimeIsNil applies the IsNil predicate on the "first_seen_time" field.
func FirstSeenTimeIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldFirstSeenTime))
}

// FirstSeenTimeNotNil applies the NotNil predicate on the "first_seen_time" field.
func FirstSeenTimeNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldFirstSeenTime))
}

// LastSeenTimeEQ applies the EQ predicate on the "last_seen_time" field.
func LastSeenTimeEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldLastSeenTime, v))
}

// LastSeenTimeNEQ applies the NEQ predicate on the "last_seen_time" field.
func LastSeenTimeNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldLastSeenTime, v))
}

// LastSeenTimeIn applies the In predicate on the "last_seen_time" field.
func LastSeenTimeIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldLastSeenTime, vs...))
}

// LastSeenTimeNotIn applies the NotIn predicate on the "last_seen_time" field.
func LastSeenTimeNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldLastSeenTime, vs...))
}

// LastSeenTimeGT applies the GT predicate on the "last_seen_time" field.
func LastSeenTimeGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldLastSeenTime, v))
}

// LastSeenTimeGTE applies the GTE predicate on the "last_seen_time" field.
func LastSeenTimeGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldLastSeenTime, v))
}

// LastSeenTimeLT applies the LT predicate on the "last_seen_time" field.
func LastSeenTimeLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldLastSeenTime, v))
}

// LastSeenTimeLTE applies the LTE predicate on the "last_seen_time" field.
func LastSeenTimeLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldLastSeenTime, v))
}

// LastSeenTimeIsNil applies the IsNil predicate on the "last_seen_time" field.
func LastSeenTimeIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldLastSeenTime))
}

// LastSeenTimeNotNil applies the NotNil predicate on the "last_seen_time" field.
func LastSeenTimeNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldLastSeenTime))
}

// CancelledEQ applies the EQ predicate on the "cancelled" field.
func CancelledEQ(v bool) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldCancelled, v))
}

// CancelledNEQ applies the NEQ predicate on the "cancelled" field.
func CancelledNEQ(v bool) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldCancelled, v))
}

// ContinuationJourneyIDEQ applies the EQ predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDNEQ applies the NEQ predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDIn applies the In predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldContinuationJourneyID, vs...))
}

// ContinuationJourneyIDNotIn applies the NotIn predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldContinuationJourneyID, vs...))
}

// ContinuationJourneyIDGT applies the GT predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDGTE applies the GTE predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDLT applies the LT predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDLTE applies the LTE predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDContains applies the Contains predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDHasPrefix applies the HasPrefix predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDHasSuffix applies the HasSuffix predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDIsNil applies the IsNil predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldContinuationJourneyID))
}

// ContinuationJourneyIDNotNil applies the NotNil predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldContinuationJourneyID))
}

// ContinuationJourneyIDEqualFold applies the EqualFold predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldContinuationJourneyID, v))
}

// ContinuationJourneyIDContainsFold applies the ContainsFold predicate on the "continuation_journey_id" field.
func ContinuationJourneyIDContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldContinuationJourneyID, v))
}

// StateChecksumEQ applies the EQ predicate on the "state_checksum" field.
func StateChecksumEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldStateChecksum, v))
}

// StateChecksumNEQ applies the NEQ predicate on the "state_checksum" field.
func StateChecksumNEQ(v string) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldStateChecksum, v))
}

// StateChecksumIn applies the In predicate on the "state_checksum" field.
func StateChecksumIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldStateChecksum, vs...))
}

// StateChecksumNotIn applies the NotIn predicate on the "state_checksum" field.
func StateChecksumNotIn(vs ...string) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldStateChecksum, vs...))
}

// StateChecksumGT applies the GT predicate on the "state_checksum" field.
func StateChecksumGT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldStateChecksum, v))
}

// StateChecksumGTE applies the GTE predicate on the "state_checksum" field.
func StateChecksumGTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldStateChecksum, v))
}

// StateChecksumLT applies the LT predicate on the "state_checksum" field.
func StateChecksumLT(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldStateChecksum, v))
}

// StateChecksumLTE applies the LTE predicate on the "state_checksum" field.
func StateChecksumLTE(v string) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldStateChecksum, v))
}

// StateChecksumContains applies the Contains predicate on the "state_checksum" field.
func StateChecksumContains(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContains(FieldStateChecksum, v))
}

// StateChecksumHasPrefix applies the HasPrefix predicate on the "state_checksum" field.
func StateChecksumHasPrefix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasPrefix(FieldStateChecksum, v))
}

// StateChecksumHasSuffix applies the HasSuffix predicate on the "state_checksum" field.
func StateChecksumHasSuffix(v string) predicate.Journey {
	return predicate.Journey(sql.FieldHasSuffix(FieldStateChecksum, v))
}

// StateChecksumIsNil applies the IsNil predicate on the "state_checksum" field.
func StateChecksumIsNil() predicate.Journey {
	return predicate.Journey(sql.FieldIsNull(FieldStateChecksum))
}

// StateChecksumNotNil applies the NotNil predicate on the "state_checksum" field.
func StateChecksumNotNil() predicate.Journey {
	return predicate.Journey(sql.FieldNotNull(FieldStateChecksum))
}

// StateChecksumEqualFold applies the EqualFold predicate on the "state_checksum" field.
func StateChecksumEqualFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldEqualFold(FieldStateChecksum, v))
}

// StateChecksumContainsFold applies the ContainsFold predicate on the "state_checksum" field.
func StateChecksumContainsFold(v string) predicate.Journey {
	return predicate.Journey(sql.FieldContainsFold(FieldStateChecksum, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldDeleted, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.Journey {
	return predicate.Journey(sql.FieldLTE(FieldUpdateTime, v))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Journey {
	return predicate.Journey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.JourneyEvent) predicate.Journey {
	return predicate.Journey(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSequence applies the HasEdge predicate on the "sequence" edge.
func HasSequence() predicate.Journey {
	return predicate.Journey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SequenceTable, SequenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSequenceWith applies the HasEdge predicate on the "sequence" edge with a given conditions (other predicates).
func HasSequenceWith(preds ...predicate.VehicleSequence) predicate.Journey {
	return predicate.Journey(func(s *sql.Selector) {
		step := newSequenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Journey) predicate.Journey {
	return predicate.Journey(sql.NotPredicates(p))
}
