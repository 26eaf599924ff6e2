// Code generated by ent, DO NOT EDIT.

package journeyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldID, id))
}

// JourneyID applies equality check predicate on the "journey_id" field. It's identical to JourneyIDEQ.
func JourneyID(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldJourneyID, v))
}

// EventIndex applies equality check predicate on the "event_index" field. It's identical to EventIndexEQ.
func EventIndex(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldEventIndex, v))
}

// PointID applies equality check predicate on the "point_id" field. It's identical to PointIDEQ.
func PointID(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldPointID, v))
}

// PointName applies equality check predicate on the "point_name" field. It's identical to PointNameEQ.
func PointName(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldPointName, v))
}

// InPlayableBorder applies equality check predicate on the "in_playable_border" field. It's identical to InPlayableBorderEQ.
func InPlayableBorder(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldInPlayableBorder, v))
}

// ScheduledTime applies equality check predicate on the "scheduled_time" field. It's identical to ScheduledTimeEQ.
func ScheduledTime(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldScheduledTime, v))
}

// RealtimeTime applies equality check predicate on the "realtime_time" field. It's identical to RealtimeTimeEQ.
func RealtimeTime(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldRealtimeTime, v))
}

// ScheduledPlatform applies equality check predicate on the "scheduled_platform" field. It's identical to ScheduledPlatformEQ.
func ScheduledPlatform(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldScheduledPlatform, v))
}

// ScheduledTrack applies equality check predicate on the "scheduled_track" field. It's identical to ScheduledTrackEQ.
func ScheduledTrack(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldScheduledTrack, v))
}

// RealtimePlatform applies equality check predicate on the "realtime_platform" field. It's identical to RealtimePlatformEQ.
func RealtimePlatform(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldRealtimePlatform, v))
}

// RealtimeTrack applies equality check predicate on the "realtime_track" field. It's identical to RealtimeTrackEQ.
func RealtimeTrack(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldRealtimeTrack, v))
}

// Cancelled applies equality check predicate on the "cancelled" field. It's identical to CancelledEQ.
func Cancelled(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldCancelled, v))
}

// Additional applies equality check predicate on the "additional" field. It's identical to AdditionalEQ.
func Additional(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldAdditional, v))
}

// JourneyIDEQ applies the EQ predicate on the "journey_id" field.
func JourneyIDEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldJourneyID, v))
}

// JourneyIDNEQ applies the NEQ predicate on the "journey_id" field.
func JourneyIDNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldJourneyID, v))
}

// JourneyIDIn applies the In predicate on the "journey_id" field.
func JourneyIDIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldJourneyID, vs...))
}

// JourneyIDNotIn applies the NotIn predicate on the "journey_id" field.
func JourneyIDNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldJourneyID, vs...))
}

// JourneyIDGT applies the GT predicate on the "journey_id" field.
func JourneyIDGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldJourneyID, v))
}

// JourneyIDGTE applies the GTE predicate on the "journey_id" field.
func JourneyIDGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldJourneyID, v))
}

// JourneyIDLT applies the LT predicate on the "journey_id" field.
func JourneyIDLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldJourneyID, v))
}

// JourneyIDLTE applies the LTE predicate on the "journey_id" field.
func JourneyIDLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldJourneyID, v))
}

// JourneyIDContains applies the Contains predicate on the "journey_id" field.
func JourneyIDContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldJourneyID, v))
}

// JourneyIDHasPrefix applies the HasPrefix predicate on the "journey_id" field.
func JourneyIDHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldJourneyID, v))
}

// JourneyIDHasSuffix applies the HasSuffix predicate on the "journey_id" field.
func JourneyIDHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldJourneyID, v))
}

// JourneyIDEqualFold applies the EqualFold predicate on the "journey_id" field.
func JourneyIDEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldJourneyID, v))
}

// JourneyIDContainsFold applies the ContainsFold predicate on the "journey_id" field.
func JourneyIDContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldJourneyID, v))
}

// EventIndexEQ applies the EQ predicate on the "event_index" field.
func EventIndexEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldEventIndex, v))
}

// EventIndexNEQ applies the NEQ predicate on the "event_index" field.
func EventIndexNEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldEventIndex, v))
}

// EventIndexIn applies the In predicate on the "event_index" field.
func EventIndexIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldEventIndex, vs...))
}

// EventIndexNotIn applies the NotIn predicate on the "event_index" field.
func EventIndexNotIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldEventIndex, vs...))
}

// EventIndexGT applies the GT predicate on the "event_index" field.
func EventIndexGT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldEventIndex, v))
}

// EventIndexGTE applies the GTE predicate on the "event_index" field.
func EventIndexGTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldEventIndex, v))
}

// EventIndexLT applies the LT predicate on the "event_index" field.
func EventIndexLT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldEventIndex, v))
}

// EventIndexLTE applies the LTE predicate on the "event_index" field.
func EventIndexLTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldEventIndex, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// PointIDEQ applies the EQ predicate on the "point_id" field.
func PointIDEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldPointID, v))
}

// PointIDNEQ applies the NEQ predicate on the "point_id" field.
func PointIDNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldPointID, v))
}

// PointIDIn applies the In predicate on the "point_id" field.
func PointIDIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldPointID, vs...))
}

// PointIDNotIn applies the NotIn predicate on the "point_id" field.
func PointIDNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldPointID, vs...))
}

// PointIDGT applies the GT predicate on the "point_id" field.
func PointIDGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldPointID, v))
}

// PointIDGTE applies the GTE predicate on the "point_id" field.
func PointIDGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldPointID, v))
}

// PointIDLT applies the LT predicate on the "point_id" field.
func PointIDLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldPointID, v))
}

// PointIDLTE applies the LTE predicate on the "point_id" field.
func PointIDLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldPointID, v))
}

// PointIDContains applies the Contains predicate on the "point_id" field.
func PointIDContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldPointID, v))
}

// PointIDHasPrefix applies the HasPrefix predicate on the "point_id" field.
func PointIDHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldPointID, v))
}

// PointIDHasSuffix applies the HasSuffix predicate on the "point_id" field.
func PointIDHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldPointID, v))
}

// PointIDEqualFold applies the EqualFold predicate on the "point_id" field.
func PointIDEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldPointID, v))
}

// PointIDContainsFold applies the ContainsFold predicate on the "point_id" field.
func PointIDContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldPointID, v))
}

// PointNameEQ applies the EQ predicate on the "point_name" field.
func PointNameEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldPointName, v))
}

// PointNameNEQ applies the NEQ predicate on the "point_name" field.
func PointNameNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldPointName, v))
}

// PointNameIn applies the In predicate on the "point_name" field.
func PointNameIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldPointName, vs...))
}

// PointNameNotIn applies the NotIn predicate on the "point_name" field.
func PointNameNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldPointName, vs...))
}

// PointNameGT applies the GT predicate on the "point_name" field.
func PointNameGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldPointName, v))
}

// PointNameGTE applies the GTE predicate on the "point_name" field.
func PointNameGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldPointName, v))
}

// PointNameLT applies the LT predicate on the "point_name" field.
func PointNameLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldPointName, v))
}

// PointNameLTE applies the LTE predicate on the "point_name" field.
func PointNameLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldPointName, v))
}

// PointNameContains applies the Contains predicate on the "point_name" field.
func PointNameContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldPointName, v))
}

// PointNameHasPrefix applies the HasPrefix predicate on the "point_name" field.
func PointNameHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldPointName, v))
}

// PointNameHasSuffix applies the HasSuffix predicate on the "point_name" field.
func PointNameHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldPointName, v))
}

// PointNameIsNil applies the IsNil predicate on the "point_name" field.
func PointNameIsNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIsNull(FieldPointName))
}

// PointNameNotNil applies the NotNil predicate on the "point_name" field.
func PointNameNotNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotNull(FieldPointName))
}

// PointNameEqualFold applies the EqualFold predicate on the "point_name" field.
func PointNameEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldPointName, v))
}

// PointNameContainsFold applies the ContainsFold predicate on the "point_name" field.
func PointNameContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldPointName, v))
}

// InPlayableBorderEQ applies the EQ predicate on the "in_playable_border" field.
func InPlayableBorderEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldInPlayableBorder, v))
}

// InPlayableBorderNEQ applies the NEQ predicate on the "in_playable_border" field.
func InPlayableBorderNEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldInPlayableBorder, v))
}

// ScheduledTimeEQ applies the EQ predicate on the "scheduled_time" field.
func ScheduledTimeEQ(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldScheduledTime, v))
}

// ScheduledTimeNEQ applies the NEQ predicate on the "scheduled_time" field.
func ScheduledTimeNEQ(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldScheduledTime, v))
}

// ScheduledTimeIn applies the In predicate on the "scheduled_time" field.
func ScheduledTimeIn(vs ...time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldScheduledTime, vs...))
}

// ScheduledTimeNotIn applies the NotIn predicate on the "scheduled_time" field.
func ScheduledTimeNotIn(vs ...time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldScheduledTime, vs...))
}

// ScheduledTimeGT applies the GT predicate on the "scheduled_time" field.
func ScheduledTimeGT(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldScheduledTime, v))
}

// ScheduledTimeGTE applies the GTE predicate on the "scheduled_time" field.
func ScheduledTimeGTE(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldScheduledTime, v))
}

// ScheduledTimeLT applies the LT predicate on the "scheduled_time" field.
func ScheduledTimeLT(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldScheduledTime, v))
}

// ScheduledTimeLTE applies the LTE predicate on the "scheduled_time" field.
func ScheduledTimeLTE(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldScheduledTime, v))
}

// RealtimeTimeEQ applies the EQ predicate on the "realtime_time" field.
func RealtimeTimeEQ(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldRealtimeTime, v))
}

// RealtimeTimeNEQ applies the NEQ predicate on the "realtime_time" field.
func RealtimeTimeNEQ(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldRealtimeTime, v))
}

// RealtimeTimeIn applies the In predicate on the "realtime_time" field.
func RealtimeTimeIn(vs ...time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldRealtimeTime, vs...))
}

// RealtimeTimeNotIn applies the NotIn predicate on the "realtime_time" field.
func RealtimeTimeNotIn(vs ...time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldRealtimeTime, vs...))
}

// RealtimeTimeGT applies the GT predicate on the "realtime_time" field.
func RealtimeTimeGT(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldRealtimeTime, v))
}

// RealtimeTimeGTE applies the GTE predicate on the "realtime_time" field.
func RealtimeTimeGTE(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldRealtimeTime, v))
}

// RealtimeTimeLT applies the LT predicate on the "realtime_time" field.
func RealtimeTimeLT(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldRealtimeTime, v))
}

// RealtimeTimeLTE applies the LTE predicate on the "realtime_time" field.
func RealtimeTimeLTE(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldRealtimeTime, v))
}

// RealtimeTimeIsNil applies the IsNil predicate on the "realtime_time" field.
func RealtimeTimeIsNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIsNull(FieldRealtimeTime))
}

// RealtimeTimeNotNil applies the NotNil predicate on the "realtime_time" field.
func RealtimeTimeNotNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotNull(FieldRealtimeTime))
}

// RealtimeTimeTypeEQ applies the EQ predicate on the "realtime_time_type" field.
func RealtimeTimeTypeEQ(v RealtimeTimeType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldRealtimeTimeType, v))
}

// RealtimeTimeTypeNEQ applies the NEQ predicate on the "realtime_time_type" field.
func RealtimeTimeTypeNEQ(v RealtimeTimeType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldRealtimeTimeType, v))
}

// RealtimeTimeTypeIn applies the In predicate on the "realtime_time_type" field.
func RealtimeTimeTypeIn(vs ...RealtimeTimeType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldRealtimeTimeType, vs...))
}

// RealtimeTimeTypeNotIn applies the NotIn predicate on the "realtime_time_type" field.
func RealtimeTimeTypeNotIn(vs ...RealtimeTimeType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldRealtimeTimeType, vs...))
}

// TransportIsNil applies the IsNil predicate on the "transport" field.
func TransportIsNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIsNull(FieldTransport))
}

// TransportNotNil applies the NotNil predicate on the "transport" field.
func TransportNotNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotNull(FieldTransport))
}

// StopTypeEQ applies the EQ predicate on the "stop_type" field.
func StopTypeEQ(v StopType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldStopType, v))
}

// StopTypeNEQ applies the NEQ predicate on the "stop_type" field.
func StopTypeNEQ(v StopType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldStopType, v))
}

// StopTypeIn applies the In predicate on the "stop_type" field.
func StopTypeIn(vs ...StopType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldStopType, vs...))
}

// StopTypeNotIn applies the NotIn predicate on the "stop_type" field.
func StopTypeNotIn(vs ...StopType) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldStopType, vs...))
}

// ScheduledPlatformEQ applies the EQ predicate on the "scheduled_platform" field.
func ScheduledPlatformEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldScheduledPlatform, v))
}

// ScheduledPlatformNEQ applies the NEQ predicate on the "scheduled_platform" field.
func ScheduledPlatformNEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldScheduledPlatform, v))
}

// ScheduledPlatformIn applies the In predicate on the "scheduled_platform" field.
func ScheduledPlatformIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldScheduledPlatform, vs...))
}

// ScheduledPlatformNotIn applies the NotIn predicate on the "scheduled_platform" field.
func ScheduledPlatformNotIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldScheduledPlatform, vs...))
}

// ScheduledPlatformGT applies the GT predicate on the "scheduled_platform" field.
func ScheduledPlatformGT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldScheduledPlatform, v))
}

// ScheduledPlatformGTE applies the GTE predicate on the "scheduled_platform" field.
func ScheduledPlatformGTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldScheduledPlatform, v))
}

// ScheduledPlatformLT applies the LT predicate on the "scheduled_platform" field.
func ScheduledPlatformLT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldScheduledPlatform, v))
}

// ScheduledPlatformLTE applies the LTE predicate on the "scheduled_platform" field.
func ScheduledPlatformLTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldScheduledPlatform, v))
}

// ScheduledPlatformIsNil applies the IsNil predicate on the "scheduled_platform" field.
func ScheduledPlatformIsNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIsNull(FieldScheduledPlatform))
}

// ScheduledPlatformNotNil applies the NotNil predicate on the "scheduled_platform" field.
func ScheduledPlatformNotNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotNull(FieldScheduledPlatform))
}

// ScheduledTrackEQ applies the EQ predicate on the "scheduled_track" field.
func ScheduledTrackEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldScheduledTrack, v))
}

// ScheduledTrackNEQ applies the NEQ predicate on the "scheduled_track" field.
func ScheduledTrackNEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldScheduledTrack, v))
}

// ScheduledTrackIn applies the In predicate on the "scheduled_track" field.
func ScheduledTrackIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldScheduledTrack, vs...))
}

// ScheduledTrackNotIn applies the NotIn predicate on the "scheduled_track" field.
func ScheduledTrackNotIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldScheduledTrack, vs...))
}

// ScheduledTrackGT applies the GT predicate on the "scheduled_track" field.
func ScheduledTrackGT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldScheduledTrack, v))
}

// ScheduledTrackGTE applies the GTE predicate on the "scheduled_track" field.
func ScheduledTrackGTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldScheduledTrack, v))
}

// ScheduledTrackLT applies the LT predicate on the "scheduled_track" field.
func ScheduledTrackLT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldScheduledTrack, v))
}

// ScheduledTrackLTE applies the LTE predicate on the "scheduled_track" field.
func ScheduledTrackLTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldScheduledTrack, v))
}

// ScheduledTrackIsNil applies the IsNil predicate on the "scheduled_track" field.
func ScheduledTrackIsNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIsNull(FieldScheduledTrack))
}

// ScheduledTrackNotNil applies the NotNil predicate on the "scheduled_track" field.
func ScheduledTrackNotNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotNull(FieldScheduledTrack))
}

// RealtimePlatformEQ applies the EQ predicate on the "realtime_platform" field.
func RealtimePlatformEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldRealtimePlatform, v))
}

// RealtimePlatformNEQ applies the NEQ predicate on the "realtime_platform" field.
func RealtimePlatformNEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldRealtimePlatform, v))
}

// RealtimePlatformIn applies the In predicate on the "realtime_platform" field.
func RealtimePlatformIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldRealtimePlatform, vs...))
}

// RealtimePlatformNotIn applies the NotIn predicate on the "realtime_platform" field.
func RealtimePlatformNotIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldRealtimePlatform, vs...))
}

// RealtimePlatformGT applies the GT predicate on the "realtime_platform" field.
func RealtimePlatformGT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldRealtimePlatform, v))
}

// RealtimePlatformGTE applies the GTE predicate on the "realtime_platform" field.
func RealtimePlatformGTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldRealtimePlatform, v))
}

// RealtimePlatformLT applies the LT predicate on the "realtime_platform" field.
func RealtimePlatformLT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldRealtimePlatform, v))
}

// RealtimePlatformLTE applies the LTE predicate on the "realtime_platform" field.
func RealtimePlatformLTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldRealtimePlatform, v))
}

// RealtimePlatformIsNil applies the IsNil predicate on the "realtime_platform" field.
func RealtimePlatformIsNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIsNull(FieldRealtimePlatform))
}

// RealtimePlatformNotNil applies the NotNil predicate on the "realtime_platform" field.
func RealtimePlatformNotNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotNull(FieldRealtimePlatform))
}

// RealtimeTrackEQ applies the EQ predicate on the "realtime_track" field.
func RealtimeTrackEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldRealtimeTrack, v))
}

// RealtimeTrackNEQ applies the NEQ predicate on the "realtime_track" field.
func RealtimeTrackNEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldRealtimeTrack, v))
}

// RealtimeTrackIn applies the In predicate on the "realtime_track" field.
func RealtimeTrackIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldRealtimeTrack, vs...))
}

// RealtimeTrackNotIn applies the NotIn predicate on the "realtime_track" field.
func RealtimeTrackNotIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldRealtimeTrack, vs...))
}

// RealtimeTrackGT applies the GT predicate on the "realtime_track" field.
func RealtimeTrackGT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldRealtimeTrack, v))
}

// RealtimeTrackGTE applies the GTE predicate on the "realtime_track" field.
func RealtimeTrackGTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldRealtimeTrack, v))
}

// RealtimeTrackLT applies the LT predicate on the "realtime_track" field.
func RealtimeTrackLT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldRealtimeTrack, v))
}

// RealtimeTrackLTE applies the LTE predicate on the "realtime_track" field.
func RealtimeTrackLTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldRealtimeTrack, v))
}

// RealtimeTrackIsNil applies the IsNil predicate on the "realtime_track" field.
func RealtimeTrackIsNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIsNull(FieldRealtimeTrack))
}

// RealtimeTrackNotNil applies the NotNil predicate on the "realtime_track" field.
func RealtimeTrackNotNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotNull(FieldRealtimeTrack))
}

// CancelledEQ applies the EQ predicate on the "cancelled" field.
func CancelledEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldCancelled, v))
}

// CancelledNEQ applies the NEQ predicate on the "cancelled" field.
func CancelledNEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldCancelled, v))
}

// AdditionalEQ applies the EQ predicate on the "additional" field.
func AdditionalEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldAdditional, v))
}

// AdditionalNEQ applies the NEQ predicate on the "additional" field.
func AdditionalNEQ(v bool) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldAdditional, v))
}

// HasJourney applies the HasEdge predicate on the "journey" edge.
func HasJourney() predicate.JourneyEvent {
	return predicate.JourneyEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JourneyTable, JourneyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJourneyWith applies the HasEdge predicate on the "journey" edge with a given conditions (other predicates).
func HasJourneyWith(preds ...predicate.Journey) predicate.JourneyEvent {
	return predicate.JourneyEvent(func(s *sql.Selector) {
		step := newJourneyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.NotPredicates(p))
}
