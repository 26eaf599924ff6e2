// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DispatchPost is the predicate function for dispatchpost builders.
type DispatchPost func(*sql.Selector)

// Journey is the predicate function for journey builders.
type Journey func(*sql.Selector)

// JourneyEvent is the predicate function for journeyevent builders.
type JourneyEvent func(*sql.Selector)

// Server is the predicate function for server builders.
type Server func(*sql.Selector)

// VehicleSequence is the predicate function for vehiclesequence builders.
type VehicleSequence func(*sql.Selector)
