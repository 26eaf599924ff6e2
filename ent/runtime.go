// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/simtrack/sit-collector/ent/dispatchpost"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/ent/schema"
	"github.com/simtrack/sit-collector/ent/server"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dispatchpostFields := schema.DispatchPost{}.Fields()
	_ = dispatchpostFields
	// dispatchpostDescDifficulty is the schema descriptor for difficulty field.
	dispatchpostDescDifficulty := dispatchpostFields[7].Descriptor()
	// dispatchpost.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	dispatchpost.DifficultyValidator = func() func(int) error {
		validators := dispatchpostDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dispatchpostDescDeleted is the schema descriptor for deleted field.
	dispatchpostDescDeleted := dispatchpostFields[10].Descriptor()
	// dispatchpost.DefaultDeleted holds the default value on creation for the deleted field.
	dispatchpost.DefaultDeleted = dispatchpostDescDeleted.Default.(bool)
	// dispatchpostDescUpdateTime is the schema descriptor for update_time field.
	dispatchpostDescUpdateTime := dispatchpostFields[11].Descriptor()
	// dispatchpost.DefaultUpdateTime holds the default value on creation for the update_time field.
	dispatchpost.DefaultUpdateTime = dispatchpostDescUpdateTime.Default.(func() time.Time)
	// dispatchpost.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	dispatchpost.UpdateDefaultUpdateTime = dispatchpostDescUpdateTime.UpdateDefault.(func() time.Time)
	journeyFields := schema.Journey{}.Fields()
	_ = journeyFields
	// journeyDescCancelled is the schema descriptor for cancelled field.
	journeyDescCancelled := journeyFields[8].Descriptor()
	// journey.DefaultCancelled holds the default value on creation for the cancelled field.
	journey.DefaultCancelled = journeyDescCancelled.Default.(bool)
	// journeyDescDeleted is the schema descriptor for deleted field.
	journeyDescDeleted := journeyFields[11].Descriptor()
	// journey.DefaultDeleted holds the default value on creation for the deleted field.
	journey.DefaultDeleted = journeyDescDeleted.Default.(bool)
	// journeyDescUpdateTime is the schema descriptor for update_time field.
	journeyDescUpdateTime := journeyFields[12].Descriptor()
	// journey.DefaultUpdateTime holds the default value on creation for the update_time field.
	journey.DefaultUpdateTime = journeyDescUpdateTime.Default.(func() time.Time)
	// journey.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	journey.UpdateDefaultUpdateTime = journeyDescUpdateTime.UpdateDefault.(func() time.Time)
	journeyeventFields := schema.JourneyEvent{}.Fields()
	_ = journeyeventFields
	// journeyeventDescEventIndex is the schema descriptor for event_index field.
	journeyeventDescEventIndex := journeyeventFields[2].Descriptor()
	// journeyevent.EventIndexValidator is a validator for the "event_index" field. It is called by the builders before save.
	journeyevent.EventIndexValidator = journeyeventDescEventIndex.Validators[0].(func(int) error)
	// journeyeventDescInPlayableBorder is the schema descriptor for in_playable_border field.
	journeyeventDescInPlayableBorder := journeyeventFields[6].Descriptor()
	// journeyevent.DefaultInPlayableBorder holds the default value on creation for the in_playable_border field.
	journeyevent.DefaultInPlayableBorder = journeyeventDescInPlayableBorder.Default.(bool)
	// journeyeventDescCancelled is the schema descriptor for cancelled field.
	journeyeventDescCancelled := journeyeventFields[16].Descriptor()
	// journeyevent.DefaultCancelled holds the default value on creation for the cancelled field.
	journeyevent.DefaultCancelled = journeyeventDescCancelled.Default.(bool)
	// journeyeventDescAdditional is the schema descriptor for additional field.
	journeyeventDescAdditional := journeyeventFields[17].Descriptor()
	// journeyevent.DefaultAdditional holds the default value on creation for the additional field.
	journeyevent.DefaultAdditional = journeyeventDescAdditional.Default.(bool)
	serverFields := schema.Server{}.Fields()
	_ = serverFields
	// serverDescUtcOffsetHours is the schema descriptor for utc_offset_hours field.
	serverDescUtcOffsetHours := serverFields[5].Descriptor()
	// server.DefaultUtcOffsetHours holds the default value on creation for the utc_offset_hours field.
	server.DefaultUtcOffsetHours = serverDescUtcOffsetHours.Default.(int)
	// serverDescDeleted is the schema descriptor for deleted field.
	serverDescDeleted := serverFields[8].Descriptor()
	// server.DefaultDeleted holds the default value on creation for the deleted field.
	server.DefaultDeleted = serverDescDeleted.Default.(bool)
	// serverDescUpdateTime is the schema descriptor for update_time field.
	serverDescUpdateTime := serverFields[10].Descriptor()
	// server.DefaultUpdateTime holds the default value on creation for the update_time field.
	server.DefaultUpdateTime = serverDescUpdateTime.Default.(func() time.Time)
	// server.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	server.UpdateDefaultUpdateTime = serverDescUpdateTime.UpdateDefault.(func() time.Time)
	vehiclesequenceFields := schema.VehicleSequence{}.Fields()
	_ = vehiclesequenceFields
	// vehiclesequenceDescUpdateTime is the schema descriptor for update_time field.
	vehiclesequenceDescUpdateTime := vehiclesequenceFields[5].Descriptor()
	// vehiclesequence.DefaultUpdateTime holds the default value on creation for the update_time field.
	vehiclesequence.DefaultUpdateTime = vehiclesequenceDescUpdateTime.Default.(func() time.Time)
	// vehiclesequence.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	vehiclesequence.UpdateDefaultUpdateTime = vehiclesequenceDescUpdateTime.UpdateDefault.(func() time.Time)
}
