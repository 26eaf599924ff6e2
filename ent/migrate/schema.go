// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DispatchPostsColumns holds the columns for the "dispatch_posts" table.
	DispatchPostsColumns = []*schema.Column{
		{Name: "post_id", Type: field.TypeString, Unique: true},
		{Name: "foreign_id", Type: field.TypeString},
		{Name: "server_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "point_id", Type: field.TypeString, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64},
		{Name: "longitude", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "main_image_url", Type: field.TypeString, Nullable: true},
		{Name: "detail_image_url", Type: field.TypeString, Nullable: true},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "update_time", Type: field.TypeTime},
	}
	// DispatchPostsTable holds the schema information for the "dispatch_posts" table.
	DispatchPostsTable = &schema.Table{
		Name:       "dispatch_posts",
		Columns:    DispatchPostsColumns,
		PrimaryKey: []*schema.Column{DispatchPostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dispatchpost_server_id",
				Unique:  false,
				Columns: []*schema.Column{DispatchPostsColumns[2]},
			},
			{
				Name:    "dispatchpost_server_id_foreign_id",
				Unique:  true,
				Columns: []*schema.Column{DispatchPostsColumns[2], DispatchPostsColumns[1]},
			},
		},
	}
	// JourneysColumns holds the columns for the "journeys" table.
	JourneysColumns = []*schema.Column{
		{Name: "journey_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "server_id", Type: field.TypeString},
		{Name: "train_number", Type: field.TypeString},
		{Name: "train_name", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString},
		{Name: "first_seen_time", Type: field.TypeTime, Nullable: true},
		{Name: "last_seen_time", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled", Type: field.TypeBool, Default: false},
		{Name: "continuation_journey_id", Type: field.TypeString, Nullable: true},
		{Name: "state_checksum", Type: field.TypeString, Nullable: true},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "update_time", Type: field.TypeTime},
	}
	// JourneysTable holds the schema information for the "journeys" table.
	JourneysTable = &schema.Table{
		Name:       "journeys",
		Columns:    JourneysColumns,
		PrimaryKey: []*schema.Column{JourneysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "journey_server_id",
				Unique:  false,
				Columns: []*schema.Column{JourneysColumns[2]},
			},
			{
				Name:    "journey_server_id_train_number",
				Unique:  false,
				Columns: []*schema.Column{JourneysColumns[2], JourneysColumns[3]},
			},
			{
				Name:    "journey_update_time",
				Unique:  false,
				Columns: []*schema.Column{JourneysColumns[12]},
			},
		},
	}
	// JourneyEventsColumns holds the columns for the "journey_events" table.
	JourneyEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_index", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"ARRIVAL", "DEPARTURE"}},
		{Name: "point_id", Type: field.TypeString},
		{Name: "point_name", Type: field.TypeString, Nullable: true},
		{Name: "in_playable_border", Type: field.TypeBool, Default: false},
		{Name: "scheduled_time", Type: field.TypeTime},
		{Name: "realtime_time", Type: field.TypeTime, Nullable: true},
		{Name: "realtime_time_type", Type: field.TypeEnum, Enums: []string{"SCHEDULE", "PREDICTION", "REAL"}, Default: "SCHEDULE"},
		{Name: "transport", Type: field.TypeJSON, Nullable: true},
		{Name: "stop_type", Type: field.TypeEnum, Enums: []string{"NONE", "NON_PASSENGER", "PASSENGER"}, Default: "NONE"},
		{Name: "scheduled_platform", Type: field.TypeInt, Nullable: true},
		{Name: "scheduled_track", Type: field.TypeInt, Nullable: true},
		{Name: "realtime_platform", Type: field.TypeInt, Nullable: true},
		{Name: "realtime_track", Type: field.TypeInt, Nullable: true},
		{Name: "cancelled", Type: field.TypeBool, Default: false},
		{Name: "additional", Type: field.TypeBool, Default: false},
		{Name: "journey_id", Type: field.TypeString},
	}
	// JourneyEventsTable holds the schema information for the "journey_events" table.
	JourneyEventsTable = &schema.Table{
		Name:       "journey_events",
		Columns:    JourneyEventsColumns,
		PrimaryKey: []*schema.Column{JourneyEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "journey_events_journeys_events",
				Columns:    []*schema.Column{JourneyEventsColumns[17]},
				RefColumns: []*schema.Column{JourneysColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "journeyevent_journey_id_event_index",
				Unique:  true,
				Columns: []*schema.Column{JourneyEventsColumns[17], JourneyEventsColumns[1]},
			},
			{
				Name:    "journeyevent_point_id",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[3]},
			},
		},
	}
	// ServersColumns holds the columns for the "servers" table.
	ServersColumns = []*schema.Column{
		{Name: "server_id", Type: field.TypeString, Unique: true},
		{Name: "foreign_id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString},
		{Name: "region", Type: field.TypeEnum, Enums: []string{"ASIA", "EUROPE", "US_NORTH"}},
		{Name: "scenery", Type: field.TypeString, Nullable: true},
		{Name: "utc_offset_hours", Type: field.TypeInt, Default: 0},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "registered_since", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
	}
	// ServersTable holds the schema information for the "servers" table.
	ServersTable = &schema.Table{
		Name:       "servers",
		Columns:    ServersColumns,
		PrimaryKey: []*schema.Column{ServersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "server_code",
				Unique:  false,
				Columns: []*schema.Column{ServersColumns[2]},
			},
			{
				Name:    "server_deleted",
				Unique:  false,
				Columns: []*schema.Column{ServersColumns[8]},
			},
		},
	}
	// VehicleSequencesColumns holds the columns for the "vehicle_sequences" table.
	VehicleSequencesColumns = []*schema.Column{
		{Name: "sequence_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PREDICTION", "REAL"}},
		{Name: "vehicles", Type: field.TypeJSON},
		{Name: "resolve_key", Type: field.TypeString, Unique: true},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "journey_id", Type: field.TypeString, Unique: true},
	}
	// VehicleSequencesTable holds the schema information for the "vehicle_sequences" table.
	VehicleSequencesTable = &schema.Table{
		Name:       "vehicle_sequences",
		Columns:    VehicleSequencesColumns,
		PrimaryKey: []*schema.Column{VehicleSequencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vehicle_sequences_journeys_sequence",
				Columns:    []*schema.Column{VehicleSequencesColumns[5]},
				RefColumns: []*schema.Column{JourneysColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vehiclesequence_status",
				Unique:  false,
				Columns: []*schema.Column{VehicleSequencesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DispatchPostsTable,
		JourneysTable,
		JourneyEventsTable,
		ServersTable,
		VehicleSequencesTable,
	}
)

func init() {
	JourneyEventsTable.ForeignKeys[0].RefTable = JourneysTable
	VehicleSequencesTable.ForeignKeys[0].RefTable = JourneysTable
}
