package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates the PostgreSQL partial indexes that Ent
// cannot express in schema definitions.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Covering index over playable events. Cancellation inference walks a
	// journey's playable events in index order and needs only these columns.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS journey_events_playable_covering
		ON journey_events (journey_id, event_index)
		INCLUDE (event_id, scheduled_time, cancelled, realtime_time_type)
		WHERE in_playable_border = TRUE`)
	if err != nil {
		return fmt.Errorf("create playable covering index: %w", err)
	}

	return nil
}
