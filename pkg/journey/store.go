package journey

import (
	"context"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/pkg/services"
)

// Store is the persistence surface the reconciler needs. It is satisfied by
// services.JourneyService; tests substitute an in-memory fake.
type Store interface {
	GetByRunID(ctx context.Context, runID string) (*ent.Journey, error)
	SaveWithEvents(ctx context.Context, rec services.JourneyRecord, events []services.EventRecord) (*ent.Journey, error)
	FindContinuation(ctx context.Context, serverID, trainNumber, originPointID string, departure time.Time) (*ent.Journey, error)
}

// toRecord converts the in-memory journey to its persistence shape.
func (j *Journey) toRecord() (services.JourneyRecord, []services.EventRecord) {
	rec := services.JourneyRecord{
		ID:                    j.ID,
		RunID:                 j.RunID,
		ServerID:              j.ServerID,
		TrainNumber:           j.TrainNumber,
		TrainName:             j.TrainName,
		Category:              j.Category,
		FirstSeenTime:         j.FirstSeen,
		LastSeenTime:          j.LastSeen,
		Cancelled:             j.Cancelled,
		ContinuationJourneyID: j.ContinuationID,
		StateChecksum:         j.Checksum(),
	}
	events := make([]services.EventRecord, 0, len(j.Events))
	for _, ev := range j.Events {
		events = append(events, services.EventRecord{
			ID:                ev.ID,
			Index:             ev.Index,
			Type:              journeyevent.EventType(ev.Type),
			PointID:           ev.PointID,
			PointName:         ev.PointName,
			InPlayableBorder:  ev.InPlayableBorder,
			ScheduledTime:     ev.Scheduled,
			RealtimeTime:      ev.Realtime,
			RealtimeTimeType:  journeyevent.RealtimeTimeType(ev.TimeType),
			Transport:         ev.Transport,
			StopType:          journeyevent.StopType(ev.Stop),
			ScheduledPlatform: ev.ScheduledPlatform,
			ScheduledTrack:    ev.ScheduledTrack,
			RealtimePlatform:  ev.RealtimePlatform,
			RealtimeTrack:     ev.RealtimeTrack,
			Cancelled:         ev.Cancelled,
			Additional:        ev.Additional,
		})
	}
	return rec, events
}

// fromEntity rebuilds the in-memory journey from a persisted row, restoring
// the lifecycle state from the stored fields.
func fromEntity(e *ent.Journey) *Journey {
	j := &Journey{
		ID:             e.ID,
		RunID:          e.RunID,
		ServerID:       e.ServerID,
		TrainNumber:    e.TrainNumber,
		TrainName:      e.TrainName,
		Category:       e.Category,
		FirstSeen:      e.FirstSeenTime,
		LastSeen:       e.LastSeenTime,
		Cancelled:      e.Cancelled,
		ContinuationID: e.ContinuationJourneyID,
		lastReached:    -1,
		live:           newLiveState(),
	}
	for _, row := range e.Edges.Events {
		ev := &Event{
			ID:                row.ID,
			Index:             row.EventIndex,
			Type:              EventType(row.EventType),
			PointID:           row.PointID,
			PointName:         row.PointName,
			InPlayableBorder:  row.InPlayableBorder,
			Scheduled:         row.ScheduledTime,
			Realtime:          row.RealtimeTime,
			TimeType:          TimeType(row.RealtimeTimeType),
			Transport:         row.Transport,
			Stop:              StopType(row.StopType),
			ScheduledPlatform: row.ScheduledPlatform,
			ScheduledTrack:    row.ScheduledTrack,
			RealtimePlatform:  row.RealtimePlatform,
			RealtimeTrack:     row.RealtimeTrack,
			Cancelled:         row.Cancelled,
			Additional:        row.Additional,
		}
		j.Events = append(j.Events, ev)
		if ev.TimeType == TimeReal && ev.Index > j.lastReached {
			j.lastReached = ev.Index
			j.lastPointID = ev.PointID
		}
	}

	switch {
	case j.Cancelled:
		j.state = StateCancelled
	case j.LastSeen != nil:
		j.state = StateCompleted
	case j.FirstSeen != nil:
		j.state = StateActive
	default:
		j.state = StateUnseen
	}
	return j
}
