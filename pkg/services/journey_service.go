package services

import (
	"context"
	"fmt"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/journeyevent"
)

// maxDeleteBatch caps a single journey DELETE statement. Each id is one
// bind parameter and PostgreSQL's wire protocol tops out at 65535, so stay
// well below it.
const maxDeleteBatch = 30000

// JourneyRecord contains the reconciled state of one journey row.
type JourneyRecord struct {
	ID                    string
	RunID                 string
	ServerID              string
	TrainNumber           string
	TrainName             string
	Category              string
	FirstSeenTime         *time.Time
	LastSeenTime          *time.Time
	Cancelled             bool
	ContinuationJourneyID *string
	StateChecksum         string
}

// EventRecord contains the reconciled state of one journey event. The id is
// deterministic, so the same timetable row always maps to the same row here.
type EventRecord struct {
	ID                string
	Index             int
	Type              journeyevent.EventType
	PointID           string
	PointName         string
	InPlayableBorder  bool
	ScheduledTime     time.Time
	RealtimeTime      *time.Time
	RealtimeTimeType  journeyevent.RealtimeTimeType
	Transport         map[string]any
	StopType          journeyevent.StopType
	ScheduledPlatform *int
	ScheduledTrack    *int
	RealtimePlatform  *int
	RealtimeTrack     *int
	Cancelled         bool
	Additional        bool
}

// JourneyService handles persistence of journeys and their events.
type JourneyService struct {
	client *ent.Client
}

// NewJourneyService creates a new JourneyService.
func NewJourneyService(client *ent.Client) *JourneyService {
	if client == nil {
		panic("NewJourneyService: client must not be nil")
	}
	return &JourneyService{client: client}
}

// SaveWithEvents persists the journey row together with its full event list
// in a single transaction. Events already present are updated in place,
// new ones are inserted, and events no longer part of the timetable are
// removed. Callers are expected to suppress no-op saves via the state
// checksum before calling.
func (s *JourneyService) SaveWithEvents(ctx context.Context, rec JourneyRecord, events []EventRecord) (*ent.Journey, error) {
	if rec.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if rec.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if rec.ServerID == "" {
		return nil, NewValidationError("server_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	saved, err := s.upsertJourney(ctx, tx, rec)
	if err != nil {
		return nil, err
	}

	existing, err := tx.JourneyEvent.Query().
		Where(journeyevent.JourneyID(rec.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query journey events: %w", err)
	}
	existingByID := make(map[string]*ent.JourneyEvent, len(existing))
	for _, ev := range existing {
		existingByID[ev.ID] = ev
	}

	var creates []*ent.JourneyEventCreate
	keep := make(map[string]struct{}, len(events))
	for _, ev := range events {
		keep[ev.ID] = struct{}{}
		if _, ok := existingByID[ev.ID]; ok {
			if err := s.updateEvent(ctx, tx, ev); err != nil {
				return nil, err
			}
			continue
		}
		creates = append(creates, s.buildEventCreate(tx, rec.ID, ev))
	}
	if len(creates) > 0 {
		if _, err := tx.JourneyEvent.CreateBulk(creates...).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create journey events: %w", err)
		}
	}

	var stale []string
	for id := range existingByID {
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}
	if len(stale) > 0 {
		if _, err := tx.JourneyEvent.Delete().
			Where(journeyevent.IDIn(stale...)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to delete stale journey events: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit journey save: %w", err)
	}
	return saved, nil
}

func (s *JourneyService) upsertJourney(ctx context.Context, tx *ent.Tx, rec JourneyRecord) (*ent.Journey, error) {
	existing, err := tx.Journey.Query().
		Where(journey.ID(rec.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query journey: %w", err)
	}

	if existing == nil {
		created, err := tx.Journey.Create().
			SetID(rec.ID).
			SetRunID(rec.RunID).
			SetServerID(rec.ServerID).
			SetTrainNumber(rec.TrainNumber).
			SetTrainName(rec.TrainName).
			SetCategory(rec.Category).
			SetNillableFirstSeenTime(rec.FirstSeenTime).
			SetNillableLastSeenTime(rec.LastSeenTime).
			SetCancelled(rec.Cancelled).
			SetNillableContinuationJourneyID(rec.ContinuationJourneyID).
			SetStateChecksum(rec.StateChecksum).
			Save(ctx)
		if err == nil {
			return created, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create journey: %w", err)
		}
		// Lost a create race; fall through to update.
	}

	builder := tx.Journey.UpdateOneID(rec.ID).
		SetTrainNumber(rec.TrainNumber).
		SetTrainName(rec.TrainName).
		SetCategory(rec.Category).
		SetNillableFirstSeenTime(rec.FirstSeenTime).
		SetCancelled(rec.Cancelled).
		SetNillableContinuationJourneyID(rec.ContinuationJourneyID).
		SetStateChecksum(rec.StateChecksum).
		SetDeleted(false)
	if rec.LastSeenTime != nil {
		builder.SetLastSeenTime(*rec.LastSeenTime)
	} else {
		builder.ClearLastSeenTime()
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update journey: %w", err)
	}
	return updated, nil
}

func (s *JourneyService) buildEventCreate(tx *ent.Tx, journeyID string, ev EventRecord) *ent.JourneyEventCreate {
	return tx.JourneyEvent.Create().
		SetID(ev.ID).
		SetJourneyID(journeyID).
		SetEventIndex(ev.Index).
		SetEventType(ev.Type).
		SetPointID(ev.PointID).
		SetPointName(ev.PointName).
		SetInPlayableBorder(ev.InPlayableBorder).
		SetScheduledTime(ev.ScheduledTime).
		SetNillableRealtimeTime(ev.RealtimeTime).
		SetRealtimeTimeType(ev.RealtimeTimeType).
		SetTransport(ev.Transport).
		SetStopType(ev.StopType).
		SetNillableScheduledPlatform(ev.ScheduledPlatform).
		SetNillableScheduledTrack(ev.ScheduledTrack).
		SetNillableRealtimePlatform(ev.RealtimePlatform).
		SetNillableRealtimeTrack(ev.RealtimeTrack).
		SetCancelled(ev.Cancelled).
		SetAdditional(ev.Additional)
}

func (s *JourneyService) updateEvent(ctx context.Context, tx *ent.Tx, ev EventRecord) error {
	builder := tx.JourneyEvent.UpdateOneID(ev.ID).
		SetEventIndex(ev.Index).
		SetPointName(ev.PointName).
		SetInPlayableBorder(ev.InPlayableBorder).
		SetScheduledTime(ev.ScheduledTime).
		SetRealtimeTimeType(ev.RealtimeTimeType).
		SetTransport(ev.Transport).
		SetStopType(ev.StopType).
		SetCancelled(ev.Cancelled).
		SetAdditional(ev.Additional)
	setNillableInt := func(v *int, set func(int) *ent.JourneyEventUpdateOne, clear func() *ent.JourneyEventUpdateOne) {
		if v != nil {
			set(*v)
		} else {
			clear()
		}
	}
	setNillableInt(ev.ScheduledPlatform, builder.SetScheduledPlatform, builder.ClearScheduledPlatform)
	setNillableInt(ev.ScheduledTrack, builder.SetScheduledTrack, builder.ClearScheduledTrack)
	setNillableInt(ev.RealtimePlatform, builder.SetRealtimePlatform, builder.ClearRealtimePlatform)
	setNillableInt(ev.RealtimeTrack, builder.SetRealtimeTrack, builder.ClearRealtimeTrack)
	if ev.RealtimeTime != nil {
		builder.SetRealtimeTime(*ev.RealtimeTime)
	} else {
		builder.ClearRealtimeTime()
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to update journey event %s: %w", ev.ID, err)
	}
	return nil
}

// GetByRunID returns the journey identified by the upstream run id, with
// events (ordered by index) and the vehicle sequence eager-loaded.
func (s *JourneyService) GetByRunID(ctx context.Context, runID string) (*ent.Journey, error) {
	j, err := s.client.Journey.Query().
		Where(journey.RunID(runID)).
		WithEvents(func(q *ent.JourneyEventQuery) {
			q.Order(ent.Asc(journeyevent.FieldEventIndex))
		}).
		WithSequence().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get journey by run id: %w", err)
	}
	return j, nil
}

// Get returns a journey by id with its events ordered by index.
func (s *JourneyService) Get(ctx context.Context, id string) (*ent.Journey, error) {
	j, err := s.client.Journey.Query().
		Where(journey.ID(id)).
		WithEvents(func(q *ent.JourneyEventQuery) {
			q.Order(ent.Asc(journeyevent.FieldEventIndex))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get journey: %w", err)
	}
	return j, nil
}

// FindContinuation returns the journey on the server whose train number
// matches and whose first event departs from the given point at the given
// scheduled time. Used to chain a terminated journey to its continuation.
func (s *JourneyService) FindContinuation(ctx context.Context, serverID, trainNumber, originPointID string, departure time.Time) (*ent.Journey, error) {
	j, err := s.client.Journey.Query().
		Where(
			journey.ServerID(serverID),
			journey.TrainNumber(trainNumber),
			journey.HasEventsWith(
				journeyevent.EventIndex(0),
				journeyevent.PointID(originPointID),
				journeyevent.ScheduledTimeEQ(departure),
			),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find continuation journey: %w", err)
	}
	return j, nil
}

// MarkLastSeen stamps the time the run disappeared from the live listing.
func (s *JourneyService) MarkLastSeen(ctx context.Context, id string, t time.Time) error {
	err := s.client.Journey.UpdateOneID(id).
		SetLastSeenTime(t).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark journey last seen: %w", err)
	}
	return nil
}

// DeleteUpdatedBefore removes journeys whose last write predates the cutoff,
// in batches. Events and vehicle sequences go with them via cascade.
// Returns the total number of journeys removed.
func (s *JourneyService) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time, batchSize int) (int, error) {
	if batchSize <= 0 || batchSize > maxDeleteBatch {
		batchSize = maxDeleteBatch
	}

	total := 0
	for {
		ids, err := s.client.Journey.Query().
			Where(journey.UpdateTimeLT(cutoff)).
			Limit(batchSize).
			IDs(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to query expired journeys: %w", err)
		}
		if len(ids) == 0 {
			return total, nil
		}

		n, err := s.client.Journey.Delete().
			Where(journey.IDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to delete expired journeys: %w", err)
		}
		total += n

		if len(ids) < batchSize {
			return total, nil
		}
	}
}
