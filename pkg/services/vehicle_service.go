package services

import (
	"context"
	"fmt"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// SequenceRecord contains the vehicle consist of one journey.
type SequenceRecord struct {
	ID         string
	JourneyID  string
	Status     vehiclesequence.Status
	Vehicles   []map[string]any
	ResolveKey string
}

// VehicleService handles persistence of vehicle sequences. The resolve key
// lets a consist predicted from a past run carry forward to the next journey
// of the same scheduled slot until the real one is observed.
type VehicleService struct {
	client *ent.Client
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(client *ent.Client) *VehicleService {
	if client == nil {
		panic("NewVehicleService: client must not be nil")
	}
	return &VehicleService{client: client}
}

// Upsert stores the sequence for its journey. A REAL sequence is never
// downgraded to a PREDICTION. If no row exists for the journey but a
// predicted row holds the same resolve key, that row is carried over to the
// new journey instead of inserting a duplicate.
func (s *VehicleService) Upsert(ctx context.Context, rec SequenceRecord) (*ent.VehicleSequence, error) {
	if rec.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if rec.JourneyID == "" {
		return nil, NewValidationError("journey_id", "required")
	}
	if rec.ResolveKey == "" {
		return nil, NewValidationError("resolve_key", "required")
	}
	if len(rec.Vehicles) == 0 {
		return nil, NewValidationError("vehicles", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	saved, err := s.upsert(ctx, tx, rec)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sequence save: %w", err)
	}
	return saved, nil
}

func (s *VehicleService) upsert(ctx context.Context, tx *ent.Tx, rec SequenceRecord) (*ent.VehicleSequence, error) {
	existing, err := tx.VehicleSequence.Query().
		Where(vehiclesequence.JourneyID(rec.JourneyID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query vehicle sequence: %w", err)
	}

	if existing != nil {
		if existing.Status == vehiclesequence.StatusREAL && rec.Status == vehiclesequence.StatusPREDICTION {
			return existing, nil
		}
		updated, err := tx.VehicleSequence.UpdateOneID(existing.ID).
			SetStatus(rec.Status).
			SetVehicles(rec.Vehicles).
			SetResolveKey(rec.ResolveKey).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update vehicle sequence: %w", err)
		}
		return updated, nil
	}

	carried, err := tx.VehicleSequence.Query().
		Where(vehiclesequence.ResolveKey(rec.ResolveKey)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query sequence by resolve key: %w", err)
	}
	if carried != nil && carried.Status == vehiclesequence.StatusPREDICTION {
		updated, err := tx.VehicleSequence.UpdateOneID(carried.ID).
			SetJourneyID(rec.JourneyID).
			SetStatus(rec.Status).
			SetVehicles(rec.Vehicles).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to carry over vehicle sequence: %w", err)
		}
		return updated, nil
	}
	if carried != nil {
		// A REAL consist already owns this slot; the new journey gets its
		// own row once a distinguishing key arrives.
		return carried, nil
	}

	created, err := tx.VehicleSequence.Create().
		SetID(rec.ID).
		SetJourneyID(rec.JourneyID).
		SetStatus(rec.Status).
		SetVehicles(rec.Vehicles).
		SetResolveKey(rec.ResolveKey).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create vehicle sequence: %w", err)
	}
	return created, nil
}

// SeedPrediction carries the consist currently holding the resolve key onto
// a newly scheduled journey as a PREDICTION, until the real consist of the
// run is observed. The key row moves: a past run of the slot gives up its
// sequence to the upcoming one. Returns ErrNotFound when no prior sighting
// of the slot exists; a journey that already has a sequence is left alone.
func (s *VehicleService) SeedPrediction(ctx context.Context, journeyID, resolveKey string) (*ent.VehicleSequence, error) {
	if journeyID == "" {
		return nil, NewValidationError("journey_id", "required")
	}
	if resolveKey == "" {
		return nil, NewValidationError("resolve_key", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.VehicleSequence.Query().
		Where(vehiclesequence.JourneyID(journeyID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query vehicle sequence: %w", err)
	}
	if existing != nil {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit prediction seed: %w", err)
		}
		return existing, nil
	}

	carried, err := tx.VehicleSequence.Query().
		Where(vehiclesequence.ResolveKey(resolveKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query sequence by resolve key: %w", err)
	}

	seeded, err := tx.VehicleSequence.UpdateOneID(carried.ID).
		SetJourneyID(journeyID).
		SetStatus(vehiclesequence.StatusPREDICTION).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed vehicle sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit prediction seed: %w", err)
	}
	return seeded, nil
}

// GetByJourney returns the sequence of one journey.
func (s *VehicleService) GetByJourney(ctx context.Context, journeyID string) (*ent.VehicleSequence, error) {
	seq, err := s.client.VehicleSequence.Query().
		Where(vehiclesequence.JourneyID(journeyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle sequence: %w", err)
	}
	return seq, nil
}

// ResolveByKey returns the sequence currently bound to the resolve key.
func (s *VehicleService) ResolveByKey(ctx context.Context, key string) (*ent.VehicleSequence, error) {
	seq, err := s.client.VehicleSequence.Query().
		Where(vehiclesequence.ResolveKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve vehicle sequence: %w", err)
	}
	return seq, nil
}
