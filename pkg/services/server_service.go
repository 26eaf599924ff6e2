package services

import (
	"context"
	"fmt"
	"time"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/server"
)

// ServerRecord contains the reconciled state of one game server as the
// collector wants it persisted. Online state is deliberately absent — it is
// realtime-only and never hits the database.
type ServerRecord struct {
	ID              string
	ForeignID       string
	Code            string
	Region          server.Region
	Scenery         string
	UTCOffsetHours  int
	Language        string
	Tags            []string
	RegisteredSince time.Time
}

// ServerService handles persistence of game servers.
type ServerService struct {
	client *ent.Client
}

// NewServerService creates a new ServerService.
func NewServerService(client *ent.Client) *ServerService {
	if client == nil {
		panic("NewServerService: client must not be nil")
	}
	return &ServerService{client: client}
}

// Upsert creates the server row if it does not exist yet and updates the
// mutable fields otherwise. A server that reappears after having been
// marked deleted is resurrected.
func (s *ServerService) Upsert(ctx context.Context, rec ServerRecord) (*ent.Server, error) {
	if rec.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if rec.ForeignID == "" {
		return nil, NewValidationError("foreign_id", "required")
	}

	existing, err := s.client.Server.Query().
		Where(server.ID(rec.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query server: %w", err)
	}

	if existing == nil {
		created, err := s.create(ctx, rec)
		if err == nil {
			return created, nil
		}
		// Lost a create race with another poll cycle; fall through to update.
		if !ent.IsConstraintError(err) {
			return nil, err
		}
	}

	updated, err := s.client.Server.UpdateOneID(rec.ID).
		SetCode(rec.Code).
		SetRegion(rec.Region).
		SetScenery(rec.Scenery).
		SetUtcOffsetHours(rec.UTCOffsetHours).
		SetLanguage(rec.Language).
		SetTags(rec.Tags).
		SetDeleted(false).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update server: %w", err)
	}
	return updated, nil
}

func (s *ServerService) create(ctx context.Context, rec ServerRecord) (*ent.Server, error) {
	created, err := s.client.Server.Create().
		SetID(rec.ID).
		SetForeignID(rec.ForeignID).
		SetCode(rec.Code).
		SetRegion(rec.Region).
		SetScenery(rec.Scenery).
		SetUtcOffsetHours(rec.UTCOffsetHours).
		SetLanguage(rec.Language).
		SetTags(rec.Tags).
		SetRegisteredSince(rec.RegisteredSince).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	return created, nil
}

// List returns all servers that are not marked deleted.
func (s *ServerService) List(ctx context.Context) ([]*ent.Server, error) {
	servers, err := s.client.Server.Query().
		Where(server.Deleted(false)).
		Order(ent.Asc(server.FieldCode)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	return servers, nil
}

// Get returns a server by its id.
func (s *ServerService) Get(ctx context.Context, id string) (*ent.Server, error) {
	srv, err := s.client.Server.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}
	return srv, nil
}

// MarkMissingDeleted flags every server absent from the current upstream
// listing as deleted and returns the affected ids. An empty listing is
// refused: a collapsed upstream response must not wipe the fleet.
func (s *ServerService) MarkMissingDeleted(ctx context.Context, presentIDs []string) ([]string, error) {
	if len(presentIDs) == 0 {
		return nil, NewValidationError("present_ids", "refusing to delete all servers on empty listing")
	}

	ids, err := s.client.Server.Query().
		Where(
			server.IDNotIn(presentIDs...),
			server.Deleted(false),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query missing servers: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	_, err = s.client.Server.Update().
		Where(server.IDIn(ids...)).
		SetDeleted(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark missing servers deleted: %w", err)
	}
	return ids, nil
}
