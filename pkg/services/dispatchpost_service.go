package services

import (
	"context"
	"fmt"

	"github.com/simtrack/sit-collector/ent"
	"github.com/simtrack/sit-collector/ent/dispatchpost"
)

// DispatchPostRecord contains the reconciled state of one dispatch post.
// Current dispatcher identities are realtime-only and never persisted.
type DispatchPostRecord struct {
	ID             string
	ForeignID      string
	ServerID       string
	Name           string
	PointID        *string
	Latitude       float64
	Longitude      float64
	Difficulty     int
	MainImageURL   string
	DetailImageURL string
}

// DispatchPostService handles persistence of dispatch posts.
type DispatchPostService struct {
	client *ent.Client
}

// NewDispatchPostService creates a new DispatchPostService.
func NewDispatchPostService(client *ent.Client) *DispatchPostService {
	if client == nil {
		panic("NewDispatchPostService: client must not be nil")
	}
	return &DispatchPostService{client: client}
}

// Upsert creates or updates a dispatch post. A post that reappears after
// having been marked deleted is resurrected.
func (s *DispatchPostService) Upsert(ctx context.Context, rec DispatchPostRecord) (*ent.DispatchPost, error) {
	if rec.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if rec.ServerID == "" {
		return nil, NewValidationError("server_id", "required")
	}
	if rec.Difficulty < 1 || rec.Difficulty > 5 {
		return nil, NewValidationError("difficulty", "must be between 1 and 5")
	}

	existing, err := s.client.DispatchPost.Query().
		Where(dispatchpost.ID(rec.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query dispatch post: %w", err)
	}

	if existing == nil {
		created, err := s.create(ctx, rec)
		if err == nil {
			return created, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, err
		}
	}

	updated, err := s.client.DispatchPost.UpdateOneID(rec.ID).
		SetName(rec.Name).
		SetNillablePointID(rec.PointID).
		SetLatitude(rec.Latitude).
		SetLongitude(rec.Longitude).
		SetDifficulty(rec.Difficulty).
		SetMainImageURL(rec.MainImageURL).
		SetDetailImageURL(rec.DetailImageURL).
		SetDeleted(false).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update dispatch post: %w", err)
	}
	return updated, nil
}

func (s *DispatchPostService) create(ctx context.Context, rec DispatchPostRecord) (*ent.DispatchPost, error) {
	created, err := s.client.DispatchPost.Create().
		SetID(rec.ID).
		SetForeignID(rec.ForeignID).
		SetServerID(rec.ServerID).
		SetName(rec.Name).
		SetNillablePointID(rec.PointID).
		SetLatitude(rec.Latitude).
		SetLongitude(rec.Longitude).
		SetDifficulty(rec.Difficulty).
		SetMainImageURL(rec.MainImageURL).
		SetDetailImageURL(rec.DetailImageURL).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create dispatch post: %w", err)
	}
	return created, nil
}

// ListByServer returns every non-deleted dispatch post of one server.
func (s *DispatchPostService) ListByServer(ctx context.Context, serverID string) ([]*ent.DispatchPost, error) {
	posts, err := s.client.DispatchPost.Query().
		Where(
			dispatchpost.ServerID(serverID),
			dispatchpost.Deleted(false),
		).
		Order(ent.Asc(dispatchpost.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch posts: %w", err)
	}
	return posts, nil
}

// MarkMissingDeleted flags every post of the server absent from the current
// upstream listing as deleted and returns the affected ids. An empty
// listing is refused.
func (s *DispatchPostService) MarkMissingDeleted(ctx context.Context, serverID string, presentIDs []string) ([]string, error) {
	if serverID == "" {
		return nil, NewValidationError("server_id", "required")
	}
	if len(presentIDs) == 0 {
		return nil, NewValidationError("present_ids", "refusing to delete all posts on empty listing")
	}

	ids, err := s.client.DispatchPost.Query().
		Where(
			dispatchpost.ServerID(serverID),
			dispatchpost.IDNotIn(presentIDs...),
			dispatchpost.Deleted(false),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query missing dispatch posts: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	_, err = s.client.DispatchPost.Update().
		Where(dispatchpost.IDIn(ids...)).
		SetDeleted(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark missing dispatch posts deleted: %w", err)
	}
	return ids, nil
}
