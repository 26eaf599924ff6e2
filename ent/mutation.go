// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/simtrack/sit-collector/ent/dispatchpost"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/ent/predicate"
	"github.com/simtrack/sit-collector/ent/server"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDispatchPost    = "DispatchPost"
	TypeJourney         = "Journey"
	TypeJourneyEvent    = "JourneyEvent"
	TypeServer          = "Server"
	TypeVehicleSequence = "VehicleSequence"
)

// DispatchPostMutation represents an operation that mutates the DispatchPost nodes in the graph.
type DispatchPostMutation struct {
	config
	op               Op
	typ              string
	id               *string
	foreign_id       *string
	server_id        *string
	name             *string
	point_id         *string
	latitude         *float64
	addlatitude      *float64
	longitude        *float64
	addlongitude     *float64
	difficulty       *int
	adddifficulty    *int
	main_image_url   *string
	detail_image_url *string
	deleted          *bool
	update_time      *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*DispatchPost, error)
	predicates       []predicate.DispatchPost
}

var _ ent.Mutation = (*DispatchPostMutation)(nil)

// dispatchpostOption allows management of the mutation configuration using functional options.
type dispatchpostOption func(*DispatchPostMutation)

// newDispatchPostMutation creates new mutation for the DispatchPost entity.
func newDispatchPostMutation(c config, op Op, opts ...dispatchpostOption) *DispatchPostMutation {
	m := &DispatchPostMutation{
		config:        c,
		op:            op,
		typ:           TypeDispatchPost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDispatchPostID sets the ID field of the mutation.
func withDispatchPostID(id string) dispatchpostOption {
	return func(m *DispatchPostMutation) {
		var (
			err   error
			once  sync.Once
			value *DispatchPost
		)
		m.oldValue = func(ctx context.Context) (*DispatchPost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DispatchPost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDispatchPost sets the old DispatchPost of the mutation.
func withDispatchPost(node *DispatchPost) dispatchpostOption {
	return func(m *DispatchPostMutation) {
		m.oldValue = func(context.Context) (*DispatchPost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DispatchPostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DispatchPostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DispatchPost entities.
func (m *DispatchPostMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DispatchPostMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DispatchPostMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DispatchPost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetForeignID sets the "foreign_id" field.
func (m *DispatchPostMutation) SetForeignID(s string) {
	m.foreign_id = &s
}

// ForeignID returns the value of the "foreign_id" field in the mutation.
func (m *DispatchPostMutation) ForeignID() (r string, exists bool) {
	v := m.foreign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldForeignID returns the old "foreign_id" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldForeignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForeignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForeignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForeignID: %w", err)
	}
	return oldValue.ForeignID, nil
}

// ResetForeignID resets all changes to the "foreign_id" field.
func (m *DispatchPostMutation) ResetForeignID() {
	m.foreign_id = nil
}

// SetServerID sets the "server_id" field.
func (m *DispatchPostMutation) SetServerID(s string) {
	m.server_id = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *DispatchPostMutation) ServerID() (r string, exists bool) {
	v := m.server_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *DispatchPostMutation) ResetServerID() {
	m.server_id = nil
}

// SetName sets the "name" field.
func (m *DispatchPostMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DispatchPostMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DispatchPostMutation) ResetName() {
	m.name = nil
}

// SetPointID sets the "point_id" field.
func (m *DispatchPostMutation) SetPointID(s string) {
	m.point_id = &s
}

// PointID returns the value of the "point_id" field in the mutation.
func (m *DispatchPostMutation) PointID() (r string, exists bool) {
	v := m.point_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPointID returns the old "point_id" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldPointID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointID: %w", err)
	}
	return oldValue.PointID, nil
}

// ClearPointID clears the value of the "point_id" field.
func (m *DispatchPostMutation) ClearPointID() {
	m.point_id = nil
	m.clearedFields[dispatchpost.FieldPointID] = struct{}{}
}

// PointIDCleared returns if the "point_id" field was cleared in this mutation.
func (m *DispatchPostMutation) PointIDCleared() bool {
	_, ok := m.clearedFields[dispatchpost.FieldPointID]
	return ok
}

// ResetPointID resets all changes to the "point_id" field.
func (m *DispatchPostMutation) ResetPointID() {
	m.point_id = nil
	delete(m.clearedFields, dispatchpost.FieldPointID)
}

// SetLatitude sets the "latitude" field.
func (m *DispatchPostMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *DispatchPostMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *DispatchPostMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *DispatchPostMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *DispatchPostMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
}

// SetLongitude sets the "longitude" field.
func (m *DispatchPostMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *DispatchPostMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *DispatchPostMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *DispatchPostMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *DispatchPostMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *DispatchPostMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *DispatchPostMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *DispatchPostMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *DispatchPostMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *DispatchPostMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetMainImageURL sets the "main_image_url" field.
func (m *DispatchPostMutation) SetMainImageURL(s string) {
	m.main_image_url = &s
}

// MainImageURL returns the value of the "main_image_url" field in the mutation.
func (m *DispatchPostMutation) MainImageURL() (r string, exists bool) {
	v := m.main_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMainImageURL returns the old "main_image_url" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldMainImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMainImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMainImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMainImageURL: %w", err)
	}
	return oldValue.MainImageURL, nil
}

// ClearMainImageURL clears the value of the "main_image_url" field.
func (m *DispatchPostMutation) ClearMainImageURL() {
	m.main_image_url = nil
	m.clearedFields[dispatchpost.FieldMainImageURL] = struct{}{}
}

// MainImageURLCleared returns if the "main_image_url" field was cleared in this mutation.
func (m *DispatchPostMutation) MainImageURLCleared() bool {
	_, ok := m.clearedFields[dispatchpost.FieldMainImageURL]
	return ok
}

// ResetMainImageURL resets all changes to the "main_image_url" field.
func (m *DispatchPostMutation) ResetMainImageURL() {
	m.main_image_url = nil
	delete(m.clearedFields, dispatchpost.FieldMainImageURL)
}

// SetDetailImageURL sets the "detail_image_url" field.
func (m *DispatchPostMutation) SetDetailImageURL(s string) {
	m.detail_image_url = &s
}

// DetailImageURL returns the value of the "detail_image_url" field in the mutation.
func (m *DispatchPostMutation) DetailImageURL() (r string, exists bool) {
	v := m.detail_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDetailImageURL returns the old "detail_image_url" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldDetailImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetailImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetailImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetailImageURL: %w", err)
	}
	return oldValue.DetailImageURL, nil
}

// ClearDetailImageURL clears the value of the "detail_image_url" field.
func (m *DispatchPostMutation) ClearDetailImageURL() {
	m.detail_image_url = nil
	m.clearedFields[dispatchpost.FieldDetailImageURL] = struct{}{}
}

// DetailImageURLCleared returns if the "detail_image_url" field was cleared in this mutation.
func (m *DispatchPostMutation) DetailImageURLCleared() bool {
	_, ok := m.clearedFields[dispatchpost.FieldDetailImageURL]
	return ok
}

// ResetDetailImageURL resets all changes to the "detail_image_url" field.
func (m *DispatchPostMutation) ResetDetailImageURL() {
	m.detail_image_url = nil
	delete(m.clearedFields, dispatchpost.FieldDetailImageURL)
}

// SetDeleted sets the "deleted" field.
func (m *DispatchPostMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *DispatchPostMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *DispatchPostMutation) ResetDeleted() {
	m.deleted = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *DispatchPostMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *DispatchPostMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the DispatchPost entity.
// If the DispatchPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchPostMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *DispatchPostMutation) ResetUpdateTime() {
	m.update_time = nil
}

// Where appends a list predicates to the DispatchPostMutation builder.
func (m *DispatchPostMutation) Where(ps ...predicate.DispatchPost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DispatchPostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DispatchPostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DispatchPost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DispatchPostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DispatchPostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DispatchPost).
func (m *DispatchPostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DispatchPostMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.foreign_id != nil {
		fields = append(fields, dispatchpost.FieldForeignID)
	}
	if m.server_id != nil {
		fields = append(fields, dispatchpost.FieldServerID)
	}
	if m.name != nil {
		fields = append(fields, dispatchpost.FieldName)
	}
	if m.point_id != nil {
		fields = append(fields, dispatchpost.FieldPointID)
	}
	if m.latitude != nil {
		fields = append(fields, dispatchpost.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, dispatchpost.FieldLongitude)
	}
	if m.difficulty != nil {
		fields = append(fields, dispatchpost.FieldDifficulty)
	}
	if m.main_image_url != nil {
		fields = append(fields, dispatchpost.FieldMainImageURL)
	}
	if m.detail_image_url != nil {
		fields = append(fields, dispatchpost.FieldDetailImageURL)
	}
	if m.deleted != nil {
		fields = append(fields, dispatchpost.FieldDeleted)
	}
	if m.update_time != nil {
		fields = append(fields, dispatchpost.FieldUpdateTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DispatchPostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dispatchpost.FieldForeignID:
		return m.ForeignID()
	case dispatchpost.FieldServerID:
		return m.ServerID()
	case dispatchpost.FieldName:
		return m.Name()
	case dispatchpost.FieldPointID:
		return m.PointID()
	case dispatchpost.FieldLatitude:
		return m.Latitude()
	case dispatchpost.FieldLongitude:
		return m.Longitude()
	case dispatchpost.FieldDifficulty:
		return m.Difficulty()
	case dispatchpost.FieldMainImageURL:
		return m.MainImageURL()
	case dispatchpost.FieldDetailImageURL:
		return m.DetailImageURL()
	case dispatchpost.FieldDeleted:
		return m.Deleted()
	case dispatchpost.FieldUpdateTime:
		return m.UpdateTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DispatchPostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dispatchpost.FieldForeignID:
		return m.OldForeignID(ctx)
	case dispatchpost.FieldServerID:
		return m.OldServerID(ctx)
	case dispatchpost.FieldName:
		return m.OldName(ctx)
	case dispatchpost.FieldPointID:
		return m.OldPointID(ctx)
	case dispatchpost.FieldLatitude:
		return m.OldLatitude(ctx)
	case dispatchpost.FieldLongitude:
		return m.OldLongitude(ctx)
	case dispatchpost.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case dispatchpost.FieldMainImageURL:
		return m.OldMainImageURL(ctx)
	case dispatchpost.FieldDetailImageURL:
		return m.OldDetailImageURL(ctx)
	case dispatchpost.FieldDeleted:
		return m.OldDeleted(ctx)
	case dispatchpost.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	}
	return nil, fmt.Errorf("unknown DispatchPost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DispatchPostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dispatchpost.FieldForeignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForeignID(v)
		return nil
	case dispatchpost.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case dispatchpost.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case dispatchpost.FieldPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointID(v)
		return nil
	case dispatchpost.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case dispatchpost.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case dispatchpost.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case dispatchpost.FieldMainImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMainImageURL(v)
		return nil
	case dispatchpost.FieldDetailImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetailImageURL(v)
		return nil
	case dispatchpost.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case dispatchpost.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	}
	return fmt.Errorf("unknown DispatchPost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DispatchPostMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, dispatchpost.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, dispatchpost.FieldLongitude)
	}
	if m.adddifficulty != nil {
		fields = append(fields, dispatchpost.FieldDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DispatchPostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dispatchpost.FieldLatitude:
		return m.AddedLatitude()
	case dispatchpost.FieldLongitude:
		return m.AddedLongitude()
	case dispatchpost.FieldDifficulty:
		return m.AddedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DispatchPostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dispatchpost.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case dispatchpost.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case dispatchpost.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown DispatchPost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DispatchPostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dispatchpost.FieldPointID) {
		fields = append(fields, dispatchpost.FieldPointID)
	}
	if m.FieldCleared(dispatchpost.FieldMainImageURL) {
		fields = append(fields, dispatchpost.FieldMainImageURL)
	}
	if m.FieldCleared(dispatchpost.FieldDetailImageURL) {
		fields = append(fields, dispatchpost.FieldDetailImageURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DispatchPostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DispatchPostMutation) ClearField(name string) error {
	switch name {
	case dispatchpost.FieldPointID:
		m.ClearPointID()
		return nil
	case dispatchpost.FieldMainImageURL:
		m.ClearMainImageURL()
		return nil
	case dispatchpost.FieldDetailImageURL:
		m.ClearDetailImageURL()
		return nil
	}
	return fmt.Errorf("unknown DispatchPost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DispatchPostMutation) ResetField(name string) error {
	switch name {
	case dispatchpost.FieldForeignID:
		m.ResetForeignID()
		return nil
	case dispatchpost.FieldServerID:
		m.ResetServerID()
		return nil
	case dispatchpost.FieldName:
		m.ResetName()
		return nil
	case dispatchpost.FieldPointID:
		m.ResetPointID()
		return nil
	case dispatchpost.FieldLatitude:
		m.ResetLatitude()
		return nil
	case dispatchpost.FieldLongitude:
		m.ResetLongitude()
		return nil
	case dispatchpost.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case dispatchpost.FieldMainImageURL:
		m.ResetMainImageURL()
		return nil
	case dispatchpost.FieldDetailImageURL:
		m.ResetDetailImageURL()
		return nil
	case dispatchpost.FieldDeleted:
		m.ResetDeleted()
		return nil
	case dispatchpost.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	}
	return fmt.Errorf("unknown DispatchPost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DispatchPostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DispatchPostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DispatchPostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DispatchPostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DispatchPostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DispatchPostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DispatchPostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DispatchPost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DispatchPostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DispatchPost edge %s", name)
}

// JourneyMutation represents an operation that mutates the Journey nodes in the graph.
type JourneyMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	run_id                  *string
	server_id               *string
	train_number            *string
	train_name              *string
	category                *string
	first_seen_time         *time.Time
	last_seen_time          *time.Time
	cancelled               *bool
	continuation_journey_id *string
	state_checksum          *string
	deleted                 *bool
	update_time             *time.Time
	clearedFields           map[string]struct{}
	events                  map[string]struct{}
	removedevents           map[string]struct{}
	clearedevents           bool
	sequence                *string
	clearedsequence         bool
	done                    bool
	oldValue                func(context.Context) (*Journey, error)
	predicates              []predicate.Journey
}

var _ ent.Mutation = (*JourneyMutation)(nil)

// journeyOption allows management of the mutation configuration using functional options.
type journeyOption func(*JourneyMutation)

// newJourneyMutation creates new mutation for the Journey entity.
func newJourneyMutation(c config, op Op, opts ...journeyOption) *JourneyMutation {
	m := &JourneyMutation{
		config:        c,
		op:            op,
		typ:           TypeJourney,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJourneyID sets the ID field of the mutation.
func withJourneyID(id string) journeyOption {
	return func(m *JourneyMutation) {
		var (
			err   error
			once  sync.Once
			value *Journey
		)
		m.oldValue = func(ctx context.Context) (*Journey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Journey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJourney sets the old Journey of the mutation.
func withJourney(node *Journey) journeyOption {
	return func(m *JourneyMutation) {
		m.oldValue = func(context.Context) (*Journey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JourneyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JourneyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Journey entities.
func (m *JourneyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JourneyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JourneyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Journey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *JourneyMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *JourneyMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *JourneyMutation) ResetRunID() {
	m.run_id = nil
}

// SetServerID sets the "server_id" field.
func (m *JourneyMutation) SetServerID(s string) {
	m.server_id = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *JourneyMutation) ServerID() (r string, exists bool) {
	v := m.server_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *JourneyMutation) ResetServerID() {
	m.server_id = nil
}

// SetTrainNumber sets the "train_number" field.
func (m *JourneyMutation) SetTrainNumber(s string) {
	m.train_number = &s
}

// TrainNumber returns the value of the "train_number" field in the mutation.
func (m *JourneyMutation) TrainNumber() (r string, exists bool) {
	v := m.train_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainNumber returns the old "train_number" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldTrainNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainNumber: %w", err)
	}
	return oldValue.TrainNumber, nil
}

// ResetTrainNumber resets all changes to the "train_number" field.
func (m *JourneyMutation) ResetTrainNumber() {
	m.train_number = nil
}

// SetTrainName sets the "train_name" field.
func (m *JourneyMutation) SetTrainName(s string) {
	m.train_name = &s
}

// TrainName returns the value of the "train_name" field in the mutation.
func (m *JourneyMutation) TrainName() (r string, exists bool) {
	v := m.train_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainName returns the old "train_name" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldTrainName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainName: %w", err)
	}
	return oldValue.TrainName, nil
}

// ClearTrainName clears the value of the "train_name" field.
func (m *JourneyMutation) ClearTrainName() {
	m.train_name = nil
	m.clearedFields[journey.FieldTrainName] = struct{}{}
}

// TrainNameCleared returns if the "train_name" field was cleared in this mutation.
func (m *JourneyMutation) TrainNameCleared() bool {
	_, ok := m.clearedFields[journey.FieldTrainName]
	return ok
}

// ResetTrainName resets all changes to the "train_name" field.
func (m *JourneyMutation) ResetTrainName() {
	m.train_name = nil
	delete(m.clearedFields, journey.FieldTrainName)
}

// SetCategory sets the "category" field.
func (m *JourneyMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *JourneyMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *JourneyMutation) ResetCategory() {
	m.category = nil
}

// SetFirstSeenTime sets the "first_seen_time" field.
func (m *JourneyMutation) SetFirstSeenTime(t time.Time) {
	m.first_seen_time = &t
}

// FirstSeenTime returns the value of the "first_seen_time" field in the mutation.
func (m *JourneyMutation) FirstSeenTime() (r time.Time, exists bool) {
	v := m.first_seen_time
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenTime returns the old "first_seen_time" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldFirstSeenTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenTime: %w", err)
	}
	return oldValue.FirstSeenTime, nil
}

// ClearFirstSeenTime clears the value of the "first_seen_time" field.
func (m *JourneyMutation) ClearFirstSeenTime() {
	m.first_seen_time = nil
	m.clearedFields[journey.FieldFirstSeenTime] = struct{}{}
}

// FirstSeenTimeCleared returns if the "first_seen_time" field was cleared in this mutation.
func (m *JourneyMutation) FirstSeenTimeCleared() bool {
	_, ok := m.clearedFields[journey.FieldFirstSeenTime]
	return ok
}

// ResetFirstSeenTime resets all changes to the "first_seen_time" field.
func (m *JourneyMutation) ResetFirstSeenTime() {
	m.first_seen_time = nil
	delete(m.clearedFields, journey.FieldFirstSeenTime)
}

// SetLastSeenTime sets the "last_seen_time" field.
func (m *JourneyMutation) SetLastSeenTime(t time.Time) {
	m.last_seen_time = &t
}

// LastSeenTime returns the value of the "last_seen_time" field in the mutation.
func (m *JourneyMutation) LastSeenTime() (r time.Time, exists bool) {
	v := m.last_seen_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenTime returns the old "last_seen_time" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldLastSeenTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenTime: %w", err)
	}
	return oldValue.LastSeenTime, nil
}

// ClearLastSeenTime clears the value of the "last_seen_time" field.
func (m *JourneyMutation) ClearLastSeenTime() {
	m.last_seen_time = nil
	m.clearedFields[journey.FieldLastSeenTime] = struct{}{}
}

// LastSeenTimeCleared returns if the "last_seen_time" field was cleared in this mutation.
func (m *JourneyMutation) LastSeenTimeCleared() bool {
	_, ok := m.clearedFields[journey.FieldLastSeenTime]
	return ok
}

// ResetLastSeenTime resets all changes to the "last_seen_time" field.
func (m *JourneyMutation) ResetLastSeenTime() {
	m.last_seen_time = nil
	delete(m.clearedFields, journey.FieldLastSeenTime)
}

// SetCancelled sets the "cancelled" field.
func (m *JourneyMutation) SetCancelled(b bool) {
	m.cancelled = &b
}

// Cancelled returns the value of the "cancelled" field in the mutation.
func (m *JourneyMutation) Cancelled() (r bool, exists bool) {
	v := m.cancelled
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelled returns the old "cancelled" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldCancelled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelled: %w", err)
	}
	return oldValue.Cancelled, nil
}

// ResetCancelled resets all changes to the "cancelled" field.
func (m *JourneyMutation) ResetCancelled() {
	m.cancelled = nil
}

// SetContinuationJourneyID sets the "continuation_journey_id" field.
func (m *JourneyMutation) SetContinuationJourneyID(s string) {
	m.continuation_journey_id = &s
}

// ContinuationJourneyID returns the value of the "continuation_journey_id" field in the mutation.
func (m *JourneyMutation) ContinuationJourneyID() (r string, exists bool) {
	v := m.continuation_journey_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContinuationJourneyID returns the old "continuation_journey_id" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldContinuationJourneyID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContinuationJourneyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContinuationJourneyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContinuationJourneyID: %w", err)
	}
	return oldValue.ContinuationJourneyID, nil
}

// ClearContinuationJourneyID clears the value of the "continuation_journey_id" field.
func (m *JourneyMutation) ClearContinuationJourneyID() {
	m.continuation_journey_id = nil
	m.clearedFields[journey.FieldContinuationJourneyID] = struct{}{}
}

// ContinuationJourneyIDCleared returns if the "continuation_journey_id" field was cleared in this mutation.
func (m *JourneyMutation) ContinuationJourneyIDCleared() bool {
	_, ok := m.clearedFields[journey.FieldContinuationJourneyID]
	return ok
}

// ResetContinuationJourneyID resets all changes to the "continuation_journey_id" field.
func (m *JourneyMutation) ResetContinuationJourneyID() {
	m.continuation_journey_id = nil
	delete(m.clearedFields, journey.FieldContinuationJourneyID)
}

// SetStateChecksum sets the "state_checksum" field.
func (m *JourneyMutation) SetStateChecksum(s string) {
	m.state_checksum = &s
}

// StateChecksum returns the value of the "state_checksum" field in the mutation.
func (m *JourneyMutation) StateChecksum() (r string, exists bool) {
	v := m.state_checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldStateChecksum returns the old "state_checksum" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldStateChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateChecksum: %w", err)
	}
	return oldValue.StateChecksum, nil
}

// ClearStateChecksum clears the value of the "state_checksum" field.
func (m *JourneyMutation) ClearStateChecksum() {
	m.state_checksum = nil
	m.clearedFields[journey.FieldStateChecksum] = struct{}{}
}

// StateChecksumCleared returns if the "state_checksum" field was cleared in this mutation.
func (m *JourneyMutation) StateChecksumCleared() bool {
	_, ok := m.clearedFields[journey.FieldStateChecksum]
	return ok
}

// ResetStateChecksum resets all changes to the "state_checksum" field.
func (m *JourneyMutation) ResetStateChecksum() {
	m.state_checksum = nil
	delete(m.clearedFields, journey.FieldStateChecksum)
}

// SetDeleted sets the "deleted" field.
func (m *JourneyMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *JourneyMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *JourneyMutation) ResetDeleted() {
	m.deleted = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *JourneyMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *JourneyMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Journey entity.
// If the Journey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *JourneyMutation) ResetUpdateTime() {
	m.update_time = nil
}

// AddEventIDs adds the "events" edge to the JourneyEvent entity by ids.
func (m *JourneyMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the JourneyEvent entity.
func (m *JourneyMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the JourneyEvent entity was cleared.
func (m *JourneyMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the JourneyEvent entity by IDs.
func (m *JourneyMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the JourneyEvent entity.
func (m *JourneyMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *JourneyMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *JourneyMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// SetSequenceID sets the "sequence" edge to the VehicleSequence entity by id.
func (m *JourneyMutation) SetSequenceID(id string) {
	m.sequence = &id
}

// ClearSequence clears the "sequence" edge to the VehicleSequence entity.
func (m *JourneyMutation) ClearSequence() {
	m.clearedsequence = true
}

// SequenceCleared reports if the "sequence" edge to the VehicleSequence entity was cleared.
func (m *JourneyMutation) SequenceCleared() bool {
	return m.clearedsequence
}

// SequenceID returns the "sequence" edge ID in the mutation.
func (m *JourneyMutation) SequenceID() (id string, exists bool) {
	if m.sequence != nil {
		return *m.sequence, true
	}
	return
}

// SequenceIDs returns the "sequence" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SequenceID instead. It exists only for internal usage by the builders.
func (m *JourneyMutation) SequenceIDs() (ids []string) {
	if id := m.sequence; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSequence resets all changes to the "sequence" edge.
func (m *JourneyMutation) ResetSequence() {
	m.sequence = nil
	m.clearedsequence = false
}

// Where appends a list predicates to the JourneyMutation builder.
func (m *JourneyMutation) Where(ps ...predicate.Journey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JourneyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JourneyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Journey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JourneyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JourneyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Journey).
func (m *JourneyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JourneyMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run_id != nil {
		fields = append(fields, journey.FieldRunID)
	}
	if m.server_id != nil {
		fields = append(fields, journey.FieldServerID)
	}
	if m.train_number != nil {
		fields = append(fields, journey.FieldTrainNumber)
	}
	if m.train_name != nil {
		fields = append(fields, journey.FieldTrainName)
	}
	if m.category != nil {
		fields = append(fields, journey.FieldCategory)
	}
	if m.first_seen_time != nil {
		fields = append(fields, journey.FieldFirstSeenTime)
	}
	if m.last_seen_time != nil {
		fields = append(fields, journey.FieldLastSeenTime)
	}
	if m.cancelled != nil {
		fields = append(fields, journey.FieldCancelled)
	}
	if m.continuation_journey_id != nil {
		fields = append(fields, journey.FieldContinuationJourneyID)
	}
	if m.state_checksum != nil {
		fields = append(fields, journey.FieldStateChecksum)
	}
	if m.deleted != nil {
		fields = append(fields, journey.FieldDeleted)
	}
	if m.update_time != nil {
		fields = append(fields, journey.FieldUpdateTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JourneyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case journey.FieldRunID:
		return m.RunID()
	case journey.FieldServerID:
		return m.ServerID()
	case journey.FieldTrainNumber:
		return m.TrainNumber()
	case journey.FieldTrainName:
		return m.TrainName()
	case journey.FieldCategory:
		return m.Category()
	case journey.FieldFirstSeenTime:
		return m.FirstSeenTime()
	case journey.FieldLastSeenTime:
		return m.LastSeenTime()
	case journey.FieldCancelled:
		return m.Cancelled()
	case journey.FieldContinuationJourneyID:
		return m.ContinuationJourneyID()
	case journey.FieldStateChecksum:
		return m.StateChecksum()
	case journey.FieldDeleted:
		return m.Deleted()
	case journey.FieldUpdateTime:
		return m.UpdateTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JourneyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case journey.FieldRunID:
		return m.OldRunID(ctx)
	case journey.FieldServerID:
		return m.OldServerID(ctx)
	case journey.FieldTrainNumber:
		return m.OldTrainNumber(ctx)
	case journey.FieldTrainName:
		return m.OldTrainName(ctx)
	case journey.FieldCategory:
		return m.OldCategory(ctx)
	case journey.FieldFirstSeenTime:
		return m.OldFirstSeenTime(ctx)
	case journey.FieldLastSeenTime:
		return m.OldLastSeenTime(ctx)
	case journey.FieldCancelled:
		return m.OldCancelled(ctx)
	case journey.FieldContinuationJourneyID:
		return m.OldContinuationJourneyID(ctx)
	case journey.FieldStateChecksum:
		return m.OldStateChecksum(ctx)
	case journey.FieldDeleted:
		return m.OldDeleted(ctx)
	case journey.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	}
	return nil, fmt.Errorf("unknown Journey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JourneyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case journey.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case journey.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case journey.FieldTrainNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainNumber(v)
		return nil
	case journey.FieldTrainName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainName(v)
		return nil
	case journey.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case journey.FieldFirstSeenTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenTime(v)
		return nil
	case journey.FieldLastSeenTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenTime(v)
		return nil
	case journey.FieldCancelled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelled(v)
		return nil
	case journey.FieldContinuationJourneyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContinuationJourneyID(v)
		return nil
	case journey.FieldStateChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateChecksum(v)
		return nil
	case journey.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case journey.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	}
	return fmt.Errorf("unknown Journey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JourneyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JourneyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JourneyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Journey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JourneyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(journey.FieldTrainName) {
		fields = append(fields, journey.FieldTrainName)
	}
	if m.FieldCleared(journey.FieldFirstSeenTime) {
		fields = append(fields, journey.FieldFirstSeenTime)
	}
	if m.FieldCleared(journey.FieldLastSeenTime) {
		fields = append(fields, journey.FieldLastSeenTime)
	}
	if m.FieldCleared(journey.FieldContinuationJourneyID) {
		fields = append(fields, journey.FieldContinuationJourneyID)
	}
	if m.FieldCleared(journey.FieldStateChecksum) {
		fields = append(fields, journey.FieldStateChecksum)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JourneyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JourneyMutation) ClearField(name string) error {
	switch name {
	case journey.FieldTrainName:
		m.ClearTrainName()
		return nil
	case journey.FieldFirstSeenTime:
		m.ClearFirstSeenTime()
		return nil
	case journey.FieldLastSeenTime:
		m.ClearLastSeenTime()
		return nil
	case journey.FieldContinuationJourneyID:
		m.ClearContinuationJourneyID()
		return nil
	case journey.FieldStateChecksum:
		m.ClearStateChecksum()
		return nil
	}
	return fmt.Errorf("unknown Journey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JourneyMutation) ResetField(name string) error {
	switch name {
	case journey.FieldRunID:
		m.ResetRunID()
		return nil
	case journey.FieldServerID:
		m.ResetServerID()
		return nil
	case journey.FieldTrainNumber:
		m.ResetTrainNumber()
		return nil
	case journey.FieldTrainName:
		m.ResetTrainName()
		return nil
	case journey.FieldCategory:
		m.ResetCategory()
		return nil
	case journey.FieldFirstSeenTime:
		m.ResetFirstSeenTime()
		return nil
	case journey.FieldLastSeenTime:
		m.ResetLastSeenTime()
		return nil
	case journey.FieldCancelled:
		m.ResetCancelled()
		return nil
	case journey.FieldContinuationJourneyID:
		m.ResetContinuationJourneyID()
		return nil
	case journey.FieldStateChecksum:
		m.ResetStateChecksum()
		return nil
	case journey.FieldDeleted:
		m.ResetDeleted()
		return nil
	case journey.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	}
	return fmt.Errorf("unknown Journey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JourneyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.events != nil {
		edges = append(edges, journey.EdgeEvents)
	}
	if m.sequence != nil {
		edges = append(edges, journey.EdgeSequence)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JourneyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case journey.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case journey.EdgeSequence:
		if id := m.sequence; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JourneyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevents != nil {
		edges = append(edges, journey.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JourneyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case journey.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JourneyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevents {
		edges = append(edges, journey.EdgeEvents)
	}
	if m.clearedsequence {
		edges = append(edges, journey.EdgeSequence)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JourneyMutation) EdgeCleared(name string) bool {
	switch name {
	case journey.EdgeEvents:
		return m.clearedevents
	case journey.EdgeSequence:
		return m.clearedsequence
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JourneyMutation) ClearEdge(name string) error {
	switch name {
	case journey.EdgeSequence:
		m.ClearSequence()
		return nil
	}
	return fmt.Errorf("unknown Journey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JourneyMutation) ResetEdge(name string) error {
	switch name {
	case journey.EdgeEvents:
		m.ResetEvents()
		return nil
	case journey.EdgeSequence:
		m.ResetSequence()
		return nil
	}
	return fmt.Errorf("unknown Journey edge %s", name)
}

// JourneyEventMutation represents an operation that mutates the JourneyEvent nodes in the graph.
type JourneyEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	event_index           *int
	addevent_index        *int
	event_type            *journeyevent.EventType
	point_id              *string
	point_name            *string
	in_playable_border    *bool
	scheduled_time        *time.Time
	realtime_time         *time.Time
	realtime_time_type    *journeyevent.RealtimeTimeType
	transport             *map[string]interface{}
	stop_type             *journeyevent.StopType
	scheduled_platform    *int
	addscheduled_platform *int
	scheduled_track       *int
	addscheduled_track    *int
	realtime_platform     *int
	addrealtime_platform  *int
	realtime_track        *int
	addrealtime_track     *int
	cancelled             *bool
	additional            *bool
	clearedFields         map[string]struct{}
	journey               *string
	clearedjourney        bool
	done                  bool
	oldValue              func(context.Context) (*JourneyEvent, error)
	predicates            []predicate.JourneyEvent
}

var _ ent.Mutation = (*JourneyEventMutation)(nil)

// journeyeventOption allows management of the mutation configuration using functional options.
type journeyeventOption func(*JourneyEventMutation)

// newJourneyEventMutation creates new mutation for the JourneyEvent entity.
func newJourneyEventMutation(c config, op Op, opts ...journeyeventOption) *JourneyEventMutation {
	m := &JourneyEventMutation{
		config:        c,
		op:            op,
		typ:           TypeJourneyEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJourneyEventID sets the ID field of the mutation.
func withJourneyEventID(id string) journeyeventOption {
	return func(m *JourneyEventMutation) {
		var (
			err   error
			once  sync.Once
			value *JourneyEvent
		)
		m.oldValue = func(ctx context.Context) (*JourneyEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JourneyEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJourneyEvent sets the old JourneyEvent of the mutation.
func withJourneyEvent(node *JourneyEvent) journeyeventOption {
	return func(m *JourneyEventMutation) {
		m.oldValue = func(context.Context) (*JourneyEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JourneyEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JourneyEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JourneyEvent entities.
func (m *JourneyEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JourneyEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JourneyEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JourneyEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJourneyID sets the "journey_id" field.
func (m *JourneyEventMutation) SetJourneyID(s string) {
	m.journey = &s
}

// JourneyID returns the value of the "journey_id" field in the mutation.
func (m *JourneyEventMutation) JourneyID() (r string, exists bool) {
	v := m.journey
	if v == nil {
		return
	}
	return *v, true
}

// OldJourneyID returns the old "journey_id" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldJourneyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJourneyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJourneyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJourneyID: %w", err)
	}
	return oldValue.JourneyID, nil
}

// ResetJourneyID resets all changes to the "journey_id" field.
func (m *JourneyEventMutation) ResetJourneyID() {
	m.journey = nil
}

// SetEventIndex sets the "event_index" field.
func (m *JourneyEventMutation) SetEventIndex(i int) {
	m.event_index = &i
	m.addevent_index = nil
}

// EventIndex returns the value of the "event_index" field in the mutation.
func (m *JourneyEventMutation) EventIndex() (r int, exists bool) {
	v := m.event_index
	if v == nil {
		return
	}
	return *v, true
}

// OldEventIndex returns the old "event_index" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldEventIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventIndex: %w", err)
	}
	return oldValue.EventIndex, nil
}

// AddEventIndex adds i to the "event_index" field.
func (m *JourneyEventMutation) AddEventIndex(i int) {
	if m.addevent_index != nil {
		*m.addevent_index += i
	} else {
		m.addevent_index = &i
	}
}

// AddedEventIndex returns the value that was added to the "event_index" field in this mutation.
func (m *JourneyEventMutation) AddedEventIndex() (r int, exists bool) {
	v := m.addevent_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventIndex resets all changes to the "event_index" field.
func (m *JourneyEventMutation) ResetEventIndex() {
	m.event_index = nil
	m.addevent_index = nil
}

// SetEventType sets the "event_type" field.
func (m *JourneyEventMutation) SetEventType(jt journeyevent.EventType) {
	m.event_type = &jt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *JourneyEventMutation) EventType() (r journeyevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldEventType(ctx context.Context) (v journeyevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *JourneyEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPointID sets the "point_id" field.
func (m *JourneyEventMutation) SetPointID(s string) {
	m.point_id = &s
}

// PointID returns the value of the "point_id" field in the mutation.
func (m *JourneyEventMutation) PointID() (r string, exists bool) {
	v := m.point_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPointID returns the old "point_id" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldPointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointID: %w", err)
	}
	return oldValue.PointID, nil
}

// ResetPointID resets all changes to the "point_id" field.
func (m *JourneyEventMutation) ResetPointID() {
	m.point_id = nil
}

// SetPointName sets the "point_name" field.
func (m *JourneyEventMutation) SetPointName(s string) {
	m.point_name = &s
}

// PointName returns the value of the "point_name" field in the mutation.
func (m *JourneyEventMutation) PointName() (r string, exists bool) {
	v := m.point_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPointName returns the old "point_name" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldPointName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointName: %w", err)
	}
	return oldValue.PointName, nil
}

// ClearPointName clears the value of the "point_name" field.
func (m *JourneyEventMutation) ClearPointName() {
	m.point_name = nil
	m.clearedFields[journeyevent.FieldPointName] = struct{}{}
}

// PointNameCleared returns if the "point_name" field was cleared in this mutation.
func (m *JourneyEventMutation) PointNameCleared() bool {
	_, ok := m.clearedFields[journeyevent.FieldPointName]
	return ok
}

// ResetPointName resets all changes to the "point_name" field.
func (m *JourneyEventMutation) ResetPointName() {
	m.point_name = nil
	delete(m.clearedFields, journeyevent.FieldPointName)
}

// SetInPlayableBorder sets the "in_playable_border" field.
func (m *JourneyEventMutation) SetInPlayableBorder(b bool) {
	m.in_playable_border = &b
}

// InPlayableBorder returns the value of the "in_playable_border" field in the mutation.
func (m *JourneyEventMutation) InPlayableBorder() (r bool, exists bool) {
	v := m.in_playable_border
	if v == nil {
		return
	}
	return *v, true
}

// OldInPlayableBorder returns the old "in_playable_border" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldInPlayableBorder(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInPlayableBorder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInPlayableBorder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInPlayableBorder: %w", err)
	}
	return oldValue.InPlayableBorder, nil
}

// ResetInPlayableBorder resets all changes to the "in_playable_border" field.
func (m *JourneyEventMutation) ResetInPlayableBorder() {
	m.in_playable_border = nil
}

// SetScheduledTime sets the "scheduled_time" field.
func (m *JourneyEventMutation) SetScheduledTime(t time.Time) {
	m.scheduled_time = &t
}

// ScheduledTime returns the value of the "scheduled_time" field in the mutation.
func (m *JourneyEventMutation) ScheduledTime() (r time.Time, exists bool) {
	v := m.scheduled_time
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledTime returns the old "scheduled_time" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldScheduledTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledTime: %w", err)
	}
	return oldValue.ScheduledTime, nil
}

// ResetScheduledTime resets all changes to the "scheduled_time" field.
func (m *JourneyEventMutation) ResetScheduledTime() {
	m.scheduled_time = nil
}

// SetRealtimeTime sets the "realtime_time" field.
func (m *JourneyEventMutation) SetRealtimeTime(t time.Time) {
	m.realtime_time = &t
}

// RealtimeTime returns the value of the "realtime_time" field in the mutation.
func (m *JourneyEventMutation) RealtimeTime() (r time.Time, exists bool) {
	v := m.realtime_time
	if v == nil {
		return
	}
	return *v, true
}

// OldRealtimeTime returns the old "realtime_time" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldRealtimeTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealtimeTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealtimeTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealtimeTime: %w", err)
	}
	return oldValue.RealtimeTime, nil
}

// ClearRealtimeTime clears the value of the "realtime_time" field.
func (m *JourneyEventMutation) ClearRealtimeTime() {
	m.realtime_time = nil
	m.clearedFields[journeyevent.FieldRealtimeTime] = struct{}{}
}

// RealtimeTimeCleared returns if the "realtime_time" field was cleared in this mutation.
func (m *JourneyEventMutation) RealtimeTimeCleared() bool {
	_, ok := m.clearedFields[journeyevent.FieldRealtimeTime]
	return ok
}

// ResetRealtimeTime resets all changes to the "realtime_time" field.
func (m *JourneyEventMutation) ResetRealtimeTime() {
	m.realtime_time = nil
	delete(m.clearedFields, journeyevent.FieldRealtimeTime)
}

// SetRealtimeTimeType sets the "realtime_time_type" field.
func (m *JourneyEventMutation) SetRealtimeTimeType(jtt journeyevent.RealtimeTimeType) {
	m.realtime_time_type = &jtt
}

// RealtimeTimeType returns the value of the "realtime_time_type" field in the mutation.
func (m *JourneyEventMutation) RealtimeTimeType() (r journeyevent.RealtimeTimeType, exists bool) {
	v := m.realtime_time_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRealtimeTimeType returns the old "realtime_time_type" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldRealtimeTimeType(ctx context.Context) (v journeyevent.RealtimeTimeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealtimeTimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealtimeTimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealtimeTimeType: %w", err)
	}
	return oldValue.RealtimeTimeType, nil
}

// ResetRealtimeTimeType resets all changes to the "realtime_time_type" field.
func (m *JourneyEventMutation) ResetRealtimeTimeType() {
	m.realtime_time_type = nil
}

// SetTransport sets the "transport" field.
func (m *JourneyEventMutation) SetTransport(value map[string]interface{}) {
	m.transport = &value
}

// Transport returns the value of the "transport" field in the mutation.
func (m *JourneyEventMutation) Transport() (r map[string]interface{}, exists bool) {
	v := m.transport
	if v == nil {
		return
	}
	return *v, true
}

// OldTransport returns the old "transport" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldTransport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransport: %w", err)
	}
	return oldValue.Transport, nil
}

// ClearTransport clears the value of the "transport" field.
func (m *JourneyEventMutation) ClearTransport() {
	m.transport = nil
	m.clearedFields[journeyevent.FieldTransport] = struct{}{}
}

// TransportCleared returns if the "transport" field was cleared in this mutation.
func (m *JourneyEventMutation) TransportCleared() bool {
	_, ok := m.clearedFields[journeyevent.FieldTransport]
	return ok
}

// ResetTransport resets all changes to the "transport" field.
func (m *JourneyEventMutation) ResetTransport() {
	m.transport = nil
	delete(m.clearedFields, journeyevent.FieldTransport)
}

// SetStopType sets the "stop_type" field.
func (m *JourneyEventMutation) SetStopType(jt journeyevent.StopType) {
	m.stop_type = &jt
}

// StopType returns the value of the "stop_type" field in the mutation.
func (m *JourneyEventMutation) StopType() (r journeyevent.StopType, exists bool) {
	v := m.stop_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStopType returns the old "stop_type" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldStopType(ctx context.Context) (v journeyevent.StopType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopType: %w", err)
	}
	return oldValue.StopType, nil
}

// ResetStopType resets all changes to the "stop_type" field.
func (m *JourneyEventMutation) ResetStopType() {
	m.stop_type = nil
}

// SetScheduledPlatform sets the "scheduled_platform" field.
func (m *JourneyEventMutation) SetScheduledPlatform(i int) {
	m.scheduled_platform = &i
	m.addscheduled_platform = nil
}

// ScheduledPlatform returns the value of the "scheduled_platform" field in the mutation.
func (m *JourneyEventMutation) ScheduledPlatform() (r int, exists bool) {
	v := m.scheduled_platform
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledPlatform returns the old "scheduled_platform" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldScheduledPlatform(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledPlatform: %w", err)
	}
	return oldValue.ScheduledPlatform, nil
}

// AddScheduledPlatform adds i to the "scheduled_platform" field.
func (m *JourneyEventMutation) AddScheduledPlatform(i int) {
	if m.addscheduled_platform != nil {
		*m.addscheduled_platform += i
	} else {
		m.addscheduled_platform = &i
	}
}

// AddedScheduledPlatform returns the value that was added to the "scheduled_platform" field in this mutation.
func (m *JourneyEventMutation) AddedScheduledPlatform() (r int, exists bool) {
	v := m.addscheduled_platform
	if v == nil {
		return
	}
	return *v, true
}

// ClearScheduledPlatform clears the value of the "scheduled_platform" field.
func (m *JourneyEventMutation) ClearScheduledPlatform() {
	m.scheduled_platform = nil
	m.addscheduled_platform = nil
	m.clearedFields[journeyevent.FieldScheduledPlatform] = struct{}{}
}

// ScheduledPlatformCleared returns if the "scheduled_platform" field was cleared in this mutation.
func (m *JourneyEventMutation) ScheduledPlatformCleared() bool {
	_, ok := m.clearedFields[journeyevent.FieldScheduledPlatform]
	return ok
}

// ResetScheduledPlatform resets all changes to the "scheduled_platform" field.
func (m *JourneyEventMutation) ResetScheduledPlatform() {
	m.scheduled_platform = nil
	m.addscheduled_platform = nil
	delete(m.clearedFields, journeyevent.FieldScheduledPlatform)
}

// SetScheduledTrack sets the "scheduled_track" field.
func (m *JourneyEventMutation) SetScheduledTrack(i int) {
	m.scheduled_track = &i
	m.addscheduled_track = nil
}

// ScheduledTrack returns the value of the "scheduled_track" field in the mutation.
func (m *JourneyEventMutation) ScheduledTrack() (r int, exists bool) {
	v := m.scheduled_track
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledTrack returns the old "scheduled_track" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldScheduledTrack(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledTrack: %w", err)
	}
	return oldValue.ScheduledTrack, nil
}

// AddScheduledTrack adds i to the "scheduled_track" field.
func (m *JourneyEventMutation) AddScheduledTrack(i int) {
	if m.addscheduled_track != nil {
		*m.addscheduled_track += i
	} else {
		m.addscheduled_track = &i
	}
}

// AddedScheduledTrack returns the value that was added to the "scheduled_track" field in this mutation.
func (m *JourneyEventMutation) AddedScheduledTrack() (r int, exists bool) {
	v := m.addscheduled_track
	if v == nil {
		return
	}
	return *v, true
}

// ClearScheduledTrack clears the value of the "scheduled_track" field.
func (m *JourneyEventMutation) ClearScheduledTrack() {
	m.scheduled_track = nil
	m.addscheduled_track = nil
	m.clearedFields[journeyevent.FieldScheduledTrack] = struct{}{}
}

// ScheduledTrackCleared returns if the "scheduled_track" field was cleared in this mutation.
func (m *JourneyEventMutation) ScheduledTrackCleared() bool {
	_, ok := m.clearedFields[journeyevent.FieldScheduledTrack]
	return ok
}

// ResetScheduledTrack resets all changes to the "scheduled_track" field.
func (m *JourneyEventMutation) ResetScheduledTrack() {
	m.scheduled_track = nil
	m.addscheduled_track = nil
	delete(m.clearedFields, journeyevent.FieldScheduledTrack)
}

// SetRealtimePlatform sets the "realtime_platform" field.
func (m *JourneyEventMutation) SetRealtimePlatform(i int) {
	m.realtime_platform = &i
	m.addrealtime_platform = nil
}

// RealtimePlatform returns the value of the "realtime_platform" field in the mutation.
func (m *JourneyEventMutation) RealtimePlatform() (r int, exists bool) {
	v := m.realtime_platform
	if v == nil {
		return
	}
	return *v, true
}

// OldRealtimePlatform returns the old "realtime_platform" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldRealtimePlatform(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealtimePlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealtimePlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealtimePlatform: %w", err)
	}
	return oldValue.RealtimePlatform, nil
}

// AddRealtimePlatform adds i to the "realtime_platform" field.
func (m *JourneyEventMutation) AddRealtimePlatform(i int) {
	if m.addrealtime_platform != nil {
		*m.addrealtime_platform += i
	} else {
		m.addrealtime_platform = &i
	}
}

// AddedRealtimePlatform returns the value that was added to the "realtime_platform" field in this mutation.
func (m *JourneyEventMutation) AddedRealtimePlatform() (r int, exists bool) {
	v := m.addrealtime_platform
	if v == nil {
		return
	}
	return *v, true
}

// ClearRealtimePlatform clears the value of the "realtime_platform" field.
func (m *JourneyEventMutation) ClearRealtimePlatform() {
	m.realtime_platform = nil
	m.addrealtime_platform = nil
	m.clearedFields[journeyevent.FieldRealtimePlatform] = struct{}{}
}

// RealtimePlatformCleared returns if the "realtime_platform" field was cleared in this mutation.
func (m *JourneyEventMutation) RealtimePlatformCleared() bool {
	_, ok := m.clearedFields[journeyevent.FieldRealtimePlatform]
	return ok
}

// ResetRealtimePlatform resets all changes to the "realtime_platform" field.
func (m *JourneyEventMutation) ResetRealtimePlatform() {
	m.realtime_platform = nil
	m.addrealtime_platform = nil
	delete(m.clearedFields, journeyevent.FieldRealtimePlatform)
}

// SetRealtimeTrack sets the "realtime_track" field.
func (m *JourneyEventMutation) SetRealtimeTrack(i int) {
	m.realtime_track = &i
	m.addrealtime_track = nil
}

// RealtimeTrack returns the value of the "realtime_track" field in the mutation.
func (m *JourneyEventMutation) RealtimeTrack() (r int, exists bool) {
	v := m.realtime_track
	if v == nil {
		return
	}
	return *v, true
}

// OldRealtimeTrack returns the old "realtime_track" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldRealtimeTrack(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealtimeTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealtimeTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealtimeTrack: %w", err)
	}
	return oldValue.RealtimeTrack, nil
}

// AddRealtimeTrack adds i to the "realtime_track" field.
func (m *JourneyEventMutation) AddRealtimeTrack(i int) {
	if m.addrealtime_track != nil {
		*m.addrealtime_track += i
	} else {
		m.addrealtime_track = &i
	}
}

// AddedRealtimeTrack returns the value that was added to the "realtime_track" field in this mutation.
func (m *JourneyEventMutation) AddedRealtimeTrack() (r int, exists bool) {
	v := m.addrealtime_track
	if v == nil {
		return
	}
	return *v, true
}

// ClearRealtimeTrack clears the value of the "realtime_track" field.
func (m *JourneyEventMutation) ClearRealtimeTrack() {
	m.realtime_track = nil
	m.addrealtime_track = nil
	m.clearedFields[journeyevent.FieldRealtimeTrack] = struct{}{}
}

// RealtimeTrackCleared returns if the "realtime_track" field was cleared in this mutation.
func (m *JourneyEventMutation) RealtimeTrackCleared() bool {
	_, ok := m.clearedFields[journeyevent.FieldRealtimeTrack]
	return ok
}

// ResetRealtimeTrack resets all changes to the "realtime_track" field.
func (m *JourneyEventMutation) ResetRealtimeTrack() {
	m.realtime_track = nil
	m.addrealtime_track = nil
	delete(m.clearedFields, journeyevent.FieldRealtimeTrack)
}

// SetCancelled sets the "cancelled" field.
func (m *JourneyEventMutation) SetCancelled(b bool) {
	m.cancelled = &b
}

// Cancelled returns the value of the "cancelled" field in the mutation.
func (m *JourneyEventMutation) Cancelled() (r bool, exists bool) {
	v := m.cancelled
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelled returns the old "cancelled" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldCancelled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelled: %w", err)
	}
	return oldValue.Cancelled, nil
}

// ResetCancelled resets all changes to the "cancelled" field.
func (m *JourneyEventMutation) ResetCancelled() {
	m.cancelled = nil
}

// SetAdditional sets the "additional" field.
func (m *JourneyEventMutation) SetAdditional(b bool) {
	m.additional = &b
}

// Additional returns the value of the "additional" field in the mutation.
func (m *JourneyEventMutation) Additional() (r bool, exists bool) {
	v := m.additional
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditional returns the old "additional" field's value of the JourneyEvent entity.
// If the JourneyEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JourneyEventMutation) OldAdditional(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditional is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditional requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditional: %w", err)
	}
	return oldValue.Additional, nil
}

// ResetAdditional resets all changes to the "additional" field.
func (m *JourneyEventMutation) ResetAdditional() {
	m.additional = nil
}

// ClearJourney clears the "journey" edge to the Journey entity.
func (m *JourneyEventMutation) ClearJourney() {
	m.clearedjourney = true
	m.clearedFields[journeyevent.FieldJourneyID] = struct{}{}
}

// JourneyCleared reports if the "journey" edge to the Journey entity was cleared.
func (m *JourneyEventMutation) JourneyCleared() bool {
	return m.clearedjourney
}

// JourneyIDs returns the "journey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JourneyID instead. It exists only for internal usage by the builders.
func (m *JourneyEventMutation) JourneyIDs() (ids []string) {
	if id := m.journey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJourney resets all changes to the "journey" edge.
func (m *JourneyEventMutation) ResetJourney() {
	m.journey = nil
	m.clearedjourney = false
}

// Where appends a list predicates to the JourneyEventMutation builder.
func (m *JourneyEventMutation) Where(ps ...predicate.JourneyEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JourneyEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JourneyEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JourneyEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JourneyEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JourneyEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JourneyEvent).
func (m *JourneyEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JourneyEventMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.journey != nil {
		fields = append(fields, journeyevent.FieldJourneyID)
	}
	if m.event_index != nil {
		fields = append(fields, journeyevent.FieldEventIndex)
	}
	if m.event_type != nil {
		fields = append(fields, journeyevent.FieldEventType)
	}
	if m.point_id != nil {
		fields = append(fields, journeyevent.FieldPointID)
	}
	if m.point_name != nil {
		fields = append(fields, journeyevent.FieldPointName)
	}
	if m.in_playable_border != nil {
		fields = append(fields, journeyevent.FieldInPlayableBorder)
	}
	if m.scheduled_time != nil {
		fields = append(fields, journeyevent.FieldScheduledTime)
	}
	if m.realtime_time != nil {
		fields = append(fields, journeyevent.FieldRealtimeTime)
	}
	if m.realtime_time_type != nil {
		fields = append(fields, journeyevent.FieldRealtimeTimeType)
	}
	if m.transport != nil {
		fields = append(fields, journeyevent.FieldTransport)
	}
	if m.stop_type != nil {
		fields = append(fields, journeyevent.FieldStopType)
	}
	if m.scheduled_platform != nil {
		fields = append(fields, journeyevent.FieldScheduledPlatform)
	}
	if m.scheduled_track != nil {
		fields = append(fields, journeyevent.FieldScheduledTrack)
	}
	if m.realtime_platform != nil {
		fields = append(fields, journeyevent.FieldRealtimePlatform)
	}
	if m.realtime_track != nil {
		fields = append(fields, journeyevent.FieldRealtimeTrack)
	}
	if m.cancelled != nil {
		fields = append(fields, journeyevent.FieldCancelled)
	}
	if m.additional != nil {
		fields = append(fields, journeyevent.FieldAdditional)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JourneyEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case journeyevent.FieldJourneyID:
		return m.JourneyID()
	case journeyevent.FieldEventIndex:
		return m.EventIndex()
	case journeyevent.FieldEventType:
		return m.EventType()
	case journeyevent.FieldPointID:
		return m.PointID()
	case journeyevent.FieldPointName:
		return m.PointName()
	case journeyevent.FieldInPlayableBorder:
		return m.InPlayableBorder()
	case journeyevent.FieldScheduledTime:
		return m.ScheduledTime()
	case journeyevent.FieldRealtimeTime:
		return m.RealtimeTime()
	case journeyevent.FieldRealtimeTimeType:
		return m.RealtimeTimeType()
	case journeyevent.FieldTransport:
		return m.Transport()
	case journeyevent.FieldStopType:
		return m.StopType()
	case journeyevent.FieldScheduledPlatform:
		return m.ScheduledPlatform()
	case journeyevent.FieldScheduledTrack:
		return m.ScheduledTrack()
	case journeyevent.FieldRealtimePlatform:
		return m.RealtimePlatform()
	case journeyevent.FieldRealtimeTrack:
		return m.RealtimeTrack()
	case journeyevent.FieldCancelled:
		return m.Cancelled()
	case journeyevent.FieldAdditional:
		return m.Additional()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JourneyEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case journeyevent.FieldJourneyID:
		return m.OldJourneyID(ctx)
	case journeyevent.FieldEventIndex:
		return m.OldEventIndex(ctx)
	case journeyevent.FieldEventType:
		return m.OldEventType(ctx)
	case journeyevent.FieldPointID:
		return m.OldPointID(ctx)
	case journeyevent.FieldPointName:
		return m.OldPointName(ctx)
	case journeyevent.FieldInPlayableBorder:
		return m.OldInPlayableBorder(ctx)
	case journeyevent.FieldScheduledTime:
		return m.OldScheduledTime(ctx)
	case journeyevent.FieldRealtimeTime:
		return m.OldRealtimeTime(ctx)
	case journeyevent.FieldRealtimeTimeType:
		return m.OldRealtimeTimeType(ctx)
	case journeyevent.FieldTransport:
		return m.OldTransport(ctx)
	case journeyevent.FieldStopType:
		return m.OldStopType(ctx)
	case journeyevent.FieldScheduledPlatform:
		return m.OldScheduledPlatform(ctx)
	case journeyevent.FieldScheduledTrack:
		return m.OldScheduledTrack(ctx)
	case journeyevent.FieldRealtimePlatform:
		return m.OldRealtimePlatform(ctx)
	case journeyevent.FieldRealtimeTrack:
		return m.OldRealtimeTrack(ctx)
	case journeyevent.FieldCancelled:
		return m.OldCancelled(ctx)
	case journeyevent.FieldAdditional:
		return m.OldAdditional(ctx)
	}
	return nil, fmt.Errorf("unknown JourneyEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JourneyEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case journeyevent.FieldJourneyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJourneyID(v)
		return nil
	case journeyevent.FieldEventIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventIndex(v)
		return nil
	case journeyevent.FieldEventType:
		v, ok := value.(journeyevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case journeyevent.FieldPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointID(v)
		return nil
	case journeyevent.FieldPointName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointName(v)
		return nil
	case journeyevent.FieldInPlayableBorder:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInPlayableBorder(v)
		return nil
	case journeyevent.FieldScheduledTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledTime(v)
		return nil
	case journeyevent.FieldRealtimeTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealtimeTime(v)
		return nil
	case journeyevent.FieldRealtimeTimeType:
		v, ok := value.(journeyevent.RealtimeTimeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealtimeTimeType(v)
		return nil
	case journeyevent.FieldTransport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransport(v)
		return nil
	case journeyevent.FieldStopType:
		v, ok := value.(journeyevent.StopType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopType(v)
		return nil
	case journeyevent.FieldScheduledPlatform:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledPlatform(v)
		return nil
	case journeyevent.FieldScheduledTrack:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledTrack(v)
		return nil
	case journeyevent.FieldRealtimePlatform:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealtimePlatform(v)
		return nil
	case journeyevent.FieldRealtimeTrack:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealtimeTrack(v)
		return nil
	case journeyevent.FieldCancelled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelled(v)
		return nil
	case journeyevent.FieldAdditional:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditional(v)
		return nil
	}
	return fmt.Errorf("unknown JourneyEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JourneyEventMutation) AddedFields() []string {
	var fields []string
	if m.addevent_index != nil {
		fields = append(fields, journeyevent.FieldEventIndex)
	}
	if m.addscheduled_platform != nil {
		fields = append(fields, journeyevent.FieldScheduledPlatform)
	}
	if m.addscheduled_track != nil {
		fields = append(fields, journeyevent.FieldScheduledTrack)
	}
	if m.addrealtime_platform != nil {
		fields = append(fields, journeyevent.FieldRealtimePlatform)
	}
	if m.addrealtime_track != nil {
		fields = append(fields, journeyevent.FieldRealtimeTrack)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JourneyEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case journeyevent.FieldEventIndex:
		return m.AddedEventIndex()
	case journeyevent.FieldScheduledPlatform:
		return m.AddedScheduledPlatform()
	case journeyevent.FieldScheduledTrack:
		return m.AddedScheduledTrack()
	case journeyevent.FieldRealtimePlatform:
		return m.AddedRealtimePlatform()
	case journeyevent.FieldRealtimeTrack:
		return m.AddedRealtimeTrack()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JourneyEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case journeyevent.FieldEventIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventIndex(v)
		return nil
	case journeyevent.FieldScheduledPlatform:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScheduledPlatform(v)
		return nil
	case journeyevent.FieldScheduledTrack:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScheduledTrack(v)
		return nil
	case journeyevent.FieldRealtimePlatform:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRealtimePlatform(v)
		return nil
	case journeyevent.FieldRealtimeTrack:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRealtimeTrack(v)
		return nil
	}
	return fmt.Errorf("unknown JourneyEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JourneyEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(journeyevent.FieldPointName) {
		fields = append(fields, journeyevent.FieldPointName)
	}
	if m.FieldCleared(journeyevent.FieldRealtimeTime) {
		fields = append(fields, journeyevent.FieldRealtimeTime)
	}
	if m.FieldCleared(journeyevent.FieldTransport) {
		fields = append(fields, journeyevent.FieldTransport)
	}
	if m.FieldCleared(journeyevent.FieldScheduledPlatform) {
		fields = append(fields, journeyevent.FieldScheduledPlatform)
	}
	if m.FieldCleared(journeyevent.FieldScheduledTrack) {
		fields = append(fields, journeyevent.FieldScheduledTrack)
	}
	if m.FieldCleared(journeyevent.FieldRealtimePlatform) {
		fields = append(fields, journeyevent.FieldRealtimePlatform)
	}
	if m.FieldCleared(journeyevent.FieldRealtimeTrack) {
		fields = append(fields, journeyevent.FieldRealtimeTrack)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JourneyEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JourneyEventMutation) ClearField(name string) error {
	switch name {
	case journeyevent.FieldPointName:
		m.ClearPointName()
		return nil
	case journeyevent.FieldRealtimeTime:
		m.ClearRealtimeTime()
		return nil
	case journeyevent.FieldTransport:
		m.ClearTransport()
		return nil
	case journeyevent.FieldScheduledPlatform:
		m.ClearScheduledPlatform()
		return nil
	case journeyevent.FieldScheduledTrack:
		m.ClearScheduledTrack()
		return nil
	case journeyevent.FieldRealtimePlatform:
		m.ClearRealtimePlatform()
		return nil
	case journeyevent.FieldRealtimeTrack:
		m.ClearRealtimeTrack()
		return nil
	}
	return fmt.Errorf("unknown JourneyEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JourneyEventMutation) ResetField(name string) error {
	switch name {
	case journeyevent.FieldJourneyID:
		m.ResetJourneyID()
		return nil
	case journeyevent.FieldEventIndex:
		m.ResetEventIndex()
		return nil
	case journeyevent.FieldEventType:
		m.ResetEventType()
		return nil
	case journeyevent.FieldPointID:
		m.ResetPointID()
		return nil
	case journeyevent.FieldPointName:
		m.ResetPointName()
		return nil
	case journeyevent.FieldInPlayableBorder:
		m.ResetInPlayableBorder()
		return nil
	case journeyevent.FieldScheduledTime:
		m.ResetScheduledTime()
		return nil
	case journeyevent.FieldRealtimeTime:
		m.ResetRealtimeTime()
		return nil
	case journeyevent.FieldRealtimeTimeType:
		m.ResetRealtimeTimeType()
		return nil
	case journeyevent.FieldTransport:
		m.ResetTransport()
		return nil
	case journeyevent.FieldStopType:
		m.ResetStopType()
		return nil
	case journeyevent.FieldScheduledPlatform:
		m.ResetScheduledPlatform()
		return nil
	case journeyevent.FieldScheduledTrack:
		m.ResetScheduledTrack()
		return nil
	case journeyevent.FieldRealtimePlatform:
		m.ResetRealtimePlatform()
		return nil
	case journeyevent.FieldRealtimeTrack:
		m.ResetRealtimeTrack()
		return nil
	case journeyevent.FieldCancelled:
		m.ResetCancelled()
		return nil
	case journeyevent.FieldAdditional:
		m.ResetAdditional()
		return nil
	}
	return fmt.Errorf("unknown JourneyEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JourneyEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.journey != nil {
		edges = append(edges, journeyevent.EdgeJourney)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JourneyEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case journeyevent.EdgeJourney:
		if id := m.journey; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JourneyEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JourneyEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JourneyEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjourney {
		edges = append(edges, journeyevent.EdgeJourney)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JourneyEventMutation) EdgeCleared(name string) bool {
	switch name {
	case journeyevent.EdgeJourney:
		return m.clearedjourney
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JourneyEventMutation) ClearEdge(name string) error {
	switch name {
	case journeyevent.EdgeJourney:
		m.ClearJourney()
		return nil
	}
	return fmt.Errorf("unknown JourneyEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JourneyEventMutation) ResetEdge(name string) error {
	switch name {
	case journeyevent.EdgeJourney:
		m.ResetJourney()
		return nil
	}
	return fmt.Errorf("unknown JourneyEvent edge %s", name)
}

// ServerMutation represents an operation that mutates the Server nodes in the graph.
type ServerMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	foreign_id          *string
	code                *string
	region              *server.Region
	scenery             *string
	utc_offset_hours    *int
	addutc_offset_hours *int
	language            *string
	tags                *[]string
	appendtags          []string
	deleted             *bool
	registered_since    *time.Time
	update_time         *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Server, error)
	predicates          []predicate.Server
}

var _ ent.Mutation = (*ServerMutation)(nil)

// serverOption allows management of the mutation configuration using functional options.
type serverOption func(*ServerMutation)

// newServerMutation creates new mutation for the Server entity.
func newServerMutation(c config, op Op, opts ...serverOption) *ServerMutation {
	m := &ServerMutation{
		config:        c,
		op:            op,
		typ:           TypeServer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServerID sets the ID field of the mutation.
func withServerID(id string) serverOption {
	return func(m *ServerMutation) {
		var (
			err   error
			once  sync.Once
			value *Server
		)
		m.oldValue = func(ctx context.Context) (*Server, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Server.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServer sets the old Server of the mutation.
func withServer(node *Server) serverOption {
	return func(m *ServerMutation) {
		m.oldValue = func(context.Context) (*Server, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Server entities.
func (m *ServerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Server.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetForeignID sets the "foreign_id" field.
func (m *ServerMutation) SetForeignID(s string) {
	m.foreign_id = &s
}

// ForeignID returns the value of the "foreign_id" field in the mutation.
func (m *ServerMutation) ForeignID() (r string, exists bool) {
	v := m.foreign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldForeignID returns the old "foreign_id" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldForeignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForeignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForeignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForeignID: %w", err)
	}
	return oldValue.ForeignID, nil
}

// ResetForeignID resets all changes to the "foreign_id" field.
func (m *ServerMutation) ResetForeignID() {
	m.foreign_id = nil
}

// SetCode sets the "code" field.
func (m *ServerMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *ServerMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *ServerMutation) ResetCode() {
	m.code = nil
}

// SetRegion sets the "region" field.
func (m *ServerMutation) SetRegion(s server.Region) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *ServerMutation) Region() (r server.Region, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldRegion(ctx context.Context) (v server.Region, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *ServerMutation) ResetRegion() {
	m.region = nil
}

// SetScenery sets the "scenery" field.
func (m *ServerMutation) SetScenery(s string) {
	m.scenery = &s
}

// Scenery returns the value of the "scenery" field in the mutation.
func (m *ServerMutation) Scenery() (r string, exists bool) {
	v := m.scenery
	if v == nil {
		return
	}
	return *v, true
}

// OldScenery returns the old "scenery" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldScenery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenery: %w", err)
	}
	return oldValue.Scenery, nil
}

// ClearScenery clears the value of the "scenery" field.
func (m *ServerMutation) ClearScenery() {
	m.scenery = nil
	m.clearedFields[server.FieldScenery] = struct{}{}
}

// SceneryCleared returns if the "scenery" field was cleared in this mutation.
func (m *ServerMutation) SceneryCleared() bool {
	_, ok := m.clearedFields[server.FieldScenery]
	return ok
}

// ResetScenery resets all changes to the "scenery" field.
func (m *ServerMutation) ResetScenery() {
	m.scenery = nil
	delete(m.clearedFields, server.FieldScenery)
}

// SetUtcOffsetHours sets the "utc_offset_hours" field.
func (m *ServerMutation) SetUtcOffsetHours(i int) {
	m.utc_offset_hours = &i
	m.addutc_offset_hours = nil
}

// UtcOffsetHours returns the value of the "utc_offset_hours" field in the mutation.
func (m *ServerMutation) UtcOffsetHours() (r int, exists bool) {
	v := m.utc_offset_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldUtcOffsetHours returns the old "utc_offset_hours" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldUtcOffsetHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtcOffsetHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtcOffsetHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtcOffsetHours: %w", err)
	}
	return oldValue.UtcOffsetHours, nil
}

// AddUtcOffsetHours adds i to the "utc_offset_hours" field.
func (m *ServerMutation) AddUtcOffsetHours(i int) {
	if m.addutc_offset_hours != nil {
		*m.addutc_offset_hours += i
	} else {
		m.addutc_offset_hours = &i
	}
}

// AddedUtcOffsetHours returns the value that was added to the "utc_offset_hours" field in this mutation.
func (m *ServerMutation) AddedUtcOffsetHours() (r int, exists bool) {
	v := m.addutc_offset_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetUtcOffsetHours resets all changes to the "utc_offset_hours" field.
func (m *ServerMutation) ResetUtcOffsetHours() {
	m.utc_offset_hours = nil
	m.addutc_offset_hours = nil
}

// SetLanguage sets the "language" field.
func (m *ServerMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ServerMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *ServerMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[server.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *ServerMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[server.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *ServerMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, server.FieldLanguage)
}

// SetTags sets the "tags" field.
func (m *ServerMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ServerMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ServerMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ServerMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ServerMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[server.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ServerMutation) TagsCleared() bool {
	_, ok := m.clearedFields[server.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ServerMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, server.FieldTags)
}

// SetDeleted sets the "deleted" field.
func (m *ServerMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *ServerMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *ServerMutation) ResetDeleted() {
	m.deleted = nil
}

// SetRegisteredSince sets the "registered_since" field.
func (m *ServerMutation) SetRegisteredSince(t time.Time) {
	m.registered_since = &t
}

// RegisteredSince returns the value of the "registered_since" field in the mutation.
func (m *ServerMutation) RegisteredSince() (r time.Time, exists bool) {
	v := m.registered_since
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredSince returns the old "registered_since" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldRegisteredSince(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredSince is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredSince requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredSince: %w", err)
	}
	return oldValue.RegisteredSince, nil
}

// ResetRegisteredSince resets all changes to the "registered_since" field.
func (m *ServerMutation) ResetRegisteredSince() {
	m.registered_since = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ServerMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ServerMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ServerMutation) ResetUpdateTime() {
	m.update_time = nil
}

// Where appends a list predicates to the ServerMutation builder.
func (m *ServerMutation) Where(ps ...predicate.Server) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Server, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Server).
func (m *ServerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServerMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.foreign_id != nil {
		fields = append(fields, server.FieldForeignID)
	}
	if m.code != nil {
		fields = append(fields, server.FieldCode)
	}
	if m.region != nil {
		fields = append(fields, server.FieldRegion)
	}
	if m.scenery != nil {
		fields = append(fields, server.FieldScenery)
	}
	if m.utc_offset_hours != nil {
		fields = append(fields, server.FieldUtcOffsetHours)
	}
	if m.language != nil {
		fields = append(fields, server.FieldLanguage)
	}
	if m.tags != nil {
		fields = append(fields, server.FieldTags)
	}
	if m.deleted != nil {
		fields = append(fields, server.FieldDeleted)
	}
	if m.registered_since != nil {
		fields = append(fields, server.FieldRegisteredSince)
	}
	if m.update_time != nil {
		fields = append(fields, server.FieldUpdateTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case server.FieldForeignID:
		return m.ForeignID()
	case server.FieldCode:
		return m.Code()
	case server.FieldRegion:
		return m.Region()
	case server.FieldScenery:
		return m.Scenery()
	case server.FieldUtcOffsetHours:
		return m.UtcOffsetHours()
	case server.FieldLanguage:
		return m.Language()
	case server.FieldTags:
		return m.Tags()
	case server.FieldDeleted:
		return m.Deleted()
	case server.FieldRegisteredSince:
		return m.RegisteredSince()
	case server.FieldUpdateTime:
		return m.UpdateTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case server.FieldForeignID:
		return m.OldForeignID(ctx)
	case server.FieldCode:
		return m.OldCode(ctx)
	case server.FieldRegion:
		return m.OldRegion(ctx)
	case server.FieldScenery:
		return m.OldScenery(ctx)
	case server.FieldUtcOffsetHours:
		return m.OldUtcOffsetHours(ctx)
	case server.FieldLanguage:
		return m.OldLanguage(ctx)
	case server.FieldTags:
		return m.OldTags(ctx)
	case server.FieldDeleted:
		return m.OldDeleted(ctx)
	case server.FieldRegisteredSince:
		return m.OldRegisteredSince(ctx)
	case server.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	}
	return nil, fmt.Errorf("unknown Server field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case server.FieldForeignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForeignID(v)
		return nil
	case server.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case server.FieldRegion:
		v, ok := value.(server.Region)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case server.FieldScenery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenery(v)
		return nil
	case server.FieldUtcOffsetHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtcOffsetHours(v)
		return nil
	case server.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case server.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case server.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case server.FieldRegisteredSince:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredSince(v)
		return nil
	case server.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	}
	return fmt.Errorf("unknown Server field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServerMutation) AddedFields() []string {
	var fields []string
	if m.addutc_offset_hours != nil {
		fields = append(fields, server.FieldUtcOffsetHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case server.FieldUtcOffsetHours:
		return m.AddedUtcOffsetHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case server.FieldUtcOffsetHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUtcOffsetHours(v)
		return nil
	}
	return fmt.Errorf("unknown Server numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(server.FieldScenery) {
		fields = append(fields, server.FieldScenery)
	}
	if m.FieldCleared(server.FieldLanguage) {
		fields = append(fields, server.FieldLanguage)
	}
	if m.FieldCleared(server.FieldTags) {
		fields = append(fields, server.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServerMutation) ClearField(name string) error {
	switch name {
	case server.FieldScenery:
		m.ClearScenery()
		return nil
	case server.FieldLanguage:
		m.ClearLanguage()
		return nil
	case server.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Server nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServerMutation) ResetField(name string) error {
	switch name {
	case server.FieldForeignID:
		m.ResetForeignID()
		return nil
	case server.FieldCode:
		m.ResetCode()
		return nil
	case server.FieldRegion:
		m.ResetRegion()
		return nil
	case server.FieldScenery:
		m.ResetScenery()
		return nil
	case server.FieldUtcOffsetHours:
		m.ResetUtcOffsetHours()
		return nil
	case server.FieldLanguage:
		m.ResetLanguage()
		return nil
	case server.FieldTags:
		m.ResetTags()
		return nil
	case server.FieldDeleted:
		m.ResetDeleted()
		return nil
	case server.FieldRegisteredSince:
		m.ResetRegisteredSince()
		return nil
	case server.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	}
	return fmt.Errorf("unknown Server field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Server unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Server edge %s", name)
}

// VehicleSequenceMutation represents an operation that mutates the VehicleSequence nodes in the graph.
type VehicleSequenceMutation struct {
	config
	op             Op
	typ            string
	id             *string
	status         *vehiclesequence.Status
	vehicles       *[]map[string]interface{}
	appendvehicles []map[string]interface{}
	resolve_key    *string
	update_time    *time.Time
	clearedFields  map[string]struct{}
	journey        *string
	clearedjourney bool
	done           bool
	oldValue       func(context.Context) (*VehicleSequence, error)
	predicates     []predicate.VehicleSequence
}

var _ ent.Mutation = (*VehicleSequenceMutation)(nil)

// vehiclesequenceOption allows management of the mutation configuration using functional options.
type vehiclesequenceOption func(*VehicleSequenceMutation)

// newVehicleSequenceMutation creates new mutation for the VehicleSequence entity.
func newVehicleSequenceMutation(c config, op Op, opts ...vehiclesequenceOption) *VehicleSequenceMutation {
	m := &VehicleSequenceMutation{
		config:        c,
		op:            op,
		typ:           TypeVehicleSequence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVehicleSequenceID sets the ID field of the mutation.
func withVehicleSequenceID(id string) vehiclesequenceOption {
	return func(m *VehicleSequenceMutation) {
		var (
			err   error
			once  sync.Once
			value *VehicleSequence
		)
		m.oldValue = func(ctx context.Context) (*VehicleSequence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VehicleSequence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVehicleSequence sets the old VehicleSequence of the mutation.
func withVehicleSequence(node *VehicleSequence) vehiclesequenceOption {
	return func(m *VehicleSequenceMutation) {
		m.oldValue = func(context.Context) (*VehicleSequence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VehicleSequenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VehicleSequenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VehicleSequence entities.
func (m *VehicleSequenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VehicleSequenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VehicleSequenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VehicleSequence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJourneyID sets the "journey_id" field.
func (m *VehicleSequenceMutation) SetJourneyID(s string) {
	m.journey = &s
}

// JourneyID returns the value of the "journey_id" field in the mutation.
func (m *VehicleSequenceMutation) JourneyID() (r string, exists bool) {
	v := m.journey
	if v == nil {
		return
	}
	return *v, true
}

// OldJourneyID returns the old "journey_id" field's value of the VehicleSequence entity.
// If the VehicleSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleSequenceMutation) OldJourneyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJourneyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJourneyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJourneyID: %w", err)
	}
	return oldValue.JourneyID, nil
}

// ResetJourneyID resets all changes to the "journey_id" field.
func (m *VehicleSequenceMutation) ResetJourneyID() {
	m.journey = nil
}

// SetStatus sets the "status" field.
func (m *VehicleSequenceMutation) SetStatus(v vehiclesequence.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VehicleSequenceMutation) Status() (r vehiclesequence.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VehicleSequence entity.
// If the VehicleSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleSequenceMutation) OldStatus(ctx context.Context) (v vehiclesequence.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VehicleSequenceMutation) ResetStatus() {
	m.status = nil
}

// SetVehicles sets the "vehicles" field.
func (m *VehicleSequenceMutation) SetVehicles(value []map[string]interface{}) {
	m.vehicles = &value
	m.appendvehicles = nil
}

// Vehicles returns the value of the "vehicles" field in the mutation.
func (m *VehicleSequenceMutation) Vehicles() (r []map[string]interface{}, exists bool) {
	v := m.vehicles
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicles returns the old "vehicles" field's value of the VehicleSequence entity.
// If the VehicleSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleSequenceMutation) OldVehicles(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicles: %w", err)
	}
	return oldValue.Vehicles, nil
}

// AppendVehicles adds value to the "vehicles" field.
func (m *VehicleSequenceMutation) AppendVehicles(value []map[string]interface{}) {
	m.appendvehicles = append(m.appendvehicles, value...)
}

// AppendedVehicles returns the list of values that were appended to the "vehicles" field in this mutation.
func (m *VehicleSequenceMutation) AppendedVehicles() ([]map[string]interface{}, bool) {
	if len(m.appendvehicles) == 0 {
		return nil, false
	}
	return m.appendvehicles, true
}

// ResetVehicles resets all changes to the "vehicles" field.
func (m *VehicleSequenceMutation) ResetVehicles() {
	m.vehicles = nil
	m.appendvehicles = nil
}

// SetResolveKey sets the "resolve_key" field.
func (m *VehicleSequenceMutation) SetResolveKey(s string) {
	m.resolve_key = &s
}

// ResolveKey returns the value of the "resolve_key" field in the mutation.
func (m *VehicleSequenceMutation) ResolveKey() (r string, exists bool) {
	v := m.resolve_key
	if v == nil {
		return
	}
	return *v, true
}

// OldResolveKey returns the old "resolve_key" field's value of the VehicleSequence entity.
// If the VehicleSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleSequenceMutation) OldResolveKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolveKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolveKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolveKey: %w", err)
	}
	return oldValue.ResolveKey, nil
}

// ResetResolveKey resets all changes to the "resolve_key" field.
func (m *VehicleSequenceMutation) ResetResolveKey() {
	m.resolve_key = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *VehicleSequenceMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *VehicleSequenceMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the VehicleSequence entity.
// If the VehicleSequence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleSequenceMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *VehicleSequenceMutation) ResetUpdateTime() {
	m.update_time = nil
}

// ClearJourney clears the "journey" edge to the Journey entity.
func (m *VehicleSequenceMutation) ClearJourney() {
	m.clearedjourney = true
	m.clearedFields[vehiclesequence.FieldJourneyID] = struct{}{}
}

// JourneyCleared reports if the "journey" edge to the Journey entity was cleared.
func (m *VehicleSequenceMutation) JourneyCleared() bool {
	return m.clearedjourney
}

// JourneyIDs returns the "journey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JourneyID instead. It exists only for internal usage by the builders.
func (m *VehicleSequenceMutation) JourneyIDs() (ids []string) {
	if id := m.journey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJourney resets all changes to the "journey" edge.
func (m *VehicleSequenceMutation) ResetJourney() {
	m.journey = nil
	m.clearedjourney = false
}

// Where appends a list predicates to the VehicleSequenceMutation builder.
func (m *VehicleSequenceMutation) Where(ps ...predicate.VehicleSequence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VehicleSequenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VehicleSequenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VehicleSequence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VehicleSequenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VehicleSequenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VehicleSequence).
func (m *VehicleSequenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VehicleSequenceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.journey != nil {
		fields = append(fields, vehiclesequence.FieldJourneyID)
	}
	if m.status != nil {
		fields = append(fields, vehiclesequence.FieldStatus)
	}
	if m.vehicles != nil {
		fields = append(fields, vehiclesequence.FieldVehicles)
	}
	if m.resolve_key != nil {
		fields = append(fields, vehiclesequence.FieldResolveKey)
	}
	if m.update_time != nil {
		fields = append(fields, vehiclesequence.FieldUpdateTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VehicleSequenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vehiclesequence.FieldJourneyID:
		return m.JourneyID()
	case vehiclesequence.FieldStatus:
		return m.Status()
	case vehiclesequence.FieldVehicles:
		return m.Vehicles()
	case vehiclesequence.FieldResolveKey:
		return m.ResolveKey()
	case vehiclesequence.FieldUpdateTime:
		return m.UpdateTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VehicleSequenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vehiclesequence.FieldJourneyID:
		return m.OldJourneyID(ctx)
	case vehiclesequence.FieldStatus:
		return m.OldStatus(ctx)
	case vehiclesequence.FieldVehicles:
		return m.OldVehicles(ctx)
	case vehiclesequence.FieldResolveKey:
		return m.OldResolveKey(ctx)
	case vehiclesequence.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	}
	return nil, fmt.Errorf("unknown VehicleSequence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleSequenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vehiclesequence.FieldJourneyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJourneyID(v)
		return nil
	case vehiclesequence.FieldStatus:
		v, ok := value.(vehiclesequence.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case vehiclesequence.FieldVehicles:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicles(v)
		return nil
	case vehiclesequence.FieldResolveKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolveKey(v)
		return nil
	case vehiclesequence.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	}
	return fmt.Errorf("unknown VehicleSequence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VehicleSequenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VehicleSequenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleSequenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VehicleSequence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VehicleSequenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VehicleSequenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VehicleSequenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VehicleSequence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VehicleSequenceMutation) ResetField(name string) error {
	switch name {
	case vehiclesequence.FieldJourneyID:
		m.ResetJourneyID()
		return nil
	case vehiclesequence.FieldStatus:
		m.ResetStatus()
		return nil
	case vehiclesequence.FieldVehicles:
		m.ResetVehicles()
		return nil
	case vehiclesequence.FieldResolveKey:
		m.ResetResolveKey()
		return nil
	case vehiclesequence.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	}
	return fmt.Errorf("unknown VehicleSequence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VehicleSequenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.journey != nil {
		edges = append(edges, vehiclesequence.EdgeJourney)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VehicleSequenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vehiclesequence.EdgeJourney:
		if id := m.journey; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VehicleSequenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VehicleSequenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VehicleSequenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjourney {
		edges = append(edges, vehiclesequence.EdgeJourney)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VehicleSequenceMutation) EdgeCleared(name string) bool {
	switch name {
	case vehiclesequence.EdgeJourney:
		return m.clearedjourney
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VehicleSequenceMutation) ClearEdge(name string) error {
	switch name {
	case vehiclesequence.EdgeJourney:
		m.ClearJourney()
		return nil
	}
	return fmt.Errorf("unknown VehicleSequence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VehicleSequenceMutation) ResetEdge(name string) error {
	switch name {
	case vehiclesequence.EdgeJourney:
		m.ResetJourney()
		return nil
	}
	return fmt.Errorf("unknown VehicleSequence edge %s", name)
}
