// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/simtrack/sit-collector/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/simtrack/sit-collector/ent/dispatchpost"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/ent/server"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DispatchPost is the client for interacting with the DispatchPost builders.
	DispatchPost *DispatchPostClient
	// Journey is the client for interacting with the Journey builders.
	Journey *JourneyClient
	// JourneyEvent is the client for interacting with the JourneyEvent builders.
	JourneyEvent *JourneyEventClient
	// Server is the client for interacting with the Server builders.
	Server *ServerClient
	// VehicleSequence is the client for interacting with the VehicleSequence builders.
	VehicleSequence *VehicleSequenceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DispatchPost = NewDispatchPostClient(c.config)
	c.Journey = NewJourneyClient(c.config)
	c.JourneyEvent = NewJourneyEventClient(c.config)
	c.Server = NewServerClient(c.config)
	c.VehicleSequence = NewVehicleSequenceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		DispatchPost:    NewDispatchPostClient(cfg),
		Journey:         NewJourneyClient(cfg),
		JourneyEvent:    NewJourneyEventClient(cfg),
		Server:          NewServerClient(cfg),
		VehicleSequence: NewVehicleSequenceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		DispatchPost:    NewDispatchPostClient(cfg),
		Journey:         NewJourneyClient(cfg),
		JourneyEvent:    NewJourneyEventClient(cfg),
		Server:          NewServerClient(cfg),
		VehicleSequence: NewVehicleSequenceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DispatchPost.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.DispatchPost.Use(hooks...)
	c.Journey.Use(hooks...)
	c.JourneyEvent.Use(hooks...)
	c.Server.Use(hooks...)
	c.VehicleSequence.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DispatchPost.Intercept(interceptors...)
	c.Journey.Intercept(interceptors...)
	c.JourneyEvent.Intercept(interceptors...)
	c.Server.Intercept(interceptors...)
	c.VehicleSequence.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DispatchPostMutation:
		return c.DispatchPost.mutate(ctx, m)
	case *JourneyMutation:
		return c.Journey.mutate(ctx, m)
	case *JourneyEventMutation:
		return c.JourneyEvent.mutate(ctx, m)
	case *ServerMutation:
		return c.Server.mutate(ctx, m)
	case *VehicleSequenceMutation:
		return c.VehicleSequence.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DispatchPostClient is a client for the DispatchPost schema.
type DispatchPostClient struct {
	config
}

// NewDispatchPostClient returns a client for the DispatchPost from the given config.
func NewDispatchPostClient(c config) *DispatchPostClient {
	return &DispatchPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dispatchpost.Hooks(f(g(h())))`.
func (c *DispatchPostClient) Use(hooks ...Hook) {
	c.hooks.DispatchPost = append(c.hooks.DispatchPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dispatchpost.Intercept(f(g(h())))`.
func (c *DispatchPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.DispatchPost = append(c.inters.DispatchPost, interceptors...)
}

// Create returns a builder for creating a DispatchPost entity.
func (c *DispatchPostClient) Create() *DispatchPostCreate {
	mutation := newDispatchPostMutation(c.config, OpCreate)
	return &DispatchPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DispatchPost entities.
func (c *DispatchPostClient) CreateBulk(builders ...*DispatchPostCreate) *DispatchPostCreateBulk {
	return &DispatchPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DispatchPostClient) MapCreateBulk(slice any, setFunc func(*DispatchPostCreate, int)) *DispatchPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DispatchPostCreateBulk{err: fmt.Errorf("calling to DispatchPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DispatchPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DispatchPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DispatchPost.
func (c *DispatchPostClient) Update() *DispatchPostUpdate {
	mutation := newDispatchPostMutation(c.config, OpUpdate)
	return &DispatchPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DispatchPostClient) UpdateOne(_m *DispatchPost) *DispatchPostUpdateOne {
	mutation := newDispatchPostMutation(c.config, OpUpdateOne, withDispatchPost(_m))
	return &DispatchPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DispatchPostClient) UpdateOneID(id string) *DispatchPostUpdateOne {
	mutation := newDispatchPostMutation(c.config, OpUpdateOne, withDispatchPostID(id))
	return &DispatchPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DispatchPost.
func (c *DispatchPostClient) Delete() *DispatchPostDelete {
	mutation := newDispatchPostMutation(c.config, OpDelete)
	return &DispatchPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DispatchPostClient) DeleteOne(_m *DispatchPost) *DispatchPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DispatchPostClient) DeleteOneID(id string) *DispatchPostDeleteOne {
	builder := c.Delete().Where(dispatchpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DispatchPostDeleteOne{builder}
}

// Query returns a query builder for DispatchPost.
func (c *DispatchPostClient) Query() *DispatchPostQuery {
	return &DispatchPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDispatchPost},
		inters: c.Interceptors(),
	}
}

// Get returns a DispatchPost entity by its id.
func (c *DispatchPostClient) Get(ctx context.Context, id string) (*DispatchPost, error) {
	return c.Query().Where(dispatchpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DispatchPostClient) GetX(ctx context.Context, id string) *DispatchPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DispatchPostClient) Hooks() []Hook {
	return c.hooks.DispatchPost
}

// Interceptors returns the client interceptors.
func (c *DispatchPostClient) Interceptors() []Interceptor {
	return c.inters.DispatchPost
}

func (c *DispatchPostClient) mutate(ctx context.Context, m *DispatchPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DispatchPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DispatchPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DispatchPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DispatchPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DispatchPost mutation op: %q", m.Op())
	}
}

// JourneyClient is a client for the Journey schema.
type JourneyClient struct {
	config
}

// NewJourneyClient returns a client for the Journey from the given config.
func NewJourneyClient(c config) *JourneyClient {
	return &JourneyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `journey.Hooks(f(g(h())))`.
func (c *JourneyClient) Use(hooks ...Hook) {
	c.hooks.Journey = append(c.hooks.Journey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `journey.Intercept(f(g(h())))`.
func (c *JourneyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Journey = append(c.inters.Journey, interceptors...)
}

// Create returns a builder for creating a Journey entity.
func (c *JourneyClient) Create() *JourneyCreate {
	mutation := newJourneyMutation(c.config, OpCreate)
	return &JourneyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Journey entities.
func (c *JourneyClient) CreateBulk(builders ...*JourneyCreate) *JourneyCreateBulk {
	return &JourneyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JourneyClient) MapCreateBulk(slice any, setFunc func(*JourneyCreate, int)) *JourneyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JourneyCreateBulk{err: fmt.Errorf("calling to JourneyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JourneyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JourneyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Journey.
func (c *JourneyClient) Update() *JourneyUpdate {
	mutation := newJourneyMutation(c.config, OpUpdate)
	return &JourneyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JourneyClient) UpdateOne(_m *Journey) *JourneyUpdateOne {
	mutation := newJourneyMutation(c.config, OpUpdateOne, withJourney(_m))
	return &JourneyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JourneyClient) UpdateOneID(id string) *JourneyUpdateOne {
	mutation := newJourneyMutation(c.config, OpUpdateOne, withJourneyID(id))
	return &JourneyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Journey.
func (c *JourneyClient) Delete() *JourneyDelete {
	mutation := newJourneyMutation(c.config, OpDelete)
	return &JourneyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JourneyClient) DeleteOne(_m *Journey) *JourneyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JourneyClient) DeleteOneID(id string) *JourneyDeleteOne {
	builder := c.Delete().Where(journey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JourneyDeleteOne{builder}
}

// Query returns a query builder for Journey.
func (c *JourneyClient) Query() *JourneyQuery {
	return &JourneyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJourney},
		inters: c.Interceptors(),
	}
}

// Get returns a Journey entity by its id.
func (c *JourneyClient) Get(ctx context.Context, id string) (*Journey, error) {
	return c.Query().Where(journey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JourneyClient) GetX(ctx context.Context, id string) *Journey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a Journey.
func (c *JourneyClient) QueryEvents(_m *Journey) *JourneyEventQuery {
	query := (&JourneyEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(journey.Table, journey.FieldID, id),
			sqlgraph.To(journeyevent.Table, journeyevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, journey.EventsTable, journey.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySequence queries the sequence edge of a Journey.
func (c *JourneyClient) QuerySequence(_m *Journey) *VehicleSequenceQuery {
	query := (&VehicleSequenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(journey.Table, journey.FieldID, id),
			sqlgraph.To(vehiclesequence.Table, vehiclesequence.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, journey.SequenceTable, journey.SequenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JourneyClient) Hooks() []Hook {
	return c.hooks.Journey
}

// Interceptors returns the client interceptors.
func (c *JourneyClient) Interceptors() []Interceptor {
	return c.inters.Journey
}

func (c *JourneyClient) mutate(ctx context.Context, m *JourneyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JourneyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JourneyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JourneyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JourneyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Journey mutation op: %q", m.Op())
	}
}

// JourneyEventClient is a client for the JourneyEvent schema.
type JourneyEventClient struct {
	config
}

// NewJourneyEventClient returns a client for the JourneyEvent from the given config.
func NewJourneyEventClient(c config) *JourneyEventClient {
	return &JourneyEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `journeyevent.Hooks(f(g(h())))`.
func (c *JourneyEventClient) Use(hooks ...Hook) {
	c.hooks.JourneyEvent = append(c.hooks.JourneyEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `journeyevent.Intercept(f(g(h())))`.
func (c *JourneyEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.JourneyEvent = append(c.inters.JourneyEvent, interceptors...)
}

// Create returns a builder for creating a JourneyEvent entity.
func (c *JourneyEventClient) Create() *JourneyEventCreate {
	mutation := newJourneyEventMutation(c.config, OpCreate)
	return &JourneyEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JourneyEvent entities.
func (c *JourneyEventClient) CreateBulk(builders ...*JourneyEventCreate) *JourneyEventCreateBulk {
	return &JourneyEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JourneyEventClient) MapCreateBulk(slice any, setFunc func(*JourneyEventCreate, int)) *JourneyEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JourneyEventCreateBulk{err: fmt.Errorf("calling to JourneyEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JourneyEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JourneyEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JourneyEvent.
func (c *JourneyEventClient) Update() *JourneyEventUpdate {
	mutation := newJourneyEventMutation(c.config, OpUpdate)
	return &JourneyEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JourneyEventClient) UpdateOne(_m *JourneyEvent) *JourneyEventUpdateOne {
	mutation := newJourneyEventMutation(c.config, OpUpdateOne, withJourneyEvent(_m))
	return &JourneyEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JourneyEventClient) UpdateOneID(id string) *JourneyEventUpdateOne {
	mutation := newJourneyEventMutation(c.config, OpUpdateOne, withJourneyEventID(id))
	return &JourneyEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JourneyEvent.
func (c *JourneyEventClient) Delete() *JourneyEventDelete {
	mutation := newJourneyEventMutation(c.config, OpDelete)
	return &JourneyEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JourneyEventClient) DeleteOne(_m *JourneyEvent) *JourneyEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JourneyEventClient) DeleteOneID(id string) *JourneyEventDeleteOne {
	builder := c.Delete().Where(journeyevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JourneyEventDeleteOne{builder}
}

// Query returns a query builder for JourneyEvent.
func (c *JourneyEventClient) Query() *JourneyEventQuery {
	return &JourneyEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJourneyEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a JourneyEvent entity by its id.
func (c *JourneyEventClient) Get(ctx context.Context, id string) (*JourneyEvent, error) {
	return c.Query().Where(journeyevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JourneyEventClient) GetX(ctx context.Context, id string) *JourneyEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJourney queries the journey edge of a JourneyEvent.
func (c *JourneyEventClient) QueryJourney(_m *JourneyEvent) *JourneyQuery {
	query := (&JourneyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(journeyevent.Table, journeyevent.FieldID, id),
			sqlgraph.To(journey.Table, journey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, journeyevent.JourneyTable, journeyevent.JourneyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JourneyEventClient) Hooks() []Hook {
	return c.hooks.JourneyEvent
}

// Interceptors returns the client interceptors.
func (c *JourneyEventClient) Interceptors() []Interceptor {
	return c.inters.JourneyEvent
}

func (c *JourneyEventClient) mutate(ctx context.Context, m *JourneyEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JourneyEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JourneyEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JourneyEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JourneyEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JourneyEvent mutation op: %q", m.Op())
	}
}

// ServerClient is a client for the Server schema.
type ServerClient struct {
	config
}

// NewServerClient returns a client for the Server from the given config.
func NewServerClient(c config) *ServerClient {
	return &ServerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `server.Hooks(f(g(h())))`.
func (c *ServerClient) Use(hooks ...Hook) {
	c.hooks.Server = append(c.hooks.Server, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `server.Intercept(f(g(h())))`.
func (c *ServerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Server = append(c.inters.Server, interceptors...)
}

// Create returns a builder for creating a Server entity.
func (c *ServerClient) Create() *ServerCreate {
	mutation := newServerMutation(c.config, OpCreate)
	return &ServerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Server entities.
func (c *ServerClient) CreateBulk(builders ...*ServerCreate) *ServerCreateBulk {
	return &ServerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServerClient) MapCreateBulk(slice any, setFunc func(*ServerCreate, int)) *ServerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServerCreateBulk{err: fmt.Errorf("calling to ServerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Server.
func (c *ServerClient) Update() *ServerUpdate {
	mutation := newServerMutation(c.config, OpUpdate)
	return &ServerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServerClient) UpdateOne(_m *Server) *ServerUpdateOne {
	mutation := newServerMutation(c.config, OpUpdateOne, withServer(_m))
	return &ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServerClient) UpdateOneID(id string) *ServerUpdateOne {
	mutation := newServerMutation(c.config, OpUpdateOne, withServerID(id))
	return &ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Server.
func (c *ServerClient) Delete() *ServerDelete {
	mutation := newServerMutation(c.config, OpDelete)
	return &ServerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServerClient) DeleteOne(_m *Server) *ServerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServerClient) DeleteOneID(id string) *ServerDeleteOne {
	builder := c.Delete().Where(server.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServerDeleteOne{builder}
}

// Query returns a query builder for Server.
func (c *ServerClient) Query() *ServerQuery {
	return &ServerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServer},
		inters: c.Interceptors(),
	}
}

// Get returns a Server entity by its id.
func (c *ServerClient) Get(ctx context.Context, id string) (*Server, error) {
	return c.Query().Where(server.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServerClient) GetX(ctx context.Context, id string) *Server {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServerClient) Hooks() []Hook {
	return c.hooks.Server
}

// Interceptors returns the client interceptors.
func (c *ServerClient) Interceptors() []Interceptor {
	return c.inters.Server
}

func (c *ServerClient) mutate(ctx context.Context, m *ServerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Server mutation op: %q", m.Op())
	}
}

// VehicleSequenceClient is a client for the VehicleSequence schema.
type VehicleSequenceClient struct {
	config
}

// NewVehicleSequenceClient returns a client for the VehicleSequence from the given config.
func NewVehicleSequenceClient(c config) *VehicleSequenceClient {
	return &VehicleSequenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vehiclesequence.Hooks(f(g(h())))`.
func (c *VehicleSequenceClient) Use(hooks ...Hook) {
	c.hooks.VehicleSequence = append(c.hooks.VehicleSequence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vehiclesequence.Intercept(f(g(h())))`.
func (c *VehicleSequenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.VehicleSequence = append(c.inters.VehicleSequence, interceptors...)
}

// Create returns a builder for creating a VehicleSequence entity.
func (c *VehicleSequenceClient) Create() *VehicleSequenceCreate {
	mutation := newVehicleSequenceMutation(c.config, OpCreate)
	return &VehicleSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VehicleSequence entities.
func (c *VehicleSequenceClient) CreateBulk(builders ...*VehicleSequenceCreate) *VehicleSequenceCreateBulk {
	return &VehicleSequenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VehicleSequenceClient) MapCreateBulk(slice any, setFunc func(*VehicleSequenceCreate, int)) *VehicleSequenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VehicleSequenceCreateBulk{err: fmt.Errorf("calling to VehicleSequenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VehicleSequenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VehicleSequenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VehicleSequence.
func (c *VehicleSequenceClient) Update() *VehicleSequenceUpdate {
	mutation := newVehicleSequenceMutation(c.config, OpUpdate)
	return &VehicleSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VehicleSequenceClient) UpdateOne(_m *VehicleSequence) *VehicleSequenceUpdateOne {
	mutation := newVehicleSequenceMutation(c.config, OpUpdateOne, withVehicleSequence(_m))
	return &VehicleSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VehicleSequenceClient) UpdateOneID(id string) *VehicleSequenceUpdateOne {
	mutation := newVehicleSequenceMutation(c.config, OpUpdateOne, withVehicleSequenceID(id))
	return &VehicleSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VehicleSequence.
func (c *VehicleSequenceClient) Delete() *VehicleSequenceDelete {
	mutation := newVehicleSequenceMutation(c.config, OpDelete)
	return &VehicleSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VehicleSequenceClient) DeleteOne(_m *VehicleSequence) *VehicleSequenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VehicleSequenceClient) DeleteOneID(id string) *VehicleSequenceDeleteOne {
	builder := c.Delete().Where(vehiclesequence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VehicleSequenceDeleteOne{builder}
}

// Query returns a query builder for VehicleSequence.
func (c *VehicleSequenceClient) Query() *VehicleSequenceQuery {
	return &VehicleSequenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVehicleSequence},
		inters: c.Interceptors(),
	}
}

// Get returns a VehicleSequence entity by its id.
func (c *VehicleSequenceClient) Get(ctx context.Context, id string) (*VehicleSequence, error) {
	return c.Query().Where(vehiclesequence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VehicleSequenceClient) GetX(ctx context.Context, id string) *VehicleSequence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJourney queries the journey edge of a VehicleSequence.
func (c *VehicleSequenceClient) QueryJourney(_m *VehicleSequence) *JourneyQuery {
	query := (&JourneyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vehiclesequence.Table, vehiclesequence.FieldID, id),
			sqlgraph.To(journey.Table, journey.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, vehiclesequence.JourneyTable, vehiclesequence.JourneyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VehicleSequenceClient) Hooks() []Hook {
	return c.hooks.VehicleSequence
}

// Interceptors returns the client interceptors.
func (c *VehicleSequenceClient) Interceptors() []Interceptor {
	return c.inters.VehicleSequence
}

func (c *VehicleSequenceClient) mutate(ctx context.Context, m *VehicleSequenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VehicleSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VehicleSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VehicleSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VehicleSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VehicleSequence mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DispatchPost, Journey, JourneyEvent, Server, VehicleSequence []ent.Hook
	}
	inters struct {
		DispatchPost, Journey, JourneyEvent, Server, VehicleSequence []ent.Interceptor
	}
)
