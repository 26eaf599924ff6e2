// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/simtrack/sit-collector/ent/journey"
	"github.com/simtrack/sit-collector/ent/predicate"
	"github.com/simtrack/sit-collector/ent/vehiclesequence"
)

// VehicleSequenceQuery is the builder for querying VehicleSequence entities.
type VehicleSequenceQuery struct {
	config
	ctx         *QueryContext
	order       []vehiclesequence.OrderOption
	inters      []Interceptor
	predicates  []predicate.VehicleSequence
	withJourney *JourneyQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VehicleSequenceQuery builder.
func (_q *VehicleSequenceQuery) Where(ps ...predicate.VehicleSequence) *VehicleSequenceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *VehicleSequenceQuery) Limit(limit int) *VehicleSequenceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *VehicleSequenceQuery) Offset(offset int) *VehicleSequenceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *VehicleSequenceQuery) Unique(unique bool) *VehicleSequenceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *VehicleSequenceQuery) Order(o ...vehiclesequence.OrderOption) *VehicleSequenceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryJourney chains the current query on the "journey" edge.
func (_q *VehicleSequenceQuery) QueryJourney() *JourneyQuery {
	query := (&JourneyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(vehiclesequence.Table, vehiclesequence.FieldID, selector),
			sqlgraph.To(journey.Table, journey.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, vehiclesequence.JourneyTable, vehiclesequence.JourneyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first VehicleSequence entity from the query.
// Returns a *NotFoundError when no VehicleSequence was found.
func (_q *VehicleSequenceQuery) First(ctx context.Context) (*VehicleSequence, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{vehiclesequence.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *VehicleSequenceQuery) FirstX(ctx context.Context) *VehicleSequence {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VehicleSequence ID from the query.
// Returns a *NotFoundError when no VehicleSequence ID was found.
func (_q *VehicleSequenceQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{vehiclesequence.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *VehicleSequenceQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VehicleSequence entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VehicleSequence entity is found.
// Returns a *NotFoundError when no VehicleSequence entities are found.
func (_q *VehicleSequenceQuery) Only(ctx context.Context) (*VehicleSequence, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{vehiclesequence.Label}
	default:
		return nil, &NotSingularError{vehiclesequence.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *VehicleSequenceQuery) OnlyX(ctx context.Context) *VehicleSequence {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VehicleSequence ID in the query.
// Returns a *NotSingularError when more than one VehicleSequence ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *VehicleSequenceQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{vehiclesequence.Label}
	default:
		err = &NotSingularError{vehiclesequence.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *VehicleSequenceQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VehicleSequences.
func (_q *VehicleSequenceQuery) All(ctx context.Context) ([]*VehicleSequence, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VehicleSequence, *VehicleSequenceQuery]()
	return withInterceptors[[]*VehicleSequence](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *VehicleSequenceQuery) AllX(ctx context.Context) []*VehicleSequence {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VehicleSequence IDs.
func (_q *VehicleSequenceQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(vehiclesequence.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *VehicleSequenceQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *VehicleSequenceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*VehicleSequenceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *VehicleSequenceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *VehicleSequenceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *VehicleSequenceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VehicleSequenceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *VehicleSequenceQuery) Clone() *VehicleSequenceQuery {
	if _q == nil {
		return nil
	}
	return &VehicleSequenceQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]vehiclesequence.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.VehicleSequence{}, _q.predicates...),
		withJourney: _q.withJourney.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithJourney tells the query-builder to eager-load the nodes that are connected to
// the "journey" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VehicleSequenceQuery) WithJourney(opts ...func(*JourneyQuery)) *VehicleSequenceQuery {
	query := (&JourneyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJourney = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		JourneyID string `json:"journey_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.VehicleSequence.Query().
//		GroupBy(vehiclesequence.FieldJourneyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *VehicleSequenceQuery) GroupBy(field string, fields ...string) *VehicleSequenceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VehicleSequenceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = vehiclesequence.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		JourneyID string `json:"journey_id,omitempty"`
//	}
//
//	client.VehicleSequence.Query().
//		Select(vehiclesequence.FieldJourneyID).
//		Scan(ctx, &v)
func (_q *VehicleSequenceQuery) Select(fields ...string) *VehicleSequenceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &VehicleSequenceSelect{VehicleSequenceQuery: _q}
	sbuild.label = vehiclesequence.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VehicleSequenceSelect configured with the given aggregations.
func (_q *VehicleSequenceQuery) Aggregate(fns ...AggregateFunc) *VehicleSequenceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *VehicleSequenceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !vehiclesequence.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *VehicleSequenceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VehicleSequence, error) {
	var (
		nodes       = []*VehicleSequence{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withJourney != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VehicleSequence).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VehicleSequence{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withJourney; query != nil {
		if err := _q.loadJourney(ctx, query, nodes, nil,
			func(n *VehicleSequence, e *Journey) { n.Edges.Journey = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *VehicleSequenceQuery) loadJourney(ctx context.Context, query *JourneyQuery, nodes []*VehicleSequence, init func(*VehicleSequence), assign func(*VehicleSequence, *Journey)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*VehicleSequence)
	for i := range nodes {
		fk := nodes[i].JourneyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(journey.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "journey_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *VehicleSequenceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *VehicleSequenceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(vehiclesequence.Table, vehiclesequence.Columns, sqlgraph.NewFieldSpec(vehiclesequence.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehiclesequence.FieldID)
		for i := range fields {
			if fields[i] != vehiclesequence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withJourney != nil {
			_spec.Node.AddColumnOnce(vehiclesequence.FieldJourneyID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *VehicleSequenceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(vehiclesequence.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = vehiclesequence.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VehicleSequenceGroupBy is the group-by builder for VehicleSequence entities.
type VehicleSequenceGroupBy struct {
	selector
	build *VehicleSequenceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *VehicleSequenceGroupBy) Aggregate(fns ...AggregateFunc) *VehicleSequenceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *VehicleSequenceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VehicleSequenceQuery, *VehicleSequenceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *VehicleSequenceGroupBy) sqlScan(ctx context.Context, root *VehicleSequenceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VehicleSequenceSelect is the builder for selecting fields of VehicleSequence entities.
type VehicleSequenceSelect struct {
	*VehicleSequenceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *VehicleSequenceSelect) Aggregate(fns ...AggregateFunc) *VehicleSequenceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *VehicleSequenceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VehicleSequenceQuery, *VehicleSequenceSelect](ctx, _s.VehicleSequenceQuery, _s, _s.inters, v)
}

func (_s *VehicleSequenceSelect) sqlScan(ctx context.Context, root *VehicleSequenceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
