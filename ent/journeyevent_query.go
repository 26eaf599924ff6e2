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
	"github.com/simtrack/sit-collector/ent/journeyevent"
	"github.com/simtrack/sit-collector/ent/predicate"
)

// JourneyEventQuery is the builder for querying JourneyEvent entities.
type JourneyEventQuery struct {
	config
	ctx         *QueryContext
	order       []journeyevent.OrderOption
	inters      []Interceptor
	predicates  []predicate.JourneyEvent
	withJourney *JourneyQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the JourneyEventQuery builder.
func (_q *JourneyEventQuery) Where(ps ...predicate.JourneyEvent) *JourneyEventQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *JourneyEventQuery) Limit(limit int) *JourneyEventQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *JourneyEventQuery) Offset(offset int) *JourneyEventQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *JourneyEventQuery) Unique(unique bool) *JourneyEventQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *JourneyEventQuery) Order(o ...journeyevent.OrderOption) *JourneyEventQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryJourney chains the current query on the "journey" edge.
func (_q *JourneyEventQuery) QueryJourney() *JourneyQuery {
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
			sqlgraph.From(journeyevent.Table, journeyevent.FieldID, selector),
			sqlgraph.To(journey.Table, journey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, journeyevent.JourneyTable, journeyevent.JourneyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first JourneyEvent entity from the query.
// Returns a *NotFoundError when no JourneyEvent was found.
func (_q *JourneyEventQuery) First(ctx context.Context) (*JourneyEvent, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{journeyevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *JourneyEventQuery) FirstX(ctx context.Context) *JourneyEvent {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first JourneyEvent ID from the query.
// Returns a *NotFoundError when no JourneyEvent ID was found.
func (_q *JourneyEventQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{journeyevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *JourneyEventQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single JourneyEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one JourneyEvent entity is found.
// Returns a *NotFoundError when no JourneyEvent entities are found.
func (_q *JourneyEventQuery) Only(ctx context.Context) (*JourneyEvent, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{journeyevent.Label}
	default:
		return nil, &NotSingularError{journeyevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *JourneyEventQuery) OnlyX(ctx context.Context) *JourneyEvent {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only JourneyEvent ID in the query.
// Returns a *NotSingularError when more than one JourneyEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *JourneyEventQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{journeyevent.Label}
	default:
		err = &NotSingularError{journeyevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *JourneyEventQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of JourneyEvents.
func (_q *JourneyEventQuery) All(ctx context.Context) ([]*JourneyEvent, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*JourneyEvent, *JourneyEventQuery]()
	return withInterceptors[[]*JourneyEvent](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *JourneyEventQuery) AllX(ctx context.Context) []*JourneyEvent {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of JourneyEvent IDs.
func (_q *JourneyEventQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(journeyevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *JourneyEventQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *JourneyEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*JourneyEventQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *JourneyEventQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *JourneyEventQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *JourneyEventQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the JourneyEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *JourneyEventQuery) Clone() *JourneyEventQuery {
	if _q == nil {
		return nil
	}
	return &JourneyEventQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]journeyevent.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.JourneyEvent{}, _q.predicates...),
		withJourney: _q.withJourney.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithJourney tells the query-builder to eager-load the nodes that are connected to
// the "journey" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *JourneyEventQuery) WithJourney(opts ...func(*JourneyQuery)) *JourneyEventQuery {
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
//	client.JourneyEvent.Query().
//		GroupBy(journeyevent.FieldJourneyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *JourneyEventQuery) GroupBy(field string, fields ...string) *JourneyEventGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &JourneyEventGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = journeyevent.Label
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
//	client.JourneyEvent.Query().
//		Select(journeyevent.FieldJourneyID).
//		Scan(ctx, &v)
func (_q *JourneyEventQuery) Select(fields ...string) *JourneyEventSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &JourneyEventSelect{JourneyEventQuery: _q}
	sbuild.label = journeyevent.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a JourneyEventSelect configured with the given aggregations.
func (_q *JourneyEventQuery) Aggregate(fns ...AggregateFunc) *JourneyEventSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *JourneyEventQuery) prepareQuery(ctx context.Context) error {
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
		if !journeyevent.ValidColumn(f) {
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

func (_q *JourneyEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*JourneyEvent, error) {
	var (
		nodes       = []*JourneyEvent{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withJourney != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*JourneyEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &JourneyEvent{config: _q.config}
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
			func(n *JourneyEvent, e *Journey) { n.Edges.Journey = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *JourneyEventQuery) loadJourney(ctx context.Context, query *JourneyQuery, nodes []*JourneyEvent, init func(*JourneyEvent), assign func(*JourneyEvent, *Journey)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*JourneyEvent)
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

func (_q *JourneyEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *JourneyEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(journeyevent.Table, journeyevent.Columns, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journeyevent.FieldID)
		for i := range fields {
			if fields[i] != journeyevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withJourney != nil {
			_spec.Node.AddColumnOnce(journeyevent.FieldJourneyID)
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

func (_q *JourneyEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(journeyevent.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = journeyevent.Columns
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

// JourneyEventGroupBy is the group-by builder for JourneyEvent entities.
type JourneyEventGroupBy struct {
	selector
	build *JourneyEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *JourneyEventGroupBy) Aggregate(fns ...AggregateFunc) *JourneyEventGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *JourneyEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*JourneyEventQuery, *JourneyEventGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *JourneyEventGroupBy) sqlScan(ctx context.Context, root *JourneyEventQuery, v any) error {
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

// JourneyEventSelect is the builder for selecting fields of JourneyEvent entities.
type JourneyEventSelect struct {
	*JourneyEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *JourneyEventSelect) Aggregate(fns ...AggregateFunc) *JourneyEventSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *JourneyEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*JourneyEventQuery, *JourneyEventSelect](ctx, _s.JourneyEventQuery, _s, _s.inters, v)
}

func (_s *JourneyEventSelect) sqlScan(ctx context.Context, root *JourneyEventQuery, v any) error {
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
