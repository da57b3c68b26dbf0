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
	"github.com/abhisek/riskdrill/ent/corpusbuildevent"
	"github.com/abhisek/riskdrill/ent/predicate"
)

// CorpusBuildEventQuery is the builder for querying CorpusBuildEvent entities.
type CorpusBuildEventQuery struct {
	config
	ctx        *QueryContext
	order      []corpusbuildevent.OrderOption
	inters     []Interceptor
	predicates []predicate.CorpusBuildEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CorpusBuildEventQuery builder.
func (_q *CorpusBuildEventQuery) Where(ps ...predicate.CorpusBuildEvent) *CorpusBuildEventQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CorpusBuildEventQuery) Limit(limit int) *CorpusBuildEventQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CorpusBuildEventQuery) Offset(offset int) *CorpusBuildEventQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CorpusBuildEventQuery) Unique(unique bool) *CorpusBuildEventQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CorpusBuildEventQuery) Order(o ...corpusbuildevent.OrderOption) *CorpusBuildEventQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first CorpusBuildEvent entity from the query.
// Returns a *NotFoundError when no CorpusBuildEvent was found.
func (_q *CorpusBuildEventQuery) First(ctx context.Context) (*CorpusBuildEvent, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{corpusbuildevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CorpusBuildEventQuery) FirstX(ctx context.Context) *CorpusBuildEvent {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CorpusBuildEvent ID from the query.
// Returns a *NotFoundError when no CorpusBuildEvent ID was found.
func (_q *CorpusBuildEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{corpusbuildevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CorpusBuildEventQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CorpusBuildEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CorpusBuildEvent entity is found.
// Returns a *NotFoundError when no CorpusBuildEvent entities are found.
func (_q *CorpusBuildEventQuery) Only(ctx context.Context) (*CorpusBuildEvent, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{corpusbuildevent.Label}
	default:
		return nil, &NotSingularError{corpusbuildevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CorpusBuildEventQuery) OnlyX(ctx context.Context) *CorpusBuildEvent {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CorpusBuildEvent ID in the query.
// Returns a *NotSingularError when more than one CorpusBuildEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CorpusBuildEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{corpusbuildevent.Label}
	default:
		err = &NotSingularError{corpusbuildevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CorpusBuildEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CorpusBuildEvents.
func (_q *CorpusBuildEventQuery) All(ctx context.Context) ([]*CorpusBuildEvent, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CorpusBuildEvent, *CorpusBuildEventQuery]()
	return withInterceptors[[]*CorpusBuildEvent](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CorpusBuildEventQuery) AllX(ctx context.Context) []*CorpusBuildEvent {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CorpusBuildEvent IDs.
func (_q *CorpusBuildEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(corpusbuildevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CorpusBuildEventQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CorpusBuildEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CorpusBuildEventQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CorpusBuildEventQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CorpusBuildEventQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CorpusBuildEventQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CorpusBuildEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CorpusBuildEventQuery) Clone() *CorpusBuildEventQuery {
	if _q == nil {
		return nil
	}
	return &CorpusBuildEventQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]corpusbuildevent.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CorpusBuildEvent{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CorpusBuildEvent.Query().
//		GroupBy(corpusbuildevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CorpusBuildEventQuery) GroupBy(field string, fields ...string) *CorpusBuildEventGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CorpusBuildEventGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = corpusbuildevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.CorpusBuildEvent.Query().
//		Select(corpusbuildevent.FieldSequence).
//		Scan(ctx, &v)
func (_q *CorpusBuildEventQuery) Select(fields ...string) *CorpusBuildEventSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CorpusBuildEventSelect{CorpusBuildEventQuery: _q}
	sbuild.label = corpusbuildevent.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CorpusBuildEventSelect configured with the given aggregations.
func (_q *CorpusBuildEventQuery) Aggregate(fns ...AggregateFunc) *CorpusBuildEventSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CorpusBuildEventQuery) prepareQuery(ctx context.Context) error {
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
		if !corpusbuildevent.ValidColumn(f) {
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

func (_q *CorpusBuildEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CorpusBuildEvent, error) {
	var (
		nodes = []*CorpusBuildEvent{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CorpusBuildEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CorpusBuildEvent{config: _q.config}
		nodes = append(nodes, node)
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
	return nodes, nil
}

func (_q *CorpusBuildEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CorpusBuildEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(corpusbuildevent.Table, corpusbuildevent.Columns, sqlgraph.NewFieldSpec(corpusbuildevent.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, corpusbuildevent.FieldID)
		for i := range fields {
			if fields[i] != corpusbuildevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *CorpusBuildEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(corpusbuildevent.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = corpusbuildevent.Columns
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

// CorpusBuildEventGroupBy is the group-by builder for CorpusBuildEvent entities.
type CorpusBuildEventGroupBy struct {
	selector
	build *CorpusBuildEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CorpusBuildEventGroupBy) Aggregate(fns ...AggregateFunc) *CorpusBuildEventGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CorpusBuildEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CorpusBuildEventQuery, *CorpusBuildEventGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CorpusBuildEventGroupBy) sqlScan(ctx context.Context, root *CorpusBuildEventQuery, v any) error {
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

// CorpusBuildEventSelect is the builder for selecting fields of CorpusBuildEvent entities.
type CorpusBuildEventSelect struct {
	*CorpusBuildEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CorpusBuildEventSelect) Aggregate(fns ...AggregateFunc) *CorpusBuildEventSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CorpusBuildEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CorpusBuildEventQuery, *CorpusBuildEventSelect](ctx, _s.CorpusBuildEventQuery, _s, _s.inters, v)
}

func (_s *CorpusBuildEventSelect) sqlScan(ctx context.Context, root *CorpusBuildEventQuery, v any) error {
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
