// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/axon-labs/axon/ent/graphsnapshot"
	"github.com/axon-labs/axon/ent/predicate"
)

// GraphSnapshotUpdate is the builder for updating GraphSnapshot entities.
type GraphSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *GraphSnapshotMutation
}

// Where appends a list predicates to the GraphSnapshotUpdate builder.
func (_u *GraphSnapshotUpdate) Where(ps ...predicate.GraphSnapshot) *GraphSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *GraphSnapshotUpdate) SetSessionKey(v string) *GraphSnapshotUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *GraphSnapshotUpdate) SetNillableSessionKey(v *string) *GraphSnapshotUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *GraphSnapshotUpdate) SetSequence(v int64) *GraphSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *GraphSnapshotUpdate) SetNillableSequence(v *int64) *GraphSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *GraphSnapshotUpdate) AddSequence(v int64) *GraphSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *GraphSnapshotUpdate) SetTimestamp(v time.Time) *GraphSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *GraphSnapshotUpdate) SetNillableTimestamp(v *time.Time) *GraphSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *GraphSnapshotUpdate) SetData(v map[string]interface{}) *GraphSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the GraphSnapshotMutation object of the builder.
func (_u *GraphSnapshotUpdate) Mutation() *GraphSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphSnapshotUpdate) check() error {
	if v, ok := _u.mutation.SessionKey(); ok {
		if err := graphsnapshot.SessionKeyValidator(v); err != nil {
			return &ValidationError{Name: "session_key", err: fmt.Errorf(`ent: validator failed for field "GraphSnapshot.session_key": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphsnapshot.Table, graphsnapshot.Columns, sqlgraph.NewFieldSpec(graphsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(graphsnapshot.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(graphsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(graphsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(graphsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(graphsnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphSnapshotUpdateOne is the builder for updating a single GraphSnapshot entity.
type GraphSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphSnapshotMutation
}

// SetSessionKey sets the "session_key" field.
func (_u *GraphSnapshotUpdateOne) SetSessionKey(v string) *GraphSnapshotUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *GraphSnapshotUpdateOne) SetNillableSessionKey(v *string) *GraphSnapshotUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *GraphSnapshotUpdateOne) SetSequence(v int64) *GraphSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *GraphSnapshotUpdateOne) SetNillableSequence(v *int64) *GraphSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *GraphSnapshotUpdateOne) AddSequence(v int64) *GraphSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *GraphSnapshotUpdateOne) SetTimestamp(v time.Time) *GraphSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *GraphSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *GraphSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *GraphSnapshotUpdateOne) SetData(v map[string]interface{}) *GraphSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the GraphSnapshotMutation object of the builder.
func (_u *GraphSnapshotUpdateOne) Mutation() *GraphSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphSnapshotUpdate builder.
func (_u *GraphSnapshotUpdateOne) Where(ps ...predicate.GraphSnapshot) *GraphSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphSnapshotUpdateOne) Select(field string, fields ...string) *GraphSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphSnapshot entity.
func (_u *GraphSnapshotUpdateOne) Save(ctx context.Context) (*GraphSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphSnapshotUpdateOne) SaveX(ctx context.Context) *GraphSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.SessionKey(); ok {
		if err := graphsnapshot.SessionKeyValidator(v); err != nil {
			return &ValidationError{Name: "session_key", err: fmt.Errorf(`ent: validator failed for field "GraphSnapshot.session_key": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *GraphSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphsnapshot.Table, graphsnapshot.Columns, sqlgraph.NewFieldSpec(graphsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphsnapshot.FieldID)
		for _, f := range fields {
			if !graphsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(graphsnapshot.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(graphsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(graphsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(graphsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(graphsnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &GraphSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
