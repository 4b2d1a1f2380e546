// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/axon-labs/axon/ent/answerevent"
	"github.com/axon-labs/axon/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *AnswerEventUpdate) SetSessionKey(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionKey(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *AnswerEventUpdate) SetNodeID(v string) *AnswerEventUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableNodeID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAnswerIndex sets the "answer_index" field.
func (_u *AnswerEventUpdate) SetAnswerIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetAnswerIndex()
	_u.mutation.SetAnswerIndex(v)
	return _u
}

// SetNillableAnswerIndex sets the "answer_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAnswerIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetAnswerIndex(*v)
	}
	return _u
}

// AddAnswerIndex adds value to the "answer_index" field.
func (_u *AnswerEventUpdate) AddAnswerIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddAnswerIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *AnswerEventUpdate) SetCompleted(v bool) *AnswerEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCompleted(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUnlockedCount sets the "unlocked_count" field.
func (_u *AnswerEventUpdate) SetUnlockedCount(v int) *AnswerEventUpdate {
	_u.mutation.ResetUnlockedCount()
	_u.mutation.SetUnlockedCount(v)
	return _u
}

// SetNillableUnlockedCount sets the "unlocked_count" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUnlockedCount(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetUnlockedCount(*v)
	}
	return _u
}

// AddUnlockedCount adds value to the "unlocked_count" field.
func (_u *AnswerEventUpdate) AddUnlockedCount(v int) *AnswerEventUpdate {
	_u.mutation.AddUnlockedCount(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionKey(); ok {
		if err := answerevent.SessionKeyValidator(v); err != nil {
			return &ValidationError{Name: "session_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := answerevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(answerevent.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(answerevent.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerIndex(); ok {
		_spec.SetField(answerevent.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerIndex(); ok {
		_spec.AddField(answerevent.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(answerevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnlockedCount(); ok {
		_spec.SetField(answerevent.FieldUnlockedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnlockedCount(); ok {
		_spec.AddField(answerevent.FieldUnlockedCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionKey sets the "session_key" field.
func (_u *AnswerEventUpdateOne) SetSessionKey(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionKey(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *AnswerEventUpdateOne) SetNodeID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableNodeID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAnswerIndex sets the "answer_index" field.
func (_u *AnswerEventUpdateOne) SetAnswerIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetAnswerIndex()
	_u.mutation.SetAnswerIndex(v)
	return _u
}

// SetNillableAnswerIndex sets the "answer_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAnswerIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAnswerIndex(*v)
	}
	return _u
}

// AddAnswerIndex adds value to the "answer_index" field.
func (_u *AnswerEventUpdateOne) AddAnswerIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddAnswerIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *AnswerEventUpdateOne) SetCompleted(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCompleted(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUnlockedCount sets the "unlocked_count" field.
func (_u *AnswerEventUpdateOne) SetUnlockedCount(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetUnlockedCount()
	_u.mutation.SetUnlockedCount(v)
	return _u
}

// SetNillableUnlockedCount sets the "unlocked_count" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUnlockedCount(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUnlockedCount(*v)
	}
	return _u
}

// AddUnlockedCount adds value to the "unlocked_count" field.
func (_u *AnswerEventUpdateOne) AddUnlockedCount(v int) *AnswerEventUpdateOne {
	_u.mutation.AddUnlockedCount(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionKey(); ok {
		if err := answerevent.SessionKeyValidator(v); err != nil {
			return &ValidationError{Name: "session_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := answerevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(answerevent.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerIndex(); ok {
		_spec.SetField(answerevent.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerIndex(); ok {
		_spec.AddField(answerevent.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(answerevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnlockedCount(); ok {
		_spec.SetField(answerevent.FieldUnlockedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnlockedCount(); ok {
		_spec.AddField(answerevent.FieldUnlockedCount, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
