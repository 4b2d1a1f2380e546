// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/axon-labs/axon/ent/predicate"
	"github.com/axon-labs/axon/ent/tutorevent"
)

// TutorEventUpdate is the builder for updating TutorEvent entities.
type TutorEventUpdate struct {
	config
	hooks    []Hook
	mutation *TutorEventMutation
}

// Where appends a list predicates to the TutorEventUpdate builder.
func (_u *TutorEventUpdate) Where(ps ...predicate.TutorEvent) *TutorEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *TutorEventUpdate) SetKind(v string) *TutorEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillableKind(v *string) *TutorEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TutorEventUpdate) SetTopic(v string) *TutorEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillableTopic(v *string) *TutorEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *TutorEventUpdate) SetQuestionText(v string) *TutorEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillableQuestionText(v *string) *TutorEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *TutorEventUpdate) SetCacheHit(v bool) *TutorEventUpdate {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillableCacheHit(v *bool) *TutorEventUpdate {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// Mutation returns the TutorEventMutation object of the builder.
func (_u *TutorEventUpdate) Mutation() *TutorEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := tutorevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := tutorevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := tutorevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorevent.Table, tutorevent.Columns, sqlgraph.NewFieldSpec(tutorevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(tutorevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(tutorevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(tutorevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(tutorevent.FieldCacheHit, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorEventUpdateOne is the builder for updating a single TutorEvent entity.
type TutorEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorEventMutation
}

// SetKind sets the "kind" field.
func (_u *TutorEventUpdateOne) SetKind(v string) *TutorEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillableKind(v *string) *TutorEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TutorEventUpdateOne) SetTopic(v string) *TutorEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillableTopic(v *string) *TutorEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *TutorEventUpdateOne) SetQuestionText(v string) *TutorEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillableQuestionText(v *string) *TutorEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *TutorEventUpdateOne) SetCacheHit(v bool) *TutorEventUpdateOne {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillableCacheHit(v *bool) *TutorEventUpdateOne {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// Mutation returns the TutorEventMutation object of the builder.
func (_u *TutorEventUpdateOne) Mutation() *TutorEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorEventUpdate builder.
func (_u *TutorEventUpdateOne) Where(ps ...predicate.TutorEvent) *TutorEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorEventUpdateOne) Select(field string, fields ...string) *TutorEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorEvent entity.
func (_u *TutorEventUpdateOne) Save(ctx context.Context) (*TutorEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorEventUpdateOne) SaveX(ctx context.Context) *TutorEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := tutorevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := tutorevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := tutorevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorEventUpdateOne) sqlSave(ctx context.Context) (_node *TutorEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorevent.Table, tutorevent.Columns, sqlgraph.NewFieldSpec(tutorevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorevent.FieldID)
		for _, f := range fields {
			if !tutorevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutorevent.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(tutorevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(tutorevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(tutorevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(tutorevent.FieldCacheHit, field.TypeBool, value)
	}
	_node = &TutorEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
