// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/axon-labs/axon/ent/tutorevent"
)

// TutorEventCreate is the builder for creating a TutorEvent entity.
type TutorEventCreate struct {
	config
	mutation *TutorEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TutorEventCreate) SetSequence(v int64) *TutorEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TutorEventCreate) SetTimestamp(v time.Time) *TutorEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TutorEventCreate) SetNillableTimestamp(v *time.Time) *TutorEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *TutorEventCreate) SetKind(v string) *TutorEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TutorEventCreate) SetTopic(v string) *TutorEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *TutorEventCreate) SetQuestionText(v string) *TutorEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *TutorEventCreate) SetCacheHit(v bool) *TutorEventCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// Mutation returns the TutorEventMutation object of the builder.
func (_c *TutorEventCreate) Mutation() *TutorEventMutation {
	return _c.mutation
}

// Save creates the TutorEvent in the database.
func (_c *TutorEventCreate) Save(ctx context.Context) (*TutorEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorEventCreate) SaveX(ctx context.Context) *TutorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := tutorevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TutorEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TutorEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TutorEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := tutorevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TutorEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := tutorevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "TutorEvent.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := tutorevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		return &ValidationError{Name: "cache_hit", err: errors.New(`ent: missing required field "TutorEvent.cache_hit"`)}
	}
	return nil
}

func (_c *TutorEventCreate) sqlSave(ctx context.Context) (*TutorEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TutorEventCreate) createSpec() (*TutorEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorevent.Table, sqlgraph.NewFieldSpec(tutorevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(tutorevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(tutorevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(tutorevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(tutorevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(tutorevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(tutorevent.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = value
	}
	return _node, _spec
}

// TutorEventCreateBulk is the builder for creating many TutorEvent entities in bulk.
type TutorEventCreateBulk struct {
	config
	err      error
	builders []*TutorEventCreate
}

// Save creates the TutorEvent entities in the database.
func (_c *TutorEventCreateBulk) Save(ctx context.Context) ([]*TutorEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TutorEventCreateBulk) SaveX(ctx context.Context) []*TutorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
