// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathpal/ent/predicate"
	"github.com/abhisek/mathpal/ent/solveevent"
)

// SolveEventUpdate is the builder for updating SolveEvent entities.
type SolveEventUpdate struct {
	config
	hooks    []Hook
	mutation *SolveEventMutation
}

// Where appends a list predicates to the SolveEventUpdate builder.
func (_u *SolveEventUpdate) Where(ps ...predicate.SolveEvent) *SolveEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProblem sets the "problem" field.
func (_u *SolveEventUpdate) SetProblem(v string) *SolveEventUpdate {
	_u.mutation.SetProblem(v)
	return _u
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableProblem(v *string) *SolveEventUpdate {
	if v != nil {
		_u.SetProblem(*v)
	}
	return _u
}

// SetHasImage sets the "has_image" field.
func (_u *SolveEventUpdate) SetHasImage(v bool) *SolveEventUpdate {
	_u.mutation.SetHasImage(v)
	return _u
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableHasImage(v *bool) *SolveEventUpdate {
	if v != nil {
		_u.SetHasImage(*v)
	}
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *SolveEventUpdate) SetFinalAnswer(v string) *SolveEventUpdate {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableFinalAnswer(v *string) *SolveEventUpdate {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *SolveEventUpdate) SetStepCount(v int) *SolveEventUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableStepCount(v *int) *SolveEventUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *SolveEventUpdate) AddStepCount(v int) *SolveEventUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *SolveEventUpdate) SetModel(v string) *SolveEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableModel(v *string) *SolveEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the SolveEventMutation object of the builder.
func (_u *SolveEventUpdate) Mutation() *SolveEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolveEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolveEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolveEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolveEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SolveEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(solveevent.Table, solveevent.Columns, sqlgraph.NewFieldSpec(solveevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Problem(); ok {
		_spec.SetField(solveevent.FieldProblem, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasImage(); ok {
		_spec.SetField(solveevent.FieldHasImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(solveevent.FieldFinalAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(solveevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(solveevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(solveevent.FieldModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolveEventUpdateOne is the builder for updating a single SolveEvent entity.
type SolveEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolveEventMutation
}

// SetProblem sets the "problem" field.
func (_u *SolveEventUpdateOne) SetProblem(v string) *SolveEventUpdateOne {
	_u.mutation.SetProblem(v)
	return _u
}

// SetNillableProblem sets the "problem" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableProblem(v *string) *SolveEventUpdateOne {
	if v != nil {
		_u.SetProblem(*v)
	}
	return _u
}

// SetHasImage sets the "has_image" field.
func (_u *SolveEventUpdateOne) SetHasImage(v bool) *SolveEventUpdateOne {
	_u.mutation.SetHasImage(v)
	return _u
}

// SetNillableHasImage sets the "has_image" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableHasImage(v *bool) *SolveEventUpdateOne {
	if v != nil {
		_u.SetHasImage(*v)
	}
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *SolveEventUpdateOne) SetFinalAnswer(v string) *SolveEventUpdateOne {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableFinalAnswer(v *string) *SolveEventUpdateOne {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *SolveEventUpdateOne) SetStepCount(v int) *SolveEventUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableStepCount(v *int) *SolveEventUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *SolveEventUpdateOne) AddStepCount(v int) *SolveEventUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *SolveEventUpdateOne) SetModel(v string) *SolveEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableModel(v *string) *SolveEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the SolveEventMutation object of the builder.
func (_u *SolveEventUpdateOne) Mutation() *SolveEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SolveEventUpdate builder.
func (_u *SolveEventUpdateOne) Where(ps ...predicate.SolveEvent) *SolveEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolveEventUpdateOne) Select(field string, fields ...string) *SolveEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SolveEvent entity.
func (_u *SolveEventUpdateOne) Save(ctx context.Context) (*SolveEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolveEventUpdateOne) SaveX(ctx context.Context) *SolveEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolveEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolveEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SolveEventUpdateOne) sqlSave(ctx context.Context) (_node *SolveEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(solveevent.Table, solveevent.Columns, sqlgraph.NewFieldSpec(solveevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SolveEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solveevent.FieldID)
		for _, f := range fields {
			if !solveevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solveevent.FieldID {
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
	if value, ok := _u.mutation.Problem(); ok {
		_spec.SetField(solveevent.FieldProblem, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasImage(); ok {
		_spec.SetField(solveevent.FieldHasImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(solveevent.FieldFinalAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(solveevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(solveevent.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(solveevent.FieldModel, field.TypeString, value)
	}
	_node = &SolveEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
