// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meridianhealth/intake/ent/intakereport"
	"github.com/meridianhealth/intake/ent/predicate"
)

// IntakeReportUpdate is the builder for updating IntakeReport entities.
type IntakeReportUpdate struct {
	config
	hooks    []Hook
	mutation *IntakeReportMutation
}

// Where appends a list predicates to the IntakeReportUpdate builder.
func (_u *IntakeReportUpdate) Where(ps ...predicate.IntakeReport) *IntakeReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReport sets the "report" field.
func (_u *IntakeReportUpdate) SetReport(v map[string]interface{}) *IntakeReportUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// Mutation returns the IntakeReportMutation object of the builder.
func (_u *IntakeReportUpdate) Mutation() *IntakeReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntakeReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntakeReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeReportUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IntakeReport.session"`)
	}
	return nil
}

func (_u *IntakeReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intakereport.Table, intakereport.Columns, sqlgraph.NewFieldSpec(intakereport.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(intakereport.FieldReport, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intakereport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntakeReportUpdateOne is the builder for updating a single IntakeReport entity.
type IntakeReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntakeReportMutation
}

// SetReport sets the "report" field.
func (_u *IntakeReportUpdateOne) SetReport(v map[string]interface{}) *IntakeReportUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// Mutation returns the IntakeReportMutation object of the builder.
func (_u *IntakeReportUpdateOne) Mutation() *IntakeReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntakeReportUpdate builder.
func (_u *IntakeReportUpdateOne) Where(ps ...predicate.IntakeReport) *IntakeReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntakeReportUpdateOne) Select(field string, fields ...string) *IntakeReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntakeReport entity.
func (_u *IntakeReportUpdateOne) Save(ctx context.Context) (*IntakeReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeReportUpdateOne) SaveX(ctx context.Context) *IntakeReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntakeReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeReportUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IntakeReport.session"`)
	}
	return nil
}

func (_u *IntakeReportUpdateOne) sqlSave(ctx context.Context) (_node *IntakeReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intakereport.Table, intakereport.Columns, sqlgraph.NewFieldSpec(intakereport.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntakeReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intakereport.FieldID)
		for _, f := range fields {
			if !intakereport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intakereport.FieldID {
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
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(intakereport.FieldReport, field.TypeJSON, value)
	}
	_node = &IntakeReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intakereport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
