// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meridianhealth/intake/ent/intakereport"
	"github.com/meridianhealth/intake/ent/intakesession"
)

// IntakeReportCreate is the builder for creating a IntakeReport entity.
type IntakeReportCreate struct {
	config
	mutation *IntakeReportMutation
	hooks    []Hook
}

// SetSessionToken sets the "session_token" field.
func (_c *IntakeReportCreate) SetSessionToken(v string) *IntakeReportCreate {
	_c.mutation.SetSessionToken(v)
	return _c
}

// SetReport sets the "report" field.
func (_c *IntakeReportCreate) SetReport(v map[string]interface{}) *IntakeReportCreate {
	_c.mutation.SetReport(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *IntakeReportCreate) SetGeneratedAt(v time.Time) *IntakeReportCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *IntakeReportCreate) SetNillableGeneratedAt(v *time.Time) *IntakeReportCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntakeReportCreate) SetID(v string) *IntakeReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSessionID sets the "session" edge to the IntakeSession entity by ID.
func (_c *IntakeReportCreate) SetSessionID(id string) *IntakeReportCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetSession sets the "session" edge to the IntakeSession entity.
func (_c *IntakeReportCreate) SetSession(v *IntakeSession) *IntakeReportCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the IntakeReportMutation object of the builder.
func (_c *IntakeReportCreate) Mutation() *IntakeReportMutation {
	return _c.mutation
}

// Save creates the IntakeReport in the database.
func (_c *IntakeReportCreate) Save(ctx context.Context) (*IntakeReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntakeReportCreate) SaveX(ctx context.Context) *IntakeReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntakeReportCreate) defaults() {
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := intakereport.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntakeReportCreate) check() error {
	if _, ok := _c.mutation.SessionToken(); !ok {
		return &ValidationError{Name: "session_token", err: errors.New(`ent: missing required field "IntakeReport.session_token"`)}
	}
	if _, ok := _c.mutation.Report(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required field "IntakeReport.report"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "IntakeReport.generated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "IntakeReport.session"`)}
	}
	return nil
}

func (_c *IntakeReportCreate) sqlSave(ctx context.Context) (*IntakeReport, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected IntakeReport.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntakeReportCreate) createSpec() (*IntakeReport, *sqlgraph.CreateSpec) {
	var (
		_node = &IntakeReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intakereport.Table, sqlgraph.NewFieldSpec(intakereport.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(intakereport.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(intakereport.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   intakereport.SessionTable,
			Columns: []string{intakereport.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intakesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionToken = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IntakeReportCreateBulk is the builder for creating many IntakeReport entities in bulk.
type IntakeReportCreateBulk struct {
	config
	err      error
	builders []*IntakeReportCreate
}

// Save creates the IntakeReport entities in the database.
func (_c *IntakeReportCreateBulk) Save(ctx context.Context) ([]*IntakeReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntakeReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntakeReportMutation)
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
func (_c *IntakeReportCreateBulk) SaveX(ctx context.Context) []*IntakeReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
