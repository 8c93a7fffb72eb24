// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meridianhealth/intake/ent/auditlog"
	"github.com/meridianhealth/intake/ent/intakereport"
	"github.com/meridianhealth/intake/ent/intakesession"
	"github.com/meridianhealth/intake/ent/notification"
)

// IntakeSessionCreate is the builder for creating a IntakeSession entity.
type IntakeSessionCreate struct {
	config
	mutation *IntakeSessionMutation
	hooks    []Hook
}

// SetPatientID sets the "patient_id" field.
func (_c *IntakeSessionCreate) SetPatientID(v string) *IntakeSessionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillablePatientID(v *string) *IntakeSessionCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *IntakeSessionCreate) SetUserName(v string) *IntakeSessionCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableUserName(v *string) *IntakeSessionCreate {
	if v != nil {
		_c.SetUserName(*v)
	}
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *IntakeSessionCreate) SetCurrentPhase(v string) *IntakeSessionCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableCurrentPhase(v *string) *IntakeSessionCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IntakeSessionCreate) SetStatus(v intakesession.Status) *IntakeSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableStatus(v *intakesession.Status) *IntakeSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConversationHistory sets the "conversation_history" field.
func (_c *IntakeSessionCreate) SetConversationHistory(v []map[string]interface{}) *IntakeSessionCreate {
	_c.mutation.SetConversationHistory(v)
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *IntakeSessionCreate) SetExtractedData(v map[string]interface{}) *IntakeSessionCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetSymptomsDetected sets the "symptoms_detected" field.
func (_c *IntakeSessionCreate) SetSymptomsDetected(v map[string]bool) *IntakeSessionCreate {
	_c.mutation.SetSymptomsDetected(v)
	return _c
}

// SetCompletedPhases sets the "completed_phases" field.
func (_c *IntakeSessionCreate) SetCompletedPhases(v []string) *IntakeSessionCreate {
	_c.mutation.SetCompletedPhases(v)
	return _c
}

// SetCompletedScreeners sets the "completed_screeners" field.
func (_c *IntakeSessionCreate) SetCompletedScreeners(v []string) *IntakeSessionCreate {
	_c.mutation.SetCompletedScreeners(v)
	return _c
}

// SetScreenerScores sets the "screener_scores" field.
func (_c *IntakeSessionCreate) SetScreenerScores(v map[string]interface{}) *IntakeSessionCreate {
	_c.mutation.SetScreenerScores(v)
	return _c
}

// SetCurrentScreener sets the "current_screener" field.
func (_c *IntakeSessionCreate) SetCurrentScreener(v string) *IntakeSessionCreate {
	_c.mutation.SetCurrentScreener(v)
	return _c
}

// SetNillableCurrentScreener sets the "current_screener" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableCurrentScreener(v *string) *IntakeSessionCreate {
	if v != nil {
		_c.SetCurrentScreener(*v)
	}
	return _c
}

// SetScreenerProgress sets the "screener_progress" field.
func (_c *IntakeSessionCreate) SetScreenerProgress(v []int) *IntakeSessionCreate {
	_c.mutation.SetScreenerProgress(v)
	return _c
}

// SetRiskFlags sets the "risk_flags" field.
func (_c *IntakeSessionCreate) SetRiskFlags(v []map[string]interface{}) *IntakeSessionCreate {
	_c.mutation.SetRiskFlags(v)
	return _c
}

// SetTurnsSinceExtract sets the "turns_since_extract" field.
func (_c *IntakeSessionCreate) SetTurnsSinceExtract(v int) *IntakeSessionCreate {
	_c.mutation.SetTurnsSinceExtract(v)
	return _c
}

// SetNillableTurnsSinceExtract sets the "turns_since_extract" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableTurnsSinceExtract(v *int) *IntakeSessionCreate {
	if v != nil {
		_c.SetTurnsSinceExtract(*v)
	}
	return _c
}

// SetPausedAt sets the "paused_at" field.
func (_c *IntakeSessionCreate) SetPausedAt(v time.Time) *IntakeSessionCreate {
	_c.mutation.SetPausedAt(v)
	return _c
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillablePausedAt(v *time.Time) *IntakeSessionCreate {
	if v != nil {
		_c.SetPausedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *IntakeSessionCreate) SetExpiresAt(v time.Time) *IntakeSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableExpiresAt(v *time.Time) *IntakeSessionCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetResumeToken sets the "resume_token" field.
func (_c *IntakeSessionCreate) SetResumeToken(v string) *IntakeSessionCreate {
	_c.mutation.SetResumeToken(v)
	return _c
}

// SetNillableResumeToken sets the "resume_token" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableResumeToken(v *string) *IntakeSessionCreate {
	if v != nil {
		_c.SetResumeToken(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *IntakeSessionCreate) SetVersion(v int64) *IntakeSessionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableVersion(v *int64) *IntakeSessionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntakeSessionCreate) SetCreatedAt(v time.Time) *IntakeSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableCreatedAt(v *time.Time) *IntakeSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntakeSessionCreate) SetUpdatedAt(v time.Time) *IntakeSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableUpdatedAt(v *time.Time) *IntakeSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *IntakeSessionCreate) SetCompletedAt(v time.Time) *IntakeSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableCompletedAt(v *time.Time) *IntakeSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntakeSessionCreate) SetID(v string) *IntakeSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReportID sets the "report" edge to the IntakeReport entity by ID.
func (_c *IntakeSessionCreate) SetReportID(id string) *IntakeSessionCreate {
	_c.mutation.SetReportID(id)
	return _c
}

// SetNillableReportID sets the "report" edge to the IntakeReport entity by ID if the given value is not nil.
func (_c *IntakeSessionCreate) SetNillableReportID(id *string) *IntakeSessionCreate {
	if id != nil {
		_c = _c.SetReportID(*id)
	}
	return _c
}

// SetReport sets the "report" edge to the IntakeReport entity.
func (_c *IntakeSessionCreate) SetReport(v *IntakeReport) *IntakeSessionCreate {
	return _c.SetReportID(v.ID)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_c *IntakeSessionCreate) AddNotificationIDs(ids ...string) *IntakeSessionCreate {
	_c.mutation.AddNotificationIDs(ids...)
	return _c
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_c *IntakeSessionCreate) AddNotifications(v ...*Notification) *IntakeSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNotificationIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_c *IntakeSessionCreate) AddAuditLogIDs(ids ...string) *IntakeSessionCreate {
	_c.mutation.AddAuditLogIDs(ids...)
	return _c
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_c *IntakeSessionCreate) AddAuditLogs(v ...*AuditLog) *IntakeSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditLogIDs(ids...)
}

// Mutation returns the IntakeSessionMutation object of the builder.
func (_c *IntakeSessionCreate) Mutation() *IntakeSessionMutation {
	return _c.mutation
}

// Save creates the IntakeSession in the database.
func (_c *IntakeSessionCreate) Save(ctx context.Context) (*IntakeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntakeSessionCreate) SaveX(ctx context.Context) *IntakeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntakeSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentPhase(); !ok {
		v := intakesession.DefaultCurrentPhase
		_c.mutation.SetCurrentPhase(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := intakesession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TurnsSinceExtract(); !ok {
		v := intakesession.DefaultTurnsSinceExtract
		_c.mutation.SetTurnsSinceExtract(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := intakesession.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intakesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := intakesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntakeSessionCreate) check() error {
	if _, ok := _c.mutation.CurrentPhase(); !ok {
		return &ValidationError{Name: "current_phase", err: errors.New(`ent: missing required field "IntakeSession.current_phase"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IntakeSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := intakesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntakeSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TurnsSinceExtract(); !ok {
		return &ValidationError{Name: "turns_since_extract", err: errors.New(`ent: missing required field "IntakeSession.turns_since_extract"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "IntakeSession.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IntakeSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IntakeSession.updated_at"`)}
	}
	return nil
}

func (_c *IntakeSessionCreate) sqlSave(ctx context.Context) (*IntakeSession, error) {
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
			return nil, fmt.Errorf("unexpected IntakeSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntakeSessionCreate) createSpec() (*IntakeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &IntakeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intakesession.Table, sqlgraph.NewFieldSpec(intakesession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(intakesession.FieldPatientID, field.TypeString, value)
		_node.PatientID = &value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(intakesession.FieldUserName, field.TypeString, value)
		_node.UserName = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(intakesession.FieldCurrentPhase, field.TypeString, value)
		_node.CurrentPhase = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(intakesession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConversationHistory(); ok {
		_spec.SetField(intakesession.FieldConversationHistory, field.TypeJSON, value)
		_node.ConversationHistory = value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(intakesession.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.SymptomsDetected(); ok {
		_spec.SetField(intakesession.FieldSymptomsDetected, field.TypeJSON, value)
		_node.SymptomsDetected = value
	}
	if value, ok := _c.mutation.CompletedPhases(); ok {
		_spec.SetField(intakesession.FieldCompletedPhases, field.TypeJSON, value)
		_node.CompletedPhases = value
	}
	if value, ok := _c.mutation.CompletedScreeners(); ok {
		_spec.SetField(intakesession.FieldCompletedScreeners, field.TypeJSON, value)
		_node.CompletedScreeners = value
	}
	if value, ok := _c.mutation.ScreenerScores(); ok {
		_spec.SetField(intakesession.FieldScreenerScores, field.TypeJSON, value)
		_node.ScreenerScores = value
	}
	if value, ok := _c.mutation.CurrentScreener(); ok {
		_spec.SetField(intakesession.FieldCurrentScreener, field.TypeString, value)
		_node.CurrentScreener = value
	}
	if value, ok := _c.mutation.ScreenerProgress(); ok {
		_spec.SetField(intakesession.FieldScreenerProgress, field.TypeJSON, value)
		_node.ScreenerProgress = value
	}
	if value, ok := _c.mutation.RiskFlags(); ok {
		_spec.SetField(intakesession.FieldRiskFlags, field.TypeJSON, value)
		_node.RiskFlags = value
	}
	if value, ok := _c.mutation.TurnsSinceExtract(); ok {
		_spec.SetField(intakesession.FieldTurnsSinceExtract, field.TypeInt, value)
		_node.TurnsSinceExtract = value
	}
	if value, ok := _c.mutation.PausedAt(); ok {
		_spec.SetField(intakesession.FieldPausedAt, field.TypeTime, value)
		_node.PausedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(intakesession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.ResumeToken(); ok {
		_spec.SetField(intakesession.FieldResumeToken, field.TypeString, value)
		_node.ResumeToken = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(intakesession.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intakesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(intakesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(intakesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   intakesession.ReportTable,
			Columns: []string{intakesession.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intakereport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NotificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intakesession.NotificationsTable,
			Columns: []string{intakesession.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intakesession.AuditLogsTable,
			Columns: []string{intakesession.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IntakeSessionCreateBulk is the builder for creating many IntakeSession entities in bulk.
type IntakeSessionCreateBulk struct {
	config
	err      error
	builders []*IntakeSessionCreate
}

// Save creates the IntakeSession entities in the database.
func (_c *IntakeSessionCreateBulk) Save(ctx context.Context) ([]*IntakeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntakeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntakeSessionMutation)
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
func (_c *IntakeSessionCreateBulk) SaveX(ctx context.Context) []*IntakeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntakeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntakeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
