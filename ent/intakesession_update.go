// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/meridianhealth/intake/ent/auditlog"
	"github.com/meridianhealth/intake/ent/intakereport"
	"github.com/meridianhealth/intake/ent/intakesession"
	"github.com/meridianhealth/intake/ent/notification"
	"github.com/meridianhealth/intake/ent/predicate"
)

// IntakeSessionUpdate is the builder for updating IntakeSession entities.
type IntakeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *IntakeSessionMutation
}

// Where appends a list predicates to the IntakeSessionUpdate builder.
func (_u *IntakeSessionUpdate) Where(ps ...predicate.IntakeSession) *IntakeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *IntakeSessionUpdate) SetPatientID(v string) *IntakeSessionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillablePatientID(v *string) *IntakeSessionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *IntakeSessionUpdate) ClearPatientID() *IntakeSessionUpdate {
	_u.mutation.ClearPatientID()
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *IntakeSessionUpdate) SetUserName(v string) *IntakeSessionUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableUserName(v *string) *IntakeSessionUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// ClearUserName clears the value of the "user_name" field.
func (_u *IntakeSessionUpdate) ClearUserName() *IntakeSessionUpdate {
	_u.mutation.ClearUserName()
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *IntakeSessionUpdate) SetCurrentPhase(v string) *IntakeSessionUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableCurrentPhase(v *string) *IntakeSessionUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntakeSessionUpdate) SetStatus(v intakesession.Status) *IntakeSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableStatus(v *intakesession.Status) *IntakeSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConversationHistory sets the "conversation_history" field.
func (_u *IntakeSessionUpdate) SetConversationHistory(v []map[string]interface{}) *IntakeSessionUpdate {
	_u.mutation.SetConversationHistory(v)
	return _u
}

// AppendConversationHistory appends value to the "conversation_history" field.
func (_u *IntakeSessionUpdate) AppendConversationHistory(v []map[string]interface{}) *IntakeSessionUpdate {
	_u.mutation.AppendConversationHistory(v)
	return _u
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (_u *IntakeSessionUpdate) ClearConversationHistory() *IntakeSessionUpdate {
	_u.mutation.ClearConversationHistory()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *IntakeSessionUpdate) SetExtractedData(v map[string]interface{}) *IntakeSessionUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *IntakeSessionUpdate) ClearExtractedData() *IntakeSessionUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetSymptomsDetected sets the "symptoms_detected" field.
func (_u *IntakeSessionUpdate) SetSymptomsDetected(v map[string]bool) *IntakeSessionUpdate {
	_u.mutation.SetSymptomsDetected(v)
	return _u
}

// ClearSymptomsDetected clears the value of the "symptoms_detected" field.
func (_u *IntakeSessionUpdate) ClearSymptomsDetected() *IntakeSessionUpdate {
	_u.mutation.ClearSymptomsDetected()
	return _u
}

// SetCompletedPhases sets the "completed_phases" field.
func (_u *IntakeSessionUpdate) SetCompletedPhases(v []string) *IntakeSessionUpdate {
	_u.mutation.SetCompletedPhases(v)
	return _u
}

// AppendCompletedPhases appends value to the "completed_phases" field.
func (_u *IntakeSessionUpdate) AppendCompletedPhases(v []string) *IntakeSessionUpdate {
	_u.mutation.AppendCompletedPhases(v)
	return _u
}

// ClearCompletedPhases clears the value of the "completed_phases" field.
func (_u *IntakeSessionUpdate) ClearCompletedPhases() *IntakeSessionUpdate {
	_u.mutation.ClearCompletedPhases()
	return _u
}

// SetCompletedScreeners sets the "completed_screeners" field.
func (_u *IntakeSessionUpdate) SetCompletedScreeners(v []string) *IntakeSessionUpdate {
	_u.mutation.SetCompletedScreeners(v)
	return _u
}

// AppendCompletedScreeners appends value to the "completed_screeners" field.
func (_u *IntakeSessionUpdate) AppendCompletedScreeners(v []string) *IntakeSessionUpdate {
	_u.mutation.AppendCompletedScreeners(v)
	return _u
}

// ClearCompletedScreeners clears the value of the "completed_screeners" field.
func (_u *IntakeSessionUpdate) ClearCompletedScreeners() *IntakeSessionUpdate {
	_u.mutation.ClearCompletedScreeners()
	return _u
}

// SetScreenerScores sets the "screener_scores" field.
func (_u *IntakeSessionUpdate) SetScreenerScores(v map[string]interface{}) *IntakeSessionUpdate {
	_u.mutation.SetScreenerScores(v)
	return _u
}

// ClearScreenerScores clears the value of the "screener_scores" field.
func (_u *IntakeSessionUpdate) ClearScreenerScores() *IntakeSessionUpdate {
	_u.mutation.ClearScreenerScores()
	return _u
}

// SetCurrentScreener sets the "current_screener" field.
func (_u *IntakeSessionUpdate) SetCurrentScreener(v string) *IntakeSessionUpdate {
	_u.mutation.SetCurrentScreener(v)
	return _u
}

// SetNillableCurrentScreener sets the "current_screener" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableCurrentScreener(v *string) *IntakeSessionUpdate {
	if v != nil {
		_u.SetCurrentScreener(*v)
	}
	return _u
}

// ClearCurrentScreener clears the value of the "current_screener" field.
func (_u *IntakeSessionUpdate) ClearCurrentScreener() *IntakeSessionUpdate {
	_u.mutation.ClearCurrentScreener()
	return _u
}

// SetScreenerProgress sets the "screener_progress" field.
func (_u *IntakeSessionUpdate) SetScreenerProgress(v []int) *IntakeSessionUpdate {
	_u.mutation.SetScreenerProgress(v)
	return _u
}

// AppendScreenerProgress appends value to the "screener_progress" field.
func (_u *IntakeSessionUpdate) AppendScreenerProgress(v []int) *IntakeSessionUpdate {
	_u.mutation.AppendScreenerProgress(v)
	return _u
}

// ClearScreenerProgress clears the value of the "screener_progress" field.
func (_u *IntakeSessionUpdate) ClearScreenerProgress() *IntakeSessionUpdate {
	_u.mutation.ClearScreenerProgress()
	return _u
}

// SetRiskFlags sets the "risk_flags" field.
func (_u *IntakeSessionUpdate) SetRiskFlags(v []map[string]interface{}) *IntakeSessionUpdate {
	_u.mutation.SetRiskFlags(v)
	return _u
}

// AppendRiskFlags appends value to the "risk_flags" field.
func (_u *IntakeSessionUpdate) AppendRiskFlags(v []map[string]interface{}) *IntakeSessionUpdate {
	_u.mutation.AppendRiskFlags(v)
	return _u
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (_u *IntakeSessionUpdate) ClearRiskFlags() *IntakeSessionUpdate {
	_u.mutation.ClearRiskFlags()
	return _u
}

// SetTurnsSinceExtract sets the "turns_since_extract" field.
func (_u *IntakeSessionUpdate) SetTurnsSinceExtract(v int) *IntakeSessionUpdate {
	_u.mutation.ResetTurnsSinceExtract()
	_u.mutation.SetTurnsSinceExtract(v)
	return _u
}

// SetNillableTurnsSinceExtract sets the "turns_since_extract" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableTurnsSinceExtract(v *int) *IntakeSessionUpdate {
	if v != nil {
		_u.SetTurnsSinceExtract(*v)
	}
	return _u
}

// AddTurnsSinceExtract adds value to the "turns_since_extract" field.
func (_u *IntakeSessionUpdate) AddTurnsSinceExtract(v int) *IntakeSessionUpdate {
	_u.mutation.AddTurnsSinceExtract(v)
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *IntakeSessionUpdate) SetPausedAt(v time.Time) *IntakeSessionUpdate {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillablePausedAt(v *time.Time) *IntakeSessionUpdate {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *IntakeSessionUpdate) ClearPausedAt() *IntakeSessionUpdate {
	_u.mutation.ClearPausedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IntakeSessionUpdate) SetExpiresAt(v time.Time) *IntakeSessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableExpiresAt(v *time.Time) *IntakeSessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *IntakeSessionUpdate) ClearExpiresAt() *IntakeSessionUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetResumeToken sets the "resume_token" field.
func (_u *IntakeSessionUpdate) SetResumeToken(v string) *IntakeSessionUpdate {
	_u.mutation.SetResumeToken(v)
	return _u
}

// SetNillableResumeToken sets the "resume_token" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableResumeToken(v *string) *IntakeSessionUpdate {
	if v != nil {
		_u.SetResumeToken(*v)
	}
	return _u
}

// ClearResumeToken clears the value of the "resume_token" field.
func (_u *IntakeSessionUpdate) ClearResumeToken() *IntakeSessionUpdate {
	_u.mutation.ClearResumeToken()
	return _u
}

// SetVersion sets the "version" field.
func (_u *IntakeSessionUpdate) SetVersion(v int64) *IntakeSessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableVersion(v *int64) *IntakeSessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *IntakeSessionUpdate) AddVersion(v int64) *IntakeSessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntakeSessionUpdate) SetUpdatedAt(v time.Time) *IntakeSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *IntakeSessionUpdate) SetCompletedAt(v time.Time) *IntakeSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableCompletedAt(v *time.Time) *IntakeSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *IntakeSessionUpdate) ClearCompletedAt() *IntakeSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetReportID sets the "report" edge to the IntakeReport entity by ID.
func (_u *IntakeSessionUpdate) SetReportID(id string) *IntakeSessionUpdate {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the IntakeReport entity by ID if the given value is not nil.
func (_u *IntakeSessionUpdate) SetNillableReportID(id *string) *IntakeSessionUpdate {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the IntakeReport entity.
func (_u *IntakeSessionUpdate) SetReport(v *IntakeReport) *IntakeSessionUpdate {
	return _u.SetReportID(v.ID)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_u *IntakeSessionUpdate) AddNotificationIDs(ids ...string) *IntakeSessionUpdate {
	_u.mutation.AddNotificationIDs(ids...)
	return _u
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_u *IntakeSessionUpdate) AddNotifications(v ...*Notification) *IntakeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *IntakeSessionUpdate) AddAuditLogIDs(ids ...string) *IntakeSessionUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *IntakeSessionUpdate) AddAuditLogs(v ...*AuditLog) *IntakeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the IntakeSessionMutation object of the builder.
func (_u *IntakeSessionUpdate) Mutation() *IntakeSessionMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the IntakeReport entity.
func (_u *IntakeSessionUpdate) ClearReport() *IntakeSessionUpdate {
	_u.mutation.ClearReport()
	return _u
}

// ClearNotifications clears all "notifications" edges to the Notification entity.
func (_u *IntakeSessionUpdate) ClearNotifications() *IntakeSessionUpdate {
	_u.mutation.ClearNotifications()
	return _u
}

// RemoveNotificationIDs removes the "notifications" edge to Notification entities by IDs.
func (_u *IntakeSessionUpdate) RemoveNotificationIDs(ids ...string) *IntakeSessionUpdate {
	_u.mutation.RemoveNotificationIDs(ids...)
	return _u
}

// RemoveNotifications removes "notifications" edges to Notification entities.
func (_u *IntakeSessionUpdate) RemoveNotifications(v ...*Notification) *IntakeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *IntakeSessionUpdate) ClearAuditLogs() *IntakeSessionUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *IntakeSessionUpdate) RemoveAuditLogIDs(ids ...string) *IntakeSessionUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *IntakeSessionUpdate) RemoveAuditLogs(v ...*AuditLog) *IntakeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntakeSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntakeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntakeSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intakesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intakesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntakeSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntakeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intakesession.Table, intakesession.Columns, sqlgraph.NewFieldSpec(intakesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(intakesession.FieldPatientID, field.TypeString, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(intakesession.FieldPatientID, field.TypeString)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(intakesession.FieldUserName, field.TypeString, value)
	}
	if _u.mutation.UserNameCleared() {
		_spec.ClearField(intakesession.FieldUserName, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(intakesession.FieldCurrentPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intakesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConversationHistory(); ok {
		_spec.SetField(intakesession.FieldConversationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldConversationHistory, value)
		})
	}
	if _u.mutation.ConversationHistoryCleared() {
		_spec.ClearField(intakesession.FieldConversationHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(intakesession.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(intakesession.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.SymptomsDetected(); ok {
		_spec.SetField(intakesession.FieldSymptomsDetected, field.TypeJSON, value)
	}
	if _u.mutation.SymptomsDetectedCleared() {
		_spec.ClearField(intakesession.FieldSymptomsDetected, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedPhases(); ok {
		_spec.SetField(intakesession.FieldCompletedPhases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedPhases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldCompletedPhases, value)
		})
	}
	if _u.mutation.CompletedPhasesCleared() {
		_spec.ClearField(intakesession.FieldCompletedPhases, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedScreeners(); ok {
		_spec.SetField(intakesession.FieldCompletedScreeners, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedScreeners(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldCompletedScreeners, value)
		})
	}
	if _u.mutation.CompletedScreenersCleared() {
		_spec.ClearField(intakesession.FieldCompletedScreeners, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScreenerScores(); ok {
		_spec.SetField(intakesession.FieldScreenerScores, field.TypeJSON, value)
	}
	if _u.mutation.ScreenerScoresCleared() {
		_spec.ClearField(intakesession.FieldScreenerScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentScreener(); ok {
		_spec.SetField(intakesession.FieldCurrentScreener, field.TypeString, value)
	}
	if _u.mutation.CurrentScreenerCleared() {
		_spec.ClearField(intakesession.FieldCurrentScreener, field.TypeString)
	}
	if value, ok := _u.mutation.ScreenerProgress(); ok {
		_spec.SetField(intakesession.FieldScreenerProgress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScreenerProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldScreenerProgress, value)
		})
	}
	if _u.mutation.ScreenerProgressCleared() {
		_spec.ClearField(intakesession.FieldScreenerProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskFlags(); ok {
		_spec.SetField(intakesession.FieldRiskFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldRiskFlags, value)
		})
	}
	if _u.mutation.RiskFlagsCleared() {
		_spec.ClearField(intakesession.FieldRiskFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.TurnsSinceExtract(); ok {
		_spec.SetField(intakesession.FieldTurnsSinceExtract, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnsSinceExtract(); ok {
		_spec.AddField(intakesession.FieldTurnsSinceExtract, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(intakesession.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(intakesession.FieldPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(intakesession.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(intakesession.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResumeToken(); ok {
		_spec.SetField(intakesession.FieldResumeToken, field.TypeString, value)
	}
	if _u.mutation.ResumeTokenCleared() {
		_spec.ClearField(intakesession.FieldResumeToken, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(intakesession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(intakesession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intakesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(intakesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(intakesession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intakesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntakeSessionUpdateOne is the builder for updating a single IntakeSession entity.
type IntakeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntakeSessionMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *IntakeSessionUpdateOne) SetPatientID(v string) *IntakeSessionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillablePatientID(v *string) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *IntakeSessionUpdateOne) ClearPatientID() *IntakeSessionUpdateOne {
	_u.mutation.ClearPatientID()
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *IntakeSessionUpdateOne) SetUserName(v string) *IntakeSessionUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableUserName(v *string) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// ClearUserName clears the value of the "user_name" field.
func (_u *IntakeSessionUpdateOne) ClearUserName() *IntakeSessionUpdateOne {
	_u.mutation.ClearUserName()
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *IntakeSessionUpdateOne) SetCurrentPhase(v string) *IntakeSessionUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableCurrentPhase(v *string) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntakeSessionUpdateOne) SetStatus(v intakesession.Status) *IntakeSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableStatus(v *intakesession.Status) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConversationHistory sets the "conversation_history" field.
func (_u *IntakeSessionUpdateOne) SetConversationHistory(v []map[string]interface{}) *IntakeSessionUpdateOne {
	_u.mutation.SetConversationHistory(v)
	return _u
}

// AppendConversationHistory appends value to the "conversation_history" field.
func (_u *IntakeSessionUpdateOne) AppendConversationHistory(v []map[string]interface{}) *IntakeSessionUpdateOne {
	_u.mutation.AppendConversationHistory(v)
	return _u
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (_u *IntakeSessionUpdateOne) ClearConversationHistory() *IntakeSessionUpdateOne {
	_u.mutation.ClearConversationHistory()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *IntakeSessionUpdateOne) SetExtractedData(v map[string]interface{}) *IntakeSessionUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *IntakeSessionUpdateOne) ClearExtractedData() *IntakeSessionUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetSymptomsDetected sets the "symptoms_detected" field.
func (_u *IntakeSessionUpdateOne) SetSymptomsDetected(v map[string]bool) *IntakeSessionUpdateOne {
	_u.mutation.SetSymptomsDetected(v)
	return _u
}

// ClearSymptomsDetected clears the value of the "symptoms_detected" field.
func (_u *IntakeSessionUpdateOne) ClearSymptomsDetected() *IntakeSessionUpdateOne {
	_u.mutation.ClearSymptomsDetected()
	return _u
}

// SetCompletedPhases sets the "completed_phases" field.
func (_u *IntakeSessionUpdateOne) SetCompletedPhases(v []string) *IntakeSessionUpdateOne {
	_u.mutation.SetCompletedPhases(v)
	return _u
}

// AppendCompletedPhases appends value to the "completed_phases" field.
func (_u *IntakeSessionUpdateOne) AppendCompletedPhases(v []string) *IntakeSessionUpdateOne {
	_u.mutation.AppendCompletedPhases(v)
	return _u
}

// ClearCompletedPhases clears the value of the "completed_phases" field.
func (_u *IntakeSessionUpdateOne) ClearCompletedPhases() *IntakeSessionUpdateOne {
	_u.mutation.ClearCompletedPhases()
	return _u
}

// SetCompletedScreeners sets the "completed_screeners" field.
func (_u *IntakeSessionUpdateOne) SetCompletedScreeners(v []string) *IntakeSessionUpdateOne {
	_u.mutation.SetCompletedScreeners(v)
	return _u
}

// AppendCompletedScreeners appends value to the "completed_screeners" field.
func (_u *IntakeSessionUpdateOne) AppendCompletedScreeners(v []string) *IntakeSessionUpdateOne {
	_u.mutation.AppendCompletedScreeners(v)
	return _u
}

// ClearCompletedScreeners clears the value of the "completed_screeners" field.
func (_u *IntakeSessionUpdateOne) ClearCompletedScreeners() *IntakeSessionUpdateOne {
	_u.mutation.ClearCompletedScreeners()
	return _u
}

// SetScreenerScores sets the "screener_scores" field.
func (_u *IntakeSessionUpdateOne) SetScreenerScores(v map[string]interface{}) *IntakeSessionUpdateOne {
	_u.mutation.SetScreenerScores(v)
	return _u
}

// ClearScreenerScores clears the value of the "screener_scores" field.
func (_u *IntakeSessionUpdateOne) ClearScreenerScores() *IntakeSessionUpdateOne {
	_u.mutation.ClearScreenerScores()
	return _u
}

// SetCurrentScreener sets the "current_screener" field.
func (_u *IntakeSessionUpdateOne) SetCurrentScreener(v string) *IntakeSessionUpdateOne {
	_u.mutation.SetCurrentScreener(v)
	return _u
}

// SetNillableCurrentScreener sets the "current_screener" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableCurrentScreener(v *string) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetCurrentScreener(*v)
	}
	return _u
}

// ClearCurrentScreener clears the value of the "current_screener" field.
func (_u *IntakeSessionUpdateOne) ClearCurrentScreener() *IntakeSessionUpdateOne {
	_u.mutation.ClearCurrentScreener()
	return _u
}

// SetScreenerProgress sets the "screener_progress" field.
func (_u *IntakeSessionUpdateOne) SetScreenerProgress(v []int) *IntakeSessionUpdateOne {
	_u.mutation.SetScreenerProgress(v)
	return _u
}

// AppendScreenerProgress appends value to the "screener_progress" field.
func (_u *IntakeSessionUpdateOne) AppendScreenerProgress(v []int) *IntakeSessionUpdateOne {
	_u.mutation.AppendScreenerProgress(v)
	return _u
}

// ClearScreenerProgress clears the value of the "screener_progress" field.
func (_u *IntakeSessionUpdateOne) ClearScreenerProgress() *IntakeSessionUpdateOne {
	_u.mutation.ClearScreenerProgress()
	return _u
}

// SetRiskFlags sets the "risk_flags" field.
func (_u *IntakeSessionUpdateOne) SetRiskFlags(v []map[string]interface{}) *IntakeSessionUpdateOne {
	_u.mutation.SetRiskFlags(v)
	return _u
}

// AppendRiskFlags appends value to the "risk_flags" field.
func (_u *IntakeSessionUpdateOne) AppendRiskFlags(v []map[string]interface{}) *IntakeSessionUpdateOne {
	_u.mutation.AppendRiskFlags(v)
	return _u
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (_u *IntakeSessionUpdateOne) ClearRiskFlags() *IntakeSessionUpdateOne {
	_u.mutation.ClearRiskFlags()
	return _u
}

// SetTurnsSinceExtract sets the "turns_since_extract" field.
func (_u *IntakeSessionUpdateOne) SetTurnsSinceExtract(v int) *IntakeSessionUpdateOne {
	_u.mutation.ResetTurnsSinceExtract()
	_u.mutation.SetTurnsSinceExtract(v)
	return _u
}

// SetNillableTurnsSinceExtract sets the "turns_since_extract" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableTurnsSinceExtract(v *int) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetTurnsSinceExtract(*v)
	}
	return _u
}

// AddTurnsSinceExtract adds value to the "turns_since_extract" field.
func (_u *IntakeSessionUpdateOne) AddTurnsSinceExtract(v int) *IntakeSessionUpdateOne {
	_u.mutation.AddTurnsSinceExtract(v)
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *IntakeSessionUpdateOne) SetPausedAt(v time.Time) *IntakeSessionUpdateOne {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillablePausedAt(v *time.Time) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *IntakeSessionUpdateOne) ClearPausedAt() *IntakeSessionUpdateOne {
	_u.mutation.ClearPausedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IntakeSessionUpdateOne) SetExpiresAt(v time.Time) *IntakeSessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableExpiresAt(v *time.Time) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *IntakeSessionUpdateOne) ClearExpiresAt() *IntakeSessionUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetResumeToken sets the "resume_token" field.
func (_u *IntakeSessionUpdateOne) SetResumeToken(v string) *IntakeSessionUpdateOne {
	_u.mutation.SetResumeToken(v)
	return _u
}

// SetNillableResumeToken sets the "resume_token" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableResumeToken(v *string) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetResumeToken(*v)
	}
	return _u
}

// ClearResumeToken clears the value of the "resume_token" field.
func (_u *IntakeSessionUpdateOne) ClearResumeToken() *IntakeSessionUpdateOne {
	_u.mutation.ClearResumeToken()
	return _u
}

// SetVersion sets the "version" field.
func (_u *IntakeSessionUpdateOne) SetVersion(v int64) *IntakeSessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableVersion(v *int64) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *IntakeSessionUpdateOne) AddVersion(v int64) *IntakeSessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntakeSessionUpdateOne) SetUpdatedAt(v time.Time) *IntakeSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *IntakeSessionUpdateOne) SetCompletedAt(v time.Time) *IntakeSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *IntakeSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *IntakeSessionUpdateOne) ClearCompletedAt() *IntakeSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetReportID sets the "report" edge to the IntakeReport entity by ID.
func (_u *IntakeSessionUpdateOne) SetReportID(id string) *IntakeSessionUpdateOne {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the IntakeReport entity by ID if the given value is not nil.
func (_u *IntakeSessionUpdateOne) SetNillableReportID(id *string) *IntakeSessionUpdateOne {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the IntakeReport entity.
func (_u *IntakeSessionUpdateOne) SetReport(v *IntakeReport) *IntakeSessionUpdateOne {
	return _u.SetReportID(v.ID)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_u *IntakeSessionUpdateOne) AddNotificationIDs(ids ...string) *IntakeSessionUpdateOne {
	_u.mutation.AddNotificationIDs(ids...)
	return _u
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_u *IntakeSessionUpdateOne) AddNotifications(v ...*Notification) *IntakeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *IntakeSessionUpdateOne) AddAuditLogIDs(ids ...string) *IntakeSessionUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *IntakeSessionUpdateOne) AddAuditLogs(v ...*AuditLog) *IntakeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the IntakeSessionMutation object of the builder.
func (_u *IntakeSessionUpdateOne) Mutation() *IntakeSessionMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the IntakeReport entity.
func (_u *IntakeSessionUpdateOne) ClearReport() *IntakeSessionUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// ClearNotifications clears all "notifications" edges to the Notification entity.
func (_u *IntakeSessionUpdateOne) ClearNotifications() *IntakeSessionUpdateOne {
	_u.mutation.ClearNotifications()
	return _u
}

// RemoveNotificationIDs removes the "notifications" edge to Notification entities by IDs.
func (_u *IntakeSessionUpdateOne) RemoveNotificationIDs(ids ...string) *IntakeSessionUpdateOne {
	_u.mutation.RemoveNotificationIDs(ids...)
	return _u
}

// RemoveNotifications removes "notifications" edges to Notification entities.
func (_u *IntakeSessionUpdateOne) RemoveNotifications(v ...*Notification) *IntakeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *IntakeSessionUpdateOne) ClearAuditLogs() *IntakeSessionUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *IntakeSessionUpdateOne) RemoveAuditLogIDs(ids ...string) *IntakeSessionUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *IntakeSessionUpdateOne) RemoveAuditLogs(v ...*AuditLog) *IntakeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the IntakeSessionUpdate builder.
func (_u *IntakeSessionUpdateOne) Where(ps ...predicate.IntakeSession) *IntakeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntakeSessionUpdateOne) Select(field string, fields ...string) *IntakeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntakeSession entity.
func (_u *IntakeSessionUpdateOne) Save(ctx context.Context) (*IntakeSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntakeSessionUpdateOne) SaveX(ctx context.Context) *IntakeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntakeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntakeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntakeSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intakesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntakeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intakesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntakeSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntakeSessionUpdateOne) sqlSave(ctx context.Context) (_node *IntakeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intakesession.Table, intakesession.Columns, sqlgraph.NewFieldSpec(intakesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntakeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intakesession.FieldID)
		for _, f := range fields {
			if !intakesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intakesession.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(intakesession.FieldPatientID, field.TypeString, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(intakesession.FieldPatientID, field.TypeString)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(intakesession.FieldUserName, field.TypeString, value)
	}
	if _u.mutation.UserNameCleared() {
		_spec.ClearField(intakesession.FieldUserName, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(intakesession.FieldCurrentPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intakesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConversationHistory(); ok {
		_spec.SetField(intakesession.FieldConversationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldConversationHistory, value)
		})
	}
	if _u.mutation.ConversationHistoryCleared() {
		_spec.ClearField(intakesession.FieldConversationHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(intakesession.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(intakesession.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.SymptomsDetected(); ok {
		_spec.SetField(intakesession.FieldSymptomsDetected, field.TypeJSON, value)
	}
	if _u.mutation.SymptomsDetectedCleared() {
		_spec.ClearField(intakesession.FieldSymptomsDetected, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedPhases(); ok {
		_spec.SetField(intakesession.FieldCompletedPhases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedPhases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldCompletedPhases, value)
		})
	}
	if _u.mutation.CompletedPhasesCleared() {
		_spec.ClearField(intakesession.FieldCompletedPhases, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedScreeners(); ok {
		_spec.SetField(intakesession.FieldCompletedScreeners, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedScreeners(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldCompletedScreeners, value)
		})
	}
	if _u.mutation.CompletedScreenersCleared() {
		_spec.ClearField(intakesession.FieldCompletedScreeners, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScreenerScores(); ok {
		_spec.SetField(intakesession.FieldScreenerScores, field.TypeJSON, value)
	}
	if _u.mutation.ScreenerScoresCleared() {
		_spec.ClearField(intakesession.FieldScreenerScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentScreener(); ok {
		_spec.SetField(intakesession.FieldCurrentScreener, field.TypeString, value)
	}
	if _u.mutation.CurrentScreenerCleared() {
		_spec.ClearField(intakesession.FieldCurrentScreener, field.TypeString)
	}
	if value, ok := _u.mutation.ScreenerProgress(); ok {
		_spec.SetField(intakesession.FieldScreenerProgress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScreenerProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldScreenerProgress, value)
		})
	}
	if _u.mutation.ScreenerProgressCleared() {
		_spec.ClearField(intakesession.FieldScreenerProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskFlags(); ok {
		_spec.SetField(intakesession.FieldRiskFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intakesession.FieldRiskFlags, value)
		})
	}
	if _u.mutation.RiskFlagsCleared() {
		_spec.ClearField(intakesession.FieldRiskFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.TurnsSinceExtract(); ok {
		_spec.SetField(intakesession.FieldTurnsSinceExtract, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnsSinceExtract(); ok {
		_spec.AddField(intakesession.FieldTurnsSinceExtract, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(intakesession.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(intakesession.FieldPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(intakesession.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(intakesession.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResumeToken(); ok {
		_spec.SetField(intakesession.FieldResumeToken, field.TypeString, value)
	}
	if _u.mutation.ResumeTokenCleared() {
		_spec.ClearField(intakesession.FieldResumeToken, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(intakesession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(intakesession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intakesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(intakesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(intakesession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IntakeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intakesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
