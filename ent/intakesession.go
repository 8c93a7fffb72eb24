// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/meridianhealth/intake/ent/intakereport"
	"github.com/meridianhealth/intake/ent/intakesession"
)

// IntakeSession is the model entity for the IntakeSession schema.
type IntakeSession struct {
	config `json:"-"`
	// ID of the ent.
	// Opaque URL-safe session token
	ID string `json:"id,omitempty"`
	// Null for anonymous sessions
	PatientID *string `json:"patient_id,omitempty"`
	// UserName holds the value of the "user_name" field.
	UserName string `json:"user_name,omitempty"`
	// CurrentPhase holds the value of the "current_phase" field.
	CurrentPhase string `json:"current_phase,omitempty"`
	// Status holds the value of the "status" field.
	Status intakesession.Status `json:"status,omitempty"`
	// ConversationHistory holds the value of the "conversation_history" field.
	ConversationHistory []map[string]interface{} `json:"conversation_history,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData map[string]interface{} `json:"extracted_data,omitempty"`
	// SymptomsDetected holds the value of the "symptoms_detected" field.
	SymptomsDetected map[string]bool `json:"symptoms_detected,omitempty"`
	// CompletedPhases holds the value of the "completed_phases" field.
	CompletedPhases []string `json:"completed_phases,omitempty"`
	// CompletedScreeners holds the value of the "completed_screeners" field.
	CompletedScreeners []string `json:"completed_screeners,omitempty"`
	// ScreenerScores holds the value of the "screener_scores" field.
	ScreenerScores map[string]interface{} `json:"screener_scores,omitempty"`
	// Active screener id; empty when no screener in flight
	CurrentScreener string `json:"current_screener,omitempty"`
	// Partial response vector for the active screener
	ScreenerProgress []int `json:"screener_progress,omitempty"`
	// RiskFlags holds the value of the "risk_flags" field.
	RiskFlags []map[string]interface{} `json:"risk_flags,omitempty"`
	// TurnsSinceExtract holds the value of the "turns_since_extract" field.
	TurnsSinceExtract int `json:"turns_since_extract,omitempty"`
	// PausedAt holds the value of the "paused_at" field.
	PausedAt *time.Time `json:"paused_at,omitempty"`
	// paused_at + pause TTL; resume past this marks the session abandoned
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Unguessable continuation token, unique while valid
	ResumeToken *string `json:"resume_token,omitempty"`
	// Monotonic optimistic-concurrency version
	Version int64 `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntakeSessionQuery when eager-loading is set.
	Edges        IntakeSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntakeSessionEdges holds the relations/edges for other nodes in the graph.
type IntakeSessionEdges struct {
	// Report holds the value of the report edge.
	Report *IntakeReport `json:"report,omitempty"`
	// Notifications holds the value of the notifications edge.
	Notifications []*Notification `json:"notifications,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntakeSessionEdges) ReportOrErr() (*IntakeReport, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: intakereport.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// NotificationsOrErr returns the Notifications value or an error if the edge
// was not loaded in eager-loading.
func (e IntakeSessionEdges) NotificationsOrErr() ([]*Notification, error) {
	if e.loadedTypes[1] {
		return e.Notifications, nil
	}
	return nil, &NotLoadedError{edge: "notifications"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e IntakeSessionEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[2] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntakeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intakesession.FieldConversationHistory, intakesession.FieldExtractedData, intakesession.FieldSymptomsDetected, intakesession.FieldCompletedPhases, intakesession.FieldCompletedScreeners, intakesession.FieldScreenerScores, intakesession.FieldScreenerProgress, intakesession.FieldRiskFlags:
			values[i] = new([]byte)
		case intakesession.FieldTurnsSinceExtract, intakesession.FieldVersion:
			values[i] = new(sql.NullInt64)
		case intakesession.FieldID, intakesession.FieldPatientID, intakesession.FieldUserName, intakesession.FieldCurrentPhase, intakesession.FieldStatus, intakesession.FieldCurrentScreener, intakesession.FieldResumeToken:
			values[i] = new(sql.NullString)
		case intakesession.FieldPausedAt, intakesession.FieldExpiresAt, intakesession.FieldCreatedAt, intakesession.FieldUpdatedAt, intakesession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntakeSession fields.
func (_m *IntakeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intakesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case intakesession.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = new(string)
				*_m.PatientID = value.String
			}
		case intakesession.FieldUserName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_name", values[i])
			} else if value.Valid {
				_m.UserName = value.String
			}
		case intakesession.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = value.String
			}
		case intakesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = intakesession.Status(value.String)
			}
		case intakesession.FieldConversationHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConversationHistory); err != nil {
					return fmt.Errorf("unmarshal field conversation_history: %w", err)
				}
			}
		case intakesession.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case intakesession.FieldSymptomsDetected:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field symptoms_detected", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SymptomsDetected); err != nil {
					return fmt.Errorf("unmarshal field symptoms_detected: %w", err)
				}
			}
		case intakesession.FieldCompletedPhases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_phases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedPhases); err != nil {
					return fmt.Errorf("unmarshal field completed_phases: %w", err)
				}
			}
		case intakesession.FieldCompletedScreeners:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_screeners", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedScreeners); err != nil {
					return fmt.Errorf("unmarshal field completed_screeners: %w", err)
				}
			}
		case intakesession.FieldScreenerScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field screener_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScreenerScores); err != nil {
					return fmt.Errorf("unmarshal field screener_scores: %w", err)
				}
			}
		case intakesession.FieldCurrentScreener:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_screener", values[i])
			} else if value.Valid {
				_m.CurrentScreener = value.String
			}
		case intakesession.FieldScreenerProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field screener_progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScreenerProgress); err != nil {
					return fmt.Errorf("unmarshal field screener_progress: %w", err)
				}
			}
		case intakesession.FieldRiskFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risk_flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RiskFlags); err != nil {
					return fmt.Errorf("unmarshal field risk_flags: %w", err)
				}
			}
		case intakesession.FieldTurnsSinceExtract:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turns_since_extract", values[i])
			} else if value.Valid {
				_m.TurnsSinceExtract = int(value.Int64)
			}
		case intakesession.FieldPausedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paused_at", values[i])
			} else if value.Valid {
				_m.PausedAt = new(time.Time)
				*_m.PausedAt = value.Time
			}
		case intakesession.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case intakesession.FieldResumeToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resume_token", values[i])
			} else if value.Valid {
				_m.ResumeToken = new(string)
				*_m.ResumeToken = value.String
			}
		case intakesession.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case intakesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case intakesession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case intakesession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IntakeSession.
// This includes values selected through modifiers, order, etc.
func (_m *IntakeSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the IntakeSession entity.
func (_m *IntakeSession) QueryReport() *IntakeReportQuery {
	return NewIntakeSessionClient(_m.config).QueryReport(_m)
}

// QueryNotifications queries the "notifications" edge of the IntakeSession entity.
func (_m *IntakeSession) QueryNotifications() *NotificationQuery {
	return NewIntakeSessionClient(_m.config).QueryNotifications(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the IntakeSession entity.
func (_m *IntakeSession) QueryAuditLogs() *AuditLogQuery {
	return NewIntakeSessionClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this IntakeSession.
// Note that you need to call IntakeSession.Unwrap() before calling this method if this IntakeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntakeSession) Update() *IntakeSessionUpdateOne {
	return NewIntakeSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntakeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntakeSession) Unwrap() *IntakeSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntakeSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntakeSession) String() string {
	var builder strings.Builder
	builder.WriteString("IntakeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.PatientID; v != nil {
		builder.WriteString("patient_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("user_name=")
	builder.WriteString(_m.UserName)
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(_m.CurrentPhase)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("conversation_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversationHistory))
	builder.WriteString(", ")
	builder.WriteString("extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedData))
	builder.WriteString(", ")
	builder.WriteString("symptoms_detected=")
	builder.WriteString(fmt.Sprintf("%v", _m.SymptomsDetected))
	builder.WriteString(", ")
	builder.WriteString("completed_phases=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedPhases))
	builder.WriteString(", ")
	builder.WriteString("completed_screeners=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedScreeners))
	builder.WriteString(", ")
	builder.WriteString("screener_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScreenerScores))
	builder.WriteString(", ")
	builder.WriteString("current_screener=")
	builder.WriteString(_m.CurrentScreener)
	builder.WriteString(", ")
	builder.WriteString("screener_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScreenerProgress))
	builder.WriteString(", ")
	builder.WriteString("risk_flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskFlags))
	builder.WriteString(", ")
	builder.WriteString("turns_since_extract=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnsSinceExtract))
	builder.WriteString(", ")
	if v := _m.PausedAt; v != nil {
		builder.WriteString("paused_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResumeToken; v != nil {
		builder.WriteString("resume_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// IntakeSessions is a parsable slice of IntakeSession.
type IntakeSessions []*IntakeSession
