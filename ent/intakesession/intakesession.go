// Code generated by ent, DO NOT EDIT.

package intakesession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the intakesession type in the database.
	Label = "intake_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_token"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldUserName holds the string denoting the user_name field in the database.
	FieldUserName = "user_name"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConversationHistory holds the string denoting the conversation_history field in the database.
	FieldConversationHistory = "conversation_history"
	// FieldExtractedData holds the string denoting the extracted_data field in the database.
	FieldExtractedData = "extracted_data"
	// FieldSymptomsDetected holds the string denoting the symptoms_detected field in the database.
	FieldSymptomsDetected = "symptoms_detected"
	// FieldCompletedPhases holds the string denoting the completed_phases field in the database.
	FieldCompletedPhases = "completed_phases"
	// FieldCompletedScreeners holds the string denoting the completed_screeners field in the database.
	FieldCompletedScreeners = "completed_screeners"
	// FieldScreenerScores holds the string denoting the screener_scores field in the database.
	FieldScreenerScores = "screener_scores"
	// FieldCurrentScreener holds the string denoting the current_screener field in the database.
	FieldCurrentScreener = "current_screener"
	// FieldScreenerProgress holds the string denoting the screener_progress field in the database.
	FieldScreenerProgress = "screener_progress"
	// FieldRiskFlags holds the string denoting the risk_flags field in the database.
	FieldRiskFlags = "risk_flags"
	// FieldTurnsSinceExtract holds the string denoting the turns_since_extract field in the database.
	FieldTurnsSinceExtract = "turns_since_extract"
	// FieldPausedAt holds the string denoting the paused_at field in the database.
	FieldPausedAt = "paused_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldResumeToken holds the string denoting the resume_token field in the database.
	FieldResumeToken = "resume_token"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// EdgeNotifications holds the string denoting the notifications edge name in mutations.
	EdgeNotifications = "notifications"
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// IntakeReportFieldID holds the string denoting the ID field of the IntakeReport.
	IntakeReportFieldID = "report_id"
	// NotificationFieldID holds the string denoting the ID field of the Notification.
	NotificationFieldID = "notification_id"
	// AuditLogFieldID holds the string denoting the ID field of the AuditLog.
	AuditLogFieldID = "audit_id"
	// Table holds the table name of the intakesession in the database.
	Table = "intake_sessions"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "intake_reports"
	// ReportInverseTable is the table name for the IntakeReport entity.
	// It exists in this package in order to avoid circular dependency with the "intakereport" package.
	ReportInverseTable = "intake_reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "session_token"
	// NotificationsTable is the table that holds the notifications relation/edge.
	NotificationsTable = "notifications"
	// NotificationsInverseTable is the table name for the Notification entity.
	// It exists in this package in order to avoid circular dependency with the "notification" package.
	NotificationsInverseTable = "notifications"
	// NotificationsColumn is the table column denoting the notifications relation/edge.
	NotificationsColumn = "session_token"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "audit_logs"
	// AuditLogsInverseTable is the table name for the AuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "auditlog" package.
	AuditLogsInverseTable = "audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "session_token"
)

// Columns holds all SQL columns for intakesession fields.
var Columns = []string{
	FieldID,
	FieldPatientID,
	FieldUserName,
	FieldCurrentPhase,
	FieldStatus,
	FieldConversationHistory,
	FieldExtractedData,
	FieldSymptomsDetected,
	FieldCompletedPhases,
	FieldCompletedScreeners,
	FieldScreenerScores,
	FieldCurrentScreener,
	FieldScreenerProgress,
	FieldRiskFlags,
	FieldTurnsSinceExtract,
	FieldPausedAt,
	FieldExpiresAt,
	FieldResumeToken,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrentPhase holds the default value on creation for the "current_phase" field.
	DefaultCurrentPhase string
	// DefaultTurnsSinceExtract holds the default value on creation for the "turns_since_extract" field.
	DefaultTurnsSinceExtract int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("intakesession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the IntakeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByUserName orders the results by the user_name field.
func ByUserName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserName, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentScreener orders the results by the current_screener field.
func ByCurrentScreener(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentScreener, opts...).ToFunc()
}

// ByTurnsSinceExtract orders the results by the turns_since_extract field.
func ByTurnsSinceExtract(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnsSinceExtract, opts...).ToFunc()
}

// ByPausedAt orders the results by the paused_at field.
func ByPausedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByResumeToken orders the results by the resume_token field.
func ByResumeToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeToken, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}

// ByNotificationsCount orders the results by notifications count.
func ByNotificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotificationsStep(), opts...)
	}
}

// ByNotifications orders the results by notifications terms.
func ByNotifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, IntakeReportFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ReportTable, ReportColumn),
	)
}
func newNotificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotificationsInverseTable, NotificationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotificationsTable, NotificationsColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, AuditLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}
