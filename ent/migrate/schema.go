// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminUsersColumns holds the columns for the "admin_users" table.
	AdminUsersColumns = []*schema.Column{
		{Name: "admin_user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AdminUsersTable holds the schema information for the "admin_users" table.
	AdminUsersTable = &schema.Table{
		Name:       "admin_users",
		Columns:    AdminUsersColumns,
		PrimaryKey: []*schema.Column{AdminUsersColumns[0]},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_token", Type: field.TypeString},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_intake_sessions_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[4]},
				RefColumns: []*schema.Column{IntakeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_session_token_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[4], AuditLogsColumns[3]},
			},
			{
				Name:    "auditlog_event_type",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// IntakeReportsColumns holds the columns for the "intake_reports" table.
	IntakeReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "report", Type: field.TypeJSON},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "session_token", Type: field.TypeString, Unique: true},
	}
	// IntakeReportsTable holds the schema information for the "intake_reports" table.
	IntakeReportsTable = &schema.Table{
		Name:       "intake_reports",
		Columns:    IntakeReportsColumns,
		PrimaryKey: []*schema.Column{IntakeReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "intake_reports_intake_sessions_report",
				Columns:    []*schema.Column{IntakeReportsColumns[3]},
				RefColumns: []*schema.Column{IntakeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// IntakeSessionsColumns holds the columns for the "intake_sessions" table.
	IntakeSessionsColumns = []*schema.Column{
		{Name: "session_token", Type: field.TypeString, Unique: true},
		{Name: "patient_id", Type: field.TypeString, Nullable: true},
		{Name: "user_name", Type: field.TypeString, Nullable: true},
		{Name: "current_phase", Type: field.TypeString, Default: "greeting"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "completed", "abandoned"}, Default: "active"},
		{Name: "conversation_history", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "symptoms_detected", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_phases", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_screeners", Type: field.TypeJSON, Nullable: true},
		{Name: "screener_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "current_screener", Type: field.TypeString, Nullable: true},
		{Name: "screener_progress", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_flags", Type: field.TypeJSON, Nullable: true},
		{Name: "turns_since_extract", Type: field.TypeInt, Default: 0},
		{Name: "paused_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "resume_token", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// IntakeSessionsTable holds the schema information for the "intake_sessions" table.
	IntakeSessionsTable = &schema.Table{
		Name:       "intake_sessions",
		Columns:    IntakeSessionsColumns,
		PrimaryKey: []*schema.Column{IntakeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "intakesession_status",
				Unique:  false,
				Columns: []*schema.Column{IntakeSessionsColumns[4]},
			},
			{
				Name:    "intakesession_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{IntakeSessionsColumns[4], IntakeSessionsColumns[16]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "admin_user_id", Type: field.TypeString},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"urgent", "normal"}, Default: "normal"},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "delivery_status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_token", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_intake_sessions_notifications",
				Columns:    []*schema.Column{NotificationsColumns[7]},
				RefColumns: []*schema.Column{IntakeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_admin_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminUsersTable,
		AuditLogsTable,
		IntakeReportsTable,
		IntakeSessionsTable,
		NotificationsTable,
	}
)

func init() {
	AuditLogsTable.ForeignKeys[0].RefTable = IntakeSessionsTable
	IntakeReportsTable.ForeignKeys[0].RefTable = IntakeSessionsTable
	NotificationsTable.ForeignKeys[0].RefTable = IntakeSessionsTable
}
