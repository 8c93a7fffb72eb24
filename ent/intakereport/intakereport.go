// Code generated by ent, DO NOT EDIT.

package intakereport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the intakereport type in the database.
	Label = "intake_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "report_id"
	// FieldSessionToken holds the string denoting the session_token field in the database.
	FieldSessionToken = "session_token"
	// FieldReport holds the string denoting the report field in the database.
	FieldReport = "report"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// IntakeSessionFieldID holds the string denoting the ID field of the IntakeSession.
	IntakeSessionFieldID = "session_token"
	// Table holds the table name of the intakereport in the database.
	Table = "intake_reports"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "intake_reports"
	// SessionInverseTable is the table name for the IntakeSession entity.
	// It exists in this package in order to avoid circular dependency with the "intakesession" package.
	SessionInverseTable = "intake_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_token"
)

// Columns holds all SQL columns for intakereport fields.
var Columns = []string{
	FieldID,
	FieldSessionToken,
	FieldReport,
	FieldGeneratedAt,
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
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
)

// OrderOption defines the ordering options for the IntakeReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionToken orders the results by the session_token field.
func BySessionToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionToken, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, IntakeSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
