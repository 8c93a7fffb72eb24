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

// IntakeReport is the model entity for the IntakeReport schema.
type IntakeReport struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionToken holds the value of the "session_token" field.
	SessionToken string `json:"session_token,omitempty"`
	// Structured clinical report as synthesized
	Report map[string]interface{} `json:"report,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntakeReportQuery when eager-loading is set.
	Edges        IntakeReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntakeReportEdges holds the relations/edges for other nodes in the graph.
type IntakeReportEdges struct {
	// Session holds the value of the session edge.
	Session *IntakeSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntakeReportEdges) SessionOrErr() (*IntakeSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: intakesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntakeReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intakereport.FieldReport:
			values[i] = new([]byte)
		case intakereport.FieldID, intakereport.FieldSessionToken:
			values[i] = new(sql.NullString)
		case intakereport.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntakeReport fields.
func (_m *IntakeReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intakereport.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case intakereport.FieldSessionToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_token", values[i])
			} else if value.Valid {
				_m.SessionToken = value.String
			}
		case intakereport.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		case intakereport.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IntakeReport.
// This includes values selected through modifiers, order, etc.
func (_m *IntakeReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the IntakeReport entity.
func (_m *IntakeReport) QuerySession() *IntakeSessionQuery {
	return NewIntakeReportClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this IntakeReport.
// Note that you need to call IntakeReport.Unwrap() before calling this method if this IntakeReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntakeReport) Update() *IntakeReportUpdateOne {
	return NewIntakeReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntakeReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntakeReport) Unwrap() *IntakeReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntakeReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntakeReport) String() string {
	var builder strings.Builder
	builder.WriteString("IntakeReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_token=")
	builder.WriteString(_m.SessionToken)
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IntakeReports is a parsable slice of IntakeReport.
type IntakeReports []*IntakeReport
