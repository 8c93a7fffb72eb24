// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdminUser is the predicate function for adminuser builders.
type AdminUser func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// IntakeReport is the predicate function for intakereport builders.
type IntakeReport func(*sql.Selector)

// IntakeSession is the predicate function for intakesession builders.
type IntakeSession func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)
