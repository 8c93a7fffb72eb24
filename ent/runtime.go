// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/meridianhealth/intake/ent/adminuser"
	"github.com/meridianhealth/intake/ent/auditlog"
	"github.com/meridianhealth/intake/ent/intakereport"
	"github.com/meridianhealth/intake/ent/intakesession"
	"github.com/meridianhealth/intake/ent/notification"
	"github.com/meridianhealth/intake/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminuserFields := schema.AdminUser{}.Fields()
	_ = adminuserFields
	// adminuserDescActive is the schema descriptor for active field.
	adminuserDescActive := adminuserFields[2].Descriptor()
	// adminuser.DefaultActive holds the default value on creation for the active field.
	adminuser.DefaultActive = adminuserDescActive.Default.(bool)
	// adminuserDescCreatedAt is the schema descriptor for created_at field.
	adminuserDescCreatedAt := adminuserFields[3].Descriptor()
	// adminuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminuser.DefaultCreatedAt = adminuserDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[4].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	intakereportFields := schema.IntakeReport{}.Fields()
	_ = intakereportFields
	// intakereportDescGeneratedAt is the schema descriptor for generated_at field.
	intakereportDescGeneratedAt := intakereportFields[3].Descriptor()
	// intakereport.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	intakereport.DefaultGeneratedAt = intakereportDescGeneratedAt.Default.(func() time.Time)
	intakesessionFields := schema.IntakeSession{}.Fields()
	_ = intakesessionFields
	// intakesessionDescCurrentPhase is the schema descriptor for current_phase field.
	intakesessionDescCurrentPhase := intakesessionFields[3].Descriptor()
	// intakesession.DefaultCurrentPhase holds the default value on creation for the current_phase field.
	intakesession.DefaultCurrentPhase = intakesessionDescCurrentPhase.Default.(string)
	// intakesessionDescTurnsSinceExtract is the schema descriptor for turns_since_extract field.
	intakesessionDescTurnsSinceExtract := intakesessionFields[14].Descriptor()
	// intakesession.DefaultTurnsSinceExtract holds the default value on creation for the turns_since_extract field.
	intakesession.DefaultTurnsSinceExtract = intakesessionDescTurnsSinceExtract.Default.(int)
	// intakesessionDescVersion is the schema descriptor for version field.
	intakesessionDescVersion := intakesessionFields[18].Descriptor()
	// intakesession.DefaultVersion holds the default value on creation for the version field.
	intakesession.DefaultVersion = intakesessionDescVersion.Default.(int64)
	// intakesessionDescCreatedAt is the schema descriptor for created_at field.
	intakesessionDescCreatedAt := intakesessionFields[19].Descriptor()
	// intakesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	intakesession.DefaultCreatedAt = intakesessionDescCreatedAt.Default.(func() time.Time)
	// intakesessionDescUpdatedAt is the schema descriptor for updated_at field.
	intakesessionDescUpdatedAt := intakesessionFields[20].Descriptor()
	// intakesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	intakesession.DefaultUpdatedAt = intakesessionDescUpdatedAt.Default.(func() time.Time)
	// intakesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	intakesession.UpdateDefaultUpdatedAt = intakesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[7].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
}
