// Code generated by ent, DO NOT EDIT.

package intakesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/meridianhealth/intake/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContainsFold(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldPatientID, v))
}

// UserName applies equality check predicate on the "user_name" field. It's identical to UserNameEQ.
func UserName(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldUserName, v))
}

// CurrentPhase applies equality check predicate on the "current_phase" field. It's identical to CurrentPhaseEQ.
func CurrentPhase(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentScreener applies equality check predicate on the "current_screener" field. It's identical to CurrentScreenerEQ.
func CurrentScreener(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldCurrentScreener, v))
}

// TurnsSinceExtract applies equality check predicate on the "turns_since_extract" field. It's identical to TurnsSinceExtractEQ.
func TurnsSinceExtract(v int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldTurnsSinceExtract, v))
}

// PausedAt applies equality check predicate on the "paused_at" field. It's identical to PausedAtEQ.
func PausedAt(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldPausedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldExpiresAt, v))
}

// ResumeToken applies equality check predicate on the "resume_token" field. It's identical to ResumeTokenEQ.
func ResumeToken(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldResumeToken, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDIsNil applies the IsNil predicate on the "patient_id" field.
func PatientIDIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldPatientID))
}

// PatientIDNotNil applies the NotNil predicate on the "patient_id" field.
func PatientIDNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldPatientID))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContainsFold(FieldPatientID, v))
}

// UserNameEQ applies the EQ predicate on the "user_name" field.
func UserNameEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldUserName, v))
}

// UserNameNEQ applies the NEQ predicate on the "user_name" field.
func UserNameNEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldUserName, v))
}

// UserNameIn applies the In predicate on the "user_name" field.
func UserNameIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldUserName, vs...))
}

// UserNameNotIn applies the NotIn predicate on the "user_name" field.
func UserNameNotIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldUserName, vs...))
}

// UserNameGT applies the GT predicate on the "user_name" field.
func UserNameGT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldUserName, v))
}

// UserNameGTE applies the GTE predicate on the "user_name" field.
func UserNameGTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldUserName, v))
}

// UserNameLT applies the LT predicate on the "user_name" field.
func UserNameLT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldUserName, v))
}

// UserNameLTE applies the LTE predicate on the "user_name" field.
func UserNameLTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldUserName, v))
}

// UserNameContains applies the Contains predicate on the "user_name" field.
func UserNameContains(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContains(FieldUserName, v))
}

// UserNameHasPrefix applies the HasPrefix predicate on the "user_name" field.
func UserNameHasPrefix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasPrefix(FieldUserName, v))
}

// UserNameHasSuffix applies the HasSuffix predicate on the "user_name" field.
func UserNameHasSuffix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasSuffix(FieldUserName, v))
}

// UserNameIsNil applies the IsNil predicate on the "user_name" field.
func UserNameIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldUserName))
}

// UserNameNotNil applies the NotNil predicate on the "user_name" field.
func UserNameNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldUserName))
}

// UserNameEqualFold applies the EqualFold predicate on the "user_name" field.
func UserNameEqualFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEqualFold(FieldUserName, v))
}

// UserNameContainsFold applies the ContainsFold predicate on the "user_name" field.
func UserNameContainsFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContainsFold(FieldUserName, v))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseGT applies the GT predicate on the "current_phase" field.
func CurrentPhaseGT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldCurrentPhase, v))
}

// CurrentPhaseGTE applies the GTE predicate on the "current_phase" field.
func CurrentPhaseGTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldCurrentPhase, v))
}

// CurrentPhaseLT applies the LT predicate on the "current_phase" field.
func CurrentPhaseLT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldCurrentPhase, v))
}

// CurrentPhaseLTE applies the LTE predicate on the "current_phase" field.
func CurrentPhaseLTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldCurrentPhase, v))
}

// CurrentPhaseContains applies the Contains predicate on the "current_phase" field.
func CurrentPhaseContains(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContains(FieldCurrentPhase, v))
}

// CurrentPhaseHasPrefix applies the HasPrefix predicate on the "current_phase" field.
func CurrentPhaseHasPrefix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasPrefix(FieldCurrentPhase, v))
}

// CurrentPhaseHasSuffix applies the HasSuffix predicate on the "current_phase" field.
func CurrentPhaseHasSuffix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasSuffix(FieldCurrentPhase, v))
}

// CurrentPhaseEqualFold applies the EqualFold predicate on the "current_phase" field.
func CurrentPhaseEqualFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEqualFold(FieldCurrentPhase, v))
}

// CurrentPhaseContainsFold applies the ContainsFold predicate on the "current_phase" field.
func CurrentPhaseContainsFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContainsFold(FieldCurrentPhase, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldStatus, vs...))
}

// ConversationHistoryIsNil applies the IsNil predicate on the "conversation_history" field.
func ConversationHistoryIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldConversationHistory))
}

// ConversationHistoryNotNil applies the NotNil predicate on the "conversation_history" field.
func ConversationHistoryNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldConversationHistory))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldExtractedData))
}

// SymptomsDetectedIsNil applies the IsNil predicate on the "symptoms_detected" field.
func SymptomsDetectedIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldSymptomsDetected))
}

// SymptomsDetectedNotNil applies the NotNil predicate on the "symptoms_detected" field.
func SymptomsDetectedNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldSymptomsDetected))
}

// CompletedPhasesIsNil applies the IsNil predicate on the "completed_phases" field.
func CompletedPhasesIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldCompletedPhases))
}

// CompletedPhasesNotNil applies the NotNil predicate on the "completed_phases" field.
func CompletedPhasesNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldCompletedPhases))
}

// CompletedScreenersIsNil applies the IsNil predicate on the "completed_screeners" field.
func CompletedScreenersIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldCompletedScreeners))
}

// CompletedScreenersNotNil applies the NotNil predicate on the "completed_screeners" field.
func CompletedScreenersNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldCompletedScreeners))
}

// ScreenerScoresIsNil applies the IsNil predicate on the "screener_scores" field.
func ScreenerScoresIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldScreenerScores))
}

// ScreenerScoresNotNil applies the NotNil predicate on the "screener_scores" field.
func ScreenerScoresNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldScreenerScores))
}

// CurrentScreenerEQ applies the EQ predicate on the "current_screener" field.
func CurrentScreenerEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldCurrentScreener, v))
}

// CurrentScreenerNEQ applies the NEQ predicate on the "current_screener" field.
func CurrentScreenerNEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldCurrentScreener, v))
}

// CurrentScreenerIn applies the In predicate on the "current_screener" field.
func CurrentScreenerIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldCurrentScreener, vs...))
}

// CurrentScreenerNotIn applies the NotIn predicate on the "current_screener" field.
func CurrentScreenerNotIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldCurrentScreener, vs...))
}

// CurrentScreenerGT applies the GT predicate on the "current_screener" field.
func CurrentScreenerGT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldCurrentScreener, v))
}

// CurrentScreenerGTE applies the GTE predicate on the "current_screener" field.
func CurrentScreenerGTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldCurrentScreener, v))
}

// CurrentScreenerLT applies the LT predicate on the "current_screener" field.
func CurrentScreenerLT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldCurrentScreener, v))
}

// CurrentScreenerLTE applies the LTE predicate on the "current_screener" field.
func CurrentScreenerLTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldCurrentScreener, v))
}

// CurrentScreenerContains applies the Contains predicate on the "current_screener" field.
func CurrentScreenerContains(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContains(FieldCurrentScreener, v))
}

// CurrentScreenerHasPrefix applies the HasPrefix predicate on the "current_screener" field.
func CurrentScreenerHasPrefix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasPrefix(FieldCurrentScreener, v))
}

// CurrentScreenerHasSuffix applies the HasSuffix predicate on the "current_screener" field.
func CurrentScreenerHasSuffix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasSuffix(FieldCurrentScreener, v))
}

// CurrentScreenerIsNil applies the IsNil predicate on the "current_screener" field.
func CurrentScreenerIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldCurrentScreener))
}

// CurrentScreenerNotNil applies the NotNil predicate on the "current_screener" field.
func CurrentScreenerNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldCurrentScreener))
}

// CurrentScreenerEqualFold applies the EqualFold predicate on the "current_screener" field.
func CurrentScreenerEqualFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEqualFold(FieldCurrentScreener, v))
}

// CurrentScreenerContainsFold applies the ContainsFold predicate on the "current_screener" field.
func CurrentScreenerContainsFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContainsFold(FieldCurrentScreener, v))
}

// ScreenerProgressIsNil applies the IsNil predicate on the "screener_progress" field.
func ScreenerProgressIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldScreenerProgress))
}

// ScreenerProgressNotNil applies the NotNil predicate on the "screener_progress" field.
func ScreenerProgressNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldScreenerProgress))
}

// RiskFlagsIsNil applies the IsNil predicate on the "risk_flags" field.
func RiskFlagsIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldRiskFlags))
}

// RiskFlagsNotNil applies the NotNil predicate on the "risk_flags" field.
func RiskFlagsNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldRiskFlags))
}

// TurnsSinceExtractEQ applies the EQ predicate on the "turns_since_extract" field.
func TurnsSinceExtractEQ(v int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldTurnsSinceExtract, v))
}

// TurnsSinceExtractNEQ applies the NEQ predicate on the "turns_since_extract" field.
func TurnsSinceExtractNEQ(v int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldTurnsSinceExtract, v))
}

// TurnsSinceExtractIn applies the In predicate on the "turns_since_extract" field.
func TurnsSinceExtractIn(vs ...int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldTurnsSinceExtract, vs...))
}

// TurnsSinceExtractNotIn applies the NotIn predicate on the "turns_since_extract" field.
func TurnsSinceExtractNotIn(vs ...int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldTurnsSinceExtract, vs...))
}

// TurnsSinceExtractGT applies the GT predicate on the "turns_since_extract" field.
func TurnsSinceExtractGT(v int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldTurnsSinceExtract, v))
}

// TurnsSinceExtractGTE applies the GTE predicate on the "turns_since_extract" field.
func TurnsSinceExtractGTE(v int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldTurnsSinceExtract, v))
}

// TurnsSinceExtractLT applies the LT predicate on the "turns_since_extract" field.
func TurnsSinceExtractLT(v int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldTurnsSinceExtract, v))
}

// TurnsSinceExtractLTE applies the LTE predicate on the "turns_since_extract" field.
func TurnsSinceExtractLTE(v int) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldTurnsSinceExtract, v))
}

// PausedAtEQ applies the EQ predicate on the "paused_at" field.
func PausedAtEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldPausedAt, v))
}

// PausedAtNEQ applies the NEQ predicate on the "paused_at" field.
func PausedAtNEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldPausedAt, v))
}

// PausedAtIn applies the In predicate on the "paused_at" field.
func PausedAtIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldPausedAt, vs...))
}

// PausedAtNotIn applies the NotIn predicate on the "paused_at" field.
func PausedAtNotIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldPausedAt, vs...))
}

// PausedAtGT applies the GT predicate on the "paused_at" field.
func PausedAtGT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldPausedAt, v))
}

// PausedAtGTE applies the GTE predicate on the "paused_at" field.
func PausedAtGTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldPausedAt, v))
}

// PausedAtLT applies the LT predicate on the "paused_at" field.
func PausedAtLT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldPausedAt, v))
}

// PausedAtLTE applies the LTE predicate on the "paused_at" field.
func PausedAtLTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldPausedAt, v))
}

// PausedAtIsNil applies the IsNil predicate on the "paused_at" field.
func PausedAtIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldPausedAt))
}

// PausedAtNotNil applies the NotNil predicate on the "paused_at" field.
func PausedAtNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldPausedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldExpiresAt))
}

// ResumeTokenEQ applies the EQ predicate on the "resume_token" field.
func ResumeTokenEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldResumeToken, v))
}

// ResumeTokenNEQ applies the NEQ predicate on the "resume_token" field.
func ResumeTokenNEQ(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldResumeToken, v))
}

// ResumeTokenIn applies the In predicate on the "resume_token" field.
func ResumeTokenIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldResumeToken, vs...))
}

// ResumeTokenNotIn applies the NotIn predicate on the "resume_token" field.
func ResumeTokenNotIn(vs ...string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldResumeToken, vs...))
}

// ResumeTokenGT applies the GT predicate on the "resume_token" field.
func ResumeTokenGT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldResumeToken, v))
}

// ResumeTokenGTE applies the GTE predicate on the "resume_token" field.
func ResumeTokenGTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldResumeToken, v))
}

// ResumeTokenLT applies the LT predicate on the "resume_token" field.
func ResumeTokenLT(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldResumeToken, v))
}

// ResumeTokenLTE applies the LTE predicate on the "resume_token" field.
func ResumeTokenLTE(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldResumeToken, v))
}

// ResumeTokenContains applies the Contains predicate on the "resume_token" field.
func ResumeTokenContains(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContains(FieldResumeToken, v))
}

// ResumeTokenHasPrefix applies the HasPrefix predicate on the "resume_token" field.
func ResumeTokenHasPrefix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasPrefix(FieldResumeToken, v))
}

// ResumeTokenHasSuffix applies the HasSuffix predicate on the "resume_token" field.
func ResumeTokenHasSuffix(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldHasSuffix(FieldResumeToken, v))
}

// ResumeTokenIsNil applies the IsNil predicate on the "resume_token" field.
func ResumeTokenIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldResumeToken))
}

// ResumeTokenNotNil applies the NotNil predicate on the "resume_token" field.
func ResumeTokenNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldResumeToken))
}

// ResumeTokenEqualFold applies the EqualFold predicate on the "resume_token" field.
func ResumeTokenEqualFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEqualFold(FieldResumeToken, v))
}

// ResumeTokenContainsFold applies the ContainsFold predicate on the "resume_token" field.
func ResumeTokenContainsFold(v string) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldContainsFold(FieldResumeToken, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.IntakeSession {
	return predicate.IntakeSession(sql.FieldNotNull(FieldCompletedAt))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.IntakeSession {
	return predicate.IntakeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.IntakeReport) predicate.IntakeSession {
	return predicate.IntakeSession(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNotifications applies the HasEdge predicate on the "notifications" edge.
func HasNotifications() predicate.IntakeSession {
	return predicate.IntakeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NotificationsTable, NotificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotificationsWith applies the HasEdge predicate on the "notifications" edge with a given conditions (other predicates).
func HasNotificationsWith(preds ...predicate.Notification) predicate.IntakeSession {
	return predicate.IntakeSession(func(s *sql.Selector) {
		step := newNotificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.IntakeSession {
	return predicate.IntakeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.AuditLog) predicate.IntakeSession {
	return predicate.IntakeSession(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IntakeSession) predicate.IntakeSession {
	return predicate.IntakeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IntakeSession) predicate.IntakeSession {
	return predicate.IntakeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IntakeSession) predicate.IntakeSession {
	return predicate.IntakeSession(sql.NotPredicates(p))
}
