package models

import "time"

// RiskKind classifies an imminent-risk signal.
type RiskKind string

const (
	RiskHighSuicide       RiskKind = "high_suicide_risk"
	RiskSevereDepression  RiskKind = "severe_depression"
	RiskPsychosis         RiskKind = "psychosis"
	RiskMania             RiskKind = "mania"
	RiskSubstanceCrisis   RiskKind = "substance_crisis"
	RiskTraumaCrisis      RiskKind = "trauma_crisis"
	RiskHomicidalIdeation RiskKind = "homicidal_ideation"
	RiskEatingDisorder    RiskKind = "eating_disorder"
	RiskHarmfulDrinking   RiskKind = "harmful_drinking"
	RiskSubstanceUse      RiskKind = "substantial_substance_use"
	RiskPTSDPositive      RiskKind = "ptsd_positive"
)

// RiskFlag records that a configured risk threshold was crossed within a
// session. Source is either a screener id or a keyword class.
type RiskFlag struct {
	Kind   RiskKind  `json:"kind"`
	Source string    `json:"source"`
	Detail string    `json:"detail"`
	At     time.Time `json:"at"`
}

// NotificationPriority ranks delivery urgency.
type NotificationPriority string

const (
	PriorityUrgent NotificationPriority = "urgent"
	PriorityNormal NotificationPriority = "normal"
)

// DeliveryStatus tracks whether a notification reached an external channel.
// Rows start pending and move to sent or failed after the delivery attempt.
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

// Notification is an escalation record addressed to one admin user. It is
// persisted atomically with the session write that produced it; delivery to
// external channels is best-effort afterwards.
type Notification struct {
	ID           string               `json:"id"`
	AdminUserID  string               `json:"admin_user_id"`
	SessionToken string               `json:"session_token"`
	Priority     NotificationPriority `json:"priority"`
	Title        string               `json:"title"`
	Body         string               `json:"body"`
	Delivery     DeliveryStatus       `json:"delivery_status"`
	CreatedAt    time.Time            `json:"created_at"`
}

// AuditLog is an append-only audit record.
type AuditLog struct {
	ID           string         `json:"id"`
	SessionToken string         `json:"session_token"`
	EventType    string         `json:"event_type"`
	Detail       map[string]any `json:"detail,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Audit event types.
const (
	AuditSessionCreated    = "session_created"
	AuditSessionPaused     = "session_paused"
	AuditSessionResumed    = "session_resumed"
	AuditSessionCompleted  = "session_completed"
	AuditSessionAbandoned  = "session_abandoned"
	AuditHighRiskDetected  = "high_risk_detected"
	AuditInvariantViolated = "invariant_violated"
)

// AdminUser is the recipient of urgent notifications. Only active admins
// receive escalation fan-out.
type AdminUser struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}
