// Package models defines the domain value types shared across the intake
// engine: sessions, conversation messages, stream frames, risk flags, and
// the final intake report.
package models

import (
	"time"
)

// Phase is a named stage of the intake state machine. Phases are traversed
// in a partial order and recorded in CompletedPhases on exit.
type Phase string

const (
	PhaseGreeting             Phase = "greeting"
	PhaseChiefComplaint       Phase = "chief_complaint"
	PhaseMoodAssessment       Phase = "mood_assessment"
	PhaseCognitiveAssessment  Phase = "cognitive_assessment"
	PhasePhysicalAssessment   Phase = "physical_assessment"
	PhaseBehavioralAssessment Phase = "behavioral_assessment"
	PhaseMentalStatusExam     Phase = "mental_status_exam"
	PhaseScreening            Phase = "screening"
	PhaseReportGeneration     Phase = "report_generation"
	PhaseCompleted            Phase = "completed"
)

// AssessmentPhases are the phases that must all be visited before screener
// enforcement can trigger, in canonical interview order.
var AssessmentPhases = []Phase{
	PhaseGreeting,
	PhaseChiefComplaint,
	PhaseMoodAssessment,
	PhaseCognitiveAssessment,
	PhasePhysicalAssessment,
	PhaseBehavioralAssessment,
	PhaseMentalStatusExam,
}

// SessionStatus is the lifecycle state of an intake session.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusPaused    SessionStatus = "paused"
	StatusCompleted SessionStatus = "completed"
	StatusAbandoned SessionStatus = "abandoned"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single conversation turn.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the full in-memory state of one intake conversation. The engine
// is the only writer; the store persists it under optimistic concurrency
// (Version increments on every commit).
type Session struct {
	Token     string  `json:"session_token"`
	PatientID *string `json:"patient_id,omitempty"`
	UserName  string  `json:"user_name,omitempty"`

	Phase           Phase          `json:"current_phase"`
	Status          SessionStatus  `json:"status"`
	History         []Message      `json:"conversation_history"`
	ExtractedData   map[string]any `json:"extracted_data"`
	Symptoms        map[string]bool `json:"symptoms_detected"`
	CompletedPhases []Phase        `json:"completed_phases"`

	ScreenersCompleted []string                 `json:"completed_screeners"`
	ScreenerScores     map[string]*ScoredResult `json:"screener_scores"`
	CurrentScreener    string                   `json:"current_screener,omitempty"`
	ScreenerProgress   []int                    `json:"screener_progress"`

	RiskFlags []RiskFlag `json:"risk_flags"`

	PausedAt    *time.Time `json:"paused_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ResumeToken string     `json:"resume_token,omitempty"`

	// TurnsSinceExtract counts user turns since the last structured
	// extraction; the engine extracts every few turns, not every turn.
	TurnsSinceExtract int `json:"turns_since_extract"`

	Version     int64      `json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AppendMessage appends a conversation turn. History is append-only;
// entries are never rewritten.
func (s *Session) AppendMessage(role Role, content string) {
	s.History = append(s.History, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
}

// HasCompletedPhase reports whether the named phase has been exited at
// least once.
func (s *Session) HasCompletedPhase(p Phase) bool {
	for _, c := range s.CompletedPhases {
		if c == p {
			return true
		}
	}
	return false
}

// MarkPhaseCompleted records a phase exit exactly once.
func (s *Session) MarkPhaseCompleted(p Phase) {
	if !s.HasCompletedPhase(p) {
		s.CompletedPhases = append(s.CompletedPhases, p)
	}
}

// HasCompletedScreener reports whether the screener has been scored.
func (s *Session) HasCompletedScreener(id string) bool {
	for _, c := range s.ScreenersCompleted {
		if c == id {
			return true
		}
	}
	return false
}

// SymptomCount returns the number of symptom domains flagged true.
func (s *Session) SymptomCount() int {
	n := 0
	for _, v := range s.Symptoms {
		if v {
			n++
		}
	}
	return n
}

// UserTurnCount returns the number of user messages in the history.
func (s *Session) UserTurnCount() int {
	n := 0
	for _, m := range s.History {
		if m.Role == RoleUser {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so cached snapshots cannot be mutated by the
// engine's working copy.
func (s *Session) Clone() *Session {
	c := *s
	c.History = append([]Message(nil), s.History...)
	c.CompletedPhases = append([]Phase(nil), s.CompletedPhases...)
	c.ScreenersCompleted = append([]string(nil), s.ScreenersCompleted...)
	c.ScreenerProgress = append([]int(nil), s.ScreenerProgress...)
	c.RiskFlags = append([]RiskFlag(nil), s.RiskFlags...)
	c.ExtractedData = make(map[string]any, len(s.ExtractedData))
	for k, v := range s.ExtractedData {
		c.ExtractedData[k] = v
	}
	c.Symptoms = make(map[string]bool, len(s.Symptoms))
	for k, v := range s.Symptoms {
		c.Symptoms[k] = v
	}
	c.ScreenerScores = make(map[string]*ScoredResult, len(s.ScreenerScores))
	for k, v := range s.ScreenerScores {
		r := *v
		c.ScreenerScores[k] = &r
	}
	return &c
}
