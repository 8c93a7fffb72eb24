package models

import "time"

// ScoredResult is the outcome of scoring one screener response vector.
// Scoring is pure: the same responses always produce an equal result.
type ScoredResult struct {
	ID                   string         `json:"id"`
	Score                int            `json:"score"`
	MaxScore             int            `json:"max_score"`
	Severity             string         `json:"severity"`
	Interpretation       string         `json:"interpretation"`
	ClinicalSignificance string         `json:"clinical_significance"`
	ItemScores           []int          `json:"item_scores"`
	Subscales            map[string]int `json:"subscales,omitempty"`
}

// IntakeReport is the structured clinical artifact synthesized at the end of
// a completed session. A completed session has exactly one report.
type IntakeReport struct {
	SessionToken       string                   `json:"session_token"`
	PatientID          *string                  `json:"patient_id,omitempty"`
	ChiefComplaint     string                   `json:"chief_complaint"`
	HistoryOfIllness   string                   `json:"history_of_present_illness"`
	MentalStatusExam   string                   `json:"mental_status_exam"`
	SymptomSummary     map[string]string        `json:"symptom_summary"`
	ScreenerResults    map[string]*ScoredResult `json:"screener_results"`
	RiskAssessment     string                   `json:"risk_assessment"`
	RiskFlags          []RiskFlag               `json:"risk_flags"`
	ClinicalImpression string                   `json:"clinical_impression"`
	RecommendedNext    []string                 `json:"recommended_next_steps"`
	GeneratedAt        time.Time                `json:"generated_at"`
}
