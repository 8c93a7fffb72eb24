// Package enforce decides which screeners a session still owes and scores
// completed response vectors. The enforcement gate encodes the clinical
// rule that standardized instruments follow a comprehensive symptom
// interview, never precede it.
package enforce

import (
	"fmt"
	"time"

	"github.com/meridianhealth/intake/pkg/metrics"
	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/screener"
)

// Thresholds gate screener enforcement. The numbers are clinical policy,
// kept configurable rather than hard-coded.
type Thresholds struct {
	// MinHistory is the minimum conversation_history length before
	// enforcement may trigger.
	MinHistory int
	// MinSymptoms is the minimum number of symptom domains flagged true.
	MinSymptoms int
}

// DefaultThresholds returns the shipped enforcement gate.
func DefaultThresholds() Thresholds {
	return Thresholds{MinHistory: 25, MinSymptoms: 5}
}

// Service owns screener ordering, the enforcement gate, and scoring.
type Service struct {
	registry   *screener.Registry
	thresholds Thresholds
}

// NewService creates the enforcement service.
func NewService(registry *screener.Registry, thresholds Thresholds) *Service {
	return &Service{registry: registry, thresholds: thresholds}
}

// Registry exposes the screener library for question rendering.
func (s *Service) Registry() *screener.Registry {
	return s.registry
}

// Pending returns the screeners required by the detected symptoms that have
// not been completed, preserving canonical priority order (safety
// screeners first).
func (s *Service) Pending(symptoms map[string]bool, completed []string) []string {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	var pending []string
	for _, id := range s.registry.RequiredFor(symptoms) {
		if !done[id] {
			pending = append(pending, id)
		}
	}
	return pending
}

// ShouldEnforce reports whether the session must enter the screening phase
// now. All conditions must hold: screeners pending, enough history, enough
// symptom domains, every assessment phase visited, and not already
// screening.
func (s *Service) ShouldEnforce(sess *models.Session) bool {
	if sess.Phase == models.PhaseScreening {
		return false
	}
	if len(sess.History) < s.thresholds.MinHistory {
		return false
	}
	if sess.SymptomCount() < s.thresholds.MinSymptoms {
		return false
	}
	for _, p := range models.AssessmentPhases {
		if !sess.HasCompletedPhase(p) && sess.Phase != p {
			return false
		}
	}
	return len(s.Pending(sess.Symptoms, sess.ScreenersCompleted)) > 0
}

// ScoreAndStore validates and scores a completed response vector, records
// the result on the session, and returns any risk flags the score crossed.
// The caller commits the session together with the escalation records so
// the flag and its audit trail are atomic.
func (s *Service) ScoreAndStore(sess *models.Session, screenerID string, responses []int) (*models.ScoredResult, []models.RiskFlag, error) {
	instrument, err := s.registry.Get(screenerID)
	if err != nil {
		return nil, nil, err
	}
	result, err := instrument.Score(responses)
	if err != nil {
		return nil, nil, err
	}

	if !sess.HasCompletedScreener(screenerID) {
		sess.ScreenersCompleted = append(sess.ScreenersCompleted, screenerID)
	}
	sess.ScreenerScores[screenerID] = result

	flags := riskFlagsFor(result)
	sess.RiskFlags = append(sess.RiskFlags, flags...)
	metrics.ScreenersScored.WithLabelValues(screenerID).Inc()
	return result, flags, nil
}

// riskThreshold defines one screener-score condition that raises a flag.
// Thresholds are data, not behavior.
type riskThreshold struct {
	screenerID string
	kind       models.RiskKind
	crossed    func(r *models.ScoredResult) bool
	detail     string
}

var riskThresholds = []riskThreshold{
	{
		screenerID: screener.CSSRS,
		kind:       models.RiskHighSuicide,
		crossed:    func(r *models.ScoredResult) bool { return r.Severity == screener.SeverityHigh },
		detail:     "C-SSRS indicates suicidal ideation with intent, plan, or recent behavior",
	},
	{
		screenerID: screener.PHQ9,
		kind:       models.RiskSevereDepression,
		crossed:    func(r *models.ScoredResult) bool { return r.Score >= 20 },
		detail:     "PHQ-9 total of 20 or above indicates severe depression",
	},
	{
		screenerID: screener.SCOFF,
		kind:       models.RiskEatingDisorder,
		crossed:    func(r *models.ScoredResult) bool { return r.Score >= 2 },
		detail:     "SCOFF positive screen for an eating disorder",
	},
	{
		screenerID: screener.AUDITC,
		kind:       models.RiskHarmfulDrinking,
		crossed:    func(r *models.ScoredResult) bool { return r.Score >= 8 },
		detail:     "AUDIT-C total of 8 or above indicates harmful drinking",
	},
	{
		screenerID: screener.DAST10,
		kind:       models.RiskSubstanceUse,
		crossed:    func(r *models.ScoredResult) bool { return r.Score >= 6 },
		detail:     "DAST-10 total of 6 or above indicates substantial drug-related problems",
	},
	{
		screenerID: screener.PCPTSD5,
		kind:       models.RiskPTSDPositive,
		crossed:    func(r *models.ScoredResult) bool { return r.Score >= 3 },
		detail:     "PC-PTSD-5 positive screen for probable PTSD",
	},
}

func riskFlagsFor(result *models.ScoredResult) []models.RiskFlag {
	var flags []models.RiskFlag
	for _, t := range riskThresholds {
		if t.screenerID != result.ID || !t.crossed(result) {
			continue
		}
		flags = append(flags, models.RiskFlag{
			Kind:   t.kind,
			Source: result.ID,
			Detail: fmt.Sprintf("%s (score %d/%d, severity %s)", t.detail, result.Score, result.MaxScore, result.Severity),
			At:     time.Now().UTC(),
		})
	}
	return flags
}
