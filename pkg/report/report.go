// Package report synthesizes the final intake report from a completed
// conversation. Narrative sections come from a single structured LLM call;
// screener results and risk flags are copied from the session verbatim so
// scored data never passes through the model.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/meridianhealth/intake/pkg/llm"
	"github.com/meridianhealth/intake/pkg/models"
)

// narrative is the shape the model fills in. Field names and descriptions
// drive the reflected JSON schema sent with the structured call.
type narrative struct {
	ChiefComplaint     string            `json:"chief_complaint" jsonschema_description:"The patient's presenting concern in their own words, one or two sentences."`
	HistoryOfIllness   string            `json:"history_of_present_illness" jsonschema_description:"Narrative history of the present illness drawn from the transcript."`
	MentalStatusExam   string            `json:"mental_status_exam" jsonschema_description:"Mental status observations supported by the conversation."`
	SymptomSummary     map[string]string `json:"symptom_summary" jsonschema_description:"Per symptom domain, a one-sentence summary of what the patient reported."`
	RiskAssessment     string            `json:"risk_assessment" jsonschema_description:"Assessment of safety and risk, referencing screener findings where present."`
	ClinicalImpression string            `json:"clinical_impression" jsonschema_description:"Overall clinical impression. Descriptive only; no diagnoses."`
	RecommendedNext    []string          `json:"recommended_next_steps" jsonschema_description:"Concrete recommended next steps for the treating clinician."`
}

var narrativeSchema = llm.SchemaFor[narrative]()

// Synthesizer produces intake reports.
type Synthesizer struct {
	gateway     llm.Gateway
	temperature float64
	logger      *slog.Logger
}

// NewSynthesizer creates a report synthesizer. Temperature is kept low;
// report synthesis wants fidelity, not creativity.
func NewSynthesizer(gateway llm.Gateway, temperature float64, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		gateway:     gateway,
		temperature: temperature,
		logger:      logger.With("component", "report"),
	}
}

// Synthesize builds the report for a session that has finished its
// conversation. The session is read, never written.
func (s *Synthesizer) Synthesize(ctx context.Context, sess *models.Session) (*models.IntakeReport, error) {
	msgs := []models.Message{
		{Role: models.RoleSystem, Content: synthesisSystemPrompt},
		{Role: models.RoleUser, Content: synthesisInput(sess)},
	}
	raw, err := s.gateway.Structured(ctx, msgs, narrativeSchema, s.temperature)
	if err != nil {
		return nil, fmt.Errorf("report synthesis call: %w", err)
	}
	if msg, ok := llm.IsErrorObject(raw); ok {
		return nil, fmt.Errorf("report synthesis: %s", msg)
	}
	var n narrative
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("decoding report narrative: %w", err)
	}

	report := &models.IntakeReport{
		SessionToken:       sess.Token,
		PatientID:          sess.PatientID,
		ChiefComplaint:     n.ChiefComplaint,
		HistoryOfIllness:   n.HistoryOfIllness,
		MentalStatusExam:   n.MentalStatusExam,
		SymptomSummary:     n.SymptomSummary,
		ScreenerResults:    make(map[string]*models.ScoredResult, len(sess.ScreenerScores)),
		RiskAssessment:     n.RiskAssessment,
		RiskFlags:          append([]models.RiskFlag(nil), sess.RiskFlags...),
		ClinicalImpression: n.ClinicalImpression,
		RecommendedNext:    n.RecommendedNext,
		GeneratedAt:        time.Now().UTC(),
	}
	for id, r := range sess.ScreenerScores {
		snapshot := *r
		report.ScreenerResults[id] = &snapshot
	}
	s.logger.Info("report synthesized",
		"session_token", sess.Token,
		"screeners", len(report.ScreenerResults),
		"risk_flags", len(report.RiskFlags))
	return report, nil
}

const synthesisSystemPrompt = `You are a clinical documentation assistant. You are given the full transcript of a structured psychiatric intake conversation, the structured data extracted during it, and the scored results of any standardized screening instruments administered.

Write the narrative sections of the intake report. Ground every statement in the transcript or the screener results; never invent symptoms, history, or events. Use professional clinical language. Do not assign diagnoses; describe presentations. If a section cannot be supported by the material, say so briefly rather than filling it with speculation.`

// synthesisInput digests the session into the user message of the
// structured call.
func synthesisInput(sess *models.Session) string {
	var b strings.Builder

	b.WriteString("## Transcript\n\n")
	for _, m := range sess.History {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}

	if len(sess.ExtractedData) > 0 {
		b.WriteString("\n## Extracted data\n\n")
		if data, err := json.MarshalIndent(sess.ExtractedData, "", "  "); err == nil {
			b.Write(data)
			b.WriteString("\n")
		}
	}

	if len(sess.Symptoms) > 0 {
		b.WriteString("\n## Symptom domains detected\n\n")
		domains := make([]string, 0, len(sess.Symptoms))
		for d, present := range sess.Symptoms {
			if present {
				domains = append(domains, d)
			}
		}
		sort.Strings(domains)
		b.WriteString(strings.Join(domains, ", "))
		b.WriteString("\n")
	}

	if len(sess.ScreenerScores) > 0 {
		b.WriteString("\n## Screener results\n\n")
		ids := make([]string, 0, len(sess.ScreenerScores))
		for id := range sess.ScreenerScores {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			r := sess.ScreenerScores[id]
			fmt.Fprintf(&b, "- %s: %d/%d (%s). %s\n", id, r.Score, r.MaxScore, r.Severity, r.ClinicalSignificance)
		}
	}

	if len(sess.RiskFlags) > 0 {
		b.WriteString("\n## Risk flags\n\n")
		for _, f := range sess.RiskFlags {
			fmt.Fprintf(&b, "- %s (%s): %s\n", f.Kind, f.Source, f.Detail)
		}
	}
	return b.String()
}
