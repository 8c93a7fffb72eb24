package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/meridianhealth/intake/pkg/llm"
	"github.com/meridianhealth/intake/pkg/models"
)

// extraction is the structured payload the model returns when asked to
// mine the recent transcript.
type extraction struct {
	ExtractedData map[string]any  `json:"extracted_data" jsonschema_description:"Key-value facts stated by the patient: demographics, chief complaint, duration, medications, functioning."`
	Symptoms      map[string]bool `json:"symptoms_detected" jsonschema_description:"Symptom domains with clear evidence in the transcript. Allowed keys: suicide_ideation, depression, anxiety, trauma, substance, eating, stress, worry, impulsivity, social_anxiety, mania, attention, sleep, low_wellbeing."`
	PhaseComplete bool            `json:"phase_complete" jsonschema_description:"True when the current interview focus has been adequately covered."`
}

var extractionSchema = llm.SchemaFor[extraction]()

const extractionPrompt = `Review the intake conversation so far and extract structured data. Only record what the patient actually stated; leave out anything uncertain. Mark a symptom domain true only with clear supporting evidence. Set phase_complete to true only if the current interview focus (%s) has been adequately covered by the patient's answers.`

// extract runs the structured extractor and folds the result into the
// session. Extraction failures are logged and skipped; the conversation
// never stalls on a mining call.
func (e *Engine) extract(ctx context.Context, sess *models.Session) {
	sess.TurnsSinceExtract = 0

	msgs := append(promptMessages(sess, ""), models.Message{
		Role:    models.RoleUser,
		Content: fmt.Sprintf(extractionPrompt, sess.Phase),
	})
	raw, err := e.gateway.Structured(ctx, msgs, extractionSchema, e.cfg.ExtractTemperature)
	if err != nil {
		e.logger.Error("extraction call failed", "session_token", sess.Token, "error", err)
		return
	}
	if msg, ok := llm.IsErrorObject(raw); ok {
		e.logger.Error("extraction rejected", "session_token", sess.Token, "error", msg)
		return
	}
	var ext extraction
	if err := json.Unmarshal(raw, &ext); err != nil {
		e.logger.Error("decoding extraction", "session_token", sess.Token, "error", err)
		return
	}

	for k, v := range ext.ExtractedData {
		sess.ExtractedData[k] = v
	}
	// Symptom detections only accumulate; a later extraction never
	// retracts an earlier finding.
	for domain, present := range ext.Symptoms {
		if present {
			sess.Symptoms[domain] = true
		}
	}
	if ext.PhaseComplete {
		sess.MarkPhaseCompleted(sess.Phase)
		if next, ok := nextAssessmentPhase(sess.Phase); ok {
			sess.Phase = next
		}
	}
	e.logger.Debug("extraction applied",
		"session_token", sess.Token,
		"symptom_domains", sess.SymptomCount(),
		"phase", sess.Phase)
}

// riskKeywordClasses are scanned on every free-text user turn, before and
// independent of any LLM call. Substring matching over lowercased text;
// deliberately high-recall, the clinician triages.
var riskKeywordClasses = []struct {
	kind     models.RiskKind
	class    string
	keywords []string
}{
	{
		kind:  models.RiskHighSuicide,
		class: "suicide_keywords",
		keywords: []string{
			"kill myself", "end my life", "want to die", "suicide",
			"better off dead", "not want to wake up", "take my own life",
		},
	},
	{
		kind:  models.RiskHomicidalIdeation,
		class: "violence_keywords",
		keywords: []string{
			"kill him", "kill her", "kill them", "hurt someone",
			"make them pay", "going to hurt",
		},
	},
	{
		kind:  models.RiskPsychosis,
		class: "psychosis_keywords",
		keywords: []string{
			"hearing voices", "voices tell me", "they are watching me",
			"reading my thoughts", "inserted thoughts",
		},
	},
	{
		kind:  models.RiskSubstanceCrisis,
		class: "overdose_keywords",
		keywords: []string{
			"overdose", "took too many pills", "drank myself",
		},
	},
}

// scanRiskKeywords returns at most one flag per keyword class for a single
// user turn.
func scanRiskKeywords(text string) []models.RiskFlag {
	lowered := strings.ToLower(text)
	var flags []models.RiskFlag
	for _, class := range riskKeywordClasses {
		for _, kw := range class.keywords {
			if strings.Contains(lowered, kw) {
				flags = append(flags, models.RiskFlag{
					Kind:   class.kind,
					Source: class.class,
					Detail: fmt.Sprintf("user turn matched %q", kw),
					At:     time.Now().UTC(),
				})
				break
			}
		}
	}
	return flags
}
