package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meridianhealth/intake/pkg/models"
)

const basePersona = `You are a warm, professional psychiatric intake assistant conducting a structured interview. You gather information; you never diagnose, never recommend medication, and never promise outcomes. Ask one focused question at a time. Use plain, compassionate language. If the patient describes intent to harm themselves or others, acknowledge it seriously and tell them their care team is being informed.`

// phaseGuidance steers the model through the interview structure. The
// engine, not the model, decides when a phase is complete.
var phaseGuidance = map[models.Phase]string{
	models.PhaseGreeting:             "Greet the patient by name if known, explain that this conversation helps their care team prepare, and invite them to share what brought them in.",
	models.PhaseChiefComplaint:       "Establish the chief complaint: what brought them in, when it started, and how it affects daily life.",
	models.PhaseMoodAssessment:       "Explore mood: depression, anxiety, irritability, mood swings, and recent changes. Ask about duration and triggers.",
	models.PhaseCognitiveAssessment:  "Explore cognition: concentration, memory, decision-making, intrusive or racing thoughts.",
	models.PhasePhysicalAssessment:   "Explore physical symptoms: sleep, appetite, energy, pain, and substance use including alcohol.",
	models.PhaseBehavioralAssessment: "Explore behavior: social withdrawal, work or school functioning, impulsivity, self-care.",
	models.PhaseMentalStatusExam:     "Observe and gently probe orientation, thought organization, perception (unusual experiences, voices), and insight.",
	models.PhaseScreening:            "Standardized questionnaires are in progress. Do not ask open questions.",
	models.PhaseReportGeneration:     "The interview is complete. Offer to answer questions about next steps and remind the patient they can send :finish for their summary.",
}

// promptMessages assembles the LLM conversation: persona and phase
// guidance as system context, then the committed history. Completed
// screener results are included so the model can reference them from the
// next turn onward.
func promptMessages(sess *models.Session, seed string) []models.Message {
	var sys strings.Builder
	sys.WriteString(basePersona)
	if sess.UserName != "" {
		fmt.Fprintf(&sys, "\n\nThe patient's name is %s.", sess.UserName)
	}
	if guidance, ok := phaseGuidance[sess.Phase]; ok {
		fmt.Fprintf(&sys, "\n\nCurrent interview focus: %s", guidance)
	}
	if len(sess.ScreenerScores) > 0 {
		sys.WriteString("\n\nCompleted screening results:")
		ids := make([]string, 0, len(sess.ScreenerScores))
		for id := range sess.ScreenerScores {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			r := sess.ScreenerScores[id]
			fmt.Fprintf(&sys, "\n- %s: %d/%d (%s)", id, r.Score, r.MaxScore, r.Severity)
		}
	}
	if seed != "" {
		fmt.Fprintf(&sys, "\n\n%s", seed)
	}

	messages := make([]models.Message, 0, len(sess.History)+1)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: sys.String()})
	messages = append(messages, sess.History...)
	return messages
}

func openingPrompt(sess *models.Session) string {
	if sess.UserName != "" {
		return fmt.Sprintf("Open the conversation now. Greet %s and invite them to share what brought them in today.", sess.UserName)
	}
	return "Open the conversation now. Greet the patient and invite them to share what brought them in today."
}

func resumePrompt(sess *models.Session) string {
	return fmt.Sprintf("The patient has just returned from a pause. Welcome them back briefly and pick the conversation up in the %s phase without repeating earlier questions.", sess.Phase)
}

func phaseEntryPrompt(sess *models.Session) string {
	return fmt.Sprintf("The patient chose to move on. Transition naturally into the %s focus area.", sess.Phase)
}

// nextAssessmentPhase returns the phase after p in interview order. False
// once the assessment sequence is exhausted.
func nextAssessmentPhase(p models.Phase) (models.Phase, bool) {
	for i, phase := range models.AssessmentPhases {
		if phase == p && i+1 < len(models.AssessmentPhases) {
			return models.AssessmentPhases[i+1], true
		}
	}
	return "", false
}
