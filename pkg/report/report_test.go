package report

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/pkg/llm"
	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/screener"
)

func completedSession() *models.Session {
	pid := "patient-42"
	sess := &models.Session{
		Token:     "tok-report",
		PatientID: &pid,
		Phase:     models.PhaseReportGeneration,
		Status:    models.StatusActive,
		Symptoms: map[string]bool{
			screener.SymptomDepression: true,
			screener.SymptomSleep:      true,
		},
		ExtractedData: map[string]any{"sleep_hours": 4},
		ScreenerScores: map[string]*models.ScoredResult{
			screener.PHQ9: {
				ID: screener.PHQ9, Score: 14, MaxScore: 27,
				Severity:             screener.SeverityModerate,
				ClinicalSignificance: "Moderate depressive symptoms.",
			},
		},
		RiskFlags: []models.RiskFlag{{
			Kind: models.RiskSevereDepression, Source: screener.PHQ9,
			Detail: "threshold crossed", At: time.Now().UTC(),
		}},
	}
	sess.AppendMessage(models.RoleUser, "I have not slept properly in weeks.")
	sess.AppendMessage(models.RoleAssistant, "Tell me more about your sleep.")
	return sess
}

func narrativeJSON(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(narrative{
		ChiefComplaint:     "Insomnia with low mood for several weeks.",
		HistoryOfIllness:   "Patient reports progressive sleep disruption.",
		MentalStatusExam:   "Alert, cooperative, dysphoric affect.",
		SymptomSummary:     map[string]string{"sleep": "Severe initial insomnia."},
		RiskAssessment:     "Moderate depressive symptoms without acute risk.",
		ClinicalImpression: "Presentation consistent with a depressive episode.",
		RecommendedNext:    []string{"Full diagnostic evaluation", "Sleep hygiene review"},
	})
	require.NoError(t, err)
	return string(raw)
}

func TestSynthesize(t *testing.T) {
	ctx := context.Background()

	t.Run("merges narrative with session data", func(t *testing.T) {
		gw := llm.NewMockGateway()
		gw.QueueStructured(narrativeJSON(t))
		syn := NewSynthesizer(gw, 0.2, slog.Default())

		sess := completedSession()
		report, err := syn.Synthesize(ctx, sess)
		require.NoError(t, err)

		assert.Equal(t, sess.Token, report.SessionToken)
		assert.Equal(t, sess.PatientID, report.PatientID)
		assert.Equal(t, "Insomnia with low mood for several weeks.", report.ChiefComplaint)
		assert.Len(t, report.RecommendedNext, 2)
		assert.False(t, report.GeneratedAt.IsZero())

		// Scored data is copied from the session, never from the model.
		require.Contains(t, report.ScreenerResults, screener.PHQ9)
		assert.Equal(t, 14, report.ScreenerResults[screener.PHQ9].Score)
		assert.NotSame(t, sess.ScreenerScores[screener.PHQ9], report.ScreenerResults[screener.PHQ9])
		require.Len(t, report.RiskFlags, 1)
		assert.Equal(t, models.RiskSevereDepression, report.RiskFlags[0].Kind)
	})

	t.Run("prompt carries transcript and screener results", func(t *testing.T) {
		gw := llm.NewMockGateway()
		gw.QueueStructured(narrativeJSON(t))
		syn := NewSynthesizer(gw, 0.2, slog.Default())

		_, err := syn.Synthesize(ctx, completedSession())
		require.NoError(t, err)

		msgs := gw.LastMessages
		require.Len(t, msgs, 2)
		assert.Equal(t, models.RoleSystem, msgs[0].Role)
		assert.Contains(t, msgs[1].Content, "I have not slept properly in weeks.")
		assert.Contains(t, msgs[1].Content, screener.PHQ9)
		assert.Contains(t, msgs[1].Content, "14/27")
	})

	t.Run("in-band gateway error surfaces", func(t *testing.T) {
		gw := llm.NewMockGateway()
		gw.QueueStructured(`{"error":"model overloaded"}`)
		syn := NewSynthesizer(gw, 0.2, slog.Default())

		_, err := syn.Synthesize(ctx, completedSession())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model overloaded")
	})

	t.Run("malformed narrative surfaces", func(t *testing.T) {
		gw := llm.NewMockGateway()
		gw.QueueStructured(`{"chief_complaint": 7}`)
		syn := NewSynthesizer(gw, 0.2, slog.Default())

		_, err := syn.Synthesize(ctx, completedSession())
		require.Error(t, err)
	})
}

func TestRender(t *testing.T) {
	gw := llm.NewMockGateway()
	gw.QueueStructured(narrativeJSON(t))
	syn := NewSynthesizer(gw, 0.2, slog.Default())
	report, err := syn.Synthesize(context.Background(), completedSession())
	require.NoError(t, err)

	t.Run("clinician document is complete", func(t *testing.T) {
		doc, err := TextRenderer{}.Render(report, AudienceClinician)
		require.NoError(t, err)
		text := string(doc)
		assert.Contains(t, text, "CHIEF COMPLAINT")
		assert.Contains(t, text, screener.PHQ9)
		assert.Contains(t, text, "RISK FLAGS")
		assert.Contains(t, text, "RECOMMENDED NEXT STEPS")
	})

	t.Run("patient document omits raw scores", func(t *testing.T) {
		doc, err := TextRenderer{}.Render(report, AudiencePatient)
		require.NoError(t, err)
		text := string(doc)
		assert.NotContains(t, text, "14/27")
		assert.Contains(t, text, "988")
		assert.Contains(t, text, "Next steps")
	})

	t.Run("artifacts are base64", func(t *testing.T) {
		artifacts, err := Artifacts(TextRenderer{}, report)
		require.NoError(t, err)
		patient, err := base64.StdEncoding.DecodeString(artifacts.PatientPDF)
		require.NoError(t, err)
		assert.Contains(t, string(patient), "INTAKE SUMMARY")
		_, err = base64.StdEncoding.DecodeString(artifacts.ClinicianPDF)
		require.NoError(t, err)
	})

	t.Run("unknown audience rejected", func(t *testing.T) {
		_, err := TextRenderer{}.Render(report, Audience("insurer"))
		require.Error(t, err)
	})
}
