package enforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/screener"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(screener.NewRegistry(), DefaultThresholds())
}

// gateReadySession satisfies every enforcement condition except the ones a
// test perturbs: five symptom domains, all assessment phases completed,
// 25 history entries, no screeners completed.
func gateReadySession() *models.Session {
	sess := &models.Session{
		Token:  "tok-enforce",
		Phase:  models.PhaseMentalStatusExam,
		Status: models.StatusActive,
		Symptoms: map[string]bool{
			screener.SymptomDepression:      true,
			screener.SymptomAnxiety:         true,
			screener.SymptomSuicideIdeation: true,
			screener.SymptomSubstance:       true,
			screener.SymptomSleep:           true,
		},
		ScreenerScores: map[string]*models.ScoredResult{},
	}
	for _, p := range models.AssessmentPhases {
		sess.MarkPhaseCompleted(p)
	}
	for i := 0; i < 25; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		sess.AppendMessage(role, "turn")
	}
	return sess
}

func TestPending(t *testing.T) {
	svc := newService(t)

	t.Run("safety screener first", func(t *testing.T) {
		symptoms := map[string]bool{
			screener.SymptomDepression:      true,
			screener.SymptomSuicideIdeation: true,
		}
		pending := svc.Pending(symptoms, nil)
		require.NotEmpty(t, pending)
		assert.Equal(t, screener.CSSRS, pending[0])
		assert.Contains(t, pending, screener.PHQ9)
	})

	t.Run("completed screeners excluded", func(t *testing.T) {
		symptoms := map[string]bool{
			screener.SymptomDepression: true,
			screener.SymptomAnxiety:    true,
		}
		pending := svc.Pending(symptoms, []string{screener.PHQ9})
		assert.NotContains(t, pending, screener.PHQ9)
		assert.Contains(t, pending, screener.GAD7)
	})

	t.Run("false symptom values ignored", func(t *testing.T) {
		pending := svc.Pending(map[string]bool{screener.SymptomDepression: false}, nil)
		assert.Empty(t, pending)
	})
}

func TestShouldEnforce(t *testing.T) {
	svc := newService(t)

	t.Run("all conditions met", func(t *testing.T) {
		assert.True(t, svc.ShouldEnforce(gateReadySession()))
	})

	t.Run("history below threshold", func(t *testing.T) {
		sess := gateReadySession()
		sess.History = sess.History[:20]
		assert.False(t, svc.ShouldEnforce(sess))

		for len(sess.History) < 25 {
			sess.AppendMessage(models.RoleUser, "more")
		}
		assert.True(t, svc.ShouldEnforce(sess))
	})

	t.Run("too few symptom domains", func(t *testing.T) {
		sess := gateReadySession()
		sess.Symptoms = map[string]bool{
			screener.SymptomDepression: true,
			screener.SymptomAnxiety:    true,
		}
		assert.False(t, svc.ShouldEnforce(sess))
	})

	t.Run("assessment phase not yet visited", func(t *testing.T) {
		sess := gateReadySession()
		sess.CompletedPhases = nil
		assert.False(t, svc.ShouldEnforce(sess))
	})

	t.Run("current phase counts as visited", func(t *testing.T) {
		sess := gateReadySession()
		sess.CompletedPhases = sess.CompletedPhases[:len(sess.CompletedPhases)-1]
		sess.Phase = models.PhaseMentalStatusExam
		assert.True(t, svc.ShouldEnforce(sess))
	})

	t.Run("already screening", func(t *testing.T) {
		sess := gateReadySession()
		sess.Phase = models.PhaseScreening
		assert.False(t, svc.ShouldEnforce(sess))
	})

	t.Run("nothing pending", func(t *testing.T) {
		sess := gateReadySession()
		for _, id := range svc.Pending(sess.Symptoms, nil) {
			sess.ScreenersCompleted = append(sess.ScreenersCompleted, id)
		}
		assert.False(t, svc.ShouldEnforce(sess))
	})

	t.Run("custom thresholds", func(t *testing.T) {
		loose := NewService(screener.NewRegistry(), Thresholds{MinHistory: 4, MinSymptoms: 1})
		sess := gateReadySession()
		sess.History = sess.History[:4]
		sess.Symptoms = map[string]bool{screener.SymptomDepression: true}
		assert.True(t, loose.ShouldEnforce(sess))
	})
}

func TestScoreAndStore(t *testing.T) {
	svc := newService(t)

	t.Run("records score and completion", func(t *testing.T) {
		sess := gateReadySession()
		responses := []int{1, 1, 0, 1, 0, 1, 0, 1, 0}
		result, flags, err := svc.ScoreAndStore(sess, screener.PHQ9, responses)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Score)
		assert.Equal(t, screener.SeverityMild, result.Severity)
		assert.Empty(t, flags)
		assert.True(t, sess.HasCompletedScreener(screener.PHQ9))
		assert.Same(t, result, sess.ScreenerScores[screener.PHQ9])
		assert.Empty(t, sess.RiskFlags)
	})

	t.Run("invalid vector leaves session untouched", func(t *testing.T) {
		sess := gateReadySession()
		_, _, err := svc.ScoreAndStore(sess, screener.PHQ9, []int{1, 2})
		require.Error(t, err)
		var verr *screener.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.False(t, sess.HasCompletedScreener(screener.PHQ9))
		assert.Empty(t, sess.ScreenerScores)
	})

	t.Run("unknown screener", func(t *testing.T) {
		sess := gateReadySession()
		_, _, err := svc.ScoreAndStore(sess, "MMPI-2", []int{0})
		require.Error(t, err)
	})
}

func TestRiskThresholds(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name      string
		screener  string
		responses []int
		wantKind  models.RiskKind
	}{
		{"cssrs high", screener.CSSRS, []int{1, 1, 1, 1, 1, 1}, models.RiskHighSuicide},
		{"phq9 severe", screener.PHQ9, []int{3, 3, 3, 3, 3, 3, 2, 0, 0}, models.RiskSevereDepression},
		{"scoff positive", screener.SCOFF, []int{1, 1, 0, 0, 0}, models.RiskEatingDisorder},
		{"auditc harmful", screener.AUDITC, []int{4, 2, 2}, models.RiskHarmfulDrinking},
		{"dast10 substantial", screener.DAST10, []int{1, 1, 0, 1, 1, 1, 1, 0, 0, 0}, models.RiskSubstanceUse},
		{"pcptsd5 positive", screener.PCPTSD5, []int{1, 1, 1, 0, 0}, models.RiskPTSDPositive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := gateReadySession()
			_, flags, err := svc.ScoreAndStore(sess, tc.screener, tc.responses)
			require.NoError(t, err)
			require.Len(t, flags, 1)
			assert.Equal(t, tc.wantKind, flags[0].Kind)
			assert.Equal(t, tc.screener, flags[0].Source)
			assert.NotEmpty(t, flags[0].Detail)
			assert.Equal(t, flags, sess.RiskFlags)
		})
	}

	t.Run("below threshold raises nothing", func(t *testing.T) {
		sess := gateReadySession()
		_, flags, err := svc.ScoreAndStore(sess, screener.PHQ9, []int{3, 3, 3, 3, 3, 3, 1, 0, 0})
		require.NoError(t, err)
		assert.Empty(t, flags)
	})

	t.Run("cssrs moderate is not high risk", func(t *testing.T) {
		sess := gateReadySession()
		_, flags, err := svc.ScoreAndStore(sess, screener.CSSRS, []int{1, 1, 1, 0, 0, 0})
		require.NoError(t, err)
		assert.Empty(t, flags)
	})
}
