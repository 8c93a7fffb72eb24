package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/pkg/enforce"
	"github.com/meridianhealth/intake/pkg/escalate"
	"github.com/meridianhealth/intake/pkg/llm"
	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/report"
	"github.com/meridianhealth/intake/pkg/screener"
	"github.com/meridianhealth/intake/pkg/store"
)

type fixture struct {
	engine  *Engine
	store   *store.Memory
	gateway *llm.MockGateway
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	mem := store.NewMemory()
	mem.SetAdmins([]models.AdminUser{
		{ID: "admin-1", Email: "oncall@clinic.example", Active: true},
		{ID: "admin-2", Email: "supervisor@clinic.example", Active: true},
	})
	gw := llm.NewMockGateway()
	logger := slog.Default()
	esc := escalate.NewEscalator(mem, logger)
	eng := New(
		mem,
		gw,
		enforce.NewService(screener.NewRegistry(), enforce.DefaultThresholds()),
		esc,
		report.NewSynthesizer(gw, 0.2, logger),
		report.TextRenderer{},
		cfg,
		logger,
	)
	return &fixture{engine: eng, store: mem, gateway: gw}
}

func drain(t *testing.T, frames <-chan models.Frame) []models.Frame {
	t.Helper()
	var out []models.Frame
	deadline := time.After(5 * time.Second)
	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return out
			}
			out = append(out, frame)
		case <-deadline:
			t.Fatal("stream did not close in time")
		}
	}
}

func assistantText(frames []models.Frame) string {
	var s string
	for _, f := range frames {
		s += f.Content
	}
	return s
}

// startSession creates a session and drains the opening stream.
func startSession(t *testing.T, fx *fixture) *models.Session {
	t.Helper()
	fx.gateway.QueueStream("Hello, ", "what brings you in today?")
	sess, frames, err := fx.engine.Start(context.Background(), nil, "Sam")
	require.NoError(t, err)
	drain(t, frames)
	return sess
}

// mutate loads, edits, and commits a session directly through the store,
// bypassing the engine, to arrange preconditions.
// flakyStore fails commits on demand so error paths can be driven.
type flakyStore struct {
	*store.Memory
	failCommits bool
}

func (s *flakyStore) Commit(ctx context.Context, sess *models.Session, fx *store.SideEffects) error {
	if s.failCommits {
		return store.ErrConflict
	}
	return s.Memory.Commit(ctx, sess, fx)
}

func mutate(t *testing.T, fx *fixture, token string, edit func(*models.Session)) {
	t.Helper()
	sess, err := fx.store.Load(context.Background(), token)
	require.NoError(t, err)
	edit(sess)
	require.NoError(t, fx.store.Commit(context.Background(), sess, nil))
}

// gateReady arranges a session that satisfies the enforcement gate with
// PHQ-9 and GAD-7 pending.
func gateReady(t *testing.T, fx *fixture, token string) {
	t.Helper()
	mutate(t, fx, token, func(s *models.Session) {
		s.Symptoms = map[string]bool{
			screener.SymptomDepression: true,
			screener.SymptomAnxiety:    true,
			screener.SymptomStress:     true,
			screener.SymptomWorry:      true,
			screener.SymptomSleep:      true,
		}
		s.Phase = models.PhaseMentalStatusExam
		s.CompletedPhases = nil
		for _, p := range models.AssessmentPhases {
			s.CompletedPhases = append(s.CompletedPhases, p)
		}
		for len(s.History) < 24 {
			s.AppendMessage(models.RoleAssistant, "filler")
		}
	})
}

func TestStart(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.gateway.QueueStream("Hello Sam. ", "What brings you in today?")

	sess, frames, err := fx.engine.Start(context.Background(), nil, "Sam")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, models.PhaseGreeting, sess.Phase)
	assert.Equal(t, models.StatusActive, sess.Status)

	collected := drain(t, frames)
	require.NotEmpty(t, collected)
	last := collected[len(collected)-1]
	assert.True(t, last.Done)

	// Opening turn is committed to history after the stream completes.
	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	require.Len(t, stored.History, 1)
	assert.Equal(t, models.RoleAssistant, stored.History[0].Role)
	assert.Equal(t, "Hello Sam. What brings you in today?", stored.History[0].Content)

	logs := fx.store.AuditLogs()
	require.NotEmpty(t, logs)
	assert.Equal(t, models.AuditSessionCreated, logs[0].EventType)
}

func TestChatConversationTurn(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	fx.gateway.QueueStream("I'm sorry to hear that. ", "How long has this been going on?")
	frames, err := fx.engine.Chat(context.Background(), sess.Token, "I've been feeling hopeless lately.")
	require.NoError(t, err)
	collected := drain(t, frames)

	assert.True(t, collected[len(collected)-1].Done)
	assert.Equal(t, "I'm sorry to hear that. How long has this been going on?", assistantText(collected))

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	require.Len(t, stored.History, 3)
	assert.Equal(t, models.RoleUser, stored.History[1].Role)
	assert.Equal(t, models.RoleAssistant, stored.History[2].Role)
	// First substantive turn moved greeting to chief complaint.
	assert.Equal(t, models.PhaseChiefComplaint, stored.Phase)
	assert.True(t, stored.HasCompletedPhase(models.PhaseGreeting))
}

func TestChatRejectsInactiveSession(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	_, _, err := fx.engine.Pause(context.Background(), sess.Token)
	require.NoError(t, err)

	_, err = fx.engine.Chat(context.Background(), sess.Token, "hello?")
	assert.ErrorIs(t, err, ErrNotActive)

	_, err = fx.engine.Chat(context.Background(), "no-such-token", "hello?")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = fx.engine.Chat(context.Background(), sess.Token, "   ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestKeywordEscalation(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	fx.gateway.QueueStream("Thank you for telling me. Your care team is being informed.")
	frames, err := fx.engine.Chat(context.Background(), sess.Token, "Honestly I just want to die.")
	require.NoError(t, err)
	drain(t, frames)

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	require.Len(t, stored.RiskFlags, 1)
	assert.Equal(t, models.RiskHighSuicide, stored.RiskFlags[0].Kind)
	assert.Equal(t, "suicide_keywords", stored.RiskFlags[0].Source)

	// One urgent notification per active admin, atomic with the turn.
	notifications := fx.store.Notifications()
	require.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Equal(t, models.PriorityUrgent, n.Priority)
		assert.Equal(t, sess.Token, n.SessionToken)
	}
	var riskAudits int
	for _, a := range fx.store.AuditLogs() {
		if a.EventType == models.AuditHighRiskDetected {
			riskAudits++
		}
	}
	assert.Equal(t, 1, riskAudits)
}

func TestStreamFailureRetainsUserTurn(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	fx.gateway.QueueStream(llm.ErrorPrefix + "provider unavailable")
	frames, err := fx.engine.Chat(context.Background(), sess.Token, "I can't sleep at night.")
	require.NoError(t, err)
	collected := drain(t, frames)

	last := collected[len(collected)-1]
	assert.True(t, last.Done)
	assert.Equal(t, "provider unavailable", last.Error)

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	// User turn committed before streaming; failed assistant turn discarded.
	require.Len(t, stored.History, 2)
	assert.Equal(t, models.RoleUser, stored.History[1].Role)
}

func TestStreamCancellationDiscardsPartialTurn(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	fx.gateway.StreamGate = make(chan struct{})
	fx.gateway.QueueStream("one ", "two ", "three ", "four")

	ctx, cancel := context.WithCancel(context.Background())
	frames, err := fx.engine.Chat(ctx, sess.Token, "Let me explain everything.")
	require.NoError(t, err)

	// Consume half the fragments, then drop the stream.
	fx.gateway.StreamGate <- struct{}{}
	<-frames
	fx.gateway.StreamGate <- struct{}{}
	<-frames
	cancel()
	drain(t, frames)
	fx.gateway.StreamGate = nil

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	// The user turn survives; the partial assistant turn does not.
	require.Len(t, stored.History, 2)
	assert.Equal(t, models.RoleUser, stored.History[1].Role)
	assert.Equal(t, "Let me explain everything.", stored.History[1].Content)

	// The next chat proceeds as if the cancelled turn never streamed.
	fx.gateway.QueueStream("Go on.")
	next, err := fx.engine.Chat(context.Background(), sess.Token, "As I was saying.")
	require.NoError(t, err)
	collected := drain(t, next)
	assert.True(t, collected[len(collected)-1].Done)
}

func TestChatDeadline(t *testing.T) {
	fx := newFixture(t, Config{ChatDeadline: 50 * time.Millisecond})
	sess := startSession(t, fx)

	// Gate never opens: the stream stalls until the deadline cancels it.
	fx.gateway.StreamGate = make(chan struct{})
	fx.gateway.QueueStream("never ", "delivered")

	frames, err := fx.engine.Chat(context.Background(), sess.Token, "Are you there?")
	require.NoError(t, err)
	collected := drain(t, frames)
	fx.gateway.StreamGate = nil

	// The stream must not end bare: the timeout surfaces as a terminal
	// error frame even though the turn context is already expired.
	require.NotEmpty(t, collected)
	last := collected[len(collected)-1]
	assert.True(t, last.Done)
	assert.Equal(t, context.DeadlineExceeded.Error(), last.Error)

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	require.Len(t, stored.History, 2)
	assert.Equal(t, models.RoleUser, stored.History[1].Role)
}

func TestPauseResumeRoundTrip(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	for i := 0; i < 3; i++ {
		fx.gateway.QueueStream("Tell me more.")
		frames, err := fx.engine.Chat(context.Background(), sess.Token, fmt.Sprintf("detail number %d", i+1))
		require.NoError(t, err)
		drain(t, frames)
	}
	before, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)

	resumeToken, expiresAt, err := fx.engine.Pause(context.Background(), sess.Token)
	require.NoError(t, err)
	require.NotEmpty(t, resumeToken)

	paused, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaused, paused.Status)
	require.NotNil(t, paused.PausedAt)
	assert.Equal(t, paused.PausedAt.Add(24*time.Hour), expiresAt)

	fx.gateway.QueueStream("Welcome back.")
	resumed, frames, err := fx.engine.Resume(context.Background(), resumeToken)
	require.NoError(t, err)
	drain(t, frames)

	assert.Equal(t, sess.Token, resumed.Token)
	assert.Equal(t, models.StatusActive, resumed.Status)
	assert.Nil(t, resumed.PausedAt)
	assert.Empty(t, resumed.ResumeToken)
	assert.Equal(t, before.Phase, resumed.Phase)
	assert.Equal(t, before.History, resumed.History)
	assert.Equal(t, before.ExtractedData, resumed.ExtractedData)
}

func TestResumeExpired(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	resumeToken, _, err := fx.engine.Pause(context.Background(), sess.Token)
	require.NoError(t, err)

	mutate(t, fx, sess.Token, func(s *models.Session) {
		past := time.Now().Add(-time.Minute).UTC()
		s.ExpiresAt = &past
	})

	_, _, err = fx.engine.Resume(context.Background(), resumeToken)
	require.ErrorIs(t, err, store.ErrExpired)

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbandoned, stored.Status)

	_, _, err = fx.engine.Resume(context.Background(), "bogus")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPauseDirective(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	frames, err := fx.engine.Chat(context.Background(), sess.Token, ":pause")
	require.NoError(t, err)
	collected := drain(t, frames)

	require.Len(t, collected, 1)
	assert.True(t, collected[0].Done)
	assert.Contains(t, collected[0].Content, "paused")

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaused, stored.Status)
	require.NotNil(t, stored.ExpiresAt)
	assert.Contains(t, collected[0].Content, stored.ResumeToken)
}

func TestScreeningEnforcement(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)
	gateReady(t, fx, sess.Token)

	// The 25th history entry is this user turn; the gate trips and the
	// engine presents the first pending screener instead of calling the
	// model.
	frames, err := fx.engine.Chat(context.Background(), sess.Token, "That's everything I can think of.")
	require.NoError(t, err)
	collected := drain(t, frames)

	require.GreaterOrEqual(t, len(collected), 2)
	first := collected[0]
	assert.Contains(t, first.Content, "Question 1")
	require.NotEmpty(t, first.Options)
	assert.True(t, collected[len(collected)-1].Done)
	assert.Equal(t, 1, fx.gateway.StreamCalls) // only the opening turn streamed

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseScreening, stored.Phase)
	assert.Equal(t, screener.PHQ9, stored.CurrentScreener)
}

func TestScreenerMicroProtocol(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)
	mutate(t, fx, sess.Token, func(s *models.Session) {
		s.Phase = models.PhaseScreening
		s.CurrentScreener = screener.PHQ9
		s.Symptoms = map[string]bool{screener.SymptomDepression: true}
	})

	t.Run("invalid answer reprompts without advancing", func(t *testing.T) {
		frames, err := fx.engine.Chat(context.Background(), sess.Token, "seven")
		require.NoError(t, err)
		collected := drain(t, frames)
		require.Len(t, collected, 1)
		assert.Contains(t, collected[0].Content, "listed options")
		require.NotEmpty(t, collected[0].Options)

		stored, err := fx.store.Load(context.Background(), sess.Token)
		require.NoError(t, err)
		assert.Empty(t, stored.ScreenerProgress)
		require.Len(t, stored.History, 1) // rejected answers are not committed
	})

	t.Run("out of range integer reprompts", func(t *testing.T) {
		frames, err := fx.engine.Chat(context.Background(), sess.Token, "9")
		require.NoError(t, err)
		collected := drain(t, frames)
		assert.Contains(t, collected[0].Content, "listed options")
	})

	t.Run("valid answers advance to completion", func(t *testing.T) {
		// 2 on each of the 9 items: total 18, moderately severe, below
		// the severe-depression risk threshold.
		for i := 0; i < 9; i++ {
			frames, err := fx.engine.Chat(context.Background(), sess.Token, "2")
			require.NoError(t, err)
			collected := drain(t, frames)
			require.NotEmpty(t, collected)
			assert.True(t, collected[len(collected)-1].Done)
		}

		stored, err := fx.store.Load(context.Background(), sess.Token)
		require.NoError(t, err)
		assert.Empty(t, stored.CurrentScreener)
		assert.Empty(t, stored.ScreenerProgress)
		require.True(t, stored.HasCompletedScreener(screener.PHQ9))
		result := stored.ScreenerScores[screener.PHQ9]
		require.NotNil(t, result)
		assert.Equal(t, 18, result.Score)
		assert.Equal(t, screener.SeverityModeratelySevere, result.Severity)
		assert.Empty(t, stored.RiskFlags)
		// Pending is empty, so screening is over.
		assert.Equal(t, models.PhaseReportGeneration, stored.Phase)
		assert.True(t, stored.HasCompletedPhase(models.PhaseScreening))
		// The interpretation line is in history.
		last := stored.History[len(stored.History)-1]
		assert.Equal(t, models.RoleAssistant, last.Role)
		assert.Contains(t, last.Content, "18")
	})
}

func TestScreenerChainAndEscalation(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)
	mutate(t, fx, sess.Token, func(s *models.Session) {
		s.Phase = models.PhaseScreening
		s.CurrentScreener = screener.CSSRS
		s.Symptoms = map[string]bool{
			screener.SymptomSuicideIdeation: true,
			screener.SymptomDepression:      true,
		}
	})

	// All six C-SSRS items endorsed: severity high, flag raised.
	var collected []models.Frame
	for i := 0; i < 6; i++ {
		frames, err := fx.engine.Chat(context.Background(), sess.Token, "1")
		require.NoError(t, err)
		collected = drain(t, frames)
	}

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	require.True(t, stored.HasCompletedScreener(screener.CSSRS))
	require.Len(t, stored.RiskFlags, 1)
	assert.Equal(t, models.RiskHighSuicide, stored.RiskFlags[0].Kind)

	// Escalation landed atomically with the scoring commit.
	assert.Len(t, fx.store.Notifications(), 2)

	// PHQ-9 is still pending, so the protocol rolls into it directly.
	assert.Equal(t, screener.PHQ9, stored.CurrentScreener)
	var sawNextQuestion bool
	for _, f := range collected {
		if len(f.Options) > 0 {
			sawNextQuestion = true
		}
	}
	assert.True(t, sawNextQuestion)
}

func TestSkipDirective(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	t.Run("advances past a free-text phase", func(t *testing.T) {
		mutate(t, fx, sess.Token, func(s *models.Session) {
			s.Phase = models.PhaseMoodAssessment
		})
		fx.gateway.QueueStream("Moving on, then.")
		frames, err := fx.engine.Chat(context.Background(), sess.Token, ":skip")
		require.NoError(t, err)
		drain(t, frames)

		stored, err := fx.store.Load(context.Background(), sess.Token)
		require.NoError(t, err)
		assert.Equal(t, models.PhaseCognitiveAssessment, stored.Phase)
		assert.True(t, stored.HasCompletedPhase(models.PhaseMoodAssessment))
	})

	t.Run("rejected during a screener", func(t *testing.T) {
		mutate(t, fx, sess.Token, func(s *models.Session) {
			s.Phase = models.PhaseScreening
			s.CurrentScreener = screener.PHQ9
		})
		frames, err := fx.engine.Chat(context.Background(), sess.Token, ":skip")
		require.NoError(t, err)
		collected := drain(t, frames)
		require.Len(t, collected, 1)
		assert.NotEmpty(t, collected[0].Error)
	})
}

func TestFinish(t *testing.T) {
	narrativeJSON := `{
		"chief_complaint": "Low mood and poor sleep.",
		"history_of_present_illness": "Several weeks of worsening symptoms.",
		"mental_status_exam": "Cooperative, dysphoric.",
		"symptom_summary": {"sleep": "Initial insomnia."},
		"risk_assessment": "No acute risk identified.",
		"clinical_impression": "Depressive presentation.",
		"recommended_next_steps": ["Clinician evaluation"]
	}`

	t.Run("completes and returns artifacts", func(t *testing.T) {
		fx := newFixture(t, Config{})
		sess := startSession(t, fx)

		fx.gateway.QueueStructured(narrativeJSON)
		frame, err := fx.engine.Finish(context.Background(), sess.Token)
		require.NoError(t, err)
		assert.True(t, frame.Done)
		require.NotNil(t, frame.Artifacts)
		assert.NotEmpty(t, frame.Artifacts.PatientPDF)
		assert.NotEmpty(t, frame.Artifacts.ClinicianPDF)

		stored, err := fx.store.Load(context.Background(), sess.Token)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, stored.Status)
		assert.Equal(t, models.PhaseCompleted, stored.Phase)
		require.NotNil(t, stored.CompletedAt)

		rep := fx.store.Report(sess.Token)
		require.NotNil(t, rep)
		assert.Equal(t, "Low mood and poor sleep.", rep.ChiefComplaint)

		// No further turns on a completed session.
		_, err = fx.engine.Chat(context.Background(), sess.Token, "one more thing")
		assert.ErrorIs(t, err, ErrNotActive)
		_, err = fx.engine.Finish(context.Background(), sess.Token)
		assert.ErrorIs(t, err, ErrNotActive)
	})

	t.Run("safety screener commit failure aborts finish", func(t *testing.T) {
		mem := store.NewMemory()
		flaky := &flakyStore{Memory: mem}
		gw := llm.NewMockGateway()
		logger := slog.Default()
		eng := New(
			flaky,
			gw,
			enforce.NewService(screener.NewRegistry(), enforce.DefaultThresholds()),
			escalate.NewEscalator(flaky, logger),
			report.NewSynthesizer(gw, 0.2, logger),
			report.TextRenderer{},
			Config{},
			logger,
		)

		gw.QueueStream("What brings you in?")
		sess, frames, err := eng.Start(context.Background(), nil, "")
		require.NoError(t, err)
		drain(t, frames)

		loaded, err := mem.Load(context.Background(), sess.Token)
		require.NoError(t, err)
		loaded.RiskFlags = []models.RiskFlag{{
			Kind: models.RiskHighSuicide, Source: "suicide_keywords",
			Detail: "matched", At: time.Now().UTC(),
		}}
		require.NoError(t, mem.Commit(context.Background(), loaded, nil))

		// The session must not complete when the safety screener cannot
		// be durably inserted.
		flaky.failCommits = true
		_, err = eng.Finish(context.Background(), sess.Token)
		require.ErrorIs(t, err, store.ErrConflict)

		stored, err := mem.Load(context.Background(), sess.Token)
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, stored.Status)
		assert.Empty(t, stored.CurrentScreener)
		assert.Nil(t, mem.Report(sess.Token))
	})

	t.Run("finish directive inserts safety screener", func(t *testing.T) {
		fx := newFixture(t, Config{})
		sess := startSession(t, fx)
		mutate(t, fx, sess.Token, func(s *models.Session) {
			s.RiskFlags = []models.RiskFlag{{
				Kind: models.RiskHighSuicide, Source: "suicide_keywords",
				Detail: "matched", At: time.Now().UTC(),
			}}
		})

		frames, err := fx.engine.Chat(context.Background(), sess.Token, ":finish")
		require.NoError(t, err)
		collected := drain(t, frames)
		require.Len(t, collected, 1)
		assert.Contains(t, collected[0].Content, "safety questions")
		require.NotEmpty(t, collected[0].Options)

		stored, err := fx.store.Load(context.Background(), sess.Token)
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, stored.Status)
		assert.Equal(t, models.PhaseScreening, stored.Phase)
		assert.Equal(t, screener.CSSRS, stored.CurrentScreener)

		// Denying the items clears the safety check; :finish now completes.
		for i := 0; i < 6; i++ {
			frames, err := fx.engine.Chat(context.Background(), sess.Token, "0")
			require.NoError(t, err)
			drain(t, frames)
		}
		fx.gateway.QueueStructured(narrativeJSON)
		frames, err = fx.engine.Chat(context.Background(), sess.Token, ":finish")
		require.NoError(t, err)
		collected = drain(t, frames)
		require.Len(t, collected, 1)
		require.NotNil(t, collected[0].Artifacts)
	})
}

func TestExtraction(t *testing.T) {
	fx := newFixture(t, Config{ExtractEvery: 1})
	sess := startSession(t, fx)

	fx.gateway.QueueStructured(`{
		"extracted_data": {"chief_complaint": "insomnia", "duration": "3 weeks"},
		"symptoms_detected": {"sleep": true, "depression": true, "anxiety": false},
		"phase_complete": true
	}`)
	fx.gateway.QueueStream("Thank you for sharing.")
	frames, err := fx.engine.Chat(context.Background(), sess.Token, "I haven't slept in three weeks and I feel down.")
	require.NoError(t, err)
	drain(t, frames)

	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "insomnia", stored.ExtractedData["chief_complaint"])
	assert.True(t, stored.Symptoms["sleep"])
	assert.True(t, stored.Symptoms["depression"])
	// Negative detections are not recorded.
	_, present := stored.Symptoms["anxiety"]
	assert.False(t, present)
	assert.Equal(t, 0, stored.TurnsSinceExtract)
	// phase_complete advanced past chief complaint.
	assert.True(t, stored.HasCompletedPhase(models.PhaseChiefComplaint))
	assert.Equal(t, models.PhaseMoodAssessment, stored.Phase)

	t.Run("extraction failure does not fail the turn", func(t *testing.T) {
		fx.gateway.QueueStructured(`{"error": "model overloaded"}`)
		fx.gateway.QueueStream("Go on.")
		frames, err := fx.engine.Chat(context.Background(), sess.Token, "There is more to tell.")
		require.NoError(t, err)
		collected := drain(t, frames)
		assert.True(t, collected[len(collected)-1].Done)
	})
}

func TestScanRiskKeywords(t *testing.T) {
	cases := []struct {
		text string
		want []models.RiskKind
	}{
		{"I want to KILL MYSELF", []models.RiskKind{models.RiskHighSuicide}},
		{"sometimes I think about suicide and hearing voices", []models.RiskKind{models.RiskHighSuicide, models.RiskPsychosis}},
		{"I love my kilt", nil},
		{"I took too many pills last night", []models.RiskKind{models.RiskSubstanceCrisis}},
	}
	for _, tc := range cases {
		flags := scanRiskKeywords(tc.text)
		var kinds []models.RiskKind
		for _, f := range flags {
			kinds = append(kinds, f.Kind)
		}
		assert.Equal(t, tc.want, kinds, tc.text)
	}
}

func TestSerializedTurnsPerSession(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)

	// Two sequential turns must interleave cleanly; history order matches
	// call order.
	for i := 0; i < 2; i++ {
		fx.gateway.QueueStream("Noted.")
		frames, err := fx.engine.Chat(context.Background(), sess.Token, strconv.Itoa(i))
		require.NoError(t, err)
		drain(t, frames)
	}
	stored, err := fx.store.Load(context.Background(), sess.Token)
	require.NoError(t, err)
	var userTurns []string
	for _, m := range stored.History {
		if m.Role == models.RoleUser {
			userTurns = append(userTurns, m.Content)
		}
	}
	assert.Equal(t, []string{"0", "1"}, userTurns)
}

func TestScreenerScoresVisibleToNextPrompt(t *testing.T) {
	fx := newFixture(t, Config{})
	sess := startSession(t, fx)
	mutate(t, fx, sess.Token, func(s *models.Session) {
		s.Phase = models.PhaseReportGeneration
		s.ScreenersCompleted = []string{screener.PHQ9}
		s.ScreenerScores = map[string]*models.ScoredResult{
			screener.PHQ9: {ID: screener.PHQ9, Score: 12, MaxScore: 27, Severity: screener.SeverityModerate},
		}
	})

	fx.gateway.QueueStream("Your questionnaire suggested moderate symptoms.")
	frames, err := fx.engine.Chat(context.Background(), sess.Token, "What did my answers show?")
	require.NoError(t, err)
	drain(t, frames)

	msgs := fx.gateway.LastMessages
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[0].Content, screener.PHQ9)
	assert.Contains(t, msgs[0].Content, "12/27")
}
