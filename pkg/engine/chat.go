package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meridianhealth/intake/pkg/llm"
	"github.com/meridianhealth/intake/pkg/metrics"
	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/screener"
	"github.com/meridianhealth/intake/pkg/store"
)

// Control directives recognized in user text before any LLM invocation.
const (
	directivePause  = ":pause"
	directiveFinish = ":finish"
	directiveSkip   = ":skip"
)

// Chat processes one user turn and returns the outbound frame stream. The
// stream is finite and strictly ordered; the terminal frame has Done=true.
// The per-session lease is held until the stream closes.
func (e *Engine) Chat(ctx context.Context, token, prompt string) (<-chan models.Frame, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	release, err := e.leases.acquire(ctx, token)
	if err != nil {
		return nil, err
	}
	sess, err := e.store.Load(ctx, token)
	if err != nil {
		release()
		return nil, err
	}
	if sess.Status != models.StatusActive {
		release()
		return nil, fmt.Errorf("%w: status %s", ErrNotActive, sess.Status)
	}

	metrics.ChatTurns.Inc()
	out := make(chan models.Frame)
	go func() {
		defer close(out)
		defer release()
		turnCtx, cancel := context.WithTimeout(ctx, e.cfg.ChatDeadline)
		defer cancel()
		e.turn(turnCtx, sess, prompt, out)

		// The turn deadline silences emit for the expired context, but
		// the caller is still reading. Surface the timeout as a terminal
		// error frame instead of closing the stream bare.
		if errors.Is(turnCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			frame := models.TextFrame(llm.ErrorPrefix + "the response took too long; please send your message again")
			frame.Error = context.DeadlineExceeded.Error()
			frame.Done = true
			select {
			case out <- frame:
			case <-ctx.Done():
			}
		}
	}()
	return out, nil
}

// turn runs the full state machine for one user input.
func (e *Engine) turn(ctx context.Context, sess *models.Session, prompt string, out chan<- models.Frame) {
	switch strings.ToLower(prompt) {
	case directivePause:
		e.pauseTurn(ctx, sess, out)
		return
	case directiveFinish:
		e.finishTurn(ctx, sess, out)
		return
	case directiveSkip:
		e.skipTurn(ctx, sess, out)
		return
	}

	if sess.CurrentScreener != "" {
		e.screenerTurn(ctx, sess, prompt, out)
		return
	}
	e.conversationTurn(ctx, sess, prompt, out)
}

// pauseTurn handles the :pause directive inside a chat call. The pause is
// durable before any frame reaches the client.
func (e *Engine) pauseTurn(ctx context.Context, sess *models.Session, out chan<- models.Frame) {
	now := time.Now().UTC()
	expiry := now.Add(e.cfg.PauseTTL)
	sess.Status = models.StatusPaused
	sess.PausedAt = &now
	sess.ExpiresAt = &expiry
	sess.ResumeToken = store.NewToken()

	fx := &store.SideEffects{AuditLogs: []models.AuditLog{
		e.audit(sess.Token, models.AuditSessionPaused, map[string]any{"expires_at": expiry}),
	}}
	if err := e.commit(ctx, sess, fx); err != nil {
		e.emitError(ctx, out, err)
		return
	}
	frame := models.TextFrame(fmt.Sprintf(
		"Your session is paused. Use resume token %s within 24 hours to continue where you left off.",
		sess.ResumeToken))
	frame.Done = true
	emit(ctx, out, frame)
}

// finishTurn handles the :finish directive, inserting the C-SSRS first when
// risk signals are on record without it.
func (e *Engine) finishTurn(ctx context.Context, sess *models.Session, out chan<- models.Frame) {
	frame, pending, err := e.safetyCheck(ctx, sess)
	if err != nil {
		e.emitError(ctx, out, err)
		return
	}
	if pending {
		emit(ctx, out, frame)
		return
	}
	frame, err = e.finishSession(ctx, sess)
	if err != nil {
		e.emitError(ctx, out, err)
		return
	}
	emit(ctx, out, frame)
}

// skipTurn advances past the current free-text phase. Never valid during a
// screener.
func (e *Engine) skipTurn(ctx context.Context, sess *models.Session, out chan<- models.Frame) {
	if sess.CurrentScreener != "" {
		e.emitError(ctx, out, fmt.Errorf("%w: cannot skip during a screener", ErrBadDirective))
		return
	}
	next, ok := nextAssessmentPhase(sess.Phase)
	if !ok {
		e.emitError(ctx, out, fmt.Errorf("%w: nothing to skip in phase %s", ErrBadDirective, sess.Phase))
		return
	}
	sess.MarkPhaseCompleted(sess.Phase)
	sess.Phase = next
	if err := e.commit(ctx, sess, nil); err != nil {
		e.emitError(ctx, out, err)
		return
	}
	e.streamAssistantTurn(ctx, sess, out, phaseEntryPrompt(sess))
}

// screenerTurn runs one step of the screener micro-protocol. Answers are
// validated locally; no LLM is involved.
func (e *Engine) screenerTurn(ctx context.Context, sess *models.Session, prompt string, out chan<- models.Frame) {
	instrument, err := e.enforcer.Registry().Get(sess.CurrentScreener)
	if err != nil {
		e.emitError(ctx, out, err)
		return
	}
	question := instrument.Questions[len(sess.ScreenerProgress)]

	answer, err := strconv.Atoi(strings.TrimSpace(prompt))
	if err != nil || !question.Accepts(answer) {
		frame := models.TextFrame(fmt.Sprintf(
			"Please answer with one of the listed options.\n\n%s", question.Text))
		frame.Options = optionFrames(question)
		frame.Done = true
		emit(ctx, out, frame)
		return
	}

	sess.AppendMessage(models.RoleUser, prompt)
	sess.ScreenerProgress = append(sess.ScreenerProgress, answer)

	if len(sess.ScreenerProgress) < len(instrument.Questions) {
		if err := e.commit(ctx, sess, nil); err != nil {
			e.emitError(ctx, out, err)
			return
		}
		e.emitScreenerQuestion(ctx, sess, out, "")
		emit(ctx, out, models.DoneFrame())
		return
	}

	// Vector complete: score, escalate threshold crossings, and either
	// present the next pending screener or leave the screening phase.
	responses := sess.ScreenerProgress
	completedID := sess.CurrentScreener
	sess.CurrentScreener = ""
	sess.ScreenerProgress = nil

	result, flags, err := e.enforcer.ScoreAndStore(sess, completedID, responses)
	if err != nil {
		e.emitError(ctx, out, err)
		return
	}
	fx, err := e.escalator.Prepare(ctx, sess, flags)
	if err != nil {
		e.emitError(ctx, out, err)
		return
	}

	interpretation := result.Interpretation
	pending := e.enforcer.Pending(sess.Symptoms, sess.ScreenersCompleted)
	if len(pending) > 0 && sess.Phase == models.PhaseScreening {
		sess.CurrentScreener = pending[0]
	} else if sess.Phase == models.PhaseScreening {
		sess.MarkPhaseCompleted(models.PhaseScreening)
		sess.Phase = models.PhaseReportGeneration
	}
	sess.AppendMessage(models.RoleAssistant, interpretation)

	if err := e.commit(ctx, sess, fx); err != nil {
		e.emitError(ctx, out, err)
		return
	}
	e.logger.Info("screener scored",
		"session_token", sess.Token,
		"screener", completedID,
		"score", result.Score,
		"severity", result.Severity,
		"risk_flags", len(flags))

	emit(ctx, out, models.TextFrame(interpretation))
	switch {
	case sess.CurrentScreener != "":
		e.emitScreenerQuestion(ctx, sess, out, "Thank you. The next questionnaire is brief as well.")
	case sess.Phase == models.PhaseReportGeneration:
		emit(ctx, out, models.TextFrame(
			"That completes the questionnaires. When you're ready, send :finish and I'll prepare your intake summary."))
	}
	emit(ctx, out, models.DoneFrame())
}

// conversationTurn is the ordinary LLM-backed exchange: commit the user
// turn (with any risk escalation and extraction) first, then stream.
func (e *Engine) conversationTurn(ctx context.Context, sess *models.Session, prompt string, out chan<- models.Frame) {
	sess.AppendMessage(models.RoleUser, prompt)
	if sess.Phase == models.PhaseGreeting {
		sess.MarkPhaseCompleted(models.PhaseGreeting)
		sess.Phase = models.PhaseChiefComplaint
	}

	flags := scanRiskKeywords(prompt)
	sess.RiskFlags = append(sess.RiskFlags, flags...)

	sess.TurnsSinceExtract++
	if sess.TurnsSinceExtract >= e.cfg.ExtractEvery {
		e.extract(ctx, sess)
	}

	fx, err := e.escalator.Prepare(ctx, sess, flags)
	if err != nil {
		e.emitError(ctx, out, err)
		return
	}
	if err := e.commit(ctx, sess, fx); err != nil {
		e.emitError(ctx, out, err)
		return
	}
	if len(flags) > 0 {
		e.logger.Warn("risk keywords detected",
			"session_token", sess.Token, "flags", len(flags))
	}

	if e.enforcer.ShouldEnforce(sess) {
		e.enterScreening(ctx, sess, out)
		return
	}

	e.streamAssistantTurn(ctx, sess, out, "")
}

// enterScreening transitions into the screening phase and presents the
// first pending screener.
func (e *Engine) enterScreening(ctx context.Context, sess *models.Session, out chan<- models.Frame) {
	pending := e.enforcer.Pending(sess.Symptoms, sess.ScreenersCompleted)
	sess.MarkPhaseCompleted(sess.Phase)
	sess.Phase = models.PhaseScreening
	sess.CurrentScreener = pending[0]
	sess.ScreenerProgress = nil

	if err := e.commit(ctx, sess, nil); err != nil {
		e.emitError(ctx, out, err)
		return
	}
	e.logger.Info("screening enforced",
		"session_token", sess.Token, "pending", pending)

	e.emitScreenerQuestion(ctx, sess, out,
		"Based on what you've shared, I'd like to go through a few standardized questionnaires. They help your care team understand your experience precisely. Please answer each question with one of the listed options.")
	emit(ctx, out, models.DoneFrame())
}

// streamAssistantTurn streams one LLM completion. The assistant turn is
// appended to history only after the stream completes cleanly; partial or
// failed turns are discarded and the client can retry.
func (e *Engine) streamAssistantTurn(ctx context.Context, sess *models.Session, out chan<- models.Frame, seed string) {
	messages := promptMessages(sess, seed)
	fragments, err := e.gateway.Stream(ctx, messages, e.cfg.Temperature)
	if err != nil {
		e.emitError(ctx, out, err)
		return
	}

	var full strings.Builder
	for fragment := range fragments {
		if strings.HasPrefix(fragment, llm.ErrorPrefix) {
			frame := models.TextFrame(fragment)
			frame.Error = strings.TrimPrefix(fragment, llm.ErrorPrefix)
			frame.Done = true
			emit(ctx, out, frame)
			return
		}
		if !emit(ctx, out, models.TextFrame(fragment)) {
			return
		}
		full.WriteString(fragment)
	}
	if ctx.Err() != nil {
		return
	}

	sess.AppendMessage(models.RoleAssistant, full.String())
	if err := e.commit(ctx, sess, nil); err != nil {
		e.emitError(ctx, out, err)
		return
	}
	emit(ctx, out, models.DoneFrame())
}

// streamTransient streams a completion without committing it to history.
// Used for the resume re-engagement turn.
func (e *Engine) streamTransient(ctx context.Context, sess *models.Session, out chan<- models.Frame, seed string) {
	fragments, err := e.gateway.Stream(ctx, promptMessages(sess, seed), e.cfg.Temperature)
	if err != nil {
		e.emitError(ctx, out, err)
		return
	}
	for fragment := range fragments {
		if strings.HasPrefix(fragment, llm.ErrorPrefix) {
			frame := models.TextFrame(fragment)
			frame.Error = strings.TrimPrefix(fragment, llm.ErrorPrefix)
			frame.Done = true
			emit(ctx, out, frame)
			return
		}
		if !emit(ctx, out, models.TextFrame(fragment)) {
			return
		}
	}
	if ctx.Err() == nil {
		emit(ctx, out, models.DoneFrame())
	}
}

// emitScreenerQuestion sends the current screener question with its
// enumerated options.
func (e *Engine) emitScreenerQuestion(ctx context.Context, sess *models.Session, out chan<- models.Frame, preamble string) {
	emit(ctx, out, e.screenerQuestionFrame(sess, preamble))
}

func (e *Engine) screenerQuestionFrame(sess *models.Session, preamble string) models.Frame {
	instrument, err := e.enforcer.Registry().Get(sess.CurrentScreener)
	if err != nil {
		frame := models.TextFrame(llm.ErrorPrefix + err.Error())
		frame.Error = err.Error()
		return frame
	}
	question := instrument.Questions[len(sess.ScreenerProgress)]

	var b strings.Builder
	if preamble != "" {
		b.WriteString(preamble)
		b.WriteString("\n\n")
	}
	if len(sess.ScreenerProgress) == 0 {
		fmt.Fprintf(&b, "%s\n\n", instrument.Description)
	}
	fmt.Fprintf(&b, "Question %d of %d: %s", len(sess.ScreenerProgress)+1, len(instrument.Questions), question.Text)

	frame := models.TextFrame(b.String())
	frame.Options = optionFrames(question)
	return frame
}

func optionFrames(q screener.Question) []models.Option {
	options := make([]models.Option, len(q.Options))
	copy(options, q.Options)
	return options
}

// emitError surfaces a failure as a terminal error frame. Session state is
// whatever was last committed; nothing here mutates it.
func (e *Engine) emitError(ctx context.Context, out chan<- models.Frame, err error) {
	e.logger.Error("turn failed", "error", err)
	frame := models.TextFrame(llm.ErrorPrefix + err.Error())
	frame.Error = err.Error()
	frame.Done = true
	emit(ctx, out, frame)
}
