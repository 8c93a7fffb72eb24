package api

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/intake/pkg/config"
	"github.com/meridianhealth/intake/pkg/enforce"
	"github.com/meridianhealth/intake/pkg/engine"
	"github.com/meridianhealth/intake/pkg/escalate"
	"github.com/meridianhealth/intake/pkg/llm"
	"github.com/meridianhealth/intake/pkg/models"
	"github.com/meridianhealth/intake/pkg/report"
	"github.com/meridianhealth/intake/pkg/screener"
	"github.com/meridianhealth/intake/pkg/store"
)

type fixture struct {
	router  *gin.Engine
	store   *store.Memory
	gateway *llm.MockGateway
}

func newFixture(t *testing.T, auth Authenticator, limits config.RateLimitConfig) *fixture {
	t.Helper()
	mem := store.NewMemory()
	mem.SetAdmins([]models.AdminUser{
		{ID: "adm-1", Email: "oncall@clinic.example", Active: true},
	})
	gw := llm.NewMockGateway()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	eng := engine.New(
		mem, gw,
		enforce.NewService(screener.NewRegistry(), enforce.DefaultThresholds()),
		escalate.NewEscalator(mem, logger),
		report.NewSynthesizer(gw, 0.2, logger),
		report.TextRenderer{},
		engine.Config{ChatDeadline: 5 * time.Second},
		logger,
	)
	srv := NewServer(eng, nil, auth, limits, logger)
	return &fixture{router: srv.Router(), store: mem, gateway: gw}
}

func defaultLimits() config.RateLimitConfig {
	return *config.Defaults().RateLimits
}

// closeNotifyRecorder adds the http.CloseNotifier method that gin's
// SSE streaming path requires but httptest.ResponseRecorder lacks.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(&closeNotifyRecorder{w, make(chan bool, 1)}, req)
	return w
}

// sseEvents parses an SSE body into (event, data) pairs.
func sseEvents(t *testing.T, body string) []map[string]json.RawMessage {
	t.Helper()
	var events []map[string]json.RawMessage
	var current string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			current = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			events = append(events, map[string]json.RawMessage{
				current: json.RawMessage(data),
			})
		}
	}
	return events
}

// startSession runs POST /intake/start and returns the assigned token.
func (f *fixture) startSession(t *testing.T) string {
	t.Helper()
	w := f.do(http.MethodPost, "/intake/start", "")
	require.Equal(t, http.StatusOK, w.Code)

	events := sseEvents(t, w.Body.String())
	require.NotEmpty(t, events)
	raw, ok := events[0]["session"]
	require.True(t, ok, "first event must be the session event")

	var sess SessionEvent
	require.NoError(t, json.Unmarshal(raw, &sess))
	require.NotEmpty(t, sess.SessionToken)
	require.False(t, sess.CreatedAt.IsZero())
	return sess.SessionToken
}

func TestStartStreamsSessionThenFrames(t *testing.T) {
	f := newFixture(t, AllowAll{}, defaultLimits())
	f.gateway.QueueStream("Hello, ", "I'm here to help.")

	w := f.do(http.MethodPost, "/intake/start", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")

	body := w.Body.String()
	assert.Contains(t, body, "event:session")
	assert.Contains(t, body, "Hello, ")
	assert.Contains(t, body, "I'm here to help.")
	assert.Contains(t, body, `"done":true`)
}

func TestChatStream(t *testing.T) {
	f := newFixture(t, AllowAll{}, defaultLimits())
	token := f.startSession(t)

	f.gateway.QueueStream("Tell me more about that.")
	w := f.do(http.MethodPost, "/intake/chat",
		`{"session_token":"`+token+`","prompt":"I have trouble sleeping"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tell me more about that.")
	assert.Contains(t, w.Body.String(), `"done":true`)

	stored, err := f.store.Load(t.Context(), token)
	require.NoError(t, err)
	assert.Equal(t, "I have trouble sleeping", stored.History[len(stored.History)-2].Content)
}

func TestChatRejections(t *testing.T) {
	f := newFixture(t, AllowAll{}, defaultLimits())
	token := f.startSession(t)

	t.Run("missing session token", func(t *testing.T) {
		w := f.do(http.MethodPost, "/intake/chat", `{"prompt":"hi"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty prompt", func(t *testing.T) {
		w := f.do(http.MethodPost, "/intake/chat",
			`{"session_token":"`+token+`","prompt":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		w := f.do(http.MethodPost, "/intake/chat",
			`{"session_token":"nope","prompt":"hi"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPauseAndResume(t *testing.T) {
	f := newFixture(t, AllowAll{}, defaultLimits())
	token := f.startSession(t)

	w := f.do(http.MethodPost, "/intake/pause", `{"session_token":"`+token+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var pause PauseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pause))
	require.NotEmpty(t, pause.ResumeToken)
	assert.True(t, pause.ExpiresAt.After(time.Now()))

	t.Run("chat while paused conflicts", func(t *testing.T) {
		w := f.do(http.MethodPost, "/intake/chat",
			`{"session_token":"`+token+`","prompt":"hello?"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("resume streams a re-engagement turn", func(t *testing.T) {
		w := f.do(http.MethodPost, "/intake/resume",
			`{"resume_token":"`+pause.ResumeToken+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "event:session")
		assert.Contains(t, w.Body.String(), `"done":true`)
	})

	t.Run("stale resume token is gone", func(t *testing.T) {
		w := f.do(http.MethodPost, "/intake/resume",
			`{"resume_token":"`+pause.ResumeToken+`"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFinishReturnsReportFrame(t *testing.T) {
	f := newFixture(t, AllowAll{}, defaultLimits())
	token := f.startSession(t)

	w := f.do(http.MethodPost, "/intake/finish", `{"session_token":"`+token+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var frame models.Frame
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &frame))
	assert.True(t, frame.Done)
	require.NotNil(t, frame.Artifacts)
	assert.NotEmpty(t, frame.Artifacts.PatientPDF)

	t.Run("finished session rejects chat", func(t *testing.T) {
		w := f.do(http.MethodPost, "/intake/chat",
			`{"session_token":"`+token+`","prompt":"one more thing"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSessionSnapshot(t *testing.T) {
	f := newFixture(t, AllowAll{}, defaultLimits())
	token := f.startSession(t)

	w := f.do(http.MethodGet, "/intake/session/"+token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var sess models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, models.StatusActive, sess.Status)

	t.Run("unknown token", func(t *testing.T) {
		w := f.do(http.MethodGet, "/intake/session/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBearerAuth(t *testing.T) {
	f := newFixture(t, StaticToken("s3kr1t"), defaultLimits())

	w := f.do(http.MethodGet, "/intake/session/whatever", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/intake/session/whatever", nil)
	req.Header.Set("Authorization", "Bearer s3kr1t")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	t.Run("healthz is unauthenticated", func(t *testing.T) {
		w := f.do(http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimiting(t *testing.T) {
	limits := defaultLimits()
	limits.StartPerMinute = 1
	f := newFixture(t, AllowAll{}, limits)

	first := f.do(http.MethodPost, "/intake/start", "")
	require.Equal(t, http.StatusOK, first.Code)

	second := f.do(http.MethodPost, "/intake/start", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestHealthzMemoryStorage(t *testing.T) {
	f := newFixture(t, AllowAll{}, defaultLimits())

	w := f.do(http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "memory", resp.Storage)
	assert.Nil(t, resp.Database)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, AllowAll{}, defaultLimits())
	f.startSession(t)

	w := f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "intake_sessions_started_total")
}
