package api

import (
	"time"

	"github.com/meridianhealth/intake/pkg/database"
	"github.com/meridianhealth/intake/pkg/models"
)

// SessionEvent is the first SSE event on start and resume streams. It gives
// the client its session token before any assistant frames arrive.
type SessionEvent struct {
	SessionToken string               `json:"session_token"`
	Phase        models.Phase         `json:"current_phase"`
	Status       models.SessionStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

func sessionEvent(sess *models.Session) *SessionEvent {
	return &SessionEvent{
		SessionToken: sess.Token,
		Phase:        sess.Phase,
		Status:       sess.Status,
		CreatedAt:    sess.CreatedAt,
	}
}

// PauseResponse is returned by POST /intake/pause.
type PauseResponse struct {
	ResumeToken string    `json:"resume_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Storage  string                 `json:"storage"`
	Database *database.HealthStatus `json:"database,omitempty"`
}
