package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/meridianhealth/intake/pkg/models"
)

// startHandler handles POST /intake/start. The response is an SSE stream:
// one "session" event carrying the session token, then the opening
// assistant turn as "frame" events.
func (s *Server) startHandler(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, frames, err := s.engine.Start(c.Request.Context(), req.PatientID, req.UserName)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.streamFrames(c, sessionEvent(sess), frames)
}

// pauseHandler handles POST /intake/pause. The pause is durable before the
// response is written; losing the resume token means losing the session.
func (s *Server) pauseHandler(c *gin.Context) {
	var req PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resumeToken, expiresAt, err := s.engine.Pause(c.Request.Context(), req.SessionToken)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, &PauseResponse{ResumeToken: resumeToken, ExpiresAt: expiresAt})
}

// resumeHandler handles POST /intake/resume. Like start, the response is an
// SSE stream with a leading "session" event.
func (s *Server) resumeHandler(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, frames, err := s.engine.Resume(c.Request.Context(), req.ResumeToken)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.streamFrames(c, sessionEvent(sess), frames)
}

// finishHandler handles POST /intake/finish. Returns the single terminal
// frame, either the report artifacts or a deferred safety screener.
func (s *Server) finishHandler(c *gin.Context) {
	var req FinishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frame, err := s.engine.Finish(c.Request.Context(), req.SessionToken)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}

// sessionHandler handles GET /intake/session/:token. The snapshot includes
// screener scores and risk flags for clinician review surfaces.
func (s *Server) sessionHandler(c *gin.Context) {
	sess, err := s.engine.Snapshot(c.Request.Context(), c.Param("token"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// streamFrames writes an SSE response: an optional leading "session" event,
// then every frame until the terminal Done frame.
func (s *Server) streamFrames(c *gin.Context, first *SessionEvent, frames <-chan models.Frame) {
	h := c.Writer.Header()
	h.Set("Content-Type", sse.ContentType)
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	if first != nil {
		if err := sse.Encode(c.Writer, sse.Event{Event: "session", Data: first}); err != nil {
			return
		}
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		frame, ok := <-frames
		if !ok {
			return false
		}
		if err := sse.Encode(w, sse.Event{Event: "frame", Data: frame}); err != nil {
			return false
		}
		return !frame.Done
	})
}
