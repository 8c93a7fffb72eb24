package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// chatHandler handles POST /intake/chat. One user turn in, one finite SSE
// frame stream out. Rejections (unknown session, paused session, empty
// prompt) surface as JSON errors before any stream bytes are written.
func (s *Server) chatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frames, err := s.engine.Chat(c.Request.Context(), req.SessionToken, req.Prompt)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.streamFrames(c, nil, frames)
}
