package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meridianhealth/intake/pkg/engine"
	"github.com/meridianhealth/intake/pkg/screener"
	"github.com/meridianhealth/intake/pkg/store"
)

// renderError maps engine and store errors to HTTP responses.
func (s *Server) renderError(c *gin.Context, err error) {
	var validErr *screener.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, engine.ErrEmptyPrompt), errors.Is(err, engine.ErrBadDirective):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, store.ErrExpired):
		c.JSON(http.StatusGone, gin.H{"error": "resume token expired; session abandoned"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "session was modified concurrently"})
	case errors.Is(err, engine.ErrNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		s.logger.Error("unexpected handler error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
