// Package screener holds the library of validated screening instruments.
//
// Every instrument is a pure value: an identifier, an ordered question list
// with enumerated response options, and a deterministic scoring function.
// Scoring performs no I/O and keeps no hidden state; the same response
// vector always produces an equal ScoredResult.
package screener

import (
	"fmt"

	"github.com/meridianhealth/intake/pkg/models"
)

// Question is one item of an instrument. N is 1-based.
type Question struct {
	N       int
	Text    string
	Options []models.Option
}

// Accepts reports whether v is one of the question's enumerated values.
func (q Question) Accepts(v int) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Screener is a validated psychometric instrument with a deterministic
// scoring rule.
type Screener struct {
	ID          string
	Description string
	Questions   []Question

	score func(items []int) *models.ScoredResult
}

// ValidationError reports a malformed response vector or an unknown
// screener id.
type ValidationError struct {
	ScreenerID string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("screener %s: %s", e.ScreenerID, e.Message)
}

// Validate rejects response vectors whose length does not match the
// question list or whose elements fall outside a question's option set.
func (s *Screener) Validate(responses []int) error {
	if len(responses) != len(s.Questions) {
		return &ValidationError{
			ScreenerID: s.ID,
			Message:    fmt.Sprintf("expected %d responses, got %d", len(s.Questions), len(responses)),
		}
	}
	for i, v := range responses {
		if !s.Questions[i].Accepts(v) {
			return &ValidationError{
				ScreenerID: s.ID,
				Message:    fmt.Sprintf("response %d for question %d is not an allowed value", v, i+1),
			}
		}
	}
	return nil
}

// Score validates and scores a response vector.
func (s *Screener) Score(responses []int) (*models.ScoredResult, error) {
	if err := s.Validate(responses); err != nil {
		return nil, err
	}
	return s.score(responses), nil
}

// MaxScore returns the highest total the instrument can produce.
func (s *Screener) MaxScore() int {
	// Scoring the maximal vector is cheap and keeps the cutoff tables as
	// the single source of truth.
	max := make([]int, len(s.Questions))
	for i, q := range s.Questions {
		top := q.Options[0].Value
		for _, o := range q.Options {
			if o.Value > top {
				top = o.Value
			}
		}
		max[i] = top
	}
	return s.score(max).MaxScore
}
