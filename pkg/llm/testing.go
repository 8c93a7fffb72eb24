package llm

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/meridianhealth/intake/pkg/models"
)

// MockGateway is a scripted Gateway for tests. Stream responses are queued
// as fragment slices; Structured responses as raw JSON values. When a queue
// empties the mock falls back to Default / DefaultStructured.
type MockGateway struct {
	mu sync.Mutex

	streams     [][]string
	structured  []json.RawMessage
	Default     []string
	DefaultJSON json.RawMessage

	// StreamDelay, when non-nil, is waited on between fragments so tests
	// can cancel mid-stream deterministically.
	StreamGate chan struct{}

	StreamCalls     int
	StructuredCalls int
	LastMessages    []models.Message
}

// NewMockGateway creates an empty mock that streams a single canned
// fragment by default.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		Default:     []string{"Understood."},
		DefaultJSON: json.RawMessage(`{}`),
	}
}

// QueueStream schedules the fragments for the next Stream call.
func (m *MockGateway) QueueStream(fragments ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams = append(m.streams, fragments)
}

// QueueStructured schedules the raw JSON for the next Structured call.
func (m *MockGateway) QueueStructured(raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.structured = append(m.structured, json.RawMessage(raw))
}

// Stream implements Gateway.
func (m *MockGateway) Stream(ctx context.Context, messages []models.Message, _ float64) (<-chan string, error) {
	m.mu.Lock()
	m.StreamCalls++
	m.LastMessages = append([]models.Message(nil), messages...)
	fragments := m.Default
	if len(m.streams) > 0 {
		fragments = m.streams[0]
		m.streams = m.streams[1:]
	}
	gate := m.StreamGate
	m.mu.Unlock()

	out := make(chan string)
	go func() {
		defer close(out)
		for _, f := range fragments {
			if gate != nil {
				select {
				case <-gate:
				case <-ctx.Done():
					return
				}
			}
			select {
			case out <- f:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Structured implements Gateway.
func (m *MockGateway) Structured(_ context.Context, messages []models.Message, _ *jsonschema.Schema, _ float64) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StructuredCalls++
	m.LastMessages = append([]models.Message(nil), messages...)
	if len(m.structured) > 0 {
		raw := m.structured[0]
		m.structured = m.structured[1:]
		return raw, nil
	}
	return m.DefaultJSON, nil
}
