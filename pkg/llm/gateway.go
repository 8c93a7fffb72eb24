// Package llm wraps the external language-model provider behind a small
// gateway interface: a streaming completion and a structured (JSON)
// completion. The gateway never retries silently; retry policy belongs to
// the caller.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/meridianhealth/intake/pkg/models"
)

// ErrorPrefix marks a terminal fragment carrying a provider or gateway
// failure instead of model output.
const ErrorPrefix = "⚠️ "

// Gateway is the LLM provider contract. Stream yields a finite,
// non-restartable sequence of UTF-8 clean text fragments; provider errors
// arrive as a single terminal fragment prefixed with ErrorPrefix.
// Structured returns one JSON object; provider and parse failures are
// reported in-band as {"error": ...}.
type Gateway interface {
	Stream(ctx context.Context, messages []models.Message, temperature float64) (<-chan string, error)
	Structured(ctx context.Context, messages []models.Message, schema *jsonschema.Schema, temperature float64) (json.RawMessage, error)
}

// SchemaFor reflects a JSON schema from a Go type for structured calls.
func SchemaFor[T any]() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	var v T
	return reflector.Reflect(&v)
}

// ErrorObject builds the in-band error value Structured implementations
// return instead of raising.
func ErrorObject(err error) json.RawMessage {
	payload, mErr := json.Marshal(map[string]string{"error": err.Error()})
	if mErr != nil {
		return json.RawMessage(`{"error":"gateway failure"}`)
	}
	return payload
}

// IsErrorObject reports whether a structured result is an in-band error and
// returns its message.
func IsErrorObject(raw json.RawMessage) (string, bool) {
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", false
	}
	if probe.Error == "" {
		return "", false
	}
	return probe.Error, true
}

// errFragment formats a terminal error fragment.
func errFragment(err error) string {
	return fmt.Sprintf("%s%v", ErrorPrefix, err)
}
