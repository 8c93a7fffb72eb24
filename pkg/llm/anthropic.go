package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/invopop/jsonschema"

	"github.com/meridianhealth/intake/pkg/models"
)

// AnthropicGateway implements Gateway over the Anthropic Messages API.
type AnthropicGateway struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicGateway creates a gateway for the given model. The API key is
// read by the SDK from ANTHROPIC_API_KEY unless overridden.
func NewAnthropicGateway(model string, maxTokens int64, opts ...option.RequestOption) *AnthropicGateway {
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &AnthropicGateway{
		client:    anthropic.NewClient(opts...),
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

// Stream yields text fragments from a streaming completion. The channel is
// closed when the provider stream ends; a provider failure mid-stream is
// delivered as one terminal fragment prefixed with ErrorPrefix.
func (g *AnthropicGateway) Stream(ctx context.Context, messages []models.Message, temperature float64) (<-chan string, error) {
	params := g.buildParams(messages, temperature)

	out := make(chan string, 16)
	go func() {
		defer close(out)

		stream := g.client.Messages.NewStreaming(ctx, params)
		defer stream.Close()

		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case anthropic.ContentBlockDeltaEvent:
				switch delta := ev.Delta.AsAny().(type) {
				case anthropic.TextDelta:
					if delta.Text == "" {
						continue
					}
					select {
					case out <- sanitizeUTF8(delta.Text):
					case <-ctx.Done():
						return
					}
				}
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			slog.Warn("LLM stream failed", "error", err)
			select {
			case out <- errFragment(err):
			case <-ctx.Done():
			}
		}
	}()

	return out, nil
}

// Structured performs a single completion constrained to one JSON object
// matching schema. Provider and parse failures come back in-band as
// {"error": ...}; the caller decides whether to retry.
func (g *AnthropicGateway) Structured(ctx context.Context, messages []models.Message, schema *jsonschema.Schema, temperature float64) (json.RawMessage, error) {
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	constrained := append([]models.Message(nil), messages...)
	constrained = append(constrained, models.Message{
		Role: models.RoleUser,
		Content: fmt.Sprintf(
			"Respond with a single JSON object matching this JSON schema and nothing else:\n%s",
			schemaJSON),
	})

	params := g.buildParams(constrained, temperature)
	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return ErrorObject(err), nil
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	raw := extractJSONObject(text.String())
	if raw == nil {
		return ErrorObject(fmt.Errorf("model response contained no JSON object")), nil
	}
	return raw, nil
}

func (g *AnthropicGateway) buildParams(messages []models.Message, temperature float64) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: anthropic.Float(temperature),
	}
	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: m.Content})
		case models.RoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return params
}

// sanitizeUTF8 replaces invalid byte sequences so a fragment can never
// break the SSE encoding mid-stream.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// extractJSONObject pulls the first balanced top-level JSON object out of
// model text, tolerating surrounding prose or code fences.
func extractJSONObject(s string) json.RawMessage {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return nil
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				if json.Valid([]byte(candidate)) {
					return json.RawMessage(candidate)
				}
				return nil
			}
		}
	}
	return nil
}
