package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "hello", sanitizeUTF8("hello"))
	assert.Equal(t, "café", sanitizeUTF8("café"))

	// Invalid sequences are replaced, never propagated.
	broken := string([]byte{'a', 0xff, 'b'})
	cleaned := sanitizeUTF8(broken)
	assert.Equal(t, "a�b", cleaned)
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", `Here is the result: {"a":{"b":2}} thanks`, `{"a":{"b":2}}`},
		{"braces in strings", `{"text":"has } brace"}`, `{"text":"has } brace"}`},
		{"escaped quote", `{"text":"say \"hi\" {now}"}`, `{"text":"say \"hi\" {now}"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSONObject(tt.input)
			require.NotNil(t, got)
			assert.JSONEq(t, tt.want, string(got))
		})
	}

	assert.Nil(t, extractJSONObject("no json here"))
	assert.Nil(t, extractJSONObject(`{"unterminated":`))
}

func TestErrorObjectRoundTrip(t *testing.T) {
	raw := ErrorObject(assert.AnError)
	msg, ok := IsErrorObject(raw)
	require.True(t, ok)
	assert.Contains(t, msg, "assert.AnError")

	_, ok = IsErrorObject([]byte(`{"result":"fine"}`))
	assert.False(t, ok)
}

func TestSchemaFor(t *testing.T) {
	type probe struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	schema := SchemaFor[probe]()
	require.NotNil(t, schema)
	require.NotNil(t, schema.Properties)
	_, ok := schema.Properties.Get("name")
	assert.True(t, ok)
	_, ok = schema.Properties.Get("count")
	assert.True(t, ok)
}
