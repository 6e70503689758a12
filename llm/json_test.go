package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONDirect(t *testing.T) {
	out, err := ExtractJSON(`{"tone": "professional"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"tone": "professional"}`, out)
}

func TestExtractJSONFenced(t *testing.T) {
	content := "Here is the result:\n```json\n{\"tone\": \"casual\"}\n```\nDone."
	out, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, `{"tone": "casual"}`, out)
}

func TestExtractJSONEmbedded(t *testing.T) {
	content := `Sure! {"objective": "launch", "urgency": "high"} Hope that helps.`
	out, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.Equal(t, `{"objective": "launch", "urgency": "high"}`, out)
}

func TestExtractJSONRefusal(t *testing.T) {
	_, err := ExtractJSON("I cannot help with that request.")
	require.Error(t, err)
	var parsingErr *ParsingError
	require.ErrorAs(t, err, &parsingErr)
	assert.Equal(t, ParsingReasonRefusal, parsingErr.Reason)
}

func TestExtractJSONMalformed(t *testing.T) {
	_, err := ExtractJSON(`{"tone": "professional"`)
	require.Error(t, err)
	var parsingErr *ParsingError
	require.ErrorAs(t, err, &parsingErr)
	assert.Equal(t, ParsingReasonWrongShape, parsingErr.Reason)
}

func TestDecodeJSON(t *testing.T) {
	var result struct {
		Tone string `json:"tone"`
	}
	err := DecodeJSON("```json\n{\"tone\": \"bold\"}\n```", &result)
	require.NoError(t, err)
	assert.Equal(t, "bold", result.Tone)
}
