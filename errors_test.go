package brief

import (
	"context"
	"errors"
	"testing"

	"github.com/deepnoodle-ai/brief/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineErrorFormat(t *testing.T) {
	err := NewPipelineError(ErrorTypeAgent, "model returned garbage")
	assert.Equal(t, "agent_failed: model returned garbage", err.Error())

	err = NewAssemblyError("missing required components: reasoning")
	assert.Equal(t, "assembly_error: missing required components: reasoning", err.Error())

	err = &PipelineError{Type: ErrorTypeProvider, Step: "fact_grounding", Cause: "rate limit"}
	assert.Equal(t, "fact_grounding: provider_error: rate limit", err.Error())
}

func TestPipelineErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &PipelineError{Type: ErrorTypeAgent, Cause: "boom", Wrapped: cause}
	require.ErrorIs(t, err, cause)
}

func TestClassifyProviderError(t *testing.T) {
	providerErr := &llm.ProviderError{
		Provider: "gemini",
		Cause:    llm.ProviderCauseRateLimit,
		Message:  "quota exceeded",
	}
	classified := ClassifyError(providerErr)
	assert.Equal(t, ErrorTypeProvider, classified.Type)
	details, ok := classified.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "gemini", details["provider"])
	assert.Equal(t, llm.ProviderCauseRateLimit, details["cause"])
	require.ErrorIs(t, classified, providerErr)
}

func TestClassifyParsingError(t *testing.T) {
	parsingErr := &llm.ParsingError{
		Reason:  llm.ParsingReasonRefusal,
		Message: "content contains no JSON object",
	}
	classified := ClassifyError(parsingErr)
	assert.Equal(t, ErrorTypeParsing, classified.Type)
	details, ok := classified.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, llm.ParsingReasonRefusal, details["reason"])
}

func TestClassifyTimeout(t *testing.T) {
	classified := ClassifyError(context.DeadlineExceeded)
	assert.Equal(t, ErrorTypeProvider, classified.Type)
	details, ok := classified.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, llm.ProviderCauseTimeout, details["cause"])
}

func TestClassifyPassesThroughPipelineErrors(t *testing.T) {
	original := NewValidationError("prompt too short")
	assert.Same(t, original, ClassifyError(original))
}

func TestClassifyDefaultsToAgentFailed(t *testing.T) {
	classified := ClassifyError(errors.New("something odd"))
	assert.Equal(t, ErrorTypeAgent, classified.Type)
}

func TestMatchesErrorType(t *testing.T) {
	err := NewValidationError("prompt too short")
	assert.True(t, MatchesErrorType(err, ErrorTypeValidation))
	assert.False(t, MatchesErrorType(err, ErrorTypeProvider))
	assert.False(t, MatchesErrorType(errors.New("plain"), ErrorTypeValidation))
}
