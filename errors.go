package brief

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/brief/llm"
)

// Error type constants for classification and matching
const (
	// ErrorTypeProvider covers transient LLM provider failures such as
	// rate limits, timeouts and outages. Retried before surfacing.
	ErrorTypeProvider = "provider_error"

	// ErrorTypeParsing covers completions that could not be decoded
	// into the expected structure. Retried like provider failures,
	// since regeneration may produce valid output.
	ErrorTypeParsing = "parsing_error"

	// ErrorTypeValidation covers rejected input. Raised before any
	// agent runs and never retried.
	ErrorTypeValidation = "validation_error"

	// ErrorTypeAssembly indicates a required slot was missing when the
	// final brief was built. Always fatal.
	ErrorTypeAssembly = "assembly_error"

	// ErrorTypeAgent is the default classification for errors that are
	// none of the above.
	ErrorTypeAgent = "agent_failed"
)

// PipelineError is a structured error with classification. It supports
// Go's error wrapping patterns with Unwrap().
type PipelineError struct {
	Type    string `json:"type"`
	Step    string `json:"step,omitempty"`
	Cause   string `json:"cause"`
	Details any    `json:"details,omitempty"`
	Wrapped error  `json:"-"`
}

func (e *PipelineError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s: %s: %s", e.Step, e.Type, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Cause)
}

func (e *PipelineError) Unwrap() error {
	return e.Wrapped
}

// NewPipelineError creates a PipelineError with the given type and cause.
func NewPipelineError(errorType, cause string) *PipelineError {
	return &PipelineError{Type: errorType, Cause: cause}
}

// NewValidationError describes rejected input.
func NewValidationError(cause string) *PipelineError {
	return &PipelineError{Type: ErrorTypeValidation, Cause: cause}
}

// NewAssemblyError describes a brief that could not be built.
func NewAssemblyError(cause string) *PipelineError {
	return &PipelineError{Type: ErrorTypeAssembly, Cause: cause}
}

// ClassifyError converts an arbitrary error into a PipelineError.
func ClassifyError(err error) *PipelineError {
	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr
	}
	var providerErr *llm.ProviderError
	if errors.As(err, &providerErr) {
		return &PipelineError{
			Type:    ErrorTypeProvider,
			Cause:   providerErr.Error(),
			Details: map[string]any{"provider": providerErr.Provider, "cause": providerErr.Cause},
			Wrapped: err,
		}
	}
	var parsingErr *llm.ParsingError
	if errors.As(err, &parsingErr) {
		return &PipelineError{
			Type:    ErrorTypeParsing,
			Cause:   parsingErr.Error(),
			Details: map[string]any{"reason": parsingErr.Reason},
			Wrapped: err,
		}
	}
	// Timeouts behave like a transient provider condition.
	if errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return &PipelineError{
			Type:    ErrorTypeProvider,
			Cause:   err.Error(),
			Details: map[string]any{"cause": llm.ProviderCauseTimeout},
			Wrapped: err,
		}
	}
	return &PipelineError{
		Type:    ErrorTypeAgent,
		Cause:   err.Error(),
		Wrapped: err,
	}
}

// MatchesErrorType checks if an error matches an error type string.
func MatchesErrorType(err error, errorType string) bool {
	return ClassifyError(err).Type == errorType
}
