// Package llm provides the text generation capability used by the
// pipeline agents. A Client wraps one provider; Fallback composes
// several with automatic failover on provider errors.
package llm

import (
	"context"
	"encoding/json"
	"time"
)

// Options controls a single generation call. A nil Options means
// provider defaults.
type Options struct {
	// Temperature in the provider's native range (typically 0..2).
	Temperature float64

	// MaxTokens caps the completion length. Zero means provider default.
	MaxTokens int

	// JSONMode asks the provider to emit a JSON object. Not all
	// providers honor it, so callers should still run DecodeJSON on
	// the result.
	JSONMode bool
}

// Response is the result of one generation call.
type Response struct {
	Content    string
	Model      string
	Provider   string
	TokensUsed int
	Elapsed    time.Duration
}

// Client generates text from a prompt.
type Client interface {
	// Name identifies the provider, e.g. "gemini" or "groq".
	Name() string

	// Generate runs one completion. Failures are returned as
	// *ProviderError so callers can distinguish transient conditions.
	Generate(ctx context.Context, prompt string, opts *Options) (*Response, error)
}

// GenerateStructured runs one completion and decodes the result into v.
// A malformed or evasive completion is returned as *ParsingError, which
// is recoverable: the model may produce valid output on a retry.
func GenerateStructured(ctx context.Context, client Client, prompt string, opts *Options, v any) (*Response, error) {
	response, err := client.Generate(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}
	if err := DecodeJSON(response.Content, v); err != nil {
		return nil, err
	}
	return response, nil
}

// DecodeJSON extracts the JSON object embedded in model output and
// unmarshals it into v.
func DecodeJSON(content string, v any) error {
	extracted, err := ExtractJSON(content)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(extracted), v); err != nil {
		return &ParsingError{
			Reason:  ParsingReasonWrongShape,
			Message: err.Error(),
			Raw:     content,
			Wrapped: err,
		}
	}
	return nil
}
