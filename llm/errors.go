package llm

import "fmt"

// Provider error causes. All three describe transient conditions, so a
// ProviderError is always recoverable.
const (
	ProviderCauseRateLimit   = "rate_limit"
	ProviderCauseTimeout     = "timeout"
	ProviderCauseUnavailable = "unavailable"
)

// Parsing error reasons. A wrong_shape response parsed as JSON but did
// not match the expected structure, or contained no JSON at all; a
// refusal is prose where the model declined to answer.
const (
	ParsingReasonWrongShape = "wrong_shape"
	ParsingReasonRefusal    = "refusal"
)

// ProviderError describes a failed call to an LLM provider.
type ProviderError struct {
	Provider   string
	Cause      string
	StatusCode int
	Message    string
	Wrapped    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Cause, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Wrapped
}

// IsRecoverable always reports true: rate limits, timeouts and outages
// are all worth retrying.
func (e *ProviderError) IsRecoverable() bool {
	return true
}

// ParsingError describes a completion that could not be decoded into
// the expected structure.
type ParsingError struct {
	Reason  string
	Message string
	Raw     string
	Wrapped error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parsing failed (%s): %s", e.Reason, e.Message)
}

func (e *ParsingError) Unwrap() error {
	return e.Wrapped
}

// IsRecoverable always reports true: regeneration may produce output
// that parses.
func (e *ParsingError) IsRecoverable() bool {
	return true
}

// classifyStatus maps an HTTP status code to a provider error cause.
func classifyStatus(status int) string {
	switch {
	case status == 429:
		return ProviderCauseRateLimit
	case status == 408 || status == 504:
		return ProviderCauseTimeout
	default:
		return ProviderCauseUnavailable
	}
}
