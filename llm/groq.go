package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultGroqModel   = "llama-3.3-70b-versatile"
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
)

// GroqOptions configures a Groq client.
type GroqOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GroqClient talks to Groq's OpenAI-compatible chat completions API.
type GroqClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGroqClient(opts GroqOptions) (*GroqClient, error) {
	if opts.APIKey == "" {
		return nil, errors.New("groq api key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultGroqModel
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultGroqBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &GroqClient{
		apiKey:     opts.APIKey,
		model:      opts.Model,
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
	}, nil
}

func (c *GroqClient) Name() string {
	return "groq"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *GroqClient) Generate(ctx context.Context, prompt string, opts *Options) (*Response, error) {
	if opts == nil {
		opts = &Options{}
	}
	body := chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Provider:   c.Name(),
			Cause:      classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("status %d: %s", resp.StatusCode, truncate(string(data), 200)),
		}
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &ProviderError{
			Provider: c.Name(),
			Cause:    ProviderCauseUnavailable,
			Message:  "unreadable response body",
			Wrapped:  err,
		}
	}
	if len(parsed.Choices) == 0 {
		return nil, &ProviderError{
			Provider: c.Name(),
			Cause:    ProviderCauseUnavailable,
			Message:  "response contained no choices",
		}
	}
	return &Response{
		Content:    parsed.Choices[0].Message.Content,
		Model:      c.model,
		Provider:   c.Name(),
		TokensUsed: parsed.Usage.TotalTokens,
		Elapsed:    time.Since(start),
	}, nil
}

func (c *GroqClient) transportError(err error) *ProviderError {
	cause := ProviderCauseUnavailable
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &urlErr) && urlErr.Timeout()) {
		cause = ProviderCauseTimeout
	}
	return &ProviderError{
		Provider: c.Name(),
		Cause:    cause,
		Message:  err.Error(),
		Wrapped:  err,
	}
}
