package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiTestServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error": {"message": "nope"}}`))
			return
		}
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
			"usageMetadata": map[string]any{"totalTokenCount": 42},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGeminiGenerate(t *testing.T) {
	server := geminiTestServer(t, http.StatusOK, `{"tone": "warm"}`)
	defer server.Close()

	client, err := NewGeminiClient(GeminiOptions{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), "describe the tone", &Options{JSONMode: true})
	require.NoError(t, err)
	assert.Equal(t, `{"tone": "warm"}`, resp.Content)
	assert.Equal(t, "gemini", resp.Provider)
	assert.Equal(t, 42, resp.TokensUsed)
}

func TestGeminiRateLimit(t *testing.T) {
	server := geminiTestServer(t, http.StatusTooManyRequests, "")
	defer server.Close()

	client, err := NewGeminiClient(GeminiOptions{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt", nil)
	require.Error(t, err)
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, ProviderCauseRateLimit, providerErr.Cause)
	assert.True(t, providerErr.IsRecoverable())
}

func TestGeminiUnavailable(t *testing.T) {
	server := geminiTestServer(t, http.StatusServiceUnavailable, "")
	defer server.Close()

	client, err := NewGeminiClient(GeminiOptions{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt", nil)
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, ProviderCauseUnavailable, providerErr.Cause)
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(GeminiOptions{})
	require.Error(t, err)
}

func TestGroqGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"caption": "hi"}`}},
			},
			"usage": map[string]any{"total_tokens": 17},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := NewGroqClient(GroqOptions{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), "write a caption", &Options{JSONMode: true})
	require.NoError(t, err)
	assert.Equal(t, `{"caption": "hi"}`, resp.Content)
	assert.Equal(t, "groq", resp.Provider)
	assert.Equal(t, 17, resp.TokensUsed)
}
