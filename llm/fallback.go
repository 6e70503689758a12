package llm

import (
	"context"
	"errors"
)

// Fallback tries each client in order until one succeeds. Only provider
// errors trigger failover; a parsing problem or programmer error is
// returned immediately since another provider will not fix it.
type Fallback struct {
	clients []Client
}

func NewFallback(clients ...Client) *Fallback {
	return &Fallback{clients: clients}
}

func (f *Fallback) Name() string {
	return "fallback"
}

func (f *Fallback) Generate(ctx context.Context, prompt string, opts *Options) (*Response, error) {
	if len(f.clients) == 0 {
		return nil, errors.New("no clients configured")
	}
	var lastErr error
	for _, client := range f.clients {
		response, err := client.Generate(ctx, prompt, opts)
		if err == nil {
			return response, nil
		}
		lastErr = err
		var providerErr *ProviderError
		if !errors.As(err, &providerErr) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}
