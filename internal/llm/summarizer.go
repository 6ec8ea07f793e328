package llm

import (
	"context"
	"fmt"

	"github.com/niyamr/actscan/internal/cache"
)

// Summarizer wraps a Provider and turns its raw output into summary
// bullets. It is the only fallible external boundary of the analysis
// pipeline; callers treat its errors as "summary unavailable" and proceed.
type Summarizer struct {
	provider Provider
	config   Config
	cache    cache.Cache // optional, nil disables caching
}

// NewSummarizer creates a summarizer from configuration. An empty provider
// name yields a disabled summarizer, not an error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// NewSummarizerWithProvider creates a summarizer around an existing
// provider. Used when the provider is built elsewhere (or mocked).
func NewSummarizerWithProvider(provider Provider, config Config) *Summarizer {
	return &Summarizer{
		provider: provider,
		config:   config,
	}
}

// SetCache attaches a response cache.
func (s *Summarizer) SetCache(c cache.Cache) {
	s.cache = c
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider name, or "" when disabled.
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// Model returns the configured model identifier.
func (s *Summarizer) Model() string {
	return s.config.Model
}

// Summarize generates summary bullets for the document. A disabled
// summarizer returns nil bullets and no error. A response with no bullet
// lines is likewise not an error.
func (s *Summarizer) Summarize(ctx context.Context, documentText string) ([]string, error) {
	if s.provider == nil {
		return nil, nil
	}

	prompt := BuildPrompt(documentText)

	if s.cache != nil {
		key := cache.SummaryKey(s.provider.Name(), s.config.Model, prompt)
		if raw, found := s.cache.Get(key); found {
			return ParseBullets(string(raw)), nil
		}
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		DocumentText: documentText,
		Prompt:       prompt,
		Model:        s.config.Model,
		MaxTokens:    s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize with %s: %w", s.provider.Name(), err)
	}

	if s.cache != nil {
		key := cache.SummaryKey(s.provider.Name(), s.config.Model, prompt)
		_ = s.cache.Set(key, []byte(resp.Text), 0)
	}

	return ParseBullets(resp.Text), nil
}
