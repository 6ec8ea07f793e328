package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/niyamr/actscan/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a free-text summary of a document
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	// DocumentText is the full normalized document text. Only the first
	// promptDocumentCap characters are embedded in the prompt.
	DocumentText string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's raw summary output
type SummarizeResponse struct {
	// Text is the generated summary blob, before bullet filtering
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   60,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}

// promptDocumentCap is the maximum number of document characters embedded
// in the summarization prompt.
const promptDocumentCap = 5000

// systemPrompt frames every provider call.
const systemPrompt = "You are a legislative analyst summarizing statutes as concise bullet points."

// BuildPrompt constructs the default summarization prompt: fixed instruction
// text around the head of the document.
func BuildPrompt(documentText string) string {
	head := documentText
	if len(head) > promptDocumentCap {
		head = head[:promptDocumentCap]
	}

	return fmt.Sprintf(`Summarize this Act in 5-10 bullet points. Focus on:
- Purpose
- Key definitions
- Eligibility
- Obligations
- Enforcement

Document:
%s

Provide only bullet points starting with '-'.`, head)
}

// ParseBullets post-processes a provider response: split on line breaks,
// trim, and keep only lines starting with '-'. A response with no
// qualifying lines yields an empty slice, not an error.
func ParseBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-") {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
