package cardgen

import "fmt"

// Config selects and configures a generation provider.
type Config struct {
	// Provider is one of "openai", "anthropic", "mock".
	Provider string

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
}

// OpenAIConfig holds OpenAI provider settings.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// AnthropicConfig holds Anthropic provider settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// New creates a Generator for the configured provider.
func New(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case "openai", "":
		return NewOpenAIGenerator(cfg.OpenAI)
	case "anthropic":
		return NewAnthropicGenerator(cfg.Anthropic)
	case "mock":
		return NewMockGenerator(), nil
	default:
		return nil, &ErrConfig{Reason: fmt.Sprintf("unknown provider %q", cfg.Provider)}
	}
}
