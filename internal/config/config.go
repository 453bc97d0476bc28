// Package config loads runtime configuration from defaults, an
// optional YAML file, REVISA_ environment variables, and command-line
// flags, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/revisa-app/revisa/internal/cardgen"
)

// Config is the fully resolved application configuration.
type Config struct {
	DB      DBConfig      `koanf:"db"`
	HTTP    HTTPConfig    `koanf:"http"`
	Session SessionConfig `koanf:"session"`
	Cardgen CardgenConfig `koanf:"cardgen"`
}

type DBConfig struct {
	// Path to the SQLite database file. Empty selects the default
	// location under the user data directory.
	Path string `koanf:"path"`
}

type HTTPConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type SessionConfig struct {
	// Limit caps how many due cards a study session returns.
	Limit int `koanf:"limit"`
}

type CardgenConfig struct {
	Provider       string `koanf:"provider"`
	OpenAIKey      string `koanf:"openai_key"`
	OpenAIModel    string `koanf:"openai_model"`
	OpenAIBaseURL  string `koanf:"openai_base_url"`
	AnthropicKey   string `koanf:"anthropic_key"`
	AnthropicModel string `koanf:"anthropic_model"`
}

// GeneratorConfig converts the cardgen section into the provider
// factory's config shape.
func (c CardgenConfig) GeneratorConfig() cardgen.Config {
	return cardgen.Config{
		Provider: c.Provider,
		OpenAI: cardgen.OpenAIConfig{
			APIKey:  c.OpenAIKey,
			Model:   c.OpenAIModel,
			BaseURL: c.OpenAIBaseURL,
		},
		Anthropic: cardgen.AnthropicConfig{
			APIKey: c.AnthropicKey,
			Model:  c.AnthropicModel,
		},
	}
}

var defaults = map[string]any{
	"db.path":               "",
	"http.addr":             ":8787",
	"http.read_timeout":     "15s",
	"http.write_timeout":    "30s",
	"http.shutdown_timeout": "10s",
	"session.limit":         20,
	"cardgen.provider":      "openai",
	"cardgen.openai_model":  "gpt-4o-mini",
}

// envPrefix namespaces environment variables, e.g. REVISA_HTTP_ADDR
// maps to http.addr and REVISA_CARDGEN_OPENAI_KEY to cardgen.openai_key.
const envPrefix = "REVISA_"

// sections are the top-level config groups. The first env path segment
// selects the section; the rest joins back into the key name, so
// CARDGEN_OPENAI_KEY becomes cardgen.openai_key rather than
// cardgen.openai.key.
var sections = []string{"db", "http", "session", "cardgen"}

// Load resolves configuration. path points at a YAML file and may be
// empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("config: set default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, any) {
		return envToKey(key), value
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

func envToKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	for _, s := range sections {
		if strings.HasPrefix(key, s+"_") {
			return s + "." + strings.TrimPrefix(key, s+"_")
		}
	}
	return key
}
