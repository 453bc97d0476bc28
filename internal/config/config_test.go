package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Addr != ":8787" {
		t.Errorf("HTTP.Addr = %q, want :8787", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.Session.Limit != 20 {
		t.Errorf("Session.Limit = %d, want 20", cfg.Session.Limit)
	}
	if cfg.Cardgen.Provider != "openai" {
		t.Errorf("Cardgen.Provider = %q, want openai", cfg.Cardgen.Provider)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revisa.yaml")
	content := "http:\n  addr: \":9090\"\nsession:\n  limit: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q, want :9090", cfg.HTTP.Addr)
	}
	if cfg.Session.Limit != 5 {
		t.Errorf("Session.Limit = %d, want 5", cfg.Session.Limit)
	}
	// Untouched keys keep defaults.
	if cfg.Cardgen.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want default", cfg.Cardgen.OpenAIModel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revisa.yaml")
	if err := os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REVISA_HTTP_ADDR", ":7000")
	t.Setenv("REVISA_CARDGEN_OPENAI_KEY", "sk-test")
	t.Setenv("REVISA_DB_PATH", "/tmp/revisa-test.db")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":7000" {
		t.Errorf("HTTP.Addr = %q, want :7000", cfg.HTTP.Addr)
	}
	if cfg.Cardgen.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q, want sk-test", cfg.Cardgen.OpenAIKey)
	}
	if cfg.DB.Path != "/tmp/revisa-test.db" {
		t.Errorf("DB.Path = %q", cfg.DB.Path)
	}
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	t.Setenv("REVISA_HTTP_ADDR", ":7000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("http.addr", "", "listen address")
	if err := flags.Parse([]string{"--http.addr", ":6000"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":6000" {
		t.Errorf("HTTP.Addr = %q, want :6000", cfg.HTTP.Addr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/revisa.yaml", nil); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvToKey(t *testing.T) {
	cases := map[string]string{
		"REVISA_HTTP_ADDR":               "http.addr",
		"REVISA_HTTP_READ_TIMEOUT":       "http.read_timeout",
		"REVISA_CARDGEN_OPENAI_KEY":      "cardgen.openai_key",
		"REVISA_CARDGEN_OPENAI_BASE_URL": "cardgen.openai_base_url",
		"REVISA_DB_PATH":                 "db.path",
		"REVISA_SESSION_LIMIT":           "session.limit",
	}
	for in, want := range cases {
		if got := envToKey(in); got != want {
			t.Errorf("envToKey(%q) = %q, want %q", in, got, want)
		}
	}
}
