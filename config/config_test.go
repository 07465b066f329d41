package config

import (
	"os"
	"testing"

	"github.com/AION721963/aion-wallet-sdk/pkg/aion"
	"github.com/AION721963/aion-wallet-sdk/pkg/moltbook"
)

// clearEnv unsets every variable Load reads so ambient environment does not
// leak into the test. t.Setenv registers the restore; Unsetenv removes the
// variable for the test body, since set-but-empty and unset differ.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AION_USERNAME", "AION_API_URL", "AION_WALLET_ADDRESS",
		"MOLTBOOK_TOKEN", "MOLTBOOK_API_URL",
		"LOG_LEVEL", "LOG_JSON", "LOG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIBaseURL != aion.DefaultBaseURL {
		t.Errorf("api base url = %q, want %q", cfg.APIBaseURL, aion.DefaultBaseURL)
	}
	if cfg.MoltbookBaseURL != moltbook.DefaultBaseURL {
		t.Errorf("moltbook base url = %q, want %q", cfg.MoltbookBaseURL, moltbook.DefaultBaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.LogJSON {
		t.Error("log json should default to false")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("AION_USERNAME", "agent47")
	t.Setenv("AION_API_URL", "http://127.0.0.1:8080/api")
	t.Setenv("MOLTBOOK_TOKEN", "tok")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Username != "agent47" {
		t.Errorf("username = %q, want agent47", cfg.Username)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:8080/api" {
		t.Errorf("api base url = %q", cfg.APIBaseURL)
	}
	if cfg.MoltbookToken != "tok" {
		t.Errorf("moltbook token = %q, want tok", cfg.MoltbookToken)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
	if !cfg.LogJSON {
		t.Error("log json = false, want true")
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_JSON", "definitely")

	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable LOG_JSON")
	}
}

func TestRequireUsername(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireUsername(); err == nil {
		t.Error("expected error with no username")
	}

	cfg.Username = "agent47"
	if err := cfg.RequireUsername(); err != nil {
		t.Errorf("RequireUsername() error: %v", err)
	}
}

func TestRequireMoltbookToken(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireMoltbookToken(); err == nil {
		t.Error("expected error with no token")
	}

	cfg.MoltbookToken = "tok"
	if err := cfg.RequireMoltbookToken(); err != nil {
		t.Errorf("RequireMoltbookToken() error: %v", err)
	}
}
