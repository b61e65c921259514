package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearAmbientEnv blanks every variable applyEnv reads so results do not
// depend on the machine running the tests.
func clearAmbientEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PLOTKIT_PROVIDER",
		"PLOTKIT_MODEL",
		"PLOTKIT_TEMPLATES_DIR",
		"ANTHROPIC_API_KEY",
		"OPENAI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	clearAmbientEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.Provider != "none" {
		t.Errorf("provider = %q, want none", cfg.AI.Provider)
	}
	if cfg.AI.Timeout != 60 {
		t.Errorf("timeout = %d, want 60", cfg.AI.Timeout)
	}
	if cfg.Templates.ExportDir != "templates" {
		t.Errorf("export dir = %q, want templates", cfg.Templates.ExportDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearAmbientEnv(t)
	path := filepath.Join(t.TempDir(), "plotkit.yaml")
	content := `ai:
  provider: anthropic
  api_key: sk-ant-REDACTED
  model: claude-3-5-sonnet-20241022
  timeout: 120
templates:
  dir: ./custom
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.AI.Provider)
	}
	if cfg.AI.Timeout != 120 {
		t.Errorf("timeout = %d", cfg.AI.Timeout)
	}
	if cfg.Templates.Dir != "./custom" {
		t.Errorf("templates dir = %q", cfg.Templates.Dir)
	}
	// File did not set it, default must survive the merge.
	if cfg.Templates.ExportDir != "templates" {
		t.Errorf("export dir = %q", cfg.Templates.ExportDir)
	}
}

func TestLoadValidation(t *testing.T) {
	clearAmbientEnv(t)
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "unknown provider",
			content: `ai:
  provider: bard
`,
			wantErr: "Provider",
		},
		{
			name: "anthropic without key",
			content: `ai:
  provider: anthropic
  model: claude-3-5-sonnet-20241022
`,
			wantErr: "APIKey",
		},
		{
			name: "key too short",
			content: `ai:
  provider: openai
  api_key: short
  model: gpt-4o
`,
			wantErr: "APIKey",
		},
		{
			name: "timeout out of range",
			content: `ai:
  provider: none
  timeout: 5
`,
			wantErr: "Timeout",
		},
		{
			name: "bad base url",
			content: `ai:
  provider: none
  base_url: not a url
`,
			wantErr: "BaseURL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "plotkit.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearAmbientEnv(t)
	t.Setenv("PLOTKIT_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-0123456789abcdef0123456789")
	t.Setenv("PLOTKIT_MODEL", "gpt-4o")
	t.Setenv("PLOTKIT_TEMPLATES_DIR", "/tmp/plotkit-templates")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.AI.Provider)
	}
	if cfg.AI.APIKey == "" {
		t.Error("api key not taken from environment")
	}
	if cfg.AI.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.AI.Model)
	}
	if cfg.Templates.Dir != "/tmp/plotkit-templates" {
		t.Errorf("templates dir = %q", cfg.Templates.Dir)
	}
}

func TestFileKeyWinsOverEnv(t *testing.T) {
	clearAmbientEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-REDACTED")

	path := filepath.Join(t.TempDir(), "plotkit.yaml")
	content := `ai:
  provider: anthropic
  api_key: sk-ant-REDACTED
  model: claude-3-5-sonnet-20241022
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.APIKey != "sk-ant-REDACTED" {
		t.Errorf("api key = %q, file value must win", cfg.AI.APIKey)
	}
}
