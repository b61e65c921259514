package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI        AIConfig        `yaml:"ai" validate:"required"`
	Templates TemplatesConfig `yaml:"templates"`
}

// AIConfig configures the optional AI-assisted validation path. With
// provider "none" the engine runs its deterministic strategy only and no
// key is needed.
type AIConfig struct {
	Provider string `yaml:"provider" validate:"required,oneof=anthropic openai none"`
	APIKey   string `yaml:"api_key" validate:"required_unless=Provider none,omitempty,min=20"`
	Model    string `yaml:"model" validate:"required_unless=Provider none"`
	BaseURL  string `yaml:"base_url" validate:"omitempty,url"`
	Timeout  int    `yaml:"timeout" validate:"omitempty,min=10,max=3600"`
	// CacheDir enables on-disk caching of model completions. Empty
	// disables caching.
	CacheDir string `yaml:"cache_dir"`
	// CacheTTLHours bounds cached completion age. Zero means 24 hours.
	CacheTTLHours int `yaml:"cache_ttl_hours" validate:"omitempty,min=1"`
}

// TemplatesConfig locates custom template definitions on disk.
type TemplatesConfig struct {
	// Dir is scanned for YAML template definitions at startup. Empty
	// means built-ins only.
	Dir string `yaml:"dir"`
	// ExportDir receives exported template definitions.
	ExportDir string `yaml:"export_dir"`
}

var validate = validator.New()

// Load reads the config file at path, applies environment overrides, and
// validates the result. A missing file yields defaults (deterministic
// validation, built-in templates only).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnv(cfg)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default is the zero-setup configuration: no AI collaborator, built-in
// templates only.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Provider: "none",
			Timeout:  60,
		},
		Templates: TemplatesConfig{
			ExportDir: "templates",
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PLOTKIT_PROVIDER"); v != "" {
		cfg.AI.Provider = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" && cfg.AI.Provider == "anthropic" && cfg.AI.APIKey == "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && cfg.AI.Provider == "openai" && cfg.AI.APIKey == "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("PLOTKIT_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := os.Getenv("PLOTKIT_TEMPLATES_DIR"); v != "" {
		cfg.Templates.Dir = v
	}
}
