// Package config provides configuration loading and management for blogsmith.
//
// Configuration is loaded using Viper, supporting YAML config files and
// environment variable overrides. The package provides sensible defaults that
// work out of the box, with the ability to customize the API endpoint, model,
// revision budget, and output locations.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//
// Configuration priority (highest to lowest):
//  1. Environment variables (BLOGSMITH_ prefix; BLOGSMITH_API_KEY or
//     OPENROUTER_API_KEY for the key itself)
//  2. Config file specified by BLOGSMITH_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/blogsmith/config.yaml
//     - macOS: ~/Library/Application Support/blogsmith/config.yaml
//     - Windows: %APPDATA%\blogsmith\config.yaml
//  4. ./blogsmith.yaml
//  5. [DefaultConfig] defaults
package config

import (
	"errors"
	"fmt"
)

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader] and used
// throughout the application. Use [DefaultConfig] to get sensible defaults.
type Config struct {
	// API contains completion-endpoint settings.
	API APIConfig `mapstructure:"api"`

	// Workflow contains revision-loop settings.
	Workflow WorkflowConfig `mapstructure:"workflow"`

	// Output contains artifact output settings.
	Output OutputConfig `mapstructure:"output"`
}

// APIConfig contains completion-endpoint settings.
type APIConfig struct {
	// Key is the API key. Keys are expected to start with "sk-".
	// Usually supplied via BLOGSMITH_API_KEY or OPENROUTER_API_KEY
	// rather than a config file.
	Key string `mapstructure:"key"`

	// Provider selects the client implementation: "openrouter" (default)
	// speaks the OpenRouter wire format directly, "openai" uses the
	// official OpenAI SDK against any compatible endpoint.
	Provider string `mapstructure:"provider"`

	// Model is the model identifier requests are sent with.
	// Default: "anthropic/claude-3.5-sonnet".
	Model string `mapstructure:"model"`

	// BaseURL overrides the provider's default endpoint. Leave empty to
	// use the provider default. For the openrouter provider this is the
	// full completions URL; for the openai provider it is the API root.
	BaseURL string `mapstructure:"base_url"`

	// Referer and Title populate the informational HTTP-Referer and
	// X-Title headers OpenRouter uses for traffic attribution.
	Referer string `mapstructure:"referer"`
	Title   string `mapstructure:"title"`

	// TimeoutSeconds bounds each completion request. Default: 60.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// WorkflowConfig contains revision-loop settings.
type WorkflowConfig struct {
	// MaxRevisions is the hard cap on evaluation cycles. Default: 3.
	MaxRevisions int `mapstructure:"max_revisions"`

	// AnalysisTemperature is the sampling temperature for analysis and
	// evaluation steps. Default: 0.3.
	AnalysisTemperature float64 `mapstructure:"analysis_temperature"`

	// WritingTemperature is the sampling temperature for generation and
	// revision steps. Default: 0.7.
	WritingTemperature float64 `mapstructure:"writing_temperature"`
}

// OutputConfig contains artifact output settings.
type OutputConfig struct {
	// Dir is the directory finished posts are saved into. Default: ".".
	Dir string `mapstructure:"dir"`

	// SaveReport also writes a YAML run report next to the post.
	// Default: false.
	SaveReport bool `mapstructure:"save_report"`
}

// ProviderOpenRouter and ProviderOpenAI are the recognized values of
// [APIConfig.Provider].
const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
)

// DefaultConfig returns a new [Config] with sensible defaults.
//
// The defaults target OpenRouter with the stock model, a 60-second request
// deadline, three revision cycles, and posts saved to the current directory.
// These defaults work out of the box with only an API key supplied.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Provider:       ProviderOpenRouter,
			Model:          "anthropic/claude-3.5-sonnet",
			Referer:        "http://localhost",
			Title:          "blogsmith",
			TimeoutSeconds: 60,
		},
		Workflow: WorkflowConfig{
			MaxRevisions:        3,
			AnalysisTemperature: 0.3,
			WritingTemperature:  0.7,
		},
		Output: OutputConfig{
			Dir: ".",
		},
	}
}

// Validate checks the settings that every command depends on. The API key
// is deliberately not checked here; commands that talk to the network
// validate it at client construction.
func (c *Config) Validate() error {
	if c.API.Model == "" {
		return errors.New("config: api.model must not be empty")
	}
	switch c.API.Provider {
	case ProviderOpenRouter, ProviderOpenAI:
	default:
		return fmt.Errorf("config: unknown api.provider %q", c.API.Provider)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if c.Workflow.MaxRevisions < 1 {
		return fmt.Errorf("config: workflow.max_revisions must be at least 1, got %d", c.Workflow.MaxRevisions)
	}
	return nil
}
