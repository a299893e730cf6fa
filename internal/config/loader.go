package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix     = "BLOGSMITH"
	envConfigPath = "BLOGSMITH_CONFIG_PATH"
)

// Loader loads configuration from files and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment bindings
// registered.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("api.key", defaults.API.Key)
	v.SetDefault("api.provider", defaults.API.Provider)
	v.SetDefault("api.model", defaults.API.Model)
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.referer", defaults.API.Referer)
	v.SetDefault("api.title", defaults.API.Title)
	v.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)
	v.SetDefault("workflow.max_revisions", defaults.Workflow.MaxRevisions)
	v.SetDefault("workflow.analysis_temperature", defaults.Workflow.AnalysisTemperature)
	v.SetDefault("workflow.writing_temperature", defaults.Workflow.WritingTemperature)
	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("output.save_report", defaults.Output.SaveReport)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The key doubles under the name its upstream ecosystem uses.
	v.BindEnv("api.key", "BLOGSMITH_API_KEY", "OPENROUTER_API_KEY")

	return &Loader{v: v}
}

// Load resolves configuration using the priority order documented on
// [Config]: environment overrides, then BLOGSMITH_CONFIG_PATH, then the
// user config directory, then ./blogsmith.yaml, then defaults. A missing
// config file is not an error; a present but unreadable one is.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(envConfigPath); path != "" {
		return l.LoadFromFile(path)
	}

	if path, err := DefaultConfigPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return l.LoadFromFile(path)
		}
	}

	if _, err := os.Stat("blogsmith.yaml"); err == nil {
		return l.LoadFromFile("blogsmith.yaml")
	}

	return l.unmarshal()
}

// LoadFromFile loads configuration from a specific file, still applying
// environment overrides on top.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// MustLoad loads configuration and panics on failure. Intended for
// program startup where a broken config file should halt immediately.
func MustLoad() *Config {
	cfg, err := NewLoader().Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// ConfigDir returns the platform-standard configuration directory for
// blogsmith.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(base, "blogsmith"), nil
}

// DefaultConfigPath returns the path of the user-level config file.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureConfigDir creates the user configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
