package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nikogura/career-compass/pkg/gateway"
	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	GeminiAPIKey string        `json:"gemini_api_key"`
	Model        string        `json:"model,omitempty"`
	LogLevel     string        `json:"log_level,omitempty"`
	Defaults     DefaultConfig `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// GetModel returns the configured model or the default if not specified.
func (c *Config) GetModel() (model string) {
	if c.Model != "" {
		model = c.Model
		return model
	}
	model = gateway.DefaultModel
	return model
}

// Load reads configuration from file with environment variable overrides.
// A missing config file is fine when GEMINI_API_KEY is set in the
// environment; all other fields fall back to defaults.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".career-compass", "config.json")
	}

	// Read config file
	data, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(readErr):
		// Environment-only operation is allowed.
	default:
		err = errors.Wrapf(readErr, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variable if set
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.GeminiAPIKey = apiKey
	}

	// Validate required fields
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() (err error) {
	if c.GeminiAPIKey == "" {
		err = errors.New("gemini_api_key is required (set in config or GEMINI_API_KEY env var)")
		return err
	}

	// Set default output_dir if not specified
	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "./reports"
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		path = filepath.Join(homeDir, ".career-compass", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		GeminiAPIKey: "AIza...",
		Model:        gateway.DefaultModel,
		LogLevel:     "info",
		Defaults: DefaultConfig{
			OutputDir: filepath.Join(homeDir, "Documents", "CareerReports"),
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
