package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Backend  Backend     `yaml:"backend"`
	Identity Identity    `yaml:"identity"`
	Theme    ColorScheme `yaml:"theme"`
}

// Backend configures how the board reaches the CRM backend.
type Backend struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Identity configures who stage changes are attributed to.
// An empty UpdatedBy falls back to the OS username.
type Identity struct {
	UpdatedBy string `yaml:"updated_by"`
}

// Timeout returns the backend request timeout as a duration.
func (b Backend) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: Backend{
			BaseURL:        "http://localhost:8080/api",
			TimeoutSeconds: 10,
		},
		Theme: DefaultColorScheme(),
	}
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file.
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "switchboard", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "switchboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults.
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = defaults.Backend.BaseURL
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = defaults.Backend.TimeoutSeconds
	}
	c.Theme.applyDefaults()
}
