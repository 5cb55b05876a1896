package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// DefaultServerURL is the portfolio site serving the project data file.
const DefaultServerURL = "http://localhost:8080"

// Config represents the application configuration
type Config struct {
	// Base URL of the portfolio site to fetch project data from
	ServerURL string `json:"server_url"`

	// Optional local project data file, used instead of the network
	ProjectsPath string `json:"projects_path,omitempty"`

	// Persisted theme preference, "light" or "dark"; empty means unset
	Theme string `json:"theme,omitempty"`
}

// Dir returns the configuration directory (~/.folio).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".folio"), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load loads the configuration from the given file path
func Load(path string) (*Config, error) {
	// If config file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{ServerURL: DefaultServerURL}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}

	return &cfg, nil
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveInitialTheme returns the persisted theme preference if one exists,
// otherwise derives one from the terminal background: dark background means
// dark theme. Storage absence is a normal case, not a fault.
func (c *Config) ResolveInitialTheme() string {
	switch c.Theme {
	case "light", "dark":
		return c.Theme
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// ToggleTheme flips the theme preference, persists it, and returns the new
// value. Only the single stored value is overwritten; no history is kept.
func (c *Config) ToggleTheme(current string) (string, error) {
	next := "dark"
	if current == "dark" {
		next = "light"
	}
	c.Theme = next

	path, err := Path()
	if err != nil {
		return next, err
	}
	return next, c.Save(path)
}
