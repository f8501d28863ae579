package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the flat patrol configuration. It carries the report
// settings and the persisted active selection (the CLI analog of the
// location/shift pickers), so the selection survives between invocations.
type Config struct {
	SendToEmail      string `json:"send_to_email,omitempty"`
	EmailJSServiceID string `json:"emailjs_service_id,omitempty"`
	EmailJSTemplate  string `json:"emailjs_template_id,omitempty"`
	EmailJSPublicKey string `json:"emailjs_public_key,omitempty"`
	ActiveLocation   string `json:"active_location,omitempty"`
	ActiveShift      string `json:"active_shift,omitempty"`
}

// DefaultDir returns the per-user patrol directory (~/.patrol).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".patrol"), nil
}

// LoadConfig reads config.json from the specified directory.
// A missing file is a fresh install, not an error: it yields a zero config.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// SetSendToEmail stores a trimmed recipient address.
func (c *Config) SetSendToEmail(addr string) {
	c.SendToEmail = strings.TrimSpace(addr)
}
