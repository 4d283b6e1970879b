package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// settingsFileName is the settings file inside the config directory.
const settingsFileName = "settings.yaml"

// Settings holds persisted user defaults applied to pks init when the
// corresponding flags are not given.
type Settings struct {
	DefaultTemplate string `yaml:"default_template,omitempty"`
	Devcontainer    bool   `yaml:"devcontainer,omitempty"`
	GitHubActions   bool   `yaml:"github_actions,omitempty"`
	Agentic         bool   `yaml:"agentic,omitempty"`
}

// SettingsPath returns the settings file location.
func SettingsPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, settingsFileName)
}

// LoadSettings reads the settings file. A missing file yields zero
// settings, not an error.
func LoadSettings() (*Settings, error) {
	path := SettingsPath()
	if path == "" {
		return &Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return &s, nil
}

// Save writes the settings file, creating the config directory if needed.
func (s *Settings) Save() error {
	path := SettingsPath()
	if path == "" {
		return fmt.Errorf("no config directory available")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
