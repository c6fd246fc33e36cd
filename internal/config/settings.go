package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings represents the structure of ~/.weekplaner/settings.json.
// Pointer fields distinguish "unset" from an explicit false/zero.
type Settings struct {
	Debug           *bool          `json:"debug,omitempty"`
	MaxLogFiles     *int           `json:"max_log_files,omitempty"`
	GranularityMin  *int           `json:"granularity_min,omitempty"`
	ErrorClearDelay *int           `json:"error_clear_delay,omitempty"`
	TravelDefaults  map[string]int `json:"travel_defaults,omitempty"`
	SSHHost         string         `json:"ssh_host,omitempty"`
	SSHPort         string         `json:"ssh_port,omitempty"`
}

// GetHomeDir returns the planner's home directory (~/.weekplaner),
// honoring WEEKPLANER_HOME for tests and side-by-side installs.
func GetHomeDir() string {
	if custom := os.Getenv("WEEKPLANER_HOME"); custom != "" {
		return ExpandPath(custom)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".weekplaner"
	}
	return filepath.Join(homeDir, ".weekplaner")
}

// GetDBPath returns the sqlite database path.
func GetDBPath() string {
	return filepath.Join(GetHomeDir(), "weekplaner.db")
}

// GetSettingsPath returns the settings file path.
func GetSettingsPath() string {
	return filepath.Join(GetHomeDir(), "settings.json")
}

// GetFeedsPath returns the ICS feeds config file path.
func GetFeedsPath() string {
	return filepath.Join(GetHomeDir(), "feeds.yaml")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return homeDir
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~/"))
}

// LoadSettings reads settings.json. A missing file is not an error;
// defaults apply.
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes settings.json.
func SaveSettings(settings *Settings) error {
	if err := os.MkdirAll(GetHomeDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(GetSettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// DebugEnabled resolves the effective debug flag.
func (s *Settings) DebugEnabled(cliFlag bool) bool {
	if cliFlag {
		return true
	}
	return s.Debug != nil && *s.Debug
}

// MaxLogFilesOrDefault resolves the log rotation limit.
func (s *Settings) MaxLogFilesOrDefault() int {
	if s.MaxLogFiles != nil {
		return *s.MaxLogFiles
	}
	return 1000
}

// GranularityOrDefault resolves the layout snap granularity in minutes.
func (s *Settings) GranularityOrDefault() int {
	if s.GranularityMin != nil && *s.GranularityMin > 0 {
		return *s.GranularityMin
	}
	return 30
}
