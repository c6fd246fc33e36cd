package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Feed describes a single ICS fixture feed subscription.
type Feed struct {
	// URL is the ICS subscription endpoint.
	URL string `yaml:"url"`
	// ID is an internal identifier used for de-dup and logging.
	ID string `yaml:"id"`
	// Name is a human-friendly label.
	Name string `yaml:"name"`
	// Team is the squad code imported fixtures are filed under.
	Team string `yaml:"team"`
	// Location, when set, overrides the VEVENT location.
	Location string `yaml:"location,omitempty"`
}

// Feeds is the top-level structure of ~/.weekplaner/feeds.yaml.
type Feeds struct {
	Feeds []Feed `yaml:"feeds"`
}

// LoadFeeds reads feeds.yaml. A missing file yields an empty feed list.
func LoadFeeds() (*Feeds, error) {
	data, err := os.ReadFile(GetFeedsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Feeds{}, nil
		}
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	var feeds Feeds
	if err := yaml.Unmarshal(data, &feeds); err != nil {
		return nil, fmt.Errorf("invalid feeds.yaml: %w", err)
	}
	return &feeds, nil
}

// SaveFeeds writes feeds.yaml with owner-only permissions, since feed
// URLs may embed access tokens.
func SaveFeeds(feeds *Feeds) error {
	if err := os.MkdirAll(GetHomeDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(feeds)
	if err != nil {
		return fmt.Errorf("failed to marshal feeds: %w", err)
	}
	if err := os.WriteFile(GetFeedsPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write feeds file: %w", err)
	}
	return nil
}
