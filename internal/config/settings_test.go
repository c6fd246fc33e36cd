package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHomeDir_HonorsOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WEEKPLANER_HOME", dir)

	assert.Equal(t, dir, GetHomeDir())
	assert.Equal(t, filepath.Join(dir, "weekplaner.db"), GetDBPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(dir, "feeds.yaml"), GetFeedsPath())
}

func TestLoadSettings_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("WEEKPLANER_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.False(t, settings.DebugEnabled(false))
	assert.Equal(t, 1000, settings.MaxLogFilesOrDefault())
	assert.Equal(t, 30, settings.GranularityOrDefault())
}

func TestSaveSettings_LoadSettings_RoundTrip(t *testing.T) {
	t.Setenv("WEEKPLANER_HOME", t.TempDir())

	debug := true
	maxLogFiles := 50
	granularity := 15
	saved := &Settings{
		Debug:          &debug,
		MaxLogFiles:    &maxLogFiles,
		GranularityMin: &granularity,
		TravelDefaults: map[string]int{"Rivalenhalle": 75},
		SSHPort:        "2323",
	}
	require.NoError(t, SaveSettings(saved))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
	assert.True(t, loaded.DebugEnabled(false))
	assert.Equal(t, 50, loaded.MaxLogFilesOrDefault())
	assert.Equal(t, 15, loaded.GranularityOrDefault())
}

func TestSettings_CLIFlagOverridesDebug(t *testing.T) {
	s := &Settings{}
	assert.True(t, s.DebugEnabled(true))
}

func TestSettings_ZeroGranularityFallsBack(t *testing.T) {
	zero := 0
	s := &Settings{GranularityMin: &zero}
	assert.Equal(t, 30, s.GranularityOrDefault())
}

func TestLoadFeeds_MissingFileYieldsEmptyList(t *testing.T) {
	t.Setenv("WEEKPLANER_HOME", t.TempDir())

	feeds, err := LoadFeeds()
	require.NoError(t, err)
	assert.Empty(t, feeds.Feeds)
}

func TestSaveFeeds_LoadFeeds_RoundTrip(t *testing.T) {
	t.Setenv("WEEKPLANER_HOME", t.TempDir())

	saved := &Feeds{Feeds: []Feed{
		{URL: "https://league.example/m1.ics", ID: "m1", Name: "Men I fixtures", Team: "M1", Location: "Heimhalle"},
		{URL: "https://league.example/w1.ics", ID: "w1", Name: "Women I fixtures", Team: "W1"},
	}}
	require.NoError(t, SaveFeeds(saved))

	loaded, err := LoadFeeds()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}
