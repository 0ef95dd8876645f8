package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TAGMORE_HOME", dir)

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, filepath.Join(dir, ConfigFileName))
}

func TestLoadConfigRoundTrip(t *testing.T) {
	t.Setenv("TAGMORE_HOME", t.TempDir())

	want := &Config{
		Gap:              2,
		MaxItemWidth:     24,
		ResizeDebounceMs: 80,
		Measurer:         "runewidth",
		EastAsianWidth:   true,
		WatchFile:        false,
	}
	require.NoError(t, SaveConfig(want))

	assert.Equal(t, want, LoadConfig())
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TAGMORE_HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"gap": 3}`), 0644))

	cfg := LoadConfig()

	assert.Equal(t, 3, cfg.Gap)
	assert.Equal(t, DefaultMaxItemWidth, cfg.MaxItemWidth)
	assert.True(t, cfg.WatchFile)
}

func TestLoadConfigBacksUpCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TAGMORE_HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"gap": `), 0644))

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
	backups, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{Gap: -1, MaxItemWidth: -4, ResizeDebounceMs: -10, Measurer: "canvas"}

	fixed := cfg.Normalize()

	assert.Len(t, fixed, 4)
	assert.Zero(t, cfg.Gap)
	assert.Zero(t, cfg.MaxItemWidth)
	assert.Zero(t, cfg.ResizeDebounceMs)
	assert.Equal(t, DefaultMeasurer, cfg.Measurer)

	assert.Empty(t, DefaultConfig().Normalize())
}

func TestResizeDebounce(t *testing.T) {
	assert.Equal(t, 50*time.Millisecond, DefaultConfig().ResizeDebounce())
}
