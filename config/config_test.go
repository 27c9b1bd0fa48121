package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, NewDefault(), cfg)
	assert.Equal(t, 20*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 400*time.Millisecond, cfg.DoubleClickWindow())
}

func TestLoadBrokenGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, NewDefault(), cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"palette_path":"other.csv","double_click_ms":-5}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.PalettePath)
	assert.Equal(t, "Image Window", cfg.WindowTitle)
	assert.Equal(t, 400, cfg.DoubleClickMS)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	want := NewDefault()
	want.ShowMonitor = true
	want.PollIntervalMS = 33

	require.NoError(t, Save(want, path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"show_monitor\": true")
}

func TestTPS(t *testing.T) {
	cfg := NewDefault()
	assert.Equal(t, 50, cfg.TPS())

	cfg.PollIntervalMS = 5000
	assert.Equal(t, 1, cfg.TPS())

	cfg.PollIntervalMS = 16
	assert.Equal(t, 62, cfg.TPS())
}
