package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Empty(t, cfg.Theme)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := &Config{
		ServerURL:    "https://portfolio.example.com",
		ProjectsPath: "/data/projects.json",
		Theme:        "light",
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFillsInDefaultServerURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "dark"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestResolveInitialThemeUsesPersistedValue(t *testing.T) {
	assert.Equal(t, "dark", (&Config{Theme: "dark"}).ResolveInitialTheme())
	assert.Equal(t, "light", (&Config{Theme: "light"}).ResolveInitialTheme())
}

func TestResolveInitialThemeIgnoresGarbage(t *testing.T) {
	// An unknown persisted value falls back to the terminal hint, which is
	// always one of the two valid themes.
	got := (&Config{Theme: "solarized"}).ResolveInitialTheme()
	assert.Contains(t, []string{"light", "dark"}, got)
}

func TestToggleThemeFlipsValue(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{ServerURL: DefaultServerURL}

	next, err := cfg.ToggleTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, "light", next)
	assert.Equal(t, "light", cfg.Theme)

	next, err = cfg.ToggleTheme(next)
	require.NoError(t, err)
	assert.Equal(t, "dark", next)

	// The flip was persisted: only the single stored value survives.
	path, err := Path()
	require.NoError(t, err)
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme)
}
