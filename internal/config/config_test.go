package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService()

	cfg := &Config{
		Version:       1,
		Candidates:    []string{"project_001", "man_vs_bee"},
		Matcher:       MatcherFuzzy,
		RefetchPolicy: RefetchOnEmptyQueryOnly,
		UISettings: UISettings{
			ShowIndices:    true,
			AutosaveOnExit: false,
		},
	}

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadFromMissingPathFails(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file not found")
}

func TestLoadFillsInDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	// A minimal hand-written config with most fields missing
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, MatcherSubstring, cfg.Matcher)
	require.Equal(t, RefetchAlways, cfg.RefetchPolicy)
	require.Equal(t, DefaultCandidates(), cfg.Candidates)
}

func TestBaseDirSuppressesDefaultCandidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("base_dir = \"/mnt/projects\"\n"), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	// With a directory source configured there is no static fallback list
	require.Empty(t, cfg.Candidates)
	require.Equal(t, "/mnt/projects", cfg.BaseDir)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1, cfg.Version)
	require.Equal(t, MatcherSubstring, cfg.Matcher)
	require.Equal(t, RefetchAlways, cfg.RefetchPolicy)
	require.NotEmpty(t, cfg.Candidates)
	require.True(t, cfg.UISettings.AutosaveOnExit)
}
