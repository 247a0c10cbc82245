package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticSourceReturnsConfiguredItems(t *testing.T) {
	items := []string{"project_001", "project_002", "man_vs_bee"}
	src := NewStatic(items)

	got, err := src.Candidates()
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestDirectorySourceListsSubdirectories(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"project_002", "project_001", "man_vs_bee"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
	}
	// Plain files are not candidates
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	src := NewDirectory(root)
	got, err := src.Candidates()
	require.NoError(t, err)
	require.Equal(t, []string{"man_vs_bee", "project_001", "project_002"}, got)
}

func TestDirectorySourcePicksUpNewProjects(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "project_001"), 0755))

	src := NewDirectory(root)
	got, err := src.Candidates()
	require.NoError(t, err)
	require.Len(t, got, 1)

	// A directory created after the first read shows up on the next one
	require.NoError(t, os.Mkdir(filepath.Join(root, "project_002"), 0755))
	got, err = src.Candidates()
	require.NoError(t, err)
	require.Equal(t, []string{"project_001", "project_002"}, got)
}

func TestDirectorySourceFailsOnMissingRoot(t *testing.T) {
	src := NewDirectory(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := src.Candidates()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list projects")
}
