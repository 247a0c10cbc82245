// Package source provides the candidate lists the picker filters over.
package source

import (
	"fmt"
	"os"
	"sort"
)

// Source supplies the full unfiltered list of selectable strings.
// Candidates is a pure read: implementations must not assume the caller
// keeps the returned slice, and callers must not mutate it. The picker
// re-fetches according to its refetch policy, so the list is allowed to
// change between calls.
type Source interface {
	Candidates() ([]string, error)
}

// StaticSource serves a fixed in-memory list
type StaticSource struct {
	items []string
}

// NewStatic creates a source over a fixed list of items
func NewStatic(items []string) *StaticSource {
	return &StaticSource{items: items}
}

// Candidates returns the configured list
func (s *StaticSource) Candidates() ([]string, error) {
	return s.items, nil
}

// DirectorySource lists the immediate subdirectories of a root directory,
// one candidate per directory name
type DirectorySource struct {
	root string
}

// NewDirectory creates a source over the subdirectories of root
func NewDirectory(root string) *DirectorySource {
	return &DirectorySource{root: root}
}

// Candidates reads the directory on every call so renames and new
// projects show up without restarting the picker
func (s *DirectorySource) Candidates() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects in %s: %w", s.root, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	// ReadDir already sorts by filename, but that is an implementation
	// detail of the os package; the picker's ordering contract is ours
	sort.Strings(names)

	return names, nil
}
