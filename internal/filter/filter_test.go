package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var projects = []string{
	"some_very_long_project_name",
	"some_other_long_project_name",
	"project_001",
	"project_002",
	"man_vs_bee",
	"asset_library_2024",
}

func TestSubstringFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "common prefix",
			query: "project",
			want: []string{
				"some_very_long_project_name",
				"some_other_long_project_name",
				"project_001",
				"project_002",
			},
		},
		{
			name:  "middle of the word",
			query: "vs",
			want:  []string{"man_vs_bee"},
		},
		{
			name:  "single candidate",
			query: "asset",
			want:  []string{"asset_library_2024"},
		},
		{
			name:  "no matches",
			query: "xyz",
			want:  nil,
		},
		{
			name:  "case sensitive",
			query: "PROJECT",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(Substring{}, tt.query, projects)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEmptyQueryReturnsEverything(t *testing.T) {
	got := Apply(Substring{}, "", projects)
	require.Equal(t, projects, got)
}

func TestFilterPreservesCandidateOrder(t *testing.T) {
	got := Apply(Substring{}, "o", projects)

	// Every result must appear in the same relative order as the input
	lastIndex := -1
	for _, item := range got {
		idx := indexOf(projects, item)
		require.Greater(t, idx, lastIndex, "order not preserved for %q", item)
		lastIndex = idx
	}
}

func TestEveryResultContainsQuery(t *testing.T) {
	for _, query := range []string{"p", "pr", "proj", "_", "2024"} {
		for _, item := range Apply(Substring{}, query, projects) {
			require.True(t, strings.Contains(item, query),
				"%q does not contain %q", item, query)
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	once := Apply(Substring{}, "project", projects)
	twice := Apply(Substring{}, "project", once)
	require.Equal(t, once, twice)
}

func TestFuzzyMatchesNonAdjacentCharacters(t *testing.T) {
	// "p0" is not a contiguous substring of either project name, but the
	// characters appear in order
	got := Apply(Fuzzy{}, "p0", projects)
	require.Equal(t, []string{"project_001", "project_002"}, got)
}

func TestFuzzyKeepsCandidateOrder(t *testing.T) {
	// sahilm/fuzzy ranks by match quality; Apply must discard that and
	// keep candidate order
	candidates := []string{"ab_long_name", "ab"}
	got := Apply(Fuzzy{}, "ab", candidates)
	require.Equal(t, candidates, got)
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
