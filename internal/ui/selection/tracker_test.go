package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveSaturatesAtTheEnd(t *testing.T) {
	require.Equal(t, 1, Move(0, 3, Next))
	require.Equal(t, 2, Move(1, 3, Next))
	require.Equal(t, 2, Move(2, 3, Next), "must not move past the last item")
}

func TestMoveSaturatesAtTheStart(t *testing.T) {
	require.Equal(t, 1, Move(2, 3, Previous))
	require.Equal(t, 0, Move(1, 3, Previous))
	require.Equal(t, 0, Move(0, 3, Previous), "must not go negative")
}

func TestMoveOnEmptyListIsANoOp(t *testing.T) {
	require.Equal(t, 0, Move(0, 0, Next))
	require.Equal(t, 0, Move(0, 0, Previous))
	require.Equal(t, 0, Move(5, 0, Next), "stale index on an empty list")
}

func TestMoveStaysInBounds(t *testing.T) {
	for length := 1; length <= 5; length++ {
		for index := 0; index < length; index++ {
			next := Move(index, length, Next)
			require.GreaterOrEqual(t, next, 0)
			require.Less(t, next, length)

			prev := Move(index, length, Previous)
			require.GreaterOrEqual(t, prev, 0)
			require.Less(t, prev, length)
		}
	}
}

func TestCarryKeepsHighlightOnSameItem(t *testing.T) {
	oldList := []string{"project_001", "project_002", "man_vs_bee"}
	newList := []string{"project_002"}

	// "project_002" was highlighted and survives the re-filter at a new
	// position
	require.Equal(t, 0, Carry(oldList, 1, newList))
}

func TestCarryWithUnsortedLists(t *testing.T) {
	// The filtered list preserves candidate order and is not sorted;
	// lookup must still find the item
	oldList := []string{"zebra", "apple", "mango"}
	newList := []string{"zebra", "mango"}

	require.Equal(t, 1, Carry(oldList, 2, newList))
}

func TestCarryFallsBackWhenItemIsGone(t *testing.T) {
	oldList := []string{"project_001", "project_002"}
	newList := []string{"man_vs_bee"}

	require.Equal(t, 0, Carry(oldList, 1, newList))
}

func TestCarryWithOutOfBoundsOldIndex(t *testing.T) {
	list := []string{"project_001", "project_002"}

	require.Equal(t, 0, Carry(list, 5, list))
	require.Equal(t, 0, Carry(list, -1, list))
	require.Equal(t, 0, Carry(nil, 0, list))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		length int
		want   int
	}{
		{"in bounds", 1, 3, 1},
		{"past the end", 5, 3, 2},
		{"negative", -2, 3, 0},
		{"empty list", 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Clamp(tt.index, tt.length))
		})
	}
}
