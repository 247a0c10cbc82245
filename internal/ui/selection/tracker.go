// Package selection tracks which row of the filtered list is highlighted
// and keeps the highlight on the same item across re-filtering.
package selection

// Direction is a highlight movement direction
type Direction int

const (
	Next Direction = iota
	Previous
)

// Move returns the new highlight index after moving in the given
// direction. Movement saturates at both ends: it never wraps and never
// leaves [0, length-1]. An empty list is a no-op returning 0.
func Move(index, length int, dir Direction) int {
	if length <= 0 {
		return 0
	}

	switch dir {
	case Next:
		if index < length-1 {
			return index + 1
		}
		return length - 1
	case Previous:
		if index > 0 {
			return index - 1
		}
		return 0
	}

	return Clamp(index, length)
}

// Carry maps a highlight position from the old filtered list onto the
// new one, keeping the highlight on the same item when it survived the
// re-filter. Lookup is by exact value, linear scan: the filtered list
// preserves candidate order and is not sorted, so no faster search
// applies. Falls back to 0 when the item is gone or the old index was
// out of bounds.
func Carry(oldList []string, oldIndex int, newList []string) int {
	if oldIndex < 0 || oldIndex >= len(oldList) {
		return 0
	}

	highlighted := oldList[oldIndex]
	for i, item := range newList {
		if item == highlighted {
			return i
		}
	}

	return 0
}

// Clamp forces an index into the bounds of a list of the given length.
// Empty lists clamp to 0.
func Clamp(index, length int) int {
	if length <= 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
