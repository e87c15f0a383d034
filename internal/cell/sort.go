package cell

import (
	"cmp"
	"slices"
)

// Sort returns a copy of cells ordered by the values of keys, compared
// left to right as plain strings. Equal cells keep their scan order and no
// keys means scan order.
func Sort(cells []Cell, keys []Field) []Cell {
	sorted := slices.Clone(cells)
	if len(keys) == 0 {
		return sorted
	}
	slices.SortStableFunc(sorted, func(a, b Cell) int {
		for _, k := range keys {
			if c := cmp.Compare(a.Value(k), b.Value(k)); c != 0 {
				return c
			}
		}
		return 0
	})
	return sorted
}
