package mapeditor

import "fmt"

const DefaultSearchRadius = 3

// FindNearbyEmptyCell scans square rings of growing Chebyshev radius around
// (row, col) and returns the first free cell. Within a ring cells are visited
// row-major over dr, dc in [-r, r], boundary only. Cells off the grid are
// skipped.
func (e *Editor) FindNearbyEmptyCell(row, col, maxRadius int) (int, int, error) {
	for r := 1; r <= maxRadius; r++ {
		for dr := -r; dr <= r; dr++ {
			for dc := -r; dc <= r; dc++ {
				if abs(dr) != r && abs(dc) != r {
					continue
				}
				nr, nc := row+dr, col+dc
				if !InBounds(nr, nc) {
					continue
				}
				if !e.grid.IsOccupied(nr, nc, nil) {
					return nr, nc, nil
				}
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: near [%d, %d] within %d", ErrNoSpaceAvailable, row, col, maxRadius)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
