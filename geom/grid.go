package geom

// Grid conversions used by the calendar picker: pointer coordinates to cell
// indices and back. Cells are numbered row-major from the top-left.

// CellAt converts a screen point to a cell index within a rows×cols grid
// occupying the given bounds.
//
// Parameters:
//   - px, py: Point in screen pixels
//   - gx, gy, gw, gh: Grid bounds in screen pixels
//   - rows, cols: Grid dimensions
//
// Returns:
//   - index: Row-major cell index
//   - ok: false when the point lies outside the grid bounds
func CellAt(px, py, gx, gy, gw, gh float64, rows, cols int) (index int, ok bool) {
	if gw <= 0 || gh <= 0 || rows <= 0 || cols <= 0 {
		return 0, false
	}
	if px < gx || py < gy || px >= gx+gw || py >= gy+gh {
		return 0, false
	}

	col := int((px - gx) / gw * float64(cols))
	row := int((py - gy) / gh * float64(rows))

	// A point just inside the far edge can still round one past the last
	// cell; clamp instead of failing.
	if col >= cols {
		col = cols - 1
	}
	if row >= rows {
		row = rows - 1
	}

	return row*cols + col, true
}

// CellRect returns the screen rectangle of the given cell index, the exact
// inverse of CellAt. Cell edges are computed as fractions of the full grid
// extent, so adjacent cells share edges exactly and the union of all cells
// equals the grid bounds with no accumulated rounding drift.
func CellRect(index int, gx, gy, gw, gh float64, rows, cols int) (x, y, w, h float64) {
	row := index / cols
	col := index % cols

	x0 := gridEdge(gx, gw, col, cols)
	x1 := gridEdge(gx, gw, col+1, cols)
	y0 := gridEdge(gy, gh, row, rows)
	y1 := gridEdge(gy, gh, row+1, rows)

	return x0, y0, x1 - x0, y1 - y0
}

// gridEdge returns the i-th of n+1 cell edges spanning [origin, origin+extent].
// The final edge is pinned to origin+extent: extent*n/n is not exactly extent
// in floating point, and the outer cells must land on the grid bounds.
func gridEdge(origin, extent float64, i, n int) float64 {
	if i == n {
		return origin + extent
	}
	return origin + extent*float64(i)/float64(n)
}
