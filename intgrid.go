package ldtk

import "fmt"

// ErrIntGridSize reports an intGridCsv array whose length disagrees with
// the layer's declared width*height. The manifest and its schema disagree;
// this is not silently patched.
var ErrIntGridSize = fmt.Errorf("ldtk: intGridCsv length does not match layer dimensions")

// IntGridIndexToTileCell maps an index of a layer's flat intGridCsv array
// to the corresponding tile cell in target orientation. It reports false
// when either dimension is zero or when the index falls outside the grid.
func IntGridIndexToTileCell(index, widthInCells, heightInCells int) (GridCoord, bool) {
	if widthInCells <= 0 || heightInCells <= 0 {
		// Zero-area layers are legitimately empty; also guards the
		// division and modulo below.
		return GridCoord{}, false
	}

	x := index % widthInCells
	invertedY := (index - x) / widthInCells
	if invertedY >= heightInCells {
		return GridCoord{}, false
	}

	return GridToTileCell(GridVec{X: x, Y: invertedY}, heightInCells)
}

// CellMask records, per tile cell, whether the layer's int-grid value at
// that cell is non-zero. It is built once per layer and queried read-only.
// The zero value is an empty mask that reports false everywhere.
type CellMask struct {
	width, height int
	nonzero       []bool // dense, row-major in target orientation
}

// NewCellMask builds a CellMask from a layer's flat intGridCsv values.
// values is row-major in source orientation (first entry is the top-left
// cell). A zero-area layer yields an empty mask. A length mismatch between
// values and width*height returns ErrIntGridSize.
func NewCellMask(values []int, widthInCells, heightInCells int) (*CellMask, error) {
	if widthInCells <= 0 || heightInCells <= 0 {
		return &CellMask{}, nil
	}
	if len(values) != widthInCells*heightInCells {
		return nil, fmt.Errorf("%w: got %d values for %dx%d cells",
			ErrIntGridSize, len(values), widthInCells, heightInCells)
	}

	m := &CellMask{
		width:   widthInCells,
		height:  heightInCells,
		nonzero: make([]bool, widthInCells*heightInCells),
	}
	for i, v := range values {
		cell, ok := IntGridIndexToTileCell(i, widthInCells, heightInCells)
		if !ok {
			// Unreachable once the length check passed.
			return nil, fmt.Errorf("%w: index %d out of range", ErrIntGridSize, i)
		}
		m.nonzero[cell.Y*widthInCells+cell.X] = v != 0
	}
	return m, nil
}

// At reports whether the int-grid value at the given cell is non-zero.
// Cells outside the mask report false.
func (m *CellMask) At(c GridCoord) bool {
	if c.X < 0 || c.X >= m.width || c.Y < 0 || c.Y >= m.height {
		return false
	}
	return m.nonzero[c.Y*m.width+c.X]
}

// Width returns the mask width in cells.
func (m *CellMask) Width() int { return m.width }

// Height returns the mask height in cells.
func (m *CellMask) Height() int { return m.height }
