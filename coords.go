package ldtk

// LDtk stores every spatial quantity with the Y axis pointing down, while
// world space points Y up. Every conversion in this file passes through
// flipY exactly once, at the granularity (pixel or cell) of its input.

// flipY is the core orientation inversion. extent is the total height of
// the space being flipped, in the same units as y.
func flipY(y, extent int) int {
	return extent - y - 1
}

// PixelToTranslation converts an LDtk pixel coordinate to a world-space
// translation, given the pixel height of the containing level or layer.
func PixelToTranslation(px GridVec, pixelHeight int) Vec2 {
	return Vec2{X: float64(px.X), Y: float64(flipY(px.Y, pixelHeight))}
}

// TranslationToPixel is the inverse of PixelToTranslation. The fractional
// part of the translation is truncated.
func TranslationToPixel(t Vec2, pixelHeight int) GridVec {
	return GridVec{X: int(t.X), Y: flipY(int(t.Y), pixelHeight)}
}

// GridToTileCell converts an LDtk grid coordinate to a tile cell in target
// orientation. It reports false if either resulting component would be
// negative, which only happens on malformed input (a coordinate outside
// the grid implied by gridHeight).
func GridToTileCell(g GridVec, gridHeight int) (GridCoord, bool) {
	y := flipY(g.Y, gridHeight)
	if g.X < 0 || y < 0 {
		return GridCoord{}, false
	}
	return GridCoord{X: g.X, Y: y}, true
}

// TileCellToGrid is the exact inverse of GridToTileCell; the two round-trip
// for all valid inputs.
func TileCellToGrid(c GridCoord, gridHeight int) GridVec {
	return GridVec{X: c.X, Y: flipY(c.Y, gridHeight)}
}

// GridToTranslation converts an LDtk grid coordinate to the world-space
// translation of the cell's corner point, given the grid height in cells
// and the cell size in pixels.
func GridToTranslation(g GridVec, gridHeight int, cellSize GridVec) Vec2 {
	px := GridVec{X: g.X * cellSize.X, Y: g.Y * cellSize.Y}
	return PixelToTranslation(px, gridHeight*cellSize.Y)
}

// GridToTranslationCentered is GridToTranslation offset by one half-cell in
// each axis, anchoring at the cell's center instead of its corner.
func GridToTranslationCentered(g GridVec, gridHeight int, cellSize GridVec) Vec2 {
	t := GridToTranslation(g, gridHeight, cellSize)
	return Vec2{X: t.X + float64(cellSize.X)/2, Y: t.Y - float64(cellSize.Y)/2}
}

// CellToTranslation places a tile cell's center in world space, following
// the convention that cell (0, 0) has its center at
// (cellSize/2, cellSize/2). z is the caller's layering value.
func CellToTranslation(c GridCoord, cellSizePx int, z float64) Transform {
	size := float64(cellSizePx)
	return Transform{
		X:      size * (float64(c.X) + 0.5),
		Y:      size * (float64(c.Y) + 0.5),
		Z:      z,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// PixelToTranslationPivoted converts an LDtk pixel coordinate to a
// world-space translation anchored at the given pivot. size is the anchored
// box in pixels; pivot components are in [0, 1], where (0, 0) is the
// top-left corner in LDtk's convention and (0.5, 0.5) yields no offset.
func PixelToTranslationPivoted(px GridVec, pixelHeight int, size GridVec, pivot Vec2) Vec2 {
	point := PixelToTranslation(px, pixelHeight)
	return Vec2{
		X: point.X + float64(size.X)*(0.5-pivot.X),
		Y: point.Y + float64(size.Y)*(pivot.Y-0.5),
	}
}
