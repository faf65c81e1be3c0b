package ldtk

// Vec2 is a 2D vector used for translations, offsets, and sizes in world
// space (Y increasing upward).
type Vec2 struct {
	X, Y float64
}

// GridVec is a signed 2D integer coordinate in source (Y-down) pixel or
// grid units, as read from an LDtk file.
type GridVec struct {
	X, Y int
}

// GridCoord is a 2D integer cell coordinate in target (Y-up) orientation.
// Both components are non-negative by construction; conversions that would
// produce a negative component report absence instead.
type GridCoord struct {
	X, Y int
}

// Transform is a world-space placement: a translation plus a 2D scale.
// Z is a caller-supplied layering value, never derived from LDtk data.
// No rotation is modeled; LDtk does not rotate tiles or entities beyond
// the flip flags carried on TileDescriptor.
type Transform struct {
	X, Y, Z        float64
	ScaleX, ScaleY float64
}

// TileDescriptor describes one synthesized tile: an index into the
// tileset's flattened grid plus flip flags. Value type, stored directly
// in lookup tables.
type TileDescriptor struct {
	// TextureIndex is tilesetRow * tilesetWidthInTiles + tilesetColumn,
	// both derived from the tile's source-pixel offset divided by the
	// tileset's per-tile pixel size.
	TextureIndex uint16
	FlipX        bool
	FlipY        bool
	// Visible is false only for tiles produced by InvisibleTiles
	// (int-grid layers without autotile visuals).
	Visible bool
}

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
