package ldtk

// A TileMaker answers "what tile, if any, goes in this cell" for one layer.
// Implementations are built once per layer over an immutable table and then
// queried exactly once per cell while the layer is materialized; a cell
// with no recorded tile yields absence, never an error.
type TileMaker interface {
	TileAt(cell GridCoord) (TileDescriptor, bool)
}

// TileLookup is a TileMaker matching the tileset visuals of an LDtk layer:
// Tile and AutoLayer layers, and IntGrid layers with autotile visuals.
// It stores descriptors in a dense row-major table sized to the layer.
type TileLookup struct {
	width, height int
	tiles         []TileDescriptor
	present       []bool
}

// flipFlags decodes an LDtk flip code.
func flipFlags(f int) (flipX, flipY bool) {
	switch f {
	case 1:
		return true, false
	case 2:
		return false, true
	case 3:
		return true, true
	default:
		return false, false
	}
}

// NewTileLookup builds a TileLookup from a layer's raw tile placement
// records. Records are processed in input order; when two records land in
// the same cell (overlapping stamps), the later one wins. Records whose
// pixel position falls outside the layer are ignored.
func NewTileLookup(widthInCells, heightInCells, layerGridSize int, tileset TilesetDefinition, tiles []TileInstance) *TileLookup {
	l := &TileLookup{
		width:   widthInCells,
		height:  heightInCells,
		tiles:   make([]TileDescriptor, widthInCells*heightInCells),
		present: make([]bool, widthInCells*heightInCells),
	}
	if layerGridSize <= 0 || tileset.TileGridSize <= 0 {
		return l
	}

	for _, t := range tiles {
		cell, ok := GridToTileCell(GridVec{X: t.Px[0] / layerGridSize, Y: t.Px[1] / layerGridSize}, heightInCells)
		if !ok || cell.X >= widthInCells || cell.Y >= heightInCells {
			continue
		}

		col := t.Src[0] / tileset.TileGridSize
		row := t.Src[1] / tileset.TileGridSize
		fx, fy := flipFlags(t.F)

		i := cell.Y*widthInCells + cell.X
		l.tiles[i] = TileDescriptor{
			TextureIndex: uint16(row*tileset.CWid + col),
			FlipX:        fx,
			FlipY:        fy,
			Visible:      true,
		}
		l.present[i] = true
	}
	return l
}

// TileAt returns the descriptor recorded for the cell, if any.
func (l *TileLookup) TileAt(cell GridCoord) (TileDescriptor, bool) {
	if cell.X < 0 || cell.X >= l.width || cell.Y < 0 || cell.Y >= l.height {
		return TileDescriptor{}, false
	}
	i := cell.Y*l.width + cell.X
	if !l.present[i] {
		return TileDescriptor{}, false
	}
	return l.tiles[i], true
}

// invisibleTiles produces a fixed not-visible descriptor for every cell.
type invisibleTiles struct{}

func (invisibleTiles) TileAt(GridCoord) (TileDescriptor, bool) {
	return TileDescriptor{Visible: false}, true
}

// InvisibleTiles returns a TileMaker that yields an invisible tile for
// every cell. Used for IntGrid layers that carry no autotile visuals, so
// that gated cells still occupy the grid.
func InvisibleTiles() TileMaker {
	return invisibleTiles{}
}

// maskedTiles gates another TileMaker by an int-grid cell mask.
type maskedTiles struct {
	inner TileMaker
	mask  *CellMask
}

func (m maskedTiles) TileAt(cell GridCoord) (TileDescriptor, bool) {
	if !m.mask.At(cell) {
		return TileDescriptor{}, false
	}
	return m.inner.TileAt(cell)
}

// GateByMask wraps a TileMaker so it only yields tiles where the mask
// records a non-zero int-grid value.
func GateByMask(inner TileMaker, mask *CellMask) TileMaker {
	return maskedTiles{inner: inner, mask: mask}
}

// TileBundle is a placement-ready tile: the descriptor plus the world
// transform of the cell's center. This is the shape handed to layer
// construction in the host engine.
type TileBundle struct {
	Tile      TileDescriptor
	Transform Transform
}

// BundleMaker lifts a TileMaker into per-cell TileBundles, pairing each
// descriptor with its cell-center transform at the given z.
type BundleMaker struct {
	inner    TileMaker
	cellSize int
	z        float64
}

// NewBundleMaker wraps a TileMaker for a layer with the given cell size in
// pixels and layering value.
func NewBundleMaker(inner TileMaker, cellSizePx int, z float64) *BundleMaker {
	return &BundleMaker{inner: inner, cellSize: cellSizePx, z: z}
}

// BundleAt returns the placement bundle for a cell, if the underlying
// maker yields a tile there.
func (b *BundleMaker) BundleAt(cell GridCoord) (TileBundle, bool) {
	tile, ok := b.inner.TileAt(cell)
	if !ok {
		return TileBundle{}, false
	}
	return TileBundle{
		Tile:      tile,
		Transform: CellToTranslation(cell, b.cellSize, b.z),
	}, true
}

// ForEachBundle queries the maker once per cell of a width x height layer
// in row-major target order, invoking fn for every produced bundle.
func (b *BundleMaker) ForEachBundle(widthInCells, heightInCells int, fn func(cell GridCoord, bundle TileBundle)) {
	for y := 0; y < heightInCells; y++ {
		for x := 0; x < widthInCells; x++ {
			cell := GridCoord{X: x, Y: y}
			if bundle, ok := b.BundleAt(cell); ok {
				fn(cell, bundle)
			}
		}
	}
}
