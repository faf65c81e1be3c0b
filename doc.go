// Package ldtk loads [LDtk] project exports and turns their contents into
// placement-ready geometry for [Ebitengine] games.
//
// The library reads a project manifest (.ldtk) and, when the project is
// saved in "separate level files" mode, the per-level payloads (.ldtkl).
// From those it produces world-space transforms for tiles, int-grid cells,
// and entity instances, with the Y axis pointing up and tileset/background
// images resolved to lazily loaded handles.
//
// # Quick start
//
//	loader := &ldtk.Loader{FS: os.DirFS("assets")}
//	project, err := loader.LoadProject("world.ldtk")
//	if err != nil {
//		// ...
//	}
//
//	level, ok := project.FindRawLevel(ldtk.SelectIdentifier("Level_0"))
//
// # Coordinate spaces
//
// LDtk stores positions in source pixel space (Y grows downward) and grid
// space (row 0 at the top). Game placement happens in world space (Y grows
// upward, origin at the level's bottom-left). The conversion functions in
// this package ([PixelToTranslation], [GridToTileCell], [CellToTranslation],
// [EntityTransform], and friends) move values between these spaces; all of
// them flip Y against the relevant extent.
//
// # Tiles
//
// A [TileMaker] answers "what tile sits in this cell" for one layer. Build
// one with [NewTileLookup] from a layer's tile instances, gate it with
// [GateByMask] for int-grid-driven layers, and lift descriptors into
// [TileBundle] values with a [BundleMaker]:
//
//	lookup, err := ldtk.NewTileLookup(layer.CWid, layer.CHei, layer.GridSize, tileset, layer.GridTiles)
//	bundles := ldtk.NewBundleMaker(lookup, layer.GridSize, 0)
//	bundles.ForEachBundle(func(cell ldtk.GridCoord, b ldtk.TileBundle) { ... })
//
// # Entities
//
// [EntityTransform] computes a pivot-corrected, scaled world transform for
// an entity instance. ECS integration lives in the ldtk/ecs subpackage,
// which spawns registered entities and int-grid cells into a [Donburi]
// world.
//
// [LDtk]: https://ldtk.io
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package ldtk
