package ldtk

import "fmt"

// ErrUnknownEntityDefinition reports an entity instance whose defUid is
// absent from the project's definition table. Instances and definitions
// come from the same manifest, so this indicates the manifest and its
// schema disagree; callers should treat it as unrecoverable.
var ErrUnknownEntityDefinition = fmt.Errorf("ldtk: entity instance references unknown definition")

// EntityDefinitionMap indexes entity definitions by uid.
type EntityDefinitionMap map[int]*EntityDefinition

// NewEntityDefinitionMap builds the uid index for a project's entity
// definition table.
func NewEntityDefinitionMap(defs []EntityDefinition) EntityDefinitionMap {
	m := make(EntityDefinitionMap, len(defs))
	for i := range defs {
		m[defs[i].Uid] = &defs[i]
	}
	return m
}

// EntityTransform computes the world-space placement of an entity instance.
//
// The translation anchors the instance's own bounding box at its pivot.
// Scale is instance size over natural size per axis, where the natural size
// is the tile-crop rectangle when the instance carries one and the
// definition's size otherwise; this supports entities resized independently
// per axis in the editor. z is the caller's layering value.
func EntityTransform(inst *EntityInstance, defs EntityDefinitionMap, levelHeightPx int, z float64) (Transform, error) {
	def, ok := defs[inst.DefUid]
	if !ok {
		return Transform{}, fmt.Errorf("%w: %q defUid %d", ErrUnknownEntityDefinition, inst.Identifier, inst.DefUid)
	}

	natural := GridVec{X: def.Width, Y: def.Height}
	if inst.Tile != nil {
		natural = GridVec{X: inst.Tile.SrcRect[2], Y: inst.Tile.SrcRect[3]}
	}

	size := GridVec{X: inst.Width, Y: inst.Height}
	translation := PixelToTranslationPivoted(
		GridVec{X: inst.Px[0], Y: inst.Px[1]},
		levelHeightPx,
		size,
		Vec2{X: inst.Pivot[0], Y: inst.Pivot[1]},
	)

	return Transform{
		X:      translation.X,
		Y:      translation.Y,
		Z:      z,
		ScaleX: float64(size.X) / float64(natural.X),
		ScaleY: float64(size.Y) / float64(natural.Y),
	}, nil
}
