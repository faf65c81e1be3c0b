package ecs

import (
	"github.com/phanxgames/ldtk"

	"github.com/yohamta/donburi"
)

// WorldTransform is the donburi component carrying the placement computed
// for each spawned entity or int-grid cell.
var WorldTransform = donburi.NewComponentType[ldtk.Transform]()

// EntitySpawn describes one entity instance about to be spawned.
type EntitySpawn struct {
	Instance  *ldtk.EntityInstance
	Layer     *ldtk.LayerInstance
	Transform ldtk.Transform
}

// IntCellSpawn describes one non-zero int-grid cell about to be spawned.
type IntCellSpawn struct {
	Value     int
	Cell      ldtk.GridCoord
	Layer     *ldtk.LayerInstance
	Transform ldtk.Transform
}

// EntitySpawner attaches components to the entry created for an entity
// instance. The entry already carries [WorldTransform].
type EntitySpawner func(w donburi.World, entry *donburi.Entry, spawn EntitySpawn)

// IntCellSpawner attaches components to the entry created for an int-grid
// cell. The entry already carries [WorldTransform].
type IntCellSpawner func(w donburi.World, entry *donburi.Entry, spawn IntCellSpawn)

// Registry maps LDtk content to spawn functions. Registrations are keyed by
// an optional identifier/value and an optional layer identifier; lookups
// resolve the most specific registration, so an exact pair beats a
// layer-generic registration, which beats an identifier-generic one, which
// beats the fully generic fallback set with [Registry.SetDefaultEntitySpawner]
// or [Registry.SetDefaultIntCellSpawner].
//
// Content with no matching registration and no default is not spawned.
type Registry struct {
	entities       *ldtk.PermutationMap[string, string, EntitySpawner]
	cells          *ldtk.PermutationMap[int, string, IntCellSpawner]
	defaultEntity  EntitySpawner
	defaultIntCell IntCellSpawner
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: ldtk.NewPermutationMap[string, string, EntitySpawner](),
		cells:    ldtk.NewPermutationMap[int, string, IntCellSpawner](),
	}
}

// RegisterEntity registers fn for entity instances whose identifier matches
// entityIdentifier on layers whose identifier matches layerIdentifier. A nil
// key is generic for that dimension; use [ldtk.Ptr] to build keys.
func (r *Registry) RegisterEntity(entityIdentifier, layerIdentifier *string, fn EntitySpawner) {
	r.entities.Set(entityIdentifier, layerIdentifier, fn)
}

// RegisterIntCell registers fn for int-grid cells whose value matches value
// on layers whose identifier matches layerIdentifier. A nil key is generic
// for that dimension.
func (r *Registry) RegisterIntCell(value *int, layerIdentifier *string, fn IntCellSpawner) {
	r.cells.Set(value, layerIdentifier, fn)
}

// SetDefaultEntitySpawner sets the spawner used for entity instances with no
// matching registration. Pass a no-op function to spawn bare transform
// entries for everything.
func (r *Registry) SetDefaultEntitySpawner(fn EntitySpawner) {
	r.defaultEntity = fn
}

// SetDefaultIntCellSpawner sets the spawner used for non-zero int-grid cells
// with no matching registration.
func (r *Registry) SetDefaultIntCellSpawner(fn IntCellSpawner) {
	r.defaultIntCell = fn
}

// SpawnLevel walks the level's layers and spawns one donburi entry per
// registered entity instance and per registered non-zero int-grid cell.
// Layers are assigned increasing Z depth from the bottom of the stack, so
// the level's topmost layer spawns with the highest Z.
//
// The level must carry layer data: pass an inline level, or the payload
// returned by an [ldtk.ExternalLevelHandle].
func (r *Registry) SpawnLevel(w donburi.World, level *ldtk.Level, defs ldtk.EntityDefinitionMap) ([]*donburi.Entry, error) {
	var spawned []*donburi.Entry

	layers := level.LayerInstances
	for i := range layers {
		layer := &layers[i]
		z := float64(len(layers) - 1 - i)

		switch layer.Type {
		case ldtk.LayerTypeEntities:
			for j := range layer.EntityInstances {
				inst := &layer.EntityInstances[j]
				fn := r.entities.Resolve(inst.Identifier, layer.Identifier, r.defaultEntity)
				if fn == nil {
					continue
				}
				transform, err := ldtk.EntityTransform(inst, defs, level.PxHei, z)
				if err != nil {
					return spawned, err
				}
				entry := newTransformEntry(w, transform)
				fn(w, entry, EntitySpawn{Instance: inst, Layer: layer, Transform: transform})
				spawned = append(spawned, entry)
			}

		case ldtk.LayerTypeIntGrid:
			for index, value := range layer.IntGridCSV {
				if value == 0 {
					continue
				}
				fn := r.cells.Resolve(value, layer.Identifier, r.defaultIntCell)
				if fn == nil {
					continue
				}
				cell, ok := ldtk.IntGridIndexToTileCell(index, layer.CWid, layer.CHei)
				if !ok {
					continue
				}
				transform := ldtk.CellToTranslation(cell, layer.GridSize, z)
				entry := newTransformEntry(w, transform)
				fn(w, entry, IntCellSpawn{Value: value, Cell: cell, Layer: layer, Transform: transform})
				spawned = append(spawned, entry)
			}
		}
	}
	return spawned, nil
}

func newTransformEntry(w donburi.World, transform ldtk.Transform) *donburi.Entry {
	entity := w.Create(WorldTransform)
	entry := w.Entry(entity)
	donburi.SetValue(entry, WorldTransform, transform)
	return entry
}
