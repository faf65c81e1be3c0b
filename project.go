package ldtk

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Resolution-stage errors. These abort the whole project load.
var (
	// ErrExternalLevelProject: the manifest declares external level
	// storage, but the configuration does not enable it.
	ErrExternalLevelProject = errors.New("ldtk: project uses external levels, but external levels are not enabled")

	// ErrInternalLevelProject: external levels are enabled, but the
	// manifest stores its levels inline.
	ErrInternalLevelProject = errors.New("ldtk: external levels are enabled, but project uses internal levels")

	// ErrNullLayers: a level stored inline has null layerInstances.
	ErrNullLayers = errors.New("ldtk: internal level has null layerInstances")

	// ErrMissingExternalPath: external storage is active but a level
	// carries no externalRelPath.
	ErrMissingExternalPath = errors.New("ldtk: external level has no externalRelPath")
)

// LevelIndices locates a raw level within the project: a level index into
// either a world's level list or the project's flat level list. The world
// index is present only for multi-world projects.
type LevelIndices struct {
	world   int
	level   int
	inWorld bool
}

// NewLevelIndices locates a level in the project's flat level list.
func NewLevelIndices(level int) LevelIndices {
	return LevelIndices{level: level}
}

// NewWorldLevelIndices locates a level within a specific world.
func NewWorldLevelIndices(world, level int) LevelIndices {
	return LevelIndices{world: world, level: level, inWorld: true}
}

// Level returns the level's position within the relevant level list.
func (i LevelIndices) Level() int { return i.level }

// World returns the containing world's index and whether one is present.
func (i LevelIndices) World() (int, bool) { return i.world, i.inWorld }

// LevelMetadata is the resolved, immutable per-level record built during
// project resolution: where the level sits, its background image if any,
// and — in external mode — the handle to its external payload.
type LevelMetadata struct {
	indices       LevelIndices
	bgImage       *ImageHandle
	externalLevel *ExternalLevelHandle
}

// Indices returns the level's position within the project.
func (m *LevelMetadata) Indices() LevelIndices { return m.indices }

// BackgroundImage returns the level's background image handle, or nil when
// the level has none.
func (m *LevelMetadata) BackgroundImage() *ImageHandle { return m.bgImage }

// ExternalLevel returns the handle to the level's external payload, or nil
// when the project stores levels inline.
func (m *LevelMetadata) ExternalLevel() *ExternalLevelHandle { return m.externalLevel }

// Project is a fully resolved LDtk project: the raw manifest data plus the
// reference graph built from it. Built once at load time and read-only
// afterward, so it is safe for concurrent readers.
type Project struct {
	data       ProjectData
	tilesets   map[int]*ImageHandle
	entityDefs EntityDefinitionMap
	levelOrder []string // iids in insertion order
	levels     map[string]*LevelMetadata
}

// Data returns the raw manifest data.
func (p *Project) Data() *ProjectData { return &p.data }

// EntityDefinitions returns the project's entity definition table indexed
// by uid.
func (p *Project) EntityDefinitions() EntityDefinitionMap { return p.entityDefs }

// TilesetImage returns the deferred image handle for a tileset uid.
// Tilesets that could not be resolved (no relative path, embedded icons)
// are absent.
func (p *Project) TilesetImage(uid int) (*ImageHandle, bool) {
	h, ok := p.tilesets[uid]
	return h, ok
}

// LevelMetadataByIid returns the resolved metadata for a level.
func (p *Project) LevelMetadataByIid(iid string) (*LevelMetadata, bool) {
	m, ok := p.levels[iid]
	return m, ok
}

// LevelCount returns the number of indexed levels.
func (p *Project) LevelCount() int { return len(p.levelOrder) }

// LevelIids returns level iids in insertion order.
func (p *Project) LevelIids() []string {
	out := make([]string, len(p.levelOrder))
	copy(out, p.levelOrder)
	return out
}

// RawLevels returns all raw levels in iteration order: the flat level list
// first, then each world's levels in declaration order. Levels are
// "incomplete" (null layerInstances) in external-levels projects; use the
// metadata's ExternalLevel handle for full data.
func (p *Project) RawLevels() []*Level {
	out := make([]*Level, 0, len(p.levelOrder))
	for i := range p.data.Levels {
		out = append(out, &p.data.Levels[i])
	}
	for w := range p.data.Worlds {
		for i := range p.data.Worlds[w].Levels {
			out = append(out, &p.data.Worlds[w].Levels[i])
		}
	}
	return out
}

// RawLevelByIndices returns the raw level at the given (world, index)
// position.
func (p *Project) RawLevelByIndices(indices LevelIndices) (*Level, bool) {
	if w, ok := indices.World(); ok {
		if w < 0 || w >= len(p.data.Worlds) {
			return nil, false
		}
		levels := p.data.Worlds[w].Levels
		if indices.level < 0 || indices.level >= len(levels) {
			return nil, false
		}
		return &levels[indices.level], true
	}
	if indices.level < 0 || indices.level >= len(p.data.Levels) {
		return nil, false
	}
	return &p.data.Levels[indices.level], true
}

// RawLevelByIid returns the raw level with the given iid.
func (p *Project) RawLevelByIid(iid string) (*Level, bool) {
	meta, ok := p.levels[iid]
	if !ok {
		return nil, false
	}
	return p.RawLevelByIndices(meta.indices)
}

// RawLevelByIndex returns the raw level at the given flat position in the
// insertion-ordered index, independent of world.
func (p *Project) RawLevelByIndex(index int) (*Level, bool) {
	if index < 0 || index >= len(p.levelOrder) {
		return nil, false
	}
	return p.RawLevelByIid(p.levelOrder[index])
}

// FindRawLevel returns the first raw level matching the selection, in
// iteration order.
func (p *Project) FindRawLevel(sel LevelSelection) (*Level, bool) {
	switch sel.kind {
	case selectByIid:
		return p.RawLevelByIid(sel.iid)
	case selectByIndex:
		return p.RawLevelByIndex(sel.index)
	default:
		for i, level := range p.RawLevels() {
			if sel.Matches(i, level) {
				return level, true
			}
		}
		return nil, false
	}
}

// referenceResolver turns manifest-relative paths into deferred handles.
// The Loader is the production implementation.
type referenceResolver interface {
	imageHandle(relPath string) *ImageHandle
	externalLevelHandle(relPath string) *ExternalLevelHandle
}

// resolveProject builds the level index and reference graph from parsed
// manifest data. cfg's storage mode is validated against the manifest's
// own externalLevels flag before anything is resolved.
func resolveProject(data ProjectData, cfg Config, refs referenceResolver, log *logrus.Logger) (*Project, error) {
	if data.ExternalLevels && !cfg.ExternalLevels {
		return nil, ErrExternalLevelProject
	}
	if !data.ExternalLevels && cfg.ExternalLevels {
		return nil, ErrInternalLevelProject
	}

	p := &Project{
		data:       data,
		tilesets:   make(map[int]*ImageHandle),
		entityDefs: NewEntityDefinitionMap(data.Defs.Entities),
		levels:     make(map[string]*LevelMetadata),
	}

	for i := range p.data.Levels {
		if err := p.indexLevel(&p.data.Levels[i], NewLevelIndices(i), cfg, refs, log); err != nil {
			return nil, err
		}
	}
	for w := range p.data.Worlds {
		for i := range p.data.Worlds[w].Levels {
			level := &p.data.Worlds[w].Levels[i]
			if err := p.indexLevel(level, NewWorldLevelIndices(w, i), cfg, refs, log); err != nil {
				return nil, err
			}
		}
	}

	for _, tileset := range p.data.Defs.Tilesets {
		switch {
		case tileset.RelPath != "":
			p.tilesets[tileset.Uid] = refs.imageHandle(tileset.RelPath)
		case tileset.EmbedAtlas != "":
			log.WithField("tileset", tileset.Identifier).
				Warn("ldtk: ignoring embedded-icon tileset; its image is not distributable")
		default:
			log.WithField("tileset", tileset.Identifier).
				Warn("ldtk: tileset cannot be loaded, it has no relative path")
		}
	}

	return p, nil
}

func (p *Project) indexLevel(level *Level, indices LevelIndices, cfg Config, refs referenceResolver, log *logrus.Logger) error {
	meta := &LevelMetadata{indices: indices}

	if level.BgRelPath != "" {
		meta.bgImage = refs.imageHandle(level.BgRelPath)
	}

	if cfg.ExternalLevels {
		if level.ExternalRelPath == "" {
			return fmt.Errorf("%w: level %q", ErrMissingExternalPath, level.Identifier)
		}
		meta.externalLevel = refs.externalLevelHandle(level.ExternalRelPath)
	} else if level.LayerInstances == nil {
		return fmt.Errorf("%w: level %q", ErrNullLayers, level.Identifier)
	}

	if _, exists := p.levels[level.Iid]; exists {
		log.WithField("level", level.Identifier).
			Warn("ldtk: duplicate level iid, keeping the first occurrence")
		return nil
	}
	p.levelOrder = append(p.levelOrder, level.Iid)
	p.levels[level.Iid] = meta
	return nil
}
