package ldtk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"
)

// ErrExternalNullLayers: an external level payload must always carry
// non-null layerInstances; its whole purpose is to hold the layer data the
// manifest omits.
var ErrExternalNullLayers = errors.New("ldtk: external level has null layerInstances")

// LoadExternalLevel reads and parses one externally-stored level payload.
// It is only valid in external-levels mode.
func (l *Loader) LoadExternalLevel(name string) (*Level, error) {
	if !l.Config.ExternalLevels {
		return nil, fmt.Errorf("ldtk: %s files are only accepted when external levels are enabled", ExternalLevelExtension)
	}
	if path.Ext(name) != ExternalLevelExtension {
		return nil, fmt.Errorf("ldtk: external level must have the %s extension, got %s", ExternalLevelExtension, name)
	}

	b, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, fmt.Errorf("ldtk: read external level %s: %w", name, err)
	}

	var level Level
	if err := json.Unmarshal(b, &level); err != nil {
		return nil, fmt.Errorf("ldtk: parse external level %s: %w", name, err)
	}
	if level.LayerInstances == nil {
		return nil, fmt.Errorf("%w: %s", ErrExternalNullLayers, name)
	}
	return &level, nil
}

// ExternalLevelHandle is a deferred reference to an externally-stored level
// payload, loaded on first use and cached. Safe for concurrent use.
type ExternalLevelHandle struct {
	loader *Loader
	path   string

	once  sync.Once
	level *Level
	err   error
}

// Path returns the payload path within the loader's filesystem.
func (h *ExternalLevelHandle) Path() string { return h.path }

// Level fetches and parses the payload on first call; later calls return
// the cached result.
func (h *ExternalLevelHandle) Level() (*Level, error) {
	h.once.Do(func() {
		h.level, h.err = h.loader.LoadExternalLevel(h.path)
	})
	return h.level, h.err
}
