package ldtk

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Config selects the loader's runtime behavior. The zero value loads
// inline-levels projects with no default selection, so most callers can
// use a Loader without any configuration file.
type Config struct {
	// ExternalLevels enables external level storage. It must agree with
	// the manifest's own externalLevels flag; a mismatch aborts the load.
	ExternalLevels bool `yaml:"external_levels"`

	// Level optionally names the level a host should materialize first.
	Level LevelConfig `yaml:"level"`

	// Watch configures hot reloading of project and level files.
	Watch WatchConfig `yaml:"watch"`
}

// LevelConfig is the serializable form of a LevelSelection. At most one
// field should be set; Identifier wins over Iid, which wins over Index,
// which wins over Uid.
type LevelConfig struct {
	Identifier string `yaml:"identifier"`
	Iid        string `yaml:"iid"`
	Index      *int   `yaml:"index"`
	Uid        *int   `yaml:"uid"`
}

// Selection converts the configured level choice into a LevelSelection.
// It reports false when no field is set.
func (c LevelConfig) Selection() (LevelSelection, bool) {
	switch {
	case c.Identifier != "":
		return SelectIdentifier(c.Identifier), true
	case c.Iid != "":
		return SelectIid(c.Iid), true
	case c.Index != nil:
		return SelectIndex(*c.Index), true
	case c.Uid != nil:
		return SelectUid(*c.Uid), true
	}
	return LevelSelection{}, false
}

// WatchConfig configures the hot-reload watcher.
type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
	// DebounceMillis suppresses duplicate change events per file within
	// the given window. Zero means the 100ms default.
	DebounceMillis int `yaml:"debounce_ms"`
}

// LoadConfig reads a YAML loader configuration from a filesystem.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("ldtk: read config %s: %w", name, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("ldtk: parse config %s: %w", name, err)
	}
	return cfg, nil
}
