package ldtk

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
)

// File extensions of the two LDtk file kinds. External level payloads are
// only accepted when external-levels mode is active.
const (
	ProjectExtension       = ".ldtk"
	ExternalLevelExtension = ".ldtkl"
)

// ImageOpener fetches and decodes the image at a path within a filesystem.
// The default opener decodes through ebitenutil; hosts with their own asset
// pipeline can substitute one.
type ImageOpener func(fsys fs.FS, name string) (*ebiten.Image, error)

func defaultImageOpener(fsys fs.FS, name string) (*ebiten.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("ldtk: open image %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("ldtk: decode image %s: %w", name, err)
	}
	return img, nil
}

// Loader reads LDtk files from a filesystem and resolves them into
// Projects. The zero value is not usable; FS must be set.
type Loader struct {
	// FS is the filesystem all paths are read from. Relative references
	// inside a manifest (tilesets, backgrounds, external levels) resolve
	// against the manifest's own directory within this filesystem.
	FS fs.FS

	// Config selects the storage mode and other load behavior.
	Config Config

	// Open decodes tileset and background images. Nil means the default
	// ebitenutil-backed opener.
	Open ImageOpener

	// Log receives resolution warnings. Nil means the logrus standard
	// logger.
	Log *logrus.Logger
}

func (l *Loader) logger() *logrus.Logger {
	if l.Log != nil {
		return l.Log
	}
	return logrus.StandardLogger()
}

func (l *Loader) opener() ImageOpener {
	if l.Open != nil {
		return l.Open
	}
	return defaultImageOpener
}

// LoadProject reads, parses, and resolves an LDtk project manifest.
func (l *Loader) LoadProject(name string) (*Project, error) {
	if path.Ext(name) != ProjectExtension {
		return nil, fmt.Errorf("ldtk: project manifest must have the %s extension, got %s", ProjectExtension, name)
	}

	b, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, fmt.Errorf("ldtk: read project %s: %w", name, err)
	}

	var data ProjectData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("ldtk: parse project %s: %w", name, err)
	}

	refs := &pathResolver{loader: l, dir: path.Dir(name)}
	project, err := resolveProject(data, l.Config, refs, l.logger())
	if err != nil {
		return nil, fmt.Errorf("ldtk: resolve project %s: %w", name, err)
	}
	return project, nil
}

// pathResolver resolves manifest-relative references against the manifest's
// directory, producing deferred handles.
type pathResolver struct {
	loader *Loader
	dir    string
}

func (r *pathResolver) imageHandle(relPath string) *ImageHandle {
	return &ImageHandle{
		fsys: r.loader.FS,
		path: path.Join(r.dir, relPath),
		open: r.loader.opener(),
	}
}

func (r *pathResolver) externalLevelHandle(relPath string) *ExternalLevelHandle {
	return &ExternalLevelHandle{
		loader: r.loader,
		path:   path.Join(r.dir, relPath),
	}
}

// ImageHandle is a deferred reference to a tileset or background image.
// The image is fetched and decoded on first use and cached; a handle is
// safe for concurrent use.
type ImageHandle struct {
	fsys fs.FS
	path string
	open ImageOpener

	once sync.Once
	img  *ebiten.Image
	err  error
}

// Path returns the image path within the loader's filesystem.
func (h *ImageHandle) Path() string { return h.path }

// Image fetches and decodes the image on first call; later calls return
// the cached result.
func (h *ImageHandle) Image() (*ebiten.Image, error) {
	h.once.Do(func() {
		h.img, h.err = h.open(h.fsys, h.path)
	})
	return h.img, h.err
}
