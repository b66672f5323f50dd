package sprite

import (
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/net/html"

	"github.com/goosestudio/acficons/pkg/errors"
)

// Loader loads a parsed sprite document for a library style.
type Loader interface {
	Load(library, style string) (*html.Node, error)
}

// FSLoader reads sprite documents from the bundled assets directory:
//
//	<assetsPath>/<library>/sprites/<style>.svg
type FSLoader struct {
	fs   afero.Fs
	root string
}

// NewFSLoader creates a loader for the assets directory on fsys.
func NewFSLoader(fsys afero.Fs, assetsPath string) *FSLoader {
	return &FSLoader{fs: fsys, root: assetsPath}
}

// SpritePath returns the location of a sprite document.
func (l *FSLoader) SpritePath(library, style string) string {
	return filepath.Join(l.root, library, "sprites", style+".svg")
}

// Load opens and parses a sprite document. A missing, unreadable or
// non-SVG file is reported as SPRITE_NOT_FOUND.
func (l *FSLoader) Load(library, style string) (*html.Node, error) {
	path := l.SpritePath(library, style)

	f, err := l.fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSpriteNotFound, err, "open %s sprite %q", library, style)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSpriteNotFound, err, "parse %s", path)
	}
	if findElement(doc, "svg") == nil {
		return nil, errors.New(errors.ErrCodeSpriteNotFound, "%s is not an SVG document", path)
	}
	return doc, nil
}

// Ensure FSLoader implements Loader.
var _ Loader = (*FSLoader)(nil)
