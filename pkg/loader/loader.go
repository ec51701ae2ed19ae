// Package loader reads element values from files.
//
// Text files load as escaped text, markup and asset files as raw text, and
// YAML files describe components:
//
//	leaf:      tag: [{}]
//	composite: tag: [[]]
//	attrs:     tag: [{ required: true, class: row }]
//	children:  tag: [[ value1, " ", value2 ]]
//	both:      tag: [{ class: row }, [ value1, { i: [[ nested ]] } ]]
//
// LoadValues walks a directory and renders every file into a nested Values
// tree keyed by file stem.
package loader

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/render"
)

// ErrLoader is matched by errors.Is for every loader failure.
var ErrLoader = errors.ErrLoader

// Loader reads values from a file system.
type Loader struct {
	// FS is the file system to read from.
	FS fs.FS

	// Renderer renders loaded files. Defaults to render.Default().
	Renderer *render.Renderer

	// Renderers maps file extensions to loaders. Defaults to
	// DefaultRenderers().
	Renderers map[string]RenderFunc

	// Static doubles braces in text and raw files so their content passes
	// through template compilation unchanged.
	Static bool

	// Logger receives debug output. Defaults to slog.Default().
	Logger *slog.Logger
}

// New creates a Loader for fsys with default settings.
func New(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

func (l *Loader) renderer() *render.Renderer {
	if l.Renderer != nil {
		return l.Renderer
	}
	return render.Default()
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// LoadText reads name as escaped text.
func LoadText(fsys fs.FS, name string, static bool) (element.EscapedText, error) {
	data, err := readFile(fsys, name, static)
	if err != nil {
		return "", err
	}
	return element.EscapedText(data), nil
}

// LoadRaw reads name as raw text. Use it only with trusted files.
func LoadRaw(fsys fs.FS, name string, static bool) (element.RawText, error) {
	data, err := readFile(fsys, name, static)
	if err != nil {
		return "", err
	}
	return element.RawText(data), nil
}

func readFile(fsys fs.FS, name string, static bool) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", errors.New("E045").WithDetail(name).Wrap(err)
	}
	s := string(data)
	if static {
		s = strings.NewReplacer("{", "{{", "}", "}}").Replace(s)
	}
	return s, nil
}
