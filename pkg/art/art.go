// Package art is the embedding surface for rendering documents as text art
// without going through the CLI.
package art

import (
	"github.com/oakwood-commons/jviz/internal/icons"
	"github.com/oakwood-commons/jviz/internal/navigator"
	"github.com/oakwood-commons/jviz/internal/render"
	"github.com/oakwood-commons/jviz/internal/ui"
	"github.com/oakwood-commons/jviz/pkg/loader"
)

// Engine renders parsed values in one configured style and icon theme.
type Engine struct {
	style string
	theme string
	width int
}

// Option configures the Engine.
type Option func(*Engine)

// WithStyle selects the render style ("tree" or "rectangle").
func WithStyle(name string) Option { return func(e *Engine) { e.style = name } }

// WithIconTheme selects the icon theme by name.
func WithIconTheme(name string) Option { return func(e *Engine) { e.theme = name } }

// WithWidth sets the rectangle width in display columns.
func WithWidth(w int) Option { return func(e *Engine) { e.width = w } }

// New creates an Engine with defaults: tree style, undecorated icons, and the
// standard rectangle width. Unknown style or theme names error here, not at
// render time.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		style: render.StyleTree,
		theme: "default",
		width: render.DefaultWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	if _, err := icons.Lookup(e.theme); err != nil {
		return nil, err
	}
	if _, err := render.FactoryFor(e.style, e.width); err != nil {
		return nil, err
	}
	return e, nil
}

// Render draws value as text art. Values can be loader Documents, plain maps
// and slices, serialized JSON or YAML strings, or tagged structs.
func (e *Engine) Render(value any) (string, error) {
	return e.RenderAt(value, "")
}

// RenderAt renders the subtree of value at a dotted path.
func (e *Engine) RenderAt(value any, path string) (string, error) {
	root, err := loader.LoadObject(value)
	if err != nil {
		return "", err
	}
	node, err := navigator.NodeAtPath(root, path)
	if err != nil {
		return "", err
	}
	pair, err := icons.Lookup(e.theme)
	if err != nil {
		return "", err
	}
	factory, err := render.FactoryFor(e.style, e.width)
	if err != nil {
		return "", err
	}
	return render.NewBuilder(factory, pair).Render(node)
}

// RowOverflowError reports a rectangle row that cannot fit the configured
// width. Render and RenderAt return it when a label is too long for the box.
type RowOverflowError = render.RowOverflowError

// Styles lists the available render styles.
func Styles() []string { return append([]string(nil), render.Styles...) }

// IconThemes lists the available icon theme names.
func IconThemes() []string { return icons.Names() }

// RegisterIconTheme adds or replaces a named icon theme for this process.
func RegisterIconTheme(name, container, leaf string) {
	icons.Register(name, render.IconPair{Container: container, Leaf: leaf})
}

// LoadIconThemes reads extra icon themes from a TOML file.
func LoadIconThemes(path string) error { return icons.LoadFile(path) }

// LoadRoot parses input into a single root value.
func LoadRoot(input string) (any, error) { return loader.LoadRoot(input) }

// LoadFile reads a file and parses it into a single root value.
func LoadFile(path string) (any, error) { return loader.LoadFile(path) }

// LoadObject accepts an already parsed value, normalizing structs and typed
// containers so they render like parsed documents.
func LoadObject(value any) (any, error) { return loader.LoadObject(value) }

// ExploreOptions configures the interactive viewer.
type ExploreOptions struct {
	AppName   string // label shown in the viewer header
	Style     string
	IconTheme string
	Width     int
	Path      string
	NoColor   bool
}

// Explore opens the interactive viewer over value and blocks until the user
// quits.
func Explore(value any, opts ExploreOptions) error {
	root, err := loader.LoadObject(value)
	if err != nil {
		return err
	}
	return ui.Run(root, ui.Options{
		AppName:   opts.AppName,
		Style:     opts.Style,
		IconTheme: opts.IconTheme,
		Width:     opts.Width,
		Path:      opts.Path,
		NoColor:   opts.NoColor,
	})
}
