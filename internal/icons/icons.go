// Package icons holds the named glyph pairs that decorate rendered entries.
// Builtin themes ship with the binary; custom themes merge in from TOML
// theme files and shadow builtins of the same name.
package icons

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/oakwood-commons/jviz/internal/render"
)

// builtin themes. "default" keeps a plain spacing column; the rest decorate
// containers and leaves with emoji pairs.
var builtin = map[string]render.IconPair{
	"default": {Container: " ", Leaf: " "},
	"tree":    {Container: "🌳", Leaf: "🍂"},
	"star":    {Container: "⭐️", Leaf: "✨"},
	"animal":  {Container: "🐿️", Leaf: "🐾"},
	"tech":    {Container: "💻", Leaf: "📱"},
	"food":    {Container: "🍎", Leaf: "🍏"},
}

// custom holds themes registered at runtime. Lookup consults it first.
var custom = map[string]render.IconPair{}

// Theme pairs a name with its glyphs for listings.
type Theme struct {
	Name string
	Pair render.IconPair
}

// Lookup resolves a theme name to its glyph pair.
func Lookup(name string) (render.IconPair, error) {
	if pair, ok := custom[name]; ok {
		return pair, nil
	}
	if pair, ok := builtin[name]; ok {
		return pair, nil
	}
	return render.IconPair{}, fmt.Errorf("unknown icon theme %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns every known theme name, builtins and customs merged, sorted.
func Names() []string {
	seen := make(map[string]struct{}, len(builtin)+len(custom))
	names := make([]string, 0, len(builtin)+len(custom))
	for name := range builtin {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for name := range custom {
		if _, ok := seen[name]; ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every known theme sorted by name, with customs shadowing
// builtins of the same name.
func All() []Theme {
	names := Names()
	out := make([]Theme, 0, len(names))
	for _, name := range names {
		pair, err := Lookup(name)
		if err != nil {
			continue
		}
		out = append(out, Theme{Name: name, Pair: pair})
	}
	return out
}

// Register adds or replaces a custom theme under name.
func Register(name string, pair render.IconPair) {
	custom[name] = pair
}

// themeFile is the on-disk shape of a custom theme file:
//
//	[themes.ocean]
//	container = "🌊"
//	leaf = "🐚"
type themeFile struct {
	Themes map[string]themeEntry `toml:"themes"`
}

type themeEntry struct {
	Container string `toml:"container"`
	Leaf      string `toml:"leaf"`
}

// LoadFile merges the themes defined in a TOML theme file into the custom
// set.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read icon theme file: %w", err)
	}

	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse icon theme file %s: %w", path, err)
	}
	if len(file.Themes) == 0 {
		return fmt.Errorf("icon theme file %s defines no themes", path)
	}

	for name, entry := range file.Themes {
		Register(name, render.IconPair{Container: entry.Container, Leaf: entry.Leaf})
	}
	return nil
}
