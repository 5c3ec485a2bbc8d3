package render

import (
	"fmt"
	"strings"
)

// Style selectors accepted by FactoryFor.
const (
	StyleTree      = "tree"
	StyleRectangle = "rectangle"
)

// Styles lists the valid style selectors in display order.
var Styles = []string{StyleTree, StyleRectangle}

// Factory builds the matched leaf and composite constructors of one visual
// style. Choosing a factory is the only point where style is decided.
type Factory interface {
	NewLeaf(key string, value any, icons IconPair) Node
	NewComposite(key string, icons IconPair) Composite
}

type treeFactory struct{}

// NewTreeFactory returns the factory for the indented connector-tree style.
func NewTreeFactory() Factory { return treeFactory{} }

func (treeFactory) NewLeaf(key string, value any, icons IconPair) Node {
	return &treeLeaf{key: key, value: value, icons: icons}
}

func (treeFactory) NewComposite(key string, icons IconPair) Composite {
	return &treeComposite{key: key, icons: icons}
}

type rectangleFactory struct {
	width int
}

// NewRectangleFactory returns the factory for the boxed style. width is the
// total display width of every line; non-positive values fall back to
// DefaultWidth.
func NewRectangleFactory(width int) Factory {
	if width <= 0 {
		width = DefaultWidth
	}
	return rectangleFactory{width: width}
}

func (f rectangleFactory) NewLeaf(key string, value any, icons IconPair) Node {
	return &rectLeaf{key: key, value: value, icons: icons, width: f.width}
}

func (f rectangleFactory) NewComposite(key string, icons IconPair) Composite {
	return &rectComposite{key: key, icons: icons, width: f.width}
}

// FactoryFor resolves a style selector to its factory. width only affects
// the rectangle style.
func FactoryFor(style string, width int) (Factory, error) {
	switch style {
	case StyleTree:
		return NewTreeFactory(), nil
	case StyleRectangle:
		return NewRectangleFactory(width), nil
	default:
		return nil, fmt.Errorf("unknown style %q (available: %s)", style, strings.Join(Styles, ", "))
	}
}
