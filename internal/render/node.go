// Package render turns parsed document values into Unicode text art. Two
// styles share one node model: an indented connector tree and a fixed-width
// boxed layout. Style is decided once, when the node factory is chosen;
// nodes never branch on it at render time.
package render

import (
	"fmt"
)

// IconPair decorates rendered entries: Container marks objects and arrays,
// Leaf marks scalar values. The glyph sits between the connector and the
// key.
type IconPair struct {
	Container string
	Leaf      string
}

// DefaultIcons draws no visible decoration, just a spacing column.
var DefaultIcons = IconPair{Container: " ", Leaf: " "}

// Connector and guide glyphs shared by both styles.
const (
	teeConnector   = "├─"
	elbowConnector = "└─"
	vertGuide      = "│  "
	blankGuide     = "   "
)

// Node is one renderable entry of a document. Render returns the text block
// for the node and everything below it. prefix carries the accumulated
// guide columns inherited from ancestors; last reports whether this node is
// the final sibling at its level.
type Node interface {
	Render(prefix string, last bool) (string, error)

	// attach stamps the nesting depth when the node is added to a parent.
	// Unexported so the node set stays closed to this package.
	attach(depth int)
}

// Composite is a Node with an ordered child sequence.
type Composite interface {
	Node

	// Add appends child and stamps its depth one below the receiver.
	Add(child Node)
}

// connector picks the sibling connector for a row.
func connector(last bool) string {
	if last {
		return elbowConnector
	}
	return teeConnector
}

// label assembles the text after the connector and icon. A nil value
// suppresses the colon suffix; an empty key (scalar at the root) shows the
// bare value.
func label(key string, value any) string {
	if value == nil {
		return key
	}
	if key == "" {
		return Stringify(value)
	}
	return key + ": " + Stringify(value)
}

// Stringify renders a scalar the way it reads in source text: bare strings,
// true/false booleans, and integral floats without a decimal point.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case float32:
		return Stringify(float64(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
