package render

import (
	"fmt"
	"sort"

	"github.com/oakwood-commons/jviz/pkg/loader"
)

// maxBuildDepth bounds node tree construction. Documents from the loader are
// already depth-limited; this guards hand-built values from embedders.
const maxBuildDepth = 1000

// Builder converts parsed document values into renderable node trees using
// the constructors of one style factory.
type Builder struct {
	factory Factory
	icons   IconPair
}

// NewBuilder returns a Builder producing nodes in the given style and icon
// decoration.
func NewBuilder(factory Factory, icons IconPair) *Builder {
	return &Builder{factory: factory, icons: icons}
}

// Build produces the root node for value. The root composite draws no line
// of its own; only its children appear in the output.
func (b *Builder) Build(value any) (Node, error) {
	return b.build(value, "", 0)
}

// Render builds value and renders the resulting tree in one call.
func (b *Builder) Render(value any) (string, error) {
	root, err := b.Build(value)
	if err != nil {
		return "", err
	}
	return root.Render("", true)
}

func (b *Builder) build(value any, key string, depth int) (Node, error) {
	if depth > maxBuildDepth {
		return nil, fmt.Errorf("value nesting exceeds %d levels", maxBuildDepth)
	}

	switch v := value.(type) {
	case loader.Document:
		node := b.factory.NewComposite(key, b.icons)
		for _, m := range v {
			child, err := b.build(m.Value, m.Key, depth+1)
			if err != nil {
				return nil, err
			}
			node.Add(child)
		}
		return node, nil
	case []any:
		node := b.factory.NewComposite(key, b.icons)
		for i, elem := range v {
			child, err := b.build(elem, fmt.Sprintf("%s[%d]", key, i), depth+1)
			if err != nil {
				return nil, err
			}
			node.Add(child)
		}
		return node, nil
	case map[string]any:
		// Plain Go maps carry no declared order; sort keys so output stays
		// deterministic.
		node := b.factory.NewComposite(key, b.icons)
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, err := b.build(v[k], k, depth+1)
			if err != nil {
				return nil, err
			}
			node.Add(child)
		}
		return node, nil
	default:
		return b.factory.NewLeaf(key, value, b.icons), nil
	}
}
