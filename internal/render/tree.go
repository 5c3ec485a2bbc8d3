package render

import (
	"strings"
)

// treeLeaf renders one scalar entry of the connector-tree style.
type treeLeaf struct {
	key   string
	value any
	icons IconPair
}

func (l *treeLeaf) attach(int) {}

func (l *treeLeaf) Render(prefix string, last bool) (string, error) {
	return prefix + connector(last) + l.icons.Leaf + label(l.key, l.value), nil
}

// treeComposite renders an object or array and the subtree beneath it.
type treeComposite struct {
	key      string
	icons    IconPair
	depth    int
	children []Node
}

// attach restamps the whole subtree so depths stay correct no matter the
// order nodes were assembled in.
func (c *treeComposite) attach(depth int) {
	c.depth = depth
	for _, child := range c.children {
		child.attach(depth + 1)
	}
}

func (c *treeComposite) Add(child Node) {
	child.attach(c.depth + 1)
	c.children = append(c.children, child)
}

// Render draws the header row (unless this is the invisible root) followed
// by the child blocks. The guide column continues beneath this node only
// while further siblings follow it.
func (c *treeComposite) Render(prefix string, last bool) (string, error) {
	var b strings.Builder
	if c.depth > 0 {
		b.WriteString(prefix + connector(last) + c.icons.Container + c.key + "\n")
	}

	childPrefix := ""
	if c.depth > 0 {
		if last {
			childPrefix = blankGuide
		} else {
			childPrefix = vertGuide
		}
	}
	for i, child := range c.children {
		block, err := child.Render(prefix+childPrefix, i == len(c.children)-1)
		if err != nil {
			return "", err
		}
		b.WriteString(block + "\n")
	}

	return strings.TrimRight(b.String(), " \t\n"), nil
}
