package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Rectangle frame glyphs.
const (
	fillGlyph   = '─'
	rightTick   = '┤'
	topLeft     = '┌'
	topRight    = '┐'
	bottomLeft  = '└'
	bottomRight = '┘'
	junction    = '┴'
)

// DefaultWidth is the total display width of rectangle lines, borders
// included.
const DefaultWidth = 60

// RowOverflowError reports an entry whose row cannot fit inside the
// configured rectangle width.
type RowOverflowError struct {
	Key   string // entry whose row overflowed
	Need  int    // display columns the row requires
	Width int    // configured line width
}

func (e *RowOverflowError) Error() string {
	return fmt.Sprintf("rectangle row for %q needs %d columns but width is %d", e.Key, e.Need, e.Width)
}

// fitRow pads row with fill glyphs and the right border tick so it occupies
// exactly width display columns. Widths come from go-runewidth, so emoji
// icons count as two columns.
func fitRow(row, key string, width int) (string, error) {
	w := runewidth.StringWidth(row)
	if w >= width {
		return "", &RowOverflowError{Key: key, Need: w + 1, Width: width}
	}
	return row + strings.Repeat(string(fillGlyph), width-w-1) + string(rightTick), nil
}

// rectLeaf renders one scalar entry as a full-width boxed row.
type rectLeaf struct {
	key   string
	value any
	icons IconPair
	width int
}

func (l *rectLeaf) attach(int) {}

func (l *rectLeaf) Render(prefix string, last bool) (string, error) {
	return fitRow(prefix+connector(last)+l.icons.Leaf+label(l.key, l.value), l.key, l.width)
}

// rectComposite renders an object or array as boxed rows. The root composite
// stitches the outer border once the whole block is assembled.
type rectComposite struct {
	key      string
	icons    IconPair
	width    int
	depth    int
	children []Node
}

// attach restamps the whole subtree so depths stay correct no matter the
// order nodes were assembled in.
func (c *rectComposite) attach(depth int) {
	c.depth = depth
	for _, child := range c.children {
		child.attach(depth + 1)
	}
}

func (c *rectComposite) Add(child Node) {
	child.attach(c.depth + 1)
	c.children = append(c.children, child)
}

func (c *rectComposite) Render(prefix string, last bool) (string, error) {
	var b strings.Builder
	if c.depth > 0 {
		// Header rows always carry the tee connector; the bottom-left corner
		// comes from the stitching pass, not from sibling position.
		row, err := fitRow(prefix+teeConnector+c.icons.Container+c.key, c.key, c.width)
		if err != nil {
			return "", err
		}
		b.WriteString(row + "\n")
	}

	childPrefix := ""
	if c.depth > 0 {
		childPrefix = vertGuide
	}
	for i, child := range c.children {
		block, err := child.Render(prefix+childPrefix, i == len(c.children)-1)
		if err != nil {
			return "", err
		}
		b.WriteString(block + "\n")
	}

	out := strings.TrimRight(b.String(), " \t\n")
	if c.depth == 0 {
		out = c.stitch(out)
	}
	return out, nil
}

// stitch rewrites the first and last lines so the per-row ticks read as one
// closed border: corners at the four ends, guide columns crossing the bottom
// line turned into junctions, and leading blanks turned into fill. The icon
// glyph acts as a sentinel marking where label text begins. On a one-line
// box the bottom corners win over the top ones.
func (c *rectComposite) stitch(text string) string {
	if text == "" {
		return ""
	}
	g := newGrid(text)
	top, bottom := 0, g.height()-1

	g.set(top, 0, topLeft)
	g.setLast(top, topRight)
	g.set(bottom, 0, bottomLeft)
	g.setLast(bottom, bottomRight)

	row := g.row(bottom)
	sentinels := iconSentinels(c.icons)
scan:
	for i := 1; i < len(row)-1; i++ {
		switch r := row[i]; {
		case r == '│' || r == '├' || r == bottomLeft:
			row[i] = junction
		case r == ' ':
			row[i] = fillGlyph
		case sentinels[r]:
			break scan
		}
	}

	return g.String()
}

// iconSentinels returns the leading rune of each icon glyph. Emoji carrying
// variation selectors are matched by their first rune alone.
func iconSentinels(icons IconPair) map[rune]bool {
	m := make(map[rune]bool, 2)
	for _, s := range []string{icons.Container, icons.Leaf} {
		if s == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(s)
		m[r] = true
	}
	return m
}
