package render

import (
	"strings"
)

// grid is a mutable rune matrix over rendered lines. The border stitching
// pass rewrites single cells by position, which is awkward on immutable
// strings; runes keep multibyte glyphs addressable as one cell each.
type grid struct {
	rows [][]rune
}

func newGrid(text string) *grid {
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return &grid{rows: rows}
}

func (g *grid) height() int { return len(g.rows) }

// row returns the rune slice for row i, nil when out of range. Mutations
// write through to the grid.
func (g *grid) row(i int) []rune {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// set replaces the rune at (row, col). Out-of-range positions are ignored,
// which keeps the stitching pass safe on degenerate input.
func (g *grid) set(row, col int, r rune) {
	if row < 0 || row >= len(g.rows) {
		return
	}
	if col < 0 || col >= len(g.rows[row]) {
		return
	}
	g.rows[row][col] = r
}

// setLast replaces the final rune of row.
func (g *grid) setLast(row int, r rune) {
	if row < 0 || row >= len(g.rows) {
		return
	}
	g.set(row, len(g.rows[row])-1, r)
}

func (g *grid) String() string {
	lines := make([]string, len(g.rows))
	for i, row := range g.rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
