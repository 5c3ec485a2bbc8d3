// Package ui implements the interactive viewer. It wraps the renderer in a
// Bubble Tea program so a document can be explored without re-running the
// CLI for every style, icon theme, or path change.
package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/jviz/internal/icons"
	"github.com/oakwood-commons/jviz/internal/navigator"
	"github.com/oakwood-commons/jviz/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))  // cyan title
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))            // muted gray status
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))            // softer red for errors
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))            // dim key hints
)

// Model is the Bubble Tea model for the viewer. It keeps the whole document in
// Root so path navigation can always restart from the top, and re-renders the
// art whenever style, icon theme, or path changes.
type Model struct {
	AppName string
	Root    any    // full document
	Node    any    // subtree currently rendered
	Path    string // committed path, empty at the document root
	Style   string
	Width   int

	Themes   []string // icon theme cycle order
	ThemeIdx int

	Art    []string // rendered art lines
	Offset int      // first visible art line

	PathInput    textinput.Model
	InputFocused bool

	ErrMsg    string
	WinWidth  int
	WinHeight int
	NoColor   bool
}

// InitialModel builds a viewer over root. Zero-value options fall back to the
// tree style, the default icon theme, and the default rectangle width.
func InitialModel(root any, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "items[0].tags"
	ti.CharLimit = 500
	ti.SetWidth(60) // adjusted on the first WindowSizeMsg
	ti.Prompt = "path: "

	m := Model{
		AppName:   strings.TrimSpace(opts.AppName),
		Root:      root,
		Node:      root,
		Style:     opts.Style,
		Width:     opts.Width,
		Themes:    icons.Names(),
		PathInput: ti,
		NoColor:   opts.NoColor,
		WinWidth:  80,
		WinHeight: 24,
	}
	if m.AppName == "" {
		m.AppName = "jviz"
	}
	if m.Style == "" {
		m.Style = render.StyleTree
	}
	if m.Width <= 0 {
		m.Width = render.DefaultWidth
	}
	theme := opts.IconTheme
	if theme == "" {
		theme = "default"
	}
	for i, name := range m.Themes {
		if name == theme {
			m.ThemeIdx = i
			break
		}
	}
	var pathErr error
	if path := strings.TrimSpace(opts.Path); path != "" {
		pathErr = m.navigate(path)
	}
	m.rerender()
	// A failed initial path still shows the document root, with the error
	// in the status bar. rerender clears ErrMsg, so set it afterwards.
	if pathErr != nil {
		m.ErrMsg = pathErr.Error()
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WinWidth = msg.Width
		m.WinHeight = msg.Height
		m.PathInput.SetWidth(max(20, msg.Width-12))
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		if m.InputFocused {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg.String())
	}
	return m, nil
}

// updateInput handles keys while the path prompt is focused.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.InputFocused = false
		m.PathInput.Blur()
		if err := m.navigate(strings.TrimSpace(m.PathInput.Value())); err != nil {
			m.ErrMsg = err.Error()
			return m, nil
		}
		m.rerender()
		return m, nil
	case "esc":
		m.InputFocused = false
		m.PathInput.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.PathInput, cmd = m.PathInput.Update(msg)
		return m, cmd
	}
}

// updateBrowse handles keys in the normal browsing state.
func (m *Model) updateBrowse(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.ErrMsg = ""
	case "s":
		if m.Style == render.StyleTree {
			m.Style = render.StyleRectangle
		} else {
			m.Style = render.StyleTree
		}
		m.rerender()
	case "i":
		if len(m.Themes) > 0 {
			m.ThemeIdx = (m.ThemeIdx + 1) % len(m.Themes)
		}
		m.rerender()
	case "p":
		m.InputFocused = true
		m.PathInput.SetValue(m.Path)
		m.PathInput.SetCursor(len(m.Path))
		m.PathInput.Focus()
		return m, textinput.Blink
	case "r":
		m.Node = m.Root
		m.Path = ""
		m.Offset = 0
		m.rerender()
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup":
		m.scrollBy(-m.viewportHeight())
	case "pgdown":
		m.scrollBy(m.viewportHeight())
	case "g", "home":
		m.Offset = 0
	case "G", "end":
		m.Offset = m.maxOffset()
	}
	return m, nil
}

func (m *Model) View() tea.View {
	var b strings.Builder
	b.WriteString(m.styled(headerStyle, m.headerLine()))
	b.WriteByte('\n')

	visible := m.visibleArt()
	for _, line := range visible {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	// Pad so the status and footer stay pinned to the bottom rows.
	for i := len(visible); i < m.viewportHeight(); i++ {
		b.WriteByte('\n')
	}

	if m.InputFocused {
		b.WriteString(m.PathInput.View())
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.styled(footerStyle, "q quit · s style · i icons · p path · r root · up/down scroll · g/G ends"))

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

// navigate descends from Root along path and commits the result. The current
// node is left untouched when the path does not resolve.
func (m *Model) navigate(path string) error {
	node, err := navigator.NodeAtPath(m.Root, path)
	if err != nil {
		return err
	}
	m.Node = node
	if trimmed := strings.TrimSpace(path); trimmed == "." {
		m.Path = ""
	} else {
		m.Path = strings.TrimSpace(path)
	}
	m.Offset = 0
	return nil
}

// rerender rebuilds the art lines from the current node, style, and theme.
// On failure the previous art stays visible and the error lands in the status
// bar.
func (m *Model) rerender() {
	pair, err := icons.Lookup(m.theme())
	if err != nil {
		m.ErrMsg = err.Error()
		return
	}
	factory, err := render.FactoryFor(m.Style, m.Width)
	if err != nil {
		m.ErrMsg = err.Error()
		return
	}
	art, err := render.NewBuilder(factory, pair).Render(m.Node)
	if err != nil {
		m.ErrMsg = err.Error()
		return
	}
	m.ErrMsg = ""
	if art == "" {
		m.Art = nil
	} else {
		m.Art = strings.Split(art, "\n")
	}
	m.clampOffset()
}

func (m *Model) theme() string {
	if len(m.Themes) == 0 {
		return ""
	}
	if m.ThemeIdx < 0 || m.ThemeIdx >= len(m.Themes) {
		m.ThemeIdx = 0
	}
	return m.Themes[m.ThemeIdx]
}

func (m *Model) headerLine() string {
	path := m.Path
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("%s · %s", m.AppName, path)
}

func (m *Model) statusLine() string {
	if m.ErrMsg != "" {
		return m.styled(errorStyle, m.ErrMsg)
	}
	first := 0
	last := 0
	if len(m.Art) > 0 {
		first = m.Offset + 1
		last = min(m.Offset+m.viewportHeight(), len(m.Art))
	}
	return m.styled(statusStyle, fmt.Sprintf("style:%s  icons:%s  lines %d-%d of %d",
		m.Style, m.theme(), first, last, len(m.Art)))
}

func (m *Model) styled(s lipgloss.Style, text string) string {
	if m.NoColor {
		return text
	}
	return s.Render(text)
}

// viewportHeight is the number of art rows that fit between the header and
// the status and footer rows.
func (m *Model) viewportHeight() int {
	h := m.WinHeight - 3
	if m.InputFocused {
		h--
	}
	return max(h, 1)
}

func (m *Model) visibleArt() []string {
	if len(m.Art) == 0 {
		return nil
	}
	end := min(m.Offset+m.viewportHeight(), len(m.Art))
	return m.Art[m.Offset:end]
}

func (m *Model) maxOffset() int {
	return max(len(m.Art)-m.viewportHeight(), 0)
}

func (m *Model) scrollBy(delta int) {
	m.Offset += delta
	m.clampOffset()
}

func (m *Model) clampOffset() {
	if m.Offset > m.maxOffset() {
		m.Offset = m.maxOffset()
	}
	if m.Offset < 0 {
		m.Offset = 0
	}
}
