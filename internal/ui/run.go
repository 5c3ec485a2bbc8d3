package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

// Options configures the interactive viewer.
type Options struct {
	AppName   string // label shown in the header, defaults to "jviz"
	Style     string // initial render style
	IconTheme string // initial icon theme name
	Width     int    // rectangle width in display columns
	Path      string // initial path to descend before the first frame
	NoColor   bool   // disable lipgloss styling
}

// Run starts the interactive viewer over root and blocks until the user
// quits. Extra ProgramOptions (e.g. custom IO for tests) are passed through
// to tea.NewProgram.
func Run(root any, opts Options, progOpts ...tea.ProgramOption) error {
	m := InitialModel(root, opts)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		m.WinWidth = w
		m.WinHeight = h
	}
	prog := tea.NewProgram(&m, progOpts...)
	_, err := prog.Run()
	return err
}
