// Package cmd implements the jviz command line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/jviz/internal/icons"
	"github.com/oakwood-commons/jviz/internal/navigator"
	"github.com/oakwood-commons/jviz/internal/render"
	"github.com/oakwood-commons/jviz/internal/ui"
	"github.com/oakwood-commons/jviz/pkg/loader"
	"github.com/oakwood-commons/jviz/pkg/logger"
	"github.com/oakwood-commons/jviz/pkg/settings"
)

var (
	styleName   string
	iconTheme   string
	width       int
	fitWidth    bool
	pathExpr    string
	iconsFile   string
	interactive bool
	noColor     bool
	debug       bool

	rootCtx = context.Background()
)

// errShowHelp signals that no input was provided and help should be printed
// instead of an error.
var errShowHelp = errors.New("no input provided")

var stdinIsPiped = func() bool { stat, _ := os.Stdin.Stat(); return (stat.Mode() & os.ModeCharDevice) == 0 }

var rootCmd = &cobra.Command{
	Use:   "jviz [file]",
	Short: "Render JSON and YAML documents as Unicode text art",
	Long: `jviz reads a JSON or YAML document and draws it as text art.

Two styles are built in: a connector tree and a fixed-width rectangle
with stitched borders. Icon themes decorate container and leaf entries,
and a dotted path can select a subtree before rendering. With
--interactive the art opens in a pager where style, icons, and path can
be changed live.`,
	Example: "\n  jviz examples/catalog.json\n  jviz catalog.json -s rectangle -w 72\n  jviz catalog.json -p 'items[0]' -i tree\n  cat catalog.json | jviz -s rectangle\n  jviz catalog.json --interactive\n",
	Args:    cobra.MaximumNArgs(1),
	// Errors are reported once by main; keep cobra from also dumping usage.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var level int8 = 0
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	params := settings.NewCliParams()
	params.Style = styleName
	params.IconTheme = iconTheme
	params.Width = width
	params.Path = pathExpr
	params.Interactive = interactive
	params.NoColor = noColor
	if debug {
		params.MinLogLevel = -1
	}
	if fitWidth && !cmd.Flags().Changed("width") {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			params.Width = w
		}
	}
	ctx := settings.IntoContext(rootCtx, params)
	lgr := logger.FromContext(ctx)

	if iconsFile != "" {
		if err := icons.LoadFile(iconsFile); err != nil {
			return err
		}
		lgr.V(1).Info("loaded icon themes", "file", iconsFile)
	}

	// Resolve style and theme up front so typos fail before any input is read.
	pair, err := icons.Lookup(params.IconTheme)
	if err != nil {
		return err
	}
	factory, err := render.FactoryFor(params.Style, params.Width)
	if err != nil {
		return err
	}

	root, err := loadInput(args)
	if err != nil {
		if errors.Is(err, errShowHelp) {
			return cmd.Help()
		}
		return err
	}

	if params.Interactive {
		return ui.Run(root, ui.Options{
			AppName:   settings.CliBinaryName,
			Style:     params.Style,
			IconTheme: params.IconTheme,
			Width:     params.Width,
			Path:      params.Path,
			NoColor:   params.NoColor,
		})
	}

	node, err := navigator.NodeAtPath(root, params.Path)
	if err != nil {
		return err
	}

	art, err := render.NewBuilder(factory, pair).Render(node)
	if err != nil {
		return err
	}
	fmt.Println(art) //nolint:forbidigo
	lgr.V(1).Info("rendered document",
		"style", params.Style,
		"icons", params.IconTheme,
		"lines", strings.Count(art, "\n")+1)
	return nil
}

// loadInput reads the document from the file argument or from piped stdin.
func loadInput(args []string) (any, error) {
	if len(args) > 0 {
		root, err := loader.LoadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", args[0], err)
		}
		return root, nil
	}
	if !stdinIsPiped() {
		return nil, errShowHelp
	}
	return loader.LoadReader(os.Stdin)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print jviz version",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(cliVersionString()) //nolint:forbidigo
		return nil
	},
}

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List available icon themes",
	RunE: func(_ *cobra.Command, _ []string) error {
		if iconsFile != "" {
			if err := icons.LoadFile(iconsFile); err != nil {
				return err
			}
		}
		printThemeList(os.Stdout)
		return nil
	},
}

// printThemeList writes the theme table. Emoji glyphs are double-width, so
// alignment goes through runewidth instead of len.
func printThemeList(w io.Writer) {
	themes := icons.All()
	nameWidth := 0
	for _, th := range themes {
		nameWidth = max(nameWidth, runewidth.StringWidth(th.Name))
	}
	fmt.Fprintf(w, "Available icon themes (default: %s):\n", settings.NewCliParams().IconTheme)
	for _, th := range themes {
		pad := strings.Repeat(" ", nameWidth-runewidth.StringWidth(th.Name))
		fmt.Fprintf(w, " - %s%s  container:%s  leaf:%s\n",
			th.Name, pad, displayGlyph(th.Pair.Container), displayGlyph(th.Pair.Leaf))
	}
}

func displayGlyph(g string) string {
	if strings.TrimSpace(g) == "" {
		return "(blank)"
	}
	return g
}

func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s)",
		settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
}

func init() { //nolint:gochecknoinits
	rootCmd.Flags().StringVarP(&styleName, "style", "s", "tree", "render style: tree|rectangle")
	rootCmd.Flags().StringVarP(&iconTheme, "icon", "i", "default", "icon theme (see 'jviz icons')")
	rootCmd.Flags().IntVarP(&width, "width", "w", render.DefaultWidth, "rectangle width in display columns")
	rootCmd.Flags().BoolVar(&fitWidth, "fit", false, "size the rectangle to the terminal width (ignored when --width is set)")
	rootCmd.Flags().StringVarP(&pathExpr, "path", "p", "", "render the subtree at a dotted path, e.g. 'items[0].tags'")
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "open the art in an interactive pager")
	rootCmd.PersistentFlags().StringVar(&iconsFile, "icons-file", "", "path to a TOML file with extra icon themes")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(iconsCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
