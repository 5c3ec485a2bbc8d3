package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/oakwood-commons/jviz/internal/render"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	_ = w.Close()
	os.Stdout = orig
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("copy: %v", err)
	}
	_ = r.Close()
	return buf.String()
}

func resetRootCmdState() {
	styleName = "tree"
	iconTheme = "default"
	width = render.DefaultWidth
	fitWidth = false
	pathExpr = ""
	iconsFile = ""
	interactive = false
	noColor = false
	debug = false

	rootCmd.SetArgs(nil)
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
}

func writeTempDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp doc: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string) string {
	t.Helper()
	resetRootCmdState()
	os.Args = args
	return captureOutput(t, func() {
		if err := Execute(); err != nil {
			t.Fatalf("Execute error: %v", err)
		}
	})
}

func runCLIExpectError(t *testing.T, args []string) error {
	t.Helper()
	resetRootCmdState()
	rootCmd.SetArgs(args)
	var err error
	_ = captureOutput(t, func() {
		err = Execute()
	})
	if err == nil {
		t.Fatalf("expected Execute to fail for args %v", args)
	}
	return err
}

func TestCLIRendersTreeFromFile(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{"a": 1, "b": {"x": 2}}`)
	out := runCLI(t, []string{"jviz", file, "--no-color"})
	expected := "├─ a: 1\n└─ b\n   └─ x: 2\n"
	if out != expected {
		t.Fatalf("unexpected tree output\ngot:\n%s\nwant:\n%s", out, expected)
	}
}

func TestCLIRendersRectangle(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{"a": 1, "b": {"x": 2}}`)
	out := runCLI(t, []string{"jviz", file, "-s", "rectangle", "-w", "30"})
	expected := "┌─ a: 1" + strings.Repeat("─", 22) + "┐\n" +
		"├─ b" + strings.Repeat("─", 25) + "┤\n" +
		"└──┴──x:─2" + strings.Repeat("─", 19) + "┘\n"
	if out != expected {
		t.Fatalf("unexpected rectangle output\ngot:\n%s\nwant:\n%s", out, expected)
	}
}

func TestCLIPathDescent(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{"a": 1, "b": {"x": 2}}`)
	out := runCLI(t, []string{"jviz", file, "-p", "b"})
	expected := "└─ x: 2\n"
	if out != expected {
		t.Fatalf("unexpected subtree output\ngot:\n%s\nwant:\n%s", out, expected)
	}
}

func TestCLIIconTheme(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{"a": 1, "b": {"x": 2}}`)
	out := runCLI(t, []string{"jviz", file, "-i", "tree"})
	expected := "├─🍂a: 1\n└─🌳b\n   └─🍂x: 2\n"
	if out != expected {
		t.Fatalf("unexpected themed output\ngot:\n%s\nwant:\n%s", out, expected)
	}
}

func TestCLIYAMLKeepsDeclarationOrder(t *testing.T) {
	file := writeTempDoc(t, "doc.yaml", "b:\n  x: 2\na: 1\n")
	out := runCLI(t, []string{"jviz", file})
	expected := "├─ b\n│  └─ x: 2\n└─ a: 1\n"
	if out != expected {
		t.Fatalf("unexpected YAML output\ngot:\n%s\nwant:\n%s", out, expected)
	}
}

func TestCLIReadsPipedStdin(t *testing.T) {
	origPiped := stdinIsPiped
	stdinIsPiped = func() bool { return true }
	origStdin := os.Stdin
	t.Cleanup(func() {
		stdinIsPiped = origPiped
		os.Stdin = origStdin
	})

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	if _, err := w.Write([]byte(`{"k": "v"}`)); err != nil {
		t.Fatalf("write stdin: %v", err)
	}
	_ = w.Close()
	os.Stdin = r

	out := runCLI(t, []string{"jviz"})
	expected := "└─ k: v\n"
	if out != expected {
		t.Fatalf("unexpected stdin output\ngot:\n%s\nwant:\n%s", out, expected)
	}
}

func TestCLINoInputShowsHelp(t *testing.T) {
	origPiped := stdinIsPiped
	stdinIsPiped = func() bool { return false }
	t.Cleanup(func() { stdinIsPiped = origPiped })

	out := runCLI(t, []string{"jviz"})
	if !strings.Contains(out, "jviz [file]") {
		t.Fatalf("expected usage help when no input is given, got:\n%s", out)
	}
}

func TestCLIUnknownStyleFails(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{"a": 1}`)
	err := runCLIExpectError(t, []string{file, "-s", "oval"})
	if !strings.Contains(err.Error(), `unknown style "oval"`) {
		t.Fatalf("expected unknown style error, got %v", err)
	}
}

func TestCLIUnknownIconThemeFails(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{"a": 1}`)
	err := runCLIExpectError(t, []string{file, "-i", "nope"})
	if !strings.Contains(err.Error(), `unknown icon theme "nope"`) {
		t.Fatalf("expected unknown theme error, got %v", err)
	}
}

func TestCLIBadPathFails(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{"a": 1}`)
	err := runCLIExpectError(t, []string{file, "-p", "missing"})
	if !strings.Contains(err.Error(), "key 'missing' not found") {
		t.Fatalf("expected navigation error, got %v", err)
	}
}

func TestCLIMultiDocumentInputFails(t *testing.T) {
	file := writeTempDoc(t, "doc.yaml", "a: 1\n---\nb: 2\n")
	err := runCLIExpectError(t, []string{file})
	if !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple document error, got %v", err)
	}
}

func TestCLIRowOverflowSurfaces(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{"averyveryverylongkey": {"x": 1}}`)
	err := runCLIExpectError(t, []string{file, "-s", "rectangle", "-w", "20"})
	var overflow *render.RowOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected a row overflow error, got %v", err)
	}
	if overflow.Width != 20 {
		t.Fatalf("expected overflow width 20, got %d", overflow.Width)
	}
}

func TestCLIIconsFileRegistersTheme(t *testing.T) {
	doc := writeTempDoc(t, "doc.json", `{"a": 1, "b": {"x": 2}}`)
	themes := writeTempDoc(t, "themes.toml",
		"[themes.ocean]\ncontainer = \"🌊\"\nleaf = \"🐚\"\n")
	out := runCLI(t, []string{"jviz", doc, "--icons-file", themes, "-i", "ocean"})
	expected := "├─🐚a: 1\n└─🌊b\n   └─🐚x: 2\n"
	if out != expected {
		t.Fatalf("unexpected custom theme output\ngot:\n%s\nwant:\n%s", out, expected)
	}
}

func TestCLIIconsSubcommandListsThemes(t *testing.T) {
	resetRootCmdState()
	rootCmd.SetArgs([]string{"icons"})
	out := captureOutput(t, func() {
		if err := Execute(); err != nil {
			t.Fatalf("Execute error: %v", err)
		}
	})
	if !strings.Contains(out, "default: default") {
		t.Fatalf("expected default theme callout, got:\n%s", out)
	}
	for _, name := range []string{"tree", "star", "animal", "tech", "food"} {
		if !strings.Contains(out, " - "+name) {
			t.Fatalf("expected theme %q in listing, got:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "(blank)") {
		t.Fatalf("expected blank glyph marker for the default theme, got:\n%s", out)
	}
}

func TestCLIVersionSubcommand(t *testing.T) {
	resetRootCmdState()
	rootCmd.SetArgs([]string{"version"})
	out := captureOutput(t, func() {
		if err := Execute(); err != nil {
			t.Fatalf("Execute error: %v", err)
		}
	})
	if !strings.Contains(out, "jviz") || !strings.Contains(out, "commit") {
		t.Fatalf("expected version string, got %q", out)
	}
}

func TestCLIEmptyObjectPrintsBlankLine(t *testing.T) {
	file := writeTempDoc(t, "doc.json", `{}`)
	out := runCLI(t, []string{"jviz", file})
	if out != "\n" {
		t.Fatalf("expected a single blank line for an empty document, got %q", out)
	}
}
