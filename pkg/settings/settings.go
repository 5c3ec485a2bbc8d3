// Package settings provides build metadata and per-execution options shared
// by the jviz CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "jviz"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the options for a single execution of the renderer, resolved
// from the command line before any document is loaded.
type Run struct {
	MinLogLevel int8
	Style       string
	IconTheme   string
	Width       int
	Path        string
	Interactive bool
	NoColor     bool
}

// NewCliParams returns a Run populated with the CLI defaults: tree style,
// undecorated icons, and the standard rectangle width.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Style:       "tree",
		IconTheme:   "default",
		Width:       60,
	}
}
