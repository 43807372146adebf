// Package settings provides build metadata, runtime configuration, and
// context helpers used across the wayfind CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "wayfind"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// EntryPointSettings holds configuration for locating the menu document that
// seeds the navigation session: the workspace label, the menu file to load,
// and the block inside it to open first.
type EntryPointSettings struct {
	FromAPI   bool
	FromCli   bool
	Workspace string
	MenuFile  string
	Block     string
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the application.
// It includes options for logging, entry point configuration, output
// formatting, and error handling behavior.
type Run struct {
	MinLogLevel        int8
	EntryPointSettings EntryPointSettings
	IsQuiet            bool
	NoColor            bool
	ExitOnError        bool
}

// NewCliParams initializes and returns a pointer to a Run struct with default
// CLI parameters. It sets logging level to 0, configures entry point settings
// for CLI usage, and sets default flags for quiet mode, color output, and
// error handling.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		EntryPointSettings: EntryPointSettings{
			FromAPI:   false,
			FromCli:   true,
			Workspace: "default",
			Block:     "main",
		},
		IsQuiet:     false,
		NoColor:     false,
		ExitOnError: true,
	}
}
