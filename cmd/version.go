package cmd

import (
	"fmt"
	"runtime"
	rdebug "runtime/debug"

	"github.com/oakwood-commons/wayfind/pkg/settings"
)

// cliVersionString builds the human-readable version string for CLI output
// and Cobra's --version flag. Build metadata comes from ldflags when set,
// falling back to the module build info embedded by the toolchain.
func cliVersionString() string {
	version := settings.VersionInformation.BuildVersion
	if info, ok := rdebug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		} else {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					version = s.Value[:7]
					break
				}
			}
		}
	}
	return fmt.Sprintf("%s %s (go %s)", settings.CliBinaryName, version, runtime.Version())
}
