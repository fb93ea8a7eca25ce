package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Modified  bool
}

// currentBuildInfo fills whatever the linker flags left unset from the module
// and VCS stamps the go toolchain embeds in the binary.
func currentBuildInfo() buildInfo {
	info := buildInfo{Version: version, Commit: commit, Date: date, GoVersion: "unknown"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return mergeBuildInfo(info, bi)
}

func mergeBuildInfo(info buildInfo, bi *debug.BuildInfo) buildInfo {
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = setting.Value
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	return info
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuildInfo()
			rev := info.Commit
			if info.Modified {
				rev += " (modified)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uiregistry %s\ncommit: %s\nbuilt: %s\ngo: %s\n", info.Version, rev, info.Date, info.GoVersion)
			return nil
		},
	}

	return cmd
}
