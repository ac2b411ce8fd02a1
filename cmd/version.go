package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the amalgam build version, the VCS revision it was built from and the Go version.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders the module version, the VCS revision when recorded
// and the Go toolchain version.
func versionLines(info *debug.BuildInfo) []string {
	lines := []string{"amalgam version\t " + info.Main.Version}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if revision != "" {
		if modified == "true" {
			revision += " (modified)"
		}

		lines = append(lines, "revision\t "+revision)
	}

	return append(lines, "go version\t "+info.GoVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
