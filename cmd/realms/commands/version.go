package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show realms version information",
	Long:  `Display version, build time, commit hash, and platform information for the realms binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()

		if shouldOutputJSON(cmd) {
			return outputJSON(info)
		}

		fmt.Println(info.String())
		fmt.Printf("Platform: %s\n", info.Platform)
		fmt.Printf("Go: %s\n", info.GoVersion)
		return nil
	},
}
