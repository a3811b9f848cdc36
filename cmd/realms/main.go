package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/cmd/realms/commands"
	"github.com/rayners/fvtt-realms-and-reaches/config"
	"github.com/rayners/fvtt-realms-and-reaches/logger"
)

var rootCmd = &cobra.Command{
	Use:   "realms",
	Short: "realms - Spatial tag queries over realm documents",
	Long: `realms - Author and query tagged spatial regions.

Realm documents are JSON files of named, tagged regions (polygons,
rectangles, circles) on a scene plane. This tool creates and edits
regions, answers point/bounds/tag queries, validates tag vocabulary,
and moves documents between tables via import/export.

Available commands:
  create  - Add a region to a document
  set     - Update a region's name or tags
  rm      - Delete a region
  query   - Find regions by point, bounds, or tags
  tags    - Inspect and validate the tag vocabulary
  import  - Import regions from another document
  export  - Export a document with fresh metadata
  inspect - Summarize a document without loading it
  watch   - Watch a document and revalidate on change
  config  - Manage realms configuration

Examples:
  realms create --doc forest.json --name "Darkwood" --tag biome:forest --circle 1200,900,300
  realms query --doc forest.json --point 1250,950
  realms tags suggest terr
  realms import wilderness.json --into forest.json --policy merge`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config verbosity is the baseline; -v flags add to it
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.InitializeWithVerbosity(jsonOutput || cfg.Log.JSON, cfg.Log.Verbosity+verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "JSON output for results and logs")

	// Add commands
	rootCmd.AddCommand(commands.CreateCmd)
	rootCmd.AddCommand(commands.SetCmd)
	rootCmd.AddCommand(commands.RmCmd)
	rootCmd.AddCommand(commands.QueryCmd)
	rootCmd.AddCommand(commands.TagsCmd)
	rootCmd.AddCommand(commands.ImportCmd)
	rootCmd.AddCommand(commands.ExportCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
