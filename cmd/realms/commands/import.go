package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/config"
	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm/codec"
)

var (
	importInto   string
	importPolicy string
)

// ImportCmd represents the import command
var ImportCmd = &cobra.Command{
	Use:   "import <source-file>",
	Short: "Import regions from another realm document",
	Long: `Import the regions of a source document into a destination document.

Id collisions are reconciled by policy:
  skip     - keep the existing region, drop the incoming one (default)
  merge    - insert the incoming region under a fresh id
  replace  - clear the destination first, then import everything

Malformed region records are skipped with a warning; they never abort the
import. The default policy comes from import.default_policy in the
configuration.

Examples:
  realms import wilderness.json --into forest.json
  realms import wilderness.json --into forest.json --policy merge
  realms import v2.json --into forest.json --policy replace`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	ImportCmd.Flags().StringVar(&importInto, "into", "", "Destination document (required)")
	ImportCmd.Flags().StringVar(&importPolicy, "policy", "", "Collision policy: skip, merge, or replace")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importInto == "" {
		return errors.New("--into is required")
	}

	source := args[0]

	policy, err := resolvePolicy(importPolicy)
	if err != nil {
		return err
	}

	sourceDoc, err := loadDocument(source)
	if err != nil {
		return err
	}

	store, destDoc, err := loadOrCreateStore(importInto)
	if err != nil {
		return err
	}

	imported, err := codec.Import(store, sourceDoc, policy)
	if err != nil {
		return errors.Wrapf(err, "failed to import %s", source)
	}

	if err := saveStore(store, destDoc, importInto); err != nil {
		return err
	}

	skipped := len(sourceDoc.Regions) - imported
	if shouldOutputJSON(cmd) {
		return outputJSON(map[string]interface{}{
			"source":   source,
			"into":     importInto,
			"policy":   string(policy),
			"imported": imported,
			"skipped":  skipped,
			"total":    store.Len(),
		})
	}

	pterm.Success.Printf("Imported %d of %d region(s) into %s\n", imported, len(sourceDoc.Regions), importInto)
	if skipped > 0 {
		pterm.Printf("  Skipped: %d (policy %s)\n", skipped, policy)
	}
	pterm.Printf("  Document now holds %d region(s)\n", store.Len())
	return nil
}

// resolvePolicy parses the --policy flag, falling back to the configured
// default when the flag is empty.
func resolvePolicy(flag string) (codec.Policy, error) {
	if flag != "" {
		return codec.ParsePolicy(flag)
	}
	cfg, err := config.Load()
	if err != nil {
		return "", errors.Wrap(err, "failed to load config")
	}
	return cfg.ImportPolicy(), nil
}
