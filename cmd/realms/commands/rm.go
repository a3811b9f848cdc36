package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
)

var rmDoc string

// RmCmd represents the rm command
var RmCmd = &cobra.Command{
	Use:   "rm <region-id>",
	Short: "Delete a region from a realm document",
	Long: `Delete a region by id. A unique id prefix is accepted.

Example:
  realms rm --doc forest.json 3f2a7c1e`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	RmCmd.Flags().StringVar(&rmDoc, "doc", "", "Realm document to modify (required)")
}

func runRm(cmd *cobra.Command, args []string) error {
	if rmDoc == "" {
		return errors.New("--doc is required")
	}

	store, doc, err := loadStore(rmDoc)
	if err != nil {
		return err
	}

	region, err := resolveRegion(store, args[0])
	if err != nil {
		return err
	}

	if !store.Delete(region.ID) {
		return errors.NewNotFoundError("region %q not found in %s", region.ID, rmDoc)
	}

	if err := saveStore(store, doc, rmDoc); err != nil {
		return err
	}

	pterm.Success.Printf("Deleted region %s (%s)\n", region.Name, region.ID)
	return nil
}
