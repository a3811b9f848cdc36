package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/internal/util"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
)

var (
	setDoc        string
	setName       string
	setAddTags    []string
	setRemoveTags []string
)

// SetCmd represents the set command
var SetCmd = &cobra.Command{
	Use:   "set <region-id>",
	Short: "Update a region's name or tags",
	Long: `Update a region in place. Tag removals apply before additions, so
a single call can swap a tag's value. Adding a tag whose namespace is
single-valued replaces the previous value for that key.

Examples:
  realms set --doc forest.json 3f2a7c1e --name "Darkwood Deep"
  realms set --doc forest.json 3f2a7c1e --add-tag climate:temperate
  realms set --doc forest.json 3f2a7c1e --remove-tag terrain:sparse --add-tag terrain:dense`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	SetCmd.Flags().StringVar(&setDoc, "doc", "", "Realm document to modify (required)")
	SetCmd.Flags().StringVar(&setName, "name", "", "New region name")
	SetCmd.Flags().StringArrayVar(&setAddTags, "add-tag", nil, "Tag to add (repeatable)")
	SetCmd.Flags().StringArrayVar(&setRemoveTags, "remove-tag", nil, "Tag to remove (repeatable)")
}

func runSet(cmd *cobra.Command, args []string) error {
	if setDoc == "" {
		return errors.New("--doc is required")
	}

	patch := realm.Patch{
		AddTags:    setAddTags,
		RemoveTags: setRemoveTags,
	}
	if cmd.Flags().Changed("name") {
		patch.Name = util.Ptr(setName)
	}
	if patch.Name == nil && len(patch.AddTags) == 0 && len(patch.RemoveTags) == 0 {
		return errors.New("nothing to update: pass --name, --add-tag, or --remove-tag")
	}

	store, doc, err := loadStore(setDoc)
	if err != nil {
		return err
	}

	region, err := resolveRegion(store, args[0])
	if err != nil {
		return err
	}

	if err := store.Update(region.ID, patch); err != nil {
		return errors.Wrapf(err, "failed to update region %s", region.ID)
	}

	if err := saveStore(store, doc, setDoc); err != nil {
		return err
	}

	if shouldOutputJSON(cmd) {
		return outputJSON(region)
	}

	pterm.Success.Printf("Updated region %s\n", region.Name)
	if tagList := region.Tags(); len(tagList) > 0 {
		pterm.Printf("  Tags: %v\n", tagList)
	}
	return nil
}
