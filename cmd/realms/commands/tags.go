package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/config"
	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
	"github.com/rayners/fvtt-realms-and-reaches/realm/tags"
)

// TagsCmd represents the tags command group
var TagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Inspect and validate the tag vocabulary",
	Long: `Work with the tag vocabulary: the built-in namespaces plus any
namespace packs listed in the configuration.

Commands:
  realms tags ls                  # List known namespaces
  realms tags validate TAG...     # Check tags against the grammar and rules
  realms tags suggest PARTIAL     # Ranked autocomplete candidates
  realms tags conflicts --doc F   # Contradictory tags per region`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var tagsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List known tag namespaces",
	RunE:  runTagsLs,
}

var tagsValidateCmd = &cobra.Command{
	Use:   "validate <tag>...",
	Short: "Validate tags against the grammar and namespace rules",
	Long: `Validate each tag. Unknown keys are fine as long as the key:value
grammar holds; known namespaces add semantic checks on the value.

Examples:
  realms tags validate biome:forest travel_speed:0.5
  realms tags validate module:weather:intensity:high`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTagsValidate,
}

var tagsSuggestExisting []string

var tagsSuggestCmd = &cobra.Command{
	Use:   "suggest <partial>",
	Short: "Suggest tag completions for a partial input",
	Long: `Rank completions for a partially typed tag.

Input with a colon completes values within that namespace; input without
a colon matches namespace keys and all known values. Pass --existing for
each tag already on the region so single-valued namespaces that are
already covered drop out.

Examples:
  realms tags suggest terr
  realms tags suggest biome:f
  realms tags suggest dense --existing biome:forest`,
	Args: cobra.ExactArgs(1),
	RunE: runTagsSuggest,
}

var tagsConflictsDoc string

var tagsConflictsCmd = &cobra.Command{
	Use:   "conflicts [region-id]",
	Short: "Report contradictory tags per region",
	Long: `Scan a document for tag combinations that contradict each other:
several values in a single-valued namespace, or a travel speed above 1.0
on dense or rocky terrain. Conflicts are advisory; they never block
validation.

Examples:
  realms tags conflicts --doc forest.json
  realms tags conflicts --doc forest.json 3f2a7c1e`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTagsConflicts,
}

func init() {
	tagsSuggestCmd.Flags().StringArrayVar(&tagsSuggestExisting, "existing", nil, "Tag already on the region (repeatable)")
	tagsConflictsCmd.Flags().StringVar(&tagsConflictsDoc, "doc", "", "Realm document to scan (required)")

	TagsCmd.AddCommand(tagsLsCmd)
	TagsCmd.AddCommand(tagsValidateCmd)
	TagsCmd.AddCommand(tagsSuggestCmd)
	TagsCmd.AddCommand(tagsConflictsCmd)
}

// configuredRegistry builds the tag registry from config, including
// namespace packs.
func configuredRegistry() (*tags.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg.NewRegistry()
}

func runTagsLs(cmd *cobra.Command, args []string) error {
	registry, err := configuredRegistry()
	if err != nil {
		return err
	}

	namespaces := registry.Namespaces()
	if shouldOutputJSON(cmd) {
		return outputJSON(namespaces)
	}

	fmt.Printf("%-14s %-14s %-8s %-16s %s\n", "KEY", "LABEL", "MULTI", "RULE", "VALUES")
	fmt.Printf("%-14s %-14s %-8s %-16s %s\n", "---", "-----", "-----", "----", "------")

	for _, ns := range namespaces {
		multi := "no"
		if ns.Multi {
			multi = "yes"
		}
		fmt.Printf("%-14s %-14s %-8s %-16s %s\n",
			ns.Key,
			truncate(ns.Label, 14),
			multi,
			ruleName(ns.Rule),
			truncate(strings.Join(ns.Values, ", "), 48))
	}

	fmt.Printf("\nTotal: %d namespace(s)\n", len(namespaces))
	return nil
}

// ruleName renders a namespace rule for the ls table.
func ruleName(r tags.Rule) string {
	switch r.Kind {
	case tags.RuleRange:
		return fmt.Sprintf("range %g..%g", r.Min, r.Max)
	case tags.RuleNumber:
		return "number"
	case tags.RuleModule:
		return "module ref"
	default:
		return "-"
	}
}

func runTagsValidate(cmd *cobra.Command, args []string) error {
	registry, err := configuredRegistry()
	if err != nil {
		return err
	}

	invalid := 0
	for _, tag := range args {
		if err := registry.Validate(tag); err != nil {
			invalid++
			pterm.Error.Printf("✗ %s: %v\n", tag, err)
			continue
		}
		pterm.Success.Printf("✓ %s\n", tag)
	}

	if invalid > 0 {
		return errors.Newf("%d of %d tags invalid", invalid, len(args))
	}
	return nil
}

func runTagsSuggest(cmd *cobra.Command, args []string) error {
	registry, err := configuredRegistry()
	if err != nil {
		return err
	}

	suggestions := registry.Suggest(args[0], tagsSuggestExisting)
	if shouldOutputJSON(cmd) {
		return outputJSON(suggestions)
	}

	if len(suggestions) == 0 {
		fmt.Println("No suggestions")
		return nil
	}

	fmt.Printf("%-30s %-14s %s\n", "TAG", "NAMESPACE", "SCORE")
	fmt.Printf("%-30s %-14s %s\n", "---", "---------", "-----")
	for _, s := range suggestions {
		fmt.Printf("%-30s %-14s %5.1f\n", truncate(s.Tag, 30), s.Namespace, s.Score)
	}
	return nil
}

func runTagsConflicts(cmd *cobra.Command, args []string) error {
	if tagsConflictsDoc == "" {
		return errors.New("--doc is required")
	}

	store, _, err := loadStore(tagsConflictsDoc)
	if err != nil {
		return err
	}

	regions := store.All()
	if len(args) == 1 {
		region, err := resolveRegion(store, args[0])
		if err != nil {
			return err
		}
		regions = []*realm.Region{region}
	}

	type regionConflicts struct {
		RegionID  string          `json:"region_id"`
		Name      string          `json:"name"`
		Conflicts []tags.Conflict `json:"conflicts"`
	}

	var report []regionConflicts
	for _, r := range regions {
		conflicts := store.Registry().DetectConflicts(r.Tags())
		if len(conflicts) == 0 {
			continue
		}
		report = append(report, regionConflicts{RegionID: r.ID, Name: r.Name, Conflicts: conflicts})
	}

	if shouldOutputJSON(cmd) {
		return outputJSON(report)
	}

	if len(report) == 0 {
		pterm.Success.Printf("No conflicts in %d region(s)\n", len(regions))
		return nil
	}

	for _, rc := range report {
		pterm.Warning.Printf("%s (%s)\n", rc.Name, truncate(rc.RegionID, 10))
		for _, c := range rc.Conflicts {
			pterm.Printf("  %s\n", c.Message)
		}
	}
	fmt.Printf("\n%d region(s) with conflicts\n", len(report))
	return nil
}
