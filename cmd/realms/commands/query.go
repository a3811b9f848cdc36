package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/logger"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
)

var (
	queryDoc    string
	queryPoint  string
	queryBounds string
	queryTags   []string
	queryKey    string
	queryLimit  int
	queryFormat string
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Find regions by point, bounds, or tags",
	Long: `Query a realm document.

--point returns regions containing the point, --key returns regions
carrying any tag with that key, and --tag/--bounds/--limit combine into a
compound filter. --point and --key cannot be mixed with the other filters.

Examples:
  realms query --doc forest.json --point 1250,950
  realms query --doc forest.json --bounds 0,0,2000,2000 --tag terrain:dense
  realms query --doc forest.json --key travel_speed
  realms query --doc forest.json --tag biome:forest --limit 5 --format json`,
	RunE: runQuery,
}

func init() {
	QueryCmd.Flags().StringVar(&queryDoc, "doc", "", "Realm document to query (required)")
	QueryCmd.Flags().StringVar(&queryPoint, "point", "", "Point as X,Y")
	QueryCmd.Flags().StringVar(&queryBounds, "bounds", "", "Bounding box as X,Y,W,H")
	QueryCmd.Flags().StringArrayVar(&queryTags, "tag", nil, "Required tag, exact key:value (repeatable)")
	QueryCmd.Flags().StringVar(&queryKey, "key", "", "Match any tag with this key")
	QueryCmd.Flags().IntVarP(&queryLimit, "limit", "l", 0, "Maximum number of results (0 = no limit)")
	QueryCmd.Flags().StringVarP(&queryFormat, "format", "f", "table", "Output format (table/json)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryDoc == "" {
		return errors.New("--doc is required")
	}

	store, _, err := loadStore(queryDoc)
	if err != nil {
		return err
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	if logger.ShouldOutput(verbosity, logger.OutputQueries) {
		pterm.Info.Printf("Querying %d region(s) in %s (point=%q key=%q tags=%v bounds=%q limit=%d)\n",
			store.Len(), queryDoc, queryPoint, queryKey, queryTags, queryBounds, queryLimit)
	}

	results, err := runQueryFilters(store)
	if err != nil {
		return err
	}

	if queryFormat == "json" || shouldOutputJSON(cmd) {
		return outputJSON(results)
	}
	return displayRegions(results)
}

// runQueryFilters routes the flag combination to the right store query.
func runQueryFilters(store *realm.Store) ([]*realm.Region, error) {
	compound := len(queryTags) > 0 || queryBounds != "" || queryLimit > 0

	switch {
	case queryPoint != "":
		if compound || queryKey != "" {
			return nil, errors.New("--point cannot be combined with other filters")
		}
		x, y, err := parsePoint(queryPoint)
		if err != nil {
			return nil, err
		}
		return store.QueryPoint(x, y), nil

	case queryKey != "":
		if compound {
			return nil, errors.New("--key cannot be combined with other filters")
		}
		return store.FindByTagKey(queryKey), nil

	default:
		q := realm.Query{Tags: queryTags, Limit: queryLimit}
		if queryBounds != "" {
			box, err := parseBounds(queryBounds)
			if err != nil {
				return nil, err
			}
			q.Bounds = &box
		}
		return store.Query(q), nil
	}
}

func displayRegions(results []*realm.Region) error {
	if len(results) == 0 {
		fmt.Println("No regions found")
		return nil
	}

	// Print table header
	fmt.Printf("%-10s %-24s %-10s %s\n", "ID", "NAME", "SHAPE", "TAGS")
	fmt.Printf("%-10s %-24s %-10s %s\n", "--", "----", "-----", "----")

	for _, r := range results {
		fmt.Printf("%-10s %-24s %-10s %s\n",
			truncate(r.ID, 10),
			truncate(r.Name, 24),
			r.Geometry.Type,
			truncate(strings.Join(r.Tags(), " "), 60))
	}

	fmt.Printf("\nTotal: %d region(s)\n", len(results))
	return nil
}
