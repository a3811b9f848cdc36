package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm/geometry"
)

var (
	createDoc     string
	createName    string
	createTags    []string
	createCircle  string
	createRect    string
	createPolygon string
)

// CreateCmd represents the create command
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a region to a realm document",
	Long: `Add a named, tagged region to a realm document.

Exactly one shape flag is required. Rectangles and circles are centered
at X,Y; rectangle rotation is in degrees. A missing document is created.

Examples:
  realms create --doc forest.json --name "Darkwood" --tag biome:forest --circle 1200,900,300
  realms create --doc keep.json --rect 500,500,200,120,45 --tag terrain:rocky --tag elevation:1200
  realms create --doc marsh.json --polygon 0,0,400,0,400,300,0,300 --tag terrain:marshy`,
	RunE: runCreate,
}

func init() {
	CreateCmd.Flags().StringVar(&createDoc, "doc", "", "Realm document to modify (required)")
	CreateCmd.Flags().StringVar(&createName, "name", "", "Region name (defaults to a name derived from the id)")
	CreateCmd.Flags().StringArrayVar(&createTags, "tag", nil, "Tag in key:value form (repeatable)")
	CreateCmd.Flags().StringVar(&createCircle, "circle", "", "Circle as X,Y,R")
	CreateCmd.Flags().StringVar(&createRect, "rect", "", "Rectangle as X,Y,W,H or X,Y,W,H,ROT (degrees)")
	CreateCmd.Flags().StringVar(&createPolygon, "polygon", "", "Polygon as X1,Y1,X2,Y2,... (at least 3 vertices)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if createDoc == "" {
		return errors.New("--doc is required")
	}

	g, err := parseShapeFlags()
	if err != nil {
		return err
	}

	store, doc, err := loadOrCreateStore(createDoc)
	if err != nil {
		return err
	}

	region, err := store.Create(createName, g, createTags)
	if err != nil {
		return errors.Wrap(err, "failed to create region")
	}

	if err := saveStore(store, doc, createDoc); err != nil {
		return err
	}

	if shouldOutputJSON(cmd) {
		return outputJSON(region)
	}

	pterm.Success.Printf("Created region %s\n", region.Name)
	pterm.Printf("  ID: %s\n", region.ID)
	if tagList := region.Tags(); len(tagList) > 0 {
		pterm.Printf("  Tags: %v\n", tagList)
	}
	return nil
}

// parseShapeFlags turns exactly one of --circle/--rect/--polygon into a
// geometry.
func parseShapeFlags() (geometry.Geometry, error) {
	set := 0
	for _, flag := range []string{createCircle, createRect, createPolygon} {
		if flag != "" {
			set++
		}
	}
	if set != 1 {
		return geometry.Geometry{}, errors.New("exactly one of --circle, --rect, or --polygon is required")
	}

	switch {
	case createCircle != "":
		return parseCircle(createCircle)
	case createRect != "":
		return parseRect(createRect)
	default:
		return parsePolygon(createPolygon)
	}
}
