package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/config"
	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm/codec"
)

var (
	exportDoc         string
	exportOut         string
	exportDescription string
)

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a realm document with fresh metadata",
	Long: `Re-export a document under fresh metadata: created timestamp, schema
version, the configured author, and an optional description. Region ids
and content are preserved exactly. Without --out the document goes to
stdout.

Examples:
  realms export --doc forest.json --out share/forest.json --description "Darkwood region pack"
  realms export --doc forest.json > /tmp/forest.json`,
	RunE: runExport,
}

func init() {
	ExportCmd.Flags().StringVar(&exportDoc, "doc", "", "Realm document to export (required)")
	ExportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to stdout)")
	ExportCmd.Flags().StringVar(&exportDescription, "description", "", "Document description")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportDoc == "" {
		return errors.New("--doc is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	store, prev, err := loadStore(exportDoc)
	if err != nil {
		return err
	}

	author := cfg.Author
	if author == "" {
		author = prev.Metadata.Author
	}
	description := exportDescription
	if description == "" {
		description = prev.Metadata.Description
	}

	doc, err := codec.Export(store, author, description)
	if err != nil {
		return errors.Wrapf(err, "failed to export %s", exportDoc)
	}

	if exportOut == "" {
		data, err := codec.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if err := writeDocument(doc, exportOut); err != nil {
		return err
	}

	pterm.Success.Printf("Exported %d region(s) to %s\n", len(doc.Regions), exportOut)
	return nil
}
