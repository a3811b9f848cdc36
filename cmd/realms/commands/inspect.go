package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
	"github.com/rayners/fvtt-realms-and-reaches/realm/codec"
)

var inspectDoc string

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a realm document",
	Long: `Show a document's envelope (format, version, author, created) and a
histogram of its tags. Malformed region records are counted, not fatal.

Example:
  realms inspect --doc forest.json`,
	RunE: runInspect,
}

func init() {
	InspectCmd.Flags().StringVar(&inspectDoc, "doc", "", "Realm document to inspect (required)")
}

// inspectReport is the machine-readable shape of the summary.
type inspectReport struct {
	Path        string         `json:"path"`
	Format      string         `json:"format"`
	Version     string         `json:"version"`
	Author      string         `json:"author,omitempty"`
	Description string         `json:"description,omitempty"`
	Created     time.Time      `json:"created"`
	Regions     int            `json:"regions"`
	BadRecords  int            `json:"bad_records,omitempty"`
	TagCounts   map[string]int `json:"tag_counts"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectDoc == "" {
		return errors.New("--doc is required")
	}

	doc, err := loadDocument(inspectDoc)
	if err != nil {
		return err
	}

	report := inspectReport{
		Path:        inspectDoc,
		Format:      doc.Format,
		Version:     doc.Metadata.Version,
		Author:      doc.Metadata.Author,
		Description: doc.Metadata.Description,
		Created:     doc.Metadata.Created,
		Regions:     len(doc.Regions),
		TagCounts:   make(map[string]int),
	}

	for _, raw := range doc.Regions {
		var r realm.Region
		if err := json.Unmarshal(raw, &r); err != nil {
			report.BadRecords++
			continue
		}
		for _, tag := range r.Tags() {
			report.TagCounts[tag]++
		}
	}

	if shouldOutputJSON(cmd) {
		return outputJSON(report)
	}

	fmt.Printf("%-13s %s\n", "Document:", report.Path)
	fmt.Printf("%-13s %s\n", "Format:", report.Format)
	fmt.Printf("%-13s %s\n", "Version:", report.Version)
	if report.Author != "" {
		fmt.Printf("%-13s %s\n", "Author:", report.Author)
	}
	if report.Description != "" {
		fmt.Printf("%-13s %s\n", "Description:", report.Description)
	}
	fmt.Printf("%-13s %s\n", "Created:", report.Created.Format("2006-01-02 15:04:05"))
	fmt.Printf("%-13s %d\n", "Regions:", report.Regions)

	if report.Format != codec.FormatTag {
		pterm.Warning.Printf("Unknown format (import expects %q)\n", codec.FormatTag)
	}
	if report.BadRecords > 0 {
		pterm.Warning.Printf("%d malformed region record(s)\n", report.BadRecords)
	}

	if len(report.TagCounts) > 0 {
		fmt.Printf("\n%-36s %s\n", "TAG", "REGIONS")
		fmt.Printf("%-36s %s\n", "---", "-------")
		for _, tc := range sortedTagCounts(report.TagCounts) {
			fmt.Printf("%-36s %d\n", truncate(tc.tag, 36), tc.count)
		}
	}

	return nil
}

type tagCount struct {
	tag   string
	count int
}

// sortedTagCounts orders the histogram by count descending, then tag.
func sortedTagCounts(counts map[string]int) []tagCount {
	out := make([]tagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, tagCount{tag, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].tag < out[j].tag
	})
	return out
}
