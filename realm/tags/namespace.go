// Package tags implements the realm tag vocabulary: a key:value
// micro-grammar with per-namespace semantic rules, ranked autocomplete
// suggestions, and soft conflict detection.
//
// The vocabulary is open. Unknown keys are accepted as long as they satisfy
// the grammar; known namespaces add semantic checks (numeric ranges, the
// module reference form) and contribute suggestion candidates.
package tags

// RuleKind discriminates how a namespace constrains its values beyond the
// character grammar.
type RuleKind int

const (
	// RuleNone applies no semantic check; Values drives suggestions.
	RuleNone RuleKind = iota
	// RuleRange requires the value to parse as a float within [Min, Max].
	RuleRange
	// RuleNumber requires the value to parse as a float.
	RuleNumber
	// RuleModule requires the reserved reference form
	// module:<name>:<property>[:<value>].
	RuleModule
)

// Rule is a namespace's semantic validator, selected by Kind. Min and Max
// are only meaningful for RuleRange.
type Rule struct {
	Kind RuleKind
	Min  float64
	Max  float64
}

// Namespace describes one tag key: display metadata, suggestion values,
// semantic rule, and cardinality. Single-valued namespaces hold at most one
// tag per region (adding replaces); multi-valued namespaces accumulate.
type Namespace struct {
	Key         string
	Label       string
	Description string
	Values      []string
	Rule        Rule
	Multi       bool
}

// ModuleKey is the reserved namespace whose values carry additional
// colon-separated segments.
const ModuleKey = "module"

// BuiltinNamespaces returns the default namespace table. Slice order is the
// enumeration order used to break ties in suggestion ranking.
func BuiltinNamespaces() []Namespace {
	return []Namespace{
		{
			Key:         "biome",
			Label:       "Biome",
			Description: "Dominant ecosystem of the realm",
			Values: []string{
				"forest", "desert", "swamp", "mountain", "grassland",
				"tundra", "jungle", "coastal", "underground",
			},
		},
		{
			Key:         "terrain",
			Label:       "Terrain",
			Description: "Physical terrain features, several may apply",
			Values: []string{
				"dense", "sparse", "rocky", "marshy", "open", "rugged", "overgrown",
			},
			Multi: true,
		},
		{
			Key:         "climate",
			Label:       "Climate",
			Description: "Prevailing climate of the realm",
			Values:      []string{"arctic", "temperate", "tropical", "arid", "humid"},
		},
		{
			Key:         "travel_speed",
			Label:       "Travel Speed",
			Description: "Travel speed multiplier between 0.1 and 2.0",
			Rule:        Rule{Kind: RuleRange, Min: 0.1, Max: 2.0},
		},
		{
			Key:         "elevation",
			Label:       "Elevation",
			Description: "Elevation in scene units",
			Rule:        Rule{Kind: RuleNumber},
		},
		{
			Key:         "resources",
			Label:       "Resources",
			Description: "Harvestable resources found in the realm",
			Values: []string{
				"timber", "game", "ore", "fish", "herbs", "stone", "salt",
			},
			Multi: true,
		},
		{
			Key:         "custom",
			Label:       "Custom",
			Description: "Freeform annotations",
			Multi:       true,
		},
		{
			Key:         ModuleKey,
			Label:       "Module",
			Description: "Reserved references of the form module:<name>:<property>[:<value>]",
			Rule:        Rule{Kind: RuleModule},
			Multi:       true,
		},
	}
}
