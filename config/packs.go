package config

import (
	"github.com/BurntSushi/toml"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm/tags"
)

// Namespace packs are TOML files that extend the tag vocabulary with
// host-defined namespaces. A pack is a list of [[namespace]] tables:
//
//	[[namespace]]
//	key = "faction"
//	label = "Faction"
//	description = "Which power controls the realm"
//	values = ["empire", "guild", "clans"]
//	multi = false
//
//	[[namespace]]
//	key = "danger"
//	label = "Danger"
//	rule = "range"
//	min = 0.0
//	max = 10.0

// packFile mirrors the TOML shape of one namespace pack.
type packFile struct {
	Namespace []packEntry `toml:"namespace"`
}

// packEntry is one [[namespace]] table.
type packEntry struct {
	Key         string   `toml:"key"`
	Label       string   `toml:"label"`
	Description string   `toml:"description"`
	Values      []string `toml:"values"`
	Multi       bool     `toml:"multi"`
	Rule        string   `toml:"rule"` // none (default), number, range
	Min         float64  `toml:"min"`
	Max         float64  `toml:"max"`
}

// ReadNamespacePack decodes one pack file into registry namespaces.
func ReadNamespacePack(path string) ([]tags.Namespace, error) {
	var pack packFile
	if _, err := toml.DecodeFile(path, &pack); err != nil {
		return nil, errors.Wrapf(err, "failed to parse namespace pack %s", path)
	}

	namespaces := make([]tags.Namespace, 0, len(pack.Namespace))
	for i, entry := range pack.Namespace {
		ns, err := entry.toNamespace()
		if err != nil {
			return nil, errors.Wrapf(err, "namespace %d in pack %s", i, path)
		}
		namespaces = append(namespaces, ns)
	}
	return namespaces, nil
}

func (e packEntry) toNamespace() (tags.Namespace, error) {
	if e.Key == "" {
		return tags.Namespace{}, errors.New("namespace key is required")
	}

	ns := tags.Namespace{
		Key:         e.Key,
		Label:       e.Label,
		Description: e.Description,
		Values:      e.Values,
		Multi:       e.Multi,
	}
	if ns.Label == "" {
		ns.Label = e.Key
	}

	switch e.Rule {
	case "", "none":
		ns.Rule = tags.Rule{Kind: tags.RuleNone}
	case "number":
		ns.Rule = tags.Rule{Kind: tags.RuleNumber}
	case "range":
		if e.Min > e.Max {
			return tags.Namespace{}, errors.Newf("range rule has min %g above max %g", e.Min, e.Max)
		}
		ns.Rule = tags.Rule{Kind: tags.RuleRange, Min: e.Min, Max: e.Max}
	default:
		// The module grammar is reserved for the built-in module namespace.
		return tags.Namespace{}, errors.Newf("unknown rule %q (want none, number, or range)", e.Rule)
	}

	return ns, nil
}

// NamespacePacks reads every pack listed in the configuration, in order.
func (c *Config) NamespacePacks() ([]tags.Namespace, error) {
	var all []tags.Namespace
	for _, path := range c.Namespaces.Packs {
		namespaces, err := ReadNamespacePack(path)
		if err != nil {
			return nil, err
		}
		all = append(all, namespaces...)
	}
	return all, nil
}

// NewRegistry builds a tag registry from the built-in namespace table plus
// every configured pack. Packs may override built-ins by key.
func (c *Config) NewRegistry() (*tags.Registry, error) {
	extra, err := c.NamespacePacks()
	if err != nil {
		return nil, err
	}
	return tags.NewRegistry(tags.WithNamespaces(extra...)), nil
}
