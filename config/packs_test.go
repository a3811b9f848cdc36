package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayners/fvtt-realms-and-reaches/realm/tags"
)

func writePack(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))
	return path
}

func TestReadNamespacePack(t *testing.T) {
	path := writePack(t, `
[[namespace]]
key = "faction"
label = "Faction"
description = "Which power controls the realm"
values = ["empire", "guild", "clans"]
multi = false

[[namespace]]
key = "danger"
rule = "range"
min = 0.0
max = 10.0

[[namespace]]
key = "depth"
rule = "number"
multi = true
`)

	namespaces, err := ReadNamespacePack(path)
	require.NoError(t, err)
	require.Len(t, namespaces, 3)

	faction := namespaces[0]
	assert.Equal(t, "faction", faction.Key)
	assert.Equal(t, "Faction", faction.Label)
	assert.Equal(t, []string{"empire", "guild", "clans"}, faction.Values)
	assert.False(t, faction.Multi)
	assert.Equal(t, tags.RuleNone, faction.Rule.Kind)

	danger := namespaces[1]
	assert.Equal(t, "danger", danger.Label, "label defaults to the key")
	assert.Equal(t, tags.RuleRange, danger.Rule.Kind)
	assert.Equal(t, 0.0, danger.Rule.Min)
	assert.Equal(t, 10.0, danger.Rule.Max)

	depth := namespaces[2]
	assert.Equal(t, tags.RuleNumber, depth.Rule.Kind)
	assert.True(t, depth.Multi)
}

func TestReadNamespacePackErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing key",
			content: `
[[namespace]]
label = "No Key"
`,
		},
		{
			name: "unknown rule",
			content: `
[[namespace]]
key = "depth"
rule = "module"
`,
		},
		{
			name: "range min above max",
			content: `
[[namespace]]
key = "danger"
rule = "range"
min = 10.0
max = 0.0
`,
		},
		{
			name:    "not toml",
			content: `{"namespace": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadNamespacePack(writePack(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestReadNamespacePackMissingFile(t *testing.T) {
	_, err := ReadNamespacePack(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestConfigNewRegistry(t *testing.T) {
	path := writePack(t, `
[[namespace]]
key = "faction"
values = ["empire", "guild"]

[[namespace]]
key = "danger"
rule = "range"
min = 0.0
max = 10.0
`)

	cfg := &Config{Namespaces: NamespaceConfig{Packs: []string{path}}}
	registry, err := cfg.NewRegistry()
	require.NoError(t, err)

	// Built-ins survive alongside pack namespaces
	_, ok := registry.Lookup("terrain")
	assert.True(t, ok)

	faction, ok := registry.Lookup("faction")
	require.True(t, ok)
	assert.Equal(t, []string{"empire", "guild"}, faction.Values)

	// The pack's range rule is enforced by validation
	assert.NoError(t, registry.Validate("danger:7"))
	assert.Error(t, registry.Validate("danger:11"))
}

func TestConfigNewRegistryEmptyPacks(t *testing.T) {
	cfg := &Config{}
	registry, err := cfg.NewRegistry()
	require.NoError(t, err)
	assert.NotEmpty(t, registry.Namespaces())
}

func TestConfigNewRegistryBadPack(t *testing.T) {
	cfg := &Config{Namespaces: NamespaceConfig{Packs: []string{"/nonexistent/pack.toml"}}}
	_, err := cfg.NewRegistry()
	assert.Error(t, err)
}
