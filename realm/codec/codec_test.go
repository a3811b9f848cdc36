package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
	"github.com/rayners/fvtt-realms-and-reaches/realm/geometry"
	"github.com/rayners/fvtt-realms-and-reaches/realm/tags"
)

func seedStore(t *testing.T) *realm.Store {
	t.Helper()
	s := realm.NewStore("export-test", tags.NewRegistry())
	s.SetAuthor("gm")

	_, err := s.Create("Forest", geometry.Polygon(0, 0, 50, 0, 50, 50, 0, 50),
		[]string{"biome:forest", "terrain:dense", "travel_speed:0.75"})
	require.NoError(t, err)
	_, err = s.Create("Oasis", geometry.Circle(75, 75, 25), []string{"biome:desert"})
	require.NoError(t, err)
	return s
}

func TestExportDocumentShape(t *testing.T) {
	s := seedStore(t)

	doc, err := Export(s, "gm", "session backup")
	require.NoError(t, err)

	assert.Equal(t, FormatTag, doc.Format)
	assert.Equal(t, SchemaVersion, doc.Metadata.Version)
	assert.Equal(t, "gm", doc.Metadata.Author)
	assert.Equal(t, "session backup", doc.Metadata.Description)
	assert.False(t, doc.Metadata.Created.IsZero())
	assert.Len(t, doc.Regions, 2)
}

func TestRoundTrip(t *testing.T) {
	s := seedStore(t)
	originals := s.All()

	doc, err := Export(s, "gm", "")
	require.NoError(t, err)
	data, err := Marshal(doc)
	require.NoError(t, err)
	back, err := Unmarshal(data)
	require.NoError(t, err)

	target := realm.NewStore("import-test", tags.NewRegistry())
	n, err := Import(target, back, PolicySkip)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	for _, orig := range originals {
		got, ok := target.Get(orig.ID)
		require.True(t, ok, "region %s must survive the round trip", orig.ID)

		wantJSON, err := json.Marshal(orig)
		require.NoError(t, err)
		gotJSON, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, string(wantJSON), string(gotJSON),
			"id, name, geometry, tags, and metadata are preserved exactly")
	}
}

func TestImportSkipPolicy(t *testing.T) {
	s := realm.NewStore("scene", tags.NewRegistry())
	r, err := s.Create("Solo", geometry.Circle(0, 0, 10), []string{"biome:forest"})
	require.NoError(t, err)

	doc, err := Export(s, "gm", "")
	require.NoError(t, err)

	s.Clear()
	require.Equal(t, 0, s.Len())

	n, err := Import(s, doc, PolicySkip)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Len())

	n, err = Import(s, doc, PolicySkip)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "existing ids are silently omitted")
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get(r.ID)
	assert.True(t, ok)
}

func TestImportMergePolicy(t *testing.T) {
	s := realm.NewStore("scene", tags.NewRegistry())
	orig, err := s.Create("Solo", geometry.Circle(0, 0, 10), []string{"biome:forest"})
	require.NoError(t, err)

	doc, err := Export(s, "gm", "")
	require.NoError(t, err)

	n, err := Import(s, doc, PolicyMerge)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Equal(t, 2, s.Len())

	ids := make(map[string]bool)
	for _, r := range s.All() {
		ids[r.ID] = true
		assert.Equal(t, "Solo", r.Name)
	}
	assert.Len(t, ids, 2, "merge assigns a brand-new id")
	assert.True(t, ids[orig.ID], "the existing region is never overwritten")
}

func TestImportReplacePolicy(t *testing.T) {
	source := seedStore(t)
	doc, err := Export(source, "gm", "")
	require.NoError(t, err)

	target := realm.NewStore("scene", tags.NewRegistry())
	old, err := target.Create("Old", geometry.Circle(0, 0, 1), nil)
	require.NoError(t, err)

	n, err := Import(target, doc, PolicyReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, target.Len())

	_, ok := target.Get(old.ID)
	assert.False(t, ok, "replace clears prior regions")
	for _, orig := range source.All() {
		_, ok := target.Get(orig.ID)
		assert.True(t, ok, "replace preserves incoming ids")
	}
}

func TestImportUnknownFormat(t *testing.T) {
	target := realm.NewStore("scene", tags.NewRegistry())
	keep, err := target.Create("Keep", geometry.Circle(0, 0, 1), nil)
	require.NoError(t, err)

	doc := &Document{
		Format:  "someone-elses-format-v9",
		Regions: []json.RawMessage{json.RawMessage(`{"id":"x","name":"X"}`)},
	}

	n, err := Import(target, doc, PolicyReplace)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownFormat(err))
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, target.Len(), "zero side effects even under replace")
	_, ok := target.Get(keep.ID)
	assert.True(t, ok)

	n, err = Import(target, nil, PolicySkip)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownFormat(err))
	assert.Equal(t, 0, n)
}

func TestImportSkipsBadRecords(t *testing.T) {
	good := json.RawMessage(`{
		"id": "r-good",
		"name": "Good",
		"geometry": {"type":"circle","x":0,"y":0,"radius":5},
		"tags": ["biome:forest"],
		"metadata": {"created":"2024-01-01T00:00:00Z","modified":"2024-01-01T00:00:00Z"}
	}`)
	corrupt := json.RawMessage(`{"id": 12`)
	missingID := json.RawMessage(`{"name":"Anonymous"}`)

	doc := &Document{
		Format:   FormatTag,
		Metadata: DocumentMeta{Version: SchemaVersion},
		Regions:  []json.RawMessage{corrupt, good, missingID},
	}

	target := realm.NewStore("scene", tags.NewRegistry())
	n, err := Import(target, doc, PolicySkip)
	require.NoError(t, err, "bad records never abort the batch")
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, target.Len())

	r, ok := target.Get("r-good")
	require.True(t, ok)
	assert.Equal(t, "Good", r.Name)
	assert.Equal(t, []string{"biome:forest"}, r.Tags())
}

func TestImportDuplicateIDsWithinDocument(t *testing.T) {
	record := json.RawMessage(`{"id":"dup-1","name":"First","geometry":{"type":"circle","x":0,"y":0,"radius":1},"tags":[],"metadata":{"created":"2024-01-01T00:00:00Z","modified":"2024-01-01T00:00:00Z"}}`)
	again := json.RawMessage(`{"id":"dup-1","name":"Second","geometry":{"type":"circle","x":9,"y":9,"radius":1},"tags":[],"metadata":{"created":"2024-01-01T00:00:00Z","modified":"2024-01-01T00:00:00Z"}}`)

	doc := &Document{
		Format:   FormatTag,
		Metadata: DocumentMeta{Version: SchemaVersion},
		Regions:  []json.RawMessage{record, again},
	}

	target := realm.NewStore("scene", tags.NewRegistry())
	n, err := Import(target, doc, PolicyReplace)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "second occurrence is a bad record under replace")
	assert.Equal(t, 1, target.Len())

	target = realm.NewStore("scene", tags.NewRegistry())
	n, err = Import(target, doc, PolicyMerge)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "merge rekeys the in-document collision")
	assert.Equal(t, 2, target.Len())
}

func TestImportVersionSkewIsAdvisory(t *testing.T) {
	s := realm.NewStore("scene", tags.NewRegistry())
	_, err := s.Create("Solo", geometry.Circle(0, 0, 10), nil)
	require.NoError(t, err)

	doc, err := Export(s, "gm", "")
	require.NoError(t, err)

	for _, version := range []string{"99.0.0", "not-semver", ""} {
		doc.Metadata.Version = version
		target := realm.NewStore("fresh", tags.NewRegistry())
		n, err := Import(target, doc, PolicySkip)
		require.NoError(t, err, "version %q must not gate the import", version)
		assert.Equal(t, 1, n)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"skip", PolicySkip, false},
		{"merge", PolicyMerge, false},
		{"replace", PolicyReplace, false},
		{"", DefaultPolicy, false},
		{"overwrite", "", true},
		{"MERGE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
