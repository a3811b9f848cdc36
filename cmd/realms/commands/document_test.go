package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
	"github.com/rayners/fvtt-realms-and-reaches/realm/codec"
	"github.com/rayners/fvtt-realms-and-reaches/realm/geometry"
	"github.com/rayners/fvtt-realms-and-reaches/realm/tags"
)

func seedStore(t *testing.T) *realm.Store {
	t.Helper()
	store := realm.NewStore("test", tags.NewRegistry())
	_, err := store.Create("Darkwood", geometry.Circle(1200, 900, 300), []string{"biome:forest", "terrain:dense"})
	require.NoError(t, err)
	_, err = store.Create("Old Keep", geometry.Rectangle(500, 500, 200, 120, 0), []string{"terrain:rocky"})
	require.NoError(t, err)
	return store
}

func TestSaveAndLoadStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.json")
	store := seedStore(t)

	require.NoError(t, saveStore(store, nil, path))

	loaded, doc, err := loadStore(path)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, codec.FormatTag, doc.Format)
	assert.Equal(t, store.Len(), loaded.Len())

	// Ids and content survive the round trip
	for _, original := range store.All() {
		got, ok := loaded.Get(original.ID)
		require.True(t, ok, "region %s missing after reload", original.ID)
		assert.Equal(t, original.Name, got.Name)
		assert.Equal(t, original.Tags(), got.Tags())
		assert.Equal(t, original.Geometry, got.Geometry)
	}
}

func TestSaveStoreKeepsDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.json")
	store := seedStore(t)

	prev := &codec.Document{
		Format: codec.FormatTag,
		Metadata: codec.DocumentMeta{
			Author:      "gm@table",
			Version:     codec.SchemaVersion,
			Description: "Darkwood region pack",
		},
	}
	require.NoError(t, saveStore(store, prev, path))

	_, doc, err := loadStore(path)
	require.NoError(t, err)
	assert.Equal(t, "Darkwood region pack", doc.Metadata.Description)
}

func TestLoadOrCreateStoreMissingFile(t *testing.T) {
	store, doc, err := loadOrCreateStore(filepath.Join(t.TempDir(), "new.json"))
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.Equal(t, 0, store.Len())
}

func TestLoadDocumentErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadDocument(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := loadDocument(path)
		assert.Error(t, err)
	})
}

func TestResolveRegion(t *testing.T) {
	store := seedStore(t)
	all := store.All()
	darkwood := all[0]

	t.Run("exact id", func(t *testing.T) {
		r, err := resolveRegion(store, darkwood.ID)
		require.NoError(t, err)
		assert.Same(t, darkwood, r)
	})

	t.Run("unique prefix", func(t *testing.T) {
		r, err := resolveRegion(store, darkwood.ID[:8])
		require.NoError(t, err)
		assert.Same(t, darkwood, r)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := resolveRegion(store, "zzzz")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("ambiguous", func(t *testing.T) {
		// Empty prefix matches every region
		_, err := resolveRegion(store, "")
		assert.Error(t, err)
		assert.False(t, errors.IsNotFound(err))
	})
}
