package commands

import (
	"os"
	"strings"

	"github.com/rayners/fvtt-realms-and-reaches/config"
	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
	"github.com/rayners/fvtt-realms-and-reaches/realm/codec"
)

// loadDocument reads and parses the realm document at path. Region records
// stay raw; use loadStore when the regions themselves are needed.
func loadDocument(path string) (*codec.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", path)
	}
	doc, err := codec.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse document %s", path)
	}
	return doc, nil
}

// loadStore loads the document at path into a fresh store scoped to the
// path. The store's registry carries the configured namespace packs, and
// regions import under the replace policy so ids survive the round trip.
func loadStore(path string) (*realm.Store, *codec.Document, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, nil, err
	}

	store, err := newStore(path)
	if err != nil {
		return nil, nil, err
	}
	if _, err := codec.Import(store, doc, codec.PolicyReplace); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load document %s", path)
	}
	return store, doc, nil
}

// loadOrCreateStore is loadStore, except a missing file yields an empty
// store and a nil document.
func loadOrCreateStore(path string) (*realm.Store, *codec.Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		store, err := newStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
	return loadStore(path)
}

// newStore builds an empty store scoped to path, with the configured
// registry and author.
func newStore(path string) (*realm.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	registry, err := cfg.NewRegistry()
	if err != nil {
		return nil, err
	}

	store := realm.NewStore(path, registry)
	store.SetAuthor(cfg.Author)
	return store, nil
}

// saveStore exports store over the document at path. The document author
// comes from the configuration, falling back to the previous document's
// author; the description carries over from prev unless overridden later by
// the export command.
func saveStore(store *realm.Store, prev *codec.Document, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	author := cfg.Author
	description := ""
	if prev != nil {
		if author == "" {
			author = prev.Metadata.Author
		}
		description = prev.Metadata.Description
	}

	doc, err := codec.Export(store, author, description)
	if err != nil {
		return errors.Wrapf(err, "failed to export document %s", path)
	}
	return writeDocument(doc, path)
}

// writeDocument marshals doc and writes it to path.
func writeDocument(doc *codec.Document, path string) error {
	data, err := codec.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write document %s", path)
	}
	return nil
}

// resolveRegion finds a region by full id or unique id prefix.
func resolveRegion(store *realm.Store, idOrPrefix string) (*realm.Region, error) {
	if r, ok := store.Get(idOrPrefix); ok {
		return r, nil
	}

	var match *realm.Region
	for _, r := range store.All() {
		if !strings.HasPrefix(r.ID, idOrPrefix) {
			continue
		}
		if match != nil {
			return nil, errors.Newf("region id %q is ambiguous (matches %s and %s)",
				idOrPrefix, match.ID, r.ID)
		}
		match = r
	}
	if match == nil {
		return nil, errors.NewNotFoundError("region %q not found in %s", idOrPrefix, store.Scope())
	}
	return match, nil
}
