// Package codec serializes a realm store to and from the versioned export
// document, the engine's only durable artifact. Import reconciles incoming
// region ids against the target store under a replace, merge, or skip
// policy.
package codec

import (
	"encoding/json"
	"time"
)

// FormatTag identifies the export document schema. Import rejects any other
// value before touching the store.
const FormatTag = "realms-and-reaches-v1"

// SchemaVersion is the advisory version stamped on exports. Unlike the
// format tag it does not gate imports; version skew only logs a warning.
const SchemaVersion = "1.0.0"

// DocumentMeta describes who produced a document and when.
type DocumentMeta struct {
	Author      string    `json:"author,omitempty"`
	Created     time.Time `json:"created"`
	Version     string    `json:"version"`
	Description string    `json:"description,omitempty"`
}

// Document is the export/import envelope. Region records stay raw JSON
// until import decodes them one by one, so a single corrupt record cannot
// poison the batch.
type Document struct {
	Format   string            `json:"format"`
	Metadata DocumentMeta      `json:"metadata"`
	Regions  []json.RawMessage `json:"regions"`
}
