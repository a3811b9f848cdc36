package codec

import (
	"encoding/json"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/logger"
	"github.com/rayners/fvtt-realms-and-reaches/realm"
)

// Policy selects how import reconciles incoming region ids against the
// target store.
type Policy string

const (
	// PolicySkip silently omits incoming regions whose id already exists.
	PolicySkip Policy = "skip"
	// PolicyMerge inserts colliding regions under a brand-new id, never
	// overwriting the existing region.
	PolicyMerge Policy = "merge"
	// PolicyReplace clears the store first, then inserts everything
	// verbatim with ids preserved.
	PolicyReplace Policy = "replace"
)

// DefaultPolicy applies when a host does not choose one.
const DefaultPolicy = PolicySkip

// ParsePolicy maps a host-supplied string onto a Policy. The empty string
// yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicySkip, PolicyMerge, PolicyReplace:
		return Policy(s), nil
	case "":
		return DefaultPolicy, nil
	}
	return "", errors.Newf("unknown import policy %q (want skip, merge, or replace)", s)
}

// Export snapshots every region of s into a fresh document. Records are
// serialized with id, name, geometry, tags, and metadata intact, so a round
// trip reproduces each region exactly.
func Export(s *realm.Store, author, description string) (*Document, error) {
	regions := make([]json.RawMessage, 0, s.Len())
	for _, r := range s.All() {
		data, err := json.Marshal(r)
		if err != nil {
			return nil, errors.Wrapf(err, "serializing region %s", r.ID)
		}
		regions = append(regions, data)
	}
	return &Document{
		Format: FormatTag,
		Metadata: DocumentMeta{
			Author:      author,
			Created:     time.Now().UTC(),
			Version:     SchemaVersion,
			Description: description,
		},
		Regions: regions,
	}, nil
}

// Marshal renders d as indented JSON.
func Marshal(d *Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling document")
	}
	return data, nil
}

// Unmarshal parses a document envelope, leaving region records raw.
func Unmarshal(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "parsing document")
	}
	return &d, nil
}

// Import applies d to s under the given policy and returns the number of
// regions actually inserted. An unrecognized format tag aborts before the
// store is touched. Individual bad records are logged, skipped, and
// excluded from the count; they never abort the batch.
func Import(s *realm.Store, d *Document, policy Policy) (int, error) {
	if d == nil {
		return 0, errors.Wrap(errors.ErrUnknownFormat, "nil document")
	}
	if d.Format != FormatTag {
		return 0, errors.Wrapf(errors.ErrUnknownFormat, "format %q (want %q)", d.Format, FormatTag)
	}
	if policy == "" {
		policy = DefaultPolicy
	}

	log := logger.ChildLogger(
		logger.ComponentLogger("realm.codec"),
		logger.FieldPolicy, string(policy),
	)
	checkVersion(log, d.Metadata.Version)

	if policy == PolicyReplace {
		s.Clear()
	}

	imported, skipped := 0, 0
	for i, raw := range d.Regions {
		r, err := decodeRecord(raw)
		if err != nil {
			skipped++
			log.Warnw("skipping malformed region record",
				"record", i,
				logger.FieldError, err,
			)
			continue
		}

		if _, exists := s.Get(r.ID); exists {
			switch policy {
			case PolicySkip:
				skipped++
				log.Debugw("skipping existing region",
					logger.FieldRegionID, r.ID,
				)
				continue
			case PolicyMerge:
				r.ID = freshID(s)
			}
		}

		if err := s.Insert(r); err != nil {
			skipped++
			log.Warnw("skipping region record",
				"record", i,
				logger.FieldRegionID, r.ID,
				logger.FieldError, errors.NewBadRecordError("inserting region: %v", err),
			)
			continue
		}
		imported++
	}

	log.Infow("import complete",
		logger.FieldScope, s.Scope(),
		logger.FieldCount, imported,
		logger.FieldTotalCount, len(d.Regions),
		logger.FieldSkipped, skipped,
	)
	return imported, nil
}

func decodeRecord(raw json.RawMessage) (*realm.Region, error) {
	var r realm.Region
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, errors.NewBadRecordError("parsing region: %v", err)
	}
	if r.ID == "" {
		return nil, errors.NewBadRecordError("region record missing id")
	}
	return &r, nil
}

func freshID(s *realm.Store) string {
	for {
		id := uuid.New().String()
		if _, exists := s.Get(id); !exists {
			return id
		}
	}
}

// checkVersion logs advisory warnings about version skew. The format tag,
// not the version, gates imports.
func checkVersion(log *zap.SugaredLogger, version string) {
	v, err := semver.NewVersion(version)
	if err != nil {
		log.Warnw("document version is not valid semver",
			logger.FieldVersion, version,
		)
		return
	}
	if v.Major() > semver.MustParse(SchemaVersion).Major() {
		log.Warnw("document was written by a newer schema",
			logger.FieldVersion, version,
		)
	}
}
