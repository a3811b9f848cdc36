package realm

import (
	"time"

	"github.com/google/uuid"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
	"github.com/rayners/fvtt-realms-and-reaches/realm/geometry"
	"github.com/rayners/fvtt-realms-and-reaches/realm/tags"
)

// Store owns the regions of one logical scope, such as one scene or one
// document. Hosts construct stores explicitly and thread them through
// calls; there is no process-wide store map.
//
// A Store is not safe for concurrent use. All operations are synchronous,
// in-memory, and run to completion; a host sharing one store across
// goroutines must add its own guard around every call.
type Store struct {
	scope     string
	registry  *tags.Registry
	regions   map[string]*Region
	order     []string
	observers []Observer
	author    string
}

// NewStore creates an empty store for scope. A nil registry falls back to
// the built-in namespace table.
func NewStore(scope string, reg *tags.Registry) *Store {
	if reg == nil {
		reg = tags.NewRegistry()
	}
	return &Store{
		scope:    scope,
		registry: reg,
		regions:  make(map[string]*Region),
	}
}

// Scope returns the identifier this store was constructed for.
func (s *Store) Scope() string { return s.scope }

// Registry returns the tag registry consulted by mutations.
func (s *Store) Registry() *tags.Registry { return s.registry }

// Len returns the number of stored regions.
func (s *Store) Len() int { return len(s.regions) }

// SetAuthor sets the author recorded on regions created from now on.
func (s *Store) SetAuthor(author string) { s.author = author }

// Create validates every tag, builds a region under a fresh id, and inserts
// it. One invalid tag fails the whole call with nothing inserted. An empty
// name gets a placeholder derived from the id.
func (s *Store) Create(name string, g geometry.Geometry, tagList []string) (*Region, error) {
	for _, tag := range tagList {
		if err := s.registry.Validate(tag); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	r := &Region{
		ID:       s.newID(),
		Name:     name,
		Geometry: g,
		Metadata: Metadata{Created: now, Modified: now, Author: s.author},
	}
	if r.Name == "" {
		r.Name = "Realm " + r.ID[:8]
	}
	for _, tag := range tagList {
		r.AddTag(s.registry, tag)
	}

	s.put(r)
	s.notify(Change{Action: ActionCreate, Region: r})
	return r, nil
}

// Get returns the stored region for id.
func (s *Store) Get(id string) (*Region, bool) {
	r, ok := s.regions[id]
	return r, ok
}

// Patch is a partial update applied by Update. Nil fields are left
// untouched; RemoveTags apply before AddTags.
type Patch struct {
	Name       *string
	Geometry   *geometry.Geometry
	Author     *string
	AddTags    []string
	RemoveTags []string
}

// Update applies p to the region for id. Every AddTags entry is validated
// up front, so a failing patch leaves the region byte-identical. Modified
// is touched even when the patch changes nothing. Removing a tag that is
// not present is a no-op.
func (s *Store) Update(id string, p Patch) error {
	r, ok := s.regions[id]
	if !ok {
		return errors.NewNotFoundError("region %q not found in scope %q", id, s.scope)
	}

	for _, tag := range p.AddTags {
		if err := s.registry.Validate(tag); err != nil {
			return err
		}
	}

	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Geometry != nil {
		r.Geometry = *p.Geometry
	}
	if p.Author != nil {
		r.Metadata.Author = *p.Author
	}
	for _, tag := range p.RemoveTags {
		r.RemoveTag(tag)
	}
	for _, tag := range p.AddTags {
		r.AddTag(s.registry, tag)
	}

	r.Metadata.Modified = time.Now().UTC()
	s.notify(Change{Action: ActionUpdate, Region: r})
	return nil
}

// Delete removes the region for id, reporting whether it existed. A missing
// id is not an error.
func (s *Store) Delete(id string) bool {
	r, ok := s.regions[id]
	if !ok {
		return false
	}
	delete(s.regions, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.notify(Change{Action: ActionDelete, Region: r})
	return true
}

// Insert adds r verbatim: id, name, tags, and metadata are preserved
// exactly and tags are not revalidated, since imported documents may carry
// tags that predate current rules (DetectConflicts surfaces the fallout).
// Empty and duplicate ids are rejected.
func (s *Store) Insert(r *Region) error {
	if r == nil || r.ID == "" {
		return errors.New("region must carry an id")
	}
	if _, exists := s.regions[r.ID]; exists {
		return errors.Newf("region %q already exists in scope %q", r.ID, s.scope)
	}
	s.put(r)
	s.notify(Change{Action: ActionCreate, Region: r})
	return nil
}

// All returns the regions in insertion order. The slice is fresh; the
// regions are the stored ones.
func (s *Store) All() []*Region {
	out := make([]*Region, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.regions[id])
	}
	return out
}

// Clear removes every region, notifying one delete per region in insertion
// order.
func (s *Store) Clear() {
	removed := s.All()
	s.regions = make(map[string]*Region)
	s.order = nil
	for _, r := range removed {
		s.notify(Change{Action: ActionDelete, Region: r})
	}
}

func (s *Store) put(r *Region) {
	s.regions[r.ID] = r
	s.order = append(s.order, r.ID)
}

func (s *Store) newID() string {
	for {
		id := uuid.New().String()
		if _, exists := s.regions[id]; !exists {
			return id
		}
	}
}
