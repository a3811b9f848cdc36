package realm

import "github.com/rayners/fvtt-realms-and-reaches/realm/geometry"

// QueryPoint returns every region containing the point, in insertion order.
// Each candidate is rejected by its bounding box before the exact
// containment test runs, so polygon math only happens for regions whose box
// covers the point. Note that rectangle bounds ignore rotation, which makes
// the prefilter authoritative: a point outside the unrotated box never
// reaches the exact test.
func (s *Store) QueryPoint(x, y float64) []*Region {
	out := []*Region{}
	for _, r := range s.All() {
		if !r.Geometry.Bounds().Contains(x, y) {
			continue
		}
		if r.Geometry.Contains(x, y) {
			out = append(out, r)
		}
	}
	return out
}

// QueryBounds returns every region whose bounding box intersects box.
// Touching edges count as intersecting.
func (s *Store) QueryBounds(box geometry.Box) []*Region {
	out := []*Region{}
	for _, r := range s.All() {
		if r.Geometry.Bounds().Intersects(box) {
			out = append(out, r)
		}
	}
	return out
}

// QueryTags returns every region carrying all of the required tags, as
// exact full-string matches. An empty requirement matches everything.
func (s *Store) QueryTags(required []string) []*Region {
	out := []*Region{}
	for _, r := range s.All() {
		if hasAllTags(r, required) {
			out = append(out, r)
		}
	}
	return out
}

// FindByTagKey returns every region carrying at least one tag with the
// given key, regardless of value.
func (s *Store) FindByTagKey(key string) []*Region {
	out := []*Region{}
	for _, r := range s.All() {
		if r.HasTagKey(key) {
			out = append(out, r)
		}
	}
	return out
}

// Query is a compound filter: the fields that are set must all pass, and
// Limit (when positive) truncates the filtered result while preserving
// insertion order.
type Query struct {
	Tags   []string
	Bounds *geometry.Box
	Limit  int
}

// Query runs a compound query.
func (s *Store) Query(q Query) []*Region {
	out := []*Region{}
	for _, r := range s.All() {
		if !hasAllTags(r, q.Tags) {
			continue
		}
		if q.Bounds != nil && !r.Geometry.Bounds().Intersects(*q.Bounds) {
			continue
		}
		out = append(out, r)
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func hasAllTags(r *Region, required []string) bool {
	for _, tag := range required {
		if !r.HasTag(tag) {
			return false
		}
	}
	return true
}
