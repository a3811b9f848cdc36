package realm

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/rayners/fvtt-realms-and-reaches/realm/geometry"
	"github.com/rayners/fvtt-realms-and-reaches/realm/tags"
)

// Metadata records a region's lifecycle facts. Created never changes after
// construction; Modified is touched by every mutation. Timestamps are UTC.
type Metadata struct {
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Author   string    `json:"author,omitempty"`
}

// Region is one named, tagged area of the plane. Regions are owned by their
// Store: queries hand out the stored pointer as a read view, and mutations
// go through Store.Update so the modified timestamp and change notifications
// stay consistent.
type Region struct {
	ID       string
	Name     string
	Geometry geometry.Geometry
	Metadata Metadata

	tagList []string // unique, insertion order
}

// Tags returns the region's tags sorted lexicographically. The slice is a
// copy; mutating it does not touch the region.
func (r *Region) Tags() []string {
	out := make([]string, len(r.tagList))
	copy(out, r.tagList)
	sort.Strings(out)
	return out
}

// HasTag reports whether the exact tag string is present.
func (r *Region) HasTag(tag string) bool {
	for _, t := range r.tagList {
		if t == tag {
			return true
		}
	}
	return false
}

// HasTagKey reports whether any tag carries the given key.
func (r *Region) HasTagKey(key string) bool {
	for _, t := range r.tagList {
		if tags.Key(t) == key {
			return true
		}
	}
	return false
}

// TagValue returns the value of the first tag carrying key.
func (r *Region) TagValue(key string) (string, bool) {
	for _, t := range r.tagList {
		if tags.Key(t) == key {
			return tags.Value(t), true
		}
	}
	return "", false
}

// AddTag inserts tag, enforcing namespace cardinality: a key that is
// single-valued in reg replaces any existing tag with the same key, as one
// step. Exact duplicates are no-ops. Returns true when the tag set changed.
// Validation is the caller's job; the Store validates before it mutates.
func (r *Region) AddTag(reg *tags.Registry, tag string) bool {
	if r.HasTag(tag) {
		return false
	}
	if key := tags.Key(tag); key != "" && !reg.IsMulti(key) {
		r.removeTagKey(key)
	}
	r.tagList = append(r.tagList, tag)
	return true
}

// RemoveTag deletes the exact tag string. A missing tag is a no-op
// returning false.
func (r *Region) RemoveTag(tag string) bool {
	for i, t := range r.tagList {
		if t == tag {
			r.tagList = append(r.tagList[:i], r.tagList[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Region) removeTagKey(key string) {
	kept := r.tagList[:0]
	for _, t := range r.tagList {
		if tags.Key(t) != key {
			kept = append(kept, t)
		}
	}
	r.tagList = kept
}

// Clone returns a deep copy that shares nothing with the original.
func (r *Region) Clone() *Region {
	c := *r
	if r.Geometry.Points != nil {
		c.Geometry.Points = append([]float64(nil), r.Geometry.Points...)
	}
	c.tagList = append([]string(nil), r.tagList...)
	return &c
}

type regionJSON struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Geometry geometry.Geometry `json:"geometry"`
	Tags     []string          `json:"tags"`
	Metadata Metadata          `json:"metadata"`
}

// MarshalJSON serializes the region with tags in sorted read order.
func (r *Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(regionJSON{
		ID:       r.ID,
		Name:     r.Name,
		Geometry: r.Geometry,
		Tags:     r.Tags(),
		Metadata: r.Metadata,
	})
}

// UnmarshalJSON restores a region; the serialized tag order becomes the
// insertion order.
func (r *Region) UnmarshalJSON(data []byte) error {
	var aux regionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ID = aux.ID
	r.Name = aux.Name
	r.Geometry = aux.Geometry
	r.Metadata = aux.Metadata
	r.tagList = aux.Tags
	return nil
}
