package tags

import (
	"fmt"
	"strconv"
	"strings"
)

// Conflict is a soft warning about tags that contradict each other on one
// region. Conflicts are advisory and never block validation.
type Conflict struct {
	Key     string   `json:"key"`
	Tags    []string `json:"tags"`
	Message string   `json:"message"`
}

// DetectConflicts inspects a region's tag list for contradictory authored
// data. Two independent checks: a single-valued namespace carrying more than
// one tag (possible when tags arrive through import rather than AddTag), and
// a travel_speed above 1.0 paired with dense or rocky terrain.
func (r *Registry) DetectConflicts(tagList []string) []Conflict {
	conflicts := []Conflict{}

	byKey := make(map[string][]string)
	for _, tag := range tagList {
		if key := Key(tag); key != "" {
			byKey[key] = append(byKey[key], tag)
		}
	}

	for _, ns := range r.Namespaces() {
		if ns.Multi {
			continue
		}
		if dupes := byKey[ns.Key]; len(dupes) > 1 {
			conflicts = append(conflicts, Conflict{
				Key:     ns.Key,
				Tags:    dupes,
				Message: fmt.Sprintf("%s allows a single value but has %d: %s", ns.Key, len(dupes), strings.Join(dupes, ", ")),
			})
		}
	}

	return append(conflicts, speedTerrainConflicts(byKey)...)
}

// speedTerrainConflicts flags travel speeds above 1.0 on terrain that should
// slow travel down. The 1.0 threshold and the dense/rocky pairing are fixed
// default policy.
func speedTerrainConflicts(byKey map[string][]string) []Conflict {
	var fast string
	var speed float64
	for _, tag := range byKey["travel_speed"] {
		f, err := strconv.ParseFloat(Value(tag), 64)
		if err == nil && f > 1.0 {
			fast, speed = tag, f
			break
		}
	}
	if fast == "" {
		return nil
	}

	var out []Conflict
	for _, tag := range byKey["terrain"] {
		v := Value(tag)
		if v != "dense" && v != "rocky" {
			continue
		}
		out = append(out, Conflict{
			Key:     "travel_speed",
			Tags:    []string{fast, tag},
			Message: fmt.Sprintf("travel speed %g is unlikely across %s terrain", speed, v),
		})
	}
	return out
}
