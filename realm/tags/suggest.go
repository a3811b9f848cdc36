package tags

import (
	"sort"
	"strings"
)

// MaxSuggestions caps the ranked list returned by Suggest.
const MaxSuggestions = 10

// Suggestion is one ranked autocomplete candidate in full key:value form.
type Suggestion struct {
	Tag       string  `json:"tag"`
	Label     string  `json:"label"`
	Namespace string  `json:"namespace"`
	Score     float64 `json:"score"`
}

// Suggest returns ranked completions for a partially typed tag, capped at
// MaxSuggestions and recomputed per call.
//
// Input with a colon selects a namespace: text before the colon is the key,
// text after it filters that namespace's values. Input without a colon is
// matched against namespace keys (a key match expands to all of that
// namespace's values) and against every known value; either way suggestions
// come back fully qualified. Single-valued namespaces already represented in
// existing are not suggested again.
func (r *Registry) Suggest(partial string, existing []string) []Suggestion {
	var out []Suggestion
	if key, fragment, ok := strings.Cut(partial, ":"); ok {
		out = r.suggestValues(key, fragment)
	} else {
		out = r.suggestOpen(partial, existing)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func (r *Registry) suggestValues(key, fragment string) []Suggestion {
	ns, ok := r.Lookup(key)
	if !ok {
		return nil
	}
	lower := strings.ToLower(fragment)

	var out []Suggestion
	for _, v := range ns.Values {
		if !strings.Contains(strings.ToLower(v), lower) {
			continue
		}
		out = append(out, Suggestion{
			Tag:       ns.Key + ":" + v,
			Label:     ns.Label,
			Namespace: ns.Key,
			Score:     score(v, fragment),
		})
	}
	return out
}

func (r *Registry) suggestOpen(fragment string, existing []string) []Suggestion {
	lower := strings.ToLower(fragment)

	taken := make(map[string]bool, len(existing))
	for _, tag := range existing {
		if key := Key(tag); key != "" && !r.IsMulti(key) {
			taken[key] = true
		}
	}

	index := make(map[string]int)
	var out []Suggestion
	add := func(ns Namespace, value string, sc float64) {
		if sc <= 0 {
			return
		}
		tag := ns.Key + ":" + value
		if i, seen := index[tag]; seen {
			if sc > out[i].Score {
				out[i].Score = sc
			}
			return
		}
		index[tag] = len(out)
		out = append(out, Suggestion{Tag: tag, Label: ns.Label, Namespace: ns.Key, Score: sc})
	}

	for _, ns := range r.Namespaces() {
		if taken[ns.Key] {
			continue
		}
		if strings.Contains(strings.ToLower(ns.Key), lower) {
			keyScore := score(ns.Key, fragment)
			for _, v := range ns.Values {
				add(ns, v, keyScore)
			}
		}
		for _, v := range ns.Values {
			if strings.Contains(strings.ToLower(v), lower) {
				add(ns, v, score(v, fragment))
			}
		}
	}
	return out
}

// score ranks candidate against the typed fragment, case-insensitively.
// Exact match outranks prefix, prefix outranks substring; anything else
// decays with edit distance and bottoms out at zero.
func score(candidate, fragment string) float64 {
	c := strings.ToLower(candidate)
	f := strings.ToLower(fragment)

	switch {
	case c == f:
		return 100
	case strings.HasPrefix(c, f):
		return 80
	case strings.Contains(c, f):
		return 60
	}

	s := 40 - 40*float64(levenshtein(c, f))/float64(max(len(c), len(f)))
	if s < 0 {
		return 0
	}
	return s
}

// levenshtein is the standard unit-cost edit distance over insert, delete,
// and substitute.
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}
	if s1 == s2 {
		return 0
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}
	return matrix[len(s1)][len(s2)]
}
