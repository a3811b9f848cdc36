package tags

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rayners/fvtt-realms-and-reaches/errors"
)

var (
	keyPattern     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	valuePattern   = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_./-]+$`)
)

// ValidationError reports why a tag was rejected. It unwraps to
// errors.ErrInvalidTag so callers can classify without string matching.
type ValidationError struct {
	Tag    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid tag %q: %s", e.Tag, e.Reason)
}

func (e *ValidationError) Unwrap() error { return errors.ErrInvalidTag }

// Split divides a tag into key and value at the first colon. ok is false
// when the tag has no colon at all.
func Split(tag string) (key, value string, ok bool) {
	return strings.Cut(tag, ":")
}

// Key returns the namespace portion of tag, or "" when tag has no colon.
func Key(tag string) string {
	key, _, ok := Split(tag)
	if !ok {
		return ""
	}
	return key
}

// Value returns the value portion of tag, or "" when tag has no colon. For
// module tags the value spans every segment after the key.
func Value(tag string) string {
	_, value, _ := Split(tag)
	return value
}

// Valid reports whether tag passes both the grammar and its namespace rule.
func (r *Registry) Valid(tag string) bool { return r.Validate(tag) == nil }

// Validate checks the tag grammar first, then the namespace's semantic rule
// when one is registered. Unknown keys are accepted when well formed: the
// vocabulary is open, not closed.
func (r *Registry) Validate(tag string) error {
	key, value, ok := Split(tag)
	if !ok {
		return &ValidationError{Tag: tag, Reason: "missing ':' separator"}
	}
	if key == "" {
		return &ValidationError{Tag: tag, Reason: "empty key"}
	}
	if value == "" {
		return &ValidationError{Tag: tag, Reason: "empty value"}
	}
	if !keyPattern.MatchString(key) {
		return &ValidationError{Tag: tag, Reason: "key may only contain letters, digits, '_' and '-'"}
	}

	ns, known := r.Lookup(key)
	if known && ns.Rule.Kind == RuleModule {
		return validateModuleValue(tag, value)
	}

	if strings.Contains(value, ":") {
		return &ValidationError{Tag: tag, Reason: "extra ':' in value (only module tags carry segments)"}
	}
	if !valuePattern.MatchString(value) {
		return &ValidationError{Tag: tag, Reason: "value may only contain letters, digits, '_', '.' and '-'"}
	}
	if !known {
		return nil
	}

	switch ns.Rule.Kind {
	case RuleRange:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &ValidationError{Tag: tag, Reason: fmt.Sprintf("%s requires a numeric value", key)}
		}
		if math.IsNaN(f) || f < ns.Rule.Min || f > ns.Rule.Max {
			return &ValidationError{Tag: tag, Reason: fmt.Sprintf("%s must be between %g and %g", key, ns.Rule.Min, ns.Rule.Max)}
		}
	case RuleNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return &ValidationError{Tag: tag, Reason: fmt.Sprintf("%s requires a numeric value", key)}
		}
	}
	return nil
}

// validateModuleValue checks the segmented module grammar: at least a name
// and a property after the key, every segment non-empty.
func validateModuleValue(tag, value string) error {
	segments := strings.Split(value, ":")
	if len(segments) < 2 {
		return &ValidationError{Tag: tag, Reason: "module tags need at least module:<name>:<property>"}
	}
	for _, seg := range segments {
		if seg == "" {
			return &ValidationError{Tag: tag, Reason: "empty segment in module tag"}
		}
		if !segmentPattern.MatchString(seg) {
			return &ValidationError{Tag: tag, Reason: "module segments may only contain letters, digits, '_', '.', '-' and '/'"}
		}
	}
	return nil
}
