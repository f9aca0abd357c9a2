package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"packrat/internal/models"
)

// tagPattern accepts letters, digits, hyphens and spaces. Anything else
// disqualifies the whole token.
var (
	tagPattern = regexp.MustCompile(`^[a-zA-Z0-9\- ]+$`)
	spaceRun   = regexp.MustCompile(`\s+`)
)

// ParseTags splits raw comma-separated tag text into normalized tags:
// trimmed, internal whitespace collapsed, lowercased, pattern-violating
// tokens dropped, duplicates and empties removed. Order of first
// occurrence is preserved.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	return NormalizeTags(parts)
}

// NormalizeTags applies the same normalization to an already-split list.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range tags {
		t = spaceRun.ReplaceAllString(strings.TrimSpace(t), " ")
		if t == "" || !tagPattern.MatchString(t) {
			continue
		}
		t = strings.ToLower(t)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ParseQuantity coerces raw user input to a positive integer count.
// Non-numeric and non-positive input yield the default quantity; fractional
// values round down.
func ParseQuantity(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return models.DefaultQuantity
	}
	return ClampQuantity(int(math.Floor(f)))
}

// ClampQuantity forces a quantity to be at least 1.
func ClampQuantity(q int) int {
	if q < 1 {
		return models.DefaultQuantity
	}
	return q
}
