// Package classify assigns storage categories to items from a keyword table.
package classify

import "strings"

// Classifier maps (name, tags) to a category using substring keyword
// matching. It is deterministic: the same inputs always produce the same
// category. The zero value is unusable; construct with New.
type Classifier struct {
	cfg Config
}

// New returns a Classifier over the given configuration.
func New(cfg Config) *Classifier {
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = DefaultCategory
	}
	return &Classifier{cfg: cfg}
}

// Config returns the configuration the classifier was built with.
func (c *Classifier) Config() Config {
	return c.cfg
}

// Classify scores every category by how many of its keywords occur as
// substrings of the lowercased name and tags, scanning categories in table
// order. The strictly highest score wins; ties keep the earlier category.
// A zero best score falls back to the default category.
func (c *Classifier) Classify(name string, tags []string) string {
	haystack := strings.ToLower(name) + " " + strings.ToLower(strings.Join(tags, " "))

	best := c.cfg.DefaultCategory
	bestScore := 0
	for _, cat := range c.cfg.Categories {
		score := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(haystack, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = cat.Name
		}
	}
	return best
}

// ClassifyWithConfidence returns the category plus a confidence signal for
// the wizard: high when a keyword matched, low when the result is the
// default fallback.
func (c *Classifier) ClassifyWithConfidence(name string, tags []string) (string, float64) {
	category := c.Classify(name, tags)
	if category == c.cfg.DefaultCategory {
		return category, c.cfg.FallbackConfidence
	}
	return category, c.cfg.MatchConfidence
}

// Known reports whether category is present in the keyword table or is the
// default category.
func (c *Classifier) Known(category string) bool {
	if category == c.cfg.DefaultCategory {
		return true
	}
	for _, cat := range c.cfg.Categories {
		if cat.Name == category {
			return true
		}
	}
	return false
}

// Names returns the category names in table order, default last.
func (c *Classifier) Names() []string {
	names := make([]string, 0, len(c.cfg.Categories)+1)
	for _, cat := range c.cfg.Categories {
		names = append(names, cat.Name)
	}
	return append(names, c.cfg.DefaultCategory)
}
