// Package aggregate groups items for browse views. Two strategies exist
// because the catalog has two grouping modes: the explicit category field,
// and a canonical subject derived from an item's tags.
package aggregate

import (
	"sort"
	"strings"

	"packrat/internal/models"
)

// Uncategorized is the grouping key for items with no usable subject.
const Uncategorized = "uncategorized"

// DefaultSubjectPriority is the order in which subjects win when an item
// carries several.
var DefaultSubjectPriority = []string{"fan art", "art", "architecture", "places"}

// Strategy selects the grouping key for an item.
type Strategy interface {
	Key(item models.Item) string
}

// Group is one bucket of the browse view.
type Group struct {
	Name  string
	Items []models.Item
}

// ByCategory groups on the item's category field.
type ByCategory struct{}

// Key returns the item's category.
func (ByCategory) Key(item models.Item) string {
	return item.Category
}

// BySubject derives a single canonical subject from the item's tags:
// subjects are lowercased and trimmed, `artist:`-prefixed entries are
// skipped, the first priority-list hit wins, otherwise the first remaining
// subject, otherwise Uncategorized.
type BySubject struct {
	Priority []string
}

// Key returns the canonical subject for the item.
func (s BySubject) Key(item models.Item) string {
	priority := s.Priority
	if priority == nil {
		priority = DefaultSubjectPriority
	}

	var normalized []string
	for _, subject := range item.Tags {
		subject = strings.ToLower(strings.TrimSpace(subject))
		if subject == "" || strings.HasPrefix(subject, "artist:") {
			continue
		}
		normalized = append(normalized, subject)
	}

	for _, p := range priority {
		for _, subject := range normalized {
			if subject == p {
				return p
			}
		}
	}
	if len(normalized) > 0 {
		return normalized[0]
	}
	return Uncategorized
}

// Run partitions items by the strategy's key. Groups come back sorted
// lexicographically by name; items keep their input order within a group.
func Run(items []models.Item, strategy Strategy) []Group {
	buckets := make(map[string][]models.Item)
	for _, item := range items {
		key := strategy.Key(item)
		buckets[key] = append(buckets[key], item)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{Name: name, Items: buckets[name]})
	}
	return groups
}
