package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCategory is returned when no keyword table entry matches.
const DefaultCategory = "Miscellaneous"

// Default confidence constants. A non-default prediction is treated as a
// strong signal; a default fallback means "ask the user to confirm".
const (
	DefaultMatchConfidence    = 0.92
	DefaultFallbackConfidence = 0.42
	ConfidenceThreshold       = 0.5
)

// Category pairs a category name with its lowercase keywords. Table order
// matters: ties between categories resolve to the earlier entry.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Config is the classifier configuration: the keyword table plus the
// tunable constants around it. Loaded once at startup and never mutated.
type Config struct {
	Categories         []Category `yaml:"categories"`
	DefaultCategory    string     `yaml:"default_category"`
	MatchConfidence    float64    `yaml:"match_confidence"`
	FallbackConfidence float64    `yaml:"fallback_confidence"`
	SubjectPriority    []string   `yaml:"subject_priority"`
}

// DefaultConfig returns the built-in keyword table covering typical
// household storage locations.
func DefaultConfig() Config {
	return Config{
		Categories: []Category{
			{Name: "Bathroom", Keywords: []string{"toothbrush", "tooth paste", "toothpaste", "soap", "shampoo", "conditioner", "towel", "razor", "toilet", "bath", "shower", "hygiene", "deodorant"}},
			{Name: "Kitchen", Keywords: []string{"pan", "pot", "spatula", "knife", "fork", "spoon", "plate", "bowl", "mug", "glass", "cup", "fridge", "refrigerator", "oven", "stove", "microwave", "dish", "food"}},
			{Name: "Bedroom", Keywords: []string{"pillow", "blanket", "sheet", "duvet", "bed", "lamp", "nightstand", "alarm", "dresser", "hanger", "clothes"}},
			{Name: "LivingRoom", Keywords: []string{"sofa", "couch", "tv", "television", "remote", "coffee table", "bookshelf", "speaker", "console", "game", "plant"}},
			{Name: "Office", Keywords: []string{"laptop", "computer", "keyboard", "mouse", "monitor", "notebook", "pen", "pencil", "paper", "printer", "router", "desk", "chair"}},
			{Name: "Garage", Keywords: []string{"hammer", "screwdriver", "wrench", "drill", "nail", "bolt", "bike", "bicycle", "car", "tool", "ladder"}},
			{Name: "Closet", Keywords: []string{"shirt", "pants", "jeans", "dress", "coat", "jacket", "shoes", "socks", "belt", "hat", "scarf", "gloves"}},
			{Name: "Laundry", Keywords: []string{"detergent", "washer", "dryer", "basket", "iron", "ironing board", "stain"}},
			{Name: "Cleaning", Keywords: []string{"broom", "mop", "vacuum", "cleaner", "bleach", "sponge", "brush", "duster", "trash", "bin", "bag"}},
			{Name: "Outdoors", Keywords: []string{"tent", "sleeping bag", "backpack", "camp", "hike", "grill", "bbq", "garden", "hose", "shovel", "rake"}},
			{Name: "Electronics", Keywords: []string{"phone", "tablet", "charger", "cable", "battery", "camera", "headphones", "earbuds", "speaker", "console", "controller", "adapter"}},
			{Name: "BathroomCabinet", Keywords: []string{"medicine", "bandage", "band aid", "ointment", "aspirin", "ibuprofen", "vitamin", "first aid"}},
		},
		DefaultCategory:    DefaultCategory,
		MatchConfidence:    DefaultMatchConfidence,
		FallbackConfidence: DefaultFallbackConfidence,
		SubjectPriority:    []string{"fan art", "art", "architecture", "places"},
	}
}

// LoadConfig reads a classifier config from a YAML file. Fields omitted in
// the file keep their defaults, so a file can override just the table or
// just the constants.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading classifier config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing classifier config: %w", err)
	}
	if len(file.Categories) > 0 {
		cfg.Categories = file.Categories
	}
	if file.DefaultCategory != "" {
		cfg.DefaultCategory = file.DefaultCategory
	}
	if file.MatchConfidence > 0 {
		cfg.MatchConfidence = file.MatchConfidence
	}
	if file.FallbackConfidence > 0 {
		cfg.FallbackConfidence = file.FallbackConfidence
	}
	if len(file.SubjectPriority) > 0 {
		cfg.SubjectPriority = file.SubjectPriority
	}
	return cfg, nil
}
