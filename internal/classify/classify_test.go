package classify

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())

	tests := []struct {
		name     string
		itemName string
		tags     []string
		want     string
	}{
		{
			name:     "bathroom keyword in name",
			itemName: "Toothbrush",
			want:     "Bathroom",
		},
		{
			name:     "kitchen keyword in name",
			itemName: "Chef Knife",
			want:     "Kitchen",
		},
		{
			name:     "electronics keyword in name",
			itemName: "USB-C Charger",
			want:     "Electronics",
		},
		{
			name:     "keyword only in tags",
			itemName: "Morning Kit",
			tags:     []string{"toothpaste", "travel"},
			want:     "Bathroom",
		},
		{
			name:     "case insensitive",
			itemName: "PILLOW",
			want:     "Bedroom",
		},
		{
			name:     "no match falls back to default",
			itemName: "xyz123",
			want:     DefaultCategory,
		},
		{
			name:     "empty name and tags fall back to default",
			itemName: "",
			want:     DefaultCategory,
		},
		{
			name:     "higher keyword count wins",
			itemName: "soap dish",
			tags:     []string{"shampoo", "shower"},
			want:     "Bathroom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Classify(tt.itemName, tt.tags); got != tt.want {
				t.Errorf("Classify(%q, %v) = %q, want %q", tt.itemName, tt.tags, got, tt.want)
			}
		})
	}
}

func TestClassifyTieBreakKeepsTableOrder(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Categories: []Category{
			{Name: "First", Keywords: []string{"widget"}},
			{Name: "Second", Keywords: []string{"widget"}},
		},
		DefaultCategory: DefaultCategory,
	}
	c := New(cfg)

	if got := c.Classify("widget", nil); got != "First" {
		t.Errorf("tie between equal scores resolved to %q, want First", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())
	first := c.Classify("garden hose", []string{"outdoor"})
	for i := 0; i < 50; i++ {
		if got := c.Classify("garden hose", []string{"outdoor"}); got != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, got, first)
		}
	}
}

func TestClassifyWithConfidence(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())

	category, confidence := c.ClassifyWithConfidence("Toothbrush", nil)
	if category != "Bathroom" || confidence != DefaultMatchConfidence {
		t.Errorf("matched item: got (%q, %v), want (Bathroom, %v)", category, confidence, DefaultMatchConfidence)
	}

	category, confidence = c.ClassifyWithConfidence("xyz123", nil)
	if category != DefaultCategory || confidence != DefaultFallbackConfidence {
		t.Errorf("unmatched item: got (%q, %v), want (%q, %v)", category, confidence, DefaultCategory, DefaultFallbackConfidence)
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()

	c := New(DefaultConfig())

	for _, category := range []string{"Bathroom", "Kitchen", DefaultCategory} {
		if !c.Known(category) {
			t.Errorf("Known(%q) = false, want true", category)
		}
	}
	if c.Known("Aquarium") {
		t.Error("Known(Aquarium) = true, want false")
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := New(DefaultConfig()).Names()
	if len(names) != 13 {
		t.Fatalf("got %d names, want 13", len(names))
	}
	if names[0] != "Bathroom" {
		t.Errorf("first name = %q, want Bathroom", names[0])
	}
	if names[len(names)-1] != DefaultCategory {
		t.Errorf("last name = %q, want %q", names[len(names)-1], DefaultCategory)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "classifier.yaml")
	payload := `
categories:
  - name: Workshop
    keywords: ["sander", "chisel"]
default_category: Storage
`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].Name != "Workshop" {
		t.Errorf("categories not overridden: %+v", cfg.Categories)
	}
	if cfg.DefaultCategory != "Storage" {
		t.Errorf("default category = %q, want Storage", cfg.DefaultCategory)
	}
	// Fields missing from the file keep their built-in values.
	if cfg.MatchConfidence != DefaultMatchConfidence {
		t.Errorf("match confidence = %v, want %v", cfg.MatchConfidence, DefaultMatchConfidence)
	}
	if len(cfg.SubjectPriority) == 0 {
		t.Error("subject priority lost its default")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg.DefaultCategory != DefaultCategory {
		t.Errorf("missing file should return defaults, got default category %q", cfg.DefaultCategory)
	}
}
