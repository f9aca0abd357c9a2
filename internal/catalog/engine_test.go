package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"packrat/internal/classify"
	"packrat/internal/models"
	"packrat/internal/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.Memory) {
	t.Helper()
	s := store.NewMemory()
	return New(s, classify.New(classify.DefaultConfig()), nil), s
}

// brokenStore fails every operation, for exercising the storage error paths.
type brokenStore struct {
	readErr  error
	writeErr error
}

func (b *brokenStore) ReadAll(context.Context) ([]models.Item, error) { return nil, b.readErr }
func (b *brokenStore) WriteAll(context.Context, []models.Item) error  { return b.writeErr }
func (b *brokenStore) Seeded(context.Context) (bool, error)           { return false, nil }
func (b *brokenStore) MarkSeeded(context.Context) error               { return nil }
func (b *brokenStore) Close() error                                   { return nil }

func TestCreate(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()

	item, err := e.Create(ctx, Draft{
		Name: "  Toothbrush  ",
		Tags: []string{" Bathroom ", "hygiene", "hygiene"},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if item.ID == "" {
		t.Error("created item has no id")
	}
	if item.Name != "Toothbrush" {
		t.Errorf("name = %q, want trimmed Toothbrush", item.Name)
	}
	if want := []string{"bathroom", "hygiene"}; !reflect.DeepEqual(item.Tags, want) {
		t.Errorf("tags = %v, want %v", item.Tags, want)
	}
	if item.Quantity != 1 {
		t.Errorf("zero quantity clamped to %d, want 1", item.Quantity)
	}
	if item.Category != "Bathroom" {
		t.Errorf("category = %q, want classifier result Bathroom", item.Category)
	}
	if item.CreatedAt == 0 {
		t.Error("creation time not set")
	}

	got, err := e.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("Get() after Create(): %v", err)
	}
	if !reflect.DeepEqual(got, item) {
		t.Errorf("persisted item differs: got %+v, want %+v", got, item)
	}
}

func TestCreateExplicitCategoryWins(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	item, err := e.Create(context.Background(), Draft{Name: "Toothbrush", Category: "Travel"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if item.Category != "Travel" {
		t.Errorf("category = %q, explicit category should not be reclassified", item.Category)
	}
}

func TestCreateRequiresName(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	for _, name := range []string{"", "   "} {
		_, err := e.Create(context.Background(), Draft{Name: name})
		if !IsValidation(err) {
			t.Errorf("Create(name=%q) error = %v, want ValidationError", name, err)
		}
	}
}

func TestCreateSurfacesWriteFailure(t *testing.T) {
	t.Parallel()

	e := New(&brokenStore{writeErr: errors.New("disk full")}, classify.New(classify.DefaultConfig()), nil)
	_, err := e.Create(context.Background(), Draft{Name: "Soap"})
	if !IsStorage(err) {
		t.Fatalf("Create() error = %v, want StorageError", err)
	}
}

func TestReadFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	e := New(&brokenStore{readErr: errors.New("connection refused")}, classify.New(classify.DefaultConfig()), nil)
	items, err := e.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error = %v, read failures must degrade to empty", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items from a failing store, want 0", len(items))
	}
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	_, err := e.Get(context.Background(), "no-such-id")
	if !IsNotFound(err) {
		t.Errorf("Get() error = %v, want NotFoundError", err)
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()
	item, err := e.Create(ctx, Draft{Name: "Pillow", Tags: []string{"bedroom"}, Quantity: 2})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	name := "Feather Pillow"
	qty := 4
	updated, err := e.Update(ctx, item.ID, Patch{Name: &name, Quantity: &qty})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Name != "Feather Pillow" || updated.Quantity != 4 {
		t.Errorf("update not applied: %+v", updated)
	}
	if !reflect.DeepEqual(updated.Tags, []string{"bedroom"}) {
		t.Errorf("unpatched tags changed: %v", updated.Tags)
	}
	if updated.Category != item.Category {
		t.Errorf("unpatched category changed: %q", updated.Category)
	}
}

func TestUpdateTagSemantics(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()
	item, _ := e.Create(ctx, Draft{Name: "Pillow", Tags: []string{"bedroom"}})

	// Nil slice leaves tags alone.
	updated, err := e.Update(ctx, item.ID, Patch{})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !reflect.DeepEqual(updated.Tags, []string{"bedroom"}) {
		t.Errorf("nil tags patch changed tags: %v", updated.Tags)
	}

	// Empty non-nil slice clears them.
	updated, err = e.Update(ctx, item.ID, Patch{Tags: []string{}})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if len(updated.Tags) != 0 {
		t.Errorf("empty tags patch should clear tags, got %v", updated.Tags)
	}
}

func TestUpdateValidation(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()
	item, _ := e.Create(ctx, Draft{Name: "Pillow"})

	empty := ""
	if _, err := e.Update(ctx, item.ID, Patch{Name: &empty}); !IsValidation(err) {
		t.Errorf("empty name patch error = %v, want ValidationError", err)
	}
	if _, err := e.Update(ctx, item.ID, Patch{Category: &empty}); !IsValidation(err) {
		t.Errorf("empty category patch error = %v, want ValidationError", err)
	}
	name := "New"
	if _, err := e.Update(ctx, "missing", Patch{Name: &name}); !IsNotFound(err) {
		t.Errorf("patch of missing id error = %v, want NotFoundError", err)
	}
}

func TestUpdateAdvancedMerges(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()
	item, _ := e.Create(ctx, Draft{Name: "Print"})

	_, err := e.Update(ctx, item.ID, Patch{Advanced: &models.Advanced{
		Publisher: "Small Press",
		Creators:  []string{"A. Painter"},
	}})
	if err != nil {
		t.Fatalf("first advanced patch: %v", err)
	}

	updated, err := e.Update(ctx, item.ID, Patch{Advanced: &models.Advanced{
		Language: "en",
	}})
	if err != nil {
		t.Fatalf("second advanced patch: %v", err)
	}
	adv := updated.Advanced
	if adv == nil {
		t.Fatal("advanced record missing after patches")
	}
	if adv.Publisher != "Small Press" {
		t.Errorf("earlier field lost on merge: publisher = %q", adv.Publisher)
	}
	if adv.Language != "en" {
		t.Errorf("new field not merged: language = %q", adv.Language)
	}
	if !reflect.DeepEqual(adv.Creators, []string{"A. Painter"}) {
		t.Errorf("creators lost on merge: %v", adv.Creators)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()
	item, _ := e.Create(ctx, Draft{Name: "Pillow"})

	if err := e.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := e.Get(ctx, item.ID); !IsNotFound(err) {
		t.Errorf("Get() after delete error = %v, want NotFoundError", err)
	}
	if err := e.Delete(ctx, item.ID); !IsNotFound(err) {
		t.Errorf("second Delete() error = %v, want NotFoundError", err)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()
	for _, name := range []string{"Chef Knife", "Paring Knife", "Soap"} {
		if _, err := e.Create(ctx, Draft{Name: name}); err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
	}

	all, err := e.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d items, want 3", len(all))
	}

	knives, err := e.List(ctx, "KNIFE")
	if err != nil {
		t.Fatalf("List(KNIFE) error: %v", err)
	}
	if len(knives) != 2 {
		t.Errorf("case-insensitive query matched %d items, want 2", len(knives))
	}
}

func TestAddAsset(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	ctx := context.Background()
	item, _ := e.Create(ctx, Draft{Name: "Camera"})

	updated, err := e.AddAsset(ctx, item.ID, models.Asset{
		FilePath: "photos/camera.jpg",
		MimeType: "image/jpeg",
		Bytes:    1024,
	})
	if err != nil {
		t.Fatalf("AddAsset() error: %v", err)
	}
	if len(updated.Assets) != 1 {
		t.Fatalf("got %d assets, want 1", len(updated.Assets))
	}
	if updated.Assets[0].ID == "" {
		t.Error("asset was not assigned an id")
	}

	if _, err := e.AddAsset(ctx, item.ID, models.Asset{}); !IsValidation(err) {
		t.Errorf("asset without file path error = %v, want ValidationError", err)
	}
	if _, err := e.AddAsset(ctx, "missing", models.Asset{FilePath: "x"}); !IsNotFound(err) {
		t.Errorf("asset for missing item error = %v, want NotFoundError", err)
	}
}

func TestSeedIfNeeded(t *testing.T) {
	t.Parallel()

	e, s := newTestEngine(t)
	ctx := context.Background()

	if err := e.SeedIfNeeded(ctx); err != nil {
		t.Fatalf("SeedIfNeeded() error: %v", err)
	}
	items, err := e.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("first seed produced %d items, want 3", len(items))
	}

	wantCategories := map[string]string{
		"Toothbrush":    "Bathroom",
		"Chef Knife":    "Kitchen",
		"USB-C Charger": "Electronics",
	}
	for _, item := range items {
		if want := wantCategories[item.Name]; item.Category != want {
			t.Errorf("seed item %q classified as %q, want %q", item.Name, item.Category, want)
		}
	}

	// Repeat runs, even against an emptied collection, stay no-ops.
	if err := s.WriteAll(ctx, nil); err != nil {
		t.Fatalf("WriteAll() error: %v", err)
	}
	if err := e.SeedIfNeeded(ctx); err != nil {
		t.Fatalf("second SeedIfNeeded() error: %v", err)
	}
	items, _ = e.List(ctx, "")
	if len(items) != 0 {
		t.Errorf("re-seed after flag set added %d items, want 0", len(items))
	}
}
