package models

import (
	"reflect"
	"testing"
)

func TestAdvancedMerge(t *testing.T) {
	t.Parallel()

	a := &Advanced{
		Publisher: "Small Press",
		Language:  "en",
		Creators:  []string{"A. Painter"},
	}

	a.Merge(&Advanced{
		Language:     "ja",
		Date:         "1850",
		Contributors: []string{"B. Carver"},
	})

	if a.Publisher != "Small Press" {
		t.Errorf("untouched scalar changed: publisher = %q", a.Publisher)
	}
	if a.Language != "ja" {
		t.Errorf("scalar not overwritten: language = %q", a.Language)
	}
	if a.Date != "1850" {
		t.Errorf("new scalar not set: date = %q", a.Date)
	}
	if !reflect.DeepEqual(a.Creators, []string{"A. Painter"}) {
		t.Errorf("nil list patch changed creators: %v", a.Creators)
	}
	if !reflect.DeepEqual(a.Contributors, []string{"B. Carver"}) {
		t.Errorf("list not replaced: %v", a.Contributors)
	}
}

func TestAdvancedMergeListReplaces(t *testing.T) {
	t.Parallel()

	a := &Advanced{Creators: []string{"A", "B"}}
	a.Merge(&Advanced{Creators: []string{"C"}})
	if !reflect.DeepEqual(a.Creators, []string{"C"}) {
		t.Errorf("list merge should replace, got %v", a.Creators)
	}

	a.Merge(&Advanced{Creators: []string{}})
	if len(a.Creators) != 0 {
		t.Errorf("empty non-nil list should clear, got %v", a.Creators)
	}
}

func TestAdvancedMergeNilPatch(t *testing.T) {
	t.Parallel()

	a := &Advanced{Publisher: "P"}
	a.Merge(nil)
	if a.Publisher != "P" {
		t.Error("nil patch mutated the record")
	}
}

func TestAdvancedClone(t *testing.T) {
	t.Parallel()

	var nilAdv *Advanced
	if nilAdv.Clone() != nil {
		t.Error("nil receiver should clone to nil")
	}

	a := &Advanced{Publisher: "P", Creators: []string{"A"}}
	c := a.Clone()
	c.Publisher = "Q"
	c.Creators[0] = "Z"
	if a.Publisher != "P" || a.Creators[0] != "A" {
		t.Errorf("clone shares state with original: %+v", a)
	}
}
