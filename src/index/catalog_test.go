package index

import (
	"testing"

	"sonicwave/src/music"
)

func TestCatalogAddAssignsUniqueIDs(t *testing.T) {
	c := NewCatalog()
	a := c.Add(&music.Song{Title: "Nova"})
	b := c.Add(&music.Song{Title: "Orbit"})
	if a == b {
		t.Fatalf("ids must be unique, got %d twice", a)
	}
	if a != 1 || b != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", a, b)
	}
}

func TestCatalogIDsNeverReused(t *testing.T) {
	c := NewCatalog()
	a := c.Add(&music.Song{Title: "Nova"})
	c.Remove(a)
	b := c.Add(&music.Song{Title: "Orbit"})
	if b == a {
		t.Errorf("id %d was reused after removal", a)
	}
}

func TestCatalogGetAfterRemove(t *testing.T) {
	c := NewCatalog()
	id := c.Add(&music.Song{Title: "Nova"})
	if !c.Remove(id) {
		t.Fatal("remove should report success")
	}
	if _, ok := c.Get(id); ok {
		t.Error("get after remove should fail")
	}
	if c.Remove(id) {
		t.Error("second remove should report false, not panic")
	}
}

func TestCatalogPreservesInsertionOrder(t *testing.T) {
	c := NewCatalog()
	titles := []string{"Nova", "Orbit", "Drift", "Echo"}
	for _, title := range titles {
		c.Add(&music.Song{Title: title})
	}
	c.Remove(2) // "Orbit"
	want := []string{"Nova", "Drift", "Echo"}
	songs := c.Songs()
	if len(songs) != len(want) {
		t.Fatalf("expected %d songs, got %d", len(want), len(songs))
	}
	for i, song := range songs {
		if song.Title != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], song.Title)
		}
	}
	// position index must stay consistent after the shift
	for i, song := range songs {
		pos, ok := c.Position(song.ID)
		if !ok || pos != i {
			t.Errorf("song %d: expected position %d, got %d (ok=%v)", song.ID, i, pos, ok)
		}
	}
}

func TestCatalogNextAfterWraps(t *testing.T) {
	c := NewCatalog()
	first := c.Add(&music.Song{Title: "Nova"})
	c.Add(&music.Song{Title: "Orbit"})
	last := c.Add(&music.Song{Title: "Drift"})

	if next, _ := c.NextAfter(first); next != first+1 {
		t.Errorf("expected %d after %d, got %d", first+1, first, next)
	}
	if next, _ := c.NextAfter(last); next != first {
		t.Errorf("expected wrap to %d after %d, got %d", first, last, next)
	}
	// a deleted id falls back to the start of the catalog
	c.Remove(first + 1)
	if next, _ := c.NextAfter(first + 1); next != first {
		t.Errorf("expected fallback to %d for deleted id, got %d", first, next)
	}
}

func TestCatalogNextAfterEmpty(t *testing.T) {
	c := NewCatalog()
	if _, ok := c.NextAfter(1); ok {
		t.Error("NextAfter on empty catalog should report false")
	}
	if _, ok := c.First(); ok {
		t.Error("First on empty catalog should report false")
	}
}
