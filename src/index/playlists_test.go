package index

import (
	"reflect"
	"testing"
)

func TestPlaylistCreateDeleteList(t *testing.T) {
	p := NewPlaylistIndex()
	p.Create("Road Trip")
	p.Create("ambient")
	p.Create("Road Trip") // no-op

	if p.Len() != 2 {
		t.Fatalf("expected 2 playlists, got %d", p.Len())
	}
	names := p.Names()
	if !reflect.DeepEqual(names, []string{"ambient", "Road Trip"}) {
		t.Errorf("expected case-insensitive sort, got %v", names)
	}

	if !p.Delete("ambient") {
		t.Error("expected delete to succeed")
	}
	if p.Delete("ambient") {
		t.Error("expected second delete to report false")
	}
	if p.Exists("ambient") {
		t.Error("expected playlist gone after delete")
	}
}

func TestPlaylistAddRemoveOrder(t *testing.T) {
	p := NewPlaylistIndex()
	p.Add("mix", 3)
	p.Add("mix", 1)
	p.Add("mix", 3) // duplicate allowed
	p.Add("mix", 2)

	ids, ok := p.Songs("mix")
	if !ok {
		t.Fatal("expected playlist to exist after Add")
	}
	if !reflect.DeepEqual(ids, []int{3, 1, 3, 2}) {
		t.Fatalf("expected insertion order with duplicate, got %v", ids)
	}

	if !p.Remove("mix", 3) {
		t.Fatal("expected remove to succeed")
	}
	ids, _ = p.Songs("mix")
	if !reflect.DeepEqual(ids, []int{1, 3, 2}) {
		t.Errorf("expected first occurrence removed, got %v", ids)
	}
	if p.Remove("mix", 99) {
		t.Error("expected remove of unlisted id to report false")
	}
	if p.Remove("nope", 1) {
		t.Error("expected remove on unknown playlist to report false")
	}
}

func TestPlaylistNextOfPrevOf(t *testing.T) {
	p := NewPlaylistIndex()
	p.Add("mix", 1)
	p.Add("mix", 2)
	p.Add("mix", 3)

	if id, ok := p.NextOf("mix", 1); !ok || id != 2 {
		t.Errorf("expected next of 1 to be 2, got %d %v", id, ok)
	}
	if id, ok := p.PrevOf("mix", 3); !ok || id != 2 {
		t.Errorf("expected prev of 3 to be 2, got %d %v", id, ok)
	}
	if _, ok := p.NextOf("mix", 3); ok {
		t.Error("expected no next at the tail")
	}
	if _, ok := p.PrevOf("mix", 1); ok {
		t.Error("expected no prev at the head")
	}
	if _, ok := p.NextOf("mix", 42); ok {
		t.Error("expected no next for unlisted id")
	}
	if _, ok := p.NextOf("nope", 1); ok {
		t.Error("expected no next on unknown playlist")
	}
}

func TestPlaylistPurgeSong(t *testing.T) {
	p := NewPlaylistIndex()
	p.Add("a", 1)
	p.Add("a", 2)
	p.Add("a", 1)
	p.Add("b", 1)
	p.Create("empty")

	p.PurgeSong(1)

	ids, _ := p.Songs("a")
	if !reflect.DeepEqual(ids, []int{2}) {
		t.Errorf("expected every occurrence purged from a, got %v", ids)
	}
	ids, _ = p.Songs("b")
	if len(ids) != 0 {
		t.Errorf("expected b emptied, got %v", ids)
	}
	if !p.Exists("b") || !p.Exists("empty") {
		t.Error("expected empty playlists to survive a purge")
	}
}

func TestPlaylistReset(t *testing.T) {
	p := NewPlaylistIndex()
	p.Add("mix", 1)
	p.Reset()
	if p.Len() != 0 {
		t.Errorf("expected no playlists after reset, got %d", p.Len())
	}
}
