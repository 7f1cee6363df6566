package index

import (
	"reflect"
	"testing"
)

func TestGenreIndexCaseInsensitiveBuckets(t *testing.T) {
	g := NewGenreIndex()
	g.Add(1, "Rock")
	g.Add(2, "rock")
	g.Add(3, "Jazz")

	if ids := g.Songs("ROCK"); !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("expected [1 2], got %v", ids)
	}
	// display form keeps the first-seen casing
	if genres := g.Genres(); !reflect.DeepEqual(genres, []string{"Jazz", "Rock"}) {
		t.Errorf("expected [Jazz Rock], got %v", genres)
	}
}

func TestGenreIndexUnknownBucket(t *testing.T) {
	g := NewGenreIndex()
	g.Add(1, "")
	g.Add(2, "  ")

	if ids := g.Songs(""); !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("expected blank genres pooled in Unknown, got %v", ids)
	}
	if ids := g.Songs("Unknown"); !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("expected Unknown lookup to find them, got %v", ids)
	}
}

func TestGenreIndexUnknownNameReturnsEmpty(t *testing.T) {
	g := NewGenreIndex()
	g.Add(1, "Rock")
	if ids := g.Songs("polka"); len(ids) != 0 {
		t.Errorf("expected empty result for unknown genre, got %v", ids)
	}
}

func TestGenreIndexReindex(t *testing.T) {
	g := NewGenreIndex()
	g.Add(1, "Rock")
	g.Reindex(1, "Rock", "Jazz")

	if ids := g.Songs("Rock"); len(ids) != 0 {
		t.Errorf("expected old bucket emptied, got %v", ids)
	}
	if ids := g.Songs("Jazz"); !reflect.DeepEqual(ids, []int{1}) {
		t.Errorf("expected [1] in Jazz, got %v", ids)
	}
	// empty buckets disappear from the genre list
	if genres := g.Genres(); !reflect.DeepEqual(genres, []string{"Jazz"}) {
		t.Errorf("expected [Jazz], got %v", genres)
	}
}

func TestGenreIndexReindexIdempotentOnSameGenre(t *testing.T) {
	g := NewGenreIndex()
	g.Add(1, "Rock")
	g.Add(2, "Rock")
	g.Reindex(1, "Rock", "ROCK")
	// same canonical form: order must not change
	if ids := g.Songs("rock"); !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("expected order preserved, got %v", ids)
	}
}

func TestGenreIndexRemove(t *testing.T) {
	g := NewGenreIndex()
	g.Add(1, "Rock")
	if !g.Remove(1, "Rock") {
		t.Fatal("remove should succeed")
	}
	if g.Remove(1, "Rock") {
		t.Error("second remove should report false")
	}
	if g.Len() != 0 {
		t.Errorf("expected no buckets left, got %d", g.Len())
	}
}
