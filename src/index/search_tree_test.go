package index

import (
	"reflect"
	"testing"
)

func TestSearchTreeSubstringMatch(t *testing.T) {
	tree := NewSearchTree()
	tree.Insert(1, "Night Sky")

	for _, query := range []string{"night", "sky", "NIGHT", "ght s"} {
		if ids := tree.Match(query); len(ids) != 1 || ids[0] != 1 {
			t.Errorf("query %q: expected [1], got %v", query, ids)
		}
	}
	if ids := tree.Match("xyz"); len(ids) != 0 {
		t.Errorf("query xyz: expected empty, got %v", ids)
	}
}

func TestSearchTreeNormalizesAccents(t *testing.T) {
	tree := NewSearchTree()
	tree.Insert(7, "Café del Mar")
	if ids := tree.Match("cafe"); len(ids) != 1 || ids[0] != 7 {
		t.Errorf("expected accent-folded match, got %v", ids)
	}
}

func TestSearchTreeDuplicateTitles(t *testing.T) {
	tree := NewSearchTree()
	tree.Insert(1, "Intro")
	tree.Insert(2, "intro")
	tree.Insert(3, "  Intro ")

	ids := tree.Lookup("INTRO")
	if !reflect.DeepEqual(ids, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3] in insertion order, got %v", ids)
	}

	tree.Remove(2, "intro")
	if ids := tree.Lookup("Intro"); !reflect.DeepEqual(ids, []int{1, 3}) {
		t.Errorf("expected [1 3] after removing 2, got %v", ids)
	}
}

func TestSearchTreeRemoveLastIDDeletesKey(t *testing.T) {
	tree := NewSearchTree()
	tree.Insert(1, "Alpha")
	tree.Insert(2, "Beta")
	tree.Insert(3, "Gamma")

	if !tree.Remove(2, "Beta") {
		t.Fatal("remove should succeed")
	}
	if keys := tree.Keys(); !reflect.DeepEqual(keys, []string{"alpha", "gamma"}) {
		t.Errorf("expected key pruned, got %v", keys)
	}
	if tree.Remove(2, "Beta") {
		t.Error("removing an absent id should report false")
	}
}

func TestSearchTreeDeleteInteriorNode(t *testing.T) {
	tree := NewSearchTree()
	// shape: m at the root with children on both sides
	for id, title := range map[int]string{1: "m", 2: "f", 3: "t", 4: "a", 5: "h", 6: "p", 7: "z"} {
		tree.Insert(id, title)
	}
	tree.Remove(1, "m") // two-children delete at the root
	want := []string{"a", "f", "h", "p", "t", "z"}
	if keys := tree.Keys(); !reflect.DeepEqual(keys, want) {
		t.Errorf("expected %v, got %v", want, keys)
	}
	if ids := tree.Lookup("p"); len(ids) != 1 || ids[0] != 6 {
		t.Errorf("lookup after interior delete broken, got %v", ids)
	}
}

func TestSearchTreeEmptyQuery(t *testing.T) {
	tree := NewSearchTree()
	tree.Insert(1, "Nova")
	if ids := tree.Match("   "); ids != nil {
		t.Errorf("blank query should match nothing, got %v", ids)
	}
}

func TestSearchTreeLen(t *testing.T) {
	tree := NewSearchTree()
	tree.Insert(1, "Nova")
	tree.Insert(2, "nova")
	if tree.Len() != 2 {
		t.Errorf("expected len 2, got %d", tree.Len())
	}
	tree.Remove(1, "Nova")
	if tree.Len() != 1 {
		t.Errorf("expected len 1, got %d", tree.Len())
	}
}
