package index

import (
	"strings"

	"github.com/gosimple/unidecode"
)

// SearchTree is an unbalanced binary search tree keyed by normalized song
// title. Each node holds the id set of songs sharing that exact normalized
// title, in insertion order, so duplicate titles are supported. The tree is
// read-heavy and small; no rebalancing, O(n) worst case on pathological
// insert order is accepted.
type SearchTree struct {
	root *treeNode
	size int
}

type treeNode struct {
	key   string
	ids   []int
	left  *treeNode
	right *treeNode
}

// NewSearchTree creates an empty search tree.
func NewSearchTree() *SearchTree {
	return &SearchTree{}
}

// NormalizeTitle folds a title to its search key: trimmed, lower-cased and
// transliterated to ASCII so "Café" matches "cafe".
func NormalizeTitle(title string) string {
	return unidecode.Unidecode(strings.ToLower(strings.TrimSpace(title)))
}

// Insert stores the id under the title's normalized key.
func (t *SearchTree) Insert(id int, title string) {
	key := NormalizeTitle(title)
	node := t.root
	if node == nil {
		t.root = &treeNode{key: key, ids: []int{id}}
		t.size++
		return
	}
	for {
		switch {
		case key < node.key:
			if node.left == nil {
				node.left = &treeNode{key: key, ids: []int{id}}
				t.size++
				return
			}
			node = node.left
		case key > node.key:
			if node.right == nil {
				node.right = &treeNode{key: key, ids: []int{id}}
				t.size++
				return
			}
			node = node.right
		default:
			node.ids = append(node.ids, id)
			t.size++
			return
		}
	}
}

// Remove drops the id from the title's key. The key node is deleted when its
// id set becomes empty. Returns false if the id was not indexed under the key.
func (t *SearchTree) Remove(id int, title string) bool {
	key := NormalizeTitle(title)
	node := t.root
	for node != nil && node.key != key {
		if key < node.key {
			node = node.left
		} else {
			node = node.right
		}
	}
	if node == nil {
		return false
	}
	found := false
	for i, existing := range node.ids {
		if existing == id {
			node.ids = append(node.ids[:i], node.ids[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	t.size--
	if len(node.ids) == 0 {
		t.root = deleteKey(t.root, key)
	}
	return true
}

// deleteKey removes the node with the given key using the standard BST delete
// (successor replacement for two-children nodes).
func deleteKey(node *treeNode, key string) *treeNode {
	if node == nil {
		return nil
	}
	switch {
	case key < node.key:
		node.left = deleteKey(node.left, key)
	case key > node.key:
		node.right = deleteKey(node.right, key)
	default:
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		succ := node.right
		for succ.left != nil {
			succ = succ.left
		}
		node.key = succ.key
		node.ids = succ.ids
		node.right = deleteKey(node.right, succ.key)
	}
	return node
}

// Lookup returns the ids stored under the exact normalized title, in
// insertion order.
func (t *SearchTree) Lookup(title string) []int {
	key := NormalizeTitle(title)
	node := t.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			out := make([]int, len(node.ids))
			copy(out, node.ids)
			return out
		}
	}
	return nil
}

// Match collects the ids of every key containing the normalized query as a
// substring. The tree only accelerates exact and prefix lookups; a general
// substring query is a full in-order traversal and is linear by nature.
func (t *SearchTree) Match(query string) []int {
	q := NormalizeTitle(query)
	if q == "" {
		return nil
	}
	var out []int
	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		if strings.Contains(n.key, q) {
			out = append(out, n.ids...)
		}
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Keys returns all normalized keys in lexicographic order.
func (t *SearchTree) Keys() []string {
	var out []string
	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Len returns the number of indexed ids.
func (t *SearchTree) Len() int {
	return t.size
}
