package index

import (
	"sort"
	"strings"

	"sonicwave/src/music"
)

// yearProximity is the maximum year distance still counted as "near".
const yearProximity = 2

// Graph is the undirected song similarity graph, stored as an adjacency set.
// Two songs are connected if they share an artist, share a genre, or were
// released within yearProximity years of each other. No self-edges, no
// duplicate edges.
type Graph struct {
	adj map[int]map[int]struct{}
}

// NewGraph creates an empty similarity graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// SimilarityWeight counts how many similarity reasons connect two songs:
// artist match, genre match and year proximity each contribute 1, so the
// maximum weight is 3. A weight of zero means no edge.
func SimilarityWeight(a, b *music.Song) int {
	w := 0
	if a.Artist != "" && b.Artist != "" && strings.EqualFold(a.Artist, b.Artist) {
		w++
	}
	if a.Genre != "" && b.Genre != "" && strings.EqualFold(a.Genre, b.Genre) {
		w++
	}
	if a.Year != 0 && b.Year != 0 {
		diff := a.Year - b.Year
		if diff < 0 {
			diff = -diff
		}
		if diff <= yearProximity {
			w++
		}
	}
	return w
}

// AddVertex registers the id with no edges.
func (g *Graph) AddVertex(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]struct{})
	}
}

// Connect adds an undirected edge. Self-edges are ignored.
func (g *Graph) Connect(a, b int) {
	if a == b {
		return
	}
	g.AddVertex(a)
	g.AddVertex(b)
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// HasEdge reports whether the two ids are connected.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Neighbors returns the adjacent ids in ascending order for determinism.
func (g *Graph) Neighbors(id int) []int {
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// RemoveVertex deletes the id and every edge touching it.
func (g *Graph) RemoveVertex(id int) {
	for n := range g.adj[id] {
		delete(g.adj[n], id)
	}
	delete(g.adj, id)
}

// Insert adds the song as a vertex and computes its edges against the given
// peers, O(n) for the affected song only.
func (g *Graph) Insert(song *music.Song, peers []*music.Song) {
	g.AddVertex(song.ID)
	for _, peer := range peers {
		if peer.ID == song.ID {
			continue
		}
		if SimilarityWeight(song, peer) > 0 {
			g.Connect(song.ID, peer.ID)
		}
	}
}

// Recompute drops the song's edges and rebuilds them against the given peers.
// Used after an artist/genre/year edit; only the affected neighborhood is
// touched, never the whole graph.
func (g *Graph) Recompute(song *music.Song, peers []*music.Song) {
	g.RemoveVertex(song.ID)
	g.Insert(song, peers)
}

// Rebuild reconstructs the whole graph from scratch. O(n²), acceptable for a
// bulk rescan at catalog sizes in the hundreds.
func (g *Graph) Rebuild(songs []*music.Song) {
	g.adj = make(map[int]map[int]struct{})
	for i, song := range songs {
		g.AddVertex(song.ID)
		for _, peer := range songs[:i] {
			if SimilarityWeight(song, peer) > 0 {
				g.Connect(song.ID, peer.ID)
			}
		}
	}
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.adj)
}
