package index

import (
	"sort"
	"strings"
)

// PlaylistIndex holds the named playlists: one ordered id list per name,
// supporting bidirectional traversal via NextOf/PrevOf. The original linked
// structure is flattened to an id slice per playlist; the catalog stays the
// source of truth for existence, so ids of deleted songs are purged eagerly.
type PlaylistIndex struct {
	lists map[string][]int
}

// NewPlaylistIndex creates an empty playlist index.
func NewPlaylistIndex() *PlaylistIndex {
	return &PlaylistIndex{lists: make(map[string][]int)}
}

// Create registers an empty playlist. Creating an existing name is a no-op.
func (p *PlaylistIndex) Create(name string) {
	if _, ok := p.lists[name]; !ok {
		p.lists[name] = nil
	}
}

// Delete removes the playlist. Returns false if the name is absent.
func (p *PlaylistIndex) Delete(name string) bool {
	if _, ok := p.lists[name]; !ok {
		return false
	}
	delete(p.lists, name)
	return true
}

// Exists reports whether the playlist name is registered.
func (p *PlaylistIndex) Exists(name string) bool {
	_, ok := p.lists[name]
	return ok
}

// Names returns all playlist names, sorted case-insensitively.
func (p *PlaylistIndex) Names() []string {
	out := make([]string, 0, len(p.lists))
	for name := range p.lists {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// Add appends the id to the playlist, creating the playlist on first use.
// Duplicates are allowed; traversal always resolves the first occurrence.
func (p *PlaylistIndex) Add(name string, id int) {
	p.lists[name] = append(p.lists[name], id)
}

// Remove drops the first occurrence of the id from the playlist. Returns
// false if the playlist or the id is absent.
func (p *PlaylistIndex) Remove(name string, id int) bool {
	ids, ok := p.lists[name]
	if !ok {
		return false
	}
	for i, existing := range ids {
		if existing == id {
			p.lists[name] = append(ids[:i], ids[i+1:]...)
			return true
		}
	}
	return false
}

// Songs returns the playlist's id list front-to-back.
func (p *PlaylistIndex) Songs(name string) ([]int, bool) {
	ids, ok := p.lists[name]
	if !ok {
		return nil, false
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out, true
}

// NextOf returns the id following the first occurrence of the given id in
// the playlist. Returns false at the tail or when the id is not listed.
func (p *PlaylistIndex) NextOf(name string, id int) (int, bool) {
	ids := p.lists[name]
	for i, existing := range ids {
		if existing == id {
			if i+1 < len(ids) {
				return ids[i+1], true
			}
			return 0, false
		}
	}
	return 0, false
}

// PrevOf returns the id preceding the first occurrence of the given id in
// the playlist. Returns false at the head or when the id is not listed.
func (p *PlaylistIndex) PrevOf(name string, id int) (int, bool) {
	ids := p.lists[name]
	for i, existing := range ids {
		if existing == id {
			if i > 0 {
				return ids[i-1], true
			}
			return 0, false
		}
	}
	return 0, false
}

// PurgeSong removes every occurrence of the id from every playlist. Called
// when a song is deleted from the catalog; empty playlists survive, only
// their entries go.
func (p *PlaylistIndex) PurgeSong(id int) {
	for name, ids := range p.lists {
		kept := ids[:0]
		for _, existing := range ids {
			if existing != id {
				kept = append(kept, existing)
			}
		}
		p.lists[name] = kept
	}
}

// Len returns the number of playlists.
func (p *PlaylistIndex) Len() int {
	return len(p.lists)
}

// Reset drops every playlist.
func (p *PlaylistIndex) Reset() {
	p.lists = make(map[string][]int)
}
