package index

import (
	"sonicwave/src/music"
)

// Catalog is the canonical ordered store of all songs. Insertion order is
// preserved and ids are never reused. Lookup by id is O(1) via a position
// index; removal is O(n) because the tail positions shift.
type Catalog struct {
	order  []int
	songs  map[int]*music.Song
	pos    map[int]int
	nextID int
}

// NewCatalog creates an empty catalog. Ids start at 1 so the zero value can
// mean "no song" in the sequencer.
func NewCatalog() *Catalog {
	return &Catalog{
		songs:  make(map[int]*music.Song),
		pos:    make(map[int]int),
		nextID: 1,
	}
}

// Add assigns the next unused id to the song, appends it and returns the id.
func (c *Catalog) Add(song *music.Song) int {
	song.ID = c.nextID
	c.nextID++
	c.pos[song.ID] = len(c.order)
	c.order = append(c.order, song.ID)
	c.songs[song.ID] = song
	return song.ID
}

// Remove deletes the song with the given id. Returns false if the id is absent.
func (c *Catalog) Remove(id int) bool {
	i, ok := c.pos[id]
	if !ok {
		return false
	}
	c.order = append(c.order[:i], c.order[i+1:]...)
	for _, shifted := range c.order[i:] {
		c.pos[shifted]--
	}
	delete(c.pos, id)
	delete(c.songs, id)
	return true
}

// Get returns the song with the given id.
func (c *Catalog) Get(id int) (*music.Song, bool) {
	song, ok := c.songs[id]
	return song, ok
}

// Position returns the insertion-order position of the given id.
func (c *Catalog) Position(id int) (int, bool) {
	i, ok := c.pos[id]
	return i, ok
}

// Songs materializes all songs in insertion order.
func (c *Catalog) Songs() []*music.Song {
	out := make([]*music.Song, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.songs[id])
	}
	return out
}

// Len returns the number of songs in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// First returns the id of the first song in insertion order.
func (c *Catalog) First() (int, bool) {
	if len(c.order) == 0 {
		return 0, false
	}
	return c.order[0], true
}

// NextAfter returns the id following the given id in insertion order, wrapping
// to the start. If the id is no longer present it falls back to the first song.
func (c *Catalog) NextAfter(id int) (int, bool) {
	if len(c.order) == 0 {
		return 0, false
	}
	i, ok := c.pos[id]
	if !ok {
		return c.order[0], true
	}
	return c.order[(i+1)%len(c.order)], true
}
