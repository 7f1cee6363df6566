package index

import (
	"sort"
	"strings"

	"sonicwave/src/music"
)

// GenreIndex groups song ids into named buckets, one bucket per canonical
// genre. A song id lives in at most one bucket at a time; songs without a
// declared genre land in the "Unknown" bucket.
type GenreIndex struct {
	buckets map[string]*genreBucket
}

type genreBucket struct {
	// display keeps the first-seen casing for browse UIs.
	display string
	ids     []int
}

// NewGenreIndex creates an empty genre index.
func NewGenreIndex() *GenreIndex {
	return &GenreIndex{buckets: make(map[string]*genreBucket)}
}

// CanonicalGenre folds a genre name to its bucket key. Empty names map to the
// Unknown bucket.
func CanonicalGenre(genre string) string {
	g := strings.TrimSpace(genre)
	if g == "" {
		g = music.UnknownGenre
	}
	return strings.ToLower(g)
}

func displayGenre(genre string) string {
	g := strings.TrimSpace(genre)
	if g == "" {
		return music.UnknownGenre
	}
	return g
}

// Add appends the id to the genre's bucket, creating the bucket on first use.
func (g *GenreIndex) Add(id int, genre string) {
	key := CanonicalGenre(genre)
	bucket, ok := g.buckets[key]
	if !ok {
		bucket = &genreBucket{display: displayGenre(genre)}
		g.buckets[key] = bucket
	}
	bucket.ids = append(bucket.ids, id)
}

// Remove drops the id from the genre's bucket. Empty buckets are deleted so
// Genres never lists a genre with no songs. Returns false if the id was not
// in the bucket.
func (g *GenreIndex) Remove(id int, genre string) bool {
	key := CanonicalGenre(genre)
	bucket, ok := g.buckets[key]
	if !ok {
		return false
	}
	for i, existing := range bucket.ids {
		if existing == id {
			bucket.ids = append(bucket.ids[:i], bucket.ids[i+1:]...)
			if len(bucket.ids) == 0 {
				delete(g.buckets, key)
			}
			return true
		}
	}
	return false
}

// Reindex moves the id between buckets after a genre edit. Idempotent when
// both names fold to the same canonical form.
func (g *GenreIndex) Reindex(id int, oldGenre, newGenre string) {
	if CanonicalGenre(oldGenre) == CanonicalGenre(newGenre) {
		return
	}
	g.Remove(id, oldGenre)
	g.Add(id, newGenre)
}

// Songs returns the ordered id list for the genre. Unknown genre names yield
// an empty result, not an error.
func (g *GenreIndex) Songs(genre string) []int {
	bucket, ok := g.buckets[CanonicalGenre(genre)]
	if !ok {
		return nil
	}
	out := make([]int, len(bucket.ids))
	copy(out, bucket.ids)
	return out
}

// Genres returns all bucket display names, sorted case-insensitively.
func (g *GenreIndex) Genres() []string {
	out := make([]string, 0, len(g.buckets))
	for _, bucket := range g.buckets {
		out = append(out, bucket.display)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// Len returns the number of non-empty buckets.
func (g *GenreIndex) Len() int {
	return len(g.buckets)
}
