package index

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"sonicwave/src/music"
)

// FallbackPolicy selects what Next plays when both the queue and, per policy,
// the similarity graph have nothing to offer.
type FallbackPolicy string

const (
	// FallbackSimilar asks the similarity graph first and only then falls
	// back to catalog order with wraparound.
	FallbackSimilar FallbackPolicy = "similar"
	// FallbackLinear skips the graph and always advances in catalog order.
	FallbackLinear FallbackPolicy = "linear"
)

// Options configures the library core.
type Options struct {
	// HistoryLimit caps the history stack; 0 means unbounded.
	HistoryLimit int
	// Fallback is the Next fallback policy; defaults to FallbackSimilar.
	Fallback FallbackPolicy
}

// Library is the in-memory implementation of music.Library: the catalog plus
// the three read indexes and the sequencer, kept mutually consistent. The
// catalog is the single source of truth for existence; every mutation updates
// it first and then propagates to the search tree, genre buckets, similarity
// graph and sequencer, in that fixed order.
//
// The embedded RWMutex is the single mutual-exclusion boundary required by the
// single-writer model: mutations are exclusive, reads run concurrently with
// each other but never with a mutation.
type Library struct {
	mu        sync.RWMutex
	catalog   *Catalog
	titles    *SearchTree
	genres    *GenreIndex
	graph     *Graph
	playlists *PlaylistIndex
	seq       *Sequencer
	fallback  FallbackPolicy
	// playlist is the selected playlist name driving Next/Previous,
	// "" when none is selected.
	playlist string
}

// NewLibrary creates an empty library core.
func NewLibrary(opts Options) *Library {
	fallback := opts.Fallback
	if fallback == "" {
		fallback = FallbackSimilar
	}
	return &Library{
		catalog:   NewCatalog(),
		titles:    NewSearchTree(),
		genres:    NewGenreIndex(),
		graph:     NewGraph(),
		playlists: NewPlaylistIndex(),
		seq:       NewSequencer(opts.HistoryLimit),
		fallback:  fallback,
	}
}

// AddSong validates the song, assigns it an id and inserts it into every
// index. The id field on the argument is overwritten.
func (l *Library) AddSong(ctx context.Context, song *music.Song) (int, error) {
	if err := song.Validate(); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	peers := l.catalog.Songs()
	id := l.catalog.Add(song)
	l.titles.Insert(id, song.Title)
	l.genres.Add(id, song.Genre)
	l.graph.Insert(song, peers)
	return id, nil
}

// RemoveSong deletes the song from the catalog and cascades the removal to
// every dependent structure. Returns false, not an error, when the id is
// absent. History entries are skipped lazily on Previous rather than
// rewritten here.
func (l *Library) RemoveSong(ctx context.Context, id int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	song, ok := l.catalog.Get(id)
	if !ok {
		return false, nil
	}
	l.catalog.Remove(id)
	l.titles.Remove(id, song.Title)
	l.genres.Remove(id, song.Genre)
	l.graph.RemoveVertex(id)
	l.playlists.PurgeSong(id)
	l.seq.PurgeQueue(id)
	if l.seq.Current() == id {
		l.seq.ClearCurrent()
	}
	return true, nil
}

// GetSong returns the song with the given id.
func (l *Library) GetSong(ctx context.Context, id int) (*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	song, ok := l.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	return song, nil
}

// GetSongs returns all songs in catalog insertion order.
func (l *Library) GetSongs(ctx context.Context) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.catalog.Songs(), nil
}

// SongCount returns the catalog size.
func (l *Library) SongCount(ctx context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.catalog.Len(), nil
}

// UpdateSong applies a partial metadata patch. A title change reindexes the
// search tree, a genre change rebuckets, and any artist/genre/year change
// recomputes the song's graph neighborhood.
func (l *Library) UpdateSong(ctx context.Context, id int, update music.SongUpdate) (*music.Song, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	song, ok := l.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	if update.Empty() {
		return song, nil
	}

	patched := *song
	if update.Title != nil {
		patched.Title = *update.Title
	}
	if update.Artist != nil {
		patched.Artist = *update.Artist
	}
	if update.Album != nil {
		patched.Album = *update.Album
	}
	if update.Genre != nil {
		patched.Genre = *update.Genre
	}
	if update.Year != nil {
		patched.Year = *update.Year
	}
	if update.IsFavorite != nil {
		patched.IsFavorite = *update.IsFavorite
	}
	if err := patched.Validate(); err != nil {
		return nil, err
	}

	oldTitle, oldGenre := song.Title, song.Genre
	similarityChanged := patched.Artist != song.Artist ||
		patched.Genre != song.Genre || patched.Year != song.Year

	*song = patched
	if NormalizeTitle(oldTitle) != NormalizeTitle(song.Title) {
		l.titles.Remove(id, oldTitle)
		l.titles.Insert(id, song.Title)
	}
	l.genres.Reindex(id, oldGenre, song.Genre)
	if similarityChanged {
		l.graph.Recompute(song, l.catalog.Songs())
	}
	return song, nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (l *Library) ToggleFavorite(ctx context.Context, id int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	song, ok := l.catalog.Get(id)
	if !ok {
		return false, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	song.IsFavorite = !song.IsFavorite
	return song.IsFavorite, nil
}

// GetFavorites returns all favorite songs in catalog order.
func (l *Library) GetFavorites(ctx context.Context) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*music.Song
	for _, song := range l.catalog.Songs() {
		if song.IsFavorite {
			out = append(out, song)
		}
	}
	return out, nil
}

// SearchSongs performs a case-insensitive substring match against all titles.
// Results come back in catalog insertion order.
func (l *Library) SearchSongs(ctx context.Context, query string) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := l.titles.Match(query)
	sort.Slice(ids, func(i, j int) bool {
		pi, _ := l.catalog.Position(ids[i])
		pj, _ := l.catalog.Position(ids[j])
		return pi < pj
	})
	out := make([]*music.Song, 0, len(ids))
	for _, id := range ids {
		if song, ok := l.catalog.Get(id); ok {
			out = append(out, song)
		}
	}
	return out, nil
}

// GetGenres lists all genre names in canonical display form.
func (l *Library) GetGenres(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.genres.Genres(), nil
}

// GetSongsByGenre returns the genre's bucket. Unknown genre names return an
// empty result, not an error.
func (l *Library) GetSongsByGenre(ctx context.Context, genre string) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := l.genres.Songs(genre)
	out := make([]*music.Song, 0, len(ids))
	for _, id := range ids {
		if song, ok := l.catalog.Get(id); ok {
			out = append(out, song)
		}
	}
	return out, nil
}

// GetNeighbors returns the song's graph neighbors in ascending id order.
func (l *Library) GetNeighbors(ctx context.Context, id int) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if _, ok := l.catalog.Get(id); !ok {
		return nil, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	var out []*music.Song
	for _, neighborID := range l.graph.Neighbors(id) {
		if song, ok := l.catalog.Get(neighborID); ok {
			out = append(out, song)
		}
	}
	return out, nil
}

// Recommend returns up to limit neighbor songs ranked by shared similarity
// reasons (descending) with catalog insertion order as the deterministic
// tie-break. The seed song is never included and the result is never padded
// with unrelated songs.
func (l *Library) Recommend(ctx context.Context, id int, limit int) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.recommendLocked(id, limit)
}

func (l *Library) recommendLocked(id int, limit int) ([]*music.Song, error) {
	seed, ok := l.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	if limit <= 0 {
		return nil, nil
	}
	type ranked struct {
		song   *music.Song
		weight int
		pos    int
	}
	var candidates []ranked
	for _, neighborID := range l.graph.Neighbors(id) {
		song, ok := l.catalog.Get(neighborID)
		if !ok {
			continue
		}
		pos, _ := l.catalog.Position(neighborID)
		candidates = append(candidates, ranked{
			song:   song,
			weight: SimilarityWeight(seed, song),
			pos:    pos,
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight > candidates[j].weight
		}
		return candidates[i].pos < candidates[j].pos
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]*music.Song, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.song)
	}
	return out, nil
}

// CreatePlaylist registers an empty playlist. Creating an existing name is
// a no-op, not an error.
func (l *Library) CreatePlaylist(ctx context.Context, name string) error {
	if err := validatePlaylistName(name); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.playlists.Create(name)
	return nil
}

// DeletePlaylist removes the playlist, dropping the selection when it was
// the selected one. Returns false, not an error, when the name is absent.
func (l *Library) DeletePlaylist(ctx context.Context, name string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.playlists.Delete(name) {
		return false, nil
	}
	if l.playlist == name {
		l.playlist = ""
	}
	return true, nil
}

// ListPlaylists returns all playlist names, sorted case-insensitively.
func (l *Library) ListPlaylists(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.playlists.Names(), nil
}

// AddToPlaylist appends the song to the playlist, creating the playlist on
// first use. Duplicates are allowed.
func (l *Library) AddToPlaylist(ctx context.Context, name string, id int) error {
	if err := validatePlaylistName(name); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.catalog.Get(id); !ok {
		return fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	l.playlists.Add(name, id)
	return nil
}

// RemoveFromPlaylist drops the first occurrence of the song from the
// playlist. Returns false when the playlist or the entry is absent.
func (l *Library) RemoveFromPlaylist(ctx context.Context, name string, id int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.playlists.Remove(name, id), nil
}

// GetPlaylistSongs returns the playlist's songs front-to-back.
func (l *Library) GetPlaylistSongs(ctx context.Context, name string) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids, ok := l.playlists.Songs(name)
	if !ok {
		return nil, fmt.Errorf("%w: playlist %q", music.ErrNotFound, name)
	}
	out := make([]*music.Song, 0, len(ids))
	for _, id := range ids {
		if song, ok := l.catalog.Get(id); ok {
			out = append(out, song)
		}
	}
	return out, nil
}

// SelectPlaylist makes the playlist drive Next and Previous ahead of the
// queue and the history stack.
func (l *Library) SelectPlaylist(ctx context.Context, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.playlists.Exists(name) {
		return fmt.Errorf("%w: playlist %q", music.ErrNotFound, name)
	}
	l.playlist = name
	return nil
}

// ClearPlaylistSelection returns Next and Previous to queue/history order.
func (l *Library) ClearPlaylistSelection(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.playlist = ""
	return nil
}

// CurrentPlaylist returns the selected playlist name, "" when none.
func (l *Library) CurrentPlaylist(ctx context.Context) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.playlist, nil
}

func validatePlaylistName(name string) error {
	if len(name) == 0 || len(name) > 200 {
		return fmt.Errorf("%w: playlist name must be 1-200 characters", music.ErrValidation)
	}
	return nil
}

// Play makes the song current, pushing the previously playing song onto
// history on a real transition. It does not consult the queue.
func (l *Library) Play(ctx context.Context, id int) (*music.Song, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.playLocked(id)
}

func (l *Library) playLocked(id int) (*music.Song, error) {
	song, ok := l.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	if l.seq.Current() != id {
		song.PlayCount++
	}
	l.seq.Play(id)
	return song, nil
}

// Next picks the next song. A selected playlist wins: the entry after the
// current song plays first. Then the queue front; with an empty queue and a
// song already playing, the similar fallback policy tries the top-ranked
// graph neighbor before advancing in catalog order with wraparound. When
// idle it starts from the front of the catalog.
func (l *Library) Next(ctx context.Context) (*music.Song, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if current := l.seq.Current(); l.playlist != "" && current != 0 {
		if id, ok := l.playlists.NextOf(l.playlist, current); ok {
			return l.playLocked(id)
		}
	}
	if id, ok := l.seq.PopQueue(); ok {
		// queued ids are purged on removal, so this should always resolve;
		// the existence check in playLocked still guards the invariant
		return l.playLocked(id)
	}
	if l.catalog.Len() == 0 {
		return nil, music.ErrEmptyLibrary
	}
	current := l.seq.Current()
	if current == 0 {
		first, _ := l.catalog.First()
		return l.playLocked(first)
	}
	if l.fallback == FallbackSimilar {
		if recs, err := l.recommendLocked(current, 1); err == nil && len(recs) > 0 {
			return l.playLocked(recs[0].ID)
		}
	}
	next, ok := l.catalog.NextAfter(current)
	if !ok {
		return nil, music.ErrEmptyLibrary
	}
	return l.playLocked(next)
}

// Previous steps back. A selected playlist wins: the entry before the
// current song plays first. Otherwise it pops the history stack, discarding
// ids of deleted songs, and makes the popped song current without pushing
// the replaced song back. When the stack is exhausted it fails with
// ErrNoHistory and the current song keeps playing.
func (l *Library) Previous(ctx context.Context) (*music.Song, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if current := l.seq.Current(); l.playlist != "" && current != 0 {
		if id, ok := l.playlists.PrevOf(l.playlist, current); ok {
			song, exists := l.catalog.Get(id)
			if exists {
				song.PlayCount++
				l.seq.SetCurrent(id)
				return song, nil
			}
		}
	}
	id, ok := l.seq.PopHistory(func(id int) bool {
		_, exists := l.catalog.Get(id)
		return exists
	})
	if !ok {
		return nil, music.ErrNoHistory
	}
	song, _ := l.catalog.Get(id)
	song.PlayCount++
	l.seq.SetCurrent(id)
	return song, nil
}

// Enqueue appends the song to the back of the queue. Duplicates are allowed.
func (l *Library) Enqueue(ctx context.Context, id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.catalog.Get(id); !ok {
		return fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	l.seq.Enqueue(id)
	return nil
}

// GetQueue returns the queued songs front-to-back.
func (l *Library) GetQueue(ctx context.Context) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*music.Song
	for _, id := range l.seq.QueueIDs() {
		if song, ok := l.catalog.Get(id); ok {
			out = append(out, song)
		}
	}
	return out, nil
}

// GetHistory returns up to limit previously played songs, most recent first.
// Stale ids of deleted songs are filtered from the view but stay on the stack
// for the lazy skip in Previous. limit <= 0 means no cap.
func (l *Library) GetHistory(ctx context.Context, limit int) ([]*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*music.Song
	for _, id := range l.seq.HistoryIDs() {
		song, ok := l.catalog.Get(id)
		if !ok {
			continue
		}
		out = append(out, song)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Current returns the currently playing song, or nil when idle.
func (l *Library) Current(ctx context.Context) (*music.Song, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id := l.seq.Current()
	if id == 0 {
		return nil, nil
	}
	song, ok := l.catalog.Get(id)
	if !ok {
		return nil, nil
	}
	return song, nil
}

// Reload replaces the whole index with the scan result, in scan order. The
// sequencer and playlists are reset, since ids are reassigned, and the graph
// is rebuilt from scratch. Entries without a title are skipped rather than
// failing the whole scan.
func (l *Library) Reload(ctx context.Context, entries []music.ScannedSong) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.catalog = NewCatalog()
	l.titles = NewSearchTree()
	l.genres = NewGenreIndex()
	l.playlists.Reset()
	l.playlist = ""
	l.seq.Reset()
	for _, entry := range entries {
		song := &music.Song{
			Title:           entry.Title,
			Artist:          entry.Artist,
			Album:           entry.Album,
			Genre:           entry.Genre,
			Year:            entry.Year,
			DurationSeconds: entry.DurationSeconds,
			FilePath:        entry.FilePath,
		}
		if err := song.Validate(); err != nil {
			continue
		}
		id := l.catalog.Add(song)
		l.titles.Insert(id, song.Title)
		l.genres.Add(id, song.Genre)
	}
	l.graph.Rebuild(l.catalog.Songs())
	return l.catalog.Len(), nil
}
