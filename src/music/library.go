package music

import (
	"context"
)

// Library is the interface for the in-memory library index core.
// It's our primary repository interface for the library domain: all catalog
// mutations flow through it so the search tree, genre buckets, similarity
// graph and sequencer stay consistent with the catalog.
type Library interface {
	// Catalog methods
	AddSong(ctx context.Context, song *Song) (int, error)
	RemoveSong(ctx context.Context, id int) (bool, error)
	GetSong(ctx context.Context, id int) (*Song, error)
	GetSongs(ctx context.Context) ([]*Song, error)
	SongCount(ctx context.Context) (int, error)
	UpdateSong(ctx context.Context, id int, update SongUpdate) (*Song, error)
	ToggleFavorite(ctx context.Context, id int) (bool, error)
	GetFavorites(ctx context.Context) ([]*Song, error)

	// Search and browse methods
	SearchSongs(ctx context.Context, query string) ([]*Song, error)
	GetGenres(ctx context.Context) ([]string, error)
	GetSongsByGenre(ctx context.Context, genre string) ([]*Song, error)

	// Similarity methods
	GetNeighbors(ctx context.Context, id int) ([]*Song, error)
	Recommend(ctx context.Context, id int, limit int) ([]*Song, error)

	// Playlist methods
	CreatePlaylist(ctx context.Context, name string) error
	DeletePlaylist(ctx context.Context, name string) (bool, error)
	ListPlaylists(ctx context.Context) ([]string, error)
	AddToPlaylist(ctx context.Context, name string, id int) error
	RemoveFromPlaylist(ctx context.Context, name string, id int) (bool, error)
	GetPlaylistSongs(ctx context.Context, name string) ([]*Song, error)
	SelectPlaylist(ctx context.Context, name string) error
	ClearPlaylistSelection(ctx context.Context) error
	CurrentPlaylist(ctx context.Context) (string, error)

	// Sequencer methods
	Play(ctx context.Context, id int) (*Song, error)
	Next(ctx context.Context) (*Song, error)
	Previous(ctx context.Context) (*Song, error)
	Enqueue(ctx context.Context, id int) error
	GetQueue(ctx context.Context) ([]*Song, error)
	GetHistory(ctx context.Context, limit int) ([]*Song, error)
	Current(ctx context.Context) (*Song, error)

	// Reload replaces the whole index with the given scan result, in scan
	// order, and returns the number of songs indexed.
	Reload(ctx context.Context, entries []ScannedSong) (int, error)
}
