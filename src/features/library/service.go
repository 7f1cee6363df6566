package library

import (
	"context"
	"log/slog"

	"sonicwave/src/features/config"
	"sonicwave/src/features/metrics"
	"sonicwave/src/music"
)

// Service is the domain service for the library feature: enumerate, search,
// browse by genre, favorites and admin edits.
type Service struct {
	library       music.Library
	configManager *config.Manager
}

// NewService creates a new library service.
func NewService(lib music.Library, cfgManager *config.Manager) *Service {
	return &Service{
		library:       lib,
		configManager: cfgManager,
	}
}

// GetSongs returns all songs from the library in catalog order.
func (s *Service) GetSongs(ctx context.Context) ([]*music.Song, error) {
	slog.Debug("GetSongs service called")
	songs, err := s.library.GetSongs(ctx)
	if err != nil {
		slog.Error("GetSongs failed", "error", err)
		return nil, err
	}
	slog.Debug("GetSongs completed", "count", len(songs))
	return songs, nil
}

// GetSong returns a single song from the library.
func (s *Service) GetSong(ctx context.Context, id int) (*music.Song, error) {
	slog.Debug("GetSong service called", "id", id)
	song, err := s.library.GetSong(ctx, id)
	if err != nil {
		slog.Error("GetSong failed", "id", id, "error", err)
		return nil, err
	}
	slog.Debug("GetSong completed", "id", id)
	return song, nil
}

// GetSongCount returns the total count of songs in the library.
func (s *Service) GetSongCount(ctx context.Context) (int, error) {
	slog.Debug("GetSongCount service called")
	count, err := s.library.SongCount(ctx)
	if err != nil {
		slog.Error("GetSongCount failed", "error", err)
		return 0, err
	}
	slog.Debug("GetSongCount completed", "count", count)
	return count, nil
}

// SearchSongs performs a case-insensitive substring title search.
func (s *Service) SearchSongs(ctx context.Context, query string) ([]*music.Song, error) {
	slog.Debug("SearchSongs service called", "query", query)
	songs, err := s.library.SearchSongs(ctx, query)
	if err != nil {
		slog.Error("SearchSongs failed", "query", query, "error", err)
		return nil, err
	}
	metrics.SearchesTotal.Inc()
	slog.Debug("SearchSongs completed", "query", query, "count", len(songs))
	return songs, nil
}

// GetGenres returns all genre names known to the library.
func (s *Service) GetGenres(ctx context.Context) ([]string, error) {
	slog.Debug("GetGenres service called")
	genres, err := s.library.GetGenres(ctx)
	if err != nil {
		slog.Error("GetGenres failed", "error", err)
		return nil, err
	}
	slog.Debug("GetGenres completed", "count", len(genres))
	return genres, nil
}

// GetSongsByGenre returns the songs in a genre bucket.
func (s *Service) GetSongsByGenre(ctx context.Context, genre string) ([]*music.Song, error) {
	slog.Debug("GetSongsByGenre service called", "genre", genre)
	songs, err := s.library.GetSongsByGenre(ctx, genre)
	if err != nil {
		slog.Error("GetSongsByGenre failed", "genre", genre, "error", err)
		return nil, err
	}
	slog.Debug("GetSongsByGenre completed", "genre", genre, "count", len(songs))
	return songs, nil
}

// Recommend returns up to limit songs similar to the given one.
func (s *Service) Recommend(ctx context.Context, id int, limit int) ([]*music.Song, error) {
	slog.Debug("Recommend service called", "id", id, "limit", limit)
	songs, err := s.library.Recommend(ctx, id, limit)
	if err != nil {
		slog.Error("Recommend failed", "id", id, "error", err)
		return nil, err
	}
	slog.Debug("Recommend completed", "id", id, "count", len(songs))
	return songs, nil
}

// GetNeighbors returns the songs directly connected to the given one in the
// similarity graph.
func (s *Service) GetNeighbors(ctx context.Context, id int) ([]*music.Song, error) {
	slog.Debug("GetNeighbors service called", "id", id)
	songs, err := s.library.GetNeighbors(ctx, id)
	if err != nil {
		slog.Error("GetNeighbors failed", "id", id, "error", err)
		return nil, err
	}
	slog.Debug("GetNeighbors completed", "id", id, "count", len(songs))
	return songs, nil
}

// UpdateSong applies a partial metadata patch to a song.
func (s *Service) UpdateSong(ctx context.Context, id int, update music.SongUpdate) (*music.Song, error) {
	slog.Debug("UpdateSong service called", "id", id)
	song, err := s.library.UpdateSong(ctx, id, update)
	if err != nil {
		slog.Error("UpdateSong failed", "id", id, "error", err)
		return nil, err
	}
	slog.Debug("UpdateSong completed", "id", id, "title", song.Title)
	return song, nil
}

// DeleteSong removes a song from the library. Returns false when the id was
// already gone.
func (s *Service) DeleteSong(ctx context.Context, id int) (bool, error) {
	slog.Debug("DeleteSong service called", "id", id)
	removed, err := s.library.RemoveSong(ctx, id)
	if err != nil {
		slog.Error("DeleteSong failed", "id", id, "error", err)
		return false, err
	}
	if removed {
		if count, err := s.library.SongCount(ctx); err == nil {
			metrics.SongsInLibrary.Set(float64(count))
		}
	}
	slog.Debug("DeleteSong completed", "id", id, "removed", removed)
	return removed, nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *Service) ToggleFavorite(ctx context.Context, id int) (bool, error) {
	slog.Debug("ToggleFavorite service called", "id", id)
	favorite, err := s.library.ToggleFavorite(ctx, id)
	if err != nil {
		slog.Error("ToggleFavorite failed", "id", id, "error", err)
		return false, err
	}
	slog.Debug("ToggleFavorite completed", "id", id, "favorite", favorite)
	return favorite, nil
}

// GetFavorites returns all favorite songs.
func (s *Service) GetFavorites(ctx context.Context) ([]*music.Song, error) {
	slog.Debug("GetFavorites service called")
	songs, err := s.library.GetFavorites(ctx)
	if err != nil {
		slog.Error("GetFavorites failed", "error", err)
		return nil, err
	}
	slog.Debug("GetFavorites completed", "count", len(songs))
	return songs, nil
}
