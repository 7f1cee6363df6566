package playlists

import (
	"context"
	"log/slog"

	"sonicwave/src/music"
)

// Service manages named playlists: creation, membership and the selection
// that drives playlist-aware next/previous. All state lives in the library
// index core; the service adds logging and nothing else.
type Service struct {
	library music.Library
}

// NewService creates a new playlists service.
func NewService(library music.Library) *Service {
	return &Service{library: library}
}

// CreatePlaylist registers an empty playlist.
func (s *Service) CreatePlaylist(ctx context.Context, name string) error {
	slog.Debug("CreatePlaylist service called", "name", name)
	if err := s.library.CreatePlaylist(ctx, name); err != nil {
		slog.Error("CreatePlaylist failed", "name", name, "error", err)
		return err
	}
	slog.Debug("CreatePlaylist completed", "name", name)
	return nil
}

// DeletePlaylist removes a playlist and reports whether it existed.
func (s *Service) DeletePlaylist(ctx context.Context, name string) (bool, error) {
	slog.Debug("DeletePlaylist service called", "name", name)
	removed, err := s.library.DeletePlaylist(ctx, name)
	if err != nil {
		slog.Error("DeletePlaylist failed", "name", name, "error", err)
		return false, err
	}
	slog.Debug("DeletePlaylist completed", "name", name, "removed", removed)
	return removed, nil
}

// ListPlaylists returns all playlist names.
func (s *Service) ListPlaylists(ctx context.Context) ([]string, error) {
	slog.Debug("ListPlaylists service called")
	names, err := s.library.ListPlaylists(ctx)
	if err != nil {
		slog.Error("ListPlaylists failed", "error", err)
		return nil, err
	}
	slog.Debug("ListPlaylists completed", "count", len(names))
	return names, nil
}

// AddSong appends a song to a playlist, creating the playlist on first use.
func (s *Service) AddSong(ctx context.Context, name string, id int) error {
	slog.Debug("AddSong service called", "name", name, "id", id)
	if err := s.library.AddToPlaylist(ctx, name, id); err != nil {
		slog.Error("AddSong failed", "name", name, "id", id, "error", err)
		return err
	}
	slog.Debug("AddSong completed", "name", name, "id", id)
	return nil
}

// RemoveSong drops a song from a playlist.
func (s *Service) RemoveSong(ctx context.Context, name string, id int) (bool, error) {
	slog.Debug("RemoveSong service called", "name", name, "id", id)
	removed, err := s.library.RemoveFromPlaylist(ctx, name, id)
	if err != nil {
		slog.Error("RemoveSong failed", "name", name, "id", id, "error", err)
		return false, err
	}
	slog.Debug("RemoveSong completed", "name", name, "id", id, "removed", removed)
	return removed, nil
}

// GetSongs returns a playlist's songs in playlist order.
func (s *Service) GetSongs(ctx context.Context, name string) ([]*music.Song, error) {
	slog.Debug("GetSongs service called", "name", name)
	songs, err := s.library.GetPlaylistSongs(ctx, name)
	if err != nil {
		slog.Error("GetSongs failed", "name", name, "error", err)
		return nil, err
	}
	slog.Debug("GetSongs completed", "name", name, "count", len(songs))
	return songs, nil
}

// Select makes the playlist drive next/previous.
func (s *Service) Select(ctx context.Context, name string) error {
	slog.Debug("Select service called", "name", name)
	if err := s.library.SelectPlaylist(ctx, name); err != nil {
		slog.Error("Select failed", "name", name, "error", err)
		return err
	}
	slog.Debug("Select completed", "name", name)
	return nil
}

// Deselect returns playback to queue/history order.
func (s *Service) Deselect(ctx context.Context) error {
	slog.Debug("Deselect service called")
	if err := s.library.ClearPlaylistSelection(ctx); err != nil {
		slog.Error("Deselect failed", "error", err)
		return err
	}
	return nil
}

// Selected returns the selected playlist name, "" when none.
func (s *Service) Selected(ctx context.Context) (string, error) {
	slog.Debug("Selected service called")
	name, err := s.library.CurrentPlaylist(ctx)
	if err != nil {
		slog.Error("Selected failed", "error", err)
		return "", err
	}
	return name, nil
}
