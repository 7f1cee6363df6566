package playback

import (
	"context"
	"log/slog"

	"sonicwave/src/features/metrics"
	"sonicwave/src/music"
)

// Service provides playback sequencing: play, next, previous and the explicit
// queue. It owns no state of its own; every decision is delegated to the
// library index core so the queue, history and current song stay consistent
// with the catalog.
type Service struct {
	library music.Library
}

// NewService creates a new playback service
func NewService(library music.Library) *Service {
	return &Service{library: library}
}

// Play starts playing the given song, pushing the previous one onto history.
func (s *Service) Play(ctx context.Context, id int) (*music.Song, error) {
	slog.Debug("Play service called", "id", id)
	song, err := s.library.Play(ctx, id)
	if err != nil {
		slog.Error("Play failed", "id", id, "error", err)
		return nil, err
	}
	metrics.PlaysTotal.Inc()
	slog.Debug("Play completed", "id", id, "title", song.Title)
	return song, nil
}

// Next advances playback: queue front first, then the similarity graph, then
// catalog order with wraparound.
func (s *Service) Next(ctx context.Context) (*music.Song, error) {
	slog.Debug("Next service called")
	song, err := s.library.Next(ctx)
	if err != nil {
		slog.Error("Next failed", "error", err)
		return nil, err
	}
	metrics.PlaysTotal.Inc()
	slog.Debug("Next completed", "id", song.ID, "title", song.Title)
	return song, nil
}

// Previous steps back through play history.
func (s *Service) Previous(ctx context.Context) (*music.Song, error) {
	slog.Debug("Previous service called")
	song, err := s.library.Previous(ctx)
	if err != nil {
		slog.Error("Previous failed", "error", err)
		return nil, err
	}
	metrics.PlaysTotal.Inc()
	slog.Debug("Previous completed", "id", song.ID, "title", song.Title)
	return song, nil
}

// Enqueue appends a song to the back of the up-next queue.
func (s *Service) Enqueue(ctx context.Context, id int) error {
	slog.Debug("Enqueue service called", "id", id)
	if err := s.library.Enqueue(ctx, id); err != nil {
		slog.Error("Enqueue failed", "id", id, "error", err)
		return err
	}
	slog.Debug("Enqueue completed", "id", id)
	return nil
}

// GetQueue returns the queued songs front-to-back.
func (s *Service) GetQueue(ctx context.Context) ([]*music.Song, error) {
	slog.Debug("GetQueue service called")
	songs, err := s.library.GetQueue(ctx)
	if err != nil {
		slog.Error("GetQueue failed", "error", err)
		return nil, err
	}
	slog.Debug("GetQueue completed", "count", len(songs))
	return songs, nil
}

// GetHistory returns up to limit previously played songs, most recent first.
func (s *Service) GetHistory(ctx context.Context, limit int) ([]*music.Song, error) {
	slog.Debug("GetHistory service called", "limit", limit)
	songs, err := s.library.GetHistory(ctx, limit)
	if err != nil {
		slog.Error("GetHistory failed", "error", err)
		return nil, err
	}
	slog.Debug("GetHistory completed", "count", len(songs))
	return songs, nil
}

// Current returns the currently playing song, or nil when idle.
func (s *Service) Current(ctx context.Context) (*music.Song, error) {
	slog.Debug("Current service called")
	song, err := s.library.Current(ctx)
	if err != nil {
		slog.Error("Current failed", "error", err)
		return nil, err
	}
	return song, nil
}
