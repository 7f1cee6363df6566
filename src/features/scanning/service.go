package scanning

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"sonicwave/src/features/metrics"
	"sonicwave/src/music"
)

// ScanResult summarizes a finished scan.
type ScanResult struct {
	ScanID    string    `json:"scan_id"`
	Loaded    int       `json:"loaded"`
	Skipped   int       `json:"skipped"`
	Duration  string    `json:"duration"`
	StartedAt time.Time `json:"started_at"`
}

// Service scans the music directory and reloads the library index from what
// it finds. Only one scan runs at a time; a second request while a scan is in
// flight gets an error instead of a queued scan.
type Service struct {
	library  music.Library
	scanner  music.Scanner
	mu       sync.Mutex
	scanning bool
	lastScan *ScanResult
}

// NewService creates a new scanning service.
func NewService(library music.Library, scanner music.Scanner) *Service {
	return &Service{library: library, scanner: scanner}
}

// Rescan walks the music directory and replaces the library contents with the
// files found there.
func (s *Service) Rescan(ctx context.Context) (*ScanResult, error) {
	s.mu.Lock()
	if s.scanning {
		s.mu.Unlock()
		return nil, fmt.Errorf("a scan is already in progress")
	}
	s.scanning = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.scanning = false
		s.mu.Unlock()
	}()

	scanID := uuid.New().String()
	started := time.Now()
	slog.Info("Starting library scan", "scanID", scanID)

	entries, err := s.scanner.Scan(ctx)
	if err != nil {
		slog.Error("Library scan failed", "scanID", scanID, "error", err)
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	loaded, err := s.library.Reload(ctx, entries)
	if err != nil {
		slog.Error("Library reload failed", "scanID", scanID, "error", err)
		return nil, fmt.Errorf("reload failed: %w", err)
	}

	metrics.ScansTotal.Inc()
	metrics.SongsInLibrary.Set(float64(loaded))
	if genres, err := s.library.GetGenres(ctx); err == nil {
		metrics.GenresInLibrary.Set(float64(len(genres)))
	}

	result := &ScanResult{
		ScanID:    scanID,
		Loaded:    loaded,
		Skipped:   len(entries) - loaded,
		Duration:  time.Since(started).Round(time.Millisecond).String(),
		StartedAt: started,
	}

	s.mu.Lock()
	s.lastScan = result
	s.mu.Unlock()

	slog.Info("Library scan finished", "scanID", scanID, "loaded", loaded, "skipped", result.Skipped, "duration", result.Duration)
	return result, nil
}

// LastScan returns the result of the most recent scan, or nil if none ran yet.
func (s *Service) LastScan() *ScanResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastScan
}

// IsScanning reports whether a scan is currently running.
func (s *Service) IsScanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// HandleFileEvents consumes watcher events and triggers rescans. It returns
// when the context is cancelled or the channel closes.
func (s *Service) HandleFileEvents(ctx context.Context, events <-chan FileEvent) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			slog.Info("File event received, rescanning library", "path", event.Path, "type", event.EventType)
			if _, err := s.Rescan(ctx); err != nil {
				slog.Error("Rescan after file event failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
