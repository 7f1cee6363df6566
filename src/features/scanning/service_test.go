package scanning

import (
	"context"
	"errors"
	"testing"

	"sonicwave/src/music"
)

// MockScanner is a mock implementation of music.Scanner
type MockScanner struct {
	entries []music.ScannedSong
	err     error
	calls   int
}

func (m *MockScanner) Scan(ctx context.Context) ([]music.ScannedSong, error) {
	m.calls++
	return m.entries, m.err
}

// MockLibrary is a mock implementation of music.Library
type MockLibrary struct {
	music.Library // Embed interface to avoid implementing all methods for now, will panic if unused methods called
	loaded        []music.ScannedSong
	reloadErr     error
	skipTitleless bool
}

func (m *MockLibrary) Reload(ctx context.Context, entries []music.ScannedSong) (int, error) {
	if m.reloadErr != nil {
		return 0, m.reloadErr
	}
	m.loaded = nil
	for _, entry := range entries {
		if m.skipTitleless && entry.Title == "" {
			continue
		}
		m.loaded = append(m.loaded, entry)
	}
	return len(m.loaded), nil
}

func (m *MockLibrary) GetGenres(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var genres []string
	for _, entry := range m.loaded {
		if !seen[entry.Genre] {
			seen[entry.Genre] = true
			genres = append(genres, entry.Genre)
		}
	}
	return genres, nil
}

func TestRescan_ReloadsLibrary(t *testing.T) {
	scanner := &MockScanner{entries: []music.ScannedSong{
		{Title: "Nova", Artist: "Lyra", Genre: "Ambient", FilePath: "/music/nova.mp3"},
		{Title: "Orbit", Artist: "Lyra", Genre: "Ambient", FilePath: "/music/orbit.flac"},
	}}
	mockLib := &MockLibrary{}
	service := NewService(mockLib, scanner)

	result, err := service.Rescan(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Loaded != 2 {
		t.Errorf("expected 2 songs loaded, got %d", result.Loaded)
	}
	if result.Skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", result.Skipped)
	}
	if result.ScanID == "" {
		t.Error("expected a scan id")
	}
	if scanner.calls != 1 {
		t.Errorf("expected one scanner call, got %d", scanner.calls)
	}

	last := service.LastScan()
	if last == nil || last.ScanID != result.ScanID {
		t.Error("expected LastScan to report the finished scan")
	}
}

func TestRescan_ReportsSkippedEntries(t *testing.T) {
	scanner := &MockScanner{entries: []music.ScannedSong{
		{Title: "Nova", FilePath: "/music/nova.mp3"},
		{Title: "", FilePath: "/music/untitled.mp3"},
	}}
	mockLib := &MockLibrary{skipTitleless: true}
	service := NewService(mockLib, scanner)

	result, err := service.Rescan(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Loaded != 1 || result.Skipped != 1 {
		t.Errorf("expected 1 loaded and 1 skipped, got %d and %d", result.Loaded, result.Skipped)
	}
}

func TestRescan_ScannerFailure(t *testing.T) {
	scanner := &MockScanner{err: errors.New("permission denied")}
	service := NewService(&MockLibrary{}, scanner)

	if _, err := service.Rescan(context.Background()); err == nil {
		t.Fatal("expected error when scanner fails")
	}
	if service.IsScanning() {
		t.Error("expected scanning flag cleared after failure")
	}
	if service.LastScan() != nil {
		t.Error("expected no last scan after failure")
	}
}

func TestHandleFileEvents_TriggersRescan(t *testing.T) {
	scanner := &MockScanner{entries: []music.ScannedSong{{Title: "Nova", FilePath: "/music/nova.mp3"}}}
	service := NewService(&MockLibrary{}, scanner)

	events := make(chan FileEvent, 1)
	events <- FileEvent{Path: "/music", EventType: FileCreated}
	close(events)

	service.HandleFileEvents(context.Background(), events)

	if scanner.calls != 1 {
		t.Errorf("expected one rescan from file event, got %d", scanner.calls)
	}
}
