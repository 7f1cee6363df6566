package library

import (
	"context"
	"fmt"
	"testing"

	"sonicwave/src/music"
)

// MockLibrary is a mock implementation of music.Library
type MockLibrary struct {
	music.Library // Embed interface to avoid implementing all methods for now, will panic if unused methods called
	songs         map[int]*music.Song
	removed       []int
}

func NewMockLibrary() *MockLibrary {
	return &MockLibrary{songs: make(map[int]*music.Song)}
}

func (m *MockLibrary) GetSong(ctx context.Context, id int) (*music.Song, error) {
	if song, ok := m.songs[id]; ok {
		return song, nil
	}
	return nil, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
}

func (m *MockLibrary) GetSongs(ctx context.Context) ([]*music.Song, error) {
	out := make([]*music.Song, 0, len(m.songs))
	for _, song := range m.songs {
		out = append(out, song)
	}
	return out, nil
}

func (m *MockLibrary) SongCount(ctx context.Context) (int, error) {
	return len(m.songs), nil
}

func (m *MockLibrary) RemoveSong(ctx context.Context, id int) (bool, error) {
	if _, ok := m.songs[id]; !ok {
		return false, nil
	}
	delete(m.songs, id)
	m.removed = append(m.removed, id)
	return true, nil
}

func (m *MockLibrary) ToggleFavorite(ctx context.Context, id int) (bool, error) {
	song, ok := m.songs[id]
	if !ok {
		return false, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	song.IsFavorite = !song.IsFavorite
	return song.IsFavorite, nil
}

func TestDeleteSong_RemovesAndReports(t *testing.T) {
	mockLib := NewMockLibrary()
	mockLib.songs[1] = &music.Song{ID: 1, Title: "Nova"}
	service := NewService(mockLib, nil)
	ctx := context.Background()

	removed, err := service.DeleteSong(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !removed {
		t.Fatal("expected song to be removed")
	}
	if len(mockLib.removed) != 1 || mockLib.removed[0] != 1 {
		t.Errorf("expected removal recorded for id 1, got %v", mockLib.removed)
	}

	removed, err = service.DeleteSong(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error on double delete, got %v", err)
	}
	if removed {
		t.Error("expected second delete to report false")
	}
}

func TestToggleFavorite_Flips(t *testing.T) {
	mockLib := NewMockLibrary()
	mockLib.songs[7] = &music.Song{ID: 7, Title: "Orbit"}
	service := NewService(mockLib, nil)
	ctx := context.Background()

	favorite, err := service.ToggleFavorite(ctx, 7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !favorite {
		t.Error("expected favorite to be true after first toggle")
	}

	if _, err := service.ToggleFavorite(ctx, 99); err == nil {
		t.Error("expected error for unknown id")
	}
}
