package playback

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
	queue         []int
	current       int
}

func NewMockLibrary() *MockLibrary {
	return &MockLibrary{songs: make(map[int]*music.Song)}
}

func (m *MockLibrary) Play(ctx context.Context, id int) (*music.Song, error) {
	song, ok := m.songs[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	m.current = id
	return song, nil
}

func (m *MockLibrary) Enqueue(ctx context.Context, id int) error {
	if _, ok := m.songs[id]; !ok {
		return fmt.Errorf("%w: id %d", music.ErrNotFound, id)
	}
	m.queue = append(m.queue, id)
	return nil
}

func (m *MockLibrary) Next(ctx context.Context) (*music.Song, error) {
	if len(m.queue) > 0 {
		id := m.queue[0]
		m.queue = m.queue[1:]
		return m.Play(ctx, id)
	}
	return nil, music.ErrEmptyLibrary
}

func (m *MockLibrary) GetQueue(ctx context.Context) ([]*music.Song, error) {
	out := make([]*music.Song, 0, len(m.queue))
	for _, id := range m.queue {
		out = append(out, m.songs[id])
	}
	return out, nil
}

func (m *MockLibrary) Current(ctx context.Context) (*music.Song, error) {
	if m.current == 0 {
		return nil, nil
	}
	return m.songs[m.current], nil
}

func TestPlay_SetsCurrent(t *testing.T) {
	mockLib := NewMockLibrary()
	mockLib.songs[1] = &music.Song{ID: 1, Title: "Nova", Artist: "Lyra"}
	service := NewService(mockLib)
	ctx := context.Background()

	song, err := service.Play(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if song.Title != "Nova" {
		t.Errorf("expected Nova, got %s", song.Title)
	}

	current, err := service.Current(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if current == nil || current.ID != 1 {
		t.Errorf("expected current song 1, got %v", current)
	}
}

func TestPlay_UnknownSong(t *testing.T) {
	service := NewService(NewMockLibrary())

	if _, err := service.Play(context.Background(), 42); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestEnqueue_ThenNextConsumesQueue(t *testing.T) {
	mockLib := NewMockLibrary()
	mockLib.songs[1] = &music.Song{ID: 1, Title: "Nova"}
	mockLib.songs[2] = &music.Song{ID: 2, Title: "Orbit"}
	service := NewService(mockLib)
	ctx := context.Background()

	if err := service.Enqueue(ctx, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	queued, err := service.GetQueue(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(queued) != 1 || queued[0].ID != 2 {
		t.Fatalf("expected queue [2], got %v", queued)
	}

	song, err := service.Next(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if song.ID != 2 {
		t.Errorf("expected song 2 from queue, got %d", song.ID)
	}

	queued, _ = service.GetQueue(ctx)
	if len(queued) != 0 {
		t.Errorf("expected empty queue after Next, got %d entries", len(queued))
	}
}

func TestCurrent_IdleReturnsNil(t *testing.T) {
	service := NewService(NewMockLibrary())

	song, err := service.Current(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if song != nil {
		t.Errorf("expected nil current song when idle, got %v", song)
	}
}
