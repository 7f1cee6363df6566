package music

import (
	"errors"
	"strings"
	"testing"
)

func TestSongValidate_EmptyTitle(t *testing.T) {
	song := &Song{Title: "   "}
	err := song.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty title")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestSongValidate_Valid(t *testing.T) {
	song := &Song{Title: "Nova", Artist: "Orbital", Genre: "Electronic", Year: 2020}
	if err := song.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSongValidate_TitleTooLong(t *testing.T) {
	song := &Song{Title: strings.Repeat("a", 501)}
	if err := song.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestSongValidate_NegativeYear(t *testing.T) {
	song := &Song{Title: "Nova", Year: -1}
	if err := song.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestGenreOrUnknown(t *testing.T) {
	song := &Song{Title: "Nova"}
	if got := song.GenreOrUnknown(); got != UnknownGenre {
		t.Errorf("expected %q, got %q", UnknownGenre, got)
	}
	song.Genre = "Jazz"
	if got := song.GenreOrUnknown(); got != "Jazz" {
		t.Errorf("expected Jazz, got %q", got)
	}
}

func TestSongUpdateEmpty(t *testing.T) {
	if !(SongUpdate{}).Empty() {
		t.Error("zero SongUpdate should be empty")
	}
	title := "Orbit"
	if (SongUpdate{Title: &title}).Empty() {
		t.Error("patch with title should not be empty")
	}
}
