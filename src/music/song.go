package music

import (
	"fmt"
	"strings"
)

// UnknownGenre is the bucket name for songs without a declared genre.
const UnknownGenre = "Unknown"

// Song represents a single song's metadata. The catalog is the sole owner of
// Song records; every other structure holds ids only, so a favorite toggle or
// metadata edit is visible everywhere without re-sync.
type Song struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	Album           string `json:"album"`
	Genre           string `json:"genre"`
	Year            int    `json:"year"`
	DurationSeconds int    `json:"duration_seconds"`
	FilePath        string `json:"file_path"`
	PlayCount       int    `json:"play_count"`
	IsFavorite      bool   `json:"is_favorite"`
}

// Validate validates the song fields.
func (s *Song) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: song title cannot be empty", ErrValidation)
	}
	if len(s.Title) > 500 {
		return fmt.Errorf("%w: song title cannot exceed 500 characters, got %d", ErrValidation, len(s.Title))
	}
	if len(s.Artist) > 500 {
		return fmt.Errorf("%w: artist cannot exceed 500 characters, got %d", ErrValidation, len(s.Artist))
	}
	if len(s.Genre) > 100 {
		return fmt.Errorf("%w: genre cannot exceed 100 characters, got %d", ErrValidation, len(s.Genre))
	}
	if s.Year < 0 {
		return fmt.Errorf("%w: year cannot be negative, got %d", ErrValidation, s.Year)
	}
	if s.DurationSeconds < 0 {
		return fmt.Errorf("%w: duration cannot be negative, got %d", ErrValidation, s.DurationSeconds)
	}
	return nil
}

// GenreOrUnknown returns the declared genre or the Unknown bucket name.
func (s *Song) GenreOrUnknown() string {
	if strings.TrimSpace(s.Genre) == "" {
		return UnknownGenre
	}
	return s.Genre
}

// SongUpdate is a partial metadata patch. Nil fields are left untouched.
type SongUpdate struct {
	Title      *string `json:"title"`
	Artist     *string `json:"artist"`
	Album      *string `json:"album"`
	Genre      *string `json:"genre"`
	Year       *int    `json:"year"`
	IsFavorite *bool   `json:"is_favorite"`
}

// Empty reports whether the patch changes nothing.
func (u SongUpdate) Empty() bool {
	return u.Title == nil && u.Artist == nil && u.Album == nil &&
		u.Genre == nil && u.Year == nil && u.IsFavorite == nil
}
