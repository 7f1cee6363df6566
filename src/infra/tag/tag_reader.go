package tag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"sonicwave/src/music"
)

// TagReader reads song metadata from audio files using the dhowden/tag library.
type TagReader struct{}

// NewTagReader creates a new TagReader
func NewTagReader() *TagReader {
	return &TagReader{}
}

// ReadFileTags reads metadata from a music file. Files with no usable tags
// still produce an entry: the title falls back to the file name.
func (r *TagReader) ReadFileTags(ctx context.Context, filePath string) (music.ScannedSong, error) {
	entry := music.ScannedSong{FilePath: filePath}

	file, err := os.Open(filePath)
	if err != nil {
		return entry, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	tags, err := tag.ReadFrom(file)
	if err != nil {
		// Untagged file, fall back to the file name
		entry.Title = titleFromFilename(filePath)
		return entry, nil
	}

	entry.Title = strings.TrimSpace(tags.Title())
	if entry.Title == "" {
		entry.Title = titleFromFilename(filePath)
	}
	entry.Artist = strings.TrimSpace(tags.Artist())
	entry.Album = strings.TrimSpace(tags.Album())
	entry.Genre = strings.TrimSpace(tags.Genre())
	entry.Year = tags.Year()

	return entry, nil
}

// titleFromFilename derives a display title from the file name, with
// underscores treated as spaces.
func titleFromFilename(filePath string) string {
	base := filepath.Base(filePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	return strings.TrimSpace(base)
}
