package files

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"sonicwave/src/infra/tag"
	"sonicwave/src/music"
)

// DirectoryScanner is the infrastructure implementation of the music.Scanner
// interface. It walks the music path and reads tags from every supported file.
type DirectoryScanner struct {
	musicPath  string
	extensions map[string]bool
	reader     *tag.TagReader
}

// NewDirectoryScanner creates a new directory scanner for the given path.
func NewDirectoryScanner(musicPath string, extensions []string) *DirectoryScanner {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}
	return &DirectoryScanner{
		musicPath:  musicPath,
		extensions: allowed,
		reader:     tag.NewTagReader(),
	}
}

// Scan walks the music directory and returns one entry per supported audio
// file, in lexical path order. Files whose tags cannot be read are skipped
// with a log line rather than failing the whole scan.
func (s *DirectoryScanner) Scan(ctx context.Context) ([]music.ScannedSong, error) {
	var paths []string
	err := filepath.WalkDir(s.musicPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if s.extensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk music path %s: %w", s.musicPath, err)
	}
	sort.Strings(paths)

	entries := make([]music.ScannedSong, 0, len(paths))
	for _, path := range paths {
		entry, err := s.reader.ReadFileTags(ctx, path)
		if err != nil {
			slog.Warn("Skipping unreadable file", "path", path, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
