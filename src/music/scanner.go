package music

import "context"

// ScannedSong is one entry of a scan result. Field order establishes catalog
// insertion order when the entries are loaded.
type ScannedSong struct {
	Title           string
	Artist          string
	Album           string
	Genre           string
	Year            int
	DurationSeconds int
	FilePath        string
}

// Scanner supplies an ordered sequence of scanned songs at startup and on
// manual rescan.
type Scanner interface {
	Scan(ctx context.Context) ([]ScannedSong, error)
}
