package config

// Config holds the application configuration.
type Config struct {
	MusicPath string   `yaml:"musicPath" validate:"required"`
	Logger    Logger   `yaml:"logger"`
	Server    Server   `yaml:"server"`
	Scanner   Scanner  `yaml:"scanner"`
	Playback  Playback `yaml:"playback"`
	Telegram  Telegram `yaml:"telegram"`
}

// Server holds the configuration for the Fiber server Config
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Scanner holds the configuration for the music directory scanner
type Scanner struct {
	// Extensions lists the audio file extensions picked up by a scan.
	Extensions []string `yaml:"extensions"`
	// Watch enables the fsnotify watcher that rescans on directory changes.
	Watch bool `yaml:"watch"`
	// DebounceSeconds is how long the watcher waits for the directory to
	// settle before triggering a rescan.
	DebounceSeconds int `yaml:"debounce_seconds"`
}

// Playback holds the sequencer policy knobs.
type Playback struct {
	// Fallback selects what Next plays when the queue is empty:
	// "similar" (graph first, then catalog order) or "linear" (catalog order only).
	Fallback string `yaml:"fallback" validate:"omitempty,oneof=similar linear"`
	// HistoryLimit caps the history stack; 0 means unbounded.
	HistoryLimit int `yaml:"history_limit" validate:"gte=0"`
}

type Telegram struct {
	Enabled      bool     `yaml:"enabled"`
	Token        string   `yaml:"token"`
	AllowedUsers []string `yaml:"allowedUsers"`
	BotHandle    string   `yaml:"bot_handle"`
}
