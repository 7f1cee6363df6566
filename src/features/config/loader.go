package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a new ConfigManager.
// If the file doesn't exist, creates a default configuration.
func Load(path string) (*Manager, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("Config file not found, creating default configuration", "path", path)
		defaultCfg := createDefaultConfig()

		if err := saveDefaultConfig(path, defaultCfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		slog.Info("Default configuration created successfully", "path", path)
		applyEnvOverrides(defaultCfg)
		manager := NewManager(defaultCfg)
		if err := manager.EnsureDirectories(); err != nil {
			return nil, err
		}
		return manager, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	manager := NewManager(&cfg)
	if err := manager.EnsureDirectories(); err != nil {
		return nil, err
	}

	return manager, nil
}

// applyEnvOverrides overrides configuration values from environment
// variables. Runs on both the loaded and the freshly created default config.
func applyEnvOverrides(cfg *Config) {
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
}

// applyDefaults fills in values the YAML file may omit.
func applyDefaults(cfg *Config) {
	if len(cfg.Scanner.Extensions) == 0 {
		cfg.Scanner.Extensions = defaultExtensions()
	}
	if cfg.Scanner.DebounceSeconds == 0 {
		cfg.Scanner.DebounceSeconds = 5
	}
	if cfg.Playback.Fallback == "" {
		cfg.Playback.Fallback = "similar"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3636
	}
}

func defaultExtensions() []string {
	return []string{".mp3", ".flac", ".ogg", ".m4a", ".wav"}
}

// createDefaultConfig creates a new Config with sensible default values
func createDefaultConfig() *Config {
	return &Config{
		MusicPath: "./music",
		Logger: Logger{
			Enabled: true,
			Level:   "info",
			Format:  "text",
		},
		Server: Server{
			PrintRoutes: false,
			Port:        3636,
		},
		Scanner: Scanner{
			Extensions:      defaultExtensions(),
			Watch:           false,
			DebounceSeconds: 5,
		},
		Playback: Playback{
			Fallback:     "similar",
			HistoryLimit: 0,
		},
		Telegram: Telegram{
			Enabled:      false,
			Token:        "", // Can be obtained with https://t.me/BotFather
			AllowedUsers: []string{"user1"},
			BotHandle:    "@SonicWaveBot",
		},
	}
}

// saveDefaultConfig saves the default configuration to the specified file path
func saveDefaultConfig(path string, cfg *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()
	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	slog.Info("Default configuration saved", "path", path)
	return nil
}
