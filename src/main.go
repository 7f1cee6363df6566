package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"sonicwave/src/features/config"
	"sonicwave/src/features/hosting"
	"sonicwave/src/features/library"
	"sonicwave/src/features/logging"
	"sonicwave/src/features/playback"
	"sonicwave/src/features/playlists"
	"sonicwave/src/features/scanning"
	"sonicwave/src/index"
	"sonicwave/src/infra/files"
	"sonicwave/src/infra/watcher"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create the in-memory library core
	lib := index.NewLibrary(index.Options{
		HistoryLimit: cfgManager.Get().Playback.HistoryLimit,
		Fallback:     index.FallbackPolicy(cfgManager.Get().Playback.Fallback),
	})

	libraryService := library.NewService(lib, cfgManager)
	playbackService := playback.NewService(lib)
	playlistsService := playlists.NewService(lib)

	// Create the scanner and load the library from disk
	scanner := files.NewDirectoryScanner(cfgManager.Get().MusicPath, cfgManager.Get().Scanner.Extensions)
	scanningService := scanning.NewService(lib, scanner)
	if _, err := scanningService.Rescan(ctx); err != nil {
		slog.Error("Initial library scan failed", "error", err)
	}

	// Start the directory watcher if enabled
	if cfgManager.Get().Scanner.Watch {
		events := make(chan scanning.FileEvent, 1)
		debounce := time.Duration(cfgManager.Get().Scanner.DebounceSeconds) * time.Second
		fsWatcher, err := watcher.NewWatcher(events, cfgManager.Get().Scanner.Extensions, debounce)
		if err != nil {
			slog.Error("Failed to create file watcher", "error", err)
		} else if err := fsWatcher.Start(ctx, cfgManager.Get().MusicPath); err != nil {
			slog.Error("Failed to start file watcher", "error", err)
		} else {
			defer fsWatcher.Stop()
			go scanningService.HandleFileEvents(ctx, events)
		}
	}

	// Create and start the Telegram bot if enabled
	var telegramBot *hosting.TelegramBot
	if cfgManager.Get().Telegram.Enabled {
		var err error
		telegramBot, err = hosting.NewTelegramBot(cfgManager, libraryService, playbackService)
		if err != nil {
			slog.Error("Failed to initialize Telegram bot", "error", err)
		} else {
			go telegramBot.Start()
			slog.Info("Telegram bot started")
		}
	}

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, libraryService, playbackService, playlistsService, scanningService)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	// Shutdown the Telegram bot
	if telegramBot != nil {
		telegramBot.Stop()
		slog.Info("Telegram bot stopped")
	}

	// Shutdown the server
	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
