package hosting

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"sonicwave/src/features/config"
	"sonicwave/src/features/library"
	"sonicwave/src/features/metrics"
	"sonicwave/src/features/playback"
	"sonicwave/src/features/playlists"
	"sonicwave/src/features/scanning"
	"sonicwave/src/features/ui"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Manager, libraryService *library.Service, playbackService *playback.Service, playlistsService *playlists.Service, scanningService *scanning.Service) *Server {
	engine := html.New("./views", ".html")
	engine.Debug(cfg.Get().Logger.Level == "debug")
	engine.AddFunc("duration", func(seconds int) string {
		if seconds == 0 {
			return "0:00"
		}
		minutes := seconds / 60
		remainingSeconds := seconds % 60
		return fmt.Sprintf("%d:%02d", minutes, remainingSeconds)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("Internal Server Error", "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
		AppName:               "SonicWave",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
	})

	app.Use(LogAllRequestsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	uiHandler := ui.NewHandler(libraryService, playbackService)

	library.RegisterRoutes(app, libraryService)
	playback.RegisterRoutes(app, playbackService)
	playlists.RegisterRoutes(app, playlistsService)
	scanning.RegisterRoutes(app, scanningService)
	ui.RegisterRoutes(app, uiHandler)
	config.RegisterRoutes(app, cfg)
	metrics.RegisterRoutes(app)

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
