package ui

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"sonicwave/src/features/library"
	"sonicwave/src/features/playback"
)

// Handler is the handler for the UI feature.
type Handler struct {
	libraryService  *library.Service
	playbackService *playback.Service
}

// NewHandler creates a new handler for the UI feature.
func NewHandler(libraryService *library.Service, playbackService *playback.Service) *Handler {
	return &Handler{
		libraryService:  libraryService,
		playbackService: playbackService,
	}
}

// RenderDashboard renders the main page with library and playback state.
func (h *Handler) RenderDashboard(c *fiber.Ctx) error {
	slog.Debug("RenderDashboard handler called")

	songs, err := h.libraryService.GetSongs(c.Context())
	if err != nil {
		return err
	}
	genres, err := h.libraryService.GetGenres(c.Context())
	if err != nil {
		return err
	}
	current, err := h.playbackService.Current(c.Context())
	if err != nil {
		return err
	}
	queue, err := h.playbackService.GetQueue(c.Context())
	if err != nil {
		return err
	}

	return c.Render("index", fiber.Map{
		"Title":   "SonicWave",
		"Songs":   songs,
		"Genres":  genres,
		"Current": current,
		"Queue":   queue,
	})
}
