package playback

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"sonicwave/src/music"
)

// Handler is the handler for the playback feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the playback feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Play is the handler for playing a specific song.
func (h *Handler) Play(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	song, err := h.service.Play(c.Context(), id)
	if err != nil {
		if errors.Is(err, music.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Song not found")
		}
		slog.Error("Error playing song", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error playing song")
	}
	return c.JSON(song)
}

// Next is the handler for advancing playback.
func (h *Handler) Next(c *fiber.Ctx) error {
	song, err := h.service.Next(c.Context())
	if err != nil {
		if errors.Is(err, music.ErrEmptyLibrary) {
			return c.Status(fiber.StatusNotFound).SendString("The library is empty")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error advancing playback")
	}
	return c.JSON(song)
}

// Previous is the handler for stepping back through history.
func (h *Handler) Previous(c *fiber.Ctx) error {
	song, err := h.service.Previous(c.Context())
	if err != nil {
		if errors.Is(err, music.ErrNoHistory) {
			return c.Status(fiber.StatusNotFound).SendString("No play history")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error stepping back")
	}
	return c.JSON(song)
}

// Enqueue is the handler for adding a song to the up-next queue.
func (h *Handler) Enqueue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	if err := h.service.Enqueue(c.Context(), id); err != nil {
		if errors.Is(err, music.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Song not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error queueing song")
	}
	return c.JSON(fiber.Map{"status": "queued"})
}

// GetQueue is the handler for listing the up-next queue.
func (h *Handler) GetQueue(c *fiber.Ctx) error {
	songs, err := h.service.GetQueue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading queue")
	}
	return c.JSON(songs)
}

// GetHistory is the handler for listing recently played songs.
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	songs, err := h.service.GetHistory(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading history")
	}
	return c.JSON(songs)
}

// Current is the handler for the now-playing song.
func (h *Handler) Current(c *fiber.Ctx) error {
	song, err := h.service.Current(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading current song")
	}
	if song == nil {
		return c.JSON(fiber.Map{"status": "idle"})
	}
	return c.JSON(song)
}
