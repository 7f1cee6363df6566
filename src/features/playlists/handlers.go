package playlists

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"sonicwave/src/music"
)

// Handler is the handler for the playlists feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the playlists feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListPlaylists is the handler for listing all playlists.
func (h *Handler) ListPlaylists(c *fiber.Ctx) error {
	slog.Debug("ListPlaylists handler called")
	names, err := h.service.ListPlaylists(c.Context())
	if err != nil {
		slog.Error("Error loading playlists", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading playlists")
	}
	return c.JSON(names)
}

// CreatePlaylist is the handler for creating a playlist.
func (h *Handler) CreatePlaylist(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.CreatePlaylist(c.Context(), name); err != nil {
		if errors.Is(err, music.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error creating playlist")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// DeletePlaylist is the handler for removing a playlist.
func (h *Handler) DeletePlaylist(c *fiber.Ctx) error {
	name := c.Params("name")
	removed, err := h.service.DeletePlaylist(c.Context(), name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error deleting playlist")
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).SendString("Playlist not found")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// GetSongs is the handler for a playlist's songs.
func (h *Handler) GetSongs(c *fiber.Ctx) error {
	name := c.Params("name")
	songs, err := h.service.GetSongs(c.Context(), name)
	if err != nil {
		if errors.Is(err, music.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Playlist not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading playlist")
	}
	return c.JSON(songs)
}

// AddSong is the handler for adding a song to a playlist.
func (h *Handler) AddSong(c *fiber.Ctx) error {
	name := c.Params("name")
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	if err := h.service.AddSong(c.Context(), name, id); err != nil {
		switch {
		case errors.Is(err, music.ErrNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Song not found")
		case errors.Is(err, music.ErrValidation):
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error adding song to playlist")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// RemoveSong is the handler for dropping a song from a playlist.
func (h *Handler) RemoveSong(c *fiber.Ctx) error {
	name := c.Params("name")
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	removed, err := h.service.RemoveSong(c.Context(), name, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error removing song from playlist")
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).SendString("Song not in playlist")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Select is the handler for selecting the playlist driving playback.
func (h *Handler) Select(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.Select(c.Context(), name); err != nil {
		if errors.Is(err, music.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Playlist not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error selecting playlist")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Deselect is the handler for clearing the playlist selection.
func (h *Handler) Deselect(c *fiber.Ctx) error {
	if err := h.service.Deselect(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error clearing playlist selection")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Selected is the handler for the current playlist selection.
func (h *Handler) Selected(c *fiber.Ctx) error {
	name, err := h.service.Selected(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading playlist selection")
	}
	return c.JSON(fiber.Map{"selected": name})
}
