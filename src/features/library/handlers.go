package library

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"sonicwave/src/music"
)

// Handler is the handler for the library feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the library feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetSongs is the handler for getting all songs.
func (h *Handler) GetSongs(c *fiber.Ctx) error {
	slog.Debug("GetSongs handler called")
	songs, err := h.service.GetSongs(c.Context())
	if err != nil {
		slog.Error("Error loading songs", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading songs")
	}
	return c.JSON(songs)
}

// GetSong is the handler for getting a single song by id.
func (h *Handler) GetSong(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	song, err := h.service.GetSong(c.Context(), id)
	if err != nil {
		if errors.Is(err, music.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Song not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading song")
	}
	return c.JSON(song)
}

// GetSongCount is the handler for the song count.
func (h *Handler) GetSongCount(c *fiber.Ctx) error {
	count, err := h.service.GetSongCount(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error counting songs")
	}
	return c.JSON(fiber.Map{"count": count})
}

// SearchSongs is the handler for title search.
func (h *Handler) SearchSongs(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing query parameter")
	}
	songs, err := h.service.SearchSongs(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error searching songs")
	}
	return c.JSON(songs)
}

// GetGenres is the handler for listing genres.
func (h *Handler) GetGenres(c *fiber.Ctx) error {
	genres, err := h.service.GetGenres(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading genres")
	}
	return c.JSON(genres)
}

// GetSongsByGenre is the handler for browsing a genre bucket.
func (h *Handler) GetSongsByGenre(c *fiber.Ctx) error {
	genre := c.Params("genre")
	songs, err := h.service.GetSongsByGenre(c.Context(), genre)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading genre")
	}
	return c.JSON(songs)
}

// Recommend is the handler for similarity recommendations.
func (h *Handler) Recommend(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	limit := c.QueryInt("limit", 5)
	songs, err := h.service.Recommend(c.Context(), id, limit)
	if err != nil {
		if errors.Is(err, music.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Song not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading recommendations")
	}
	return c.JSON(songs)
}

// GetNeighbors is the handler for similarity graph neighbors.
func (h *Handler) GetNeighbors(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	songs, err := h.service.GetNeighbors(c.Context(), id)
	if err != nil {
		if errors.Is(err, music.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Song not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading neighbors")
	}
	return c.JSON(songs)
}

// UpdateSong is the handler for partial metadata edits.
func (h *Handler) UpdateSong(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	var update music.SongUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}
	song, err := h.service.UpdateSong(c.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, music.ErrNotFound):
			return c.Status(fiber.StatusNotFound).SendString("Song not found")
		case errors.Is(err, music.ErrValidation):
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error updating song")
	}
	return c.JSON(song)
}

// DeleteSong is the handler for removing a song.
func (h *Handler) DeleteSong(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	removed, err := h.service.DeleteSong(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error deleting song")
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).SendString("Song not found")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// ToggleFavorite is the handler for flipping the favorite flag.
func (h *Handler) ToggleFavorite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Song id must be an integer")
	}
	favorite, err := h.service.ToggleFavorite(c.Context(), id)
	if err != nil {
		if errors.Is(err, music.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Song not found")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error toggling favorite")
	}
	return c.JSON(fiber.Map{"is_favorite": favorite})
}

// GetFavorites is the handler for listing favorite songs.
func (h *Handler) GetFavorites(c *fiber.Ctx) error {
	songs, err := h.service.GetFavorites(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error loading favorites")
	}
	return c.JSON(songs)
}
