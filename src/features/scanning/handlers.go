package scanning

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the scanning feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the scanning feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Rescan is the handler for triggering a library rescan.
func (h *Handler) Rescan(c *fiber.Ctx) error {
	slog.Debug("Rescan handler called")
	result, err := h.service.Rescan(c.Context())
	if err != nil {
		if h.service.IsScanning() {
			return c.Status(fiber.StatusConflict).SendString("A scan is already in progress")
		}
		slog.Error("Error rescanning library", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error rescanning library")
	}
	return c.JSON(result)
}

// Status is the handler for reporting scan state.
func (h *Handler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"scanning":  h.service.IsScanning(),
		"last_scan": h.service.LastScan(),
	})
}
