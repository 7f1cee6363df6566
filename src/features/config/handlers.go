package config

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the config feature.
type Handler struct {
	configManager *Manager
}

// NewHandler creates a new handler for the config feature.
func NewHandler(configManager *Manager) *Handler {
	return &Handler{configManager: configManager}
}

// GetConfig returns the current configuration with secrets redacted.
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	slog.Debug("GetConfig handler called")
	format := c.Query("format", "json")
	if format == "yaml" {
		c.Set("Content-Type", "application/x-yaml")
		return c.SendString(h.configManager.GetYAML())
	}
	c.Set("Content-Type", "application/json")
	return c.SendString(h.configManager.GetJSON())
}
