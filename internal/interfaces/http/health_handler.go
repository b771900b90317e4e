package http

import "github.com/gofiber/fiber/v2"

// HealthHandler sondas de vida.
type HealthHandler struct {
	service string
}

// NewHealthHandler construye el handler.
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Root responde texto plano para comprobaciones rápidas.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Working")
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}
