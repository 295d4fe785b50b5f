package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetRota is a liveness probe for the rota endpoint.
func (h *Handler) GetRota(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"ok": true, "endpoint": "rota"})
}

// PostRota decodes an uploaded workbook and returns the weekly report.
func (h *Handler) PostRota(c *fiber.Ctx) error {
	data, err := h.extractPayload(c)
	if err != nil {
		h.log.Infow("rota payload rejected", "error", err)
		return writeError(c, err)
	}

	report, err := h.processor.Process(data)
	if err != nil {
		h.log.Warnw("rota processing failed", "error", err, "bytes", len(data))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(report)
}
