package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/ukaji3/rota-go/pkg/rota"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	if errors.Is(err, rota.ErrMissingPayload) {
		status = http.StatusBadRequest
		msg = "No Excel bytes received"
	}

	return c.Status(status).JSON(ErrorResponse{Error: msg})
}
