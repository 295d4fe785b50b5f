package handlers_fiber

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/ukaji3/rota-go/internal/transport/http/middleware"
	"go.uber.org/zap"
)

// AppConfig holds server-level fiber settings.
type AppConfig struct {
	RequestTimeout time.Duration
	BodyLimit      int
}

// NewApp builds the fiber application with middleware and routes.
func NewApp(log *zap.SugaredLogger, h *Handler, cfg AppConfig) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.RequestTimeout,
		WriteTimeout:          cfg.RequestTimeout,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	api := serv.Group("/api")
	api.Get("/rota", h.GetRota)
	api.Post("/rota", h.PostRota)

	return serv
}
