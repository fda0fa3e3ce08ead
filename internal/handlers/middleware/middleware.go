package middleware

import (
	"practice/config"
	"practice/internal/logger"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Middleware struct {
	config config.Config
	log    logger.Logger
}

func New(config config.Config) Middleware {
	return Middleware{
		config: config,
		log:    logger.New("middleware"),
	}
}

// Register mounts the shared middleware chain: panic recovery, CORS for the
// local UI, and a request logger.
func (m Middleware) Register(app *fiber.App) {
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(m.requestLogger())
}

func (m Middleware) requestLogger() fiber.Handler {
	log := m.log.Function("request")

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)

		return err
	}
}
