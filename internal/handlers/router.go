package handlers

import (
	"practice/internal/app"
	"practice/internal/handlers/middleware"
	"practice/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewPatientHandler(*app, api).Register()
	NewVisitHandler(*app, api).Register()
	NewTemplateHandler(*app, api).Register()
	NewDashboardHandler(*app, api).Register()
	NewExportHandler(*app, api).Register()

	return nil
}
