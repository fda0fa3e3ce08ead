package handlers

import (
	"practice/internal/app"
	dashboardController "practice/internal/controllers/dashboard"
	"practice/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Handler
	controller dashboardController.DashboardController
}

func NewDashboardHandler(app app.App, router fiber.Router) *DashboardHandler {
	log := logger.New("handlers").File("dashboard_handler")
	return &DashboardHandler{
		controller: *app.DashboardController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DashboardHandler) Register() {
	h.router.Get("/dashboard", h.getStats)
}

func (h *DashboardHandler) getStats(c *fiber.Ctx) error {
	log := h.log.Function("getStats")

	stats, err := h.controller.GetStats(c.Context())
	if err != nil {
		log.Er("failed to get dashboard stats", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get dashboard stats", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "stats": stats})
}
