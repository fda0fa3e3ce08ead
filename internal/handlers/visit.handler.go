package handlers

import (
	"practice/internal/app"
	templateController "practice/internal/controllers/template"
	visitController "practice/internal/controllers/visit"
	"practice/internal/logger"
	. "practice/internal/models"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type VisitHandler struct {
	Handler
	controller         visitController.VisitController
	templateController templateController.TemplateController
}

func NewVisitHandler(app app.App, router fiber.Router) *VisitHandler {
	log := logger.New("handlers").File("visit_handler")
	return &VisitHandler{
		controller:         *app.VisitController,
		templateController: *app.TemplateController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *VisitHandler) Register() {
	visits := h.router.Group("/visits")
	visits.Get("/", h.getVisits)
	visits.Post("/", h.createVisit)
	visits.Get("/today", h.getTodayVisits)
	visits.Get("/range", h.getVisitsInRange)
	visits.Get("/recent", h.getRecentVisits)
	visits.Get("/:id", h.getVisit)
	visits.Put("/:id", h.updateVisit)
	visits.Delete("/:id", h.deleteVisit)
}

// createVisitRequest optionally names a template whose fields pre-fill the
// visit before it is persisted.
type createVisitRequest struct {
	Visit
	TemplateID string `json:"templateId,omitempty"`
}

func (h *VisitHandler) getVisits(c *fiber.Ctx) error {
	log := h.log.Function("getVisits")

	visits, err := h.controller.GetAll(c.Context())
	if err != nil {
		log.Er("failed to get visits", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get visits", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "visits": visits})
}

func (h *VisitHandler) getVisit(c *fiber.Ctx) error {
	log := h.log.Function("getVisit")

	visit, err := h.controller.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to get visit", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get visit", "error": err.Error()})
	}
	if visit == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "visit not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "visit": visit})
}

func (h *VisitHandler) createVisit(c *fiber.Ctx) error {
	log := h.log.Function("createVisit")

	var request createVisitRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse visit request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse visit request"})
	}

	if request.TemplateID != "" {
		found, err := h.templateController.ApplyTemplate(c.Context(), request.TemplateID, &request.Visit)
		if err != nil {
			log.Er("failed to apply template", err, "templateID", request.TemplateID)
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"message": "failed to apply template", "error": err.Error()})
		}
		if !found {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"message": "template not found"})
		}
	}

	visit, err := h.controller.Create(c.Context(), &request.Visit)
	if err != nil {
		log.Er("failed to create visit", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to create visit", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "visit": visit})
}

func (h *VisitHandler) updateVisit(c *fiber.Ctx) error {
	log := h.log.Function("updateVisit")

	var update VisitUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Er("failed to parse visit update", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse visit update"})
	}

	visit, err := h.controller.Update(c.Context(), c.Params("id"), update)
	if err != nil {
		log.Er("failed to update visit", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to update visit", "error": err.Error()})
	}
	if visit == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "visit not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "visit": visit})
}

func (h *VisitHandler) deleteVisit(c *fiber.Ctx) error {
	log := h.log.Function("deleteVisit")

	if err := h.controller.Delete(c.Context(), c.Params("id")); err != nil {
		log.Er("failed to delete visit", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to delete visit", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *VisitHandler) getTodayVisits(c *fiber.Ctx) error {
	log := h.log.Function("getTodayVisits")

	visits, err := h.controller.GetTodayVisits(c.Context())
	if err != nil {
		log.Er("failed to get today visits", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get today visits", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "visits": visits})
}

func (h *VisitHandler) getVisitsInRange(c *fiber.Ctx) error {
	log := h.log.Function("getVisitsInRange")

	start, err := parseTimeParam(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "invalid start parameter"})
	}
	end, err := parseTimeParam(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "invalid end parameter"})
	}

	visits, err := h.controller.GetVisitsInRange(c.Context(), start, end)
	if err != nil {
		log.Er("failed to get visits in range", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get visits in range", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "visits": visits})
}

func (h *VisitHandler) getRecentVisits(c *fiber.Ctx) error {
	log := h.log.Function("getRecentVisits")

	days, _ := strconv.Atoi(c.Query("days", "7"))

	visits, err := h.controller.GetRecent(c.Context(), days)
	if err != nil {
		log.Er("failed to get recent visits", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get recent visits", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "visits": visits})
}

func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
