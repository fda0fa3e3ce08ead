package handlers

import (
	"practice/internal/app"
	templateController "practice/internal/controllers/template"
	"practice/internal/logger"
	. "practice/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TemplateHandler struct {
	Handler
	controller templateController.TemplateController
}

func NewTemplateHandler(app app.App, router fiber.Router) *TemplateHandler {
	log := logger.New("handlers").File("template_handler")
	return &TemplateHandler{
		controller: *app.TemplateController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *TemplateHandler) Register() {
	templates := h.router.Group("/templates")
	templates.Get("/", h.getTemplates)
	templates.Post("/", h.createTemplate)
	templates.Post("/initialize", h.initializeDefaults)
	templates.Get("/:id", h.getTemplate)
	templates.Put("/:id", h.updateTemplate)
	templates.Delete("/:id", h.deleteTemplate)
}

func (h *TemplateHandler) getTemplates(c *fiber.Ctx) error {
	log := h.log.Function("getTemplates")

	if category := c.Query("category"); category != "" {
		templates, err := h.controller.GetByCategory(c.Context(), TemplateCategory(category))
		if err != nil {
			log.Er("failed to get templates by category", err, "category", category)
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"message": "failed to get templates", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "success", "templates": templates})
	}

	templates, err := h.controller.GetAll(c.Context())
	if err != nil {
		log.Er("failed to get templates", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get templates", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "templates": templates})
}

func (h *TemplateHandler) getTemplate(c *fiber.Ctx) error {
	log := h.log.Function("getTemplate")

	template, err := h.controller.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to get template", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get template", "error": err.Error()})
	}
	if template == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "template not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "template": template})
}

func (h *TemplateHandler) createTemplate(c *fiber.Ctx) error {
	log := h.log.Function("createTemplate")

	var template VisitTemplate
	if err := c.BodyParser(&template); err != nil {
		log.Er("failed to parse template request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse template request"})
	}

	created, err := h.controller.Create(c.Context(), &template)
	if err != nil {
		log.Er("failed to create template", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to create template", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "template": created})
}

func (h *TemplateHandler) updateTemplate(c *fiber.Ctx) error {
	log := h.log.Function("updateTemplate")

	var update TemplateUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Er("failed to parse template update", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse template update"})
	}

	template, err := h.controller.Update(c.Context(), c.Params("id"), update)
	if err != nil {
		log.Er("failed to update template", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to update template", "error": err.Error()})
	}
	if template == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "template not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "template": template})
}

func (h *TemplateHandler) deleteTemplate(c *fiber.Ctx) error {
	log := h.log.Function("deleteTemplate")

	if err := h.controller.Delete(c.Context(), c.Params("id")); err != nil {
		log.Er("failed to delete template", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to delete template", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *TemplateHandler) initializeDefaults(c *fiber.Ctx) error {
	log := h.log.Function("initializeDefaults")

	if err := h.controller.InitializeDefaults(c.Context()); err != nil {
		log.Er("failed to initialize default templates", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to initialize default templates", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success"})
}
