package handlers

import (
	"practice/internal/app"
	patientController "practice/internal/controllers/patient"
	visitController "practice/internal/controllers/visit"
	"practice/internal/logger"
	. "practice/internal/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type PatientHandler struct {
	Handler
	controller      patientController.PatientController
	visitController visitController.VisitController
}

func NewPatientHandler(app app.App, router fiber.Router) *PatientHandler {
	log := logger.New("handlers").File("patient_handler")
	return &PatientHandler{
		controller:      *app.PatientController,
		visitController: *app.VisitController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PatientHandler) Register() {
	patients := h.router.Group("/patients")
	patients.Get("/", h.getPatients)
	patients.Post("/", h.createPatient)
	patients.Post("/search", h.searchPatients)
	patients.Get("/recent", h.getRecentPatients)
	patients.Get("/:id", h.getPatient)
	patients.Put("/:id", h.updatePatient)
	patients.Delete("/:id", h.deletePatient)
	patients.Get("/:id/visits", h.getPatientVisits)
}

func (h *PatientHandler) getPatients(c *fiber.Ctx) error {
	log := h.log.Function("getPatients")

	patients, err := h.controller.GetAll(c.Context())
	if err != nil {
		log.Er("failed to get patients", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get patients", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "patients": patients})
}

func (h *PatientHandler) getPatient(c *fiber.Ctx) error {
	log := h.log.Function("getPatient")

	patient, err := h.controller.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to get patient", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get patient", "error": err.Error()})
	}
	if patient == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "patient not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "patient": patient})
}

func (h *PatientHandler) createPatient(c *fiber.Ctx) error {
	log := h.log.Function("createPatient")

	var patient Patient
	if err := c.BodyParser(&patient); err != nil {
		log.Er("failed to parse patient request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse patient request"})
	}

	created, err := h.controller.Create(c.Context(), &patient)
	if err != nil {
		log.Er("failed to create patient", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to create patient", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "patient": created})
}

func (h *PatientHandler) updatePatient(c *fiber.Ctx) error {
	log := h.log.Function("updatePatient")

	var update PatientUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Er("failed to parse patient update", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse patient update"})
	}

	patient, err := h.controller.Update(c.Context(), c.Params("id"), update)
	if err != nil {
		log.Er("failed to update patient", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to update patient", "error": err.Error()})
	}
	if patient == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "patient not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "patient": patient})
}

func (h *PatientHandler) deletePatient(c *fiber.Ctx) error {
	log := h.log.Function("deletePatient")

	if err := h.controller.Delete(c.Context(), c.Params("id")); err != nil {
		log.Er("failed to delete patient", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to delete patient", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *PatientHandler) searchPatients(c *fiber.Ctx) error {
	log := h.log.Function("searchPatients")

	var filters SearchFilters
	if err := c.BodyParser(&filters); err != nil {
		log.Er("failed to parse search filters", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse search filters"})
	}

	patients, err := h.controller.Search(c.Context(), filters)
	if err != nil {
		log.Er("failed to search patients", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to search patients", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "patients": patients})
}

func (h *PatientHandler) getRecentPatients(c *fiber.Ctx) error {
	log := h.log.Function("getRecentPatients")

	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	patients, err := h.controller.GetRecent(c.Context(), limit)
	if err != nil {
		log.Er("failed to get recent patients", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get recent patients", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "patients": patients})
}

func (h *PatientHandler) getPatientVisits(c *fiber.Ctx) error {
	log := h.log.Function("getPatientVisits")

	visits, err := h.visitController.GetByPatientID(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to get patient visits", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get patient visits", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "visits": visits})
}
