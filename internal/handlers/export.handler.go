package handlers

import (
	"bytes"
	"fmt"
	"time"

	"practice/internal/app"
	patientController "practice/internal/controllers/patient"
	visitController "practice/internal/controllers/visit"
	"practice/internal/export"
	"practice/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	Handler
	patientController patientController.PatientController
	visitController   visitController.VisitController
}

func NewExportHandler(app app.App, router fiber.Router) *ExportHandler {
	log := logger.New("handlers").File("export_handler")
	return &ExportHandler{
		patientController: *app.PatientController,
		visitController:   *app.VisitController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ExportHandler) Register() {
	group := h.router.Group("/export")
	group.Get("/patients.csv", h.exportPatients)
	group.Get("/visits.csv", h.exportVisits)
	group.Get("/patients/:id/visits.csv", h.exportPatientVisits)
	group.Get("/patients/:id/record.pdf", h.exportPatientRecord)
}

func (h *ExportHandler) exportPatients(c *fiber.Ctx) error {
	log := h.log.Function("exportPatients")

	patients, err := h.patientController.GetAll(c.Context())
	if err != nil {
		log.Er("failed to get patients", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export patients", "error": err.Error()})
	}

	var buf bytes.Buffer
	if err := export.PatientsCSV(patients, &buf); err != nil {
		log.Er("failed to build patients csv", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export patients", "error": err.Error()})
	}

	return sendCSV(c, export.PatientsExportFilename(time.Now()), buf.Bytes())
}

func (h *ExportHandler) exportVisits(c *fiber.Ctx) error {
	log := h.log.Function("exportVisits")

	visits, err := h.visitController.GetAll(c.Context())
	if err != nil {
		log.Er("failed to get visits", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export visits", "error": err.Error()})
	}

	var buf bytes.Buffer
	if err := export.VisitsCSV(visits, &buf); err != nil {
		log.Er("failed to build visits csv", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export visits", "error": err.Error()})
	}

	return sendCSV(c, export.VisitsExportFilename(time.Now()), buf.Bytes())
}

func (h *ExportHandler) exportPatientVisits(c *fiber.Ctx) error {
	log := h.log.Function("exportPatientVisits")
	id := c.Params("id")

	patient, err := h.patientController.GetByID(c.Context(), id)
	if err != nil {
		log.Er("failed to get patient", err, "patientID", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export patient visits", "error": err.Error()})
	}
	if patient == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "patient not found"})
	}

	visits, err := h.visitController.GetByPatientID(c.Context(), id)
	if err != nil {
		log.Er("failed to get patient visits", err, "patientID", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export patient visits", "error": err.Error()})
	}

	var buf bytes.Buffer
	if err := export.PatientVisitsCSV(visits, &buf); err != nil {
		log.Er("failed to build patient visits csv", err, "patientID", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export patient visits", "error": err.Error()})
	}

	return sendCSV(c, export.PatientVisitsFilename(patient, time.Now()), buf.Bytes())
}

func (h *ExportHandler) exportPatientRecord(c *fiber.Ctx) error {
	log := h.log.Function("exportPatientRecord")
	id := c.Params("id")

	patient, err := h.patientController.GetByID(c.Context(), id)
	if err != nil {
		log.Er("failed to get patient", err, "patientID", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export patient record", "error": err.Error()})
	}
	if patient == nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"message": "patient not found"})
	}

	visits, err := h.visitController.GetByPatientID(c.Context(), id)
	if err != nil {
		log.Er("failed to get patient visits", err, "patientID", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export patient record", "error": err.Error()})
	}

	var buf bytes.Buffer
	if err := export.PatientRecordPDF(patient, visits, &buf); err != nil {
		log.Er("failed to build patient record pdf", err, "patientID", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export patient record", "error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, export.PatientRecordFilename(patient)))
	return c.Send(buf.Bytes())
}

func sendCSV(c *fiber.Ctx, filename string, payload []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(payload)
}
