package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"practice/config"
	"practice/internal/app"
	dashboardController "practice/internal/controllers/dashboard"
	patientController "practice/internal/controllers/patient"
	templateController "practice/internal/controllers/template"
	visitController "practice/internal/controllers/visit"
	"practice/internal/database"
	"practice/internal/repositories"
	"practice/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.New(config.Config{DatabaseDbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	transactionService := services.NewTransactionService(db)
	patientRepo := repositories.NewPatient(db)
	visitRepo := repositories.NewVisit(db)
	templateRepo := repositories.NewTemplate(db)

	testApp := &app.App{
		Database:            db,
		Config:              config.Config{ServerPort: 8271, DatabaseDbPath: ":memory:"},
		TransactionService:  transactionService,
		PatientRepo:         patientRepo,
		VisitRepo:           visitRepo,
		TemplateRepo:        templateRepo,
		PatientController:   patientController.New(patientRepo, visitRepo, transactionService),
		VisitController:     visitController.New(visitRepo, patientRepo),
		TemplateController:  templateController.New(templateRepo),
		DashboardController: dashboardController.New(patientRepo, visitRepo),
	}

	server := fiber.New()
	require.NoError(t, Router(server, testApp))

	return server
}

func doJSON(t *testing.T, server *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp, decoded
}

func createTestPatient(t *testing.T, server *fiber.App) string {
	t.Helper()

	resp, body := doJSON(t, server, http.MethodPost, "/api/patients/", map[string]any{
		"firstName":   "Sarah",
		"lastName":    "Johnson",
		"dateOfBirth": "1985-03-15",
		"gender":      "female",
		"email":       "sarah.johnson@email.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	patient, ok := body["patient"].(map[string]any)
	require.True(t, ok)
	id, ok := patient["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	return id
}

func TestHealthRoute(t *testing.T) {
	server := setupServer(t)

	resp, body := doJSON(t, server, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestPatientRoutes_CRUD(t *testing.T) {
	server := setupServer(t)

	id := createTestPatient(t, server)

	resp, body := doJSON(t, server, http.MethodGet, "/api/patients/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	patient := body["patient"].(map[string]any)
	assert.Equal(t, "Sarah", patient["firstName"])

	resp, body = doJSON(t, server, http.MethodPut, "/api/patients/"+id, map[string]any{
		"phone": "(555) 999-0000",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	patient = body["patient"].(map[string]any)
	assert.Equal(t, "(555) 999-0000", patient["phone"])
	assert.Equal(t, "Johnson", patient["lastName"])

	resp, _ = doJSON(t, server, http.MethodDelete, "/api/patients/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, server, http.MethodGet, "/api/patients/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPatientRoutes_NotFound(t *testing.T) {
	server := setupServer(t)

	resp, _ := doJSON(t, server, http.MethodGet, "/api/patients/missing-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, server, http.MethodPut, "/api/patients/missing-id", map[string]any{
		"phone": "(555) 999-0000",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPatientRoutes_Search(t *testing.T) {
	server := setupServer(t)

	createTestPatient(t, server)

	resp, body := doJSON(t, server, http.MethodPost, "/api/patients/search", map[string]any{
		"searchTerm": "johnson",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	patients := body["patients"].([]any)
	assert.Len(t, patients, 1)

	resp, body = doJSON(t, server, http.MethodPost, "/api/patients/search", map[string]any{
		"searchTerm": "nobody",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["patients"])
}

func TestVisitRoutes_CreateWithTemplate(t *testing.T) {
	server := setupServer(t)

	patientID := createTestPatient(t, server)

	resp, _ := doJSON(t, server, http.MethodPost, "/api/templates/initialize", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, server, http.MethodGet, "/api/templates/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	templates := body["templates"].([]any)
	require.NotEmpty(t, templates)

	var templateID string
	for _, raw := range templates {
		template := raw.(map[string]any)
		if template["name"] == "General Check-up" {
			templateID = template["id"].(string)
		}
	}
	require.NotEmpty(t, templateID)

	resp, body = doJSON(t, server, http.MethodPost, "/api/visits/", map[string]any{
		"patientId":  patientID,
		"visitDate":  "2025-06-01T09:30:00Z",
		"templateId": templateID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	visit := body["visit"].(map[string]any)
	assert.Equal(t, "Annual physical examination", visit["chiefComplaint"])
	assert.Equal(t, patientID, visit["patientId"])
}

func TestVisitRoutes_UnknownTemplate(t *testing.T) {
	server := setupServer(t)

	patientID := createTestPatient(t, server)

	resp, _ := doJSON(t, server, http.MethodPost, "/api/visits/", map[string]any{
		"patientId":      patientID,
		"visitDate":      "2025-06-01T09:30:00Z",
		"chiefComplaint": "Back pain",
		"templateId":     "missing-template",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVisitRoutes_RangeValidation(t *testing.T) {
	server := setupServer(t)

	resp, _ := doJSON(t, server, http.MethodGet, "/api/visits/range?start=bogus&end=2025-06-30", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, server, http.MethodGet, "/api/visits/range?start=2025-06-01&end=2025-06-30", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["message"])
}

func TestDashboardRoute(t *testing.T) {
	server := setupServer(t)

	createTestPatient(t, server)

	resp, body := doJSON(t, server, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["totalPatients"])
}

func TestExportRoutes_PatientsCSV(t *testing.T) {
	server := setupServer(t)

	createTestPatient(t, server)

	req := httptest.NewRequest(http.MethodGet, "/api/export/patients.csv", nil)
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "patients_export_")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "First Name,Last Name")
	assert.Contains(t, string(raw), "Sarah,Johnson")
}

func TestExportRoutes_PatientRecordPDF(t *testing.T) {
	server := setupServer(t)

	patientID := createTestPatient(t, server)

	req := httptest.NewRequest(http.MethodGet, "/api/export/patients/"+patientID+"/record.pdf", nil)
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "Johnson_Sarah_medical_record.pdf")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestExportRoutes_MissingPatient(t *testing.T) {
	server := setupServer(t)

	resp, _ := doJSON(t, server, http.MethodGet, "/api/export/patients/missing-id/visits.csv", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, server, http.MethodGet, "/api/export/patients/missing-id/record.pdf", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
