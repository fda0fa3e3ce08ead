package visitController

import (
	"context"
	"testing"
	"time"

	"practice/config"
	"practice/internal/database"
	. "practice/internal/models"
	"practice/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupController(t *testing.T) (*VisitController, repositories.PatientRepository) {
	t.Helper()

	db, err := database.New(config.Config{DatabaseDbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	visitRepo := repositories.NewVisit(db)
	patientRepo := repositories.NewPatient(db)

	return New(visitRepo, patientRepo), patientRepo
}

func createPatient(t *testing.T, repo repositories.PatientRepository) *Patient {
	t.Helper()

	patient := &Patient{
		FirstName:   "Sarah",
		LastName:    "Johnson",
		DateOfBirth: "1985-03-15",
		Gender:      GenderFemale,
	}
	require.NoError(t, repo.Create(context.Background(), patient))
	return patient
}

func strPtr(s string) *string {
	return &s
}

func TestCreate_Validation(t *testing.T) {
	vc, _ := setupController(t)
	ctx := context.Background()

	_, err := vc.Create(ctx, &Visit{ChiefComplaint: "Back pain"})
	assert.Error(t, err)

	_, err = vc.Create(ctx, &Visit{PatientID: "patient-1"})
	assert.Error(t, err)
}

func TestCreate_TouchesPatient(t *testing.T) {
	vc, patientRepo := setupController(t)
	ctx := context.Background()

	patient := createPatient(t, patientRepo)

	visit, err := vc.Create(ctx, &Visit{
		PatientID:      patient.ID,
		VisitDate:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		ChiefComplaint: "Routine check-up",
	})
	require.NoError(t, err)
	require.NotEmpty(t, visit.ID)

	found, err := patientRepo.GetByID(ctx, patient.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.UpdatedAt.Equal(visit.CreatedAt))
}

func TestCreate_MissingPatientTolerated(t *testing.T) {
	vc, _ := setupController(t)

	visit, err := vc.Create(context.Background(), &Visit{
		PatientID:      "missing-id",
		VisitDate:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		ChiefComplaint: "Routine check-up",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, visit.ID)
}

func TestUpdate_MergesAndPinsPatient(t *testing.T) {
	vc, patientRepo := setupController(t)
	ctx := context.Background()

	patient := createPatient(t, patientRepo)
	visit, err := vc.Create(ctx, &Visit{
		PatientID:      patient.ID,
		VisitDate:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		ChiefComplaint: "Back pain",
	})
	require.NoError(t, err)

	updated, err := vc.Update(ctx, visit.ID, VisitUpdate{
		ChiefComplaint: strPtr("Lower back pain"),
		Diagnosis:      strPtr("Musculoskeletal strain"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Lower back pain", updated.ChiefComplaint)
	require.NotNil(t, updated.Diagnosis)
	assert.Equal(t, "Musculoskeletal strain", *updated.Diagnosis)
	assert.Equal(t, patient.ID, updated.PatientID)
	assert.True(t, updated.VisitDate.Equal(visit.VisitDate))
}

func TestUpdate_TouchesPatient(t *testing.T) {
	vc, patientRepo := setupController(t)
	ctx := context.Background()

	patient := createPatient(t, patientRepo)
	visit, err := vc.Create(ctx, &Visit{
		PatientID:      patient.ID,
		VisitDate:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		ChiefComplaint: "Back pain",
	})
	require.NoError(t, err)

	updated, err := vc.Update(ctx, visit.ID, VisitUpdate{Notes: strPtr("Improving")})
	require.NoError(t, err)
	require.NotNil(t, updated)

	found, err := patientRepo.GetByID(ctx, patient.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.UpdatedAt.Equal(updated.UpdatedAt))
}

func TestUpdate_MissingVisit(t *testing.T) {
	vc, _ := setupController(t)

	updated, err := vc.Update(context.Background(), "missing-id", VisitUpdate{Notes: strPtr("n")})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDelete_DoesNotTouchPatient(t *testing.T) {
	vc, patientRepo := setupController(t)
	ctx := context.Background()

	patient := createPatient(t, patientRepo)
	visit, err := vc.Create(ctx, &Visit{
		PatientID:      patient.ID,
		VisitDate:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		ChiefComplaint: "Back pain",
	})
	require.NoError(t, err)

	before, err := patientRepo.GetByID(ctx, patient.ID)
	require.NoError(t, err)

	require.NoError(t, vc.Delete(ctx, visit.ID))

	gone, err := vc.GetByID(ctx, visit.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	after, err := patientRepo.GetByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.Equal(before.UpdatedAt))
}

func TestGetTodayVisits(t *testing.T) {
	vc, patientRepo := setupController(t)
	ctx := context.Background()

	patient := createPatient(t, patientRepo)

	today, err := vc.Create(ctx, &Visit{
		PatientID:      patient.ID,
		VisitDate:      time.Now(),
		ChiefComplaint: "Today's visit",
	})
	require.NoError(t, err)

	_, err = vc.Create(ctx, &Visit{
		PatientID:      patient.ID,
		VisitDate:      time.Now().AddDate(0, 0, -1),
		ChiefComplaint: "Yesterday's visit",
	})
	require.NoError(t, err)

	visits, err := vc.GetTodayVisits(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, today.ID, visits[0].ID)
}

func TestGetRecent_DefaultWindow(t *testing.T) {
	vc, patientRepo := setupController(t)
	ctx := context.Background()

	patient := createPatient(t, patientRepo)

	recent, err := vc.Create(ctx, &Visit{
		PatientID:      patient.ID,
		VisitDate:      time.Now().AddDate(0, 0, -3),
		ChiefComplaint: "Recent visit",
	})
	require.NoError(t, err)

	_, err = vc.Create(ctx, &Visit{
		PatientID:      patient.ID,
		VisitDate:      time.Now().AddDate(0, 0, -10),
		ChiefComplaint: "Older visit",
	})
	require.NoError(t, err)

	visits, err := vc.GetRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, recent.ID, visits[0].ID)
}
