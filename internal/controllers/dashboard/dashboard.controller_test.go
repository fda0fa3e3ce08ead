package dashboardController

import (
	"context"
	"fmt"
	"testing"
	"time"

	"practice/config"
	"practice/internal/database"
	. "practice/internal/models"
	"practice/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupController(t *testing.T) (*DashboardController, repositories.PatientRepository, repositories.VisitRepository) {
	t.Helper()

	db, err := database.New(config.Config{DatabaseDbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	patientRepo := repositories.NewPatient(db)
	visitRepo := repositories.NewVisit(db)

	return New(patientRepo, visitRepo), patientRepo, visitRepo
}

func createPatients(t *testing.T, repo repositories.PatientRepository, n int) []*Patient {
	t.Helper()

	patients := make([]*Patient, 0, n)
	for i := 0; i < n; i++ {
		p := &Patient{
			FirstName:   "Test",
			LastName:    fmt.Sprintf("Patient%d", i),
			DateOfBirth: "1985-03-15",
			Gender:      GenderOther,
		}
		require.NoError(t, repo.Create(context.Background(), p))
		patients = append(patients, p)
	}
	return patients
}

func createVisit(t *testing.T, repo repositories.VisitRepository, patientID string, date time.Time) *Visit {
	t.Helper()

	v := &Visit{PatientID: patientID, VisitDate: date, ChiefComplaint: "Routine check-up"}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestStatsAt_DistinctPatientCounts(t *testing.T) {
	dc, patientRepo, visitRepo := setupController(t)
	ctx := context.Background()

	patients := createPatients(t, patientRepo, 4)

	// 2025-06-11 is a Wednesday; the week starts Sunday 2025-06-08.
	at := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

	// Same patient twice today counts once
	morning := createVisit(t, visitRepo, patients[0].ID, time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC))
	afternoon := createVisit(t, visitRepo, patients[0].ID, time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC))

	// Earlier this week, earlier this month, last month
	createVisit(t, visitRepo, patients[1].ID, time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC))
	createVisit(t, visitRepo, patients[2].ID, time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC))
	createVisit(t, visitRepo, patients[3].ID, time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC))

	stats, err := dc.statsAt(ctx, at)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TodayPatientCount)
	assert.Equal(t, 2, stats.WeekPatientCount)
	assert.Equal(t, 3, stats.MonthPatientCount)
	assert.Equal(t, 4, stats.TotalPatients)

	// Today's visits, newest first
	require.Len(t, stats.TodayVisits, 2)
	assert.Equal(t, afternoon.ID, stats.TodayVisits[0].ID)
	assert.Equal(t, morning.ID, stats.TodayVisits[1].ID)
}

func TestStatsAt_DayBoundariesInclusive(t *testing.T) {
	dc, patientRepo, visitRepo := setupController(t)
	ctx := context.Background()

	patients := createPatients(t, patientRepo, 2)

	at := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	createVisit(t, visitRepo, patients[0].ID, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	createVisit(t, visitRepo, patients[1].ID, time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC))

	stats, err := dc.statsAt(ctx, at)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TodayPatientCount)
	require.Len(t, stats.TodayVisits, 1)
	assert.Equal(t, patients[0].ID, stats.TodayVisits[0].PatientID)
}

func TestStatsAt_RecentPatientsCapped(t *testing.T) {
	dc, patientRepo, _ := setupController(t)
	ctx := context.Background()

	createPatients(t, patientRepo, 7)

	stats, err := dc.statsAt(ctx, time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 7, stats.TotalPatients)
	assert.Len(t, stats.RecentPatients, 5)
}

func TestGetStats_EmptyDatabase(t *testing.T) {
	dc, _, _ := setupController(t)

	stats, err := dc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TodayPatientCount)
	assert.Zero(t, stats.WeekPatientCount)
	assert.Zero(t, stats.MonthPatientCount)
	assert.Zero(t, stats.TotalPatients)
	assert.Empty(t, stats.RecentPatients)
	assert.Empty(t, stats.TodayVisits)
}
