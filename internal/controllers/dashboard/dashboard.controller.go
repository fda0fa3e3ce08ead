package dashboardController

import (
	"context"
	"practice/internal/logger"
	. "practice/internal/models"
	"practice/internal/repositories"
	"sort"
	"time"

	"github.com/jinzhu/now"
)

type DashboardController struct {
	patientRepo repositories.PatientRepository
	visitRepo   repositories.VisitRepository
	log         logger.Logger
}

func New(
	patientRepo repositories.PatientRepository,
	visitRepo repositories.VisitRepository,
) *DashboardController {
	return &DashboardController{
		patientRepo: patientRepo,
		visitRepo:   visitRepo,
		log:         logger.New("DashboardController"),
	}
}

// GetStats recomputes the dashboard from full table scans on every call; no
// caching by design. Patient counts are distinct per period, so two visits
// today by the same patient count once.
func (dc *DashboardController) GetStats(ctx context.Context) (*DashboardStats, error) {
	return dc.statsAt(ctx, time.Now())
}

func (dc *DashboardController) statsAt(ctx context.Context, at time.Time) (*DashboardStats, error) {
	patients, err := dc.patientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visits, err := dc.visitRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	recentPatients, err := dc.patientRepo.GetRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	// Week starts on Sunday, matching the original UI's locale default.
	boundaries := now.With(at)
	dayStart := boundaries.BeginningOfDay()
	dayEnd := boundaries.EndOfDay()
	weekStart := boundaries.BeginningOfWeek()
	monthStart := boundaries.BeginningOfMonth()

	todayPatients := make(map[string]struct{})
	weekPatients := make(map[string]struct{})
	monthPatients := make(map[string]struct{})
	var todayVisits []*Visit

	for _, v := range visits {
		if !v.VisitDate.Before(dayStart) && !v.VisitDate.After(dayEnd) {
			todayPatients[v.PatientID] = struct{}{}
			todayVisits = append(todayVisits, v)
		}
		if !v.VisitDate.Before(weekStart) {
			weekPatients[v.PatientID] = struct{}{}
		}
		if !v.VisitDate.Before(monthStart) {
			monthPatients[v.PatientID] = struct{}{}
		}
	}

	sort.SliceStable(todayVisits, func(i, j int) bool {
		return todayVisits[i].VisitDate.After(todayVisits[j].VisitDate)
	})

	return &DashboardStats{
		TodayPatientCount: len(todayPatients),
		WeekPatientCount:  len(weekPatients),
		MonthPatientCount: len(monthPatients),
		TotalPatients:     len(patients),
		RecentPatients:    recentPatients,
		TodayVisits:       todayVisits,
	}, nil
}
