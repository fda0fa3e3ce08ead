package visitController

import (
	"context"
	"practice/internal/logger"
	. "practice/internal/models"
	"practice/internal/repositories"
	"time"

	"github.com/jinzhu/now"
)

type VisitController struct {
	visitRepo   repositories.VisitRepository
	patientRepo repositories.PatientRepository
	log         logger.Logger
}

func New(
	visitRepo repositories.VisitRepository,
	patientRepo repositories.PatientRepository,
) *VisitController {
	return &VisitController{
		visitRepo:   visitRepo,
		patientRepo: patientRepo,
		log:         logger.New("VisitController"),
	}
}

func (vc *VisitController) GetAll(ctx context.Context) ([]*Visit, error) {
	return vc.visitRepo.GetAll(ctx)
}

func (vc *VisitController) GetByID(ctx context.Context, id string) (*Visit, error) {
	return vc.visitRepo.GetByID(ctx, id)
}

func (vc *VisitController) GetByPatientID(ctx context.Context, patientID string) ([]*Visit, error) {
	return vc.visitRepo.GetByPatientID(ctx, patientID)
}

// Create persists the visit and then bumps the owning patient's updated
// timestamp to the visit's creation time. A patient that no longer exists is
// tolerated silently: the touch affects zero rows.
func (vc *VisitController) Create(ctx context.Context, visit *Visit) (*Visit, error) {
	log := vc.log.Function("Create")

	if visit.PatientID == "" {
		return nil, log.Error("visit patient id is required")
	}
	if visit.ChiefComplaint == "" {
		return nil, log.Error("visit chief complaint is required", "patientID", visit.PatientID)
	}

	if err := vc.visitRepo.Create(ctx, visit); err != nil {
		return nil, err
	}

	if err := vc.patientRepo.Touch(ctx, visit.PatientID, visit.CreatedAt); err != nil {
		log.Warn("failed to touch patient after visit create",
			"patientID", visit.PatientID, "visitID", visit.ID, "error", err)
	}

	return visit, nil
}

// Update merges the partial update over the stored visit. The owning patient
// id is pinned: VisitUpdate carries no such field, so it cannot change.
func (vc *VisitController) Update(ctx context.Context, id string, update VisitUpdate) (*Visit, error) {
	visit, err := vc.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, nil
	}

	update.Apply(visit)

	if err := vc.visitRepo.Update(ctx, visit); err != nil {
		return nil, err
	}

	if err := vc.patientRepo.Touch(ctx, visit.PatientID, visit.UpdatedAt); err != nil {
		vc.log.Function("Update").Warn("failed to touch patient after visit update",
			"patientID", visit.PatientID, "visitID", visit.ID, "error", err)
	}

	return visit, nil
}

// Delete removes the visit only. It does not cascade and does not touch the
// owning patient's updated timestamp.
func (vc *VisitController) Delete(ctx context.Context, id string) error {
	return vc.visitRepo.Delete(ctx, id)
}

// GetTodayVisits returns visits within the current calendar day, inclusive
// of both boundaries, newest first.
func (vc *VisitController) GetTodayVisits(ctx context.Context) ([]*Visit, error) {
	today := now.With(time.Now())
	return vc.visitRepo.GetInRange(ctx, today.BeginningOfDay(), today.EndOfDay())
}

func (vc *VisitController) GetVisitsInRange(ctx context.Context, start, end time.Time) ([]*Visit, error) {
	return vc.visitRepo.GetInRange(ctx, start, end)
}

// GetRecent is a convenience wrapper over the trailing N days, default 7.
func (vc *VisitController) GetRecent(ctx context.Context, days int) ([]*Visit, error) {
	if days <= 0 {
		days = 7
	}
	end := time.Now()
	return vc.visitRepo.GetInRange(ctx, end.AddDate(0, 0, -days), end)
}
