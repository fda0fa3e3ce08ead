package patientController

import (
	"context"
	"practice/internal/logger"
	. "practice/internal/models"
	"practice/internal/repositories"
	"practice/internal/services"
	"sort"
	"strings"
	"time"
)

const recentVisitWindowDays = 30

type PatientController struct {
	patientRepo        repositories.PatientRepository
	visitRepo          repositories.VisitRepository
	transactionService *services.TransactionService
	log                logger.Logger
}

func New(
	patientRepo repositories.PatientRepository,
	visitRepo repositories.VisitRepository,
	transactionService *services.TransactionService,
) *PatientController {
	return &PatientController{
		patientRepo:        patientRepo,
		visitRepo:          visitRepo,
		transactionService: transactionService,
		log:                logger.New("PatientController"),
	}
}

func (pc *PatientController) GetAll(ctx context.Context) ([]*Patient, error) {
	return pc.patientRepo.GetAll(ctx)
}

// GetByID returns (nil, nil) for a missing patient; absence is a normal
// outcome for callers, not an error.
func (pc *PatientController) GetByID(ctx context.Context, id string) (*Patient, error) {
	return pc.patientRepo.GetByID(ctx, id)
}

func (pc *PatientController) Create(ctx context.Context, patient *Patient) (*Patient, error) {
	log := pc.log.Function("Create")

	if patient.FirstName == "" || patient.LastName == "" {
		return nil, log.Error("patient name is required",
			"firstName", patient.FirstName, "lastName", patient.LastName)
	}

	if err := pc.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// Update merges the partial update over the stored record. The read-modify-
// write sequence is not serialized against concurrent updates: last write
// wins, matching the source behavior.
func (pc *PatientController) Update(ctx context.Context, id string, update PatientUpdate) (*Patient, error) {
	patient, err := pc.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}

	update.Apply(patient)

	if err := pc.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// Delete removes the patient and cascades to all of its visits inside one
// transaction, so a partial failure can never leave orphaned visits.
func (pc *PatientController) Delete(ctx context.Context, id string) error {
	log := pc.log.Function("Delete")

	err := pc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		if err := pc.visitRepo.DeleteByPatientID(txCtx, id); err != nil {
			return log.Err("failed to cascade delete visits", err, "patientID", id)
		}

		if err := pc.patientRepo.Delete(txCtx, id); err != nil {
			return log.Err("failed to delete patient", err, "patientID", id)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info("Deleted patient with visit cascade", "patientID", id)
	return nil
}

// Search filters the full patient set then sorts it. Filtering is a linear
// scan: the free-text term matches first name, last name and email case-
// insensitively, and phone and date of birth by raw substring.
func (pc *PatientController) Search(ctx context.Context, filters SearchFilters) ([]*Patient, error) {
	patients, err := pc.patientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if filters.SearchTerm != "" {
		term := strings.ToLower(filters.SearchTerm)
		filtered := make([]*Patient, 0, len(patients))
		for _, p := range patients {
			if matchesTerm(p, term, filters.SearchTerm) {
				filtered = append(filtered, p)
			}
		}
		patients = filtered
	}

	if filters.RecentVisitsOnly {
		since := time.Now().AddDate(0, 0, -recentVisitWindowDays)
		recentVisits, err := pc.visitRepo.GetSince(ctx, since)
		if err != nil {
			return nil, err
		}

		recentPatientIDs := make(map[string]struct{}, len(recentVisits))
		for _, v := range recentVisits {
			recentPatientIDs[v.PatientID] = struct{}{}
		}

		filtered := make([]*Patient, 0, len(patients))
		for _, p := range patients {
			if _, ok := recentPatientIDs[p.ID]; ok {
				filtered = append(filtered, p)
			}
		}
		patients = filtered
	}

	sortPatients(patients, filters.SortField, filters.SortOrder)

	return patients, nil
}

func (pc *PatientController) GetRecent(ctx context.Context, limit int) ([]*Patient, error) {
	if limit <= 0 {
		limit = 10
	}
	return pc.patientRepo.GetRecent(ctx, limit)
}

func matchesTerm(p *Patient, lowerTerm, rawTerm string) bool {
	return strings.Contains(strings.ToLower(p.FirstName), lowerTerm) ||
		strings.Contains(strings.ToLower(p.LastName), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Email), lowerTerm) ||
		strings.Contains(p.Phone, rawTerm) ||
		strings.Contains(p.DateOfBirth, rawTerm)
}

// sortPatients orders by an enumerated field rather than reflective field
// access. Text fields compare lexicographically, timestamps chronologically.
func sortPatients(patients []*Patient, field SortField, order SortOrder) {
	if field == "" {
		field = SortByLastName
	}

	less := func(a, b *Patient) bool {
		switch field {
		case SortByFirstName:
			return a.FirstName < b.FirstName
		case SortByDateOfBirth:
			return a.DateOfBirth < b.DateOfBirth
		case SortByCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortByUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.LastName < b.LastName
		}
	}

	sort.SliceStable(patients, func(i, j int) bool {
		if order == SortDesc {
			return less(patients[j], patients[i])
		}
		return less(patients[i], patients[j])
	})
}
