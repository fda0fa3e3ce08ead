package export

import (
	"fmt"
	. "practice/internal/models"
	"time"
)

const exportDateLayout = "2006-01-02"

func PatientRecordFilename(patient *Patient) string {
	return fmt.Sprintf("%s_%s_medical_record.pdf", patient.LastName, patient.FirstName)
}

func PatientsExportFilename(at time.Time) string {
	return fmt.Sprintf("patients_export_%s.csv", at.Format(exportDateLayout))
}

func VisitsExportFilename(at time.Time) string {
	return fmt.Sprintf("visits_export_%s.csv", at.Format(exportDateLayout))
}

func PatientVisitsFilename(patient *Patient, at time.Time) string {
	return fmt.Sprintf("%s_%s_visits_%s.csv",
		patient.LastName, patient.FirstName, at.Format(exportDateLayout))
}
