package export

import (
	"encoding/csv"
	"io"
	. "practice/internal/models"
	"time"
)

// Column headers are part of the export contract: spreadsheets built on top
// of these files key on the human-readable names.

var patientCSVHeader = []string{
	"First Name", "Last Name", "Date of Birth", "Gender", "Email", "Phone",
	"Address", "City", "State", "Zip Code", "Blood Type", "Allergies",
	"Insurance", "Insurance ID", "Emergency Contact", "Emergency Phone",
	"Created At",
}

var visitCSVHeader = []string{
	"Visit Date", "Patient ID", "Chief Complaint", "Diagnosis",
	"Examination Findings", "Treatment Plan", "Prescriptions", "Lab Orders",
	"Follow-up", "Notes", "Blood Pressure", "Heart Rate", "Temperature",
	"Created At",
}

var patientVisitCSVHeader = []string{
	"Visit Date", "Chief Complaint", "Diagnosis", "Examination Findings",
	"Treatment Plan", "Prescriptions", "Follow-up", "Notes",
}

func PatientsCSV(patients []*Patient, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(patientCSVHeader); err != nil {
		return err
	}

	for _, p := range patients {
		row := []string{
			p.FirstName,
			p.LastName,
			p.DateOfBirth,
			string(p.Gender),
			p.Email,
			p.Phone,
			p.Address,
			p.City,
			p.State,
			p.ZipCode,
			deref(p.BloodType),
			deref(p.Allergies),
			deref(p.Insurance),
			deref(p.InsuranceID),
			deref(p.EmergencyContact),
			deref(p.EmergencyPhone),
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func VisitsCSV(visits []*Visit, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(visitCSVHeader); err != nil {
		return err
	}

	for _, v := range visits {
		vitals := v.VitalSigns
		if vitals == nil {
			vitals = &VitalSigns{}
		}
		row := []string{
			v.VisitDate.Format(time.RFC3339),
			v.PatientID,
			v.ChiefComplaint,
			deref(v.Diagnosis),
			deref(v.ExaminationFindings),
			deref(v.TreatmentPlan),
			deref(v.Prescriptions),
			deref(v.LabOrders),
			deref(v.FollowUp),
			deref(v.Notes),
			deref(vitals.BloodPressure),
			deref(vitals.HeartRate),
			deref(vitals.Temperature),
			v.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// PatientVisitsCSV is the per-patient visit history export; it omits the
// patient id column since the file is already scoped to one patient.
func PatientVisitsCSV(visits []*Visit, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(patientVisitCSVHeader); err != nil {
		return err
	}

	for _, v := range visits {
		row := []string{
			v.VisitDate.Format("2006-01-02 15:04"),
			v.ChiefComplaint,
			deref(v.Diagnosis),
			deref(v.ExaminationFindings),
			deref(v.TreatmentPlan),
			deref(v.Prescriptions),
			deref(v.FollowUp),
			deref(v.Notes),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
