package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	. "practice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func samplePatient() *Patient {
	p := &Patient{
		FirstName:   "Sarah",
		LastName:    "Johnson",
		DateOfBirth: "1985-03-15",
		Gender:      GenderFemale,
		Email:       "sarah.johnson@email.com",
		Phone:       "(555) 123-4567",
		Address:     "123 Main Street",
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62701",
		BloodType:   strPtr("A+"),
		Allergies:   strPtr("Penicillin, Peanuts"),
		Insurance:   strPtr("Blue Cross Blue Shield"),
		InsuranceID: strPtr("BC123456789"),
	}
	p.ID = "patient-1"
	p.CreatedAt = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	return p
}

func sampleVisit() *Visit {
	v := &Visit{
		PatientID:      "patient-1",
		VisitDate:      time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		ChiefComplaint: "Annual physical examination",
		VitalSigns: &VitalSigns{
			BloodPressure: strPtr("120/80"),
			HeartRate:     strPtr("72"),
			Temperature:   strPtr("98.6"),
		},
		Diagnosis:     strPtr("Normal examination"),
		TreatmentPlan: strPtr("Continue current medications"),
		FollowUp:      strPtr("Return in 12 months"),
	}
	v.ID = "visit-1"
	v.CreatedAt = time.Date(2025, 6, 1, 9, 45, 0, 0, time.UTC)
	return v
}

func TestPatientsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PatientsCSV([]*Patient{samplePatient()}, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"First Name", "Last Name", "Date of Birth", "Gender", "Email", "Phone",
		"Address", "City", "State", "Zip Code", "Blood Type", "Allergies",
		"Insurance", "Insurance ID", "Emergency Contact", "Emergency Phone",
		"Created At",
	}, records[0])

	row := records[1]
	assert.Equal(t, "Sarah", row[0])
	assert.Equal(t, "Johnson", row[1])
	assert.Equal(t, "1985-03-15", row[2])
	assert.Equal(t, "female", row[3])
	assert.Equal(t, "A+", row[10])
	assert.Equal(t, "", row[14]) // emergency contact unset
	assert.Equal(t, "2025-01-15T10:30:00Z", row[16])
}

func TestVisitsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, VisitsCSV([]*Visit{sampleVisit()}, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Visit Date", "Patient ID", "Chief Complaint", "Diagnosis",
		"Examination Findings", "Treatment Plan", "Prescriptions", "Lab Orders",
		"Follow-up", "Notes", "Blood Pressure", "Heart Rate", "Temperature",
		"Created At",
	}, records[0])

	row := records[1]
	assert.Equal(t, "2025-06-01T09:30:00Z", row[0])
	assert.Equal(t, "patient-1", row[1])
	assert.Equal(t, "Annual physical examination", row[2])
	assert.Equal(t, "Normal examination", row[3])
	assert.Equal(t, "120/80", row[10])
	assert.Equal(t, "72", row[11])
}

func TestVisitsCSV_NilVitalSigns(t *testing.T) {
	visit := sampleVisit()
	visit.VitalSigns = nil

	var buf bytes.Buffer
	require.NoError(t, VisitsCSV([]*Visit{visit}, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1][10])
	assert.Equal(t, "", records[1][12])
}

func TestPatientVisitsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PatientVisitsCSV([]*Visit{sampleVisit()}, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Visit Date", "Chief Complaint", "Diagnosis", "Examination Findings",
		"Treatment Plan", "Prescriptions", "Follow-up", "Notes",
	}, records[0])

	row := records[1]
	assert.Equal(t, "2025-06-01 09:30", row[0])
	assert.Equal(t, "Annual physical examination", row[1])
}

func TestPatientsCSV_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PatientsCSV(nil, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestFilenames(t *testing.T) {
	patient := samplePatient()
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Johnson_Sarah_medical_record.pdf", PatientRecordFilename(patient))
	assert.Equal(t, "patients_export_2025-06-15.csv", PatientsExportFilename(at))
	assert.Equal(t, "visits_export_2025-06-15.csv", VisitsExportFilename(at))
	assert.Equal(t, "Johnson_Sarah_visits_2025-06-15.csv", PatientVisitsFilename(patient, at))
}

func TestPatientRecordPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PatientRecordPDF(samplePatient(), []*Visit{sampleVisit()}, &buf))

	assert.Greater(t, buf.Len(), 500)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPatientRecordPDF_NoVisits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PatientRecordPDF(samplePatient(), nil, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
