package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"practice/internal/app"
	"practice/internal/logger"
	. "practice/internal/models"
)

func stringPtr(s string) *string {
	return &s
}

var sampleComplaints = []string{
	"Annual physical examination",
	"Follow-up for hypertension",
	"Upper respiratory infection symptoms",
	"Routine check-up",
	"Abdominal pain",
	"Back pain",
	"Headaches",
	"Fatigue and weakness",
	"Diabetes management",
	"Skin rash",
}

var sampleDiagnoses = []string{
	"Hypertension, controlled",
	"Type 2 Diabetes Mellitus",
	"Upper Respiratory Infection",
	"Normal examination",
	"Gastroesophageal Reflux Disease",
	"Musculoskeletal strain",
	"Tension headache",
	"Vitamin D deficiency",
	"Allergic rhinitis",
	"Contact dermatitis",
}

const sampleExamFindings = "General appearance: Well-developed, well-nourished, in no acute distress.\n" +
	"HEENT: Normocephalic, atraumatic. Pupils equal, round, and reactive to light.\n" +
	"Cardiovascular: Regular rate and rhythm, no murmurs.\n" +
	"Respiratory: Clear to auscultation bilaterally.\n" +
	"Abdomen: Soft, non-tender, non-distended."

func samplePatients() []Patient {
	return []Patient{
		{
			FirstName:        "Sarah",
			LastName:         "Johnson",
			DateOfBirth:      "1985-03-15",
			Gender:           GenderFemale,
			Email:            "sarah.johnson@email.com",
			Phone:            "(555) 123-4567",
			Address:          "123 Main Street",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62701",
			BloodType:        stringPtr("A+"),
			Allergies:        stringPtr("Penicillin, Peanuts"),
			EmergencyContact: stringPtr("Michael Johnson"),
			EmergencyPhone:   stringPtr("(555) 123-4568"),
			Insurance:        stringPtr("Blue Cross Blue Shield"),
			InsuranceID:      stringPtr("BC123456789"),
		},
		{
			FirstName:        "Robert",
			LastName:         "Chen",
			DateOfBirth:      "1978-07-22",
			Gender:           GenderMale,
			Email:            "robert.chen@email.com",
			Phone:            "(555) 234-5678",
			Address:          "456 Oak Avenue",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62702",
			BloodType:        stringPtr("O-"),
			Allergies:        stringPtr("None"),
			EmergencyContact: stringPtr("Lisa Chen"),
			EmergencyPhone:   stringPtr("(555) 234-5679"),
			Insurance:        stringPtr("United Healthcare"),
			InsuranceID:      stringPtr("UH987654321"),
		},
		{
			FirstName:        "Maria",
			LastName:         "Garcia",
			DateOfBirth:      "1992-11-08",
			Gender:           GenderFemale,
			Email:            "maria.garcia@email.com",
			Phone:            "(555) 345-6789",
			Address:          "789 Elm Street",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62703",
			BloodType:        stringPtr("B+"),
			EmergencyContact: stringPtr("Carlos Garcia"),
			EmergencyPhone:   stringPtr("(555) 345-6790"),
			Insurance:        stringPtr("Aetna"),
			InsuranceID:      stringPtr("AE456789123"),
		},
		{
			FirstName:        "James",
			LastName:         "Wilson",
			DateOfBirth:      "1965-05-30",
			Gender:           GenderMale,
			Email:            "james.wilson@email.com",
			Phone:            "(555) 456-7890",
			Address:          "321 Pine Road",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62704",
			BloodType:        stringPtr("AB+"),
			Allergies:        stringPtr("Sulfa drugs"),
			EmergencyContact: stringPtr("Patricia Wilson"),
			EmergencyPhone:   stringPtr("(555) 456-7891"),
			Insurance:        stringPtr("Cigna"),
			InsuranceID:      stringPtr("CI789123456"),
		},
		{
			FirstName:        "Emily",
			LastName:         "Taylor",
			DateOfBirth:      "1988-09-12",
			Gender:           GenderFemale,
			Email:            "emily.taylor@email.com",
			Phone:            "(555) 567-8901",
			Address:          "654 Maple Drive",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62705",
			BloodType:        stringPtr("A-"),
			EmergencyContact: stringPtr("David Taylor"),
			EmergencyPhone:   stringPtr("(555) 567-8902"),
			Insurance:        stringPtr("Blue Cross Blue Shield"),
			InsuranceID:      stringPtr("BC321654987"),
		},
		{
			FirstName:        "Michael",
			LastName:         "Anderson",
			DateOfBirth:      "1975-02-28",
			Gender:           GenderMale,
			Email:            "michael.anderson@email.com",
			Phone:            "(555) 678-9012",
			Address:          "987 Cedar Lane",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62706",
			BloodType:        stringPtr("O+"),
			Allergies:        stringPtr("Latex"),
			EmergencyContact: stringPtr("Jennifer Anderson"),
			EmergencyPhone:   stringPtr("(555) 678-9013"),
			Insurance:        stringPtr("United Healthcare"),
			InsuranceID:      stringPtr("UH654987321"),
		},
		{
			FirstName:        "Linda",
			LastName:         "Martinez",
			DateOfBirth:      "1970-12-05",
			Gender:           GenderFemale,
			Email:            "linda.martinez@email.com",
			Phone:            "(555) 789-0123",
			Address:          "159 Birch Street",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62707",
			BloodType:        stringPtr("B-"),
			EmergencyContact: stringPtr("Jose Martinez"),
			EmergencyPhone:   stringPtr("(555) 789-0124"),
			Insurance:        stringPtr("Aetna"),
			InsuranceID:      stringPtr("AE159753486"),
		},
		{
			FirstName:        "David",
			LastName:         "Thompson",
			DateOfBirth:      "1995-06-18",
			Gender:           GenderMale,
			Email:            "david.thompson@email.com",
			Phone:            "(555) 890-1234",
			Address:          "753 Willow Court",
			City:             "Springfield",
			State:            "IL",
			ZipCode:          "62708",
			EmergencyContact: stringPtr("Susan Thompson"),
			EmergencyPhone:   stringPtr("(555) 890-1235"),
			Insurance:        stringPtr("Cigna"),
			InsuranceID:      stringPtr("CI753159486"),
		},
	}
}

func sampleVisitsForPatient(rng *rand.Rand, patientID string) []Visit {
	visitCount := rng.Intn(5) + 2
	visits := make([]Visit, 0, visitCount)

	for i := 0; i < visitCount; i++ {
		daysAgo := rng.Intn(365) + i*30
		visitDate := time.Now().AddDate(0, 0, -daysAgo)

		visit := Visit{
			PatientID:      patientID,
			VisitDate:      visitDate,
			ChiefComplaint: sampleComplaints[rng.Intn(len(sampleComplaints))],
			VitalSigns: &VitalSigns{
				BloodPressure:    stringPtr(fmt.Sprintf("%d/%d", 110+rng.Intn(30), 70+rng.Intn(20))),
				HeartRate:        stringPtr(fmt.Sprintf("%d", 60+rng.Intn(40))),
				Temperature:      stringPtr(fmt.Sprintf("%.1f", 97+rng.Float64()*2.5)),
				RespiratoryRate:  stringPtr(fmt.Sprintf("%d", 14+rng.Intn(8))),
				OxygenSaturation: stringPtr(fmt.Sprintf("%d", 96+rng.Intn(4))),
				Weight:           stringPtr(fmt.Sprintf("%d lbs", 140+rng.Intn(60))),
				Height:           stringPtr(fmt.Sprintf("%d in", 64+rng.Intn(12))),
			},
			ExaminationFindings: stringPtr(sampleExamFindings),
			Diagnosis:           stringPtr(sampleDiagnoses[rng.Intn(len(sampleDiagnoses))]),
			TreatmentPlan:       stringPtr("Continue current medications. Lifestyle modifications recommended. Monitor symptoms."),
			FollowUp:            stringPtr("Follow-up in 3 months or as needed"),
			Notes:               stringPtr("Patient is compliant with treatment. Condition stable."),
		}

		if i%2 == 0 {
			visit.Prescriptions = stringPtr("Lisinopril 10mg daily\nMetformin 500mg twice daily")
		}
		if i == 0 {
			visit.FollowUp = stringPtr("Follow-up in 2 weeks")
		}

		visits = append(visits, visit)
	}

	return visits
}

// Seed loads sample patients, visits, and the default visit templates.
// It is a no-op when patients already exist.
func Seed(ctx context.Context, app *app.App, log logger.Logger) error {
	log = log.Function("Seed")

	existing, err := app.PatientRepo.GetAll(ctx)
	if err != nil {
		return log.Err("failed to check existing patients", err)
	}
	if len(existing) > 0 {
		log.Info("Sample data already exists, skipping initialization")
		return nil
	}

	log.Info("Seeding sample data")

	if err := app.TemplateController.InitializeDefaults(ctx); err != nil {
		return log.Err("failed to initialize default templates", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, patient := range samplePatients() {
		created, err := app.PatientController.Create(ctx, &patient)
		if err != nil {
			return log.Err("failed to create sample patient", err, "lastName", patient.LastName)
		}

		for _, visit := range sampleVisitsForPatient(rng, created.ID) {
			if _, err := app.VisitController.Create(ctx, &visit); err != nil {
				return log.Err("failed to create sample visit", err, "patientID", created.ID)
			}
		}
	}

	log.Info("Sample data seeded")
	return nil
}
