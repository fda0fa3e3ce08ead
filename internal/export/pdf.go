package export

import (
	"fmt"
	"io"
	. "practice/internal/models"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PatientRecordPDF renders the full clinical document for one patient:
// demographic block, then the visit history, with a page-numbered footer.
func PatientRecordPDF(patient *Patient, visits []*Visit, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	generatedAt := time.Now().Format("Jan 02, 2006 15:04")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5,
			fmt.Sprintf("Generated on %s - Page %d of {nb}", generatedAt, pdf.PageNo()),
			"", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Patient Medical Record", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Patient Information", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range patientInfoLines(patient) {
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	if len(visits) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, "Visit History", "", 1, "L", false, 0, "")

		for i, visit := range visits {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6,
				fmt.Sprintf("Visit %d - %s", i+1, visit.VisitDate.Format("Jan 02, 2006")),
				"", 1, "L", false, 0, "")

			pdf.SetFont("Helvetica", "", 9)
			for _, line := range visitDetailLines(visit) {
				pdf.MultiCell(0, 4, line, "", "L", false)
			}
			pdf.Ln(5)
		}
	}

	return pdf.Output(w)
}

func patientInfoLines(p *Patient) []string {
	dob := p.DateOfBirth
	if parsed, err := time.Parse("2006-01-02", p.DateOfBirth); err == nil {
		dob = parsed.Format("Jan 02, 2006")
	}

	lines := []string{
		fmt.Sprintf("Name: %s %s", p.FirstName, p.LastName),
		fmt.Sprintf("Date of Birth: %s", dob),
		fmt.Sprintf("Gender: %s", p.Gender),
		fmt.Sprintf("Email: %s", p.Email),
		fmt.Sprintf("Phone: %s", p.Phone),
		fmt.Sprintf("Address: %s, %s, %s %s", p.Address, p.City, p.State, p.ZipCode),
	}

	if p.BloodType != nil {
		lines = append(lines, fmt.Sprintf("Blood Type: %s", *p.BloodType))
	}
	if p.Allergies != nil {
		lines = append(lines, fmt.Sprintf("Allergies: %s", *p.Allergies))
	}
	if p.Insurance != nil {
		lines = append(lines, fmt.Sprintf("Insurance: %s (ID: %s)", *p.Insurance, deref(p.InsuranceID)))
	}
	if p.EmergencyContact != nil {
		lines = append(lines, fmt.Sprintf("Emergency Contact: %s (%s)", *p.EmergencyContact, deref(p.EmergencyPhone)))
	}

	return lines
}

func visitDetailLines(v *Visit) []string {
	lines := []string{fmt.Sprintf("Chief Complaint: %s", v.ChiefComplaint)}

	optional := []struct {
		label string
		value *string
	}{
		{"Diagnosis", v.Diagnosis},
		{"Examination", v.ExaminationFindings},
		{"Treatment", v.TreatmentPlan},
		{"Prescriptions", v.Prescriptions},
		{"Follow-up", v.FollowUp},
	}

	for _, field := range optional {
		if field.value != nil && *field.value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", field.label, *field.value))
		}
	}

	return lines
}
