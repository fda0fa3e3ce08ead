package models

import "time"

// VitalSigns are recorded as free-form text, not parsed numerics.
type VitalSigns struct {
	BloodPressure    *string `gorm:"type:varchar(50)" json:"bloodPressure,omitempty"`
	HeartRate        *string `gorm:"type:varchar(50)" json:"heartRate,omitempty"`
	Temperature      *string `gorm:"type:varchar(50)" json:"temperature,omitempty"`
	RespiratoryRate  *string `gorm:"type:varchar(50)" json:"respiratoryRate,omitempty"`
	OxygenSaturation *string `gorm:"type:varchar(50)" json:"oxygenSaturation,omitempty"`
	Weight           *string `gorm:"type:varchar(50)" json:"weight,omitempty"`
	Height           *string `gorm:"type:varchar(50)" json:"height,omitempty"`
}

type Visit struct {
	BaseUUIDModel
	PatientID      string    `gorm:"type:varchar(64);not null;index" json:"patientId"`
	VisitDate      time.Time `gorm:"not null;index"                  json:"visitDate"`
	ChiefComplaint string    `gorm:"type:text;not null"              json:"chiefComplaint"`

	VitalSigns *VitalSigns `gorm:"embedded;embeddedPrefix:vital_" json:"vitalSigns,omitempty"`

	ExaminationFindings *string `gorm:"type:text" json:"examinationFindings,omitempty"`
	Diagnosis           *string `gorm:"type:text" json:"diagnosis,omitempty"`
	TreatmentPlan       *string `gorm:"type:text" json:"treatmentPlan,omitempty"`
	Prescriptions       *string `gorm:"type:text" json:"prescriptions,omitempty"`
	LabOrders           *string `gorm:"type:text" json:"labOrders,omitempty"`
	FollowUp            *string `gorm:"type:text" json:"followUp,omitempty"`
	Notes               *string `gorm:"type:text" json:"notes,omitempty"`
}

// VisitUpdate is a partial visit. PatientID is deliberately absent: the
// owning patient of a visit never changes after creation.
type VisitUpdate struct {
	VisitDate      *time.Time `json:"visitDate,omitempty"`
	ChiefComplaint *string    `json:"chiefComplaint,omitempty"`

	VitalSigns *VitalSigns `json:"vitalSigns,omitempty"`

	ExaminationFindings *string `json:"examinationFindings,omitempty"`
	Diagnosis           *string `json:"diagnosis,omitempty"`
	TreatmentPlan       *string `json:"treatmentPlan,omitempty"`
	Prescriptions       *string `json:"prescriptions,omitempty"`
	LabOrders           *string `json:"labOrders,omitempty"`
	FollowUp            *string `json:"followUp,omitempty"`
	Notes               *string `json:"notes,omitempty"`
}

// Apply merges the partial update into visit, field present wins.
func (u VisitUpdate) Apply(visit *Visit) {
	if u.VisitDate != nil {
		visit.VisitDate = *u.VisitDate
	}
	if u.ChiefComplaint != nil {
		visit.ChiefComplaint = *u.ChiefComplaint
	}
	if u.VitalSigns != nil {
		visit.VitalSigns = u.VitalSigns
	}
	if u.ExaminationFindings != nil {
		visit.ExaminationFindings = u.ExaminationFindings
	}
	if u.Diagnosis != nil {
		visit.Diagnosis = u.Diagnosis
	}
	if u.TreatmentPlan != nil {
		visit.TreatmentPlan = u.TreatmentPlan
	}
	if u.Prescriptions != nil {
		visit.Prescriptions = u.Prescriptions
	}
	if u.LabOrders != nil {
		visit.LabOrders = u.LabOrders
	}
	if u.FollowUp != nil {
		visit.FollowUp = u.FollowUp
	}
	if u.Notes != nil {
		visit.Notes = u.Notes
	}
}
