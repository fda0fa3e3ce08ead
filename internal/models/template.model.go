package models

type TemplateCategory string

const (
	CategoryGeneral    TemplateCategory = "general"
	CategoryFollowUp   TemplateCategory = "follow-up"
	CategoryUrgent     TemplateCategory = "urgent"
	CategorySpecialist TemplateCategory = "specialist"
	CategoryCustom     TemplateCategory = "custom"
)

// TemplateFields mirror the narrative fields of a visit and are used as
// pre-fill defaults when a template is applied.
type TemplateFields struct {
	ChiefComplaint      string `gorm:"type:text" json:"chiefComplaint,omitempty"`
	ExaminationFindings string `gorm:"type:text" json:"examinationFindings,omitempty"`
	Diagnosis           string `gorm:"type:text" json:"diagnosis,omitempty"`
	TreatmentPlan       string `gorm:"type:text" json:"treatmentPlan,omitempty"`
	Prescriptions       string `gorm:"type:text" json:"prescriptions,omitempty"`
	LabOrders           string `gorm:"type:text" json:"labOrders,omitempty"`
	FollowUp            string `gorm:"type:text" json:"followUp,omitempty"`
	Notes               string `gorm:"type:text" json:"notes,omitempty"`
}

type VisitTemplate struct {
	BaseUUIDModel
	Name        string           `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string           `gorm:"type:text"                        json:"description"`
	Category    TemplateCategory `gorm:"type:varchar(20);not null;index"  json:"category"`

	Fields TemplateFields `gorm:"embedded;embeddedPrefix:field_" json:"fields"`
}

// ApplyTo pre-fills visit from the template. A template field only takes
// effect when it is non-empty; it then replaces the visit's current value.
// Empty template fields never erase anything.
func (t VisitTemplate) ApplyTo(visit *Visit) {
	if t.Fields.ChiefComplaint != "" {
		visit.ChiefComplaint = t.Fields.ChiefComplaint
	}
	applyTemplateField(t.Fields.ExaminationFindings, &visit.ExaminationFindings)
	applyTemplateField(t.Fields.Diagnosis, &visit.Diagnosis)
	applyTemplateField(t.Fields.TreatmentPlan, &visit.TreatmentPlan)
	applyTemplateField(t.Fields.Prescriptions, &visit.Prescriptions)
	applyTemplateField(t.Fields.LabOrders, &visit.LabOrders)
	applyTemplateField(t.Fields.FollowUp, &visit.FollowUp)
	applyTemplateField(t.Fields.Notes, &visit.Notes)
}

func applyTemplateField(value string, target **string) {
	if value == "" {
		return
	}
	v := value
	*target = &v
}

// TemplateUpdate is a partial template, field present wins.
type TemplateUpdate struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Category    *TemplateCategory `json:"category,omitempty"`
	Fields      *TemplateFields   `json:"fields,omitempty"`
}

func (u TemplateUpdate) Apply(template *VisitTemplate) {
	if u.Name != nil {
		template.Name = *u.Name
	}
	if u.Description != nil {
		template.Description = *u.Description
	}
	if u.Category != nil {
		template.Category = *u.Category
	}
	if u.Fields != nil {
		template.Fields = *u.Fields
	}
}
