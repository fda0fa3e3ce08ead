package templateController

import (
	"context"
	"practice/internal/logger"
	. "practice/internal/models"
	"practice/internal/repositories"
)

type TemplateController struct {
	templateRepo repositories.TemplateRepository
	log          logger.Logger
}

func New(templateRepo repositories.TemplateRepository) *TemplateController {
	return &TemplateController{
		templateRepo: templateRepo,
		log:          logger.New("TemplateController"),
	}
}

func (tc *TemplateController) GetAll(ctx context.Context) ([]*VisitTemplate, error) {
	return tc.templateRepo.GetAll(ctx)
}

func (tc *TemplateController) GetByID(ctx context.Context, id string) (*VisitTemplate, error) {
	return tc.templateRepo.GetByID(ctx, id)
}

func (tc *TemplateController) GetByCategory(ctx context.Context, category TemplateCategory) ([]*VisitTemplate, error) {
	return tc.templateRepo.GetByCategory(ctx, category)
}

func (tc *TemplateController) Create(ctx context.Context, template *VisitTemplate) (*VisitTemplate, error) {
	log := tc.log.Function("Create")

	if template.Name == "" {
		return nil, log.Error("template name is required")
	}

	if err := tc.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (tc *TemplateController) Update(ctx context.Context, id string, update TemplateUpdate) (*VisitTemplate, error) {
	template, err := tc.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, nil
	}

	update.Apply(template)

	if err := tc.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

func (tc *TemplateController) Delete(ctx context.Context, id string) error {
	return tc.templateRepo.Delete(ctx, id)
}

// ApplyTemplate pre-fills the visit from the named template. The bool
// reports whether the template existed.
func (tc *TemplateController) ApplyTemplate(ctx context.Context, templateID string, visit *Visit) (bool, error) {
	template, err := tc.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return false, err
	}
	if template == nil {
		return false, nil
	}

	template.ApplyTo(visit)
	return true, nil
}

// InitializeDefaults seeds the four stock templates. It is idempotent: any
// existing template at all makes it a no-op.
func (tc *TemplateController) InitializeDefaults(ctx context.Context) error {
	log := tc.log.Function("InitializeDefaults")

	count, err := tc.templateRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, template := range DefaultTemplates() {
		if err := tc.templateRepo.Create(ctx, template); err != nil {
			return log.Err("failed to seed default template", err, "name", template.Name)
		}
	}

	log.Info("Seeded default visit templates")
	return nil
}

// DefaultTemplates returns the stock template set. The field text is part of
// the product surface; consumers rely on the exact wording.
func DefaultTemplates() []*VisitTemplate {
	return []*VisitTemplate{
		{
			Name:        "General Check-up",
			Description: "Standard annual physical examination",
			Category:    CategoryGeneral,
			Fields: TemplateFields{
				ChiefComplaint:      "Annual physical examination",
				ExaminationFindings: "General appearance: \nVital signs: \nCardiovascular: \nRespiratory: \nAbdomen: \nNeurological: ",
				TreatmentPlan:       "Continue current medications\nHealthy lifestyle recommendations",
				FollowUp:            "Return in 12 months for annual check-up",
			},
		},
		{
			Name:        "Follow-up Visit",
			Description: "Standard follow-up appointment",
			Category:    CategoryFollowUp,
			Fields: TemplateFields{
				ChiefComplaint:      "Follow-up visit",
				ExaminationFindings: "Patient reports: \nProgress since last visit: ",
				TreatmentPlan:       "Continue current treatment plan",
				FollowUp:            "Follow-up in 2-4 weeks",
			},
		},
		{
			Name:        "Urgent Care",
			Description: "Template for urgent medical concerns",
			Category:    CategoryUrgent,
			Fields: TemplateFields{
				ExaminationFindings: "Chief complaint: \nOnset: \nSeverity: \nPhysical examination: ",
				TreatmentPlan:       "Immediate: \nPrescriptions: ",
				FollowUp:            "Follow-up in 24-48 hours or sooner if symptoms worsen",
			},
		},
		{
			Name:        "Specialist Consultation",
			Description: "Initial specialist consultation",
			Category:    CategorySpecialist,
			Fields: TemplateFields{
				ChiefComplaint:      "Referred by: \nReason for referral: ",
				ExaminationFindings: "History of present illness: \nRelevant medical history: \nPhysical examination: ",
				Diagnosis:           "Assessment: ",
				TreatmentPlan:       "Recommendations: ",
				LabOrders:           "Additional tests ordered: ",
				FollowUp:            "Follow-up as needed",
			},
		},
	}
}
