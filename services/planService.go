package services

import (
	"AyurCare/models"
	"AyurCare/repositories"
	"AyurCare/utils"
	"context"
)

type PlanService struct {
	repository *repositories.PlanRepository
}

func NewPlanService(repository *repositories.PlanRepository) *PlanService {
	return &PlanService{repository: repository}
}

func (s *PlanService) CreateTemplate(ctx context.Context, template *models.PlanTemplate) error {
	if err := validateTemplate(template); err != nil {
		return err
	}
	return s.repository.CreateTemplate(ctx, template)
}

func validateTemplate(template *models.PlanTemplate) error {
	if template.Kind != models.PlanDiet && template.Kind != models.PlanTherapy {
		return NewValidationError("kind", "must be DIET or THERAPY")
	}
	if template.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if template.Content == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}

func (s *PlanService) GetTemplateByID(ctx context.Context, clinicID string, id uint) (*models.PlanTemplate, error) {
	return s.repository.GetTemplateByID(ctx, clinicID, id)
}

func (s *PlanService) ListTemplates(ctx context.Context, clinicID, kind string) ([]models.PlanTemplate, error) {
	return s.repository.ListTemplates(ctx, clinicID, kind)
}

// UpdateTemplate holds edits to the same rules as creation, so an update
// cannot blank out a template's content or switch it to an unknown kind.
func (s *PlanService) UpdateTemplate(ctx context.Context, template *models.PlanTemplate) error {
	if err := validateTemplate(template); err != nil {
		return err
	}
	return s.repository.UpdateTemplate(ctx, template)
}

func (s *PlanService) DeleteTemplate(ctx context.Context, clinicID string, id uint) error {
	return s.repository.DeleteTemplate(ctx, clinicID, id)
}

// GeneratePlan copies a template into a plan assigned to a patient. The
// plan keeps its own copy of the content so later template edits do not
// rewrite plans already handed out.
func (s *PlanService) GeneratePlan(ctx context.Context, clinicID, patientID string, templateID uint, startDate, doctorNote string) (*models.PatientPlan, error) {
	if !utils.ValidCalendarDate(startDate) {
		return nil, NewValidationError("start_date", "must be a YYYY-MM-DD date")
	}

	template, err := s.repository.GetTemplateByID(ctx, clinicID, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrNotFound
	}

	plan := &models.PatientPlan{
		ClinicID:   clinicID,
		PatientID:  patientID,
		TemplateID: template.ID,
		Kind:       template.Kind,
		Title:      template.Title,
		Content:    template.Content,
		StartDate:  startDate,
		DoctorNote: doctorNote,
	}
	if err := s.repository.CreatePatientPlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) ListPatientPlans(ctx context.Context, clinicID, patientID string) ([]models.PatientPlan, error) {
	return s.repository.ListPatientPlans(ctx, clinicID, patientID)
}

func (s *PlanService) DeletePatientPlan(ctx context.Context, clinicID string, id uint) error {
	return s.repository.DeletePatientPlan(ctx, clinicID, id)
}
