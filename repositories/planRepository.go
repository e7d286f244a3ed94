package repositories

import (
	"AyurCare/database"
	"AyurCare/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PlanRepository struct{}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

func (r *PlanRepository) CreateTemplate(ctx context.Context, template *models.PlanTemplate) error {
	if err := database.DB.Create(template).Error; err != nil {
		return fmt.Errorf("failed to create plan template: %w", err)
	}
	return nil
}

func (r *PlanRepository) GetTemplateByID(ctx context.Context, clinicID string, id uint) (*models.PlanTemplate, error) {
	var template models.PlanTemplate
	err := database.DB.First(&template, "id = ? AND clinic_id = ?", id, clinicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan template: %w", err)
	}
	return &template, nil
}

// ListTemplates returns templates for a clinic, optionally filtered by kind.
func (r *PlanRepository) ListTemplates(ctx context.Context, clinicID, kind string) ([]models.PlanTemplate, error) {
	query := database.DB.Where("clinic_id = ?", clinicID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var templates []models.PlanTemplate
	if err := query.Order("title ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list plan templates: %w", err)
	}
	return templates, nil
}

func (r *PlanRepository) UpdateTemplate(ctx context.Context, template *models.PlanTemplate) error {
	if err := database.DB.Save(template).Error; err != nil {
		return fmt.Errorf("failed to update plan template: %w", err)
	}
	return nil
}

func (r *PlanRepository) DeleteTemplate(ctx context.Context, clinicID string, id uint) error {
	if err := database.DB.Delete(&models.PlanTemplate{}, "id = ? AND clinic_id = ?", id, clinicID).Error; err != nil {
		return fmt.Errorf("failed to delete plan template: %w", err)
	}
	return nil
}

func (r *PlanRepository) CreatePatientPlan(ctx context.Context, plan *models.PatientPlan) error {
	if err := database.DB.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create patient plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) ListPatientPlans(ctx context.Context, clinicID, patientID string) ([]models.PatientPlan, error) {
	var plans []models.PatientPlan
	err := database.DB.
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient plans: %w", err)
	}
	return plans, nil
}

func (r *PlanRepository) DeletePatientPlan(ctx context.Context, clinicID string, id uint) error {
	if err := database.DB.Delete(&models.PatientPlan{}, "id = ? AND clinic_id = ?", id, clinicID).Error; err != nil {
		return fmt.Errorf("failed to delete patient plan: %w", err)
	}
	return nil
}
