package services

import (
	"context"
	"testing"

	"AyurCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation runs before the repository is touched, so a nil repository is
// enough for these cases.

func TestPlanServiceCreateTemplateValidation(t *testing.T) {
	service := NewPlanService(nil)
	ctx := context.Background()

	err := service.CreateTemplate(ctx, &models.PlanTemplate{
		ClinicID: "clinic-1", Kind: "EXERCISE", Title: "Morning walk", Content: "30 minutes daily",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind")

	err = service.CreateTemplate(ctx, &models.PlanTemplate{
		ClinicID: "clinic-1", Kind: models.PlanDiet, Content: "Warm meals only",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	err = service.CreateTemplate(ctx, &models.PlanTemplate{
		ClinicID: "clinic-1", Kind: models.PlanTherapy, Title: "Abhyanga course",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content")
}

func TestPlanServiceUpdateTemplateCannotBlankContent(t *testing.T) {
	service := NewPlanService(nil)

	err := service.UpdateTemplate(context.Background(), &models.PlanTemplate{
		ID:       3,
		ClinicID: "clinic-1",
		Kind:     models.PlanDiet,
		Title:    "Pitta pacifying diet",
		Content:  "",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "content")
}

func TestPlanServiceUpdateTemplateRejectsUnknownKind(t *testing.T) {
	service := NewPlanService(nil)

	err := service.UpdateTemplate(context.Background(), &models.PlanTemplate{
		ID:       3,
		ClinicID: "clinic-1",
		Kind:     "EXERCISE",
		Title:    "Morning walk",
		Content:  "30 minutes daily",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "kind")
}

func TestPlanServiceGeneratePlanRejectsBadStartDate(t *testing.T) {
	service := NewPlanService(nil)

	_, err := service.GeneratePlan(context.Background(), "clinic-1", "pat-1", 3, "01-09-2026", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "start_date")
}
