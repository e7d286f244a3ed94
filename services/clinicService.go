package services

import (
	"AyurCare/models"
	"AyurCare/repositories"
	"context"
)

type ClinicService struct {
	repository *repositories.ClinicRepository
}

func NewClinicService(repository *repositories.ClinicRepository) *ClinicService {
	return &ClinicService{repository: repository}
}

func (s *ClinicService) Create(ctx context.Context, clinic *models.Clinic) error {
	if clinic.Name == "" {
		return NewValidationError("name", "clinic name is required")
	}
	return s.repository.Create(ctx, clinic)
}

func (s *ClinicService) GetByID(ctx context.Context, id string) (*models.Clinic, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ClinicService) GetAll(ctx context.Context) ([]models.Clinic, error) {
	return s.repository.GetAll(ctx)
}

func (s *ClinicService) Update(ctx context.Context, clinic *models.Clinic) error {
	return s.repository.Update(ctx, clinic)
}
