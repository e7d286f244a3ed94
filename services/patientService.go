package services

import (
	"AyurCare/models"
	"AyurCare/repositories"
	"AyurCare/utils"
	"context"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return NewValidationError("patient", err.Error())
	}
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, clinicID, id string) (*models.Patient, error) {
	return s.repository.GetByID(ctx, clinicID, id)
}

func (s *PatientService) GetAll(ctx context.Context, clinicID string) ([]models.Patient, error) {
	return s.repository.GetAll(ctx, clinicID)
}

func (s *PatientService) Search(ctx context.Context, clinicID, term string) ([]models.Patient, error) {
	if term == "" {
		return s.repository.GetAll(ctx, clinicID)
	}
	return s.repository.Search(ctx, clinicID, term)
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return NewValidationError("patient", err.Error())
	}
	return s.repository.Update(ctx, patient)
}

func (s *PatientService) Delete(ctx context.Context, clinicID, id string) error {
	return s.repository.Delete(ctx, clinicID, id)
}
