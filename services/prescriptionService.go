package services

import (
	"AyurCare/models"
	"AyurCare/repositories"
	"context"
)

type PrescriptionService struct {
	repository *repositories.PrescriptionRepository
}

func NewPrescriptionService(repository *repositories.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repository: repository}
}

func (s *PrescriptionService) Create(ctx context.Context, prescription *models.Prescription) error {
	if prescription.PatientID == "" {
		return NewValidationError("patient_id", "a patient must be selected")
	}
	if len(prescription.Items) == 0 {
		return NewValidationError("items", "at least one medicine is required")
	}
	for i := range prescription.Items {
		if prescription.Items[i].MedicineName == "" {
			return NewValidationError("items", "every item needs a medicine name")
		}
		if prescription.Items[i].Dosage == "" {
			return NewValidationError("items", "every item needs a dosage")
		}
	}
	return s.repository.Create(ctx, prescription)
}

func (s *PrescriptionService) GetByID(ctx context.Context, clinicID string, id uint) (*models.Prescription, error) {
	return s.repository.GetByID(ctx, clinicID, id)
}

func (s *PrescriptionService) ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Prescription, error) {
	return s.repository.ListByPatient(ctx, clinicID, patientID)
}

func (s *PrescriptionService) Delete(ctx context.Context, clinicID string, id uint) error {
	return s.repository.Delete(ctx, clinicID, id)
}
