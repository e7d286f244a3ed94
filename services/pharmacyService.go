package services

import (
	"AyurCare/models"
	"AyurCare/repositories"
	"AyurCare/utils"
	"context"
)

type PharmacyService struct {
	repository *repositories.MedicineRepository
}

func NewPharmacyService(repository *repositories.MedicineRepository) *PharmacyService {
	return &PharmacyService{repository: repository}
}

func (s *PharmacyService) Create(ctx context.Context, medicine *models.Medicine) error {
	if err := utils.ValidateMedicineData(*medicine); err != nil {
		return NewValidationError("medicine", err.Error())
	}
	return s.repository.Create(ctx, medicine)
}

func (s *PharmacyService) GetByID(ctx context.Context, clinicID string, id uint) (*models.Medicine, error) {
	return s.repository.GetByID(ctx, clinicID, id)
}

func (s *PharmacyService) GetAll(ctx context.Context, clinicID string) ([]models.Medicine, error) {
	return s.repository.GetAll(ctx, clinicID)
}

func (s *PharmacyService) ListLowStock(ctx context.Context, clinicID string) ([]models.Medicine, error) {
	return s.repository.ListLowStock(ctx, clinicID)
}

func (s *PharmacyService) Update(ctx context.Context, medicine *models.Medicine) error {
	if err := utils.ValidateMedicineData(*medicine); err != nil {
		return NewValidationError("medicine", err.Error())
	}
	return s.repository.Update(ctx, medicine)
}

// AdjustStock applies a signed quantity delta: positive restocks, negative
// dispenses.
func (s *PharmacyService) AdjustStock(ctx context.Context, clinicID string, id uint, delta int) (*models.Medicine, error) {
	if delta == 0 {
		return nil, NewValidationError("delta", "stock adjustment cannot be zero")
	}
	return s.repository.AdjustStock(ctx, clinicID, id, delta)
}

func (s *PharmacyService) Delete(ctx context.Context, clinicID string, id uint) error {
	return s.repository.Delete(ctx, clinicID, id)
}
