package repositories

import (
	"AyurCare/database"
	"AyurCare/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PrescriptionRepository struct{}

func NewPrescriptionRepository() *PrescriptionRepository {
	return &PrescriptionRepository{}
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	if err := database.DB.Create(prescription).Error; err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, clinicID string, id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := database.DB.
		Preload("Items").
		First(&prescription, "id = ? AND clinic_id = ?", id, clinicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := database.DB.
		Preload("Items").
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (r *PrescriptionRepository) Delete(ctx context.Context, clinicID string, id uint) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("prescription_id = ?", id).Delete(&models.PrescriptionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Prescription{}, "id = ? AND clinic_id = ?", id, clinicID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete prescription: %w", err)
	}
	return nil
}
