package repositories

import (
	"AyurCare/database"
	"AyurCare/models"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicRepository struct{}

func NewClinicRepository() *ClinicRepository {
	return &ClinicRepository{}
}

func (r *ClinicRepository) Create(ctx context.Context, clinic *models.Clinic) error {
	if clinic.ID == "" {
		clinic.ID = uuid.New().String()
	}
	if err := database.DB.Create(clinic).Error; err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}
	return nil
}

func (r *ClinicRepository) GetByID(ctx context.Context, id string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := database.DB.First(&clinic, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return &clinic, nil
}

func (r *ClinicRepository) GetAll(ctx context.Context) ([]models.Clinic, error) {
	var clinics []models.Clinic
	if err := database.DB.Order("name ASC").Find(&clinics).Error; err != nil {
		return nil, fmt.Errorf("failed to get all clinics: %w", err)
	}
	return clinics, nil
}

func (r *ClinicRepository) Update(ctx context.Context, clinic *models.Clinic) error {
	if err := database.DB.Save(clinic).Error; err != nil {
		return fmt.Errorf("failed to update clinic: %w", err)
	}
	return nil
}
