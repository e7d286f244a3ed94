package repositories

import (
	"AyurCare/cache"
	"AyurCare/database"
	"AyurCare/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}

	// Guard against double registration of the same person.
	var existing models.Patient
	err := database.DB.Where("clinic_id = ? AND first_name = ? AND last_name = ? AND date_of_birth = ?",
		patient.ClinicID, patient.FirstName, patient.LastName, patient.DateOfBirth).
		First(&existing).Error
	if err == nil {
		return errors.New("a patient with the same name and date of birth already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing patient: %w", err)
	}

	if err := database.DB.Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return r.invalidate(ctx, patient.ClinicID, patient.ID)
}

func (r *PatientRepository) GetByID(ctx context.Context, clinicID, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.patientCacheKey(clinicID, id)
	var cached models.Patient
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err := database.DB.First(&patient, "id = ? AND clinic_id = ?", id, clinicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, patient, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context, clinicID string) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("patients_cache:%s", clinicID)
	var cached []models.Patient
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err := database.DB.
		Where("clinic_id = ?", clinicID).
		Order("created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, patients, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

// Search matches patients by name or phone, case-insensitively. Results are
// not cached; the query is already indexed and terms vary too much for the
// cache to earn its keep.
func (r *PatientRepository) Search(ctx context.Context, clinicID, term string) ([]models.Patient, error) {
	pattern := "%" + term + "%"
	var patients []models.Patient
	err := database.DB.
		Where("clinic_id = ?", clinicID).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR phone LIKE ?", pattern, pattern, pattern).
		Order("last_name ASC").
		Limit(25).
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(patient).Error; err != nil {
			return fmt.Errorf("failed to update patient: %w", err)
		}
		return r.invalidate(ctx, patient.ClinicID, patient.ID)
	})
}

// Delete removes the patient and every dependent record in one transaction.
func (r *PatientRepository) Delete(ctx context.Context, clinicID, id string) error {
	lockKey := fmt.Sprintf("patient_lock:%s", id)
	return withLock(ctx, lockKey, func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("patient_id = ?", id).Delete(&models.Appointment{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Where("patient_id = ?", id).Delete(&models.Prescription{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Where("patient_id = ?", id).Delete(&models.PatientPlan{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Where("patient_id = ?", id).Delete(&models.Bill{}).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Delete(&models.Patient{}, "id = ? AND clinic_id = ?", id, clinicID).Error
		})
		if err != nil {
			return fmt.Errorf("failed to delete patient: %w", err)
		}
		return r.invalidate(ctx, clinicID, id)
	})
}

func (r *PatientRepository) invalidate(ctx context.Context, clinicID, id string) error {
	if err := r.cache.Delete(ctx, r.patientCacheKey(clinicID, id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, fmt.Sprintf("patients_cache:%s", clinicID))
}

func (r *PatientRepository) patientCacheKey(clinicID, id string) string {
	return fmt.Sprintf("patient_cache:%s_%s", clinicID, id)
}
