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

	"gorm.io/gorm"
)

const (
	MedicineCacheExpiry = 24 * time.Hour
)

type MedicineRepository struct {
	cache *cache.Cache
}

func NewMedicineRepository(cache *cache.Cache) *MedicineRepository {
	return &MedicineRepository{cache: cache}
}

func (r *MedicineRepository) Create(ctx context.Context, medicine *models.Medicine) error {
	if err := database.DB.Create(medicine).Error; err != nil {
		return fmt.Errorf("failed to create medicine: %w", err)
	}
	return r.invalidate(ctx, medicine.ClinicID)
}

func (r *MedicineRepository) GetByID(ctx context.Context, clinicID string, id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	err := database.DB.First(&medicine, "id = ? AND clinic_id = ?", id, clinicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}
	return &medicine, nil
}

func (r *MedicineRepository) GetAll(ctx context.Context, clinicID string) ([]models.Medicine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("medicines_cache:%s", clinicID)
	var cached []models.Medicine
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get medicines from cache: %v", err)
	}

	var medicines []models.Medicine
	err := database.DB.
		Where("clinic_id = ?", clinicID).
		Order("name ASC").
		Find(&medicines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all medicines: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, medicines, MedicineCacheExpiry); err != nil {
		log.Printf("Failed to set medicines in cache: %v", err)
	}

	return medicines, nil
}

// ListLowStock returns medicines at or below their reorder level.
func (r *MedicineRepository) ListLowStock(ctx context.Context, clinicID string) ([]models.Medicine, error) {
	var medicines []models.Medicine
	err := database.DB.
		Where("clinic_id = ? AND stock_quantity <= reorder_level", clinicID).
		Order("stock_quantity ASC").
		Find(&medicines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low-stock medicines: %w", err)
	}
	return medicines, nil
}

func (r *MedicineRepository) Update(ctx context.Context, medicine *models.Medicine) error {
	lockKey := fmt.Sprintf("medicine_lock:%s_%d", medicine.ClinicID, medicine.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(medicine).Error; err != nil {
			return fmt.Errorf("failed to update medicine: %w", err)
		}
		return r.invalidate(ctx, medicine.ClinicID)
	})
}

// AdjustStock applies a signed delta to the stock quantity, refusing to
// drive it negative. The read-modify-write runs behind the record lock.
func (r *MedicineRepository) AdjustStock(ctx context.Context, clinicID string, id uint, delta int) (*models.Medicine, error) {
	lockKey := fmt.Sprintf("medicine_lock:%s_%d", clinicID, id)
	var medicine models.Medicine
	err := withLock(ctx, lockKey, func() error {
		if err := database.DB.First(&medicine, "id = ? AND clinic_id = ?", id, clinicID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("medicine not found")
			}
			return fmt.Errorf("failed to get medicine: %w", err)
		}
		if medicine.StockQuantity+delta < 0 {
			return fmt.Errorf("stock cannot go below zero: have %d, adjusting by %d", medicine.StockQuantity, delta)
		}
		medicine.StockQuantity += delta
		if err := database.DB.Save(&medicine).Error; err != nil {
			return fmt.Errorf("failed to adjust stock: %w", err)
		}
		return r.invalidate(ctx, clinicID)
	})
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *MedicineRepository) Delete(ctx context.Context, clinicID string, id uint) error {
	if err := database.DB.Delete(&models.Medicine{}, "id = ? AND clinic_id = ?", id, clinicID).Error; err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	return r.invalidate(ctx, clinicID)
}

func (r *MedicineRepository) invalidate(ctx context.Context, clinicID string) error {
	return r.cache.DeleteAll(ctx, fmt.Sprintf("medicines_cache:%s", clinicID))
}
