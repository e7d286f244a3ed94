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
	BillCacheExpiry = 24 * time.Hour
)

type BillingRepository struct {
	cache *cache.Cache
}

func NewBillingRepository(cache *cache.Cache) *BillingRepository {
	return &BillingRepository{cache: cache}
}

// Create assigns a human-readable bill number from a database sequence and
// persists the bill with its items in one transaction.
func (r *BillingRepository) Create(ctx context.Context, bill *models.Bill) error {
	var patient models.Patient
	if err := database.DB.First(&patient, "id = ? AND clinic_id = ?", bill.PatientID, bill.ClinicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("patient not found")
		}
		return fmt.Errorf("failed to find patient: %w", err)
	}

	var nextID string
	if err := database.DB.Raw("SELECT 'INV-' || LPAD(nextval('bill_id_seq')::TEXT, 6, '0')").Scan(&nextID).Error; err != nil {
		return fmt.Errorf("failed to obtain next bill number: %w", err)
	}
	bill.BillID = nextID
	for i := range bill.Items {
		bill.Items[i].BillID = nextID
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}
		return r.invalidate(ctx, bill.ClinicID, bill.BillID)
	})
}

func (r *BillingRepository) GetByID(ctx context.Context, clinicID, id string) (*models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.billCacheKey(clinicID, id)
	var cached models.Bill
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get bill from cache: %v", err)
	}

	var bill models.Bill
	err := database.DB.
		Preload("Items").
		Preload("Payments").
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, clinic_id, first_name, last_name, phone, email")
		}).
		First(&bill, "bill_id = ? AND clinic_id = ?", id, clinicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, bill, BillCacheExpiry); err != nil {
		log.Printf("Failed to set bill in cache: %v", err)
	}

	return &bill, nil
}

func (r *BillingRepository) GetAll(ctx context.Context, clinicID string) ([]models.Bill, error) {
	var bills []models.Bill
	err := database.DB.
		Preload("Items").
		Where("clinic_id = ?", clinicID).
		Order("created_at DESC").
		Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all bills: %w", err)
	}
	return bills, nil
}

func (r *BillingRepository) ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Bill, error) {
	var bills []models.Bill
	err := database.DB.
		Preload("Items").
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID).
		Order("created_at DESC").
		Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient bills: %w", err)
	}
	return bills, nil
}

// Update replaces the bill's items wholesale; edits never append partially.
func (r *BillingRepository) Update(ctx context.Context, bill *models.Bill) error {
	lockKey := fmt.Sprintf("bill_lock:%s", bill.BillID)
	return withLock(ctx, lockKey, func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("bill_id = ?", bill.BillID).Delete(&models.BillItem{}).Error; err != nil {
				return err
			}
			for i := range bill.Items {
				bill.Items[i].ID = 0
				bill.Items[i].BillID = bill.BillID
			}
			return tx.Save(bill).Error
		})
		if err != nil {
			return fmt.Errorf("failed to update bill: %w", err)
		}
		return r.invalidate(ctx, bill.ClinicID, bill.BillID)
	})
}

// AddPayment records a payment and updates the bill's paid amount and
// status as a single transaction.
func (r *BillingRepository) AddPayment(ctx context.Context, bill *models.Bill, payment *models.Payment) error {
	lockKey := fmt.Sprintf("bill_lock:%s", bill.BillID)
	return withLock(ctx, lockKey, func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(payment).Error; err != nil {
				return err
			}
			return tx.Model(&models.Bill{}).Where("bill_id = ?", bill.BillID).Updates(map[string]interface{}{
				"paid_amount": bill.PaidAmount,
				"status":      bill.Status,
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		return r.invalidate(ctx, bill.ClinicID, bill.BillID)
	})
}

func (r *BillingRepository) Delete(ctx context.Context, clinicID, id string) error {
	lockKey := fmt.Sprintf("bill_lock:%s", id)
	return withLock(ctx, lockKey, func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("bill_id = ?", id).Delete(&models.BillItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("bill_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Bill{}, "bill_id = ? AND clinic_id = ?", id, clinicID).Error
		})
		if err != nil {
			return fmt.Errorf("failed to delete bill: %w", err)
		}
		return r.invalidate(ctx, clinicID, id)
	})
}

func (r *BillingRepository) invalidate(ctx context.Context, clinicID, id string) error {
	if err := r.cache.Delete(ctx, r.billCacheKey(clinicID, id)); err != nil {
		return fmt.Errorf("failed to delete bill cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, fmt.Sprintf("bills_cache:%s", clinicID))
}

func (r *BillingRepository) billCacheKey(clinicID, id string) string {
	return fmt.Sprintf("bill_cache:%s_%s", clinicID, id)
}
