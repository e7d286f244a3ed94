package repositories

import (
	"AyurCare/database"
	"AyurCare/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// StaffRepository persists payroll records and leave requests.
type StaffRepository struct{}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{}
}

func (r *StaffRepository) CreatePayroll(ctx context.Context, record *models.PayrollRecord) error {
	if err := database.DB.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create payroll record: %w", err)
	}
	return nil
}

func (r *StaffRepository) GetPayrollByID(ctx context.Context, clinicID string, id uint) (*models.PayrollRecord, error) {
	var record models.PayrollRecord
	err := database.DB.First(&record, "id = ? AND clinic_id = ?", id, clinicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return &record, nil
}

// ListPayroll returns payroll records for a clinic, optionally filtered by month.
func (r *StaffRepository) ListPayroll(ctx context.Context, clinicID, month string) ([]models.PayrollRecord, error) {
	query := database.DB.Where("clinic_id = ?", clinicID)
	if month != "" {
		query = query.Where("month = ?", month)
	}

	var records []models.PayrollRecord
	if err := query.Order("month DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	return records, nil
}

func (r *StaffRepository) UpdatePayroll(ctx context.Context, record *models.PayrollRecord) error {
	lockKey := fmt.Sprintf("payroll_lock:%s_%d", record.ClinicID, record.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(record).Error; err != nil {
			return fmt.Errorf("failed to update payroll record: %w", err)
		}
		return nil
	})
}

func (r *StaffRepository) DeletePayroll(ctx context.Context, clinicID string, id uint) error {
	if err := database.DB.Delete(&models.PayrollRecord{}, "id = ? AND clinic_id = ?", id, clinicID).Error; err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	return nil
}

func (r *StaffRepository) CreateLeave(ctx context.Context, request *models.LeaveRequest) error {
	if err := database.DB.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}
	return nil
}

func (r *StaffRepository) GetLeaveByID(ctx context.Context, clinicID string, id uint) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := database.DB.First(&request, "id = ? AND clinic_id = ?", id, clinicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	return &request, nil
}

func (r *StaffRepository) ListLeave(ctx context.Context, clinicID string) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	err := database.DB.
		Where("clinic_id = ?", clinicID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// UpdateLeave persists a reviewed leave request behind the record lock so
// two reviewers cannot race each other.
func (r *StaffRepository) UpdateLeave(ctx context.Context, request *models.LeaveRequest) error {
	lockKey := fmt.Sprintf("leave_lock:%s_%d", request.ClinicID, request.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(request).Error; err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
}
