package services

import (
	"AyurCare/models"
	"AyurCare/utils"
	"context"
	"regexp"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// StaffStore is the persistence collaborator for payroll and leave.
type StaffStore interface {
	CreatePayroll(ctx context.Context, record *models.PayrollRecord) error
	GetPayrollByID(ctx context.Context, clinicID string, id uint) (*models.PayrollRecord, error)
	ListPayroll(ctx context.Context, clinicID, month string) ([]models.PayrollRecord, error)
	UpdatePayroll(ctx context.Context, record *models.PayrollRecord) error
	DeletePayroll(ctx context.Context, clinicID string, id uint) error
	CreateLeave(ctx context.Context, request *models.LeaveRequest) error
	GetLeaveByID(ctx context.Context, clinicID string, id uint) (*models.LeaveRequest, error)
	ListLeave(ctx context.Context, clinicID string) ([]models.LeaveRequest, error)
	UpdateLeave(ctx context.Context, request *models.LeaveRequest) error
}

// StaffService covers payroll records and leave requests.
type StaffService struct {
	repository StaffStore
}

func NewStaffService(repository StaffStore) *StaffService {
	return &StaffService{repository: repository}
}

func (s *StaffService) CreatePayroll(ctx context.Context, record *models.PayrollRecord) error {
	if err := validatePayroll(record); err != nil {
		return err
	}
	record.NetPay = record.BaseSalary + record.Allowances - record.Deductions
	if record.Status == "" {
		record.Status = models.PayrollDraft
	}
	return s.repository.CreatePayroll(ctx, record)
}

func (s *StaffService) GetPayrollByID(ctx context.Context, clinicID string, id uint) (*models.PayrollRecord, error) {
	return s.repository.GetPayrollByID(ctx, clinicID, id)
}

func (s *StaffService) ListPayroll(ctx context.Context, clinicID, month string) ([]models.PayrollRecord, error) {
	return s.repository.ListPayroll(ctx, clinicID, month)
}

func (s *StaffService) UpdatePayroll(ctx context.Context, record *models.PayrollRecord) error {
	if err := validatePayroll(record); err != nil {
		return err
	}
	record.NetPay = record.BaseSalary + record.Allowances - record.Deductions
	return s.repository.UpdatePayroll(ctx, record)
}

func (s *StaffService) DeletePayroll(ctx context.Context, clinicID string, id uint) error {
	return s.repository.DeletePayroll(ctx, clinicID, id)
}

func validatePayroll(record *models.PayrollRecord) error {
	if record.UserID == 0 {
		return NewValidationError("user_id", "a staff member must be selected")
	}
	if !monthPattern.MatchString(record.Month) {
		return NewValidationError("month", "must be a YYYY-MM month")
	}
	if record.BaseSalary <= 0 {
		return NewValidationError("base_salary", "base salary must be greater than zero")
	}
	if record.Allowances < 0 || record.Deductions < 0 {
		return NewValidationError("allowances", "allowances and deductions cannot be negative")
	}
	return nil
}

func (s *StaffService) RequestLeave(ctx context.Context, request *models.LeaveRequest) error {
	if request.UserID == 0 {
		return NewValidationError("user_id", "a staff member must be selected")
	}
	if !utils.ValidCalendarDate(request.StartDate) || !utils.ValidCalendarDate(request.EndDate) {
		return NewValidationError("start_date", "dates must be YYYY-MM-DD")
	}
	if request.EndDate < request.StartDate {
		return NewValidationError("end_date", "end date cannot precede start date")
	}
	if request.Reason == "" {
		return NewValidationError("reason", "a reason is required")
	}
	request.Status = models.LeavePending
	return s.repository.CreateLeave(ctx, request)
}

func (s *StaffService) GetLeaveByID(ctx context.Context, clinicID string, id uint) (*models.LeaveRequest, error) {
	return s.repository.GetLeaveByID(ctx, clinicID, id)
}

func (s *StaffService) ListLeave(ctx context.Context, clinicID string) ([]models.LeaveRequest, error) {
	return s.repository.ListLeave(ctx, clinicID)
}

// ReviewLeave approves or rejects a pending request. Reviewing a request
// that is no longer pending fails without mutating it.
func (s *StaffService) ReviewLeave(ctx context.Context, clinicID string, id uint, approve bool, note string) (*models.LeaveRequest, error) {
	request, err := s.repository.GetLeaveByID(ctx, clinicID, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrNotFound
	}
	if request.Status != models.LeavePending {
		return nil, ErrInvalidTransition
	}

	if approve {
		request.Status = models.LeaveApproved
	} else {
		request.Status = models.LeaveRejected
	}
	request.ReviewerNote = note

	if err := s.repository.UpdateLeave(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
