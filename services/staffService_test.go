package services

import (
	"context"
	"testing"

	"AyurCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStaffStore struct {
	mock.Mock
}

func (m *MockStaffStore) CreatePayroll(ctx context.Context, record *models.PayrollRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStaffStore) GetPayrollByID(ctx context.Context, clinicID string, id uint) (*models.PayrollRecord, error) {
	args := m.Called(ctx, clinicID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PayrollRecord), args.Error(1)
}

func (m *MockStaffStore) ListPayroll(ctx context.Context, clinicID, month string) ([]models.PayrollRecord, error) {
	args := m.Called(ctx, clinicID, month)
	return args.Get(0).([]models.PayrollRecord), args.Error(1)
}

func (m *MockStaffStore) UpdatePayroll(ctx context.Context, record *models.PayrollRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStaffStore) DeletePayroll(ctx context.Context, clinicID string, id uint) error {
	args := m.Called(ctx, clinicID, id)
	return args.Error(0)
}

func (m *MockStaffStore) CreateLeave(ctx context.Context, request *models.LeaveRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockStaffStore) GetLeaveByID(ctx context.Context, clinicID string, id uint) (*models.LeaveRequest, error) {
	args := m.Called(ctx, clinicID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaveRequest), args.Error(1)
}

func (m *MockStaffStore) ListLeave(ctx context.Context, clinicID string) ([]models.LeaveRequest, error) {
	args := m.Called(ctx, clinicID)
	return args.Get(0).([]models.LeaveRequest), args.Error(1)
}

func (m *MockStaffStore) UpdateLeave(ctx context.Context, request *models.LeaveRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func pendingLeave() *models.LeaveRequest {
	return &models.LeaveRequest{
		ID:        4,
		ClinicID:  "clinic-1",
		UserID:    7,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Reason:    "Family function",
		Status:    models.LeavePending,
	}
}

// Validation runs before the repository is touched, so a nil repository is
// enough for these cases.

func TestStaffServicePayrollValidation(t *testing.T) {
	service := NewStaffService(nil)
	ctx := context.Background()

	err := service.CreatePayroll(ctx, &models.PayrollRecord{Month: "2026-08", BaseSalary: 30000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_id")

	err = service.CreatePayroll(ctx, &models.PayrollRecord{UserID: 1, Month: "2026-13", BaseSalary: 30000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")

	err = service.CreatePayroll(ctx, &models.PayrollRecord{UserID: 1, Month: "08-2026", BaseSalary: 30000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")

	err = service.CreatePayroll(ctx, &models.PayrollRecord{UserID: 1, Month: "2026-08"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_salary")

	err = service.CreatePayroll(ctx, &models.PayrollRecord{UserID: 1, Month: "2026-08", BaseSalary: 30000, Deductions: -10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowances")
}

func TestStaffServiceLeaveValidation(t *testing.T) {
	service := NewStaffService(nil)
	ctx := context.Background()

	err := service.RequestLeave(ctx, &models.LeaveRequest{
		StartDate: "2026-09-01", EndDate: "2026-09-03", Reason: "Family function",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_id")

	err = service.RequestLeave(ctx, &models.LeaveRequest{
		UserID: 1, StartDate: "01-09-2026", EndDate: "2026-09-03", Reason: "Family function",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")

	err = service.RequestLeave(ctx, &models.LeaveRequest{
		UserID: 1, StartDate: "2026-09-05", EndDate: "2026-09-03", Reason: "Family function",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")

	err = service.RequestLeave(ctx, &models.LeaveRequest{
		UserID: 1, StartDate: "2026-09-01", EndDate: "2026-09-03",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reason")
}

func TestStaffServiceReviewLeaveApproves(t *testing.T) {
	store := new(MockStaffStore)
	service := NewStaffService(store)

	request := pendingLeave()
	store.On("GetLeaveByID", mock.Anything, "clinic-1", uint(4)).Return(request, nil)
	store.On("UpdateLeave", mock.Anything, request).Return(nil)

	reviewed, err := service.ReviewLeave(context.Background(), "clinic-1", 4, true, "Enjoy")
	require.NoError(t, err)

	assert.Equal(t, models.LeaveApproved, reviewed.Status)
	assert.Equal(t, "Enjoy", reviewed.ReviewerNote)
	store.AssertExpectations(t)
}

func TestStaffServiceReviewLeaveRejects(t *testing.T) {
	store := new(MockStaffStore)
	service := NewStaffService(store)

	request := pendingLeave()
	store.On("GetLeaveByID", mock.Anything, "clinic-1", uint(4)).Return(request, nil)
	store.On("UpdateLeave", mock.Anything, request).Return(nil)

	reviewed, err := service.ReviewLeave(context.Background(), "clinic-1", 4, false, "Short staffed that week")
	require.NoError(t, err)

	assert.Equal(t, models.LeaveRejected, reviewed.Status)
	assert.Equal(t, "Short staffed that week", reviewed.ReviewerNote)
	store.AssertExpectations(t)
}

func TestStaffServiceReviewLeaveAlreadyDecided(t *testing.T) {
	store := new(MockStaffStore)
	service := NewStaffService(store)

	request := pendingLeave()
	request.Status = models.LeaveApproved
	store.On("GetLeaveByID", mock.Anything, "clinic-1", uint(4)).Return(request, nil)

	_, err := service.ReviewLeave(context.Background(), "clinic-1", 4, false, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.LeaveApproved, request.Status)
	store.AssertNotCalled(t, "UpdateLeave", mock.Anything, mock.Anything)
}

func TestStaffServiceReviewLeaveNotFound(t *testing.T) {
	store := new(MockStaffStore)
	service := NewStaffService(store)

	store.On("GetLeaveByID", mock.Anything, "clinic-1", uint(9)).Return(nil, nil)

	_, err := service.ReviewLeave(context.Background(), "clinic-1", 9, true, "")
	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertNotCalled(t, "UpdateLeave", mock.Anything, mock.Anything)
}
