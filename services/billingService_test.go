package services

import (
	"context"
	"testing"

	"AyurCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBillStore struct {
	mock.Mock
}

func (m *MockBillStore) Create(ctx context.Context, bill *models.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillStore) GetByID(ctx context.Context, clinicID, id string) (*models.Bill, error) {
	args := m.Called(ctx, clinicID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillStore) GetAll(ctx context.Context, clinicID string) ([]models.Bill, error) {
	args := m.Called(ctx, clinicID)
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillStore) ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Bill, error) {
	args := m.Called(ctx, clinicID, patientID)
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillStore) Update(ctx context.Context, bill *models.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillStore) AddPayment(ctx context.Context, bill *models.Bill, payment *models.Payment) error {
	args := m.Called(ctx, bill, payment)
	return args.Error(0)
}

func (m *MockBillStore) Delete(ctx context.Context, clinicID, id string) error {
	args := m.Called(ctx, clinicID, id)
	return args.Error(0)
}

func draftBill() *models.Bill {
	return &models.Bill{
		BillID:    "INV-000001",
		ClinicID:  "clinic-1",
		PatientID: "pat-1",
		Status:    models.BillDraft,
		Items: []models.BillItem{
			{ItemName: "Consultation", ItemType: models.ItemConsultation, Quantity: 1, UnitPrice: 500},
		},
	}
}

func TestBillingServiceCreateComputesTotals(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	bill := draftBill()
	bill.Status = ""
	store.On("Create", mock.Anything, bill).Return(nil)

	err := service.Create(context.Background(), bill)
	require.NoError(t, err)

	assert.Equal(t, models.BillDraft, bill.Status)
	assert.Equal(t, 500.0, bill.Subtotal)
	assert.Equal(t, 500.0, bill.TotalAmount)
	store.AssertExpectations(t)
}

func TestBillingServiceCreateDraftSkipsSubmitValidation(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	// An unnamed item is fine while the bill stays in DRAFT.
	bill := draftBill()
	bill.Items[0].ItemName = ""
	store.On("Create", mock.Anything, bill).Return(nil)

	err := service.Create(context.Background(), bill)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestBillingServiceCreatePendingValidates(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	bill := draftBill()
	bill.Status = models.BillPending
	bill.Items[0].ItemName = ""

	err := service.Create(context.Background(), bill)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBillingServiceCreateRejectsOtherStatuses(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	bill := draftBill()
	bill.Status = models.BillPaid

	err := service.Create(context.Background(), bill)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBillingServiceUpdatePreservesPaidAmount(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	existing := draftBill()
	existing.Status = models.BillPartial
	existing.PaidAmount = 200

	edited := draftBill()
	edited.Status = models.BillPartial
	edited.PaidAmount = 0 // client payload never carries the paid amount

	store.On("GetByID", mock.Anything, "clinic-1", "INV-000001").Return(existing, nil)
	store.On("Update", mock.Anything, edited).Return(nil)

	err := service.Update(context.Background(), edited)
	require.NoError(t, err)

	assert.Equal(t, 200.0, edited.PaidAmount)
	store.AssertExpectations(t)
}

func TestBillingServiceUpdateKeepsStatusWhenOmitted(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	existing := draftBill()
	existing.Status = models.BillPending

	edited := draftBill()
	edited.Status = "" // payloads that only touch items leave the status out

	store.On("GetByID", mock.Anything, "clinic-1", "INV-000001").Return(existing, nil)
	store.On("Update", mock.Anything, edited).Return(nil)

	err := service.Update(context.Background(), edited)
	require.NoError(t, err)

	assert.Equal(t, models.BillPending, edited.Status)
	store.AssertExpectations(t)
}

func TestBillingServiceUpdateMissingBill(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	bill := draftBill()
	store.On("GetByID", mock.Anything, "clinic-1", "INV-000001").Return(nil, nil)

	err := service.Update(context.Background(), bill)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBillingServiceApplyQuickDiscount(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	bill := draftBill()
	bill.Items[0].UnitPrice = 1000

	store.On("GetByID", mock.Anything, "clinic-1", "INV-000001").Return(bill, nil)
	store.On("Update", mock.Anything, bill).Return(nil)

	updated, err := service.ApplyQuickDiscount(context.Background(), "clinic-1", "INV-000001", 10)
	require.NoError(t, err)

	assert.Equal(t, 10.0, updated.DiscountPercentage)
	assert.Equal(t, 100.0, updated.DiscountAmount)
	assert.Equal(t, 900.0, updated.TotalAmount)
	store.AssertExpectations(t)
}

func TestBillingServiceApplyQuickDiscountRejectsNonPreset(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	_, err := service.ApplyQuickDiscount(context.Background(), "clinic-1", "INV-000001", 12)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingServiceRecordPayment(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	bill := draftBill()
	bill.Status = models.BillPending
	bill.TotalAmount = 500

	payment := &models.Payment{Amount: 200, Method: "CASH"}

	store.On("GetByID", mock.Anything, "clinic-1", "INV-000001").Return(bill, nil)
	store.On("AddPayment", mock.Anything, bill, payment).Return(nil)

	updated, err := service.RecordPayment(context.Background(), "clinic-1", "INV-000001", payment)
	require.NoError(t, err)

	assert.Equal(t, 200.0, updated.PaidAmount)
	assert.Equal(t, models.BillPartial, updated.Status)
	assert.Equal(t, "INV-000001", payment.BillID)
	store.AssertExpectations(t)
}

func TestBillingServiceRecordPaymentSettlesBill(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	bill := draftBill()
	bill.Status = models.BillPartial
	bill.TotalAmount = 500
	bill.PaidAmount = 300

	payment := &models.Payment{Amount: 200, Method: "UPI"}

	store.On("GetByID", mock.Anything, "clinic-1", "INV-000001").Return(bill, nil)
	store.On("AddPayment", mock.Anything, bill, payment).Return(nil)

	updated, err := service.RecordPayment(context.Background(), "clinic-1", "INV-000001", payment)
	require.NoError(t, err)

	assert.Equal(t, models.BillPaid, updated.Status)
	store.AssertExpectations(t)
}

func TestBillingServiceRecordPaymentOnDraft(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	bill := draftBill()
	store.On("GetByID", mock.Anything, "clinic-1", "INV-000001").Return(bill, nil)

	_, err := service.RecordPayment(context.Background(), "clinic-1", "INV-000001", &models.Payment{Amount: 100})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	store.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingServiceRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	store := new(MockBillStore)
	service := NewBillingService(store)

	_, err := service.RecordPayment(context.Background(), "clinic-1", "INV-000001", &models.Payment{Amount: 0})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
