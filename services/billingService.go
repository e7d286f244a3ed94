package services

import (
	"AyurCare/models"
	"context"
)

// BillStore is the persistence collaborator for bills.
type BillStore interface {
	Create(ctx context.Context, bill *models.Bill) error
	GetByID(ctx context.Context, clinicID, id string) (*models.Bill, error)
	GetAll(ctx context.Context, clinicID string) ([]models.Bill, error)
	ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Bill, error)
	Update(ctx context.Context, bill *models.Bill) error
	AddPayment(ctx context.Context, bill *models.Bill, payment *models.Payment) error
	Delete(ctx context.Context, clinicID, id string) error
}

type BillingService struct {
	store BillStore
}

func NewBillingService(store BillStore) *BillingService {
	return &BillingService{store: store}
}

// Create saves a new bill. Totals are recomputed from the items regardless
// of what the caller sent; a PENDING submit is validated, a DRAFT is not.
func (s *BillingService) Create(ctx context.Context, bill *models.Bill) error {
	if bill.Status == "" {
		bill.Status = models.BillDraft
	}
	if bill.Status != models.BillDraft && bill.Status != models.BillPending {
		return NewValidationError("status", "a new bill must be DRAFT or PENDING")
	}

	ApplyBillTotals(bill)

	if bill.Status == models.BillPending {
		if err := ValidateBillSubmission(bill); err != nil {
			return err
		}
	}
	return s.store.Create(ctx, bill)
}

func (s *BillingService) GetByID(ctx context.Context, clinicID, id string) (*models.Bill, error) {
	return s.store.GetByID(ctx, clinicID, id)
}

func (s *BillingService) GetAll(ctx context.Context, clinicID string) ([]models.Bill, error) {
	return s.store.GetAll(ctx, clinicID)
}

func (s *BillingService) ListByPatient(ctx context.Context, clinicID, patientID string) ([]models.Bill, error) {
	return s.store.ListByPatient(ctx, clinicID, patientID)
}

// Update replaces the bill's items and discount fields and recomputes the
// totals. Submitting (moving to PENDING) re-runs the submit validation.
func (s *BillingService) Update(ctx context.Context, bill *models.Bill) error {
	existing, err := s.store.GetByID(ctx, bill.ClinicID, bill.BillID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	// Paid amount and status survive an edit that does not set them.
	bill.PaidAmount = existing.PaidAmount
	if bill.Status == "" {
		bill.Status = existing.Status
	}
	ApplyBillTotals(bill)

	if bill.Status == models.BillPending {
		if err := ValidateBillSubmission(bill); err != nil {
			return err
		}
	}
	return s.store.Update(ctx, bill)
}

// ApplyQuickDiscount sets one of the preset discount percentages and
// recomputes the bill. The flat discount is overwritten by the computed
// value: the two are never in effect together.
func (s *BillingService) ApplyQuickDiscount(ctx context.Context, clinicID, id string, percentage float64) (*models.Bill, error) {
	valid := false
	for _, preset := range QuickDiscountPresets {
		if percentage == preset {
			valid = true
			break
		}
	}
	if !valid {
		return nil, NewValidationError("discount_percentage", "must be one of the preset values 5, 10, 15 or 20")
	}

	bill, err := s.store.GetByID(ctx, clinicID, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrNotFound
	}

	bill.DiscountPercentage = percentage
	ApplyBillTotals(bill)

	if err := s.store.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// RecordPayment registers a payment against a submitted bill and rolls the
// status to PARTIAL or PAID from the paid amount.
func (s *BillingService) RecordPayment(ctx context.Context, clinicID, id string, payment *models.Payment) (*models.Bill, error) {
	if payment.Amount <= 0 {
		return nil, NewValidationError("amount", "payment amount must be greater than zero")
	}

	bill, err := s.store.GetByID(ctx, clinicID, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrNotFound
	}
	if bill.Status == models.BillDraft || bill.Status == models.BillCancelled {
		return nil, ErrInvalidTransition
	}

	payment.BillID = bill.BillID
	bill.PaidAmount += payment.Amount
	bill.Status = PaymentStatus(bill)

	if err := s.store.AddPayment(ctx, bill, payment); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *BillingService) Delete(ctx context.Context, clinicID, id string) error {
	return s.store.Delete(ctx, clinicID, id)
}
