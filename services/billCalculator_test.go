package services

import (
	"testing"

	"AyurCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBillTotalsWorkedExample(t *testing.T) {
	items := []models.BillItem{
		{ItemName: "Abhyanga massage", Quantity: 2, UnitPrice: 500, TaxPercentage: 5},
	}

	totals := ComputeBillTotals(items, 0, 10)

	assert.Equal(t, 1000.0, totals.Subtotal)
	assert.Equal(t, 50.0, totals.TaxAmount)
	assert.Equal(t, 100.0, totals.BillDiscount)
	assert.Equal(t, 950.0, totals.TotalAmount)

	assert.Equal(t, 50.0, items[0].TaxAmount)
	assert.Equal(t, 1050.0, items[0].TotalAmount)
}

func TestComputeBillTotalsPercentageBeatsFlat(t *testing.T) {
	items := []models.BillItem{
		{ItemName: "Consultation", Quantity: 1, UnitPrice: 1000},
	}

	// A positive percentage wins; the flat amount is ignored, never summed.
	totals := ComputeBillTotals(items, 300, 10)

	assert.Equal(t, 100.0, totals.BillDiscount)
	assert.Equal(t, 900.0, totals.TotalAmount)
}

func TestComputeBillTotalsFlatDiscount(t *testing.T) {
	items := []models.BillItem{
		{ItemName: "Consultation", Quantity: 1, UnitPrice: 1000},
	}

	totals := ComputeBillTotals(items, 300, 0)

	assert.Equal(t, 300.0, totals.BillDiscount)
	assert.Equal(t, 700.0, totals.TotalAmount)
}

func TestComputeBillTotalsFlooredAtZero(t *testing.T) {
	items := []models.BillItem{
		{ItemName: "Consultation", Quantity: 1, UnitPrice: 100},
	}

	totals := ComputeBillTotals(items, 500, 0)

	assert.Equal(t, 0.0, totals.TotalAmount)
}

func TestComputeBillTotalsItemTotalMayGoNegative(t *testing.T) {
	items := []models.BillItem{
		{ItemName: "Sample sachet", Quantity: 1, UnitPrice: 50, DiscountAmount: 80},
	}

	ComputeBillTotals(items, 0, 0)

	// The line total is not clamped; only the bill total is.
	assert.Equal(t, -30.0, items[0].TotalAmount)
}

func TestComputeBillTotalsItemDiscountsSubtracted(t *testing.T) {
	items := []models.BillItem{
		{ItemName: "Churna", Quantity: 2, UnitPrice: 200, TaxPercentage: 12, DiscountAmount: 40},
		{ItemName: "Consultation", Quantity: 1, UnitPrice: 600},
	}

	totals := ComputeBillTotals(items, 0, 0)

	assert.Equal(t, 1000.0, totals.Subtotal)
	assert.Equal(t, 48.0, totals.TaxAmount)
	assert.Equal(t, 40.0, totals.ItemDiscountTotal)
	assert.Equal(t, 1008.0, totals.TotalAmount)
}

func TestComputeBillTotalsIdempotent(t *testing.T) {
	items := []models.BillItem{
		{ItemName: "Abhyanga massage", Quantity: 2, UnitPrice: 500, TaxPercentage: 5},
		{ItemName: "Churna", Quantity: 1, UnitPrice: 250, DiscountAmount: 25},
	}

	first := ComputeBillTotals(items, 0, 10)
	second := ComputeBillTotals(items, 0, 10)

	assert.Equal(t, first, second)
}

func TestApplyBillTotalsStoresComputedDiscount(t *testing.T) {
	bill := &models.Bill{
		PatientID:          "pat-1",
		DiscountAmount:     999, // stale flat value, replaced by the computed one
		DiscountPercentage: 20,
		Items: []models.BillItem{
			{ItemName: "Consultation", Quantity: 1, UnitPrice: 500},
		},
	}

	ApplyBillTotals(bill)

	assert.Equal(t, 500.0, bill.Subtotal)
	assert.Equal(t, 100.0, bill.DiscountAmount)
	assert.Equal(t, 400.0, bill.TotalAmount)
}

func TestValidateBillSubmission(t *testing.T) {
	valid := func() *models.Bill {
		return &models.Bill{
			PatientID: "pat-1",
			Items: []models.BillItem{
				{ItemName: "Consultation", Quantity: 1, UnitPrice: 500},
				{ItemName: "Churna", Quantity: 2, UnitPrice: 150},
			},
		}
	}

	require.NoError(t, ValidateBillSubmission(valid()))

	bill := valid()
	bill.PatientID = ""
	err := ValidateBillSubmission(bill)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patient_id")

	bill = valid()
	bill.Items = nil
	err = ValidateBillSubmission(bill)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items")

	bill = valid()
	bill.Items[1].ItemName = ""
	err = ValidateBillSubmission(bill)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[1].item_name")

	bill = valid()
	bill.Items[0].UnitPrice = 0
	err = ValidateBillSubmission(bill)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[0].unit_price")
}

func TestValidateBillSubmissionReportsFirstViolation(t *testing.T) {
	bill := &models.Bill{
		Items: []models.BillItem{{ItemName: "", UnitPrice: 0}},
	}

	// Missing patient is checked before the item fields.
	err := ValidateBillSubmission(bill)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patient_id")
}

func TestPaymentStatus(t *testing.T) {
	bill := &models.Bill{TotalAmount: 1000}

	bill.PaidAmount = 0
	assert.Equal(t, models.BillPending, PaymentStatus(bill))

	bill.PaidAmount = 400
	assert.Equal(t, models.BillPartial, PaymentStatus(bill))

	bill.PaidAmount = 1000
	assert.Equal(t, models.BillPaid, PaymentStatus(bill))

	bill.PaidAmount = 1200
	assert.Equal(t, models.BillPaid, PaymentStatus(bill))
}

func TestQuickDiscountPresets(t *testing.T) {
	assert.Equal(t, []float64{5, 10, 15, 20}, QuickDiscountPresets)
}
