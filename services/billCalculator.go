package services

import (
	"AyurCare/models"
	"fmt"
)

// QuickDiscountPresets are the percentage shortcuts offered during billing.
var QuickDiscountPresets = []float64{5, 10, 15, 20}

// BillTotals is the result of a bill computation.
type BillTotals struct {
	Subtotal          float64 `json:"subtotal"`
	TaxAmount         float64 `json:"tax_amount"`
	ItemDiscountTotal float64 `json:"item_discount_total"`
	BillDiscount      float64 `json:"bill_discount"`
	TotalAmount       float64 `json:"total_amount"`
}

// ComputeBillTotals derives each item's tax and total in place and returns
// the bill-level aggregates. A positive discountPercentage takes precedence
// over the flat discountAmount; the two are never summed. Item totals may go
// negative when the item discount exceeds gross plus tax; the bill total is
// floored at zero.
func ComputeBillTotals(items []models.BillItem, discountAmount, discountPercentage float64) BillTotals {
	var totals BillTotals
	for i := range items {
		grossLine := float64(items[i].Quantity) * items[i].UnitPrice
		itemTax := grossLine * items[i].TaxPercentage / 100
		items[i].TaxAmount = itemTax
		items[i].TotalAmount = grossLine + itemTax - items[i].DiscountAmount

		totals.Subtotal += grossLine
		totals.TaxAmount += itemTax
		totals.ItemDiscountTotal += items[i].DiscountAmount
	}

	if discountPercentage > 0 {
		totals.BillDiscount = totals.Subtotal * discountPercentage / 100
	} else {
		totals.BillDiscount = discountAmount
	}

	total := totals.Subtotal + totals.TaxAmount - totals.BillDiscount - totals.ItemDiscountTotal
	if total < 0 {
		total = 0
	}
	totals.TotalAmount = total
	return totals
}

// ApplyBillTotals recomputes the bill's derived fields from its items.
// When the caller set a percentage the flat amount is replaced by the
// computed value, keeping the two fields consistent on the stored row.
func ApplyBillTotals(bill *models.Bill) {
	totals := ComputeBillTotals(bill.Items, bill.DiscountAmount, bill.DiscountPercentage)
	bill.Subtotal = totals.Subtotal
	bill.TaxAmount = totals.TaxAmount
	bill.TotalAmount = totals.TotalAmount
	if bill.DiscountPercentage > 0 {
		bill.DiscountAmount = totals.BillDiscount
	}
}

// ValidateBillSubmission enforces the submit-time rules: a patient must be
// selected, at least one item present, every item named and priced above
// zero. Draft saves skip this check. The first violation is reported.
func ValidateBillSubmission(bill *models.Bill) error {
	if bill.PatientID == "" {
		return NewValidationError("patient_id", "a patient must be selected")
	}
	if len(bill.Items) == 0 {
		return NewValidationError("items", "at least one item is required")
	}
	for i := range bill.Items {
		if bill.Items[i].ItemName == "" {
			return NewValidationError(fmt.Sprintf("items[%d].item_name", i), "item name is required")
		}
		if bill.Items[i].UnitPrice <= 0 {
			return NewValidationError(fmt.Sprintf("items[%d].unit_price", i), "unit price must be greater than zero")
		}
	}
	return nil
}

// PaymentStatus returns the bill status implied by the paid amount.
func PaymentStatus(bill *models.Bill) string {
	switch {
	case bill.PaidAmount <= 0:
		return models.BillPending
	case bill.PaidAmount < bill.TotalAmount:
		return models.BillPartial
	default:
		return models.BillPaid
	}
}
