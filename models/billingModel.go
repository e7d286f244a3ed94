package models

import (
	"time"
)

// Bill statuses.
const (
	BillDraft     = "DRAFT"
	BillPending   = "PENDING"
	BillPartial   = "PARTIAL"
	BillPaid      = "PAID"
	BillCancelled = "CANCELLED"
	BillOverdue   = "OVERDUE"
)

// Bill item types.
const (
	ItemConsultation = "CONSULTATION"
	ItemMedicine     = "MEDICINE"
	ItemTherapy      = "THERAPY"
	ItemLabTest      = "LAB_TEST"
	ItemProcedure    = "PROCEDURE"
	ItemOther        = "OTHER"
)

// Bill model. DiscountAmount and DiscountPercentage are mutually exclusive:
// setting one resets the other (last writer wins, never summed). All derived
// fields are recomputed from the items on every write.
type Bill struct {
	BillID             string     `gorm:"primaryKey;column:bill_id" json:"bill_id"`
	ClinicID           string     `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	PatientID          string     `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Status             string     `gorm:"column:status;check:status IN ('DRAFT', 'PENDING', 'PARTIAL', 'PAID', 'CANCELLED', 'OVERDUE');not null" json:"status"`
	Subtotal           float64    `gorm:"column:subtotal" json:"subtotal"`
	DiscountAmount     float64    `gorm:"column:discount_amount" json:"discount_amount"`
	DiscountPercentage float64    `gorm:"column:discount_percentage" json:"discount_percentage"`
	TaxAmount          float64    `gorm:"column:tax_amount" json:"tax_amount"`
	TotalAmount        float64    `gorm:"column:total_amount" json:"total_amount"`
	PaidAmount         float64    `gorm:"column:paid_amount" json:"paid_amount"`
	Notes              string     `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Items              []BillItem `gorm:"foreignKey:BillID;references:BillID" json:"items"`
	Payments           []Payment  `gorm:"foreignKey:BillID;references:BillID" json:"payments,omitempty"`
	Patient            *Patient   `gorm:"foreignKey:PatientID;references:ID" json:"patient,omitempty"`
}

func (Bill) TableName() string {
	return "bill"
}

// BillItem model. TaxAmount and TotalAmount are derived by the calculator.
// The item total is deliberately not floored at zero.
type BillItem struct {
	ID             uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	BillID         string  `gorm:"column:bill_id;not null;index" json:"bill_id"`
	ItemName       string  `gorm:"column:item_name;not null" json:"item_name"`
	ItemType       string  `gorm:"column:item_type;check:item_type IN ('CONSULTATION', 'MEDICINE', 'THERAPY', 'LAB_TEST', 'PROCEDURE', 'OTHER');not null" json:"item_type"`
	Quantity       int     `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice      float64 `gorm:"column:unit_price;not null" json:"unit_price"`
	TaxPercentage  float64 `gorm:"column:tax_percentage" json:"tax_percentage"`
	TaxAmount      float64 `gorm:"column:tax_amount" json:"tax_amount"`
	DiscountAmount float64 `gorm:"column:discount_amount" json:"discount_amount"`
	TotalAmount    float64 `gorm:"column:total_amount" json:"total_amount"`
}

func (BillItem) TableName() string {
	return "bill_item"
}

// Payment model
type Payment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	BillID    string    `gorm:"column:bill_id;not null;index" json:"bill_id"`
	Amount    float64   `gorm:"column:amount;not null" json:"amount"`
	Method    string    `gorm:"column:method;check:method IN ('CASH', 'CARD', 'UPI', 'BANK_TRANSFER');not null" json:"method"`
	Reference string    `gorm:"column:reference" json:"reference"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string {
	return "payment"
}
