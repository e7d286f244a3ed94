package models

import (
	"time"
)

// Medicine model for the pharmacy inventory.
type Medicine struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	ClinicID      string    `gorm:"column:clinic_id;not null;index;uniqueIndex:idx_clinic_medicine" json:"clinic_id"`
	Name          string    `gorm:"column:name;not null;uniqueIndex:idx_clinic_medicine" json:"name"`
	Category      string    `gorm:"column:category" json:"category"`
	Unit          string    `gorm:"column:unit;not null" json:"unit"`
	UnitPrice     float64   `gorm:"column:unit_price;not null" json:"unit_price"`
	StockQuantity int       `gorm:"column:stock_quantity;not null" json:"stock_quantity"`
	ReorderLevel  int       `gorm:"column:reorder_level;not null;default:10" json:"reorder_level"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Medicine) TableName() string {
	return "medicine"
}

// LowOnStock reports whether the medicine has fallen to its reorder level.
func (m *Medicine) LowOnStock() bool {
	return m.StockQuantity <= m.ReorderLevel
}
