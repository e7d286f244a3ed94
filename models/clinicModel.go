package models

import (
	"time"
)

// Clinic is the tenant. Every domain record carries a clinic_id and all
// repository queries are scoped to it.
type Clinic struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;not null;unique" json:"name"`
	Address   string    `gorm:"column:address" json:"address"`
	Phone     string    `gorm:"column:phone" json:"phone"`
	Email     string    `gorm:"column:email" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Clinic) TableName() string {
	return "clinic"
}
