package models

import (
	"time"
)

// Prescription model
type Prescription struct {
	ID        uint               `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	ClinicID  string             `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	PatientID string             `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  int64              `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Diagnosis string             `gorm:"column:diagnosis;type:text" json:"diagnosis"`
	Notes     string             `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Items     []PrescriptionItem `gorm:"foreignKey:PrescriptionID;references:ID" json:"items"`
	Patient   *Patient           `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Prescription) TableName() string {
	return "prescription"
}

// PrescriptionItem model
type PrescriptionItem struct {
	ID             uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PrescriptionID uint   `gorm:"column:prescription_id;not null;index" json:"prescription_id"`
	MedicineName   string `gorm:"column:medicine_name;not null" json:"medicine_name"`
	Dosage         string `gorm:"column:dosage;not null" json:"dosage"`
	Frequency      string `gorm:"column:frequency;not null" json:"frequency"`
	DurationDays   int    `gorm:"column:duration_days" json:"duration_days"`
	Instructions   string `gorm:"column:instructions" json:"instructions"`
}

func (PrescriptionItem) TableName() string {
	return "prescription_item"
}
