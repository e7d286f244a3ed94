package models

import (
	"time"
)

// Patient model
type Patient struct {
	ID            string         `gorm:"primaryKey;column:id" json:"id"`
	ClinicID      string         `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	FirstName     string         `gorm:"column:first_name;not null" json:"first_name"`
	MiddleName    string         `gorm:"column:middle_name" json:"middle_name"`
	LastName      string         `gorm:"column:last_name;not null;index" json:"last_name"`
	Sex           string         `gorm:"column:sex;check:sex IN ('Male', 'Female', 'Other');not null" json:"sex"`
	DateOfBirth   string         `gorm:"column:date_of_birth;not null;index" json:"date_of_birth"`
	DoshaType     string         `gorm:"column:dosha_type" json:"dosha_type"`
	Occupation    string         `gorm:"column:occupation" json:"occupation"`
	Phone         string         `gorm:"column:phone;index" json:"phone"`
	Email         string         `gorm:"column:email" json:"email"`
	Address       string         `gorm:"column:address" json:"address"`
	MedicalNotes  string         `gorm:"column:medical_notes;type:text" json:"medical_notes"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Prescriptions []Prescription `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Bills         []Bill         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	PatientPlans  []PatientPlan  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Dosha constitution types recorded on the patient intake form.
const (
	DoshaVata       = "VATA"
	DoshaPitta      = "PITTA"
	DoshaKapha      = "KAPHA"
	DoshaVataPitta  = "VATA_PITTA"
	DoshaPittaKapha = "PITTA_KAPHA"
	DoshaVataKapha  = "VATA_KAPHA"
	DoshaTridosha   = "TRIDOSHA"
)
