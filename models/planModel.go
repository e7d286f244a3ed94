package models

import (
	"time"
)

// Plan kinds.
const (
	PlanDiet    = "DIET"
	PlanTherapy = "THERAPY"
)

// PlanTemplate is a reusable diet or therapy plan definition a doctor can
// assign to patients.
type PlanTemplate struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	ClinicID   string    `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	Kind       string    `gorm:"column:kind;check:kind IN ('DIET', 'THERAPY');not null" json:"kind"`
	Title      string    `gorm:"column:title;not null" json:"title"`
	DoshaFocus string    `gorm:"column:dosha_focus" json:"dosha_focus"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PlanTemplate) TableName() string {
	return "plan_template"
}

// PatientPlan is a plan generated from a template and assigned to a patient.
type PatientPlan struct {
	ID         uint          `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	ClinicID   string        `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	PatientID  string        `gorm:"column:patient_id;not null;index" json:"patient_id"`
	TemplateID uint          `gorm:"column:template_id;not null;index" json:"template_id"`
	Kind       string        `gorm:"column:kind;check:kind IN ('DIET', 'THERAPY');not null" json:"kind"`
	Title      string        `gorm:"column:title;not null" json:"title"`
	Content    string        `gorm:"column:content;type:text;not null" json:"content"`
	StartDate  string        `gorm:"column:start_date;not null" json:"start_date"`
	DoctorNote string        `gorm:"column:doctor_note;type:text" json:"doctor_note"`
	CreatedAt  time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Template   *PlanTemplate `gorm:"foreignKey:TemplateID;references:ID" json:"-"`
	Patient    *Patient      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (PatientPlan) TableName() string {
	return "patient_plan"
}
