package models

import (
	"time"
)

// Appointment statuses. Transitions are one-directional except for the
// alternative-proposal round trip handled by the response engine.
const (
	AppointmentPendingApproval     = "PENDING_APPROVAL"
	AppointmentAlternativeProposed = "ALTERNATIVE_PROPOSED"
	AppointmentScheduled           = "SCHEDULED"
	AppointmentCompleted           = "COMPLETED"
	AppointmentCancelled           = "CANCELLED"
	AppointmentNoShow              = "NO_SHOW"
	AppointmentDeclined            = "DECLINED"
)

// Appointment model. The subject is either a registered patient (PatientID
// set) or a guest (guest fields set) — never both. Times are stored as
// 24-hour "HH:MM"; AM/PM input is normalized at the boundary.
type Appointment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	ClinicID        string    `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	PatientID       *string   `gorm:"column:patient_id;index" json:"patient_id,omitempty"`
	GuestName       string    `gorm:"column:guest_name" json:"guest_name,omitempty"`
	GuestPhone      string    `gorm:"column:guest_phone" json:"guest_phone,omitempty"`
	GuestEmail      string    `gorm:"column:guest_email" json:"guest_email,omitempty"`
	AppointmentDate string    `gorm:"column:appointment_date;not null;index" json:"appointment_date"`
	AppointmentTime string    `gorm:"column:appointment_time;not null" json:"appointment_time"`
	Duration        int       `gorm:"column:duration;not null;default:30" json:"duration"`
	Reason          string    `gorm:"column:reason;not null" json:"reason"`
	Notes           string    `gorm:"column:notes;type:text" json:"notes"`
	Status          string    `gorm:"column:status;check:status IN ('PENDING_APPROVAL', 'ALTERNATIVE_PROPOSED', 'SCHEDULED', 'COMPLETED', 'CANCELLED', 'NO_SHOW', 'DECLINED');not null" json:"status"`
	DeclineReason   string    `gorm:"column:decline_reason" json:"decline_reason,omitempty"`
	ProposedDate    string    `gorm:"column:proposed_date" json:"proposed_date,omitempty"`
	ProposedTime    string    `gorm:"column:proposed_time" json:"proposed_time,omitempty"`
	StaffMessage    string    `gorm:"column:staff_message" json:"staff_message,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient         *Patient  `gorm:"foreignKey:PatientID;references:ID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// HasRegisteredPatient reports whether the appointment subject is a
// registered patient rather than a guest.
func (a *Appointment) HasRegisteredPatient() bool {
	return a.PatientID != nil && *a.PatientID != ""
}
