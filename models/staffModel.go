package models

import (
	"time"
)

// Payroll statuses.
const (
	PayrollDraft = "DRAFT"
	PayrollPaid  = "PAID"
)

// Leave request statuses.
const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

// PayrollRecord model. NetPay = BaseSalary + Allowances - Deductions,
// computed on every write.
type PayrollRecord struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	ClinicID   string    `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	UserID     int64     `gorm:"column:user_id;not null;index;uniqueIndex:idx_user_month" json:"user_id"`
	Month      string    `gorm:"column:month;not null;uniqueIndex:idx_user_month" json:"month"`
	BaseSalary float64   `gorm:"column:base_salary;not null" json:"base_salary"`
	Allowances float64   `gorm:"column:allowances" json:"allowances"`
	Deductions float64   `gorm:"column:deductions" json:"deductions"`
	NetPay     float64   `gorm:"column:net_pay" json:"net_pay"`
	Status     string    `gorm:"column:status;check:status IN ('DRAFT', 'PAID');not null" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	User       *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (PayrollRecord) TableName() string {
	return "payroll_record"
}

// LeaveRequest model. Approve/reject are only legal from PENDING.
type LeaveRequest struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	ClinicID     string    `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	UserID       int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	StartDate    string    `gorm:"column:start_date;not null" json:"start_date"`
	EndDate      string    `gorm:"column:end_date;not null" json:"end_date"`
	Reason       string    `gorm:"column:reason;not null" json:"reason"`
	Status       string    `gorm:"column:status;check:status IN ('PENDING', 'APPROVED', 'REJECTED');not null" json:"status"`
	ReviewerNote string    `gorm:"column:reviewer_note" json:"reviewer_note,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	User         *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (LeaveRequest) TableName() string {
	return "leave_request"
}
