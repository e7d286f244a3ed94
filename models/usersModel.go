package models

import (
	"time"

	"gorm.io/gorm"
)

// Role names used by the authorization middleware.
const (
	RoleOwner   = "OWNER"
	RoleDoctor  = "DOCTOR"
	RoleStaff   = "STAFF"
	RolePatient = "PATIENT"
)

// Role represents a user role
type Role struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:50;not null;unique;index;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

// SeedRoles inserts initial roles into the database
func SeedRoles(db *gorm.DB) error {
	initialRoles := []Role{
		{Name: RoleOwner, Description: "Full access to the clinic"},
		{Name: RoleDoctor, Description: "Manages patients, prescriptions and plans"},
		{Name: RoleStaff, Description: "Handles appointments, billing and pharmacy"},
		{Name: RolePatient, Description: "Patient portal access only"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, role := range initialRoles {
			if err := tx.FirstOrCreate(&role, Role{Name: role.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// User represents a user in the system. PATIENT users carry a link to their
// patient record for portal scoping.
type User struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	ClinicID  string    `gorm:"column:clinic_id;not null;index" json:"clinic_id"`
	Username  string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email     string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password  string    `gorm:"size:255;not null;column:password" json:"password"`
	RoleID    int64     `gorm:"index;not null;column:role_id" json:"role_id"`
	Role      Role      `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role"`
	PatientID *string   `gorm:"column:patient_id;index" json:"patient_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
