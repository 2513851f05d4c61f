package models

import (
	"time"
)

// Employee roles. New hires are always created as RoleEmployee; the admin role
// is seeded out-of-band (see repository.SeedAdmins).
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Employee represents a provisioned staff record. Email is the unique business
// key; EmployeeID is a human-readable identifier assigned once at creation and
// never reused ("#B&V01", "#B&V02", ...).
type Employee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  string    `gorm:"size:16;not null" json:"employeeId"`
	Name        string    `gorm:"size:128" json:"name"`
	Designation string    `gorm:"size:128" json:"designation"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone       string    `gorm:"size:32" json:"phone"`
	Image       string    `gorm:"size:512" json:"image"`
	Role        string    `gorm:"size:16;default:employee" json:"role"`
	IsAccount   bool      `gorm:"default:false" json:"isAccount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EmployeeName is the projected listing used by the admin attendance screens.
type EmployeeName struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
}
