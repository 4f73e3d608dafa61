package models

import "time"

// Request is a ticket raised by an employee or an admin. Exactly one of
// EmployeeID/AdminID is set, identifying the creator.
type Request struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"not null" json:"code"`
	Description string    `gorm:"not null" json:"description"`
	Summary     string    `json:"summary"`
	EmployeeID  *uint     `json:"employeeId"`
	Employee    *Employee `json:"employee,omitempty"`
	AdminID     *uint     `json:"adminId"`
	Admin       *User     `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
