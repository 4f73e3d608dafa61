package models

import "time"

// Employee is always backed by exactly one User; the row is created and
// deleted together with it.
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	User      User      `json:"user"`
	HireDate  time.Time `gorm:"not null" json:"hireDate"`
	Salary    float64   `gorm:"not null;check:salary >= 0" json:"salary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
