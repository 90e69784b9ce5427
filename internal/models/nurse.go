package models

import "time"

type Nurse struct {
	EmployeeID uint64    `gorm:"primarykey;column:employee_id" json:"employeeId"`
	FirstName  string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName   string    `gorm:"type:varchar(255);not null" json:"lastName"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	WardID     uint64    `gorm:"not null" json:"wardId"`
	UserID     *uint64   `json:"userId,omitempty"` // declared association, not written by any handler
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relations
	Ward *Ward `gorm:"foreignKey:WardID" json:"ward,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
