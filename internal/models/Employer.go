// internal/models/employer.go
package models

import (
	"gorm.io/gorm"
)

// Employer is the actor record for users with the "employer" category.
// Identity fields (name, email, password) live on the User row only.
type Employer struct {
	gorm.Model
	UserID   uint    `json:"user_id" gorm:"uniqueIndex"` // Foreign key to User
	User     User    `gorm:"foreignKey:UserID" json:"-"`
	Credit   float64 `json:"credit" gorm:"default:0"`
	Ratings  float64 `json:"ratings" gorm:"default:0"` // 0..5
	PhotoURL string  `json:"photo_url"`
	Phone    string  `json:"phone"` // 10-digit numeric string

	// Jobs posted by this employer
	Jobs []Job `gorm:"foreignKey:EmployerID" json:"jobs,omitempty"`
	// Workers hired through awarded jobs
	Employments []Employment `gorm:"foreignKey:EmployerID" json:"employments,omitempty"`
}
