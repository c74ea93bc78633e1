package models

import "gorm.io/gorm"

// Account categories. Every user is exactly one of these and owns the
// matching actor record.
const (
	CategoryEmployer = "employer"
	CategoryWorker   = "worker"
)

type User struct {
	gorm.Model
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" gorm:"unique"`
	Password  string `json:"-"`        // bcrypt hash, never serialized
	Category  string `json:"category"` // "employer" or "worker"

	// Actor-specific relations
	Employer *Employer `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employer,omitempty"`
	Worker   *Worker   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"worker,omitempty"`
}
