// internal/models/worker.go
package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Worker is the actor record for users with the "worker" category.
type Worker struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"uniqueIndex"` // Foreign key to User
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Credit    float64        `json:"credit" gorm:"default:0"`
	Expertise pq.StringArray `json:"expertise" gorm:"type:text[]"`
	Ratings   float64        `json:"ratings" gorm:"default:0"` // 0..5
	PhotoURL  string         `json:"photo_url"`
	Phone     string         `json:"phone"` // 10-digit numeric string

	// Jobs this worker was awarded, in completion order
	WorkRecords []WorkRecord `gorm:"foreignKey:WorkerID" json:"work_records,omitempty"`
}
