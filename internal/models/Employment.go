package models

import "gorm.io/gorm"

// Employment links an employer to a worker they have awarded a job to.
// Written as part of the award transaction; inserting the same pair
// twice is a no-op (ON CONFLICT DO NOTHING).
type Employment struct {
	gorm.Model
	EmployerID uint   `json:"employer_id" gorm:"uniqueIndex:idx_employer_worker"`
	WorkerID   uint   `json:"worker_id" gorm:"uniqueIndex:idx_employer_worker"`
	Worker     Worker `gorm:"foreignKey:WorkerID" json:"-"`
}
