package models

import "gorm.io/gorm"

// WorkRecord is one entry in a worker's job history, appended when a
// job is awarded to them. Row ids give the insertion order.
type WorkRecord struct {
	gorm.Model
	WorkerID uint `json:"worker_id" gorm:"uniqueIndex:idx_worker_job"`
	JobID    uint `json:"job_id" gorm:"uniqueIndex:idx_worker_job"`
	Job      Job  `gorm:"foreignKey:JobID" json:"-"`
}
