package models

import "gorm.io/gorm"

// JobApplication records one worker applying to one job. The composite
// unique index makes duplicate applications fail at the database, so
// dedup never relies on a read-then-write check.
type JobApplication struct {
	gorm.Model
	JobID       uint   `json:"job_id" gorm:"uniqueIndex:idx_job_worker"`
	WorkerID    uint   `json:"worker_id" gorm:"uniqueIndex:idx_job_worker"`
	Worker      Worker `gorm:"foreignKey:WorkerID" json:"-"`
	CoverLetter string `json:"cover_letter"`
}
