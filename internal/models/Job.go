package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Job statuses. A job is closed iff a worker has been awarded.
const (
	JobOpen   = "open"
	JobClosed = "closed"
)

// Job is a posted task with a geographic location and a single
// lifecycle: open on creation, closed once awarded. There is no
// transition back and no deletion.
type Job struct {
	gorm.Model
	EmployerID uint     `json:"employer_id" gorm:"index;not null"`
	Employer   Employer `gorm:"foreignKey:EmployerID" json:"-"`

	Title string `json:"title"`

	// Location stored in PostGIS as a POINT (SRID 4326), WKB-encoded.
	// Controllers speak GeoJSON; the column carries the proximity index.
	Location []byte `json:"-" gorm:"type:geometry(Point,4326)"`

	Date         time.Time      `json:"date"`
	SkillsNeeded pq.StringArray `json:"skills_needed" gorm:"type:text[]"`
	Pay          float64        `json:"pay"`
	Duration     string         `json:"duration"`

	Status          string `json:"status" gorm:"default:open;index"`
	WorkerAwardedID *uint  `json:"worker_awarded_id" gorm:"index"`

	// Applications in insertion order
	Applications []JobApplication `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}
