package store

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gigboard/internal/models"
)

// JobQuery is the normalized discovery filter. Callers fill defaults
// and drop incomplete geo triples before handing it over; the store
// applies it verbatim.
type JobQuery struct {
	Skills    []string
	MinPay    *float64
	MaxPay    *float64
	StartDate *time.Time
	EndDate   *time.Time

	// Proximity filter, applied only when HasGeo is set.
	Longitude         float64
	Latitude          float64
	MaxDistanceMeters float64
	HasGeo            bool

	Status string // "" means any status
	Offset int
	Limit  int
}

// Jobs is the gorm-backed job store.
type Jobs struct {
	db *gorm.DB
}

func NewJobs(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (s *Jobs) Create(ctx context.Context, job *models.Job) error {
	return s.db.WithContext(ctx).Create(job).Error
}

func withApplications(db *gorm.DB) *gorm.DB {
	return db.Preload("Applications", func(db *gorm.DB) *gorm.DB {
		return db.Order("job_applications.id")
	})
}

func (s *Jobs) ByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := withApplications(s.db.WithContext(ctx)).First(&job, id).Error
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &job, nil
}

func (s *Jobs) ByIDOwned(ctx context.Context, id, employerID uint) (*models.Job, error) {
	var job models.Job
	err := withApplications(s.db.WithContext(ctx)).
		Where("id = ? AND employer_id = ?", id, employerID).
		First(&job).Error
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &job, nil
}

// List runs the normalized discovery query. Proximity uses the PostGIS
// geography cast so the distance bound is in meters on a sphere.
func (s *Jobs) List(ctx context.Context, q JobQuery) ([]models.Job, error) {
	tx := s.db.WithContext(ctx).Model(&models.Job{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if len(q.Skills) > 0 {
		tx = tx.Where("skills_needed && ?", pq.Array(q.Skills))
	}
	if q.MinPay != nil {
		tx = tx.Where("pay >= ?", *q.MinPay)
	}
	if q.MaxPay != nil {
		tx = tx.Where("pay <= ?", *q.MaxPay)
	}
	if q.StartDate != nil {
		tx = tx.Where("date >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		tx = tx.Where("date <= ?", *q.EndDate)
	}
	if q.HasGeo {
		tx = tx.Where(
			"ST_DWithin(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			q.Longitude, q.Latitude, q.MaxDistanceMeters,
		)
	}

	var jobs []models.Job
	err := withApplications(tx).
		Order("created_at DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&jobs).Error
	return jobs, err
}

func (s *Jobs) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Jobs) AddApplication(ctx context.Context, app *models.JobApplication) error {
	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return mapWriteErr(err)
	}
	return nil
}

// Award performs the three-entity award effect in one transaction. The
// job close is conditional on worker_awarded_id still being NULL, so
// of two racing awards exactly one commits; the side tables insert
// with ON CONFLICT DO NOTHING so the whole unit is idempotent.
func (s *Jobs) Award(ctx context.Context, jobID, employerID, workerID uint) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	res := tx.Model(&models.Job{}).
		Where("id = ? AND employer_id = ? AND worker_awarded_id IS NULL", jobID, employerID).
		Updates(map[string]any{
			"worker_awarded_id": workerID,
			"status":            models.JobClosed,
		})
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return ErrConflict
	}

	record := models.WorkRecord{WorkerID: workerID, JobID: jobID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		tx.Rollback()
		return err
	}

	employment := models.Employment{EmployerID: employerID, WorkerID: workerID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&employment).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Applicants resolves the applicant set to worker rows in application
// order, identity preloaded for display projections.
func (s *Jobs) Applicants(ctx context.Context, jobID uint) ([]models.Worker, error) {
	var workers []models.Worker
	err := s.db.WithContext(ctx).
		Joins("JOIN job_applications ON job_applications.worker_id = workers.id").
		Where("job_applications.job_id = ? AND job_applications.deleted_at IS NULL", jobID).
		Order("job_applications.id").
		Preload("User").
		Find(&workers).Error
	return workers, err
}
