package store

import (
	"context"

	"gorm.io/gorm"

	"gigboard/internal/models"
)

// Workers is the gorm-backed worker store.
type Workers struct {
	db *gorm.DB
}

func NewWorkers(db *gorm.DB) *Workers {
	return &Workers{db: db}
}

func (s *Workers) ByID(ctx context.Context, id uint) (*models.Worker, error) {
	var worker models.Worker
	err := s.db.WithContext(ctx).Preload("User").First(&worker, id).Error
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &worker, nil
}

func (s *Workers) ByUserID(ctx context.Context, userID uint) (*models.Worker, error) {
	var worker models.Worker
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&worker).Error
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &worker, nil
}

// History lists the jobs awarded to the worker through work_records,
// oldest first, matching the order entries were appended.
func (s *Workers) History(ctx context.Context, workerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Joins("JOIN work_records ON work_records.job_id = jobs.id").
		Where("work_records.worker_id = ? AND work_records.deleted_at IS NULL", workerID).
		Order("work_records.id").
		Find(&jobs).Error
	return jobs, err
}

func (s *Workers) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.Worker{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
