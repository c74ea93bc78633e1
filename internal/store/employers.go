package store

import (
	"context"

	"gorm.io/gorm"

	"gigboard/internal/models"
)

// Employers is the gorm-backed employer store.
type Employers struct {
	db *gorm.DB
}

func NewEmployers(db *gorm.DB) *Employers {
	return &Employers{db: db}
}

func (s *Employers) ByID(ctx context.Context, id uint) (*models.Employer, error) {
	var employer models.Employer
	err := s.db.WithContext(ctx).Preload("User").First(&employer, id).Error
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &employer, nil
}

func (s *Employers) ByUserID(ctx context.Context, userID uint) (*models.Employer, error) {
	var employer models.Employer
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&employer).Error
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &employer, nil
}

func (s *Employers) Jobs(ctx context.Context, employerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// Workers returns the employed workers through the employments join,
// in hiring order, with the identity row preloaded for summaries.
func (s *Employers) Workers(ctx context.Context, employerID uint) ([]models.Worker, error) {
	var workers []models.Worker
	err := s.db.WithContext(ctx).
		Joins("JOIN employments ON employments.worker_id = workers.id").
		Where("employments.employer_id = ? AND employments.deleted_at IS NULL", employerID).
		Order("employments.id").
		Preload("User").
		Find(&workers).Error
	return workers, err
}

func (s *Employers) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.Employer{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddCredit applies the delta in SQL rather than overwriting, and only
// when the resulting balance stays non-negative.
func (s *Employers) AddCredit(ctx context.Context, id uint, delta float64) error {
	res := s.db.WithContext(ctx).Model(&models.Employer{}).
		Where("id = ? AND credit + ? >= 0", id, delta).
		Update("credit", gorm.Expr("credit + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}
