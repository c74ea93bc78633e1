package store

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// Users is the gorm-backed user store.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create inserts the user and its nested actor record. GORM writes the
// association within a single transaction, so a failed actor insert
// rolls back the user row too.
func (s *Users) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (s *Users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		Preload("Employer").
		Preload("Worker").
		First(&user).Error
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &user, nil
}

func (s *Users) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Employer").
		Preload("Worker").
		First(&user, id).Error
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &user, nil
}

func mapReadErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func mapWriteErr(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
