package store

import "errors"

var (
	// ErrNotFound maps gorm.ErrRecordNotFound for the service layer.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned for unique-index violations (duplicate
	// email, duplicate application).
	ErrDuplicate = errors.New("duplicate record")
	// ErrConflict is returned when a conditional update matched no row,
	// i.e. another request already performed the transition.
	ErrConflict = errors.New("conditional update matched no row")
)
