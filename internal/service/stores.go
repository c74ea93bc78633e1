package service

import (
	"context"

	"gigboard/internal/models"
	"gigboard/internal/store"
)

// Store interfaces the services depend on. The gorm implementations
// live in internal/store; tests substitute in-memory fakes.

type UserStore interface {
	// Create persists the user together with its nested actor record in
	// one transaction. Returns store.ErrDuplicate on an email collision.
	Create(ctx context.Context, user *models.User) error
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id uint) (*models.User, error)
}

type EmployerStore interface {
	ByID(ctx context.Context, id uint) (*models.Employer, error)
	ByUserID(ctx context.Context, userID uint) (*models.Employer, error)
	Jobs(ctx context.Context, employerID uint) ([]models.Job, error)
	Workers(ctx context.Context, employerID uint) ([]models.Worker, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	// AddCredit applies an increment-only delta, refusing updates that
	// would take the balance below zero. Returns store.ErrConflict when
	// the conditional update matches no row with sufficient credit.
	AddCredit(ctx context.Context, id uint, delta float64) error
}

type WorkerStore interface {
	ByID(ctx context.Context, id uint) (*models.Worker, error)
	ByUserID(ctx context.Context, userID uint) (*models.Worker, error)
	History(ctx context.Context, workerID uint) ([]models.Job, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
}

type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	// ByID returns the job with its applications preloaded in
	// insertion order.
	ByID(ctx context.Context, id uint) (*models.Job, error)
	// ByIDOwned scopes the lookup to the owning employer; a miss for
	// either reason is store.ErrNotFound.
	ByIDOwned(ctx context.Context, id, employerID uint) (*models.Job, error)
	List(ctx context.Context, q store.JobQuery) ([]models.Job, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	// AddApplication inserts one application row; the composite unique
	// index turns duplicates into store.ErrDuplicate.
	AddApplication(ctx context.Context, app *models.JobApplication) error
	// Award closes the job and writes the work-record and employment
	// rows in one transaction. The close is conditional on the job
	// being unawarded; a lost race is store.ErrConflict.
	Award(ctx context.Context, jobID, employerID, workerID uint) error
	// Applicants resolves workersApplied to worker rows, User
	// preloaded, in application order.
	Applicants(ctx context.Context, jobID uint) ([]models.Worker, error)
}
