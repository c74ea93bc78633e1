package service

import (
	"context"
	"errors"

	"gigboard/internal/models"
	"gigboard/internal/store"
)

// EmployerService covers employer profile reads and the thin
// profile-field mutations.
type EmployerService struct {
	employers EmployerStore
	jobs      JobStore
}

func NewEmployerService(employers EmployerStore, jobs JobStore) *EmployerService {
	return &EmployerService{employers: employers, jobs: jobs}
}

func (s *EmployerService) mapErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrEmployerNotFound
	}
	return err
}

func (s *EmployerService) Profile(ctx context.Context, employerID uint) (*models.Employer, error) {
	employer, err := s.employers.ByID(ctx, employerID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return employer, nil
}

// ByUserID resolves the acting employer from a token subject.
func (s *EmployerService) ByUserID(ctx context.Context, userID uint) (*models.Employer, error) {
	employer, err := s.employers.ByUserID(ctx, userID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return employer, nil
}

// Jobs lists everything the employer has posted, regardless of status.
func (s *EmployerService) Jobs(ctx context.Context, employerID uint) ([]models.Job, error) {
	if _, err := s.employers.ByID(ctx, employerID); err != nil {
		return nil, s.mapErr(err)
	}
	jobs, err := s.employers.Jobs(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// Workers lists everyone the employer has awarded a job to.
func (s *EmployerService) Workers(ctx context.Context, employerID uint) ([]WorkerSummary, error) {
	if _, err := s.employers.ByID(ctx, employerID); err != nil {
		return nil, s.mapErr(err)
	}
	workers, err := s.employers.Workers(ctx, employerID)
	if err != nil {
		return nil, err
	}
	summaries := make([]WorkerSummary, 0, len(workers))
	for _, w := range workers {
		summaries = append(summaries, summarize(w))
	}
	return summaries, nil
}

// JobProposals is the ownership-checked variant of job proposals: the
// job must belong to the asking employer.
func (s *EmployerService) JobProposals(ctx context.Context, employerID, jobID uint) ([]WorkerSummary, error) {
	job, err := s.jobs.ByIDOwned(ctx, jobID, employerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if len(job.Applications) == 0 {
		return []WorkerSummary{}, nil
	}
	workers, err := s.jobs.Applicants(ctx, jobID)
	if err != nil {
		return nil, err
	}
	summaries := make([]WorkerSummary, 0, len(workers))
	for _, w := range workers {
		summaries = append(summaries, summarize(w))
	}
	return summaries, nil
}

func (s *EmployerService) UpdatePhone(ctx context.Context, employerID uint, phone string) (*models.Employer, error) {
	if !ValidPhone(phone) {
		return nil, FieldErrors{{Field: "phone", Message: "must be exactly 10 digits"}}
	}
	if err := s.employers.UpdateFields(ctx, employerID, map[string]any{"phone": phone}); err != nil {
		return nil, s.mapErr(err)
	}
	return s.Profile(ctx, employerID)
}

func (s *EmployerService) UpdatePhoto(ctx context.Context, employerID uint, photoURL string) (*models.Employer, error) {
	if err := s.employers.UpdateFields(ctx, employerID, map[string]any{"photo_url": photoURL}); err != nil {
		return nil, s.mapErr(err)
	}
	return s.Profile(ctx, employerID)
}

// AddCredit applies an increment-only delta. Absolute overwrites are
// not offered, so concurrent top-ups and award flows cannot lose
// updates; the store refuses deltas that would go below zero.
func (s *EmployerService) AddCredit(ctx context.Context, employerID uint, delta float64) (*models.Employer, error) {
	if _, err := s.employers.ByID(ctx, employerID); err != nil {
		return nil, s.mapErr(err)
	}
	if err := s.employers.AddCredit(ctx, employerID, delta); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrInsufficientCredit
		}
		return nil, s.mapErr(err)
	}
	return s.Profile(ctx, employerID)
}
