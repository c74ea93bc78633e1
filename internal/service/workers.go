package service

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"gigboard/internal/models"
	"gigboard/internal/store"
)

// WorkerService covers worker profile reads and updates.
type WorkerService struct {
	workers WorkerStore
}

func NewWorkerService(workers WorkerStore) *WorkerService {
	return &WorkerService{workers: workers}
}

func (s *WorkerService) mapErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrWorkerNotFound
	}
	return err
}

func (s *WorkerService) Profile(ctx context.Context, workerID uint) (*models.Worker, error) {
	worker, err := s.workers.ByID(ctx, workerID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return worker, nil
}

// ByUserID resolves the acting worker from a token subject.
func (s *WorkerService) ByUserID(ctx context.Context, userID uint) (*models.Worker, error) {
	worker, err := s.workers.ByUserID(ctx, userID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return worker, nil
}

// History returns the jobs awarded to the worker in completion order.
func (s *WorkerService) History(ctx context.Context, workerID uint) ([]models.Job, error) {
	if _, err := s.workers.ByID(ctx, workerID); err != nil {
		return nil, s.mapErr(err)
	}
	jobs, err := s.workers.History(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

func (s *WorkerService) UpdatePhone(ctx context.Context, workerID uint, phone string) (*models.Worker, error) {
	if !ValidPhone(phone) {
		return nil, FieldErrors{{Field: "phone", Message: "must be exactly 10 digits"}}
	}
	if err := s.workers.UpdateFields(ctx, workerID, map[string]any{"phone": phone}); err != nil {
		return nil, s.mapErr(err)
	}
	return s.Profile(ctx, workerID)
}

func (s *WorkerService) UpdatePhoto(ctx context.Context, workerID uint, photoURL string) (*models.Worker, error) {
	if err := s.workers.UpdateFields(ctx, workerID, map[string]any{"photo_url": photoURL}); err != nil {
		return nil, s.mapErr(err)
	}
	return s.Profile(ctx, workerID)
}

func (s *WorkerService) UpdateExpertise(ctx context.Context, workerID uint, expertise []string) (*models.Worker, error) {
	if len(expertise) == 0 {
		return nil, FieldErrors{{Field: "expertise", Message: "at least one skill is required"}}
	}
	fields := map[string]any{"expertise": pq.StringArray(expertise)}
	if err := s.workers.UpdateFields(ctx, workerID, fields); err != nil {
		return nil, s.mapErr(err)
	}
	return s.Profile(ctx, workerID)
}
