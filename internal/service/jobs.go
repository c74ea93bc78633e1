package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"gigboard/internal/geo"
	"gigboard/internal/models"
	"gigboard/internal/store"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// JobService owns the job lifecycle: creation, discovery, applications
// and the award transition. All multi-entity effects go through the
// store's atomic primitives, never read-then-write.
type JobService struct {
	jobs      JobStore
	workers   WorkerStore
	employers EmployerStore
}

func NewJobService(jobs JobStore, workers WorkerStore, employers EmployerStore) *JobService {
	return &JobService{jobs: jobs, workers: workers, employers: employers}
}

// CreateJobInput carries the employer-supplied fields for a new job.
type CreateJobInput struct {
	Title        string
	Longitude    float64
	Latitude     float64
	Date         time.Time
	SkillsNeeded []string
	Pay          float64
	Duration     string
}

func (in CreateJobInput) validate() error {
	var errs FieldErrors
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{"title", "must not be empty"})
	}
	if len(in.SkillsNeeded) == 0 {
		errs = append(errs, FieldError{"skills_needed", "at least one skill is required"})
	}
	if in.Pay < 0 {
		errs = append(errs, FieldError{"pay", "must not be negative"})
	}
	if strings.TrimSpace(in.Duration) == "" {
		errs = append(errs, FieldError{"duration", "must not be empty"})
	}
	errs = validateCoordinates(errs, in.Longitude, in.Latitude)
	return errs.OrNil()
}

// Create posts a new open job for the employer. The employer's job
// list is the FK relation itself, so no second write is needed.
func (s *JobService) Create(ctx context.Context, employerID uint, in CreateJobInput) (*models.Job, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.employers.ByID(ctx, employerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}

	location, err := geo.PointWKB(in.Longitude, in.Latitude)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	job := &models.Job{
		EmployerID:   employerID,
		Title:        strings.TrimSpace(in.Title),
		Location:     location,
		Date:         date,
		SkillsNeeded: in.SkillsNeeded,
		Pay:          in.Pay,
		Duration:     in.Duration,
		Status:       models.JobOpen,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// JobFilter is the raw, request-shaped filter for job discovery.
type JobFilter struct {
	Skills        []string
	MinPay        *float64
	MaxPay        *float64
	StartDate     *time.Time
	EndDate       *time.Time
	Longitude     *float64
	Latitude      *float64
	MaxDistanceKm *float64
	Status        string
	Page          int
	Limit         int
}

// normalize applies the documented defaults: status open, page 1,
// limit 10, and the proximity filter only when longitude, latitude and
// maxDistance arrive together. Partial triples are dropped, not
// rejected.
func (f JobFilter) normalize() store.JobQuery {
	q := store.JobQuery{
		Skills:    f.Skills,
		MinPay:    f.MinPay,
		MaxPay:    f.MaxPay,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    f.Status,
	}
	if q.Status == "" {
		q.Status = models.JobOpen
	}

	if f.Longitude != nil && f.Latitude != nil && f.MaxDistanceKm != nil {
		q.Longitude = *f.Longitude
		q.Latitude = *f.Latitude
		q.MaxDistanceMeters = *f.MaxDistanceKm * 1000
		q.HasGeo = true
	}

	page := f.Page
	if page < 1 {
		page = defaultPage
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	q.Offset = (page - 1) * limit
	q.Limit = limit
	return q
}

// List returns jobs matching the filter, newest first. No matches is
// an empty slice, not an error.
func (s *JobService) List(ctx context.Context, f JobFilter) ([]models.Job, error) {
	jobs, err := s.jobs.List(ctx, f.normalize())
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// OpenJobs is List with the status pinned to open regardless of the
// caller's filter.
func (s *JobService) OpenJobs(ctx context.Context, f JobFilter) ([]models.Job, error) {
	f.Status = models.JobOpen
	return s.List(ctx, f)
}

func (s *JobService) Get(ctx context.Context, jobID uint) (*models.Job, error) {
	job, err := s.jobs.ByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// UpdateJobInput is a partial patch; nil fields are left untouched.
// Ownership, applications and the award are not reachable through it.
type UpdateJobInput struct {
	Title        *string
	Longitude    *float64
	Latitude     *float64
	Date         *time.Time
	SkillsNeeded []string
	Pay          *float64
	Duration     *string
}

func (in UpdateJobInput) validate() error {
	var errs FieldErrors
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		errs = append(errs, FieldError{"title", "must not be empty"})
	}
	if in.Pay != nil && *in.Pay < 0 {
		errs = append(errs, FieldError{"pay", "must not be negative"})
	}
	if in.SkillsNeeded != nil && len(in.SkillsNeeded) == 0 {
		errs = append(errs, FieldError{"skills_needed", "at least one skill is required"})
	}
	if (in.Longitude == nil) != (in.Latitude == nil) {
		errs = append(errs, FieldError{"location", "longitude and latitude must be provided together"})
	} else if in.Longitude != nil {
		errs = validateCoordinates(errs, *in.Longitude, *in.Latitude)
	}
	return errs.OrNil()
}

// Update patches job fields for the owning employer. The lookup is
// scoped to the owner, so a foreign job and a missing job are the same
// not-found to the caller.
func (s *JobService) Update(ctx context.Context, jobID, employerID uint, in UpdateJobInput) (*models.Job, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.jobs.ByIDOwned(ctx, jobID, employerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Longitude != nil && in.Latitude != nil {
		location, err := geo.PointWKB(*in.Longitude, *in.Latitude)
		if err != nil {
			return nil, err
		}
		fields["location"] = location
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	if in.SkillsNeeded != nil {
		fields["skills_needed"] = pq.StringArray(in.SkillsNeeded)
	}
	if in.Pay != nil {
		fields["pay"] = *in.Pay
	}
	if in.Duration != nil {
		fields["duration"] = *in.Duration
	}

	if len(fields) > 0 {
		if err := s.jobs.UpdateFields(ctx, jobID, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, jobID)
}

// Apply appends the worker to the job's applicant set. Duplicate
// applications are rejected explicitly, and the unique index backs the
// check under concurrent requests.
func (s *JobService) Apply(ctx context.Context, jobID, workerID uint, coverLetter string) (*models.Job, error) {
	if _, err := s.workers.ByID(ctx, workerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobOpen {
		return nil, ErrJobNotOpen
	}
	for _, app := range job.Applications {
		if app.WorkerID == workerID {
			return nil, ErrAlreadyApplied
		}
	}

	err = s.jobs.AddApplication(ctx, &models.JobApplication{
		JobID:       jobID,
		WorkerID:    workerID,
		CoverLetter: coverLetter,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return s.Get(ctx, jobID)
}

// Award closes the job in favor of one applicant. The transition plus
// the worker's history entry and the employment link are committed as
// one transaction; the close itself is conditional on the job still
// being unawarded, so concurrent awards cannot both win.
func (s *JobService) Award(ctx context.Context, jobID, employerID, workerID uint) (*models.Job, error) {
	job, err := s.jobs.ByIDOwned(ctx, jobID, employerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.WorkerAwardedID != nil {
		return nil, ErrAlreadyAwarded
	}

	if _, err := s.workers.ByID(ctx, workerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	applied := false
	for _, app := range job.Applications {
		if app.WorkerID == workerID {
			applied = true
			break
		}
	}
	if !applied {
		return nil, ErrNotApplied
	}

	if err := s.jobs.Award(ctx, jobID, employerID, workerID); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrAlreadyAwarded
		}
		return nil, err
	}
	return s.Get(ctx, jobID)
}

// WorkerSummary is the applicant projection shown to employers.
type WorkerSummary struct {
	ID        uint     `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Ratings   float64  `json:"ratings"`
	Expertise []string `json:"expertise"`
	PhotoURL  string   `json:"photo_url"`
}

func summarize(w models.Worker) WorkerSummary {
	return WorkerSummary{
		ID:        w.ID,
		FirstName: w.User.FirstName,
		LastName:  w.User.LastName,
		Email:     w.User.Email,
		Ratings:   w.Ratings,
		Expertise: w.Expertise,
		PhotoURL:  w.PhotoURL,
	}
}

// Proposals lists the job's applicants as display summaries, in the
// order they applied. No applicants is an empty slice.
func (s *JobService) Proposals(ctx context.Context, jobID uint) ([]WorkerSummary, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
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
