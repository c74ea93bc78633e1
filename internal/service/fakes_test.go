package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"gigboard/internal/geo"
	"gigboard/internal/models"
	"gigboard/internal/store"
)

// In-memory store fakes mirroring the gorm implementations' contracts:
// sentinel errors, conditional updates, unique-index semantics.

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, user.Email) {
			return store.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	if user.Employer != nil {
		user.Employer.ID = user.ID
		user.Employer.UserID = user.ID
	}
	if user.Worker != nil {
		user.Worker.ID = user.ID
		user.Worker.UserID = user.ID
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) ByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

type fakeEmployerStore struct {
	employers map[uint]*models.Employer
	jobs      *fakeJobStore
}

func newFakeEmployerStore(jobs *fakeJobStore) *fakeEmployerStore {
	return &fakeEmployerStore{employers: map[uint]*models.Employer{}, jobs: jobs}
}

func (f *fakeEmployerStore) add(id uint, user models.User) *models.Employer {
	e := &models.Employer{User: user, UserID: user.ID, Phone: "1234567890"}
	e.ID = id
	f.employers[id] = e
	return e
}

func (f *fakeEmployerStore) ByID(_ context.Context, id uint) (*models.Employer, error) {
	e, ok := f.employers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return e, nil
}

func (f *fakeEmployerStore) ByUserID(_ context.Context, userID uint) (*models.Employer, error) {
	for _, e := range f.employers {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeEmployerStore) Jobs(_ context.Context, employerID uint) ([]models.Job, error) {
	var out []models.Job
	for _, j := range f.jobs.jobs {
		if j.EmployerID == employerID {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID > out[k].ID })
	return out, nil
}

func (f *fakeEmployerStore) Workers(_ context.Context, employerID uint) ([]models.Worker, error) {
	var out []models.Worker
	for _, emp := range f.jobs.employments {
		if emp.EmployerID == employerID {
			if w, ok := f.jobs.workers.workers[emp.WorkerID]; ok {
				out = append(out, *w)
			}
		}
	}
	return out, nil
}

func (f *fakeEmployerStore) UpdateFields(_ context.Context, id uint, fields map[string]any) error {
	e, ok := f.employers[id]
	if !ok {
		return store.ErrNotFound
	}
	if v, ok := fields["phone"]; ok {
		e.Phone = v.(string)
	}
	if v, ok := fields["photo_url"]; ok {
		e.PhotoURL = v.(string)
	}
	return nil
}

func (f *fakeEmployerStore) AddCredit(_ context.Context, id uint, delta float64) error {
	e, ok := f.employers[id]
	if !ok {
		return store.ErrNotFound
	}
	if e.Credit+delta < 0 {
		return store.ErrConflict
	}
	e.Credit += delta
	return nil
}

type fakeWorkerStore struct {
	workers map[uint]*models.Worker
	jobs    *fakeJobStore
}

func newFakeWorkerStore() *fakeWorkerStore {
	return &fakeWorkerStore{workers: map[uint]*models.Worker{}}
}

func (f *fakeWorkerStore) add(id uint, user models.User) *models.Worker {
	w := &models.Worker{User: user, UserID: user.ID, Phone: "0987654321"}
	w.ID = id
	f.workers[id] = w
	return w
}

func (f *fakeWorkerStore) ByID(_ context.Context, id uint) (*models.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return w, nil
}

func (f *fakeWorkerStore) ByUserID(_ context.Context, userID uint) (*models.Worker, error) {
	for _, w := range f.workers {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeWorkerStore) History(_ context.Context, workerID uint) ([]models.Job, error) {
	var out []models.Job
	for _, rec := range f.jobs.workRecords {
		if rec.WorkerID == workerID {
			if j, ok := f.jobs.jobs[rec.JobID]; ok {
				out = append(out, *j)
			}
		}
	}
	return out, nil
}

func (f *fakeWorkerStore) UpdateFields(_ context.Context, id uint, fields map[string]any) error {
	w, ok := f.workers[id]
	if !ok {
		return store.ErrNotFound
	}
	if v, ok := fields["phone"]; ok {
		w.Phone = v.(string)
	}
	if v, ok := fields["photo_url"]; ok {
		w.PhotoURL = v.(string)
	}
	if v, ok := fields["expertise"]; ok {
		w.Expertise = v.(pq.StringArray)
	}
	return nil
}

type fakeJobStore struct {
	jobs        map[uint]*models.Job
	nextID      uint
	apps        []models.JobApplication
	nextAppID   uint
	workRecords []models.WorkRecord
	employments []models.Employment
	workers     *fakeWorkerStore

	lastQuery *store.JobQuery
}

func newFakeJobStore(workers *fakeWorkerStore) *fakeJobStore {
	f := &fakeJobStore{jobs: map[uint]*models.Job{}, workers: workers}
	workers.jobs = f
	return f
}

func (f *fakeJobStore) Create(_ context.Context, job *models.Job) error {
	f.nextID++
	job.ID = f.nextID
	job.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Millisecond)
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobStore) applications(jobID uint) []models.JobApplication {
	var out []models.JobApplication
	for _, a := range f.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out
}

func (f *fakeJobStore) ByID(_ context.Context, id uint) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *j
	cp.Applications = f.applications(id)
	return &cp, nil
}

func (f *fakeJobStore) ByIDOwned(ctx context.Context, id, employerID uint) (*models.Job, error) {
	j, err := f.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j.EmployerID != employerID {
		return nil, store.ErrNotFound
	}
	return j, nil
}

func haversineMeters(lon1, lat1, lon2, lat2 float64) float64 {
	const earthRadius = 6371000.0
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadius * math.Asin(math.Sqrt(a))
}

func (f *fakeJobStore) List(_ context.Context, q store.JobQuery) ([]models.Job, error) {
	f.lastQuery = &q

	var out []models.Job
	for _, j := range f.jobs {
		if q.Status != "" && j.Status != q.Status {
			continue
		}
		if len(q.Skills) > 0 {
			overlap := false
			for _, want := range q.Skills {
				for _, have := range j.SkillsNeeded {
					if want == have {
						overlap = true
					}
				}
			}
			if !overlap {
				continue
			}
		}
		if q.MinPay != nil && j.Pay < *q.MinPay {
			continue
		}
		if q.MaxPay != nil && j.Pay > *q.MaxPay {
			continue
		}
		if q.StartDate != nil && j.Date.Before(*q.StartDate) {
			continue
		}
		if q.EndDate != nil && j.Date.After(*q.EndDate) {
			continue
		}
		if q.HasGeo {
			lon, lat, err := geo.Coordinates(j.Location)
			if err != nil {
				return nil, err
			}
			if haversineMeters(q.Longitude, q.Latitude, lon, lat) > q.MaxDistanceMeters {
				continue
			}
		}
		cp := *j
		cp.Applications = f.applications(j.ID)
		out = append(out, cp)
	}

	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	if q.Offset >= len(out) {
		return nil, nil
	}
	out = out[q.Offset:]
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeJobStore) UpdateFields(_ context.Context, id uint, fields map[string]any) error {
	j, ok := f.jobs[id]
	if !ok {
		return store.ErrNotFound
	}
	if v, ok := fields["title"]; ok {
		j.Title = v.(string)
	}
	if v, ok := fields["location"]; ok {
		j.Location = v.([]byte)
	}
	if v, ok := fields["date"]; ok {
		j.Date = v.(time.Time)
	}
	if v, ok := fields["skills_needed"]; ok {
		j.SkillsNeeded = v.(pq.StringArray)
	}
	if v, ok := fields["pay"]; ok {
		j.Pay = v.(float64)
	}
	if v, ok := fields["duration"]; ok {
		j.Duration = v.(string)
	}
	return nil
}

func (f *fakeJobStore) AddApplication(_ context.Context, app *models.JobApplication) error {
	for _, a := range f.apps {
		if a.JobID == app.JobID && a.WorkerID == app.WorkerID {
			return store.ErrDuplicate
		}
	}
	f.nextAppID++
	app.ID = f.nextAppID
	f.apps = append(f.apps, *app)
	return nil
}

func (f *fakeJobStore) Award(_ context.Context, jobID, employerID, workerID uint) error {
	j, ok := f.jobs[jobID]
	if !ok || j.EmployerID != employerID {
		return store.ErrConflict
	}
	if j.WorkerAwardedID != nil {
		return store.ErrConflict
	}
	id := workerID
	j.WorkerAwardedID = &id
	j.Status = models.JobClosed
	f.workRecords = append(f.workRecords, models.WorkRecord{WorkerID: workerID, JobID: jobID})
	// employments insert with ON CONFLICT DO NOTHING semantics
	for _, e := range f.employments {
		if e.EmployerID == employerID && e.WorkerID == workerID {
			return nil
		}
	}
	f.employments = append(f.employments, models.Employment{EmployerID: employerID, WorkerID: workerID})
	return nil
}

func (f *fakeJobStore) Applicants(_ context.Context, jobID uint) ([]models.Worker, error) {
	var out []models.Worker
	for _, a := range f.applications(jobID) {
		if w, ok := f.workers.workers[a.WorkerID]; ok {
			out = append(out, *w)
		}
	}
	return out, nil
}
