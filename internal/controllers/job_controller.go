package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gigboard/internal/geo"
	"gigboard/internal/middleware"
	"gigboard/internal/models"
	"gigboard/internal/service"
)

type JobController struct {
	jobs      *service.JobService
	employers *service.EmployerService
	workers   *service.WorkerService
}

func NewJobController(jobs *service.JobService, employers *service.EmployerService, workers *service.WorkerService) *JobController {
	return &JobController{jobs: jobs, employers: employers, workers: workers}
}

// JobResponse mirrors models.Job with the location rendered as a
// GeoJSON string and the applicant set flattened to worker ids.
type JobResponse struct {
	ID              uint           `json:"ID"`
	CreatedAt       time.Time      `json:"CreatedAt"`
	UpdatedAt       time.Time      `json:"UpdatedAt"`
	DeletedAt       gorm.DeletedAt `json:"DeletedAt,omitempty"`
	EmployerID      uint           `json:"employer_id"`
	Title           string         `json:"title"`
	Location        string         `json:"location"` // GeoJSON point
	Date            time.Time      `json:"date"`
	SkillsNeeded    []string       `json:"skills_needed"`
	Pay             float64        `json:"pay"`
	Duration        string         `json:"duration"`
	Status          string         `json:"status"`
	WorkerAwardedID *uint          `json:"worker_awarded_id"`
	WorkersApplied  []uint         `json:"workers_applied"`
}

func toJobResponse(job models.Job) JobResponse {
	jsonLoc, _ := geo.GeoJSON(job.Location)
	applied := make([]uint, 0, len(job.Applications))
	for _, app := range job.Applications {
		applied = append(applied, app.WorkerID)
	}
	return JobResponse{
		ID:              job.ID,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
		DeletedAt:       job.DeletedAt,
		EmployerID:      job.EmployerID,
		Title:           job.Title,
		Location:        jsonLoc,
		Date:            job.Date,
		SkillsNeeded:    job.SkillsNeeded,
		Pay:             job.Pay,
		Duration:        job.Duration,
		Status:          job.Status,
		WorkerAwardedID: job.WorkerAwardedID,
		WorkersApplied:  applied,
	}
}

func toJobResponses(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toJobResponse(job))
	}
	return out
}

// actingEmployer resolves the authenticated user to their employer
// record; the employer id is never taken from the request body.
func (ct *JobController) actingEmployer(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return 0, false
	}
	employer, err := ct.employers.ByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only employers can perform this action"})
		return 0, false
	}
	return employer.ID, true
}

func (ct *JobController) actingWorker(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return 0, false
	}
	worker, err := ct.workers.ByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only workers can perform this action"})
		return 0, false
	}
	return worker.ID, true
}

type createJobInput struct {
	Title        string    `json:"title" binding:"required"`
	Longitude    float64   `json:"longitude"`
	Latitude     float64   `json:"latitude"`
	Date         time.Time `json:"date"`
	SkillsNeeded []string  `json:"skills_needed" binding:"required"`
	Pay          float64   `json:"pay"`
	Duration     string    `json:"duration" binding:"required"`
}

// CreateJob allows an employer to post a new job.
func (ct *JobController) CreateJob(c *gin.Context) {
	var input createJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateJob: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	employerID, ok := ct.actingEmployer(c)
	if !ok {
		return
	}

	job, err := ct.jobs.Create(c.Request.Context(), employerID, service.CreateJobInput{
		Title:        input.Title,
		Longitude:    input.Longitude,
		Latitude:     input.Latitude,
		Date:         input.Date,
		SkillsNeeded: input.SkillsNeeded,
		Pay:          input.Pay,
		Duration:     input.Duration,
	})
	if err != nil {
		respondError(c, "CreateJob failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": toJobResponse(*job)})
}

func parseFloatQuery(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseDateQuery(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func parseIntQuery(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.Query(key))
	return v
}

func filterFromQuery(c *gin.Context) service.JobFilter {
	var skills []string
	if raw := c.Query("skills"); raw != "" {
		skills = splitCSV(raw)
	}
	return service.JobFilter{
		Skills:        skills,
		MinPay:        parseFloatQuery(c, "minPay"),
		MaxPay:        parseFloatQuery(c, "maxPay"),
		StartDate:     parseDateQuery(c, "startDate"),
		EndDate:       parseDateQuery(c, "endDate"),
		Longitude:     parseFloatQuery(c, "longitude"),
		Latitude:      parseFloatQuery(c, "latitude"),
		MaxDistanceKm: parseFloatQuery(c, "maxDistance"),
		Status:        c.Query("status"),
		Page:          parseIntQuery(c, "page"),
		Limit:         parseIntQuery(c, "limit"),
	}
}

// ListJobs returns jobs matching the query filters, open by default.
func (ct *JobController) ListJobs(c *gin.Context) {
	jobs, err := ct.jobs.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		respondError(c, "ListJobs failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toJobResponses(jobs)})
}

// ListOpenJobs returns open jobs only, ignoring any status filter.
func (ct *JobController) ListOpenJobs(c *gin.Context) {
	jobs, err := ct.jobs.OpenJobs(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		respondError(c, "ListOpenJobs failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toJobResponses(jobs)})
}

func (ct *JobController) GetJob(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, err := ct.jobs.Get(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, "GetJob failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toJobResponse(*job)})
}

type updateJobInput struct {
	Title        *string    `json:"title"`
	Longitude    *float64   `json:"longitude"`
	Latitude     *float64   `json:"latitude"`
	Date         *time.Time `json:"date"`
	SkillsNeeded []string   `json:"skills_needed"`
	Pay          *float64   `json:"pay"`
	Duration     *string    `json:"duration"`
}

// UpdateJob patches job fields; only the owning employer may call it.
func (ct *JobController) UpdateJob(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input updateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	employerID, ok := ct.actingEmployer(c)
	if !ok {
		return
	}

	job, err := ct.jobs.Update(c.Request.Context(), jobID, employerID, service.UpdateJobInput{
		Title:        input.Title,
		Longitude:    input.Longitude,
		Latitude:     input.Latitude,
		Date:         input.Date,
		SkillsNeeded: input.SkillsNeeded,
		Pay:          input.Pay,
		Duration:     input.Duration,
	})
	if err != nil {
		respondError(c, "UpdateJob failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toJobResponse(*job)})
}

// ApplyToJob appends the authenticated worker to the applicant set.
func (ct *JobController) ApplyToJob(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body struct {
		CoverLetter string `json:"cover_letter"`
	}
	// Body is optional; a missing cover letter is fine.
	_ = c.ShouldBindJSON(&body)

	workerID, ok := ct.actingWorker(c)
	if !ok {
		return
	}

	job, err := ct.jobs.Apply(c.Request.Context(), jobID, workerID, body.CoverLetter)
	if err != nil {
		respondError(c, "ApplyToJob failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toJobResponse(*job)})
}

// AwardJob closes the job in favor of one applicant.
func (ct *JobController) AwardJob(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body struct {
		WorkerID uint `json:"worker_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	employerID, ok := ct.actingEmployer(c)
	if !ok {
		return
	}

	job, err := ct.jobs.Award(c.Request.Context(), jobID, employerID, body.WorkerID)
	if err != nil {
		respondError(c, "AwardJob failed", err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"job_id":    jobID,
		"worker_id": body.WorkerID,
	}).Info("job awarded")
	c.JSON(http.StatusOK, gin.H{"data": toJobResponse(*job)})
}

// GetJobProposals lists applicant summaries for a job.
func (ct *JobController) GetJobProposals(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	proposals, err := ct.jobs.Proposals(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, "GetJobProposals failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": proposals})
}
