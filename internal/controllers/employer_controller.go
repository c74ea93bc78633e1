package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigboard/internal/middleware"
	"gigboard/internal/service"
)

type EmployerController struct {
	employers *service.EmployerService
}

func NewEmployerController(employers *service.EmployerService) *EmployerController {
	return &EmployerController{employers: employers}
}

// acting resolves the authenticated user to their employer record.
// Routes in this group are already gated on the employer category, so
// a miss here means the actor row is gone.
func (ct *EmployerController) acting(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return 0, false
	}
	employer, err := ct.employers.ByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "employer lookup failed", err)
		return 0, false
	}
	return employer.ID, true
}

func (ct *EmployerController) Profile(c *gin.Context) {
	employerID, ok := ct.acting(c)
	if !ok {
		return
	}
	employer, err := ct.employers.Profile(c.Request.Context(), employerID)
	if err != nil {
		respondError(c, "employer profile failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": employer})
}

func (ct *EmployerController) Jobs(c *gin.Context) {
	employerID, ok := ct.acting(c)
	if !ok {
		return
	}
	jobs, err := ct.employers.Jobs(c.Request.Context(), employerID)
	if err != nil {
		respondError(c, "employer jobs failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toJobResponses(jobs)})
}

func (ct *EmployerController) Workers(c *gin.Context) {
	employerID, ok := ct.acting(c)
	if !ok {
		return
	}
	workers, err := ct.employers.Workers(c.Request.Context(), employerID)
	if err != nil {
		respondError(c, "employer workers failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": workers})
}

// JobProposals lists applicants for one of the employer's own jobs.
func (ct *EmployerController) JobProposals(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	employerID, ok := ct.acting(c)
	if !ok {
		return
	}
	proposals, err := ct.employers.JobProposals(c.Request.Context(), employerID, jobID)
	if err != nil {
		respondError(c, "employer job proposals failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": proposals})
}

func (ct *EmployerController) UpdatePhone(c *gin.Context) {
	var body struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employerID, ok := ct.acting(c)
	if !ok {
		return
	}
	employer, err := ct.employers.UpdatePhone(c.Request.Context(), employerID, body.Phone)
	if err != nil {
		respondError(c, "employer phone update failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": employer})
}

func (ct *EmployerController) UpdatePhoto(c *gin.Context) {
	var body struct {
		PhotoURL string `json:"photo_url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employerID, ok := ct.acting(c)
	if !ok {
		return
	}
	employer, err := ct.employers.UpdatePhoto(c.Request.Context(), employerID, body.PhotoURL)
	if err != nil {
		respondError(c, "employer photo update failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": employer})
}

// AddCredit tops up (or spends) credit by a delta, never an absolute
// overwrite.
func (ct *EmployerController) AddCredit(c *gin.Context) {
	var body struct {
		Delta float64 `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employerID, ok := ct.acting(c)
	if !ok {
		return
	}
	employer, err := ct.employers.AddCredit(c.Request.Context(), employerID, body.Delta)
	if err != nil {
		respondError(c, "employer credit update failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": employer})
}
