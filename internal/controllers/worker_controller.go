package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigboard/internal/middleware"
	"gigboard/internal/service"
)

type WorkerController struct {
	workers *service.WorkerService
}

func NewWorkerController(workers *service.WorkerService) *WorkerController {
	return &WorkerController{workers: workers}
}

func (ct *WorkerController) acting(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return 0, false
	}
	worker, err := ct.workers.ByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "worker lookup failed", err)
		return 0, false
	}
	return worker.ID, true
}

func (ct *WorkerController) Profile(c *gin.Context) {
	workerID, ok := ct.acting(c)
	if !ok {
		return
	}
	worker, err := ct.workers.Profile(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, "worker profile failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": worker})
}

// GetWorker is the public worker view with work history attached.
func (ct *WorkerController) GetWorker(c *gin.Context) {
	workerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	worker, err := ct.workers.Profile(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, "worker fetch failed", err)
		return
	}
	history, err := ct.workers.History(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, "worker history failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": worker, "previous_works": toJobResponses(history)})
}

func (ct *WorkerController) UpdatePhone(c *gin.Context) {
	var body struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	workerID, ok := ct.acting(c)
	if !ok {
		return
	}
	worker, err := ct.workers.UpdatePhone(c.Request.Context(), workerID, body.Phone)
	if err != nil {
		respondError(c, "worker phone update failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": worker})
}

func (ct *WorkerController) UpdatePhoto(c *gin.Context) {
	var body struct {
		PhotoURL string `json:"photo_url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	workerID, ok := ct.acting(c)
	if !ok {
		return
	}
	worker, err := ct.workers.UpdatePhoto(c.Request.Context(), workerID, body.PhotoURL)
	if err != nil {
		respondError(c, "worker photo update failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": worker})
}

func (ct *WorkerController) UpdateExpertise(c *gin.Context) {
	var body struct {
		Expertise []string `json:"expertise" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	workerID, ok := ct.acting(c)
	if !ok {
		return
	}
	worker, err := ct.workers.UpdateExpertise(c.Request.Context(), workerID, body.Expertise)
	if err != nil {
		respondError(c, "worker expertise update failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": worker})
}
