package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gigboard/internal/service"
)

// parseID turns a path parameter into a record id; anything that is
// not a positive integer is a malformed id.
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return uint(id), true
}

// splitCSV parses a comma-separated query value, dropping empties.
func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// respondError maps domain errors to HTTP statuses. Unexpected
// failures are logged with their cause and surfaced as a generic 500.
func respondError(c *gin.Context, op string, err error) {
	var fieldErrs service.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrs.Error(), "fields": fieldErrs})
		return
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrEmployerNotFound),
		errors.Is(err, service.ErrWorkerNotFound),
		errors.Is(err, service.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrJobNotOpen),
		errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrAlreadyAwarded),
		errors.Is(err, service.ErrNotApplied),
		errors.Is(err, service.ErrInsufficientCredit):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error(op)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
