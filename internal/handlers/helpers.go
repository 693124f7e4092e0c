package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dailydo/internal/models"
	"dailydo/internal/repositories"
	"dailydo/internal/services"
)

// formInt parses a required integer form field.
func formInt(c *gin.Context, name string) (int, bool) {
	v := c.PostForm(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// writeError maps the core error taxonomy onto HTTP responses. Bad arguments
// and bad indexes are the caller's fault; everything else is a server-side
// failure surfaced generically.
func writeError(c *gin.Context, area, op string, err error) {
	log.Printf("[%s][%s][err] %v", area, op, err)
	switch {
	case errors.Is(err, services.ErrIndexOutOfRange),
		errors.Is(err, services.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "todo document unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}
