package handler

import (
	"errors"
	"net/http"

	"planner/internal/repository"

	"github.com/gin-gonic/gin"
)

// respondError maps repository errors onto HTTP responses. Unknown errors are
// attached to the context so the request logger records them.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrEmptyTitle),
		errors.Is(err, repository.ErrEmptyDate),
		errors.Is(err, repository.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrTaskNotFound),
		errors.Is(err, repository.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNothingToUndo),
		errors.Is(err, repository.ErrTaskExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save changes"})
	}
}
