package handlers

import (
	"errors"
	"log"
	"net/http"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/services"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the session user loaded by middleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(middleware.CurrentUserKey); exists {
		return u.(*models.User)
	}
	return nil
}

func jsonError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// serviceError maps service-layer sentinels onto the HTTP error taxonomy.
// Unrecognized errors are logged and surfaced as a generic 500 so store
// internals never leak to clients.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		jsonError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		jsonError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrThreadLocked):
		jsonError(c, http.StatusForbidden, "Thread is locked")
	case errors.Is(err, services.ErrInvalidTarget),
		errors.Is(err, services.ErrInvalidVote),
		errors.Is(err, services.ErrInvalidReaction),
		errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrParentMismatch),
		errors.Is(err, services.ErrQuoteMismatch),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrSelfDemotion):
		jsonError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		jsonError(c, http.StatusInternalServerError, "Internal server error")
	}
}
