package handlers

import (
	"errors"
	"net/http"

	"teamflow-backend/internal/auth"
	apperrors "teamflow-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps a service error onto one of the four outcome classes:
// validation failures (including schedule conflicts) are 400, authentication
// failures 401, denials 403, invisible or missing objects 404. Anything
// unclassified is a 500.
func respondError(c *gin.Context, err error) {
	var conflictErr *apperrors.ScheduleConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          conflictErr.Error(),
			"participant":    conflictErr.ParticipantUsername,
			"conflict_start": conflictErr.ConflictStart.Format("15:04"),
			"conflict_end":   conflictErr.ConflictEnd.Format("15:04"),
		})
		return
	}

	switch {
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// currentUserID extracts the authenticated user's ID set by the auth
// middleware. A missing ID means the route was wired without RequireAuth.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a UUID path parameter
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// MethodNotAllowed rejects operations the API deliberately does not offer,
// such as editing or deleting a team and deleting a task.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
}
