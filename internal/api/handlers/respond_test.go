package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "teamflow-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func recordError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w
}

func TestRespondErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.NewValidationError("title", "title must not be empty"), http.StatusBadRequest},
		{"already exists", apperrors.ErrMembershipExists, http.StatusBadRequest},
		{"invalid transition", apperrors.ErrInvalidStatusTransition, http.StatusBadRequest},
		{"authentication", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"authorization", apperrors.ErrAdminOnly, http.StatusForbidden},
		{"not found", apperrors.ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("ctx: %w", apperrors.ErrTeamNotFound), http.StatusNotFound},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := recordError(tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRespondErrorHidesInternals(t *testing.T) {
	w := recordError(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRespondErrorScheduleConflict(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	w := recordError(&apperrors.ScheduleConflictError{
		ParticipantUsername: "bob",
		ConflictStart:       start,
		ConflictEnd:         start.Add(time.Hour),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"participant":"bob"`)
	assert.Contains(t, w.Body.String(), `"conflict_start":"10:00"`)
	assert.Contains(t, w.Body.String(), `"conflict_end":"11:00"`)
}

func TestMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	MethodNotAllowed(c)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
