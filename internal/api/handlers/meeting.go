package handlers

import (
	"net/http"
	"time"

	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeetingHandler handles HTTP requests for meeting operations
type MeetingHandler struct {
	meetingService service.MeetingServiceInterface
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService service.MeetingServiceInterface) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// ListMeetings handles GET /meetings
// @Summary List my meetings
// @Description Get meetings the authenticated user organizes or attends, with optional team and date filters
// @Tags meetings
// @Produce json
// @Param team query string false "Team ID (UUID)"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} service.MeetingResponse "Meetings"
// @Failure 400 {object} map[string]interface{} "Invalid filters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filters repository.MeetingFilters
	if value := c.Query("team"); value != "" {
		teamID, err := uuid.Parse(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
			return
		}
		filters.TeamID = &teamID
	}
	if value := c.Query("date"); value != "" {
		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
			return
		}
		filters.Date = &date
	}

	meetings, err := h.meetingService.List(userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// GetMeeting handles GET /meetings/:id
// @Summary Get meeting by ID
// @Description Get a meeting the authenticated user organizes or attends
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} service.MeetingResponse "Meeting"
// @Failure 400 {object} map[string]interface{} "Invalid meeting ID"
// @Failure 404 {object} map[string]interface{} "Meeting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	meetingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	meeting, err := h.meetingService.Get(userID, meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// CreateMeeting handles POST /meetings
// @Summary Schedule a meeting
// @Description Schedule a meeting in an explicitly supplied team. Fails when any participant already has an overlapping meeting that day.
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body service.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} service.MeetingResponse "Meeting scheduled"
// @Failure 400 {object} map[string]interface{} "Invalid request or schedule conflict"
// @Failure 403 {object} map[string]interface{} "Not a manager or admin of the team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.meetingService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// UpdateMeeting handles PUT /meetings/:id
// @Summary Reschedule a meeting
// @Description Change a meeting's schedule or participants; organizer and participants only. Conflicts are re-checked against the new schedule.
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param meeting body service.UpdateMeetingRequest true "Fields to update"
// @Success 200 {object} service.MeetingResponse "Updated meeting"
// @Failure 400 {object} map[string]interface{} "Invalid request or schedule conflict"
// @Failure 403 {object} map[string]interface{} "Neither organizer nor participant"
// @Failure 404 {object} map[string]interface{} "Meeting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [put]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	meetingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.meetingService.Update(userID, meetingID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}
