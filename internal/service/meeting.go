package service

import (
	"errors"
	"fmt"
	"time"

	"teamflow-backend/internal/authz"
	"teamflow-backend/internal/config"
	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingService handles meeting scheduling with conflict detection. The
// conflict check and the subsequent insert run inside one serializable
// transaction so two concurrent bookings cannot both pass the check.
type MeetingService struct {
	repo           repository.MeetingRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	cfg            *config.Config
	validator      *validator.Validate
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	repo repository.MeetingRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	cfg *config.Config,
	validator *validator.Validate,
) *MeetingService {
	return &MeetingService{
		repo:           repo,
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		cfg:            cfg,
		validator:      validator,
	}
}

// CreateMeetingRequest represents the request to schedule a meeting. The
// team is always supplied explicitly; it is never inferred from the
// organizer's memberships.
type CreateMeetingRequest struct {
	TeamID          *uuid.UUID  `json:"team_id"`
	Date            string      `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string      `json:"start_time" validate:"required"`
	DurationMinutes int         `json:"duration_minutes" validate:"required"`
	ParticipantIDs  []uuid.UUID `json:"participants"`
}

// UpdateMeetingRequest represents a partial meeting update. Nil fields are
// left unchanged; the team of a meeting cannot change.
type UpdateMeetingRequest struct {
	Date            *string      `json:"date"`
	StartTime       *string      `json:"start_time"`
	DurationMinutes *int         `json:"duration_minutes"`
	ParticipantIDs  *[]uuid.UUID `json:"participants"`
}

// MeetingResponse represents the response for meeting operations
type MeetingResponse struct {
	ID              uuid.UUID      `json:"id"`
	TeamID          uuid.UUID      `json:"team_id"`
	Author          UserResponse   `json:"author"`
	Date            string         `json:"date"`
	StartTime       string         `json:"start_time"`
	DurationMinutes int            `json:"duration_minutes"`
	Participants    []UserResponse `json:"participants"`
}

// List retrieves meetings in which the actor appears as organizer or
// participant, with optional team and date filters.
func (s *MeetingService) List(actorID uuid.UUID, filters repository.MeetingFilters) ([]MeetingResponse, error) {
	meetings, err := s.repo.GetVisible(actorID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	responses := make([]MeetingResponse, 0, len(meetings))
	for i := range meetings {
		responses = append(responses, toMeetingResponse(&meetings[i]))
	}
	return responses, nil
}

// Get retrieves a single meeting. Meetings the actor neither organizes nor
// attends surface as not found.
func (s *MeetingService) Get(actorID, meetingID uuid.UUID) (*MeetingResponse, error) {
	meeting, err := s.getVisible(actorID, meetingID)
	if err != nil {
		return nil, err
	}
	resp := toMeetingResponse(meeting)
	return &resp, nil
}

// Create schedules a meeting. The organizer must be a manager or admin of
// the explicitly supplied team, every participant must be a member of that
// team, and the organizer is always included in the participant set. The
// proposed interval must not overlap any existing meeting of any
// participant on that date.
func (s *MeetingService) Create(actorID uuid.UUID, req *CreateMeetingRequest) (*MeetingResponse, error) {
	if req.TeamID == nil {
		return nil, apperrors.ErrTeamRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	date, interval, err := s.parseSchedule(req.Date, req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	rel, err := s.teamRelationship(actorID, *req.TeamID)
	if err != nil {
		return nil, err
	}
	if err := authz.MeetingCreate(rel); err != nil {
		return nil, err
	}

	participants, err := s.resolveParticipants(actorID, *req.TeamID, req.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		TeamID:          *req.TeamID,
		AuthorID:        actorID,
		Date:            date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	}

	err = s.repo.Serialized(func(txRepo repository.MeetingRepositoryInterface) error {
		if err := s.checkConflicts(txRepo, interval, date, participants, uuid.Nil); err != nil {
			return err
		}
		return txRepo.Create(meeting, participants)
	})
	if err != nil {
		if apperrors.IsScheduleConflict(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	created, err := s.repo.GetByID(meeting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	resp := toMeetingResponse(created)
	return &resp, nil
}

// Update reschedules a meeting or changes its participant set. The
// organizer and listed participants may update; conflicts are re-checked
// against the new schedule, excluding the meeting itself.
func (s *MeetingService) Update(actorID, meetingID uuid.UUID, req *UpdateMeetingRequest) (*MeetingResponse, error) {
	meeting, err := s.getVisible(actorID, meetingID)
	if err != nil {
		return nil, err
	}

	rel := s.meetingRelationship(actorID, meeting)
	if err := authz.MeetingUpdate(rel); err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "date must be in YYYY-MM-DD format")
		}
		meeting.Date = date
	}
	if req.StartTime != nil {
		meeting.StartTime = *req.StartTime
	}
	if req.DurationMinutes != nil {
		meeting.DurationMinutes = *req.DurationMinutes
	}

	date, interval, err := s.parseSchedule(
		meeting.Date.Format(dateLayout), meeting.StartTime, meeting.DurationMinutes)
	if err != nil {
		return nil, err
	}
	meeting.Date = date

	participantIDs := make([]uuid.UUID, 0, len(meeting.Participants))
	for _, p := range meeting.Participants {
		participantIDs = append(participantIDs, p.ID)
	}
	if req.ParticipantIDs != nil {
		participantIDs = *req.ParticipantIDs
	}

	// The organizer stays in the participant set even when the update is
	// made by another participant.
	participants, err := s.resolveParticipants(meeting.AuthorID, meeting.TeamID, participantIDs)
	if err != nil {
		return nil, err
	}

	err = s.repo.Serialized(func(txRepo repository.MeetingRepositoryInterface) error {
		if err := s.checkConflicts(txRepo, interval, date, participants, meeting.ID); err != nil {
			return err
		}
		return txRepo.Update(meeting, participants)
	})
	if err != nil {
		if apperrors.IsScheduleConflict(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	updated, err := s.repo.GetByID(meeting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	resp := toMeetingResponse(updated)
	return &resp, nil
}

// parseSchedule validates the date, start time and duration of a proposed
// meeting and returns its half-open interval.
func (s *MeetingService) parseSchedule(dateStr, startTime string, durationMinutes int) (time.Time, scheduling.Interval, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, scheduling.Interval{}, apperrors.NewValidationError("date", "date must be in YYYY-MM-DD format")
	}

	if durationMinutes < s.cfg.MinMeetingDuration || durationMinutes > s.cfg.MaxMeetingDuration {
		return time.Time{}, scheduling.Interval{}, apperrors.NewValidationError("duration_minutes",
			fmt.Sprintf("duration must be between %d and %d minutes", s.cfg.MinMeetingDuration, s.cfg.MaxMeetingDuration))
	}

	interval, err := scheduling.NewInterval(date, startTime, durationMinutes)
	if err != nil {
		return time.Time{}, scheduling.Interval{}, apperrors.NewValidationError("start_time", "start time must be in HH:MM format")
	}
	return date, interval, nil
}

// resolveParticipants loads the participant users, verifies each one is a
// member of the team, and ensures the organizer is in the set.
func (s *MeetingService) resolveParticipants(organizerID, teamID uuid.UUID, participantIDs []uuid.UUID) ([]models.User, error) {
	ids := make([]uuid.UUID, 0, len(participantIDs)+1)
	seen := map[uuid.UUID]bool{}
	for _, id := range append([]uuid.UUID{organizerID}, participantIDs...) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	if len(users) != len(ids) {
		return nil, apperrors.NewValidationError("participants", "participant not found")
	}

	for _, user := range users {
		if _, err := s.membershipRepo.Get(user.ID, teamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrParticipantNotMember
			}
			return nil, fmt.Errorf("failed to check participant membership: %w", err)
		}
	}
	return users, nil
}

// checkConflicts reads every participant's calendar for the date and fails
// on the first overlapping meeting. It must run inside the same transaction
// as the write that follows it.
func (s *MeetingService) checkConflicts(
	txRepo repository.MeetingRepositoryInterface,
	interval scheduling.Interval,
	date time.Time,
	participants []models.User,
	excludeID uuid.UUID,
) error {
	existing := make(map[uuid.UUID][]models.Meeting, len(participants))
	for _, participant := range participants {
		meetings, err := txRepo.GetByParticipantAndDate(participant.ID, date)
		if err != nil {
			return fmt.Errorf("failed to load calendar of %s: %w", participant.Username, err)
		}
		existing[participant.ID] = meetings
	}

	conflict, err := scheduling.FindConflict(interval, participants, existing, excludeID)
	if err != nil {
		return err
	}
	if conflict != nil {
		return &apperrors.ScheduleConflictError{
			ParticipantUsername: conflict.ParticipantUsername,
			ConflictStart:       conflict.Start,
			ConflictEnd:         conflict.End,
		}
	}
	return nil
}

// getVisible retrieves a meeting only when the actor organizes or attends
// it. Anything else surfaces as not found.
func (s *MeetingService) getVisible(actorID, meetingID uuid.UUID) (*models.Meeting, error) {
	meeting, err := s.repo.GetByID(meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	if err := authz.MeetingView(s.meetingRelationship(actorID, meeting)); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *MeetingService) meetingRelationship(actorID uuid.UUID, meeting *models.Meeting) authz.Relationship {
	rel := authz.Relationship{IsAuthor: meeting.AuthorID == actorID}
	for _, p := range meeting.Participants {
		if p.ID == actorID {
			rel.IsParticipant = true
			break
		}
	}
	return rel
}

// teamRelationship resolves the actor's standing in a team. Unknown teams
// come back as not found; existing teams the actor is outside of come back
// with an empty role.
func (s *MeetingService) teamRelationship(actorID, teamID uuid.UUID) (authz.Relationship, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Relationship{}, apperrors.ErrTeamNotFound
		}
		return authz.Relationship{}, fmt.Errorf("failed to get team: %w", err)
	}

	membership, err := s.membershipRepo.Get(actorID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Relationship{}, nil
		}
		return authz.Relationship{}, fmt.Errorf("failed to get membership: %w", err)
	}
	return authz.Relationship{Role: membership.Role}, nil
}

func toMeetingResponse(meeting *models.Meeting) MeetingResponse {
	participants := make([]UserResponse, 0, len(meeting.Participants))
	for i := range meeting.Participants {
		participants = append(participants, *toUserResponse(&meeting.Participants[i]))
	}
	return MeetingResponse{
		ID:              meeting.ID,
		TeamID:          meeting.TeamID,
		Author:          *toUserResponse(&meeting.Author),
		Date:            meeting.Date.Format(dateLayout),
		StartTime:       meeting.StartTime,
		DurationMinutes: meeting.DurationMinutes,
		Participants:    participants,
	}
}
