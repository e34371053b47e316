package service

import (
	"errors"
	"fmt"
	"strings"

	"teamflow-backend/internal/authz"
	"teamflow-backend/internal/config"
	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles team and membership operations
type TeamService struct {
	repo           repository.TeamRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	cfg            *config.Config
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	cfg *config.Config,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:           repo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		cfg:            cfg,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Title string `json:"title" validate:"required"`
}

// ChangeRoleRequest represents the request to change a member's role
type ChangeRoleRequest struct {
	UserID uuid.UUID       `json:"user_id" validate:"required"`
	Role   models.TeamRole `json:"role" validate:"required"`
}

// AddParticipantRequest represents the request to add a team member
type AddParticipantRequest struct {
	UserID uuid.UUID       `json:"user_id" validate:"required"`
	Role   models.TeamRole `json:"role"`
}

// RemoveParticipantRequest represents the request to remove a team member
type RemoveParticipantRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// TeamMemberResponse represents one member of a team with their role
type TeamMemberResponse struct {
	User UserResponse    `json:"user"`
	Role models.TeamRole `json:"role"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID      uuid.UUID            `json:"id"`
	Title   string               `json:"title"`
	Members []TeamMemberResponse `json:"members"`
}

// MyRoleResponse reports the current user's role in a team, null when the
// user is not a member.
type MyRoleResponse struct {
	Role *models.TeamRole `json:"role"`
}

// Create creates a team; the creator becomes its admin in the same
// transaction.
func (s *TeamService) Create(actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title", "title must not be empty")
	}
	if len([]rune(title)) > s.cfg.MaxTeamTitleLength {
		return nil, apperrors.NewValidationError("title",
			fmt.Sprintf("title must not exceed %d characters", s.cfg.MaxTeamTitleLength))
	}

	team := &models.Team{Title: title}
	if err := s.repo.CreateWithAdmin(team, actorID); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toTeamResponse(team)
}

// List retrieves every team the user belongs to
func (s *TeamService) List(actorID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.repo.GetByUserID(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp, err := s.toTeamResponse(&teams[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// Get retrieves a team the user belongs to. Teams the user is not a member
// of surface as not found.
func (s *TeamService) Get(actorID, teamID uuid.UUID) (*TeamResponse, error) {
	team, err := s.getVisible(actorID, teamID)
	if err != nil {
		return nil, err
	}
	return s.toTeamResponse(team)
}

// Members lists a team's members with their roles, visible to members only
func (s *TeamService) Members(actorID, teamID uuid.UUID) ([]TeamMemberResponse, error) {
	if _, err := s.getVisible(actorID, teamID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return toMemberResponses(memberships), nil
}

// MyRole reports the actor's role in a team, null when not a member
func (s *TeamService) MyRole(actorID, teamID uuid.UUID) (*MyRoleResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	membership, err := s.membershipRepo.Get(actorID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &MyRoleResponse{Role: nil}, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	role := membership.Role
	return &MyRoleResponse{Role: &role}, nil
}

// ChangeRole lets a team admin assign manager or participant to another
// member. Admins cannot change their own role, so a team never silently
// loses its last admin.
func (s *TeamService) ChangeRole(actorID, teamID uuid.UUID, req *ChangeRoleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}
	if req.Role != models.TeamRoleManager && req.Role != models.TeamRoleParticipant {
		return apperrors.NewValidationError("role", "role must be manager or participant")
	}

	rel, err := s.relationship(actorID, teamID)
	if err != nil {
		return err
	}
	rel.IsSelf = req.UserID == actorID
	if err := authz.TeamRoleChange(rel); err != nil {
		return err
	}

	target, err := s.membershipRepo.Get(req.UserID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("user_id", "user is not a member of the team")
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if target.Role == req.Role {
		return apperrors.NewValidationError("role", "user already has this role")
	}

	if err := s.membershipRepo.UpdateRole(req.UserID, teamID, req.Role); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

// AddParticipant lets a team admin add an existing user to the team
func (s *TeamService) AddParticipant(actorID, teamID uuid.UUID, req *AddParticipantRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	role := req.Role
	if role == "" {
		role = models.TeamRoleParticipant
	}
	if role != models.TeamRoleManager && role != models.TeamRoleParticipant {
		return apperrors.NewValidationError("role", "role must be manager or participant")
	}

	rel, err := s.relationship(actorID, teamID)
	if err != nil {
		return err
	}
	if err := authz.TeamMembershipChange(rel); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("user_id", "user not found")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if _, err := s.membershipRepo.Get(req.UserID, teamID); err == nil {
		return apperrors.ErrMembershipExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	membership := &models.Membership{
		UserID: req.UserID,
		TeamID: teamID,
		Role:   role,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

// RemoveParticipant lets a team admin remove a member from the team
func (s *TeamService) RemoveParticipant(actorID, teamID uuid.UUID, req *RemoveParticipantRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	rel, err := s.relationship(actorID, teamID)
	if err != nil {
		return err
	}
	if err := authz.TeamMembershipChange(rel); err != nil {
		return err
	}

	if err := s.membershipRepo.Delete(req.UserID, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("user_id", "user is not in the team")
		}
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	return nil
}

// getVisible retrieves a team only when the actor is a member of it
func (s *TeamService) getVisible(actorID, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetScoped(teamID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// relationship resolves the actor's standing in a team. A team the actor
// cannot see at all comes back as not found, never as forbidden.
func (s *TeamService) relationship(actorID, teamID uuid.UUID) (authz.Relationship, error) {
	membership, err := s.membershipRepo.Get(actorID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Relationship{}, apperrors.ErrTeamNotFound
		}
		return authz.Relationship{}, fmt.Errorf("failed to get membership: %w", err)
	}
	return authz.Relationship{Role: membership.Role}, nil
}

func (s *TeamService) toTeamResponse(team *models.Team) (*TeamResponse, error) {
	memberships, err := s.membershipRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return &TeamResponse{
		ID:      team.ID,
		Title:   team.Title,
		Members: toMemberResponses(memberships),
	}, nil
}

func toMemberResponses(memberships []models.Membership) []TeamMemberResponse {
	members := make([]TeamMemberResponse, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, TeamMemberResponse{
			User: *toUserResponse(&m.User),
			Role: m.Role,
		})
	}
	return members
}
