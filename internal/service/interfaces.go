package service

import (
	"teamflow-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*UserResponse, error)
	Login(req *LoginRequest) (*TokenResponse, error)
	GetMe(userID uuid.UUID) (*UserResponse, error)
	ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error
}

// TeamServiceInterface defines the interface for team service operations
type TeamServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	List(actorID uuid.UUID) ([]TeamResponse, error)
	Get(actorID, teamID uuid.UUID) (*TeamResponse, error)
	Members(actorID, teamID uuid.UUID) ([]TeamMemberResponse, error)
	MyRole(actorID, teamID uuid.UUID) (*MyRoleResponse, error)
	ChangeRole(actorID, teamID uuid.UUID, req *ChangeRoleRequest) error
	AddParticipant(actorID, teamID uuid.UUID, req *AddParticipantRequest) error
	RemoveParticipant(actorID, teamID uuid.UUID, req *RemoveParticipantRequest) error
}

// TaskServiceInterface defines the interface for task service operations
type TaskServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error)
	List(actorID uuid.UUID, filters repository.TaskFilters) ([]TaskResponse, error)
	Get(actorID, taskID uuid.UUID) (*TaskResponse, error)
	Update(actorID, taskID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	UpdateStatus(actorID, taskID uuid.UUID, req *UpdateTaskStatusRequest) (*TaskResponse, error)
	Evaluate(actorID, taskID uuid.UUID, req *EvaluateTaskRequest) (*EvaluationResponse, error)
	ExecutorEvaluations(actorID uuid.UUID) (*ExecutorEvaluationsResponse, error)
}

// CommentServiceInterface defines the interface for comment service operations
type CommentServiceInterface interface {
	List(actorID, taskID uuid.UUID) ([]CommentResponse, error)
	Create(actorID, taskID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error)
}

// MeetingServiceInterface defines the interface for meeting service operations
type MeetingServiceInterface interface {
	List(actorID uuid.UUID, filters repository.MeetingFilters) ([]MeetingResponse, error)
	Get(actorID, meetingID uuid.UUID) (*MeetingResponse, error)
	Create(actorID uuid.UUID, req *CreateMeetingRequest) (*MeetingResponse, error)
	Update(actorID, meetingID uuid.UUID, req *UpdateMeetingRequest) (*MeetingResponse, error)
}
