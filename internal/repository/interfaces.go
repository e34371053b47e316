package repository

import (
	"time"

	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithAdmin(team *models.Team, adminID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByUserID(userID uuid.UUID) ([]models.Team, error)
	GetScoped(id, userID uuid.UUID) (*models.Team, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	Get(userID, teamID uuid.UUID) (*models.Membership, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Membership, error)
	UpdateRole(userID, teamID uuid.UUID, role models.TeamRole) error
	Delete(userID, teamID uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetScoped(id, userID uuid.UUID) (*models.Task, error)
	List(userID uuid.UUID, filters TaskFilters) ([]models.Task, error)
	Update(task *models.Task) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	GetByTaskID(taskID uuid.UUID) ([]models.Comment, error)
}

// EvaluationRepositoryInterface defines the interface for evaluation repository operations
type EvaluationRepositoryInterface interface {
	Create(evaluation *models.Evaluation) error
	Exists(taskID, evaluatorID uuid.UUID) (bool, error)
	GetByTaskAndEvaluator(taskID, evaluatorID uuid.UUID) (*models.Evaluation, error)
	GetByExecutor(executorID uuid.UUID) ([]models.Evaluation, error)
}

// MeetingRepositoryInterface defines the interface for meeting repository operations
type MeetingRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Meeting, error)
	GetVisible(userID uuid.UUID, filters MeetingFilters) ([]models.Meeting, error)
	GetByParticipantAndDate(userID uuid.UUID, date time.Time) ([]models.Meeting, error)
	Create(meeting *models.Meeting, participants []models.User) error
	Update(meeting *models.Meeting, participants []models.User) error
	Serialized(fn func(txRepo MeetingRepositoryInterface) error) error
}
