package testutils

import (
	"fmt"
	"time"

	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     fmt.Sprintf("user-%s", id.String()[:8]),
		Email:        fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$2a$10$test.hash.not.a.real.one",
	}
}

// WithUsername sets a custom username and matching email
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@example.com"
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title: fmt.Sprintf("Team %s", id.String()[:8]),
	}
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a membership linking a user to a team with a role
func (f *MembershipFactory) Create(userID, teamID uuid.UUID, role models.TeamRole) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID: userID,
		TeamID: teamID,
		Role:   role,
	}
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task in the given team
func (f *TaskFactory) Create(teamID, authorID, executorID uuid.UUID) *models.Task {
	id := uuid.New()
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      teamID,
		AuthorID:    authorID,
		ExecutorID:  executorID,
		Title:       fmt.Sprintf("Task %s", id.String()[:8]),
		Description: "A test task",
		Deadline:    time.Now().AddDate(0, 0, 7),
		Status:      models.TaskStatusOpen,
	}
}

// WithStatus sets a custom status
func (f *TaskFactory) WithStatus(teamID, authorID, executorID uuid.UUID, status models.TaskStatus) *models.Task {
	task := f.Create(teamID, authorID, executorID)
	task.Status = status
	return task
}

// MeetingFactory provides methods to create test Meeting data
type MeetingFactory struct{}

// NewMeetingFactory creates a new MeetingFactory
func NewMeetingFactory() *MeetingFactory {
	return &MeetingFactory{}
}

// Create creates a test Meeting on the given date and time
func (f *MeetingFactory) Create(teamID, authorID uuid.UUID, date time.Time, startTime string, durationMinutes int) *models.Meeting {
	return &models.Meeting{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:          teamID,
		AuthorID:        authorID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
	}
}
