package repository

import (
	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskFilters narrows task listing. All fields are optional.
type TaskFilters struct {
	TeamID     *uuid.UUID
	AuthorID   *uuid.UUID
	ExecutorID *uuid.UUID
	Status     models.TaskStatus
	Search     string // matches title or description
}

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID with author, executor and team
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("Author").Preload("Executor").Preload("Team").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetScoped retrieves a task only if the user is a member of its team.
// Tasks in other teams surface as ErrRecordNotFound.
func (r *TaskRepository) GetScoped(id, userID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("Author").Preload("Executor").Preload("Team").
		Joins("JOIN memberships ON memberships.team_id = tasks.team_id").
		Where("tasks.id = ? AND memberships.user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks visible to the user, i.e. tasks of teams the user
// belongs to, with optional filters.
func (r *TaskRepository) List(userID uuid.UUID, filters TaskFilters) ([]models.Task, error) {
	query := r.db.Preload("Author").Preload("Executor").Preload("Team").
		Joins("JOIN memberships ON memberships.team_id = tasks.team_id").
		Where("memberships.user_id = ?", userID)

	if filters.TeamID != nil {
		query = query.Where("tasks.team_id = ?", *filters.TeamID)
	}
	if filters.AuthorID != nil {
		query = query.Where("tasks.author_id = ?", *filters.AuthorID)
	}
	if filters.ExecutorID != nil {
		query = query.Where("tasks.executor_id = ?", *filters.ExecutorID)
	}
	if filters.Status != "" {
		query = query.Where("tasks.status = ?", filters.Status)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("tasks.title ILIKE ? OR tasks.description ILIKE ?", pattern, pattern)
	}

	var tasks []models.Task
	err := query.Order("tasks.deadline ASC, tasks.created_at DESC").Find(&tasks).Error
	return tasks, err
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}
