package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"teamflow-backend/internal/authz"
	"teamflow-backend/internal/config"
	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// TaskService handles task lifecycle and evaluation operations
type TaskService struct {
	repo           repository.TaskRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	evaluationRepo repository.EvaluationRepositoryInterface
	cfg            *config.Config
	validator      *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(
	repo repository.TaskRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	evaluationRepo repository.EvaluationRepositoryInterface,
	cfg *config.Config,
	validator *validator.Validate,
) *TaskService {
	return &TaskService{
		repo:           repo,
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		evaluationRepo: evaluationRepo,
		cfg:            cfg,
		validator:      validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	TeamID      uuid.UUID `json:"team_id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline" validate:"required,datetime=2006-01-02"`
	ExecutorID  uuid.UUID `json:"executor_id" validate:"required"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are left
// unchanged.
type UpdateTaskRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Deadline    *string            `json:"deadline"`
	ExecutorID  *uuid.UUID         `json:"executor_id"`
	Status      *models.TaskStatus `json:"status"`
}

// UpdateTaskStatusRequest represents a status-only update
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" validate:"required"`
}

// EvaluateTaskRequest represents the request to rate a completed task
type EvaluateTaskRequest struct {
	Rating int `json:"rating" validate:"required"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	TeamID      uuid.UUID         `json:"team_id"`
	Author      UserResponse      `json:"author"`
	Executor    UserResponse      `json:"executor"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Deadline    string            `json:"deadline"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// EvaluationResponse represents a single evaluation
type EvaluationResponse struct {
	ID        uuid.UUID    `json:"id"`
	TaskID    uuid.UUID    `json:"task_id"`
	TaskTitle string       `json:"task_title"`
	Evaluator UserResponse `json:"evaluator"`
	Rating    int          `json:"rating"`
	CreatedAt time.Time    `json:"created_at"`
}

// ExecutorEvaluationsResponse aggregates the ratings a user has received as
// executor. AverageRating is null when there are no evaluations yet.
type ExecutorEvaluationsResponse struct {
	AverageRating    *float64             `json:"average_rating"`
	TotalEvaluations int                  `json:"total_evaluations"`
	Evaluations      []EvaluationResponse `json:"evaluations"`
}

// Create creates a task in the given team. Only managers and admins of the
// team may create tasks; the executor must be a member and must not be the
// author.
func (s *TaskService) Create(actorID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title", "title must not be empty")
	}
	if len([]rune(title)) > s.cfg.MaxTaskTitleLength {
		return nil, apperrors.NewValidationError("title",
			fmt.Sprintf("title must not exceed %d characters", s.cfg.MaxTaskTitleLength))
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		return nil, apperrors.NewValidationError("deadline", "deadline must be a date in YYYY-MM-DD format")
	}

	rel, err := s.teamRelationship(actorID, req.TeamID)
	if err != nil {
		return nil, err
	}
	if err := authz.TaskCreate(rel); err != nil {
		return nil, err
	}

	if req.ExecutorID == actorID {
		return nil, apperrors.ErrSelfExecutor
	}
	if _, err := s.membershipRepo.Get(req.ExecutorID, req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExecutorNotMember
		}
		return nil, fmt.Errorf("failed to check executor membership: %w", err)
	}

	task := &models.Task{
		TeamID:      req.TeamID,
		AuthorID:    actorID,
		ExecutorID:  req.ExecutorID,
		Title:       title,
		Description: req.Description,
		Deadline:    deadline,
		Status:      models.TaskStatusOpen,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	created, err := s.repo.GetByID(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return toTaskResponse(created), nil
}

// List retrieves tasks in the actor's teams with optional filters
func (s *TaskService) List(actorID uuid.UUID, filters repository.TaskFilters) ([]TaskResponse, error) {
	if filters.Status != "" && !filters.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "status must be open, progress or completed")
	}

	tasks, err := s.repo.List(actorID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, *toTaskResponse(&tasks[i]))
	}
	return responses, nil
}

// Get retrieves a task visible to the actor
func (s *TaskService) Get(actorID, taskID uuid.UUID) (*TaskResponse, error) {
	task, err := s.getVisible(actorID, taskID)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Update applies a partial update. The author may change any field; the
// executor may only move the status from open to progress; other members
// are denied.
func (s *TaskService) Update(actorID, taskID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	task, err := s.getVisible(actorID, taskID)
	if err != nil {
		return nil, err
	}

	rel := authz.Relationship{
		IsAuthor:   task.AuthorID == actorID,
		IsExecutor: task.ExecutorID == actorID,
	}

	switch authz.TaskUpdate(rel) {
	case authz.TaskUpdateFull:
		if err := s.applyFullUpdate(task, req); err != nil {
			return nil, err
		}
	case authz.TaskUpdateStatusOnly:
		if req.Status == nil {
			return nil, apperrors.NewValidationError("status", "status is required")
		}
		if err := applyExecutorTransition(task, *req.Status); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.NewAuthorizationError("only the task author or executor may update this task")
	}

	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.repo.GetByID(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return toTaskResponse(updated), nil
}

// UpdateStatus changes only the task status under the same rules as Update
func (s *TaskService) UpdateStatus(actorID, taskID uuid.UUID, req *UpdateTaskStatusRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	status := req.Status
	return s.Update(actorID, taskID, &UpdateTaskRequest{Status: &status})
}

// Evaluate records the author's rating of a completed task. Each author may
// rate a given task once.
func (s *TaskService) Evaluate(actorID, taskID uuid.UUID, req *EvaluateTaskRequest) (*EvaluationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Rating < s.cfg.MinRating || req.Rating > s.cfg.MaxRating {
		return nil, apperrors.NewValidationError("rating",
			fmt.Sprintf("rating must be between %d and %d", s.cfg.MinRating, s.cfg.MaxRating))
	}

	task, err := s.getVisible(actorID, taskID)
	if err != nil {
		return nil, err
	}

	rel := authz.Relationship{IsAuthor: task.AuthorID == actorID}
	if err := authz.Evaluate(rel); err != nil {
		return nil, err
	}

	if task.Status != models.TaskStatusCompleted {
		return nil, apperrors.ErrTaskNotCompleted
	}

	exists, err := s.evaluationRepo.Exists(taskID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check evaluation: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyRated
	}

	evaluation := &models.Evaluation{
		TaskID:      taskID,
		EvaluatorID: actorID,
		Rating:      req.Rating,
	}
	if err := s.evaluationRepo.Create(evaluation); err != nil {
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}

	created, err := s.evaluationRepo.GetByTaskAndEvaluator(taskID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload evaluation: %w", err)
	}
	created.Task = *task
	resp := toEvaluationResponse(created)
	return &resp, nil
}

// ExecutorEvaluations aggregates every rating the actor has received as a
// task executor, across all teams.
func (s *TaskService) ExecutorEvaluations(actorID uuid.UUID) (*ExecutorEvaluationsResponse, error) {
	evaluations, err := s.evaluationRepo.GetByExecutor(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	responses := make([]EvaluationResponse, 0, len(evaluations))
	sum := 0
	for i := range evaluations {
		responses = append(responses, toEvaluationResponse(&evaluations[i]))
		sum += evaluations[i].Rating
	}

	result := &ExecutorEvaluationsResponse{
		TotalEvaluations: len(responses),
		Evaluations:      responses,
	}
	if len(responses) > 0 {
		avg := math.Round(float64(sum)/float64(len(responses))*100) / 100
		result.AverageRating = &avg
	}
	return result, nil
}

// applyFullUpdate applies an author's update to every supplied field
func (s *TaskService) applyFullUpdate(task *models.Task, req *UpdateTaskRequest) error {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return apperrors.NewValidationError("title", "title must not be empty")
		}
		if len([]rune(title)) > s.cfg.MaxTaskTitleLength {
			return apperrors.NewValidationError("title",
				fmt.Sprintf("title must not exceed %d characters", s.cfg.MaxTaskTitleLength))
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			return apperrors.NewValidationError("deadline", "deadline must be a date in YYYY-MM-DD format")
		}
		task.Deadline = deadline
	}
	if req.ExecutorID != nil {
		if *req.ExecutorID == task.AuthorID {
			return apperrors.ErrSelfExecutor
		}
		if _, err := s.membershipRepo.Get(*req.ExecutorID, task.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrExecutorNotMember
			}
			return fmt.Errorf("failed to check executor membership: %w", err)
		}
		task.ExecutorID = *req.ExecutorID
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return apperrors.NewValidationError("status", "status must be open, progress or completed")
		}
		task.Status = *req.Status
	}
	return nil
}

// applyExecutorTransition enforces the single transition an executor gets
func applyExecutorTransition(task *models.Task, status models.TaskStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("status", "status must be open, progress or completed")
	}
	if !models.ExecutorCanTransition(task.Status, status) {
		return apperrors.ErrInvalidStatusTransition
	}
	task.Status = status
	return nil
}

// getVisible retrieves a task only when the actor belongs to its team
func (s *TaskService) getVisible(actorID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.repo.GetScoped(taskID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// teamRelationship resolves the actor's standing in a team. Unknown teams
// come back as not found; existing teams the actor is outside of come back
// with an empty role so the authorization rules can deny explicitly.
func (s *TaskService) teamRelationship(actorID, teamID uuid.UUID) (authz.Relationship, error) {
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

func toTaskResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		TeamID:      task.TeamID,
		Author:      *toUserResponse(&task.Author),
		Executor:    *toUserResponse(&task.Executor),
		Title:       task.Title,
		Description: task.Description,
		Deadline:    task.Deadline.Format(dateLayout),
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
	}
}

func toEvaluationResponse(evaluation *models.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:        evaluation.ID,
		TaskID:    evaluation.TaskID,
		TaskTitle: evaluation.Task.Title,
		Evaluator: *toUserResponse(&evaluation.Evaluator),
		Rating:    evaluation.Rating,
		CreatedAt: evaluation.CreatedAt,
	}
}
