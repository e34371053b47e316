package service

import (
	"fmt"
	"strings"
	"time"

	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CommentService handles threaded comments on tasks
type CommentService struct {
	repo        repository.CommentRepositoryInterface
	taskService *TaskService
	validator   *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(
	repo repository.CommentRepositoryInterface,
	taskService *TaskService,
	validator *validator.Validate,
) *CommentService {
	return &CommentService{
		repo:        repo,
		taskService: taskService,
		validator:   validator,
	}
}

// CreateCommentRequest represents the request to comment on a task
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentResponse represents the response for comment operations
type CommentResponse struct {
	ID        uuid.UUID    `json:"id"`
	TaskID    uuid.UUID    `json:"task_id"`
	Author    UserResponse `json:"author"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"created_at"`
}

// List retrieves a task's comments, newest first. Visibility follows the
// task: members of the task's team only.
func (s *CommentService) List(actorID, taskID uuid.UUID) ([]CommentResponse, error) {
	if _, err := s.taskService.getVisible(actorID, taskID); err != nil {
		return nil, err
	}

	comments, err := s.repo.GetByTaskID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, toCommentResponse(&comments[i]))
	}
	return responses, nil
}

// Create adds a comment to a task the actor can see
func (s *CommentService) Create(actorID, taskID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.NewValidationError("text", "text must not be empty")
	}

	if _, err := s.taskService.getVisible(actorID, taskID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		TaskID:   taskID,
		AuthorID: actorID,
		Text:     text,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	created, err := s.repo.GetByID(comment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload comment: %w", err)
	}
	resp := toCommentResponse(created)
	return &resp, nil
}

func toCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Author:    *toUserResponse(&comment.Author),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
