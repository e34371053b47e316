package errors

import (
	"errors"
	"fmt"
	"time"
)

// NotFoundError represents an error when an entity is not found. It is also
// returned when the actor has no visibility into the entity at all, so a
// caller cannot distinguish "does not exist" from "belongs to another team".
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ScheduleConflictError reports the first meeting that overlaps a proposed
// one for some participant. It carries enough structure for the API layer
// to render a precise message; it is a validation failure, not a denial.
type ScheduleConflictError struct {
	ParticipantUsername string
	ConflictStart       time.Time
	ConflictEnd         time.Time
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("meeting overlaps an existing meeting of %s (%s - %s)",
		e.ParticipantUsername,
		e.ConflictStart.Format("15:04"),
		e.ConflictEnd.Format("15:04"),
	)
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrMembershipNotFound = &NotFoundError{Entity: "membership"}
	ErrTaskNotFound       = &NotFoundError{Entity: "task"}
	ErrCommentNotFound    = &NotFoundError{Entity: "comment"}
	ErrMeetingNotFound    = &NotFoundError{Entity: "meeting"}
)

// Already Exists Errors
var (
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email or username"}
	ErrMembershipExists = &AlreadyExistsError{Entity: "membership", Context: "for this user in the team"}
	ErrEvaluationExists = &AlreadyExistsError{Entity: "evaluation", Context: "for this task by this evaluator"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = &ValidationError{Field: "status", Message: "executor may only move a task from open to progress"}
	ErrTaskNotCompleted        = &ValidationError{Field: "rating", Message: "cannot evaluate an unfinished task"}
	ErrAlreadyRated            = &ValidationError{Field: "rating", Message: "already rated"}
	ErrSelfRoleChange          = &ValidationError{Field: "user_id", Message: "cannot change your own role"}
	ErrSelfExecutor            = &ValidationError{Field: "executor_id", Message: "author cannot assign self as executor"}
	ErrExecutorNotMember       = &ValidationError{Field: "executor_id", Message: "executor is not a member of the team"}
	ErrParticipantNotMember    = &ValidationError{Field: "participants", Message: "participant is not a member of the team"}
	ErrTeamRequired            = &ValidationError{Field: "team_id", Message: "team must be supplied explicitly"}
)

// Authorization Errors
var (
	ErrNotTeamMember  = &AuthorizationError{Message: "you are not a member of this team"}
	ErrNotTaskAuthor  = &AuthorizationError{Message: "only the task author may do this"}
	ErrRoleForbidden  = &AuthorizationError{Message: "your role does not permit this action"}
	ErrAdminOnly      = &AuthorizationError{Message: "only a team admin may do this"}
	ErrNotParticipant = &AuthorizationError{Message: "you are neither organizer nor participant of this meeting"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrWrongPassword      = &AuthenticationError{Message: "current password is incorrect"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsScheduleConflict checks if an error is a ScheduleConflictError
func IsScheduleConflict(err error) bool {
	var conflictErr *ScheduleConflictError
	return errors.As(err, &conflictErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
