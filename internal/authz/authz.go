// Package authz evaluates whether an actor may perform an action on an
// object, given membership and ownership facts. Every rule lives here as an
// explicit decision, not scattered through handlers, so the whole matrix is
// testable in isolation.
//
// Read visibility is not decided here: list and retrieve queries are
// pre-scoped by membership in the repositories, so an actor outside a team
// gets "not found" rather than "forbidden" and cannot probe for the
// existence of other teams' objects.
package authz

import (
	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
)

// Relationship captures everything the engine needs to know about the actor
// relative to the object being acted on.
type Relationship struct {
	// Role is the actor's role in the relevant team; empty when the actor
	// is not a member at all.
	Role models.TeamRole

	IsAuthor      bool // actor authored the task / organized the meeting
	IsExecutor    bool // actor is the task's executor
	IsParticipant bool // actor is in the meeting's participant set
	IsSelf        bool // the action targets the actor's own membership
}

// IsMember reports whether the actor belongs to the team at all.
func (r Relationship) IsMember() bool {
	return r.Role.IsValid()
}

// TaskUpdateScope is the outcome of the task-update rule. The author may
// change any field; the executor gets exactly one status transition
// (open -> progress, enforced by the caller against the value domain);
// everyone else is denied.
type TaskUpdateScope int

const (
	TaskUpdateDenied TaskUpdateScope = iota
	TaskUpdateStatusOnly
	TaskUpdateFull
)

// TeamView allows any member of the team.
func TeamView(rel Relationship) error {
	if !rel.IsMember() {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// TeamRoleChange allows an admin to change another member's role, never
// their own.
func TeamRoleChange(rel Relationship) error {
	if rel.Role != models.TeamRoleAdmin {
		return apperrors.ErrAdminOnly
	}
	if rel.IsSelf {
		return apperrors.ErrSelfRoleChange
	}
	return nil
}

// TeamMembershipChange gates adding and removing participants.
func TeamMembershipChange(rel Relationship) error {
	if rel.Role != models.TeamRoleAdmin {
		return apperrors.ErrAdminOnly
	}
	return nil
}

// TaskCreate allows team managers and admins.
func TaskCreate(rel Relationship) error {
	if !rel.IsMember() {
		return apperrors.ErrNotTeamMember
	}
	if !rel.Role.IsPrivileged() {
		return apperrors.ErrRoleForbidden
	}
	return nil
}

// TaskUpdate resolves how much of a task the actor may change.
func TaskUpdate(rel Relationship) TaskUpdateScope {
	if rel.IsAuthor {
		return TaskUpdateFull
	}
	if rel.IsExecutor {
		return TaskUpdateStatusOnly
	}
	return TaskUpdateDenied
}

// CommentCreate allows any member of the task's team.
func CommentCreate(rel Relationship) error {
	if !rel.IsMember() {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// Evaluate allows only the task author.
func Evaluate(rel Relationship) error {
	if !rel.IsAuthor {
		return apperrors.ErrNotTaskAuthor
	}
	return nil
}

// MeetingCreate requires the actor to be a manager or admin of the target
// team, which the caller resolves from the explicitly supplied team id.
func MeetingCreate(rel Relationship) error {
	if !rel.IsMember() {
		return apperrors.ErrNotTeamMember
	}
	if !rel.Role.IsPrivileged() {
		return apperrors.ErrRoleForbidden
	}
	return nil
}

// MeetingView allows the organizer and listed participants.
func MeetingView(rel Relationship) error {
	if !rel.IsAuthor && !rel.IsParticipant {
		return apperrors.ErrMeetingNotFound
	}
	return nil
}

// MeetingUpdate allows the organizer and listed participants; the caller
// re-validates schedule conflicts afterwards.
func MeetingUpdate(rel Relationship) error {
	if !rel.IsAuthor && !rel.IsParticipant {
		return apperrors.ErrNotParticipant
	}
	return nil
}
