package models

// TeamRole represents the role a user holds within a single team.
// Roles are always per-membership; a user may be an admin of one team
// and a plain participant of another.
type TeamRole string

const (
	TeamRoleAdmin       TeamRole = "admin"
	TeamRoleManager     TeamRole = "manager"
	TeamRoleParticipant TeamRole = "participant"
)

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleAdmin, TeamRoleManager, TeamRoleParticipant:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may create tasks and meetings
func (r TeamRole) IsPrivileged() bool {
	return r == TeamRoleAdmin || r == TeamRoleManager
}

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "open"
	TaskStatusProgress  TaskStatus = "progress"
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ExecutorCanTransition reports whether a non-author executor may move a
// task from one status to another. Executors get exactly one transition:
// open -> progress. Authors are not subject to this restriction.
func ExecutorCanTransition(from, to TaskStatus) bool {
	return from == TaskStatusOpen && to == TaskStatusProgress
}
