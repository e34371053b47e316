package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamRoleIsValid(t *testing.T) {
	assert.True(t, TeamRoleAdmin.IsValid())
	assert.True(t, TeamRoleManager.IsValid())
	assert.True(t, TeamRoleParticipant.IsValid())
	assert.False(t, TeamRole("").IsValid())
	assert.False(t, TeamRole("owner").IsValid())
}

func TestTeamRoleIsPrivileged(t *testing.T) {
	assert.True(t, TeamRoleAdmin.IsPrivileged())
	assert.True(t, TeamRoleManager.IsPrivileged())
	assert.False(t, TeamRoleParticipant.IsPrivileged())
	assert.False(t, TeamRole("").IsPrivileged())
}

func TestTaskStatusIsValid(t *testing.T) {
	assert.True(t, TaskStatusOpen.IsValid())
	assert.True(t, TaskStatusProgress.IsValid())
	assert.True(t, TaskStatusCompleted.IsValid())
	assert.False(t, TaskStatus("done").IsValid())
}

func TestExecutorCanTransition(t *testing.T) {
	// The single transition an executor gets
	assert.True(t, ExecutorCanTransition(TaskStatusOpen, TaskStatusProgress))

	assert.False(t, ExecutorCanTransition(TaskStatusOpen, TaskStatusCompleted))
	assert.False(t, ExecutorCanTransition(TaskStatusProgress, TaskStatusCompleted))
	assert.False(t, ExecutorCanTransition(TaskStatusProgress, TaskStatusOpen))
	assert.False(t, ExecutorCanTransition(TaskStatusCompleted, TaskStatusOpen))
	assert.False(t, ExecutorCanTransition(TaskStatusOpen, TaskStatusOpen))
}
