package service_test

import (
	"testing"
	"time"

	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/mocks"
	"teamflow-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTaskRepo       *mocks.MockTaskRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockEvaluationRepo *mocks.MockEvaluationRepositoryInterface
	taskService        *service.TaskService
}

// SetupTest sets up the test suite
func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockEvaluationRepo = mocks.NewMockEvaluationRepositoryInterface(suite.ctrl)

	suite.taskService = service.NewTaskService(
		suite.mockTaskRepo,
		suite.mockTeamRepo,
		suite.mockMembershipRepo,
		suite.mockEvaluationRepo,
		testConfig(),
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskServiceTestSuite) taskWith(teamID, authorID, executorID uuid.UUID, status models.TaskStatus) *models.Task {
	return &models.Task{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TeamID:     teamID,
		AuthorID:   authorID,
		ExecutorID: executorID,
		Title:      "Ship the release",
		Deadline:   time.Now().AddDate(0, 0, 7),
		Status:     status,
		Author:     models.User{BaseModel: models.BaseModel{ID: authorID}, Username: "author"},
		Executor:   models.User{BaseModel: models.BaseModel{ID: executorID}, Username: "executor"},
	}
}

func (suite *TaskServiceTestSuite) expectTeamAndRole(teamID, actorID uuid.UUID, role models.TeamRole) {
	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(membershipWith(actorID, teamID, role), nil).
		Times(1)
}

// TestCreateTask tests task creation by a manager
func (suite *TaskServiceTestSuite) TestCreateTask() {
	actorID := uuid.New()
	executorID := uuid.New()
	teamID := uuid.New()
	req := &service.CreateTaskRequest{
		TeamID:     teamID,
		Title:      "Ship the release",
		Deadline:   "2025-04-01",
		ExecutorID: executorID,
	}

	suite.expectTeamAndRole(teamID, actorID, models.TeamRoleManager)
	suite.mockMembershipRepo.EXPECT().
		Get(executorID, teamID).
		Return(membershipWith(executorID, teamID, models.TeamRoleParticipant), nil).
		Times(1)
	suite.mockTaskRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(task *models.Task) error {
			task.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mockTaskRepo.EXPECT().
		GetByID(gomock.Any()).
		Return(suite.taskWith(teamID, actorID, executorID, models.TaskStatusOpen), nil).
		Times(1)

	response, err := suite.taskService.Create(actorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.TaskStatusOpen, response.Status)
}

// TestCreateTaskByParticipant tests that plain participants cannot create tasks
func (suite *TaskServiceTestSuite) TestCreateTaskByParticipant() {
	actorID := uuid.New()
	teamID := uuid.New()

	suite.expectTeamAndRole(teamID, actorID, models.TeamRoleParticipant)

	response, err := suite.taskService.Create(actorID, &service.CreateTaskRequest{
		TeamID:     teamID,
		Title:      "Ship it",
		Deadline:   "2025-04-01",
		ExecutorID: uuid.New(),
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleForbidden)
}

// TestCreateTaskNotMember tests that outsiders of an existing team are denied
func (suite *TaskServiceTestSuite) TestCreateTaskNotMember() {
	actorID := uuid.New()
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.taskService.Create(actorID, &service.CreateTaskRequest{
		TeamID:     teamID,
		Title:      "Ship it",
		Deadline:   "2025-04-01",
		ExecutorID: uuid.New(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTeamMember)
}

// TestCreateTaskUnknownTeam tests the 404 path for an unknown team
func (suite *TaskServiceTestSuite) TestCreateTaskUnknownTeam() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.taskService.Create(uuid.New(), &service.CreateTaskRequest{
		TeamID:     teamID,
		Title:      "Ship it",
		Deadline:   "2025-04-01",
		ExecutorID: uuid.New(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestCreateTaskSelfExecutor tests that the author cannot execute their own task
func (suite *TaskServiceTestSuite) TestCreateTaskSelfExecutor() {
	actorID := uuid.New()
	teamID := uuid.New()

	suite.expectTeamAndRole(teamID, actorID, models.TeamRoleAdmin)

	_, err := suite.taskService.Create(actorID, &service.CreateTaskRequest{
		TeamID:     teamID,
		Title:      "Ship it",
		Deadline:   "2025-04-01",
		ExecutorID: actorID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfExecutor)
}

// TestCreateTaskExecutorNotMember tests the executor membership rule
func (suite *TaskServiceTestSuite) TestCreateTaskExecutorNotMember() {
	actorID := uuid.New()
	executorID := uuid.New()
	teamID := uuid.New()

	suite.expectTeamAndRole(teamID, actorID, models.TeamRoleManager)
	suite.mockMembershipRepo.EXPECT().
		Get(executorID, teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.taskService.Create(actorID, &service.CreateTaskRequest{
		TeamID:     teamID,
		Title:      "Ship it",
		Deadline:   "2025-04-01",
		ExecutorID: executorID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrExecutorNotMember)
}

// TestExecutorMovesOpenToProgress tests the executor's single allowed transition
func (suite *TaskServiceTestSuite) TestExecutorMovesOpenToProgress() {
	executorID := uuid.New()
	task := suite.taskWith(uuid.New(), uuid.New(), executorID, models.TaskStatusOpen)

	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, executorID).
		Return(task, nil).
		Times(1)
	suite.mockTaskRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	updated := *task
	updated.Status = models.TaskStatusProgress
	suite.mockTaskRepo.EXPECT().
		GetByID(task.ID).
		Return(&updated, nil).
		Times(1)

	status := models.TaskStatusProgress
	response, err := suite.taskService.Update(executorID, task.ID, &service.UpdateTaskRequest{Status: &status})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusProgress, response.Status)
}

// TestExecutorCannotComplete tests that executors cannot finish tasks
func (suite *TaskServiceTestSuite) TestExecutorCannotComplete() {
	executorID := uuid.New()
	task := suite.taskWith(uuid.New(), uuid.New(), executorID, models.TaskStatusProgress)

	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, executorID).
		Return(task, nil).
		Times(1)

	status := models.TaskStatusCompleted
	_, err := suite.taskService.Update(executorID, task.ID, &service.UpdateTaskRequest{Status: &status})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
}

// TestAuthorCompletesTask tests that the author may set any status
func (suite *TaskServiceTestSuite) TestAuthorCompletesTask() {
	authorID := uuid.New()
	task := suite.taskWith(uuid.New(), authorID, uuid.New(), models.TaskStatusProgress)

	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, authorID).
		Return(task, nil).
		Times(1)
	suite.mockTaskRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)
	updated := *task
	updated.Status = models.TaskStatusCompleted
	suite.mockTaskRepo.EXPECT().
		GetByID(task.ID).
		Return(&updated, nil).
		Times(1)

	status := models.TaskStatusCompleted
	response, err := suite.taskService.Update(authorID, task.ID, &service.UpdateTaskRequest{Status: &status})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusCompleted, response.Status)
}

// TestBystanderCannotUpdate tests that other team members are denied
func (suite *TaskServiceTestSuite) TestBystanderCannotUpdate() {
	actorID := uuid.New()
	task := suite.taskWith(uuid.New(), uuid.New(), uuid.New(), models.TaskStatusOpen)

	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, actorID).
		Return(task, nil).
		Times(1)

	status := models.TaskStatusProgress
	_, err := suite.taskService.Update(actorID, task.ID, &service.UpdateTaskRequest{Status: &status})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestUpdateInvisibleTask tests information hiding for tasks in other teams
func (suite *TaskServiceTestSuite) TestUpdateInvisibleTask() {
	actorID := uuid.New()
	taskID := uuid.New()

	suite.mockTaskRepo.EXPECT().
		GetScoped(taskID, actorID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	status := models.TaskStatusProgress
	_, err := suite.taskService.Update(actorID, taskID, &service.UpdateTaskRequest{Status: &status})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTaskNotFound)
}

// TestEvaluateTask tests a successful evaluation
func (suite *TaskServiceTestSuite) TestEvaluateTask() {
	authorID := uuid.New()
	task := suite.taskWith(uuid.New(), authorID, uuid.New(), models.TaskStatusCompleted)

	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, authorID).
		Return(task, nil).
		Times(1)
	suite.mockEvaluationRepo.EXPECT().
		Exists(task.ID, authorID).
		Return(false, nil).
		Times(1)
	suite.mockEvaluationRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockEvaluationRepo.EXPECT().
		GetByTaskAndEvaluator(task.ID, authorID).
		Return(&models.Evaluation{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			TaskID:      task.ID,
			EvaluatorID: authorID,
			Rating:      4,
			Evaluator:   task.Author,
		}, nil).
		Times(1)

	response, err := suite.taskService.Evaluate(authorID, task.ID, &service.EvaluateTaskRequest{Rating: 4})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, response.Rating)
	assert.Equal(suite.T(), task.ID, response.TaskID)
}

// TestEvaluateUnfinishedTask tests that only completed tasks can be rated
func (suite *TaskServiceTestSuite) TestEvaluateUnfinishedTask() {
	authorID := uuid.New()
	task := suite.taskWith(uuid.New(), authorID, uuid.New(), models.TaskStatusProgress)

	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, authorID).
		Return(task, nil).
		Times(1)

	_, err := suite.taskService.Evaluate(authorID, task.ID, &service.EvaluateTaskRequest{Rating: 4})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTaskNotCompleted)
}

// TestEvaluateTwice tests the one-evaluation-per-task rule
func (suite *TaskServiceTestSuite) TestEvaluateTwice() {
	authorID := uuid.New()
	task := suite.taskWith(uuid.New(), authorID, uuid.New(), models.TaskStatusCompleted)

	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, authorID).
		Return(task, nil).
		Times(1)
	suite.mockEvaluationRepo.EXPECT().
		Exists(task.ID, authorID).
		Return(true, nil).
		Times(1)

	_, err := suite.taskService.Evaluate(authorID, task.ID, &service.EvaluateTaskRequest{Rating: 4})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyRated)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestEvaluateNotAuthor tests that only the author may evaluate
func (suite *TaskServiceTestSuite) TestEvaluateNotAuthor() {
	actorID := uuid.New()
	task := suite.taskWith(uuid.New(), uuid.New(), actorID, models.TaskStatusCompleted)

	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, actorID).
		Return(task, nil).
		Times(1)

	_, err := suite.taskService.Evaluate(actorID, task.ID, &service.EvaluateTaskRequest{Rating: 4})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTaskAuthor)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestEvaluateRatingOutOfRange tests the configured rating bounds
func (suite *TaskServiceTestSuite) TestEvaluateRatingOutOfRange() {
	for _, rating := range []int{-1, 6, 100} {
		_, err := suite.taskService.Evaluate(uuid.New(), uuid.New(), &service.EvaluateTaskRequest{Rating: rating})
		assert.True(suite.T(), apperrors.IsValidation(err), "rating %d should be rejected", rating)
	}
}

// TestExecutorEvaluations tests the aggregate with two-decimal rounding
func (suite *TaskServiceTestSuite) TestExecutorEvaluations() {
	executorID := uuid.New()

	suite.mockEvaluationRepo.EXPECT().
		GetByExecutor(executorID).
		Return([]models.Evaluation{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Rating: 5},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Rating: 4},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Rating: 4},
		}, nil).
		Times(1)

	response, err := suite.taskService.ExecutorEvaluations(executorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, response.TotalEvaluations)
	assert.NotNil(suite.T(), response.AverageRating)
	assert.Equal(suite.T(), 4.33, *response.AverageRating)
}

// TestExecutorEvaluationsEmpty tests that the average is null with no ratings
func (suite *TaskServiceTestSuite) TestExecutorEvaluationsEmpty() {
	executorID := uuid.New()

	suite.mockEvaluationRepo.EXPECT().
		GetByExecutor(executorID).
		Return([]models.Evaluation{}, nil).
		Times(1)

	response, err := suite.taskService.ExecutorEvaluations(executorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, response.TotalEvaluations)
	assert.Nil(suite.T(), response.AverageRating)
	assert.Empty(suite.T(), response.Evaluations)
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
