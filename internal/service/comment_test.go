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

// CommentServiceTestSuite defines the test suite for CommentService
type CommentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCommentRepo *mocks.MockCommentRepositoryInterface
	mockTaskRepo    *mocks.MockTaskRepositoryInterface
	commentService  *service.CommentService
}

// SetupTest sets up the test suite
func (suite *CommentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCommentRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)

	v := validator.New()
	taskService := service.NewTaskService(
		suite.mockTaskRepo,
		mocks.NewMockTeamRepositoryInterface(suite.ctrl),
		mocks.NewMockMembershipRepositoryInterface(suite.ctrl),
		mocks.NewMockEvaluationRepositoryInterface(suite.ctrl),
		testConfig(),
		v,
	)
	suite.commentService = service.NewCommentService(suite.mockCommentRepo, taskService, v)
}

// TearDownTest cleans up after each test
func (suite *CommentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CommentServiceTestSuite) expectVisibleTask(actorID uuid.UUID) *models.Task {
	task := &models.Task{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    uuid.New(),
		Status:    models.TaskStatusOpen,
	}
	suite.mockTaskRepo.EXPECT().
		GetScoped(task.ID, actorID).
		Return(task, nil).
		Times(1)
	return task
}

// TestCreateComment tests adding a comment to a visible task
func (suite *CommentServiceTestSuite) TestCreateComment() {
	actorID := uuid.New()
	task := suite.expectVisibleTask(actorID)

	suite.mockCommentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(comment *models.Comment) error {
			suite.Equal("Looks good to me", comment.Text)
			comment.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mockCommentRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.Comment, error) {
			return &models.Comment{
				BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now()},
				TaskID:    task.ID,
				AuthorID:  actorID,
				Text:      "Looks good to me",
				Author:    models.User{BaseModel: models.BaseModel{ID: actorID}, Username: "alice"},
			}, nil
		}).
		Times(1)

	response, err := suite.commentService.Create(actorID, task.ID, &service.CreateCommentRequest{
		Text: "  Looks good to me  ",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Looks good to me", response.Text)
	assert.Equal(suite.T(), task.ID, response.TaskID)
}

// TestCreateCommentBlankText tests that whitespace-only text is rejected
func (suite *CommentServiceTestSuite) TestCreateCommentBlankText() {
	_, err := suite.commentService.Create(uuid.New(), uuid.New(), &service.CreateCommentRequest{
		Text: "   ",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateCommentInvisibleTask tests information hiding through the task
func (suite *CommentServiceTestSuite) TestCreateCommentInvisibleTask() {
	actorID := uuid.New()
	taskID := uuid.New()

	suite.mockTaskRepo.EXPECT().
		GetScoped(taskID, actorID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.commentService.Create(actorID, taskID, &service.CreateCommentRequest{
		Text: "hello",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTaskNotFound)
}

// TestListComments tests listing preserves repository ordering
func (suite *CommentServiceTestSuite) TestListComments() {
	actorID := uuid.New()
	task := suite.expectVisibleTask(actorID)

	newer := models.Comment{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		TaskID:    task.ID,
		Text:      "newer",
	}
	older := models.Comment{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Hour)},
		TaskID:    task.ID,
		Text:      "older",
	}
	suite.mockCommentRepo.EXPECT().
		GetByTaskID(task.ID).
		Return([]models.Comment{newer, older}, nil).
		Times(1)

	responses, err := suite.commentService.List(actorID, task.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "newer", responses[0].Text)
	assert.Equal(suite.T(), "older", responses[1].Text)
}

// TestCommentServiceTestSuite runs the test suite
func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
