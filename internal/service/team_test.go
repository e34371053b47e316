package service_test

import (
	"testing"

	"teamflow-backend/internal/config"
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

func testConfig() *config.Config {
	return &config.Config{
		MinRating:          1,
		MaxRating:          5,
		MinMeetingDuration: 15,
		MaxMeetingDuration: 480,
		MaxTeamTitleLength: 100,
		MaxTaskTitleLength: 200,
	}
}

func membershipWith(userID, teamID uuid.UUID, role models.TeamRole) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		TeamID:    teamID,
		Role:      role,
		User: models.User{
			BaseModel: models.BaseModel{ID: userID},
			Username:  "member-" + userID.String()[:8],
		},
	}
}

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	teamService        *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.teamService = service.NewTeamService(
		suite.mockTeamRepo,
		suite.mockMembershipRepo,
		suite.mockUserRepo,
		testConfig(),
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests that the creator becomes admin of the new team
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	actorID := uuid.New()
	req := &service.CreateTeamRequest{Title: "Platform"}

	suite.mockTeamRepo.EXPECT().
		CreateWithAdmin(gomock.Any(), actorID).
		Return(nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByTeamID(gomock.Any()).
		Return([]models.Membership{*membershipWith(actorID, uuid.New(), models.TeamRoleAdmin)}, nil).
		Times(1)

	response, err := suite.teamService.Create(actorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Platform", response.Title)
	assert.Len(suite.T(), response.Members, 1)
	assert.Equal(suite.T(), models.TeamRoleAdmin, response.Members[0].Role)
}

// TestCreateTeamEmptyTitle tests title validation
func (suite *TeamServiceTestSuite) TestCreateTeamEmptyTitle() {
	response, err := suite.teamService.Create(uuid.New(), &service.CreateTeamRequest{Title: "   "})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateTeamTitleTooLong tests the configured title bound
func (suite *TeamServiceTestSuite) TestCreateTeamTitleTooLong() {
	long := make([]rune, 101)
	for i := range long {
		long[i] = 'x'
	}

	response, err := suite.teamService.Create(uuid.New(), &service.CreateTeamRequest{Title: string(long)})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetTeamNotMember tests that non-members cannot see the team at all
func (suite *TeamServiceTestSuite) TestGetTeamNotMember() {
	actorID := uuid.New()
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		GetScoped(teamID, actorID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.teamService.Get(actorID, teamID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestChangeRole tests a successful role change by an admin
func (suite *TeamServiceTestSuite) TestChangeRole() {
	actorID := uuid.New()
	targetID := uuid.New()
	teamID := uuid.New()
	req := &service.ChangeRoleRequest{UserID: targetID, Role: models.TeamRoleManager}

	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(membershipWith(actorID, teamID, models.TeamRoleAdmin), nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Get(targetID, teamID).
		Return(membershipWith(targetID, teamID, models.TeamRoleParticipant), nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		UpdateRole(targetID, teamID, models.TeamRoleManager).
		Return(nil).
		Times(1)

	err := suite.teamService.ChangeRole(actorID, teamID, req)

	assert.NoError(suite.T(), err)
}

// TestChangeRoleSelf tests that an admin cannot change their own role
func (suite *TeamServiceTestSuite) TestChangeRoleSelf() {
	actorID := uuid.New()
	teamID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(membershipWith(actorID, teamID, models.TeamRoleAdmin), nil).
		Times(1)

	err := suite.teamService.ChangeRole(actorID, teamID, &service.ChangeRoleRequest{
		UserID: actorID,
		Role:   models.TeamRoleParticipant,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfRoleChange)
}

// TestChangeRoleNotAdmin tests that managers cannot change roles
func (suite *TeamServiceTestSuite) TestChangeRoleNotAdmin() {
	actorID := uuid.New()
	teamID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(membershipWith(actorID, teamID, models.TeamRoleManager), nil).
		Times(1)

	err := suite.teamService.ChangeRole(actorID, teamID, &service.ChangeRoleRequest{
		UserID: uuid.New(),
		Role:   models.TeamRoleParticipant,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminOnly)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestChangeRoleToAdmin tests that the admin role cannot be assigned
func (suite *TeamServiceTestSuite) TestChangeRoleToAdmin() {
	err := suite.teamService.ChangeRole(uuid.New(), uuid.New(), &service.ChangeRoleRequest{
		UserID: uuid.New(),
		Role:   models.TeamRoleAdmin,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestChangeRoleActorNotMember tests information hiding for outsiders
func (suite *TeamServiceTestSuite) TestChangeRoleActorNotMember() {
	actorID := uuid.New()
	teamID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.teamService.ChangeRole(actorID, teamID, &service.ChangeRoleRequest{
		UserID: uuid.New(),
		Role:   models.TeamRoleManager,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestChangeRoleTargetNotMember tests the target-must-be-member rule
func (suite *TeamServiceTestSuite) TestChangeRoleTargetNotMember() {
	actorID := uuid.New()
	targetID := uuid.New()
	teamID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(membershipWith(actorID, teamID, models.TeamRoleAdmin), nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Get(targetID, teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.teamService.ChangeRole(actorID, teamID, &service.ChangeRoleRequest{
		UserID: targetID,
		Role:   models.TeamRoleManager,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestAddParticipant tests adding a user to the team
func (suite *TeamServiceTestSuite) TestAddParticipant() {
	actorID := uuid.New()
	targetID := uuid.New()
	teamID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(membershipWith(actorID, teamID, models.TeamRoleAdmin), nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(&models.User{BaseModel: models.BaseModel{ID: targetID}}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Get(targetID, teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.teamService.AddParticipant(actorID, teamID, &service.AddParticipantRequest{
		UserID: targetID,
	})

	assert.NoError(suite.T(), err)
}

// TestAddParticipantDuplicate tests adding a user who is already a member
func (suite *TeamServiceTestSuite) TestAddParticipantDuplicate() {
	actorID := uuid.New()
	targetID := uuid.New()
	teamID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(membershipWith(actorID, teamID, models.TeamRoleAdmin), nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(&models.User{BaseModel: models.BaseModel{ID: targetID}}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Get(targetID, teamID).
		Return(membershipWith(targetID, teamID, models.TeamRoleParticipant), nil).
		Times(1)

	err := suite.teamService.AddParticipant(actorID, teamID, &service.AddParticipantRequest{
		UserID: targetID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

// TestRemoveParticipantAbsent tests removing a user who is not a member
func (suite *TeamServiceTestSuite) TestRemoveParticipantAbsent() {
	actorID := uuid.New()
	targetID := uuid.New()
	teamID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		Get(actorID, teamID).
		Return(membershipWith(actorID, teamID, models.TeamRoleAdmin), nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Delete(targetID, teamID).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	err := suite.teamService.RemoveParticipant(actorID, teamID, &service.RemoveParticipantRequest{
		UserID: targetID,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestMyRoleNotMember tests that non-members get a null role, not an error
func (suite *TeamServiceTestSuite) TestMyRoleNotMember() {
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

	response, err := suite.teamService.MyRole(actorID, teamID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.Role)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
