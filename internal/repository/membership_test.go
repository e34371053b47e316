package repository_test

import (
	"testing"

	"teamflow-backend/internal/database/models"
	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite exercises the membership relation against
// a real Postgres instance.
type MembershipRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo *repository.MembershipRepository
}

func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.repo = repository.NewMembershipRepository(suite.DB)
}

// TestPairUniqueness tests that the database rejects a second membership
// for the same (user, team) pair
func (suite *MembershipRepositoryTestSuite) TestPairUniqueness() {
	user := createUser(suite.BaseTestSuite)
	team := createTeam(suite.BaseTestSuite)

	first := testutils.NewMembershipFactory().Create(user.ID, team.ID, models.TeamRoleParticipant)
	suite.NoError(suite.repo.Create(first))

	duplicate := testutils.NewMembershipFactory().Create(user.ID, team.ID, models.TeamRoleManager)
	suite.Error(suite.repo.Create(duplicate))

	memberships, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Len(memberships, 1)
	suite.Equal(models.TeamRoleParticipant, memberships[0].Role)
}

// TestSameUserAcrossTeams tests that uniqueness is per team, not global
func (suite *MembershipRepositoryTestSuite) TestSameUserAcrossTeams() {
	user := createUser(suite.BaseTestSuite)
	teamA := createTeam(suite.BaseTestSuite)
	teamB := createTeam(suite.BaseTestSuite)

	suite.NoError(suite.repo.Create(testutils.NewMembershipFactory().Create(user.ID, teamA.ID, models.TeamRoleAdmin)))
	suite.NoError(suite.repo.Create(testutils.NewMembershipFactory().Create(user.ID, teamB.ID, models.TeamRoleParticipant)))

	inA, err := suite.repo.Get(user.ID, teamA.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleAdmin, inA.Role)

	inB, err := suite.repo.Get(user.ID, teamB.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleParticipant, inB.Role)
}

// TestUpdateRole tests role changes and the not-found contract
func (suite *MembershipRepositoryTestSuite) TestUpdateRole() {
	user := createUser(suite.BaseTestSuite)
	team := createTeam(suite.BaseTestSuite)
	addMember(suite.BaseTestSuite, user.ID, team.ID, models.TeamRoleParticipant)

	suite.NoError(suite.repo.UpdateRole(user.ID, team.ID, models.TeamRoleManager))

	updated, err := suite.repo.Get(user.ID, team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleManager, updated.Role)

	err = suite.repo.UpdateRole(uuid.New(), team.ID, models.TeamRoleManager)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteAbsentPair tests that removing a non-member reports not found
func (suite *MembershipRepositoryTestSuite) TestDeleteAbsentPair() {
	user := createUser(suite.BaseTestSuite)
	team := createTeam(suite.BaseTestSuite)

	err := suite.repo.Delete(user.ID, team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	addMember(suite.BaseTestSuite, user.ID, team.ID, models.TeamRoleParticipant)
	suite.NoError(suite.repo.Delete(user.ID, team.ID))

	_, err = suite.repo.Get(user.ID, team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, &MembershipRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
