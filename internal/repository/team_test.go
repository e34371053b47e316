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

// TeamRepositoryTestSuite exercises team persistence and membership-scoped
// visibility against a real Postgres instance.
type TeamRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo           *repository.TeamRepository
	membershipRepo *repository.MembershipRepository
}

func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.repo = repository.NewTeamRepository(suite.DB)
	suite.membershipRepo = repository.NewMembershipRepository(suite.DB)
}

// TestCreateWithAdmin tests that the creator gets an admin membership in
// the same transaction
func (suite *TeamRepositoryTestSuite) TestCreateWithAdmin() {
	admin := createUser(suite.BaseTestSuite)
	team := testutils.NewTeamFactory().Create()

	suite.NoError(suite.repo.CreateWithAdmin(team, admin.ID))

	membership, err := suite.membershipRepo.Get(admin.ID, team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleAdmin, membership.Role)
}

// TestCreateWithAdminRollsBack tests that a failed membership insert leaves
// no orphan team behind
func (suite *TeamRepositoryTestSuite) TestCreateWithAdminRollsBack() {
	team := testutils.NewTeamFactory().Create()

	// nonexistent admin violates the membership foreign key
	suite.Error(suite.repo.CreateWithAdmin(team, uuid.New()))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetScopedVisibility tests that a team outside the user's memberships
// surfaces as record-not-found, never as a bare permission failure
func (suite *TeamRepositoryTestSuite) TestGetScopedVisibility() {
	member := createUser(suite.BaseTestSuite)
	outsider := createUser(suite.BaseTestSuite)
	team := createTeam(suite.BaseTestSuite)
	addMember(suite.BaseTestSuite, member.ID, team.ID, models.TeamRoleParticipant)

	visible, err := suite.repo.GetScoped(team.ID, member.ID)
	suite.NoError(err)
	suite.Equal(team.ID, visible.ID)

	_, err = suite.repo.GetScoped(team.ID, outsider.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByUserID tests that listing is pre-scoped to the user's teams
func (suite *TeamRepositoryTestSuite) TestGetByUserID() {
	user := createUser(suite.BaseTestSuite)
	mine := createTeam(suite.BaseTestSuite)
	other := createTeam(suite.BaseTestSuite)
	addMember(suite.BaseTestSuite, user.ID, mine.ID, models.TeamRoleAdmin)

	teams, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(mine.ID, teams[0].ID)
	suite.NotEqual(other.ID, teams[0].ID)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, &TeamRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
