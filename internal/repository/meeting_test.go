package repository_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"teamflow-backend/internal/database/models"
	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/scheduling"
	"teamflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// MeetingRepositoryTestSuite exercises meeting persistence and the
// serializable booking transaction against a real Postgres instance.
type MeetingRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo *repository.MeetingRepository
}

func (suite *MeetingRepositoryTestSuite) SetupSuite() {
	suite.repo = repository.NewMeetingRepository(suite.DB)
}

func (suite *MeetingRepositoryTestSuite) meetingDate() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

// TestCreateRoundTrip tests that a meeting and its participant set persist
// and load back through every read path
func (suite *MeetingRepositoryTestSuite) TestCreateRoundTrip() {
	organizer := createUser(suite.BaseTestSuite)
	attendee := createUser(suite.BaseTestSuite)
	outsider := createUser(suite.BaseTestSuite)
	team := createTeam(suite.BaseTestSuite)
	addMember(suite.BaseTestSuite, organizer.ID, team.ID, models.TeamRoleManager)
	addMember(suite.BaseTestSuite, attendee.ID, team.ID, models.TeamRoleParticipant)

	date := suite.meetingDate()
	meeting := testutils.NewMeetingFactory().Create(team.ID, organizer.ID, date, "10:00", 60)
	suite.Require().NoError(suite.repo.Create(meeting, []models.User{*organizer, *attendee}))

	loaded, err := suite.repo.GetByID(meeting.ID)
	suite.NoError(err)
	suite.Equal(organizer.Username, loaded.Author.Username)
	suite.Equal("10:00", loaded.StartTime)
	suite.Equal(60, loaded.DurationMinutes)
	suite.Equal(date.Format("2006-01-02"), loaded.Date.Format("2006-01-02"))
	suite.Len(loaded.Participants, 2)

	calendar, err := suite.repo.GetByParticipantAndDate(attendee.ID, date)
	suite.NoError(err)
	suite.Len(calendar, 1)

	teamID := team.ID
	visible, err := suite.repo.GetVisible(attendee.ID, repository.MeetingFilters{TeamID: &teamID})
	suite.NoError(err)
	suite.Len(visible, 1)

	hidden, err := suite.repo.GetVisible(outsider.ID, repository.MeetingFilters{})
	suite.NoError(err)
	suite.Empty(hidden)
}

// TestUpdateReplacesParticipants tests that the participant set is
// replaced, not appended to
func (suite *MeetingRepositoryTestSuite) TestUpdateReplacesParticipants() {
	organizer := createUser(suite.BaseTestSuite)
	attendee := createUser(suite.BaseTestSuite)
	team := createTeam(suite.BaseTestSuite)
	addMember(suite.BaseTestSuite, organizer.ID, team.ID, models.TeamRoleManager)
	addMember(suite.BaseTestSuite, attendee.ID, team.ID, models.TeamRoleParticipant)

	meeting := testutils.NewMeetingFactory().Create(team.ID, organizer.ID, suite.meetingDate(), "10:00", 60)
	suite.Require().NoError(suite.repo.Create(meeting, []models.User{*organizer, *attendee}))

	meeting.StartTime = "11:00"
	suite.Require().NoError(suite.repo.Update(meeting, []models.User{*organizer}))

	loaded, err := suite.repo.GetByID(meeting.ID)
	suite.NoError(err)
	suite.Equal("11:00", loaded.StartTime)
	suite.Len(loaded.Participants, 1)
	suite.Equal(organizer.ID, loaded.Participants[0].ID)
}

// TestSerializedPreventsDoubleBooking tests that two concurrent
// check-then-insert transactions for the same slot cannot both commit:
// serializable isolation aborts one of them even though each saw an empty
// calendar when it checked.
func (suite *MeetingRepositoryTestSuite) TestSerializedPreventsDoubleBooking() {
	organizer := createUser(suite.BaseTestSuite)
	team := createTeam(suite.BaseTestSuite)
	addMember(suite.BaseTestSuite, organizer.ID, team.ID, models.TeamRoleManager)

	date := suite.meetingDate()
	participants := []models.User{*organizer}
	errSlotTaken := errors.New("slot already taken")

	bookSlot := func() error {
		return suite.repo.Serialized(func(txRepo repository.MeetingRepositoryInterface) error {
			existing, err := txRepo.GetByParticipantAndDate(organizer.ID, date)
			if err != nil {
				return err
			}
			interval, err := scheduling.NewInterval(date, "10:00", 60)
			if err != nil {
				return err
			}
			conflict, err := scheduling.FindConflict(interval, participants,
				map[uuid.UUID][]models.Meeting{organizer.ID: existing}, uuid.Nil)
			if err != nil {
				return err
			}
			if conflict != nil {
				return errSlotTaken
			}
			meeting := testutils.NewMeetingFactory().Create(team.ID, organizer.ID, date, "10:00", 60)
			return txRepo.Create(meeting, participants)
		})
	}

	start := make(chan struct{})
	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = bookSlot()
		}(i)
	}
	close(start)
	wg.Wait()

	failures := 0
	for _, err := range results {
		if err != nil {
			failures++
		}
	}
	suite.Equal(1, failures, "exactly one booking must be rejected, got results %v", results)

	stored, err := suite.repo.GetByParticipantAndDate(organizer.ID, date)
	suite.NoError(err)
	suite.Len(stored, 1)
}

// TestMeetingRepositoryTestSuite runs the test suite
func TestMeetingRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, &MeetingRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
