// Package scheduling implements the meeting conflict detector. It is pure:
// callers gather the candidate participants and their existing meetings,
// and the persistence layer is responsible for running check-then-insert
// inside a transaction so two concurrent bookings cannot both pass.
package scheduling

import (
	"fmt"
	"time"

	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
)

// Interval is a half-open time range [Start, End). Two meetings that
// exactly abut (one ends at 10:00, the next starts at 10:00) do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds the interval of a meeting on the given calendar date.
// startTime is "HH:MM" in 24-hour form.
func NewInterval(date time.Time, startTime string, durationMinutes int) (Interval, error) {
	t, err := time.Parse("15:04", startTime)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC,
	)
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// Overlaps reports whether two half-open intervals intersect.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Conflict identifies the first existing meeting that collides with a
// proposed one, and for whom.
type Conflict struct {
	ParticipantID       uuid.UUID
	ParticipantUsername string
	MeetingID           uuid.UUID
	Start               time.Time
	End                 time.Time
}

// FindConflict checks the candidate interval against every existing meeting
// of every participant and returns the first conflict found, or nil. The
// meetings in existingByParticipant must all fall on the candidate's date;
// excludeID skips the meeting currently being updated.
//
// Cost is O(participants x meetings-per-participant-per-day), which is fine
// for human calendars; the contract (first offending interval or nil) does
// not depend on the scan order staying brute-force.
func FindConflict(
	candidate Interval,
	participants []models.User,
	existingByParticipant map[uuid.UUID][]models.Meeting,
	excludeID uuid.UUID,
) (*Conflict, error) {
	for _, participant := range participants {
		for _, meeting := range existingByParticipant[participant.ID] {
			if meeting.ID == excludeID {
				continue
			}
			existing, err := NewInterval(meeting.Date, meeting.StartTime, meeting.DurationMinutes)
			if err != nil {
				return nil, fmt.Errorf("stored meeting %s: %w", meeting.ID, err)
			}
			if candidate.Overlaps(existing) {
				return &Conflict{
					ParticipantID:       participant.ID,
					ParticipantUsername: participant.Username,
					MeetingID:           meeting.ID,
					Start:               existing.Start,
					End:                 existing.End,
				}, nil
			}
		}
	}
	return nil, nil
}
