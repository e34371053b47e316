package models

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is a scheduled appointment within a team. The author is the
// organizer and is always part of the participant set. StartTime is stored
// as "HH:MM"; the interval [start, start+duration) is half-open, so a
// meeting ending at 10:00 never conflicts with one starting at 10:00.
type Meeting struct {
	BaseModel
	TeamID          uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	AuthorID        uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date            time.Time `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime       string    `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null" validate:"required"`

	// Relationships
	Team         Team   `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Author       User   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Participants []User `json:"participants,omitempty" gorm:"many2many:meeting_participants;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}
