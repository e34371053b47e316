package models

import (
	"github.com/google/uuid"
)

// Membership is the (user, team, role) relation granting a user standing
// within a team. At most one membership exists per (user, team) pair.
type Membership struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_team" validate:"required"`
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_team;index" validate:"required"`
	Role   TeamRole  `json:"role" gorm:"type:varchar(20);not null;default:'participant'" validate:"required"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
