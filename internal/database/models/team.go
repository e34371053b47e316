package models

// Team represents a named collection of members. A team owns its
// memberships, tasks and meetings; deleting a team cascades to all three.
type Team struct {
	BaseModel
	Title string `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Tasks       []Task       `json:"tasks,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Meetings    []Meeting    `json:"meetings,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
