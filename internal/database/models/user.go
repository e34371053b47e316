package models

// User represents an authenticated person. A user carries no role of its
// own: roles exist only on memberships, keyed by (user, team).
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:150" validate:"required,max=150"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:254" validate:"required,email,max=254"`
	FirstName    string `json:"first_name" gorm:"size:150"`
	LastName     string `json:"last_name" gorm:"size:150"`
	PasswordHash string `json:"-" gorm:"not null"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
