package models

import (
	"time"

	"github.com/google/uuid"
)

// Task belongs to exactly one team. The author (creator) holds elevated
// update rights; the executor is the member assigned to perform it.
type Task struct {
	BaseModel
	TeamID      uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	AuthorID    uuid.UUID  `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	ExecutorID  uuid.UUID  `json:"executor_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	Deadline    time.Time  `json:"deadline" gorm:"type:date;not null" validate:"required"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'open'"`

	// Relationships
	Team        Team         `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Author      User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Executor    User         `json:"executor,omitempty" gorm:"foreignKey:ExecutorID"`
	Comments    []Comment    `json:"comments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Evaluations []Evaluation `json:"evaluations,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
