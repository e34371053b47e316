package models

import (
	"github.com/google/uuid"
)

// Comment is an append-only remark on a task, listed newest-first.
type Comment struct {
	BaseModel
	TaskID   uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index" validate:"required"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null" validate:"required"`
	Text     string    `json:"text" gorm:"type:text;not null" validate:"required,min=1"`

	// Relationships
	Task   Task `json:"task,omitempty" gorm:"foreignKey:TaskID"`
	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
