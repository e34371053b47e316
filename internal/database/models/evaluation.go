package models

import (
	"github.com/google/uuid"
)

// Evaluation is a rating the task author gives a completed task.
// Unique per (task, evaluator) and immutable once created.
type Evaluation struct {
	BaseModel
	TaskID      uuid.UUID `json:"task_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluations_task_evaluator" validate:"required"`
	EvaluatorID uuid.UUID `json:"evaluator_id" gorm:"type:uuid;not null;uniqueIndex:idx_evaluations_task_evaluator" validate:"required"`
	Rating      int       `json:"rating" gorm:"not null" validate:"required"`

	// Relationships
	Task      Task `json:"task,omitempty" gorm:"foreignKey:TaskID"`
	Evaluator User `json:"evaluator,omitempty" gorm:"foreignKey:EvaluatorID"`
}

// TableName returns the table name for Evaluation
func (Evaluation) TableName() string {
	return "evaluations"
}
