package repository

import (
	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvaluationRepository handles database operations for evaluations
type EvaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Create creates a new evaluation
func (r *EvaluationRepository) Create(evaluation *models.Evaluation) error {
	return r.db.Create(evaluation).Error
}

// Exists checks whether an evaluation exists for a (task, evaluator) pair
func (r *EvaluationRepository) Exists(taskID, evaluatorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Evaluation{}).
		Where("task_id = ? AND evaluator_id = ?", taskID, evaluatorID).
		Count(&count).Error
	return count > 0, err
}

// GetByTaskAndEvaluator retrieves the evaluation for a (task, evaluator) pair
func (r *EvaluationRepository) GetByTaskAndEvaluator(taskID, evaluatorID uuid.UUID) (*models.Evaluation, error) {
	var evaluation models.Evaluation
	err := r.db.First(&evaluation, "task_id = ? AND evaluator_id = ?", taskID, evaluatorID).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetByExecutor retrieves all evaluations of tasks the user executed,
// across every team, newest first.
func (r *EvaluationRepository) GetByExecutor(executorID uuid.UUID) ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	err := r.db.Preload("Evaluator").Preload("Task").
		Joins("JOIN tasks ON tasks.id = evaluations.task_id").
		Where("tasks.executor_id = ?", executorID).
		Order("evaluations.created_at DESC").
		Find(&evaluations).Error
	return evaluations, err
}
