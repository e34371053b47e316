package repository

import (
	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithAdmin creates a team and its creator's admin membership in one
// transaction, so a team can never exist without at least one admin.
func (r *TeamRepository) CreateWithAdmin(team *models.Team, adminID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		membership := &models.Membership{
			UserID: adminID,
			TeamID: team.ID,
			Role:   models.TeamRoleAdmin,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByUserID retrieves all teams the user belongs to
func (r *TeamRepository) GetByUserID(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN memberships ON memberships.team_id = teams.id").
		Where("memberships.user_id = ?", userID).
		Order("teams.created_at DESC").
		Find(&teams).Error
	return teams, err
}

// GetScoped retrieves a team only if the user is a member of it. A team
// outside the user's memberships surfaces as ErrRecordNotFound, never as a
// permission failure.
func (r *TeamRepository) GetScoped(id, userID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Joins("JOIN memberships ON memberships.team_id = teams.id").
		Where("teams.id = ? AND memberships.user_id = ?", id, userID).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}
