package repository

import (
	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// Get retrieves the membership for a (user, team) pair
func (r *MembershipRepository) Get(userID, teamID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ? AND team_id = ?", userID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByTeamID retrieves all memberships of a team with their users
func (r *MembershipRepository) GetByTeamID(teamID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Preload("User").Where("team_id = ?", teamID).Order("created_at ASC").Find(&memberships).Error
	return memberships, err
}

// UpdateRole changes the role of a member within a team
func (r *MembershipRepository) UpdateRole(userID, teamID uuid.UUID, role models.TeamRole) error {
	result := r.db.Model(&models.Membership{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a user from a team
func (r *MembershipRepository) Delete(userID, teamID uuid.UUID) error {
	result := r.db.Delete(&models.Membership{}, "user_id = ? AND team_id = ?", userID, teamID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
