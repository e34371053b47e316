package repository

import (
	"database/sql"
	"time"

	"teamflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingFilters narrows meeting listing. All fields are optional.
type MeetingFilters struct {
	TeamID *uuid.UUID
	Date   *time.Time
}

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// GetByID retrieves a meeting by ID with author and participants
func (r *MeetingRepository) GetByID(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.Preload("Author").Preload("Participants").
		First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetVisible retrieves meetings in which the user appears as organizer or
// participant, with optional team and date filters.
func (r *MeetingRepository) GetVisible(userID uuid.UUID, filters MeetingFilters) ([]models.Meeting, error) {
	query := r.db.Preload("Author").Preload("Participants").
		Joins("LEFT JOIN meeting_participants mp ON mp.meeting_id = meetings.id").
		Where("meetings.author_id = ? OR mp.user_id = ?", userID, userID).
		Distinct("meetings.*")

	if filters.TeamID != nil {
		query = query.Where("meetings.team_id = ?", *filters.TeamID)
	}
	if filters.Date != nil {
		query = query.Where("meetings.date = ?", filters.Date.Format("2006-01-02"))
	}

	var meetings []models.Meeting
	err := query.Order("meetings.date ASC, meetings.start_time ASC").Find(&meetings).Error
	return meetings, err
}

// GetByParticipantAndDate retrieves every meeting on the given date in
// which the user appears, as organizer or participant. This is the read
// side of the conflict check and must run inside Serialized together with
// the subsequent write.
func (r *MeetingRepository) GetByParticipantAndDate(userID uuid.UUID, date time.Time) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.
		Joins("LEFT JOIN meeting_participants mp ON mp.meeting_id = meetings.id").
		Where("meetings.date = ?", date.Format("2006-01-02")).
		Where("meetings.author_id = ? OR mp.user_id = ?", userID, userID).
		Distinct("meetings.*").
		Find(&meetings).Error
	return meetings, err
}

// Create persists a meeting and its participant set
func (r *MeetingRepository) Create(meeting *models.Meeting, participants []models.User) error {
	if err := r.db.Create(meeting).Error; err != nil {
		return err
	}
	return r.db.Model(meeting).Association("Participants").Replace(participants)
}

// Update persists meeting fields and replaces the participant set
func (r *MeetingRepository) Update(meeting *models.Meeting, participants []models.User) error {
	if err := r.db.Save(meeting).Error; err != nil {
		return err
	}
	return r.db.Model(meeting).Association("Participants").Replace(participants)
}

// Serialized runs fn against a transaction-scoped repository with
// serializable isolation. The meeting conflict check reads the candidate
// participants' calendars and then inserts; running both sides under
// serializable isolation is what keeps two concurrent bookings from both
// passing the check.
func (r *MeetingRepository) Serialized(fn func(txRepo MeetingRepositoryInterface) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&MeetingRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}
