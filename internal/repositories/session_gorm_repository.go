package repositories

import (
	"fmt"
	"pelari/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSessionRepository is a GORM implementation of SessionRepository.
type GORMSessionRepository struct {
	db *gorm.DB
}

// NewGORMSessionRepository creates a new instance of GORMSessionRepository.
func NewGORMSessionRepository(db *gorm.DB) *GORMSessionRepository {
	return &GORMSessionRepository{
		db: db,
	}
}

// Create appends a new game session to the ledger.
func (r *GORMSessionRepository) Create(session *models.GameSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create game session: %w", err)
	}
	return nil
}

// GetByUser retrieves all sessions of a user ordered by score descending.
// Equal scores order the earlier session first.
func (r *GORMSessionRepository) GetByUser(userID string) ([]models.GameSession, error) {
	var sessions []models.GameSession
	if err := r.db.Order("score DESC, created_at ASC").Find(&sessions, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get sessions for user %s: %w", userID, err)
	}
	return sessions, nil
}

// GetTop retrieves up to limit sessions globally ordered by score descending.
func (r *GORMSessionRepository) GetTop(limit int) ([]models.GameSession, error) {
	var sessions []models.GameSession
	if err := r.db.Order("score DESC, created_at ASC").Limit(limit).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to get top sessions: %w", err)
	}
	return sessions, nil
}

// CreateUsage records a power-up activation belonging to a session.
func (r *GORMSessionRepository) CreateUsage(usage *models.GameSessionPowerUp) error {
	if usage.ID == "" {
		usage.ID = uuid.New().String()
	}
	if err := r.db.Create(usage).Error; err != nil {
		return fmt.Errorf("failed to create session power-up usage: %w", err)
	}
	return nil
}

// GetUsagesBySession retrieves the power-up usages recorded for one session.
func (r *GORMSessionRepository) GetUsagesBySession(sessionID string) ([]models.GameSessionPowerUp, error) {
	var usages []models.GameSessionPowerUp
	if err := r.db.Find(&usages, "game_session_id = ?", sessionID).Error; err != nil {
		return nil, fmt.Errorf("failed to get usages for session %s: %w", sessionID, err)
	}
	return usages, nil
}
