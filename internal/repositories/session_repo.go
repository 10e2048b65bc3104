package repositories

import "pelari/internal/models"

// SessionRepository defines the interface for the append-only game session
// ledger and its power-up usage records. Sessions are never updated or
// deleted once written.
type SessionRepository interface {
	Create(session *models.GameSession) error
	GetByUser(userID string) ([]models.GameSession, error)
	GetTop(limit int) ([]models.GameSession, error)
	CreateUsage(usage *models.GameSessionPowerUp) error
	GetUsagesBySession(sessionID string) ([]models.GameSessionPowerUp, error)
}
