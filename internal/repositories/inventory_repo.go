package repositories

import "pelari/internal/models"

// InventoryRepository defines the interface for per-user power-up inventory
// access. At most one row exists per (user, power-up) pair.
type InventoryRepository interface {
	GetByUser(userID string) ([]models.UserPowerUp, error)
	GetByUserAndPowerUp(userID, powerUpID string) (*models.UserPowerUp, error)
	Create(entry *models.UserPowerUp) error
	Save(entry *models.UserPowerUp) error
}
