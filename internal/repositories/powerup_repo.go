package repositories

import "pelari/internal/models"

// PowerUpRepository defines the interface for power-up catalog access.
// The catalog is read-only at request time; Create exists for seeding.
type PowerUpRepository interface {
	GetAll() ([]models.PowerUp, error)
	GetByID(id string) (*models.PowerUp, error)
	GetByName(name string) (*models.PowerUp, error)
	Create(powerUp *models.PowerUp) error
}
