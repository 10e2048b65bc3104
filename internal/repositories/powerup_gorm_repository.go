package repositories

import (
	"fmt"
	"pelari/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPowerUpRepository is a GORM implementation of PowerUpRepository.
type GORMPowerUpRepository struct {
	db *gorm.DB
}

// NewGORMPowerUpRepository creates a new instance of GORMPowerUpRepository.
func NewGORMPowerUpRepository(db *gorm.DB) *GORMPowerUpRepository {
	return &GORMPowerUpRepository{
		db: db,
	}
}

// GetAll retrieves the full power-up catalog.
func (r *GORMPowerUpRepository) GetAll() ([]models.PowerUp, error) {
	var powerUps []models.PowerUp
	if err := r.db.Find(&powerUps).Error; err != nil {
		return nil, fmt.Errorf("failed to get all power-ups: %w", err)
	}
	return powerUps, nil
}

// GetByID retrieves a single power-up by its ID.
func (r *GORMPowerUpRepository) GetByID(id string) (*models.PowerUp, error) {
	var powerUp models.PowerUp
	if err := r.db.First(&powerUp, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("power-up with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get power-up by ID %s: %w", id, err)
	}
	return &powerUp, nil
}

// GetByName retrieves a single power-up by its unique name.
func (r *GORMPowerUpRepository) GetByName(name string) (*models.PowerUp, error) {
	var powerUp models.PowerUp
	if err := r.db.First(&powerUp, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("power-up with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get power-up by name %s: %w", name, err)
	}
	return &powerUp, nil
}

// Create adds a new power-up to the catalog.
func (r *GORMPowerUpRepository) Create(powerUp *models.PowerUp) error {
	if powerUp.ID == "" {
		powerUp.ID = uuid.New().String()
	}
	if err := r.db.Create(powerUp).Error; err != nil {
		return fmt.Errorf("failed to create power-up: %w", err)
	}
	return nil
}
