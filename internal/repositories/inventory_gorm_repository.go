package repositories

import (
	"fmt"
	"pelari/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{
		db: db,
	}
}

// GetByUser retrieves all inventory rows for a user.
func (r *GORMInventoryRepository) GetByUser(userID string) ([]models.UserPowerUp, error) {
	var entries []models.UserPowerUp
	if err := r.db.Find(&entries, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get inventory for user %s: %w", userID, err)
	}
	return entries, nil
}

// GetByUserAndPowerUp retrieves the inventory row for one (user, power-up) pair.
func (r *GORMInventoryRepository) GetByUserAndPowerUp(userID, powerUpID string) (*models.UserPowerUp, error) {
	var entry models.UserPowerUp
	if err := r.db.First(&entry, "user_id = ? AND power_up_id = ?", userID, powerUpID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inventory entry for user %s power-up %s: %w", userID, powerUpID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get inventory entry for user %s: %w", userID, err)
	}
	return &entry, nil
}

// Create adds a new inventory row.
func (r *GORMInventoryRepository) Create(entry *models.UserPowerUp) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create inventory entry: %w", err)
	}
	return nil
}

// Save persists quantity changes of an existing inventory row.
func (r *GORMInventoryRepository) Save(entry *models.UserPowerUp) error {
	res := r.db.Save(entry)
	if res.Error != nil {
		return fmt.Errorf("failed to save inventory entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("inventory entry with ID %s not found for update: %w", entry.ID, ErrNotFound)
	}
	return nil
}
