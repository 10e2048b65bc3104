package repositories

import (
	"fmt"
	"sync"

	"pelari/internal/models"

	"github.com/google/uuid"
)

// MockInventoryRepository is an in-memory implementation of InventoryRepository.
type MockInventoryRepository struct {
	entries map[string]models.UserPowerUp
	mu      sync.RWMutex
}

// NewMockInventoryRepository creates a new instance of MockInventoryRepository.
func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{
		entries: make(map[string]models.UserPowerUp),
	}
}

// GetByUser returns all inventory rows for a user.
func (r *MockInventoryRepository) GetByUser(userID string) ([]models.UserPowerUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.UserPowerUp
	for _, e := range r.entries {
		if e.UserID == userID {
			list = append(list, e)
		}
	}
	return list, nil
}

// GetByUserAndPowerUp returns the inventory row for one (user, power-up) pair.
func (r *MockInventoryRepository) GetByUserAndPowerUp(userID, powerUpID string) (*models.UserPowerUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.UserID == userID && e.PowerUpID == powerUpID {
			entry := e
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("inventory entry for user %s power-up %s: %w", userID, powerUpID, ErrNotFound)
}

// Create adds a new inventory row.
func (r *MockInventoryRepository) Create(entry *models.UserPowerUp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	r.entries[entry.ID] = *entry
	return nil
}

// Save persists changes of an existing inventory row.
func (r *MockInventoryRepository) Save(entry *models.UserPowerUp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return fmt.Errorf("inventory entry with ID %s not found for update: %w", entry.ID, ErrNotFound)
	}
	r.entries[entry.ID] = *entry
	return nil
}
