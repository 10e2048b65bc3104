package repositories

import (
	"fmt"
	"sync"

	"pelari/internal/models"

	"github.com/google/uuid"
)

// MockPowerUpRepository is an in-memory implementation of PowerUpRepository.
type MockPowerUpRepository struct {
	powerUps map[string]models.PowerUp
	mu       sync.RWMutex
}

// NewMockPowerUpRepository creates a new instance of MockPowerUpRepository.
func NewMockPowerUpRepository() *MockPowerUpRepository {
	return &MockPowerUpRepository{
		powerUps: make(map[string]models.PowerUp),
	}
}

// GetAll returns the full catalog.
func (r *MockPowerUpRepository) GetAll() ([]models.PowerUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.PowerUp, 0, len(r.powerUps))
	for _, p := range r.powerUps {
		list = append(list, p)
	}
	return list, nil
}

// GetByID returns a power-up by its ID.
func (r *MockPowerUpRepository) GetByID(id string) (*models.PowerUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	powerUp, ok := r.powerUps[id]
	if !ok {
		return nil, fmt.Errorf("power-up with ID %s: %w", id, ErrNotFound)
	}
	return &powerUp, nil
}

// GetByName returns a power-up by its unique name.
func (r *MockPowerUpRepository) GetByName(name string) (*models.PowerUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.powerUps {
		if p.Name == name {
			powerUp := p
			return &powerUp, nil
		}
	}
	return nil, fmt.Errorf("power-up with name %s: %w", name, ErrNotFound)
}

// Create adds a new power-up.
func (r *MockPowerUpRepository) Create(powerUp *models.PowerUp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if powerUp.ID == "" {
		powerUp.ID = uuid.New().String()
	}
	r.powerUps[powerUp.ID] = *powerUp
	return nil
}
