package repositories

import (
	"sort"
	"sync"

	"pelari/internal/models"

	"github.com/google/uuid"
)

// MockSessionRepository is an in-memory implementation of SessionRepository.
type MockSessionRepository struct {
	sessions []models.GameSession
	usages   []models.GameSessionPowerUp
	mu       sync.RWMutex
}

// NewMockSessionRepository creates a new instance of MockSessionRepository.
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create appends a new game session.
func (r *MockSessionRepository) Create(session *models.GameSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	r.sessions = append(r.sessions, *session)
	return nil
}

// GetByUser returns the user's sessions ordered by score descending,
// earlier-recorded first among equals.
func (r *MockSessionRepository) GetByUser(userID string) ([]models.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.GameSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			list = append(list, s)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
	return list, nil
}

// GetTop returns up to limit sessions ordered by score descending.
func (r *MockSessionRepository) GetTop(limit int) ([]models.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.GameSession, len(r.sessions))
	copy(list, r.sessions)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// CreateUsage records a power-up activation for a session.
func (r *MockSessionRepository) CreateUsage(usage *models.GameSessionPowerUp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if usage.ID == "" {
		usage.ID = uuid.New().String()
	}
	r.usages = append(r.usages, *usage)
	return nil
}

// GetUsagesBySession returns the usages recorded for one session.
func (r *MockSessionRepository) GetUsagesBySession(sessionID string) ([]models.GameSessionPowerUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.GameSessionPowerUp
	for _, u := range r.usages {
		if u.GameSessionID == sessionID {
			list = append(list, u)
		}
	}
	return list, nil
}
