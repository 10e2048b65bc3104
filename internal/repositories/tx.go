package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// Repositories bundles the repository set handed to a transactional closure.
// Every repository in the bundle operates on the same transaction handle, so
// either all writes inside the closure commit or none do.
type Repositories struct {
	Users     UserRepository
	PowerUps  PowerUpRepository
	Inventory InventoryRepository
	Sessions  SessionRepository
}

// TransactionManager runs a unit of work inside one atomic transaction scope.
type TransactionManager interface {
	WithinTransaction(fn func(repos Repositories) error) error
}

// GORMTransactionManager implements TransactionManager on top of GORM's
// transaction support.
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager creates a new instance of GORMTransactionManager.
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{
		db: db,
	}
}

// WithinTransaction opens a database transaction, rebinds the repository set
// to it and invokes fn. A non-nil error from fn rolls everything back.
func (m *GORMTransactionManager) WithinTransaction(fn func(repos Repositories) error) error {
	err := m.db.Transaction(func(tx *gorm.DB) error {
		return fn(Repositories{
			Users:     NewGORMUserRepository(tx),
			PowerUps:  NewGORMPowerUpRepository(tx),
			Inventory: NewGORMInventoryRepository(tx),
			Sessions:  NewGORMSessionRepository(tx),
		})
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
