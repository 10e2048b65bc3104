package repositories

// MockTransactionManager is a pass-through TransactionManager for tests. It
// invokes the closure against a fixed repository set with no rollback
// semantics.
type MockTransactionManager struct {
	Repos Repositories
}

// NewMockTransactionManager creates a new instance of MockTransactionManager.
func NewMockTransactionManager(repos Repositories) *MockTransactionManager {
	return &MockTransactionManager{
		Repos: repos,
	}
}

// WithinTransaction runs fn directly against the configured repositories.
func (m *MockTransactionManager) WithinTransaction(fn func(repos Repositories) error) error {
	return fn(m.Repos)
}
