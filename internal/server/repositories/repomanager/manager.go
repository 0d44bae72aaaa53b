// Package repomanager selects and owns the user store backend: an in-memory
// store when no DSN is configured, PostgreSQL otherwise.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
)

// RepositoryManager vends the user repository and owns its lifecycle.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Close() error
}

// Open returns an in-memory manager for an empty dsn, or connects to
// PostgreSQL, verifies the connection and applies migrations.
func Open(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewInMemoryRepositoryManager(), nil
	}
	m, err := OpenPostgres(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// InMemoryRepositoryManager keeps all data in process memory; nothing
// survives a restart.
type InMemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *InMemoryRepositoryManager) Close() error { return nil }
