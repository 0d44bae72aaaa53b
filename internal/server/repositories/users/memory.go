package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// MemoryRepository keeps users in process memory.
//
// One RWMutex guards the record slice, both indexes and the id counter, so
// the uniqueness check, id allocation and append in Insert happen in a
// single critical section. Records are immutable once appended and are
// handed out as copies.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   []models.User
	byID    map[int64]int
	byLogin map[string]int
	nextID  int64
}

// NewMemoryRepository returns an empty store whose first id is 1.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[int64]int),
		byLogin: make(map[string]int),
		nextID:  1,
	}
}

func (r *MemoryRepository) SelectAll(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.User, len(r.users))
	for i := range r.users {
		u := r.users[i]
		out[i] = &u
	}
	return out, nil
}

func (r *MemoryRepository) SelectByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.users[i]
	return &u, nil
}

func (r *MemoryRepository) SelectByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.users[i]
	return &u, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, login, hash, salt string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byLogin[login]; taken {
		return 0, common.ErrorLoginAlreadyUsed
	}

	id := r.nextID
	r.users = append(r.users, models.User{ID: id, Login: login, Hash: hash, Salt: salt})
	r.byID[id] = len(r.users) - 1
	r.byLogin[login] = len(r.users) - 1
	r.nextID++

	return id, nil
}
