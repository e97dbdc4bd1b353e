package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/domain/account"
)

// accountMemoryRepository is the in-memory credential store. A single write
// lock keeps signup-time duplicate checks and inserts atomic, so one writer
// at a time per email.
type accountMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*account.Account
	byEmail map[string]*account.Account
}

// NewAccountMemoryRepository creates an empty in-memory account repository.
func NewAccountMemoryRepository() account.Repository {
	return &accountMemoryRepository{
		byID:    make(map[string]*account.Account),
		byEmail: make(map[string]*account.Account),
	}
}

func (r *accountMemoryRepository) Create(a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[a.Email]; exists {
		return account.ErrAccountExists
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	stored := *a
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored
	return nil
}

func (r *accountMemoryRepository) GetByID(id string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, account.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *accountMemoryRepository) GetByEmail(email string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, account.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *accountMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
