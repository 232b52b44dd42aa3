package accounts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/linkhub/internal/common"
)

// MemoryRepository is the process-local adapter: a mutex-guarded map from
// normalized email to account. Each instance owns its own table, so tests
// can run against independent stores. Create checks and inserts under the
// write lock, which makes it atomic against concurrent registrations.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]Account)}
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &account, nil
}

func (r *MemoryRepository) Create(_ context.Context, account *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Email]; ok {
		return common.ErrorAlreadyExists
	}
	r.accounts[account.Email] = *account
	return nil
}

func (r *MemoryRepository) ReplaceProfile(_ context.Context, email string, profile Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return common.ErrorNotFound
	}
	account.Profile = profile
	account.UpdatedAt = profile.UpdatedAt
	r.accounts[email] = account
	return nil
}
