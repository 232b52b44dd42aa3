package accounts

import (
	"context"
)

// Repository is the storage port every backend adapter implements. All
// adapters must expose identical observable semantics, including error kinds:
// common.ErrorNotFound, common.ErrorAlreadyExists, and
// common.ErrorStorageUnavailable for backend I/O failures (never folded into
// "not found").
type Repository interface {
	// FindByEmail returns the account stored under the normalized email,
	// or common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// Create persists a new account if and only if no account exists for its
	// normalized email. It is atomic with respect to concurrent callers: for
	// a given email at most one call succeeds, all others observe
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, account *Account) error

	// ReplaceProfile overwrites the stored profile and updatedAt stamp of the
	// account under the normalized email, or returns common.ErrorNotFound.
	// The write fully applies or the record stays unchanged.
	ReplaceProfile(ctx context.Context, email string, profile Profile) error
}
