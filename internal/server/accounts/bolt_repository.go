package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/dmitrijs2005/linkhub/internal/common"
)

const accountsBucket = "accounts"

// BoltRepository is the file-backed adapter: one bbolt file holding a single
// bucket keyed by normalized email, records JSON-encoded. bbolt admits one
// writer transaction at a time, so the read-modify-write cycle inside Create
// and ReplaceProfile is serialized and overlapping requests cannot both pass
// the uniqueness check.
type BoltRepository struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if missing) the backing file and bootstraps the
// accounts bucket.
func OpenBolt(path string) (*BoltRepository, error) {
	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(accountsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	return &BoltRepository{db: db}, nil
}

// Close closes the backing file.
func (r *BoltRepository) Close() error {
	return r.db.Close()
}

func (r *BoltRepository) Create(ctx context.Context, account *Account) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	payload, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("error encoding account: %w", err)
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(accountsBucket))
		if bucket.Get([]byte(account.Email)) != nil {
			return common.ErrorAlreadyExists
		}
		return bucket.Put([]byte(account.Email), payload)
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}
	return nil
}

func (r *BoltRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	account := &Account{}
	err := r.db.View(func(tx *bbolt.Tx) error {
		payload := tx.Bucket([]byte(accountsBucket)).Get([]byte(email))
		if payload == nil {
			return common.ErrorNotFound
		}
		return json.Unmarshal(payload, account)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}
	return account, nil
}

func (r *BoltRepository) ReplaceProfile(ctx context.Context, email string, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(accountsBucket))
		payload := bucket.Get([]byte(email))
		if payload == nil {
			return common.ErrorNotFound
		}

		account := &Account{}
		if err := json.Unmarshal(payload, account); err != nil {
			return fmt.Errorf("error decoding account: %w", err)
		}
		account.Profile = profile
		account.UpdatedAt = profile.UpdatedAt

		updated, err := json.Marshal(account)
		if err != nil {
			return fmt.Errorf("error encoding account: %w", err)
		}
		return bucket.Put([]byte(email), updated)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}
	return nil
}
