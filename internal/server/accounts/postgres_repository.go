package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/linkhub/internal/common"
)

// pgUniqueViolation is the PostgreSQL error code raised when an insert hits
// a unique constraint (class 23, "integrity constraint violation").
const pgUniqueViolation = "23505"

// PostgresRepository is the relational adapter, backed by database/sql over
// the pgx stdlib driver. Uniqueness is enforced by the primary key on the
// email column, so two adapter instances in separate processes can race on
// the same email and the database still admits only one row.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *Account) error {
	profile, err := json.Marshal(account.Profile)
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}

	query :=
		`INSERT INTO accounts (email, id, full_name, headline, password_digest, profile, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err = r.db.ExecContext(ctx, query,
		account.Email, account.ID, account.FullName, account.Headline,
		account.PasswordDigest, profile, account.CreatedAt, account.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	return nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query :=
		`SELECT email, id, full_name, headline, password_digest, profile, created_at, updated_at FROM accounts
		 WHERE email = $1
		 `

	account := &Account{}
	var profile []byte
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.Email, &account.ID, &account.FullName, &account.Headline,
		&account.PasswordDigest, &profile, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &account.Profile); err != nil {
			return nil, fmt.Errorf("error decoding profile: %w", err)
		}
	} else {
		account.Profile = EmptyProfile()
	}

	return account, nil
}

func (r *PostgresRepository) ReplaceProfile(ctx context.Context, email string, profile Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}

	query :=
		`UPDATE accounts SET profile = $1, updated_at = $2
		 WHERE email = $3
		 `

	res, err := r.db.ExecContext(ctx, query, payload, profile.UpdatedAt, email)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
