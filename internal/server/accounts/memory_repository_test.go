package accounts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/linkhub/internal/common"
)

func testAccount(email string) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:             "id-" + email,
		Email:          email,
		FullName:       "Ari Steele",
		PasswordDigest: "digest",
		Profile:        EmptyProfile(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(context.Background(), testAccount("ari@example.com")))

	acc, err := repo.FindByEmail(context.Background(), "ari@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ari@example.com", acc.Email)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(context.Background(), testAccount("ari@example.com")))
	err := repo.Create(context.Background(), testAccount("ari@example.com"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestMemoryRepository_ReplaceProfile(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), testAccount("ari@example.com")))

	profile := Profile{
		WorkHistory: []WorkEntry{{Company: "Acme", Title: "Engineer", Start: "2020-01"}},
		Education:   []EducationEntry{},
		Skills:      []string{"Go"},
		Interests:   []string{},
		UpdatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.ReplaceProfile(context.Background(), "ari@example.com", profile))

	acc, err := repo.FindByEmail(context.Background(), "ari@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile, acc.Profile)
	assert.Equal(t, profile.UpdatedAt, acc.UpdatedAt)

	err = repo.ReplaceProfile(context.Background(), "nobody@example.com", profile)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_InstancesAreIndependent(t *testing.T) {
	a := NewMemoryRepository()
	b := NewMemoryRepository()

	require.NoError(t, a.Create(context.Background(), testAccount("ari@example.com")))

	_, err := b.FindByEmail(context.Background(), "ari@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ConcurrentCreateSingleWinner(t *testing.T) {
	repo := NewMemoryRepository()
	testConcurrentCreateSingleWinner(t, repo)
}

// testConcurrentCreateSingleWinner races N creates on one normalized email
// and requires exactly one success; it is shared by every adapter test that
// can run without external services.
func testConcurrentCreateSingleWinner(t *testing.T, repo Repository) {
	t.Helper()

	const workers = 32

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), testAccount("race@example.com"))
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, common.ErrorAlreadyExists)
			conflicts++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, conflicts)
}
