// Package accounts holds the account domain: the stored model, the storage
// port with its backend adapters, and the service implementing registration,
// sign-in, and profile management on top of any adapter.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/dmitrijs2005/linkhub/internal/cryptox"
	"github.com/dmitrijs2005/linkhub/internal/server/auth"
	"github.com/dmitrijs2005/linkhub/internal/server/config"
)

// Service implements the account operations over an injected Repository.
// It owns validation, email normalization, credential hashing, and session
// token issuance; adapters own nothing but persistence.
type Service struct {
	repo          Repository
	hasher        cryptox.Hasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, hasher cryptox.Hasher, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.SessionTokenValidity,
	}
}

// NormalizeEmail canonicalizes an email for lookup and uniqueness:
// trimmed and lowercased. It is the only normalization the service applies.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register creates a new account. Returns common.ErrorValidation when a
// required field is missing and common.ErrorAlreadyExists when an account
// with the same normalized email is already stored.
func (s *Service) Register(ctx context.Context, fullName, email, password, headline string) (*PublicView, error) {
	err := validation.Errors{
		"fullName": validation.Validate(strings.TrimSpace(fullName), validation.Required),
		"email":    validation.Validate(strings.TrimSpace(email), validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	now := time.Now().UTC()
	account := &Account{
		ID:             uuid.NewString(),
		Email:          NormalizeEmail(email),
		FullName:       strings.TrimSpace(fullName),
		Headline:       strings.TrimSpace(headline),
		PasswordDigest: digest,
		Profile:        EmptyProfile(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	view := account.PublicView()
	return &view, nil
}

// SignIn verifies credentials and issues a session token. Unknown email and
// wrong password both return common.ErrorInvalidCredentials; callers cannot
// tell them apart.
func (s *Service) SignIn(ctx context.Context, email, password string) (*PublicView, Profile, string, error) {
	err := validation.Errors{
		"email":    validation.Validate(strings.TrimSpace(email), validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
	if err != nil {
		return nil, Profile{}, "", fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	account, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, Profile{}, "", common.ErrorInvalidCredentials
		}
		return nil, Profile{}, "", err
	}

	if err := s.hasher.Compare(account.PasswordDigest, password); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return nil, Profile{}, "", common.ErrorInvalidCredentials
		}
		return nil, Profile{}, "", fmt.Errorf("error comparing digest: %w", err)
	}

	token, err := auth.GenerateToken(account.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, Profile{}, "", fmt.Errorf("error issuing session token: %w", err)
	}

	view := account.PublicView()
	return &view, account.Profile, token, nil
}

// UpdateProfile replaces the whole stored profile (no merge): omitted
// sequences become empty, tag sets are de-duplicated preserving insertion
// order, and updatedAt is stamped fresh. Returns common.ErrorNotFound when
// no account exists for the email.
func (s *Service) UpdateProfile(ctx context.Context, email string, profile Profile) error {
	if validation.Validate(strings.TrimSpace(email), validation.Required) != nil {
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	return s.repo.ReplaceProfile(ctx, NormalizeEmail(email), normalizeProfile(profile, time.Now().UTC()))
}

// GetProfile returns the stored profile data for an account.
func (s *Service) GetProfile(ctx context.Context, email string) (Profile, error) {
	if validation.Validate(strings.TrimSpace(email), validation.Required) != nil {
		return Profile{}, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	account, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return Profile{}, err
	}
	return account.Profile, nil
}

func normalizeProfile(p Profile, now time.Time) Profile {
	if p.WorkHistory == nil {
		p.WorkHistory = []WorkEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	p.Skills = dedupeTags(p.Skills)
	p.Interests = dedupeTags(p.Interests)
	p.UpdatedAt = now
	return p
}

// dedupeTags drops repeated tags, keeping first occurrence order.
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
