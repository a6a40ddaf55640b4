package auth

import (
	"context"

	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/storage"
)

const (
	// DefaultPassword is the admin password seeded on first run.
	DefaultPassword = "123"

	// DefaultHint is the hint stored alongside the seeded password.
	DefaultHint = "Default password is 123"
)

// Service manages admin credentials on top of an AuthRepository.
type Service struct {
	repo storage.AuthRepository
}

// NewService creates a new credentials service.
func NewService(repo storage.AuthRepository) (*Service, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	return &Service{repo: repo}, nil
}

// EnsureDefault stores the default credentials if none exist yet.
func (s *Service) EnsureDefault(ctx context.Context) error {
	creds, err := s.repo.LoadCredentials(ctx)
	if err != nil {
		return err
	}
	if creds != nil {
		return nil
	}

	hash, err := HashPassword(DefaultPassword)
	if err != nil {
		return err
	}
	return s.repo.SaveCredentials(ctx, &core.Credentials{
		PasswordHash: hash,
		PasswordHint: DefaultHint,
	})
}

// Login checks a password against the stored credentials.
// Returns false without error when no credentials are stored.
func (s *Service) Login(ctx context.Context, password string) (bool, error) {
	creds, err := s.repo.LoadCredentials(ctx)
	if err != nil {
		return false, err
	}
	if creds == nil {
		return false, nil
	}
	return VerifyPassword(creds.PasswordHash, password)
}

// SetPassword replaces the admin password and hint.
func (s *Service) SetPassword(ctx context.Context, password, hint string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.SaveCredentials(ctx, &core.Credentials{
		PasswordHash: hash,
		PasswordHint: hint,
	})
}

// Hint returns the stored password hint, empty when none is set.
func (s *Service) Hint(ctx context.Context) (string, error) {
	creds, err := s.repo.LoadCredentials(ctx)
	if err != nil {
		return "", err
	}
	if creds == nil {
		return "", nil
	}
	return creds.PasswordHint, nil
}
