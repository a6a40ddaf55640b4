package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/storage"
)

// AuthRepository implements storage.AuthRepository for BadgerDB.
type AuthRepository struct {
	backend *Backend
}

var _ storage.AuthRepository = (*AuthRepository)(nil)

// NewAuthRepository creates a new AuthRepository.
func NewAuthRepository(backend *Backend) *AuthRepository {
	return &AuthRepository{
		backend: backend,
	}
}

// Close releases resources. AuthRepository has no resources to release.
func (r *AuthRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *AuthRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveCredentials persists the admin credentials.
func (r *AuthRepository) SaveCredentials(ctx context.Context, creds *core.Credentials) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(credentialsKey), storage.MarshalCredentials(creds)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadCredentials retrieves the admin credentials.
// Returns nil, nil if none have been stored.
func (r *AuthRepository) LoadCredentials(ctx context.Context) (*core.Credentials, error) {
	var creds *core.Credentials
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(credentialsKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			creds, unmarshalErr = storage.UnmarshalCredentials(val)
			return unmarshalErr
		})
	}, false)

	return creds, err
}
