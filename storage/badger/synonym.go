package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/storage"
)

// SynonymRepository implements storage.SynonymRepository for BadgerDB.
type SynonymRepository struct {
	backend *Backend
}

var _ storage.SynonymRepository = (*SynonymRepository)(nil)

// NewSynonymRepository creates a new SynonymRepository.
func NewSynonymRepository(backend *Backend) (*SynonymRepository, error) {
	return &SynonymRepository{
		backend: backend,
	}, nil
}

// Close releases resources. SynonymRepository has no resources to release.
func (r *SynonymRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SynonymRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SetSynonymGroup stores the synonym group for a canonical term.
func (r *SynonymRepository) SetSynonymGroup(ctx context.Context, canonical string, group []string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSynonymKey(canonical)
		if err := tx.Set(key, storage.MarshalSynonymGroup(group)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteSynonymGroup removes a synonym group by its canonical term.
func (r *SynonymRepository) DeleteSynonymGroup(ctx context.Context, canonical string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSynonymKey(canonical)
		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetSynonymTable retrieves the full synonym table.
func (r *SynonymRepository) GetSynonymTable(ctx context.Context) (core.SynonymTable, error) {
	table := core.SynonymTable{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(synonymPrefix + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			canonical := string(item.Key()[len(prefix):])

			var group []string
			if err := item.Value(func(val []byte) error {
				var err error
				group, err = storage.UnmarshalSynonymGroup(val)
				return err
			}); err != nil {
				return err
			}
			table[canonical] = group
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return table, nil
}
