package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/storage"
)

// InfoRepository implements storage.InfoRepository for BadgerDB.
type InfoRepository struct {
	backend *Backend
}

var _ storage.InfoRepository = (*InfoRepository)(nil)

// NewInfoRepository creates a new InfoRepository.
func NewInfoRepository(backend *Backend) (*InfoRepository, error) {
	return &InfoRepository{
		backend: backend,
	}, nil
}

// Close releases resources. InfoRepository has no resources to release.
func (r *InfoRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *InfoRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddRecord stores a record under a category.
func (r *InfoRepository) AddRecord(ctx context.Context, category string, record core.Record) error {
	if err := core.ValidateRecord(&record); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeInfoRecordKey(category, record.Key)
		if err := tx.Set(key, storage.MarshalRecord(&record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteRecord removes a record by category and key.
func (r *InfoRepository) DeleteRecord(ctx context.Context, category, recordKey string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeInfoRecordKey(category, recordKey)
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

// GetCategory retrieves all records of one category, ordered by key.
func (r *InfoRepository) GetCategory(ctx context.Context, name string) (core.Category, error) {
	category := core.Category{Name: name}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialInfoRecordKey(name)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			record, err := readRecord(iter.Item())
			if err != nil {
				return err
			}
			category.Records = append(category.Records, *record)
		}
		return nil
	}, false)

	return category, err
}

// GetCategorySet retrieves every category and custom category.
func (r *InfoRepository) GetCategorySet(ctx context.Context) (core.CategorySet, error) {
	set := core.CategorySet{
		Categories: map[string]core.Category{},
		Custom:     map[string]string{},
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Categorized records
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(infoRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			name, ok := parseInfoRecordCategory(item.Key())
			if !ok {
				continue
			}
			record, err := readRecord(item)
			if err != nil {
				iter.Close()
				return err
			}
			category := set.Categories[name]
			category.Name = name
			category.Records = append(category.Records, *record)
			set.Categories[name] = category
		}
		iter.Close()

		// Custom free-text categories
		opts = badger.DefaultIteratorOptions
		opts.Prefix = []byte(customPrefix + ":")
		iter = tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			name, ok := parseCustomName(item.Key())
			if !ok {
				continue
			}
			text, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			set.Custom[name] = string(text)
		}
		return nil
	}, false)

	if err != nil {
		return core.CategorySet{}, err
	}

	return set, nil
}

// SetCustomCategory stores a free-text custom category. The name is the
// lookup key and must not be empty.
func (r *InfoRepository) SetCustomCategory(ctx context.Context, name, text string) error {
	if name == "" {
		return core.ErrEmptyKey
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeCustomKey(name), []byte(text)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteCustomCategory removes a custom category by name.
func (r *InfoRepository) DeleteCustomCategory(ctx context.Context, name string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCustomKey(name)
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

// readRecord reads a record from an iterator item.
func readRecord(item *badger.Item) (*core.Record, error) {
	var record *core.Record
	err := item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalRecord(val)
		return unmarshalErr
	})
	return record, err
}
