package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/storage"
)

// KnowledgeRepository implements storage.KnowledgeRepository for BadgerDB.
// It also satisfies the engine's unanswered-query recorder contract.
type KnowledgeRepository struct {
	backend  *Backend
	idSeq    *badger.Sequence
	querySeq *badger.Sequence
}

var _ storage.KnowledgeRepository = (*KnowledgeRepository)(nil)

// NewKnowledgeRepository creates a new KnowledgeRepository.
func NewKnowledgeRepository(backend *Backend) (*KnowledgeRepository, error) {
	idSeq, err := backend.GetSequence(knowledgeIDSeq)
	if err != nil {
		return nil, err
	}

	querySeq, err := backend.GetSequence(unansweredIDSeq)
	if err != nil {
		idSeq.Release()
		return nil, err
	}

	return &KnowledgeRepository{
		backend:  backend,
		idSeq:    idSeq,
		querySeq: querySeq,
	}, nil
}

// Close releases the ID sequences.
func (r *KnowledgeRepository) Close() error {
	err := r.idSeq.Release()
	if qErr := r.querySeq.Release(); err == nil {
		err = qErr
	}
	return err
}

// WithTransaction delegates to the backend.
func (r *KnowledgeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEntries adds one or more knowledge entries.
func (r *KnowledgeRepository) AddEntries(ctx context.Context, entries ...*core.KnowledgeEntry) ([]*core.KnowledgeEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			id, err := r.nextID(r.idSeq)
			if err != nil {
				return err
			}
			entry.Id = id

			entry.CreatedAt = time.Now().UTC()
			entry.UpdatedAt = entry.CreatedAt

			key := makeKnowledgeKey(entry.Id)
			if err := tx.Set(key, storage.MarshalKnowledgeEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// UpdateEntries updates existing entries.
func (r *KnowledgeRepository) UpdateEntries(ctx context.Context, entries ...*core.KnowledgeEntry) ([]*core.KnowledgeEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			key := makeKnowledgeKey(entry.Id)

			old, err := r.readEntry(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			entry.CreatedAt = old.CreatedAt
			entry.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalKnowledgeEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// DeleteEntries removes entries by their IDs.
func (r *KnowledgeRepository) DeleteEntries(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeKnowledgeKey(id)
			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEntry retrieves a single entry by ID.
func (r *KnowledgeRepository) GetEntry(ctx context.Context, id core.ID) (*core.KnowledgeEntry, error) {
	var result *core.KnowledgeEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readEntry(tx, makeKnowledgeKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAllEntries retrieves every knowledge entry, oldest first.
func (r *KnowledgeRepository) GetAllEntries(ctx context.Context) ([]*core.KnowledgeEntry, error) {
	var results []*core.KnowledgeEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Keys carry BigEndian IDs, so forward iteration is insertion order
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(knowledgePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry *core.KnowledgeEntry
			if err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				entry, unmarshalErr = storage.UnmarshalKnowledgeEntry(val)
				return unmarshalErr
			}); err != nil {
				return err
			}
			results = append(results, entry)
		}
		return nil
	}, false)

	return results, err
}

// RecordUnanswered appends a query to the unanswered log.
func (r *KnowledgeRepository) RecordUnanswered(ctx context.Context, query string, askedAt time.Time) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		id, err := r.nextID(r.querySeq)
		if err != nil {
			return err
		}

		unanswered := &core.UnansweredQuery{
			Id:      id,
			Query:   query,
			AskedAt: askedAt,
		}
		key := makeUnansweredKey(unanswered.Id)
		if err := tx.Set(key, storage.MarshalUnansweredQuery(unanswered)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetUnanswered retrieves every unanswered query, oldest first.
func (r *KnowledgeRepository) GetUnanswered(ctx context.Context) ([]*core.UnansweredQuery, error) {
	var results []*core.UnansweredQuery
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(unansweredPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var query *core.UnansweredQuery
			if err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				query, unmarshalErr = storage.UnmarshalUnansweredQuery(val)
				return unmarshalErr
			}); err != nil {
				return err
			}
			results = append(results, query)
		}
		return nil
	}, false)

	return results, err
}

// DeleteUnanswered removes unanswered queries by their IDs.
func (r *KnowledgeRepository) DeleteUnanswered(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeUnansweredKey(id)
			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ConvertUnanswered turns an unanswered query into a knowledge entry.
func (r *KnowledgeRepository) ConvertUnanswered(ctx context.Context, id core.ID, answer string) (*core.KnowledgeEntry, error) {
	var entry *core.KnowledgeEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeUnansweredKey(id)
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var query *core.UnansweredQuery
		if err := item.Value(func(val []byte) error {
			var unmarshalErr error
			query, unmarshalErr = storage.UnmarshalUnansweredQuery(val)
			return unmarshalErr
		}); err != nil {
			return err
		}

		entryID, err := r.nextID(r.idSeq)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		entry = &core.KnowledgeEntry{
			Id:        entryID,
			Question:  query.Query,
			Answer:    answer,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Set(makeKnowledgeKey(entry.Id), storage.MarshalKnowledgeEntry(entry)); err != nil {
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return entry, nil
}

// nextID draws the next ID from a sequence.
func (r *KnowledgeRepository) nextID(seq *badger.Sequence) (core.ID, error) {
	next, err := seq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if next == 0 {
		next, err = seq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(next), nil
}

// readEntry reads a knowledge entry from the transaction.
func (r *KnowledgeRepository) readEntry(tx *badger.Txn, key []byte) (*core.KnowledgeEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.KnowledgeEntry
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		entry, unmarshalErr = storage.UnmarshalKnowledgeEntry(val)
		return unmarshalErr
	})
	return entry, err
}
