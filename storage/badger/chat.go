package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/storage"
)

// sessionNameLimit is the number of leading characters of the first user
// message used as the auto-generated session name.
const sessionNameLimit = 30

// ChatRepository implements storage.ChatRepository for BadgerDB.
type ChatRepository struct {
	backend *Backend
}

var _ storage.ChatRepository = (*ChatRepository)(nil)

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(backend *Backend) (*ChatRepository, error) {
	return &ChatRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ChatRepository has no resources to release.
func (r *ChatRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ChatRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// CreateSession creates a new empty session with a generated ID.
func (r *ChatRepository) CreateSession(ctx context.Context) (*core.ChatSession, error) {
	now := time.Now().UTC()
	session := &core.ChatSession{
		Id:        uuid.NewString(),
		Name:      "New Chat",
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(session.Id)
		if err := tx.Set(key, storage.MarshalChatSession(session)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return session, nil
}

// AppendMessage appends a message to a session and bumps UpdatedAt.
func (r *ChatRepository) AppendMessage(ctx context.Context, sessionID string, msg core.ChatMessage) (*core.ChatSession, error) {
	var session *core.ChatSession
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(sessionID)
		var err error
		session, err = r.readSession(tx, key)
		if err != nil {
			return err
		}
		if session == nil {
			return storage.ErrNotFound
		}

		if msg.Timestamp.IsZero() {
			msg.Timestamp = time.Now().UTC()
		}
		session.Messages = append(session.Messages, msg)
		session.UpdatedAt = time.Now().UTC()

		// First user message names the session unless renamed already
		if session.Name == "New Chat" && msg.Role == core.RoleUser {
			session.Name = sessionNameFor(msg.Text)
		}

		if err := tx.Set(key, storage.MarshalChatSession(session)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return session, nil
}

// RenameSession sets a session's display name.
func (r *ChatRepository) RenameSession(ctx context.Context, sessionID, name string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(sessionID)
		session, err := r.readSession(tx, key)
		if err != nil {
			return err
		}
		if session == nil {
			return storage.ErrNotFound
		}

		session.Name = name
		session.UpdatedAt = time.Now().UTC()

		if err := tx.Set(key, storage.MarshalChatSession(session)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetSession retrieves a single session by ID.
func (r *ChatRepository) GetSession(ctx context.Context, sessionID string) (*core.ChatSession, error) {
	var result *core.ChatSession
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readSession(tx, makeSessionKey(sessionID))
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

// GetSessions retrieves every session, most recently updated first.
func (r *ChatRepository) GetSessions(ctx context.Context) ([]*core.ChatSession, error) {
	var results []*core.ChatSession
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var session *core.ChatSession
			if err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				session, unmarshalErr = storage.UnmarshalChatSession(val)
				return unmarshalErr
			}); err != nil {
				return err
			}
			results = append(results, session)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Session keys are UUIDs, so order comes from sorting, not the scan
	slices.SortFunc(results, func(a, b *core.ChatSession) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return results, nil
}

// DeleteSession removes a session by ID.
func (r *ChatRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(sessionID)
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

// sessionNameFor derives a session name from the first user message.
func sessionNameFor(text string) string {
	runes := []rune(text)
	if len(runes) <= sessionNameLimit {
		return text
	}
	return string(runes[:sessionNameLimit]) + "..."
}

// readSession reads a chat session from the transaction.
func (r *ChatRepository) readSession(tx *badger.Txn, key []byte) (*core.ChatSession, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var session *core.ChatSession
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		session, unmarshalErr = storage.UnmarshalChatSession(val)
		return unmarshalErr
	})
	return session, err
}
