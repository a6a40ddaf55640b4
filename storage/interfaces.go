package storage

import (
	"context"
	"time"

	"github.com/ranji790/SmartBuddy/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// SynonymRepository provides operations for managing synonym groups.
type SynonymRepository interface {
	Repository
	// SetSynonymGroup stores the synonym group for a canonical term,
	// replacing any existing group.
	SetSynonymGroup(ctx context.Context, canonical string, group []string) error

	// DeleteSynonymGroup removes a synonym group by its canonical term.
	// Returns ErrNotFound if the group doesn't exist.
	DeleteSynonymGroup(ctx context.Context, canonical string) error

	// GetSynonymTable retrieves the full synonym table.
	// Returns an empty table if no groups have been stored.
	GetSynonymTable(ctx context.Context) (core.SynonymTable, error)
}

// InfoRepository provides operations for categorized records and custom
// free-text categories.
type InfoRepository interface {
	Repository
	// AddRecord stores a record under a category, replacing an existing
	// record with the same key.
	AddRecord(ctx context.Context, category string, record core.Record) error

	// DeleteRecord removes a record by category and key.
	// Returns ErrNotFound if the record doesn't exist.
	DeleteRecord(ctx context.Context, category, key string) error

	// GetCategory retrieves all records of one category, ordered by key.
	// Returns an empty category if nothing is stored under the name.
	GetCategory(ctx context.Context, name string) (core.Category, error)

	// GetCategorySet retrieves every category and custom category.
	GetCategorySet(ctx context.Context) (core.CategorySet, error)

	// SetCustomCategory stores a free-text custom category, replacing any
	// existing text under the same name.
	SetCustomCategory(ctx context.Context, name, text string) error

	// DeleteCustomCategory removes a custom category by name.
	// Returns ErrNotFound if it doesn't exist.
	DeleteCustomCategory(ctx context.Context, name string) error
}

// DocumentRepository provides operations for uploaded document metadata.
type DocumentRepository interface {
	Repository
	// AddDocuments adds one or more documents to storage.
	// Generates new IDs from sequence and sets UploadedAt if unset.
	// Returns the documents with generated IDs populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// UpdateDocuments updates existing documents.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetAllDocuments retrieves every document, most recently uploaded first.
	GetAllDocuments(ctx context.Context) ([]*core.Document, error)
}

// KnowledgeRepository provides operations for curated Q&A entries and the
// unanswered-query log.
type KnowledgeRepository interface {
	Repository
	// AddEntries adds one or more knowledge entries.
	// Generates new IDs from sequence and sets timestamps.
	// Returns the entries with generated IDs populated.
	AddEntries(ctx context.Context, entries ...*core.KnowledgeEntry) ([]*core.KnowledgeEntry, error)

	// UpdateEntries updates existing entries.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any entry doesn't exist.
	UpdateEntries(ctx context.Context, entries ...*core.KnowledgeEntry) ([]*core.KnowledgeEntry, error)

	// DeleteEntries removes entries by their IDs.
	// Returns ErrNotFound if any entry doesn't exist.
	DeleteEntries(ctx context.Context, ids ...core.ID) error

	// GetEntry retrieves a single entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id core.ID) (*core.KnowledgeEntry, error)

	// GetAllEntries retrieves every knowledge entry, oldest first.
	GetAllEntries(ctx context.Context) ([]*core.KnowledgeEntry, error)

	// RecordUnanswered appends a query to the unanswered log.
	RecordUnanswered(ctx context.Context, query string, askedAt time.Time) error

	// GetUnanswered retrieves every unanswered query, oldest first.
	GetUnanswered(ctx context.Context) ([]*core.UnansweredQuery, error)

	// DeleteUnanswered removes unanswered queries by their IDs.
	// Returns ErrNotFound if any query doesn't exist.
	DeleteUnanswered(ctx context.Context, ids ...core.ID) error

	// ConvertUnanswered turns an unanswered query into a knowledge entry
	// with the given answer, removing it from the unanswered log.
	// Returns ErrNotFound if the query doesn't exist.
	ConvertUnanswered(ctx context.Context, id core.ID, answer string) (*core.KnowledgeEntry, error)
}

// ChatRepository provides operations for persisted chat sessions.
type ChatRepository interface {
	Repository
	// CreateSession creates a new empty session with a generated ID.
	CreateSession(ctx context.Context) (*core.ChatSession, error)

	// AppendMessage appends a message to a session and bumps UpdatedAt.
	// The first user message names the session unless renamed already.
	// Returns the updated session, or ErrNotFound if it doesn't exist.
	AppendMessage(ctx context.Context, sessionID string, msg core.ChatMessage) (*core.ChatSession, error)

	// RenameSession sets a session's display name.
	// Returns ErrNotFound if the session doesn't exist.
	RenameSession(ctx context.Context, sessionID, name string) error

	// GetSession retrieves a single session by ID.
	// Returns ErrNotFound if the session doesn't exist.
	GetSession(ctx context.Context, sessionID string) (*core.ChatSession, error)

	// GetSessions retrieves every session, most recently updated first.
	GetSessions(ctx context.Context) ([]*core.ChatSession, error)

	// DeleteSession removes a session by ID.
	// Returns ErrNotFound if the session doesn't exist.
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthRepository provides operations for the admin credentials singleton.
type AuthRepository interface {
	Repository
	// SaveCredentials persists the admin credentials.
	SaveCredentials(ctx context.Context, creds *core.Credentials) error

	// LoadCredentials retrieves the admin credentials.
	// Returns nil, nil if none have been stored.
	LoadCredentials(ctx context.Context) (*core.Credentials, error)
}
