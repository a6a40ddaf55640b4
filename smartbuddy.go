// Copyright 2026 The SmartBuddy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package smartbuddy bundles storage, the query engine, and admin
// services behind a single Assistant facade.
package smartbuddy

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/ranji790/SmartBuddy/auth"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/engine"
	"github.com/ranji790/SmartBuddy/ingest"
	"github.com/ranji790/SmartBuddy/storage"
	"github.com/ranji790/SmartBuddy/storage/badger"
)

// Assistant owns the storage backend, repositories, and the query router.
type Assistant struct {
	backend       *badger.Backend
	synonymRepo   storage.SynonymRepository
	infoRepo      storage.InfoRepository
	documentRepo  storage.DocumentRepository
	knowledgeRepo storage.KnowledgeRepository
	chatRepo      storage.ChatRepository
	authRepo      storage.AuthRepository
	router        *engine.Router
	authService   *auth.Service
	logger        *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	inMemory bool
	logger   *slog.Logger
}

// WithInMemory opens the backing store in memory. Used in tests.
func WithInMemory() AssistantOption {
	return func(o *assistantOptions) {
		o.inMemory = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(o *assistantOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// Open creates an Assistant backed by a database at filePath.
// Seeds the default admin credentials on first open.
func Open(filePath string, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	synonymRepo, err := badger.NewSynonymRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	infoRepo, err := badger.NewInfoRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	documentRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	knowledgeRepo, err := badger.NewKnowledgeRepository(backend)
	if err != nil {
		documentRepo.Close()
		backend.Close()
		return nil, err
	}

	chatRepo, err := badger.NewChatRepository(backend)
	if err != nil {
		knowledgeRepo.Close()
		documentRepo.Close()
		backend.Close()
		return nil, err
	}

	authRepo := badger.NewAuthRepository(backend)

	router, err := engine.NewRouter(knowledgeRepo, engine.WithLogger(options.logger))
	if err != nil {
		knowledgeRepo.Close()
		documentRepo.Close()
		backend.Close()
		return nil, err
	}

	authService, err := auth.NewService(authRepo)
	if err != nil {
		knowledgeRepo.Close()
		documentRepo.Close()
		backend.Close()
		return nil, err
	}
	if err := authService.EnsureDefault(context.Background()); err != nil {
		knowledgeRepo.Close()
		documentRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Assistant{
		backend:       backend,
		synonymRepo:   synonymRepo,
		infoRepo:      infoRepo,
		documentRepo:  documentRepo,
		knowledgeRepo: knowledgeRepo,
		chatRepo:      chatRepo,
		authRepo:      authRepo,
		router:        router,
		authService:   authService,
		logger:        options.logger,
	}, nil
}

// Close closes all repositories and the backing database.
func (a *Assistant) Close() error {
	if err := a.documentRepo.Close(); err != nil {
		a.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := a.knowledgeRepo.Close(); err != nil {
		a.logger.Error("error closing knowledge repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Snapshot loads the full engine snapshot from storage.
func (a *Assistant) Snapshot(ctx context.Context) (*engine.Snapshot, error) {
	synonyms, err := a.synonymRepo.GetSynonymTable(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := a.infoRepo.GetCategorySet(ctx)
	if err != nil {
		return nil, err
	}
	documents, err := a.documentRepo.GetAllDocuments(ctx)
	if err != nil {
		return nil, err
	}
	knowledge, err := a.knowledgeRepo.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	return &engine.Snapshot{
		Synonyms:   synonyms,
		Categories: categories,
		Documents:  documents,
		Knowledge:  knowledge,
	}, nil
}

// Ask answers a single query against the current stored data.
func (a *Assistant) Ask(ctx context.Context, query string) (*core.Response, error) {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return a.router.Respond(ctx, query, snap)
}

// AskInSession answers a query and records both sides of the exchange in
// a chat session.
func (a *Assistant) AskInSession(ctx context.Context, sessionID, query string) (*core.Response, error) {
	resp, err := a.Ask(ctx, query)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := a.chatRepo.AppendMessage(ctx, sessionID, core.ChatMessage{
		Role:      core.RoleUser,
		Text:      query,
		Timestamp: now,
	}); err != nil {
		return nil, err
	}
	if _, err := a.chatRepo.AppendMessage(ctx, sessionID, core.ChatMessage{
		Role:      core.RoleAssistant,
		Text:      resp.Message,
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	return resp, nil
}

// NewIngestionPipeline creates a document ingestion pipeline writing into
// uploadDir.
func (a *Assistant) NewIngestionPipeline(uploadDir string, opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(a.documentRepo, uploadDir, opts...)
}

// SynonymRepository returns the synonym repository.
func (a *Assistant) SynonymRepository() storage.SynonymRepository {
	return a.synonymRepo
}

// InfoRepository returns the info repository.
func (a *Assistant) InfoRepository() storage.InfoRepository {
	return a.infoRepo
}

// DocumentRepository returns the document repository.
func (a *Assistant) DocumentRepository() storage.DocumentRepository {
	return a.documentRepo
}

// KnowledgeRepository returns the knowledge repository.
func (a *Assistant) KnowledgeRepository() storage.KnowledgeRepository {
	return a.knowledgeRepo
}

// ChatRepository returns the chat repository.
func (a *Assistant) ChatRepository() storage.ChatRepository {
	return a.chatRepo
}

// Auth returns the credentials service.
func (a *Assistant) Auth() *auth.Service {
	return a.authService
}

// ExportData is the JSON shape produced by Export.
type ExportData struct {
	Synonyms   core.SynonymTable        `json:"synonyms"`
	Categories map[string]core.Category `json:"categories"`
	Custom     map[string]string        `json:"custom_categories"`
	Documents  []*core.Document         `json:"documents"`
	Knowledge  []*core.KnowledgeEntry   `json:"knowledge_base"`
	Unanswered []*core.UnansweredQuery  `json:"unanswered_queries"`
	Sessions   []*core.ChatSession      `json:"chat_sessions"`
}

// Export writes all stored data as indented JSON.
func (a *Assistant) Export(ctx context.Context, w io.Writer) error {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return err
	}
	unanswered, err := a.knowledgeRepo.GetUnanswered(ctx)
	if err != nil {
		return err
	}
	sessions, err := a.chatRepo.GetSessions(ctx)
	if err != nil {
		return err
	}

	data := ExportData{
		Synonyms:   snap.Synonyms,
		Categories: snap.Categories.Categories,
		Custom:     snap.Categories.Custom,
		Documents:  snap.Documents,
		Knowledge:  snap.Knowledge,
		Unanswered: unanswered,
		Sessions:   sessions,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
