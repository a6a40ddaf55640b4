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


package badger

import "github.com/ranji790/SmartBuddy/storage"

// MemoryRepositories bundles in-memory repositories for testing.
// Caller must Close the bundle when done.
type MemoryRepositories struct {
	Synonyms  storage.SynonymRepository
	Info      storage.InfoRepository
	Documents storage.DocumentRepository
	Knowledge storage.KnowledgeRepository
	Chat      storage.ChatRepository
	Auth      storage.AuthRepository

	backend *Backend
}

// NewMemoryRepositories creates in-memory repositories for testing.
func NewMemoryRepositories() (*MemoryRepositories, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	synonyms, err := NewSynonymRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	info, err := NewInfoRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	documents, err := NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	knowledge, err := NewKnowledgeRepository(backend)
	if err != nil {
		documents.Close()
		backend.Close()
		return nil, err
	}

	chat, err := NewChatRepository(backend)
	if err != nil {
		knowledge.Close()
		documents.Close()
		backend.Close()
		return nil, err
	}

	return &MemoryRepositories{
		Synonyms:  synonyms,
		Info:      info,
		Documents: documents,
		Knowledge: knowledge,
		Chat:      chat,
		Auth:      NewAuthRepository(backend),
		backend:   backend,
	}, nil
}

// Close closes all repositories and the backing database.
func (m *MemoryRepositories) Close() error {
	m.Documents.Close()
	m.Knowledge.Close()
	return m.backend.Close()
}
