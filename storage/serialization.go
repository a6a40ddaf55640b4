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


package storage

import (
	"fmt"

	"github.com/ranji790/SmartBuddy/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalRecord serializes a Record to bytes.
func MarshalRecord(record *core.Record) []byte {
	buf := make([]byte, core.RecordMUS.Size(*record))
	core.RecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalRecord deserializes a Record from bytes.
func UnmarshalRecord(data []byte) (*core.Record, error) {
	record, _, err := core.RecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}

// MarshalDocument serializes a Document to bytes.
func MarshalDocument(doc *core.Document) []byte {
	buf := make([]byte, core.DocumentMUS.Size(*doc))
	core.DocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (*core.Document, error) {
	doc, _, err := core.DocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &doc, nil
}

// MarshalKnowledgeEntry serializes a KnowledgeEntry to bytes.
func MarshalKnowledgeEntry(entry *core.KnowledgeEntry) []byte {
	buf := make([]byte, core.KnowledgeEntryMUS.Size(*entry))
	core.KnowledgeEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalKnowledgeEntry deserializes a KnowledgeEntry from bytes.
func UnmarshalKnowledgeEntry(data []byte) (*core.KnowledgeEntry, error) {
	entry, _, err := core.KnowledgeEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &entry, nil
}

// MarshalUnansweredQuery serializes an UnansweredQuery to bytes.
func MarshalUnansweredQuery(query *core.UnansweredQuery) []byte {
	buf := make([]byte, core.UnansweredQueryMUS.Size(*query))
	core.UnansweredQueryMUS.Marshal(*query, buf)
	return buf
}

// UnmarshalUnansweredQuery deserializes an UnansweredQuery from bytes.
func UnmarshalUnansweredQuery(data []byte) (*core.UnansweredQuery, error) {
	query, _, err := core.UnansweredQueryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &query, nil
}

// MarshalChatSession serializes a ChatSession to bytes.
func MarshalChatSession(session *core.ChatSession) []byte {
	buf := make([]byte, core.ChatSessionMUS.Size(*session))
	core.ChatSessionMUS.Marshal(*session, buf)
	return buf
}

// UnmarshalChatSession deserializes a ChatSession from bytes.
func UnmarshalChatSession(data []byte) (*core.ChatSession, error) {
	session, _, err := core.ChatSessionMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &session, nil
}

// MarshalCredentials serializes Credentials to bytes.
func MarshalCredentials(creds *core.Credentials) []byte {
	buf := make([]byte, core.CredentialsMUS.Size(*creds))
	core.CredentialsMUS.Marshal(*creds, buf)
	return buf
}

// UnmarshalCredentials deserializes Credentials from bytes.
func UnmarshalCredentials(data []byte) (*core.Credentials, error) {
	creds, _, err := core.CredentialsMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &creds, nil
}

// MarshalSynonymGroup serializes a synonym group to bytes.
func MarshalSynonymGroup(group []string) []byte {
	buf := make([]byte, core.SynonymGroupMUS.Size(group))
	core.SynonymGroupMUS.Marshal(group, buf)
	return buf
}

// UnmarshalSynonymGroup deserializes a synonym group from bytes.
func UnmarshalSynonymGroup(data []byte) ([]string, error) {
	group, _, err := core.SynonymGroupMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return group, nil
}
