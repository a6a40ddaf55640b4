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


package core

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeKeywords canonicalizes matching keywords: trimmed, lowercased,
// empties dropped. Every write path stores keywords in this form so that
// scoring can compare them against normalized query terms.
func NormalizeKeywords(keywords []string) []string {
	result := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		result = append(result, keyword)
	}
	return result
}

// ValidateRecord validates a Record according to domain rules.
//
// Validation rules:
//   - Key must not be empty
//
// NOT validated (forgiving by contract):
//   - Value (legacy entries may be empty; matching substitutes "")
//   - Keywords (may be empty)
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Key == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyKey)
	}

	return nil
}

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - DisplayName must not be empty
//   - Filename must not be empty
//   - UploadedAt must not be in the future
//
// NOT validated:
//   - ID (0 is valid from database sequences)
//   - Keywords (may be empty)
//   - ContentPath (opaque, resolved by the presentation layer)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.DisplayName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDisplayName)
	}

	if doc.Filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyFilename)
	}

	if !doc.UploadedAt.IsZero() && !IsValidTimestamp(doc.UploadedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateKnowledgeEntry validates a KnowledgeEntry according to domain rules.
func ValidateKnowledgeEntry(entry *KnowledgeEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidKnowledgeEntry)
	}

	if entry.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidKnowledgeEntry, ErrEmptyQuestion)
	}

	if entry.Answer == "" {
		return fmt.Errorf("%w: %w", ErrInvalidKnowledgeEntry, ErrEmptyAnswer)
	}

	return nil
}

// ValidateChatMessage validates a ChatMessage according to domain rules.
func ValidateChatMessage(msg *ChatMessage) error {
	if msg == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidChatMessage)
	}

	if msg.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, ErrEmptyMessage)
	}

	if err := ValidateRoleType(msg.Role); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, err)
	}

	return nil
}

// ValidateRoleType validates that a RoleType has a valid value.
func ValidateRoleType(role RoleType) error {
	if role != RoleUser && role != RoleAssistant {
		return fmt.Errorf("%w: value %d", ErrInvalidRoleType, role)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
