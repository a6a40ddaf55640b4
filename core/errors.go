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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a Record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidKnowledgeEntry indicates a KnowledgeEntry failed validation.
	ErrInvalidKnowledgeEntry = errors.New("invalid knowledge entry")

	// ErrInvalidChatMessage indicates a ChatMessage failed validation.
	ErrInvalidChatMessage = errors.New("invalid chat message")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyKey indicates the record Key field is empty.
	ErrEmptyKey = errors.New("record key cannot be empty")

	// ErrEmptyDisplayName indicates the document DisplayName field is empty.
	ErrEmptyDisplayName = errors.New("display name cannot be empty")

	// ErrEmptyFilename indicates the document Filename field is empty.
	ErrEmptyFilename = errors.New("filename cannot be empty")

	// ErrEmptyQuestion indicates the knowledge Question field is empty.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrEmptyAnswer indicates the knowledge Answer field is empty.
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrEmptyMessage indicates the chat message Text field is empty.
	ErrEmptyMessage = errors.New("message text cannot be empty")

	// ErrInvalidRoleType indicates an invalid RoleType value.
	ErrInvalidRoleType = errors.New("invalid role type")
)
