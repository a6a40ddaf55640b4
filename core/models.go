package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SynonymTable maps a canonical term to its synonym group. A term belongs
// to a group if it equals the canonical key or appears in the group.
// Expansion is single-hop: a term pulled in by one group is never
// re-expanded through another.
type SynonymTable map[string][]string

// Record is one administrator-entered unit of information inside a
// category. Legacy entries may carry only a Value; Keywords may be empty
// and matching must tolerate both shapes.
type Record struct {
	Key      string
	Value    string
	Keywords []string
}

// Category is a named keyed collection of records.
type Category struct {
	Name    string
	Records []Record
}

// CategorySet is the full informational snapshot handed to the engine.
// Categories holds the standard keyed categories (exam_dates, faculty,
// schedule, events, ...). Custom holds free-text blocks that match by
// name only and short-circuit scoring.
type CategorySet struct {
	Categories map[string]Category
	Custom     map[string]string
}

// Document describes an uploaded file. The engine only ever reads the
// metadata; ContentPath is an opaque handle resolved by the presentation
// layer.
type Document struct {
	Id          ID
	DisplayName string
	Filename    string
	Keywords    []string
	UploadedAt  time.Time
	ContentPath string
}

// KnowledgeEntry is a curated question/answer pair used for the
// fuzzy exact-question fallback.
type KnowledgeEntry struct {
	Id        ID
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnansweredQuery records a question the assistant could not answer.
type UnansweredQuery struct {
	Id      ID
	Query   string
	AskedAt time.Time
}

// RoleType identifies the author of a chat message.
type RoleType int

const (
	// RoleUser represents the human asking questions.
	RoleUser RoleType = iota + 1
	// RoleAssistant represents the assistant's replies.
	RoleAssistant
)

// ChatMessage is a single message in a chat session.
type ChatMessage struct {
	Role      RoleType
	Text      string
	Timestamp time.Time
}

// ChatSession is a persisted conversation. The session name is
// auto-generated from the first user message unless renamed.
type ChatSession struct {
	Id        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Messages  []ChatMessage
}

// MessageCount returns the number of messages in the session.
func (s *ChatSession) MessageCount() int {
	return len(s.Messages)
}

// Credentials holds the admin password hash (encoded together with its
// salt and parameters) and an optional hint shown on the login surface.
type Credentials struct {
	PasswordHash string
	PasswordHint string
}

// ResponseKind tags the shape of a Response.
type ResponseKind int

const (
	// ResponseText is a plain text reply.
	ResponseText ResponseKind = iota + 1
	// ResponseDocumentDownload names a single best-matching document.
	ResponseDocumentDownload
	// ResponseDocumentList carries a ranked list of documents.
	ResponseDocumentList
)

// Response is the single value produced per query. Exactly one shape is
// populated according to Kind; the presentation layer matches over it.
type Response struct {
	Kind      ResponseKind
	Message   string
	Document  *Document
	Documents []*Document
}

// TextResponse builds a plain text response.
func TextResponse(message string) *Response {
	return &Response{Kind: ResponseText, Message: message}
}

// DownloadResponse builds a single-document response.
func DownloadResponse(message string, doc *Document) *Response {
	return &Response{Kind: ResponseDocumentDownload, Message: message, Document: doc}
}

// ListResponse builds a document list response.
func ListResponse(message string, docs []*Document) *Response {
	return &Response{Kind: ResponseDocumentList, Message: message, Documents: docs}
}

// Intent is the coarse classification of a query.
type Intent int

const (
	// IntentUnknown routes to the knowledge-base fallback.
	IntentUnknown Intent = iota
	// IntentDocuments requests uploaded study material.
	IntentDocuments
	// IntentExam asks about exam dates.
	IntentExam
	// IntentFaculty asks about faculty.
	IntentFaculty
	// IntentSchedule asks about the class schedule.
	IntentSchedule
	// IntentEvents asks about events.
	IntentEvents
	// IntentMentalHealth asks for wellness support.
	IntentMentalHealth
	// IntentGreeting is a greeting or help request.
	IntentGreeting
	// IntentCategory targets a dynamically matched category by name.
	IntentCategory
)
