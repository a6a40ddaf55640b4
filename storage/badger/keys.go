package badger

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ranji790/SmartBuddy/core"
)

// Key prefixes for different data types
const (
	synonymPrefix    = "synrec"
	infoRecordPrefix = "infrec"
	customPrefix     = "cusrec"
	documentPrefix   = "docrec"
	documentDateIdx  = "docrecd"
	documentIDSeq    = "docrecseq"
	knowledgePrefix  = "knorec"
	knowledgeIDSeq   = "knorecseq"
	unansweredPrefix = "unqrec"
	unansweredIDSeq  = "unqrecseq"
	sessionPrefix    = "sesrec"
	credentialsKey   = "autrec:creds"
)

// infoRecordSep separates the category name from the record key inside an
// info record key. Category names and record keys are free text, so a zero
// byte is the only safe separator.
const infoRecordSep = byte(0)

// makeSynonymKey generates a key for a synonym group by canonical term.
func makeSynonymKey(canonical string) []byte {
	return []byte(fmt.Sprintf("%s:%s", synonymPrefix, canonical))
}

// makeInfoRecordKey generates a key for a record inside a category.
// Format: prefix:category\x00key
func makeInfoRecordKey(category, key string) []byte {
	buf := make([]byte, 0, len(infoRecordPrefix)+1+len(category)+1+len(key))
	buf = append(buf, infoRecordPrefix...)
	buf = append(buf, ':')
	buf = append(buf, category...)
	buf = append(buf, infoRecordSep)
	buf = append(buf, key...)
	return buf
}

// makePartialInfoRecordKey generates the iteration prefix for one category.
func makePartialInfoRecordKey(category string) []byte {
	buf := make([]byte, 0, len(infoRecordPrefix)+1+len(category)+1)
	buf = append(buf, infoRecordPrefix...)
	buf = append(buf, ':')
	buf = append(buf, category...)
	buf = append(buf, infoRecordSep)
	return buf
}

// parseInfoRecordCategory extracts the category name from an info record key.
func parseInfoRecordCategory(key []byte) (string, bool) {
	prefix := []byte(infoRecordPrefix + ":")
	if !bytes.HasPrefix(key, prefix) {
		return "", false
	}
	rest := key[len(prefix):]
	idx := bytes.IndexByte(rest, infoRecordSep)
	if idx < 0 {
		return "", false
	}
	return string(rest[:idx]), true
}

// makeCustomKey generates a key for a custom category by name.
func makeCustomKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", customPrefix, name))
}

// parseCustomName extracts the custom category name from its key.
func parseCustomName(key []byte) (string, bool) {
	prefix := []byte(customPrefix + ":")
	if !bytes.HasPrefix(key, prefix) {
		return "", false
	}
	return string(key[len(prefix):]), true
}

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentDateKey generates a composite key for the upload-time index.
// Format: prefix:timestamp:id
func makeDocumentDateKey(uploadedAt time.Time, id core.ID) []byte {
	prefix := documentDateIdx + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(uploadedAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDocumentDateKey generates a partial key for ordered scans.
// Format: prefix:timestamp
func makePartialDocumentDateKey(uploadedAt time.Time) []byte {
	prefix := documentDateIdx + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(uploadedAt.UnixMicro()))
	return buf
}

// makeKnowledgeKey generates a key for a knowledge entry by ID.
// The ID is written in BigEndian so iteration follows insertion order.
func makeKnowledgeKey(id core.ID) []byte {
	return makeOrderedKey(knowledgePrefix, id)
}

// makeUnansweredKey generates a key for an unanswered query by ID.
// The ID is written in BigEndian so iteration follows insertion order.
func makeUnansweredKey(id core.ID) []byte {
	return makeOrderedKey(unansweredPrefix, id)
}

func makeOrderedKey(prefix string, id core.ID) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeSessionKey generates a key for a chat session by ID.
func makeSessionKey(sessionID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", sessionPrefix, sessionID))
}
