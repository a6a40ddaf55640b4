package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	badgerstore "github.com/ranji790/SmartBuddy/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func newTestPipeline(t *testing.T, opts ...Option) (*Pipeline, string) {
	t.Helper()
	repos, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	p, err := NewPipeline(repos.Documents, uploadDir, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)
	return p, uploadDir
}

func TestNewPipeline_Validation(t *testing.T) {
	repos, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	_, err = NewPipeline(nil, t.TempDir())
	assert.ErrorIs(t, err, ErrDocumentRepositoryRequired)

	_, err = NewPipeline(repos.Documents, "")
	assert.ErrorIs(t, err, ErrUploadDirRequired)
}

func TestIngest_CopiesAndRegisters(t *testing.T) {
	fixed := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	p, uploadDir := newTestPipeline(t, WithClock(func() time.Time { return fixed }))

	src := writeSourceFile(t, t.TempDir(), "dbms_unit1.pdf", "pdf bytes")

	doc, err := p.Ingest(context.Background(), Request{
		SourcePath:  src,
		DisplayName: "DBMS Unit 1",
		Keywords:    []string{"dbms", "database"},
	})
	require.NoError(t, err)

	assert.NotZero(t, doc.Id)
	assert.Equal(t, "DBMS Unit 1", doc.DisplayName)
	assert.Equal(t, "20260214_093000_dbms_unit1.pdf", doc.Filename)
	assert.Equal(t, []string{"dbms", "database"}, doc.Keywords)

	copied, err := os.ReadFile(filepath.Join(uploadDir, doc.Filename))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(copied))
}

func TestIngest_CanonicalizesKeywords(t *testing.T) {
	p, _ := newTestPipeline(t)

	src := writeSourceFile(t, t.TempDir(), "finals_guide.pdf", "x")

	doc, err := p.Ingest(context.Background(), Request{
		SourcePath: src,
		Keywords:   []string{" Semester Finals ", "EXAM", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"semester finals", "exam"}, doc.Keywords)
}

func TestIngest_DerivesDisplayName(t *testing.T) {
	p, _ := newTestPipeline(t)

	src := writeSourceFile(t, t.TempDir(), "operating-systems_notes.pdf", "x")

	doc, err := p.Ingest(context.Background(), Request{SourcePath: src})
	require.NoError(t, err)
	assert.Equal(t, "operating systems notes", doc.DisplayName)
}

func TestIngest_EmptySource(t *testing.T) {
	p, _ := newTestPipeline(t)

	_, err := p.Ingest(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestIngest_MissingSourceFile(t *testing.T) {
	p, _ := newTestPipeline(t)

	_, err := p.Ingest(context.Background(), Request{
		SourcePath: filepath.Join(t.TempDir(), "nope.pdf"),
	})
	assert.Error(t, err)
}

func TestIngestAll_Bulk(t *testing.T) {
	p, _ := newTestPipeline(t, WithPoolSize(4))
	srcDir := t.TempDir()

	reqs := []Request{
		{SourcePath: writeSourceFile(t, srcDir, "a.pdf", "a")},
		{SourcePath: writeSourceFile(t, srcDir, "b.pdf", "b")},
		{SourcePath: writeSourceFile(t, srcDir, "c.pdf", "c")},
		{SourcePath: filepath.Join(srcDir, "missing.pdf")}, // logged and skipped
	}

	docs := p.IngestAll(context.Background(), reqs)
	assert.Len(t, docs, 3)

	all, err := p.documents.GetAllDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
