package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/ranji790/SmartBuddy/core"
	"github.com/ranji790/SmartBuddy/storage"
)

// Pipeline copies uploaded study materials into a managed directory and
// registers their metadata. Bulk imports run on a worker pool.
type Pipeline struct {
	documents storage.DocumentRepository
	uploadDir string
	pool      *ants.Pool
	logger    *slog.Logger
	now       func() time.Time
}

// Request describes one document to ingest.
type Request struct {
	SourcePath  string
	DisplayName string
	Keywords    []string
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for bulk imports.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithClock sets the time source used for stored filename prefixes.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) error {
		if now == nil {
			now = time.Now
		}
		p.now = now
		return nil
	}
}

// NewPipeline creates a new document ingestion pipeline.
func NewPipeline(documents storage.DocumentRepository, uploadDir string, opts ...Option) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if uploadDir == "" {
		return nil, ErrUploadDirRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents: documents,
		uploadDir: uploadDir,
		pool:      pool,
		logger:    slog.Default(),
		now:       time.Now,
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest copies one file into the managed directory and registers it.
// The stored filename carries an upload timestamp prefix so repeated
// uploads of the same file never collide.
func (p *Pipeline) Ingest(ctx context.Context, req Request) (*core.Document, error) {
	if req.SourcePath == "" {
		return nil, ErrEmptySource
	}

	base := filepath.Base(req.SourcePath)
	displayName := req.DisplayName
	if displayName == "" {
		displayName = displayNameFor(base)
	}

	uploadedAt := p.now().UTC()
	stored := fmt.Sprintf("%s_%s", uploadedAt.Format("20060102_150405"), base)

	if err := os.MkdirAll(p.uploadDir, 0755); err != nil {
		return nil, err
	}
	target := filepath.Join(p.uploadDir, stored)
	if err := copyFile(req.SourcePath, target); err != nil {
		return nil, err
	}

	doc := &core.Document{
		DisplayName: displayName,
		Filename:    stored,
		Keywords:    core.NormalizeKeywords(req.Keywords),
		UploadedAt:  uploadedAt,
		ContentPath: target,
	}
	if err := core.ValidateDocument(doc); err != nil {
		os.Remove(target)
		return nil, err
	}

	added, err := p.documents.AddDocuments(ctx, doc)
	if err != nil {
		os.Remove(target)
		return nil, err
	}
	return added[0], nil
}

// IngestAll ingests a batch of files concurrently on the worker pool.
// Failed requests are logged and skipped; the successfully ingested
// documents are returned.
func (p *Pipeline) IngestAll(ctx context.Context, reqs []Request) []*core.Document {
	var (
		mu      sync.Mutex
		results []*core.Document
		wg      sync.WaitGroup
	)

	for _, req := range reqs {
		req := req
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			doc, err := p.Ingest(ctx, req)
			if err != nil {
				p.logger.Error("error ingesting document", "source", req.SourcePath, "err", err)
				return
			}
			mu.Lock()
			results = append(results, doc)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("error submitting ingest task", "source", req.SourcePath, "err", submitErr)
		}
	}

	wg.Wait()
	return results
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// displayNameFor derives a readable display name from a filename.
func displayNameFor(filename string) string {
	name := filename
	if idx := strings.Index(name, "."); idx > 0 {
		name = name[:idx]
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
