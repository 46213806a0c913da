package rag

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ducnh/vstore/internal/openai"
	"github.com/ducnh/vstore/internal/source"
)

const (
	// DefaultMaxChunkSize is the default max tokens per chunk.
	DefaultMaxChunkSize = 800

	// DefaultChunkOverlap is the default token overlap between chunks.
	DefaultChunkOverlap = 400

	// MinChunkSize and MaxChunkSize bound the provider-accepted chunk size.
	MinChunkSize = 100
	MaxChunkSize = 4096

	// uploadWorkers bounds concurrent uploads in UploadAndAddAll.
	uploadWorkers = 10

	// fileNameAttr is the attribute key carrying the original filename on
	// every attachment; name lookups key off it.
	fileNameAttr = "file_name"
)

// ValidateChunkParams checks the static chunking parameters against the
// provider's documented bounds: 100..4096 tokens per chunk, overlap at most
// half the chunk size.
func ValidateChunkParams(maxChunkSize, chunkOverlap int) error {
	if maxChunkSize < MinChunkSize || maxChunkSize > MaxChunkSize {
		return fmt.Errorf("max chunk size %d out of range [%d, %d]", maxChunkSize, MinChunkSize, MaxChunkSize)
	}
	if chunkOverlap < 0 {
		return fmt.Errorf("chunk overlap %d must not be negative", chunkOverlap)
	}
	if chunkOverlap > maxChunkSize/2 {
		return fmt.Errorf("chunk overlap %d cannot exceed half of chunk size %d", chunkOverlap, maxChunkSize)
	}
	return nil
}

// FileService manages file attachments within vector stores.
type FileService struct {
	backend Backend
	logger  *zap.Logger
}

// NewFileService creates a FileService. A nil logger is replaced with a
// no-op one.
func NewFileService(backend Backend, logger *zap.Logger) *FileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileService{backend: backend, logger: logger.Named("file")}
}

// UploadAndAdd resolves a local path or URL, uploads it, and attaches it to
// the store with the given attributes and static chunking parameters.
// An unreadable source fails before any provider call; a filename already
// attached to the store is refused.
func (s *FileService) UploadAndAdd(ctx context.Context, storeID, pathOrURL string, attrs map[string]string, maxChunkSize, chunkOverlap int) (*openai.StoreFile, error) {
	if err := ValidateChunkParams(maxChunkSize, chunkOverlap); err != nil {
		return nil, err
	}

	doc, err := source.Resolve(ctx, pathOrURL)
	if err != nil {
		return nil, err
	}

	if _, err := s.FindIDByName(ctx, storeID, doc.Name); err == nil {
		return nil, fmt.Errorf("%w: %q in store %s", ErrDuplicateFileName, doc.Name, storeID)
	} else if !openai.IsNotFound(err) {
		return nil, err
	}

	uploaded, err := s.backend.UploadFile(ctx, doc.Name, bytes.NewReader(doc.Content))
	if err != nil {
		return nil, err
	}
	s.logger.Info("uploaded file",
		zap.String("source", pathOrURL),
		zap.String("file_id", uploaded.ID),
		zap.Int64("bytes", doc.Size))

	merged := map[string]string{fileNameAttr: doc.Name}
	for k, v := range attrs {
		merged[k] = v
	}

	attached, err := s.backend.AttachFile(ctx, storeID, uploaded.ID,
		openai.StaticStrategy(maxChunkSize, chunkOverlap), merged)
	if err != nil {
		return nil, err
	}
	s.logger.Info("attached file to store",
		zap.String("store_id", storeID),
		zap.String("store_file_id", attached.ID),
		zap.String("status", attached.Status))
	return attached, nil
}

// UploadResult is the outcome of one source in a batch upload.
type UploadResult struct {
	Source      string `json:"source"`
	StoreFileID string `json:"store_file_id,omitempty"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

// UploadAndAddAll uploads multiple sources with bounded concurrency. One
// failing source does not abort the rest; each result reports its own
// outcome.
func (s *FileService) UploadAndAddAll(ctx context.Context, storeID string, sources []string, attrs map[string]string, maxChunkSize, chunkOverlap int) []UploadResult {
	results := make([]UploadResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadWorkers)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			attached, err := s.UploadAndAdd(gctx, storeID, src, attrs, maxChunkSize, chunkOverlap)
			if err != nil {
				results[i] = UploadResult{Source: src, Status: "failed", Error: err.Error()}
				return nil
			}
			results[i] = UploadResult{Source: src, StoreFileID: attached.ID, Status: "success"}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// List returns every file attached to the store.
func (s *FileService) List(ctx context.Context, storeID string) ([]openai.StoreFile, error) {
	return s.backend.ListFiles(ctx, storeID)
}

// FindIDByName finds an attachment id by its file_name attribute
// (case-insensitive). Zero matches is a not-found error; more than one is
// an ambiguous-match error naming the candidates.
func (s *FileService) FindIDByName(ctx context.Context, storeID, filename string) (string, error) {
	want := strings.ToLower(strings.TrimSpace(filename))

	files, err := s.backend.ListFiles(ctx, storeID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, f := range files {
		name := strings.ToLower(strings.TrimSpace(f.Attributes[fileNameAttr]))
		if name != "" && name == want {
			matches = append(matches, f.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: file %q in store %s", openai.ErrNotFound, filename, storeID)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousFileName, filename, strings.Join(matches, ", "))
	}
}

// UpdateAttrs updates the attributes of an attachment and verifies the
// provider applied every pair.
func (s *FileService) UpdateAttrs(ctx context.Context, storeID, fileID string, attrs map[string]string) error {
	updated, err := s.backend.UpdateFileAttributes(ctx, storeID, fileID, attrs)
	if err != nil {
		return err
	}
	for k, v := range attrs {
		if updated.Attributes[k] != v {
			return fmt.Errorf("%w: attribute %q on file %s", ErrNotConfirmed, k, fileID)
		}
	}
	s.logger.Info("updated file attributes",
		zap.String("store_id", storeID), zap.String("file_id", fileID))
	return nil
}

// Delete detaches a file from the store.
func (s *FileService) Delete(ctx context.Context, storeID, fileID string) error {
	deleted, err := s.backend.DeleteFile(ctx, storeID, fileID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: delete of file %s", ErrNotConfirmed, fileID)
	}
	s.logger.Info("deleted file",
		zap.String("store_id", storeID), zap.String("file_id", fileID))
	return nil
}

// SemanticRetrieve runs a similarity search against the store and returns
// the provider's ranked snippets without local re-ranking.
func (s *FileService) SemanticRetrieve(ctx context.Context, storeID, query string, topK int) (*openai.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	return s.backend.SearchStore(ctx, storeID, query, topK)
}
