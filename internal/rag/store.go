package rag

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ducnh/vstore/internal/openai"
)

// StoreService manages the lifecycle of vector stores.
type StoreService struct {
	backend Backend
	logger  *zap.Logger
}

// NewStoreService creates a StoreService. A nil logger is replaced with a
// no-op one.
func NewStoreService(backend Backend, logger *zap.Logger) *StoreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreService{backend: backend, logger: logger.Named("store")}
}

var (
	nonStoreChars  = regexp.MustCompile(`[^a-z0-9_]+`)
	underscoreRun  = regexp.MustCompile(`_+`)
	embeddedDigits = regexp.MustCompile(`[0-9]+`)
)

// StandardizeStoreName normalizes a store name: lowercase, only [a-z0-9_],
// digits allowed only as one trailing run, underscore runs collapsed,
// leading/trailing underscores stripped.
//
//	"My Store"      -> "my_store"
//	"My-Store123"   -> "my_store123"
//	"1_mystore"     -> "mystore"
//	"my__store***5" -> "my_store5"
func StandardizeStoreName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonStoreChars.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")

	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	head, tail := s[:i], s[i:]

	head = embeddedDigits.ReplaceAllString(head, "")
	head = underscoreRun.ReplaceAllString(head, "_")
	head = strings.Trim(head, "_")
	if tail != "" {
		head = strings.TrimRight(head, "_")
	}

	out := underscoreRun.ReplaceAllString(head+tail, "_")
	return strings.Trim(out, "_")
}

// GetOrCreate returns the id of the store with the given name, creating it
// when absent. Calling it twice with the same name yields the same id; any
// race between concurrent creators is the provider's concern.
func (s *StoreService) GetOrCreate(ctx context.Context, name string) (string, error) {
	name = StandardizeStoreName(name)

	id, err := s.GetIDByName(ctx, name)
	if err == nil {
		s.logger.Info("reusing existing vector store",
			zap.String("name", name), zap.String("id", id))
		return id, nil
	}
	if !openai.IsNotFound(err) {
		return "", err
	}

	store, err := s.backend.CreateStore(ctx, name)
	if err != nil {
		return "", err
	}
	s.logger.Info("created vector store",
		zap.String("name", name), zap.String("id", store.ID))
	return store.ID, nil
}

// List returns every vector store visible to the credential.
func (s *StoreService) List(ctx context.Context) ([]openai.Store, error) {
	return s.backend.ListStores(ctx)
}

// Get fetches a store by id.
func (s *StoreService) Get(ctx context.Context, storeID string) (*openai.Store, error) {
	return s.backend.GetStore(ctx, storeID)
}

// GetIDByName finds a store id by exact name match (case-insensitive).
func (s *StoreService) GetIDByName(ctx context.Context, name string) (string, error) {
	want := strings.TrimSpace(name)
	stores, err := s.backend.ListStores(ctx)
	if err != nil {
		return "", err
	}
	for _, store := range stores {
		if strings.EqualFold(strings.TrimSpace(store.Name), want) {
			return store.ID, nil
		}
	}
	return "", fmt.Errorf("%w: vector store %q", openai.ErrNotFound, name)
}

// Delete removes a store. A missing id surfaces as a not-found error, and
// an unconfirmed deletion is an error rather than silent success.
func (s *StoreService) Delete(ctx context.Context, storeID string) error {
	deleted, err := s.backend.DeleteStore(ctx, storeID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: delete of store %s", ErrNotConfirmed, storeID)
	}
	s.logger.Info("deleted vector store", zap.String("id", storeID))
	return nil
}
