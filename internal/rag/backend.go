// Package rag provides thin service façades over a hosted vector-store and
// retrieval-augmented-generation backend. All chunking, embedding and
// ranking happens remotely; these services only shape requests, enforce
// lookup semantics, and surface provider results unchanged.
package rag

import (
	"context"
	"io"

	"github.com/ducnh/vstore/internal/openai"
)

// Backend is the capability surface the services need from the remote
// provider. *openai.Client satisfies it; tests substitute a fake.
type Backend interface {
	CreateStore(ctx context.Context, name string) (*openai.Store, error)
	ListStores(ctx context.Context) ([]openai.Store, error)
	GetStore(ctx context.Context, storeID string) (*openai.Store, error)
	DeleteStore(ctx context.Context, storeID string) (bool, error)

	UploadFile(ctx context.Context, filename string, content io.Reader) (*openai.FileObject, error)
	AttachFile(ctx context.Context, storeID, fileID string, strategy *openai.ChunkingStrategy, attrs map[string]string) (*openai.StoreFile, error)
	ListFiles(ctx context.Context, storeID string) ([]openai.StoreFile, error)
	UpdateFileAttributes(ctx context.Context, storeID, fileID string, attrs map[string]string) (*openai.StoreFile, error)
	DeleteFile(ctx context.Context, storeID, fileID string) (bool, error)
	SearchStore(ctx context.Context, storeID, query string, maxResults int) (*openai.SearchResponse, error)

	CreateConversation(ctx context.Context, metadata map[string]string) (*openai.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*openai.Conversation, error)
	UpdateConversation(ctx context.Context, conversationID string, metadata map[string]string) (*openai.Conversation, error)
	DeleteConversation(ctx context.Context, conversationID string) (bool, error)
	ListConversationItems(ctx context.Context, conversationID string, limit int) ([]openai.ConversationItem, error)

	CreateResponse(ctx context.Context, req *openai.ResponseRequest) (*openai.Response, error)
	GetResponse(ctx context.Context, responseID string) (*openai.Response, error)
	CancelResponse(ctx context.Context, responseID string) (*openai.Response, error)
}
