package rag

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ducnh/vstore/internal/openai"
)

// ConversationService manages conversation resources. Each operation is a
// single remote call with no local state.
type ConversationService struct {
	backend Backend
	logger  *zap.Logger
}

// NewConversationService creates a ConversationService.
func NewConversationService(backend Backend, logger *zap.Logger) *ConversationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConversationService{backend: backend, logger: logger.Named("conversation")}
}

// Create creates a conversation with optional metadata and returns it.
func (s *ConversationService) Create(ctx context.Context, metadata map[string]string) (*openai.Conversation, error) {
	conv, err := s.backend.CreateConversation(ctx, metadata)
	if err != nil {
		return nil, err
	}
	s.logger.Info("created conversation", zap.String("id", conv.ID))
	return conv, nil
}

// Get fetches a conversation by id.
func (s *ConversationService) Get(ctx context.Context, conversationID string) (*openai.Conversation, error) {
	return s.backend.GetConversation(ctx, conversationID)
}

// Update replaces the conversation's metadata.
func (s *ConversationService) Update(ctx context.Context, conversationID string, metadata map[string]string) (*openai.Conversation, error) {
	return s.backend.UpdateConversation(ctx, conversationID, metadata)
}

// ListItems returns up to limit timeline items of a conversation.
func (s *ConversationService) ListItems(ctx context.Context, conversationID string, limit int) ([]openai.ConversationItem, error) {
	return s.backend.ListConversationItems(ctx, conversationID, limit)
}

// Delete removes a conversation.
func (s *ConversationService) Delete(ctx context.Context, conversationID string) error {
	deleted, err := s.backend.DeleteConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: delete of conversation %s", ErrNotConfirmed, conversationID)
	}
	s.logger.Info("deleted conversation", zap.String("id", conversationID))
	return nil
}
