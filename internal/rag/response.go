package rag

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ducnh/vstore/internal/openai"
)

// DefaultInstructions is the guardrail prompt for RAG answers: answer only
// from retrieved snippets, never from outside knowledge.
const DefaultInstructions = "You are a helpful RAG assistant. " +
	"Only answer questions using information returned by the file_search tool. " +
	"If file_search returns no result or lacks enough information, reply only: 'No answer.' " +
	"Do not guess or use outside knowledge. " +
	"Keep your answers accurate, concise, and clearly structured in the language of the user."

// ResponseRAGService generates answers grounded in a vector store via the
// provider's file_search tool, optionally continuing a conversation.
type ResponseRAGService struct {
	backend Backend
	logger  *zap.Logger
}

// NewResponseRAGService creates a ResponseRAGService.
func NewResponseRAGService(backend Backend, logger *zap.Logger) *ResponseRAGService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseRAGService{backend: backend, logger: logger.Named("response")}
}

// AskOptions tune answer generation. Zero values fall back to defaults.
type AskOptions struct {
	Model          string
	TopK           int
	ScoreThreshold float64
	Instructions   string
	Metadata       map[string]string
}

// Citation is one source snippet backing an answer.
type Citation struct {
	FileID   string  `json:"file_id"`
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
	Quote    string  `json:"quote,omitempty"`
}

// Answer is a generated answer with its citations, exactly as the provider
// reported them.
type Answer struct {
	ResponseID     string     `json:"response_id"`
	ConversationID string     `json:"conversation_id,omitempty"`
	Text           string     `json:"text"`
	Citations      []Citation `json:"citations"`
}

// Ask sends the query into the conversation with a file_search tool scoped
// to the store. conversationID may be empty for a one-shot answer.
func (s *ResponseRAGService) Ask(ctx context.Context, storeID, conversationID, query string, opts AskOptions) (*Answer, error) {
	if storeID == "" {
		return nil, fmt.Errorf("store id must not be empty")
	}
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	tool := openai.Tool{
		Type:           "file_search",
		VectorStoreIDs: []string{storeID},
	}
	if opts.TopK > 0 {
		tool.MaxNumResults = opts.TopK
	}
	if opts.ScoreThreshold > 0 {
		tool.RankingOptions = &openai.RankingOptions{
			Ranker:         "auto",
			ScoreThreshold: opts.ScoreThreshold,
		}
	}

	model := opts.Model
	if model == "" {
		model = openai.DefaultModel
	}
	instructions := opts.Instructions
	if instructions == "" {
		instructions = DefaultInstructions
	}

	req := &openai.ResponseRequest{
		Model:        model,
		Input:        query,
		Instructions: instructions,
		Tools:        []openai.Tool{tool},
		Include:      []string{"file_search_call.results"},
		Metadata:     opts.Metadata,
	}
	if conversationID != "" {
		req.Conversation = &openai.ConversationRef{ID: conversationID}
	}

	resp, err := s.backend.CreateResponse(ctx, req)
	if err != nil {
		return nil, err
	}

	answer := &Answer{
		ResponseID:     resp.ID,
		ConversationID: conversationID,
		Text:           resp.OutputText(),
		Citations:      ExtractCitations(resp),
	}
	s.logger.Info("generated answer",
		zap.String("store_id", storeID),
		zap.String("response_id", resp.ID),
		zap.Int("citations", len(answer.Citations)))
	return answer, nil
}

// ExtractCitations collects file_search results across the response output,
// deduplicated by file id, keeping the provider's order and scores.
func ExtractCitations(resp *openai.Response) []Citation {
	seen := make(map[string]bool)
	var citations []Citation
	for _, r := range resp.FileSearchResults() {
		if r.FileID == "" || seen[r.FileID] {
			continue
		}
		seen[r.FileID] = true
		citations = append(citations, Citation{
			FileID:   r.FileID,
			Filename: r.Filename,
			Score:    r.Score,
			Quote:    r.Text,
		})
	}
	return citations
}

// Get fetches a response by id.
func (s *ResponseRAGService) Get(ctx context.Context, responseID string) (*openai.Response, error) {
	return s.backend.GetResponse(ctx, responseID)
}

// Cancel cancels an in-flight response. It reports whether the provider
// confirmed the cancellation.
func (s *ResponseRAGService) Cancel(ctx context.Context, responseID string) (bool, error) {
	resp, err := s.backend.CancelResponse(ctx, responseID)
	if err != nil {
		return false, err
	}
	cancelled := resp.Status == "cancelled"
	s.logger.Info("cancelled response",
		zap.String("id", responseID), zap.Bool("confirmed", cancelled))
	return cancelled, nil
}
