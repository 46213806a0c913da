// Package openai provides a client for the OpenAI vector store, file,
// conversation and response endpoints.
package openai

import "strings"

// Store represents a hosted vector store.
type Store struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status,omitempty"`
	CreatedAt  int64      `json:"created_at"`
	UsageBytes int64      `json:"usage_bytes,omitempty"`
	FileCounts FileCounts `json:"file_counts"`
}

// FileCounts summarizes file ingestion progress within a store.
type FileCounts struct {
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	Cancelled  int `json:"cancelled"`
	Total      int `json:"total"`
}

// FileObject is an uploaded file, prior to any store attachment.
type FileObject struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	Bytes     int64  `json:"bytes"`
	Purpose   string `json:"purpose,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// StoreFile is a file attachment within a vector store.
type StoreFile struct {
	ID               string            `json:"id"`
	VectorStoreID    string            `json:"vector_store_id,omitempty"`
	Status           string            `json:"status"`
	CreatedAt        int64             `json:"created_at,omitempty"`
	UsageBytes       int64             `json:"usage_bytes,omitempty"`
	Attributes       map[string]string `json:"attributes,omitempty"`
	ChunkingStrategy *ChunkingStrategy `json:"chunking_strategy,omitempty"`
	LastError        *FileError        `json:"last_error,omitempty"`
}

// FileError describes why a file attachment failed to process.
type FileError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ChunkingStrategy controls how the provider splits a file before embedding.
type ChunkingStrategy struct {
	Type   string          `json:"type"`
	Static *StaticChunking `json:"static,omitempty"`
}

// StaticChunking holds the parameters of a static chunking strategy.
type StaticChunking struct {
	MaxChunkSizeTokens int `json:"max_chunk_size_tokens"`
	ChunkOverlapTokens int `json:"chunk_overlap_tokens"`
}

// StaticStrategy builds a static chunking strategy from the given sizes.
func StaticStrategy(maxChunkSize, chunkOverlap int) *ChunkingStrategy {
	return &ChunkingStrategy{
		Type: "static",
		Static: &StaticChunking{
			MaxChunkSizeTokens: maxChunkSize,
			ChunkOverlapTokens: chunkOverlap,
		},
	}
}

// SearchResult is one ranked snippet from a vector store search.
type SearchResult struct {
	FileID     string            `json:"file_id"`
	Filename   string            `json:"filename"`
	Score      float64           `json:"score"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Content    []SearchContent   `json:"content"`
}

// SearchContent is one content part of a search result.
type SearchContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Text concatenates the textual content parts of a result.
func (r SearchResult) Text() string {
	var parts []string
	for _, c := range r.Content {
		if c.Type == "text" && c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// SearchResponse is the ranked result page of a vector store search.
type SearchResponse struct {
	SearchQuery []string       `json:"search_query,omitempty"`
	Data        []SearchResult `json:"data"`
	HasMore     bool           `json:"has_more,omitempty"`
}

// Conversation is a remote conversation resource.
type Conversation struct {
	ID        string            `json:"id"`
	CreatedAt int64             `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ConversationItem is one timeline entry (message or tool call) of a conversation.
type ConversationItem struct {
	ID      string           `json:"id"`
	Type    string           `json:"type"`
	Role    string           `json:"role,omitempty"`
	Status  string           `json:"status,omitempty"`
	Content []MessageContent `json:"content,omitempty"`
}

// MessageContent is one content part of a message item.
type MessageContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ResponseRequest is the request body for response generation.
type ResponseRequest struct {
	Model        string            `json:"model"`
	Input        string            `json:"input"`
	Instructions string            `json:"instructions,omitempty"`
	Conversation *ConversationRef  `json:"conversation,omitempty"`
	Tools        []Tool            `json:"tools,omitempty"`
	Include      []string          `json:"include,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// ConversationRef scopes a response to an existing conversation.
type ConversationRef struct {
	ID string `json:"id"`
}

// Tool configures a tool made available to response generation.
// Only file_search is used by this client.
type Tool struct {
	Type           string          `json:"type"`
	VectorStoreIDs []string        `json:"vector_store_ids,omitempty"`
	MaxNumResults  int             `json:"max_num_results,omitempty"`
	RankingOptions *RankingOptions `json:"ranking_options,omitempty"`
}

// RankingOptions tune file_search result ranking.
type RankingOptions struct {
	Ranker         string  `json:"ranker,omitempty"`
	ScoreThreshold float64 `json:"score_threshold,omitempty"`
}

// Response is a generated model response.
type Response struct {
	ID        string           `json:"id"`
	Status    string           `json:"status"`
	Model     string           `json:"model,omitempty"`
	CreatedAt int64            `json:"created_at,omitempty"`
	Output    []ResponseOutput `json:"output"`
}

// ResponseOutput is one output item of a response: a message or a
// file_search tool call with its retrieval results.
type ResponseOutput struct {
	ID      string             `json:"id,omitempty"`
	Type    string             `json:"type"`
	Status  string             `json:"status,omitempty"`
	Role    string             `json:"role,omitempty"`
	Content []MessageContent   `json:"content,omitempty"`
	Queries []string           `json:"queries,omitempty"`
	Results []FileSearchResult `json:"results,omitempty"`
}

// FileSearchResult is one retrieval hit inside a file_search tool call.
type FileSearchResult struct {
	FileID     string            `json:"file_id"`
	Filename   string            `json:"filename"`
	Score      float64           `json:"score"`
	Text       string            `json:"text,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// OutputText concatenates the text parts of all message outputs.
func (r *Response) OutputText() string {
	var parts []string
	for _, out := range r.Output {
		if out.Type != "message" {
			continue
		}
		for _, c := range out.Content {
			if c.Type == "output_text" && c.Text != "" {
				parts = append(parts, c.Text)
			}
		}
	}
	return strings.Join(parts, "\n")
}

// FileSearchResults flattens retrieval hits across all file_search calls.
func (r *Response) FileSearchResults() []FileSearchResult {
	var results []FileSearchResult
	for _, out := range r.Output {
		if out.Type == "file_search_call" {
			results = append(results, out.Results...)
		}
	}
	return results
}

// deletedResult is the wire shape of delete confirmations.
type deletedResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// listPage is a cursor-paginated list response.
type listPage[T any] struct {
	Data    []T    `json:"data"`
	HasMore bool   `json:"has_more"`
	LastID  string `json:"last_id,omitempty"`
}
