package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the default API base URL.
	BaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// RateLimit is the client-side request budget in requests per second.
	RateLimit = 3.0

	// ListPageLimit is the page size used when walking paginated lists.
	ListPageLimit = 100

	// DefaultSearchLimit is the default number of search results requested.
	DefaultSearchLimit = 10

	// DefaultModel is the model used for response generation when the
	// caller does not pick one.
	DefaultModel = "gpt-4o-mini"

	// attachPollInterval is how often an attachment is polled while the
	// provider chunks and embeds the file.
	attachPollInterval = 2 * time.Second

	// attachPollLimit caps how many status polls an attachment gets.
	attachPollLimit = 60
)

// Client is a rate-limited HTTP client for the vector store, file,
// conversation and response endpoints.
type Client struct {
	http         *resty.Client
	limiter      *rate.Limiter
	logger       *zap.Logger
	apiKey       string
	pollInterval time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithBaseURL sets a custom base URL (provider-compatible gateways, testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.http.SetBaseURL(url)
	}
}

// WithHTTPClient sets a custom underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		base := c.http.BaseURL
		c.http = newTransport(resty.NewWithClient(hc))
		c.http.SetBaseURL(base)
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger.Named("openai")
		}
	}
}

// WithPollInterval overrides the attachment poll interval (for testing).
func WithPollInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.pollInterval = d
	}
}

// newTransport applies the shared transport settings: timeout and a single
// retry on rate-limit or server errors. No further retry policy exists
// locally; everything else surfaces to the caller.
func newTransport(rc *resty.Client) *resty.Client {
	return rc.
		SetTimeout(DefaultTimeout).
		SetRetryCount(1).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return false
			}
			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= 500
		})
}

// NewClient creates a new API client. The API key is taken from
// OPENAI_API_KEY unless WithAPIKey overrides it.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http:         newTransport(resty.New()).SetBaseURL(BaseURL),
		limiter:      rate.NewLimiter(rate.Limit(RateLimit), 1),
		logger:       zap.NewNop(),
		apiKey:       os.Getenv("OPENAI_API_KEY"),
		pollInterval: attachPollInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// apiErrorBody is the wire shape of provider error responses.
type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *resty.Response) error {
	status := resp.StatusCode()
	if status < 400 {
		return nil
	}

	var body apiErrorBody
	_ = json.Unmarshal(resp.Body(), &body)
	msg := body.Error.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}

	switch {
	case status == 401 || status == 403:
		return fmt.Errorf("%w: status %d: %s", ErrAuthError, status, msg)
	case status == 429:
		return fmt.Errorf("%w: status %d: %s", ErrRateLimited, status, msg)
	default:
		return &APIError{
			StatusCode: status,
			Code:       body.Error.Code,
			Type:       body.Error.Type,
			Message:    msg,
		}
	}
}

// newRequest builds an authenticated request after passing the rate limiter.
func (c *Client) newRequest(ctx context.Context) (*resty.Request, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrAuthError)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return c.http.R().
		SetContext(ctx).
		SetAuthScheme("Bearer").
		SetAuthToken(c.apiKey), nil
}

// do executes a JSON request and decodes the result into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, query map[string]string, out any) error {
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()))

	if err := checkHTTPErrors(resp); err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("%w: decoding %s %s: %v", ErrInvalidResponse, method, path, err)
		}
	}
	return nil
}

// listAll walks a cursor-paginated collection and returns every element.
func listAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var all []T
	after := ""
	for {
		query := map[string]string{"limit": fmt.Sprint(ListPageLimit)}
		if after != "" {
			query["after"] = after
		}
		var page listPage[T]
		if err := c.do(ctx, http.MethodGet, path, nil, query, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
		if !page.HasMore || len(page.Data) == 0 {
			return all, nil
		}
		after = page.LastID
		if after == "" {
			return all, nil
		}
	}
}

// CreateStore creates a vector store with the given name.
func (c *Client) CreateStore(ctx context.Context, name string) (*Store, error) {
	var store Store
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/vector_stores", body, nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// ListStores returns every vector store visible to the credential.
func (c *Client) ListStores(ctx context.Context) ([]Store, error) {
	return listAll[Store](ctx, c, "/vector_stores")
}

// GetStore fetches a vector store by id.
func (c *Client) GetStore(ctx context.Context, storeID string) (*Store, error) {
	var store Store
	if err := c.do(ctx, http.MethodGet, "/vector_stores/"+storeID, nil, nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// DeleteStore deletes a vector store. The returned bool reflects the
// provider's deletion confirmation.
func (c *Client) DeleteStore(ctx context.Context, storeID string) (bool, error) {
	var result deletedResult
	if err := c.do(ctx, http.MethodDelete, "/vector_stores/"+storeID, nil, nil, &result); err != nil {
		return false, err
	}
	return result.Deleted, nil
}

// UploadFile uploads file content with purpose "assistants" and returns the
// created file object.
func (c *Client) UploadFile(ctx context.Context, filename string, content io.Reader) (*FileObject, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetFileReader("file", filename, content).
		SetFormData(map[string]string{"purpose": "assistants"}).
		Post("/files")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	if err := checkHTTPErrors(resp); err != nil {
		return nil, err
	}

	var file FileObject
	if err := json.Unmarshal(resp.Body(), &file); err != nil {
		return nil, fmt.Errorf("%w: decoding file upload: %v", ErrInvalidResponse, err)
	}
	c.logger.Debug("uploaded file", zap.String("filename", filename), zap.String("id", file.ID))
	return &file, nil
}

// AttachFile attaches an uploaded file to a vector store and polls until the
// provider finishes (or fails) chunking and embedding it.
func (c *Client) AttachFile(ctx context.Context, storeID, fileID string, strategy *ChunkingStrategy, attrs map[string]string) (*StoreFile, error) {
	body := map[string]any{"file_id": fileID}
	if strategy != nil {
		body["chunking_strategy"] = strategy
	}
	if len(attrs) > 0 {
		body["attributes"] = attrs
	}

	var file StoreFile
	if err := c.do(ctx, http.MethodPost, "/vector_stores/"+storeID+"/files", body, nil, &file); err != nil {
		return nil, err
	}

	for polls := 0; file.Status == "in_progress"; polls++ {
		if polls >= attachPollLimit {
			return nil, fmt.Errorf("%w: file %s still processing after %d polls", ErrInvalidResponse, file.ID, polls)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
		var polled StoreFile
		if err := c.do(ctx, http.MethodGet, "/vector_stores/"+storeID+"/files/"+file.ID, nil, nil, &polled); err != nil {
			return nil, err
		}
		file = polled
	}

	if file.Status == "failed" {
		msg := "processing failed"
		if file.LastError != nil {
			msg = file.LastError.Message
		}
		return nil, &APIError{StatusCode: 400, Code: "file_processing_failed", Message: msg}
	}
	return &file, nil
}

// ListFiles returns every file attached to the store.
func (c *Client) ListFiles(ctx context.Context, storeID string) ([]StoreFile, error) {
	return listAll[StoreFile](ctx, c, "/vector_stores/"+storeID+"/files")
}

// UpdateFileAttributes replaces the attributes of an attached file.
func (c *Client) UpdateFileAttributes(ctx context.Context, storeID, fileID string, attrs map[string]string) (*StoreFile, error) {
	var file StoreFile
	body := map[string]any{"attributes": attrs}
	if err := c.do(ctx, http.MethodPost, "/vector_stores/"+storeID+"/files/"+fileID, body, nil, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile detaches a file from the store.
func (c *Client) DeleteFile(ctx context.Context, storeID, fileID string) (bool, error) {
	var result deletedResult
	if err := c.do(ctx, http.MethodDelete, "/vector_stores/"+storeID+"/files/"+fileID, nil, nil, &result); err != nil {
		return false, err
	}
	return result.Deleted, nil
}

// SearchStore runs a similarity search against the store and returns the
// provider's ranked snippets unchanged.
func (c *Client) SearchStore(ctx context.Context, storeID, query string, maxResults int) (*SearchResponse, error) {
	if maxResults <= 0 {
		maxResults = DefaultSearchLimit
	}
	body := map[string]any{
		"query":           query,
		"max_num_results": maxResults,
	}
	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, "/vector_stores/"+storeID+"/search", body, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateConversation creates a conversation with optional metadata.
func (c *Client) CreateConversation(ctx context.Context, metadata map[string]string) (*Conversation, error) {
	body := map[string]any{}
	if len(metadata) > 0 {
		body["metadata"] = metadata
	}
	var conv Conversation
	if err := c.do(ctx, http.MethodPost, "/conversations", body, nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetConversation fetches a conversation by id.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*Conversation, error) {
	var conv Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations/"+conversationID, nil, nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// UpdateConversation replaces a conversation's metadata.
func (c *Client) UpdateConversation(ctx context.Context, conversationID string, metadata map[string]string) (*Conversation, error) {
	var conv Conversation
	body := map[string]any{"metadata": metadata}
	if err := c.do(ctx, http.MethodPost, "/conversations/"+conversationID, body, nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// DeleteConversation deletes a conversation.
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) (bool, error) {
	var result deletedResult
	if err := c.do(ctx, http.MethodDelete, "/conversations/"+conversationID, nil, nil, &result); err != nil {
		return false, err
	}
	return result.Deleted, nil
}

// ListConversationItems returns up to limit timeline items of a conversation.
func (c *Client) ListConversationItems(ctx context.Context, conversationID string, limit int) ([]ConversationItem, error) {
	if limit <= 0 {
		limit = 50
	}
	query := map[string]string{"limit": fmt.Sprint(limit)}
	var page listPage[ConversationItem]
	if err := c.do(ctx, http.MethodGet, "/conversations/"+conversationID+"/items", nil, query, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// CreateResponse generates a model response.
func (c *Client) CreateResponse(ctx context.Context, req *ResponseRequest) (*Response, error) {
	var resp Response
	if err := c.do(ctx, http.MethodPost, "/responses", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetResponse fetches a response by id.
func (c *Client) GetResponse(ctx context.Context, responseID string) (*Response, error) {
	var resp Response
	if err := c.do(ctx, http.MethodGet, "/responses/"+responseID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelResponse cancels an in-flight response.
func (c *Client) CancelResponse(ctx context.Context, responseID string) (*Response, error) {
	var resp Response
	if err := c.do(ctx, http.MethodPost, "/responses/"+responseID+"/cancel", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
