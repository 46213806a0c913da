package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// newTestClient points a client at a test server with a short poll interval.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(
		WithAPIKey("sk-test"),
		WithBaseURL(srv.URL),
		WithPollInterval(5*time.Millisecond),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, 200, Store{ID: "vs_1", Name: "notes"})
	}))

	if _, err := client.GetStore(context.Background(), "vs_1"); err != nil {
		t.Fatalf("GetStore: %v", err)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want Bearer sk-test", gotAuth)
	}
}

func TestMissingAPIKeyFailsBeforeRequest(t *testing.T) {
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	client.apiKey = ""

	_, err := client.GetStore(context.Background(), "vs_1")
	if !IsAuthError(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if called {
		t.Error("no request should reach the server without a key")
	}
}

func TestListStoresFollowsPagination(t *testing.T) {
	var afters []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		after := r.URL.Query().Get("after")
		afters = append(afters, after)
		if after == "" {
			writeJSON(w, 200, map[string]any{
				"data":     []Store{{ID: "vs_1"}, {ID: "vs_2"}},
				"has_more": true,
				"last_id":  "vs_2",
			})
			return
		}
		writeJSON(w, 200, map[string]any{
			"data":     []Store{{ID: "vs_3"}},
			"has_more": false,
		})
	}))

	stores, err := client.ListStores(context.Background())
	if err != nil {
		t.Fatalf("ListStores: %v", err)
	}

	var ids []string
	for _, s := range stores {
		ids = append(ids, s.ID)
	}
	if diff := cmp.Diff([]string{"vs_1", "vs_2", "vs_3"}, ids); diff != "" {
		t.Errorf("store ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "vs_2"}, afters); diff != "" {
		t.Errorf("pagination cursors mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"unauthorized", 401, IsAuthError},
		{"forbidden", 403, IsAuthError},
		{"not found", 404, IsNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]any{
					"error": map[string]string{"message": "nope", "type": "invalid_request_error"},
				})
			}))
			_, err := client.GetStore(context.Background(), "vs_x")
			if !tt.check(err) {
				t.Errorf("status %d mapped to %v", tt.status, err)
			}
			if !strings.Contains(err.Error(), "nope") {
				t.Errorf("provider message lost: %v", err)
			}
		})
	}
}

func TestRateLimitRetriesThenSurfaces(t *testing.T) {
	hits := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, 429, map[string]any{"error": map[string]string{"message": "slow down"}})
	}))

	_, err := client.GetStore(context.Background(), "vs_1")
	if !IsRateLimited(err) {
		t.Fatalf("expected rate-limit error, got %v", err)
	}
	if hits != 2 {
		t.Errorf("got %d attempts, want 2 (one retry)", hits)
	}
}

func TestUploadFileSendsMultipart(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files" {
			t.Errorf("path = %s, want /files", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		if got := r.FormValue("purpose"); got != "assistants" {
			t.Errorf("purpose = %q, want assistants", got)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer f.Close()
		if header.Filename != "notes.md" {
			t.Errorf("filename = %q, want notes.md", header.Filename)
		}
		writeJSON(w, 200, FileObject{ID: "file_1", Filename: header.Filename})
	}))

	file, err := client.UploadFile(context.Background(), "notes.md", strings.NewReader("# hi\n"))
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if file.ID != "file_1" {
		t.Errorf("file id = %q, want file_1", file.ID)
	}
}

func TestAttachFilePollsUntilDone(t *testing.T) {
	polls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/vector_stores/vs_1/files":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["file_id"] != "file_1" {
				t.Errorf("file_id = %v, want file_1", body["file_id"])
			}
			if _, ok := body["chunking_strategy"]; !ok {
				t.Error("chunking_strategy missing from attach request")
			}
			writeJSON(w, 200, StoreFile{ID: "vsf_1", Status: "in_progress"})
		case r.Method == http.MethodGet && r.URL.Path == "/vector_stores/vs_1/files/vsf_1":
			polls++
			status := "in_progress"
			if polls >= 2 {
				status = "completed"
			}
			writeJSON(w, 200, StoreFile{ID: "vsf_1", Status: status})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(500)
		}
	}))

	file, err := client.AttachFile(context.Background(), "vs_1", "file_1",
		StaticStrategy(800, 400), map[string]string{"file_name": "notes.md"})
	if err != nil {
		t.Fatalf("AttachFile: %v", err)
	}
	if file.Status != "completed" {
		t.Errorf("status = %q, want completed", file.Status)
	}
	if polls != 2 {
		t.Errorf("got %d polls, want 2", polls)
	}
}

func TestAttachFileFailedProcessing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, StoreFile{
			ID:        "vsf_1",
			Status:    "failed",
			LastError: &FileError{Code: "invalid_file", Message: "unsupported encoding"},
		})
	}))

	_, err := client.AttachFile(context.Background(), "vs_1", "file_1", nil, nil)
	if !IsAPIError(err) {
		t.Fatalf("expected API error, got %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported encoding") {
		t.Errorf("provider failure reason lost: %v", err)
	}
}

func TestSearchStoreDefaultsLimit(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vector_stores/vs_1/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, 200, SearchResponse{Data: []SearchResult{{FileID: "f1", Score: 0.92}}})
	}))

	resp, err := client.SearchStore(context.Background(), "vs_1", "query", 0)
	if err != nil {
		t.Fatalf("SearchStore: %v", err)
	}
	if gotBody["query"] != "query" {
		t.Errorf("query = %v", gotBody["query"])
	}
	if int(gotBody["max_num_results"].(float64)) != DefaultSearchLimit {
		t.Errorf("max_num_results = %v, want %d", gotBody["max_num_results"], DefaultSearchLimit)
	}
	if len(resp.Data) != 1 {
		t.Errorf("got %d results", len(resp.Data))
	}
}

func TestDeleteStoreConfirmation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		writeJSON(w, 200, map[string]any{"id": "vs_1", "deleted": true})
	}))

	deleted, err := client.DeleteStore(context.Background(), "vs_1")
	if err != nil {
		t.Fatalf("DeleteStore: %v", err)
	}
	if !deleted {
		t.Error("expected deletion to be confirmed")
	}
}

func TestInvalidJSONResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))

	_, err := client.GetStore(context.Background(), "vs_1")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
