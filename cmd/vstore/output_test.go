package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ducnh/vstore/internal/config"
	"github.com/ducnh/vstore/internal/openai"
	"github.com/ducnh/vstore/internal/rag"
	"github.com/ducnh/vstore/internal/source"
)

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    map[string]string
		wantErr bool
	}{
		{"empty", nil, nil, false},
		{"single", []string{"k=v"}, map[string]string{"k": "v"}, false},
		{"multiple", []string{"a=1", "b=2"}, map[string]string{"a": "1", "b": "2"}, false},
		{"value with equals", []string{"url=https://x?a=b"}, map[string]string{"url": "https://x?a=b"}, false},
		{"empty value", []string{"k="}, map[string]string{"k": ""}, false},
		{"spaces trimmed", []string{" k = v "}, map[string]string{"k": "v"}, false},
		{"missing equals", []string{"novalue"}, nil, true},
		{"empty key", []string{"=v"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAttrs(tt.tokens)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAttrs(%v) error = %v, wantErr %v", tt.tokens, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseAttrs(%v) mismatch (-want +got):\n%s", tt.tokens, diff)
			}
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"missing key", config.ErrMissingAPIKey, ExitConfigError},
		{"invalid source", fmt.Errorf("wrap: %w", source.ErrInvalidSource), ExitSourceError},
		{"not found", fmt.Errorf("wrap: %w", openai.ErrNotFound), ExitNotFound},
		{"not found api", &openai.APIError{StatusCode: 404, Message: "gone"}, ExitNotFound},
		{"ambiguous name", fmt.Errorf("wrap: %w", rag.ErrAmbiguousFileName), ExitError},
		{"duplicate name", fmt.Errorf("wrap: %w", rag.ErrDuplicateFileName), ExitError},
		{"auth", fmt.Errorf("wrap: %w", openai.ErrAuthError), ExitAPIError},
		{"rate limited", fmt.Errorf("wrap: %w", openai.ErrRateLimited), ExitAPIError},
		{"server error", &openai.APIError{StatusCode: 500, Message: "boom"}, ExitAPIError},
		{"network", fmt.Errorf("wrap: %w", openai.ErrNetworkError), ExitAPIError},
		{"plain", errors.New("something else"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeForError(tt.err); got != tt.want {
				t.Errorf("exitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncateString("a very long string here", 10); got != "a very ..." {
		t.Errorf("got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("got %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("got %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9, "  ")
	want := "one two\n  three\n  four"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
	if got := wrapText("short", 20, ""); got != "short" {
		t.Errorf("short text should be unchanged, got %q", got)
	}
}
