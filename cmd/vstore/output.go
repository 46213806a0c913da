package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ducnh/vstore/internal/config"
	"github.com/ducnh/vstore/internal/openai"
	"github.com/ducnh/vstore/internal/rag"
	"github.com/ducnh/vstore/internal/source"
)

// Constants for output formatting.
const (
	SnippetMaxLen  = 200 // Snippet truncation length in retrieval output
	NameColMaxLen  = 40  // Store/file name column width in list views
	QuoteMaxLen    = 160 // Citation quote truncation length
	AnswerWrapCols = 80  // Answer text wrap width in human output
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// on stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		enc.Encode(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitWithServiceError maps a service-layer error to its exit code and exits.
func exitWithServiceError(err error) {
	exitWithError(exitCodeForError(err), "%v", err)
}

// exitCodeForError maps errors from the service and client layers to exit
// codes. Order matters: not-found is checked before the generic API error
// classes.
func exitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrMissingAPIKey):
		return ExitConfigError
	case errors.Is(err, source.ErrInvalidSource):
		return ExitSourceError
	case openai.IsNotFound(err):
		return ExitNotFound
	case errors.Is(err, rag.ErrAmbiguousFileName),
		errors.Is(err, rag.ErrDuplicateFileName):
		return ExitError
	case openai.IsAuthError(err), openai.IsRateLimited(err), openai.IsAPIError(err),
		errors.Is(err, openai.ErrNetworkError), errors.Is(err, openai.ErrInvalidResponse):
		return ExitAPIError
	default:
		return ExitError
	}
}

// parseAttrs parses repeated key=value tokens into a map. A token without
// "=" or with an empty key is rejected.
func parseAttrs(tokens []string) (map[string]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed attribute %q (want key=value)", tok)
		}
		attrs[key] = strings.TrimSpace(value)
	}
	return attrs, nil
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// formatUnix renders a unix timestamp as a UTC date.
func formatUnix(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

// formatBytes formats bytes in a human-readable way.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// wrapText wraps text to the specified width with indentation on subsequent lines.
func wrapText(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= width {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n"+indent)
}

// printStoreTableHuman prints stores as an aligned table.
func printStoreTableHuman(stores []openai.Store) {
	if len(stores) == 0 {
		outputHuman("No stores found.\n")
		return
	}

	idWidth, nameWidth := len("ID"), len("NAME")
	for _, s := range stores {
		if len(s.ID) > idWidth {
			idWidth = len(s.ID)
		}
		name := truncateString(s.Name, NameColMaxLen)
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	outputHuman("%s  %s  %5s  CREATED\n", padRight("ID", idWidth), padRight("NAME", nameWidth), "FILES")
	for _, s := range stores {
		outputHuman("%s  %s  %5d  %s\n",
			padRight(s.ID, idWidth),
			padRight(truncateString(s.Name, NameColMaxLen), nameWidth),
			s.FileCounts.Total,
			formatUnix(s.CreatedAt))
	}
}

// printStoreHuman prints a single store detail view.
func printStoreHuman(s *openai.Store) {
	outputHuman("%s\n", s.ID)
	outputHuman("  Name: %s\n", s.Name)
	if s.Status != "" {
		outputHuman("  Status: %s\n", s.Status)
	}
	outputHuman("  Created: %s\n", formatUnix(s.CreatedAt))
	outputHuman("  Usage: %s\n", formatBytes(s.UsageBytes))
	outputHuman("  Files: %d total (%d completed, %d in progress, %d failed)\n",
		s.FileCounts.Total, s.FileCounts.Completed, s.FileCounts.InProgress, s.FileCounts.Failed)
}

// printFileTableHuman prints store files as an aligned table. The file_name
// attribute is the display name; files with no attributes show "-".
func printFileTableHuman(files []openai.StoreFile) {
	if len(files) == 0 {
		outputHuman("No files found.\n")
		return
	}

	idWidth := len("ID")
	for _, f := range files {
		if len(f.ID) > idWidth {
			idWidth = len(f.ID)
		}
	}

	outputHuman("%s  %-12s  NAME\n", padRight("ID", idWidth), "STATUS")
	for _, f := range files {
		name := f.Attributes["file_name"]
		if name == "" {
			name = "-"
		}
		outputHuman("%s  %-12s  %s\n", padRight(f.ID, idWidth), f.Status, truncateString(name, NameColMaxLen))
	}
}

// printSnippetsHuman prints ranked retrieval snippets.
func printSnippetsHuman(results []openai.SearchResult) {
	if len(results) == 0 {
		outputHuman("No results.\n")
		return
	}
	for i, r := range results {
		outputHuman("%d. [%.3f] %s (%s)\n", i+1, r.Score, r.Filename, r.FileID)
		text := strings.TrimSpace(r.Text())
		if text != "" {
			outputHuman("   %s\n", truncateString(text, SnippetMaxLen))
		}
		outputHuman("\n")
	}
}

// printAnswerHuman prints a generated answer with its citations.
func printAnswerHuman(ans *rag.Answer) {
	outputHuman("%s\n", wrapText(ans.Text, AnswerWrapCols, ""))
	if ans.ConversationID != "" {
		outputHuman("\nConversation: %s\n", ans.ConversationID)
	}
	outputHuman("Response: %s\n", ans.ResponseID)
	if len(ans.Citations) > 0 {
		outputHuman("\nSources:\n")
		for i, c := range ans.Citations {
			outputHuman("  %d. [%.3f] %s (%s)\n", i+1, c.Score, c.Filename, c.FileID)
			if c.Quote != "" {
				outputHuman("     %s\n", truncateString(strings.TrimSpace(c.Quote), QuoteMaxLen))
			}
		}
	}
}

// printConversationHuman prints a conversation detail view.
func printConversationHuman(c *openai.Conversation) {
	outputHuman("%s\n", c.ID)
	outputHuman("  Created: %s\n", formatUnix(c.CreatedAt))
	if len(c.Metadata) > 0 {
		outputHuman("  Metadata:\n")
		for k, v := range c.Metadata {
			outputHuman("    %s: %s\n", k, v)
		}
	}
}
