// Package source resolves local paths and URLs into named byte content
// ready for upload, validating type and size before any provider call.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
)

// ErrInvalidSource indicates the path or URL could not be read, or its
// content is not indexable. No remote provider call happens after it.
var ErrInvalidSource = errors.New("invalid source")

// MaxBytes is the hard cap for any source (50 MiB).
const MaxBytes = 50 << 20

const downloadTimeout = 60 * time.Second

// Document is resolved source content with a standardized name.
type Document struct {
	Name    string // standardized filename, extension included
	MIME    string // detected MIME type, parameters stripped
	Size    int64
	Content []byte
}

// IsURL reports whether s is an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Resolve reads a local path or downloads a URL into a Document. The true
// file type is sniffed from content, not trusted from the name.
func Resolve(ctx context.Context, pathOrURL string) (*Document, error) {
	if IsURL(pathOrURL) {
		return resolveURL(ctx, pathOrURL)
	}
	return resolveLocal(pathOrURL)
}

func resolveLocal(filePath string) (*Document, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidSource, filePath)
	}
	if info.Size() > MaxBytes {
		return nil, fmt.Errorf("%w: %s exceeds the %d byte cap", ErrInvalidSource, filePath, int64(MaxBytes))
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	return build(filepath.Base(filePath), content)
}

func resolveURL(ctx context.Context, rawURL string) (*Document, error) {
	resp, err := resty.New().
		SetTimeout(downloadTimeout).
		SetDoNotParseResponse(true).
		R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: downloading %s: %v", ErrInvalidSource, rawURL, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("%w: downloading %s: HTTP %d", ErrInvalidSource, rawURL, resp.StatusCode())
	}

	content, err := io.ReadAll(io.LimitReader(body, MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidSource, rawURL, err)
	}
	if len(content) > MaxBytes {
		return nil, fmt.Errorf("%w: %s exceeds the %d byte cap", ErrInvalidSource, rawURL, int64(MaxBytes))
	}

	return build(urlFilename(rawURL, resp.Header().Get("Content-Disposition")), content)
}

// urlFilename prefers the Content-Disposition filename, falling back to the
// last URL path segment.
func urlFilename(rawURL, disposition string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" {
			return base
		}
	}
	return "download"
}

// build sniffs the content type, reconciles the extension with the sniff,
// and rejects anything the file_search tool cannot index.
func build(rawName string, content []byte) (*Document, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidSource, rawName)
	}

	mtype := mimetype.Detect(content)
	mimeType := mtype.String()
	if base, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = base
	}

	ext := strings.ToLower(filepath.Ext(rawName))
	if ext == "" {
		ext = mtype.Extension()
		rawName += ext
	}
	if !IsSupportedExt(ext) && !IsSupportedMIME(mimeType) {
		return nil, fmt.Errorf("%w: %s has unsupported type %s", ErrInvalidSource, rawName, mimeType)
	}

	name, err := StandardizeFileName(rawName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}

	return &Document{
		Name:    name,
		MIME:    mimeType,
		Size:    int64(len(content)),
		Content: content,
	}, nil
}
