// Package inspect reports local file facts: size, content digest, line
// count, detected type, and page count for PDFs. It never touches the
// remote provider.
package inspect

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	ledongthuc "github.com/ledongthuc/pdf"
	"golang.org/x/crypto/blake2b"

	"github.com/ducnh/vstore/internal/source"
)

// Supported digest algorithms.
const (
	AlgoSHA256  = "sha256"
	AlgoBLAKE2b = "blake2b"
)

// Report is the result of inspecting a local file.
type Report struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	MIME      string `json:"mime"`
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
	Lines     int64  `json:"lines"`
	Pages     int    `json:"pages,omitempty"`
	Indexable bool   `json:"indexable"`
}

func newDigest(algo string) (hash.Hash, error) {
	switch algo {
	case AlgoSHA256, "":
		return sha256.New(), nil
	case AlgoBLAKE2b:
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("unknown digest algorithm %q", algo)
	}
}

// File inspects the file at path using the given digest algorithm
// (sha256 when empty).
func File(path, algo string) (*Report, error) {
	if algo == "" {
		algo = AlgoSHA256
	}
	digest, err := newDigest(algo)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrInvalidSource, err)
	}
	digest.Write(content)

	mimeType := mimetype.Detect(content).String()
	if base, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = base
	}
	ext := strings.ToLower(filepath.Ext(path))

	report := &Report{
		Path:      path,
		Name:      filepath.Base(path),
		SizeBytes: int64(len(content)),
		MIME:      mimeType,
		Algorithm: algo,
		Digest:    hex.EncodeToString(digest.Sum(nil)),
		Lines:     countLines(content),
		Indexable: source.IsSupportedExt(ext) || source.IsSupportedMIME(mimeType),
	}

	if mimeType == "application/pdf" {
		if pages, err := pdfPages(path); err == nil {
			report.Pages = pages
		}
	}
	return report, nil
}

// countLines counts text lines the way a line-by-line reader would: every
// newline ends a line, and trailing content without one still counts.
func countLines(content []byte) int64 {
	if len(content) == 0 {
		return 0
	}
	var lines int64
	for _, b := range content {
		if b == '\n' {
			lines++
		}
	}
	if content[len(content)-1] != '\n' {
		lines++
	}
	return lines
}

func pdfPages(path string) (int, error) {
	f, r, err := ledongthuc.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return r.NumPage(), nil
}
