package source

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	stemSeparators = regexp.MustCompile(`[ .\-]+`)
	underscoreRuns = regexp.MustCompile(`_+`)
	nonExtChars    = regexp.MustCompile(`[^a-z0-9]+`)
)

// StandardizeFileName normalizes a filename: lowercase, spaces/dashes/inner
// dots in the stem become single underscores, only the final dot survives,
// and the extension is reduced to lowercase letters and digits. A name
// without an extension is an error, since the provider infers the format
// from it.
func StandardizeFileName(filename string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(filename))

	stem, ext := s, ""
	if i := strings.LastIndex(s, "."); i >= 0 {
		stem, ext = s[:i], s[i+1:]
	}

	stem = stemSeparators.ReplaceAllString(stem, "_")
	stem = underscoreRuns.ReplaceAllString(stem, "_")
	stem = strings.Trim(stem, "_")

	ext = nonExtChars.ReplaceAllString(ext, "")
	if ext == "" {
		return "", fmt.Errorf("filename %q is missing an extension", filename)
	}
	return stem + "." + ext, nil
}
