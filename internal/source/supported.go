package source

// Single source of truth for the formats the provider's file_search tool can
// index directly. If the provider updates support, update here and the rest
// of the pipeline will respect it.

var supportedExt = map[string]bool{
	".c":    true,
	".cpp":  true,
	".cs":   true,
	".css":  true,
	".doc":  true,
	".docx": true,
	".go":   true,
	".html": true,
	".java": true,
	".js":   true,
	".json": true,
	".md":   true,
	".pdf":  true,
	".php":  true,
	".pptx": true,
	".py":   true,
	".rb":   true,
	".sh":   true,
	".tex":  true,
	".ts":   true,
	".txt":  true,
}

var supportedMIME = map[string]bool{
	"text/x-c":          true,
	"text/x-c++":        true,
	"text/x-csharp":     true,
	"text/css":          true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/x-golang":   true,
	"text/html":       true,
	"text/x-java":     true,
	"text/javascript": true,
	"application/json": true,
	"text/markdown":    true,
	"application/pdf":  true,
	"text/x-php":       true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"text/x-python":        true,
	"text/x-script.python": true,
	"text/x-ruby":          true,
	"application/x-sh":     true,
	"text/x-tex":           true,
	"application/typescript": true,
	"text/plain":             true,
}

// IsSupportedExt reports whether the extension (with leading dot) is
// indexable by the file_search tool.
func IsSupportedExt(ext string) bool {
	return supportedExt[ext]
}

// IsSupportedMIME reports whether the MIME type (without parameters) is
// indexable by the file_search tool.
func IsSupportedMIME(mimeType string) bool {
	return supportedMIME[mimeType]
}
