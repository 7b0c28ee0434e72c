package textract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists file extensions the local tier can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// LocalExtractor recovers text with format-aware local parsing,
// dispatched on file extension.
type LocalExtractor struct{}

func (e *LocalExtractor) Name() string { return "local" }

func (e *LocalExtractor) Extract(ctx context.Context, doc Document) (Result, error) {
	ext := strings.ToLower(filepath.Ext(doc.Filename))

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = extractPDF(doc.Data)
	case ".docx":
		text, err = extractDOCX(doc.Data)
	case ".html", ".htm":
		text, err = extractHTML(doc.Data)
	case ".md", ".markdown":
		text, err = extractMarkdown(doc.Data)
	case ".txt":
		text = string(doc.Data)
	default:
		return Result{}, fmt.Errorf("unsupported file extension: %s", ext)
	}
	if err != nil {
		return Result{}, err
	}

	text = Clean(text)
	if text == "" {
		return Result{}, ErrInsufficient
	}
	return Result{Text: text, Backend: "local-" + strings.TrimPrefix(ext, ".")}, nil
}
