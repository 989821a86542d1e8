package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadDocument reads a document from disk and returns its cleaned plain
// text. HTML files (by extension or a sniffed html tag) are reduced to
// their visible text first; everything else is treated as plain text.
func ReadDocument(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document not found: %w", err)
		}
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}

	text := string(content)
	if looksLikeHTML(path, text) {
		text, err = ExtractHTMLText(strings.NewReader(text))
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}

	return CleanText(text), nil
}

func looksLikeHTML(path, content string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	head := strings.ToLower(content)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
