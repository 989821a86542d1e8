package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"windows line endings", "Skills\r\n- Go\r\n- Docker", "Skills\n- Go\n- Docker"},
		{"collapses runs of spaces", "Built  a\tservice   in Go", "Built a service in Go"},
		{"caps blank lines", "Summary\n\n\n\n\nExperience", "Summary\n\nExperience"},
		{"trims surrounding whitespace", "  \n Experience \n  ", "Experience"},
		{"keeps bullet structure", "Requirements:\n  - Python\n  - Docker", "Requirements:\n- Python\n- Docker"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

const jobHTML = `<!DOCTYPE html>
<html>
<head><title>Senior Backend Engineer</title><style>body { color: red }</style></head>
<body>
<nav><a href="/">Home</a></nav>
<script>trackPageView()</script>
<h1>Senior Backend Engineer</h1>
<p>We build payment infrastructure.</p>
<h2>Requirements</h2>
<ul>
  <li>Python and Docker</li>
  <li>AWS experience</li>
</ul>
<footer>All rights reserved</footer>
</body>
</html>`

func TestExtractHTMLText(t *testing.T) {
	text, err := ExtractHTMLText(strings.NewReader(jobHTML))
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Backend Engineer")
	assert.Contains(t, text, "We build payment infrastructure.")
	assert.Contains(t, text, "- Python and Docker")
	assert.Contains(t, text, "- AWS experience")

	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "All rights reserved")
}

func TestExtractHTMLTextFallsBackToDocumentText(t *testing.T) {
	text, err := ExtractHTMLText(strings.NewReader(`<html><body><div>Go developer wanted</div></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "Go developer wanted", text)
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(plain, []byte("Skills\r\n- Go   and Docker\n"), 0o644))
	text, err := ReadDocument(plain)
	require.NoError(t, err)
	assert.Equal(t, "Skills\n- Go and Docker", text)

	html := filepath.Join(dir, "job.html")
	require.NoError(t, os.WriteFile(html, []byte(jobHTML), 0o644))
	text, err = ReadDocument(html)
	require.NoError(t, err)
	assert.Contains(t, text, "- Python and Docker")
	assert.NotContains(t, text, "trackPageView")
}

func TestReadDocumentSniffsHTMLWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posting")
	require.NoError(t, os.WriteFile(path, []byte(jobHTML), 0o644))

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Contains(t, text, "- AWS experience")
	assert.NotContains(t, text, "<li>")
}

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found")
}
