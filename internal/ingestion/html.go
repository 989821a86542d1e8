package ingestion

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText reduces an HTML job posting to visible plain text.
// Script, style and navigation chrome are dropped; block elements become
// separate lines and list items keep a dash prefix so requirement bullets
// survive the conversion.
func ExtractHTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	var sb strings.Builder
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(sel) == "li" {
			sb.WriteString("- ")
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	// Fall back to the whole-document text when the posting uses no
	// recognizable block markup.
	if sb.Len() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}

	return strings.TrimSpace(sb.String()), nil
}
