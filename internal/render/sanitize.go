package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips script-executing constructs (script tags, event-handler
// attributes, javascript: URLs) while keeping semantic markup: headings,
// emphasis, links, lists, blockquotes and code.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the display policy.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	return &Sanitizer{policy: p}
}

// Sanitize returns markup safe for direct injection.
func (s *Sanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}

// Excerpt extracts a plain-text preview from sanitized HTML, collapsing
// whitespace and truncating to at most max runes.
func Excerpt(sanitizedHTML string, max int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitizedHTML))
	if err != nil {
		return ""
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
