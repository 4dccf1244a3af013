package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"blogreader/internal/domain"
	"blogreader/internal/render"
	"blogreader/test/fixtures"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse rendered HTML: %v", err)
	}
	return doc
}

func TestRender_BasicDocument(t *testing.T) {
	// Arrange
	r := render.New(nil)

	// Act
	html, err := r.Render(fixtures.BasicDocument())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parseHTML(t, html)
	if got := doc.Find("h1").Text(); got != "Getting Started" {
		t.Errorf("h1: got %q, want %q", got, "Getting Started")
	}
	if got := doc.Find("p strong").Text(); got != "Welcome" {
		t.Errorf("strong: got %q, want %q", got, "Welcome")
	}
	if got := doc.Find("p").Text(); got != "Welcome to the blog, enjoy your stay." {
		t.Errorf("paragraph text: got %q", got)
	}
}

func TestRender_LinkEntity(t *testing.T) {
	// Arrange
	r := render.New(nil)

	// Act
	html, err := r.Render(fixtures.DocumentWithLink())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parseHTML(t, html)
	link := doc.Find("a")
	if got := link.Text(); got != "docs here" {
		t.Errorf("link text: got %q, want %q", got, "docs here")
	}
	if href, _ := link.Attr("href"); href != "https://example.org/docs" {
		t.Errorf("href: got %q, want %q", href, "https://example.org/docs")
	}
}

func TestRender_NilDocument_ReturnsEmptySentinel(t *testing.T) {
	// Arrange
	r := render.New(nil)

	// Act
	_, err := r.Render(nil)

	// Assert
	if !errors.Is(err, domain.ErrEmptyDocument) {
		t.Errorf("got %v, want ErrEmptyDocument", err)
	}
}

func TestRender_TextlessBlocks_ReturnsEmptySentinel(t *testing.T) {
	// Arrange
	r := render.New(nil)

	// Act
	html, err := r.Render(fixtures.EmptyDocument())

	// Assert
	if !errors.Is(err, domain.ErrEmptyDocument) {
		t.Errorf("got %v, want ErrEmptyDocument", err)
	}
	if html != "" {
		t.Errorf("expected no HTML for empty document, got %q", html)
	}
}

func TestRender_MissingEntityMap_EqualsExplicitEmptyMap(t *testing.T) {
	// Arrange
	r := render.New(nil)
	implicit := fixtures.DocumentMissingEntityMap()
	explicit := fixtures.DocumentMissingEntityMap()
	explicit.EntityMap = map[string]domain.Entity{}

	// Act
	fromImplicit, err1 := r.Render(implicit)
	fromExplicit, err2 := r.Render(explicit)

	// Assert
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if fromImplicit != fromExplicit {
		t.Errorf("missing entity map rendered differently:\n%q\nvs\n%q", fromImplicit, fromExplicit)
	}
}

func TestRender_DanglingEntityKey_DegradesToEmpty(t *testing.T) {
	// Arrange
	r := render.New(nil)

	// Act
	html, err := r.Render(fixtures.DocumentWithDanglingEntity())

	// Assert
	if !errors.Is(err, domain.ErrEmptyDocument) {
		t.Errorf("got %v, want ErrEmptyDocument", err)
	}
	if html != "" {
		t.Errorf("expected no HTML, got %q", html)
	}
}

func TestRender_Idempotent(t *testing.T) {
	// Arrange
	r := render.New(nil)
	doc := fixtures.DocumentWithLink()

	// Act
	first, err1 := r.Render(doc)
	second, err2 := r.Render(doc)

	// Assert
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("rendering is not idempotent:\n%q\nvs\n%q", first, second)
	}
}

func TestRender_ScriptInSourceText_NeverUnescaped(t *testing.T) {
	// Arrange
	r := render.New(nil)

	// Act
	html, err := r.Render(fixtures.DocumentWithScript())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("rendered HTML contains an unescaped script tag: %q", html)
	}
	if !strings.Contains(html, "hello") {
		t.Errorf("benign text was lost: %q", html)
	}
}

func TestRender_ListGrouping(t *testing.T) {
	// Arrange
	r := render.New(nil)
	doc := &domain.Document{
		Blocks: []domain.Block{
			{Key: "l1", Text: "first", Type: "unordered-list-item"},
			{Key: "l2", Text: "second", Type: "unordered-list-item"},
			{Key: "l3", Text: "after", Type: "unstyled"},
		},
		EntityMap: map[string]domain.Entity{},
	}

	// Act
	html, err := r.Render(doc)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed := parseHTML(t, html)
	if got := parsed.Find("ul").Length(); got != 1 {
		t.Errorf("ul count: got %d, want 1", got)
	}
	if got := parsed.Find("ul li").Length(); got != 2 {
		t.Errorf("li count: got %d, want 2", got)
	}
	if got := parsed.Find("p").Text(); got != "after" {
		t.Errorf("trailing paragraph: got %q, want %q", got, "after")
	}
}

func TestRender_OverlappingStyles_Deterministic(t *testing.T) {
	// Arrange
	r := render.New(nil)
	doc := &domain.Document{
		Blocks: []domain.Block{
			{
				Key:  "o1",
				Text: "bold and italic",
				Type: "unstyled",
				InlineStyleRanges: []domain.StyleRange{
					{Offset: 0, Length: 8, Style: "BOLD"},
					{Offset: 5, Length: 10, Style: "ITALIC"},
				},
			},
		},
		EntityMap: map[string]domain.Entity{},
	}

	// Act
	first, err := r.Render(doc)
	second, _ := r.Render(doc)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("overlapping styles rendered non-deterministically")
	}
	parsed := parseHTML(t, first)
	if got := parsed.Find("strong").Text(); got != "bold and" {
		t.Errorf("bold run: got %q, want %q", got, "bold and")
	}
	if got := parsed.Find("em").Text(); got != "and italic" {
		t.Errorf("italic run: got %q, want %q", got, "and italic")
	}
}

func TestExcerpt_TruncatesPlainText(t *testing.T) {
	// Arrange
	html := "<h1>Title</h1>\n<p>The quick brown fox jumps over the lazy dog.</p>\n"

	// Act
	short := render.Excerpt(html, 19)
	full := render.Excerpt(html, 500)

	// Assert
	if full != "Title The quick brown fox jumps over the lazy dog." {
		t.Errorf("full excerpt: got %q", full)
	}
	if short != "Title The quick bro…" {
		t.Errorf("short excerpt: got %q", short)
	}
}
