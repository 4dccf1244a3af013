// Package fixtures provides document and article payloads shared by tests.
package fixtures

import (
	"time"

	"blogreader/internal/domain"
)

// BasicDocument is a two-block document with a heading and a styled
// paragraph.
func BasicDocument() *domain.Document {
	return &domain.Document{
		Blocks: []domain.Block{
			{Key: "a1b2c", Text: "Getting Started", Type: "header-one"},
			{
				Key:  "d3e4f",
				Text: "Welcome to the blog, enjoy your stay.",
				Type: "unstyled",
				InlineStyleRanges: []domain.StyleRange{
					{Offset: 0, Length: 7, Style: "BOLD"},
				},
			},
		},
		EntityMap: map[string]domain.Entity{},
	}
}

// DocumentWithLink carries one LINK entity bound to part of the text.
func DocumentWithLink() *domain.Document {
	return &domain.Document{
		Blocks: []domain.Block{
			{
				Key:  "k9j8h",
				Text: "Read the docs here.",
				Type: "unstyled",
				EntityRanges: []domain.EntityRange{
					{Offset: 9, Length: 9, Key: 0},
				},
			},
		},
		EntityMap: map[string]domain.Entity{
			"0": {
				Type:       "LINK",
				Mutability: "MUTABLE",
				Data:       map[string]any{"url": "https://example.org/docs"},
			},
		},
	}
}

// DocumentMissingEntityMap has blocks but no entity map, as the backend
// sometimes sends it. A valid document, not a malformed one.
func DocumentMissingEntityMap() *domain.Document {
	return &domain.Document{
		Blocks: []domain.Block{
			{Key: "m1n2o", Text: "No entities in sight.", Type: "unstyled"},
		},
	}
}

// DocumentWithDanglingEntity references an entity key the map does not hold.
func DocumentWithDanglingEntity() *domain.Document {
	return &domain.Document{
		Blocks: []domain.Block{
			{
				Key:  "p5q6r",
				Text: "Broken link ahead.",
				Type: "unstyled",
				EntityRanges: []domain.EntityRange{
					{Offset: 0, Length: 6, Key: 4},
				},
			},
		},
		EntityMap: map[string]domain.Entity{},
	}
}

// DocumentWithScript carries a script tag in source text.
func DocumentWithScript() *domain.Document {
	return &domain.Document{
		Blocks: []domain.Block{
			{Key: "s7t8u", Text: `<script>alert("xss")</script> hello`, Type: "unstyled"},
		},
		EntityMap: map[string]domain.Entity{},
	}
}

// EmptyDocument has a single block carrying no text.
func EmptyDocument() *domain.Document {
	return &domain.Document{
		Blocks:    []domain.Block{{Key: "v9w0x", Text: "", Type: "unstyled"}},
		EntityMap: map[string]domain.Entity{},
	}
}

// Article returns a feed article with the given id and counters.
func Article(id string, noOfLikes, noOfComments int) domain.Article {
	posted := time.Date(2024, time.March, 14, 10, 30, 0, 0, time.UTC)
	return domain.Article{
		ID:           id,
		Title:        "Article " + id,
		Categories:   []string{"Tech"},
		DatePosted:   &posted,
		NoOfLikes:    noOfLikes,
		NoOfComments: noOfComments,
	}
}

// Comment returns a comment for the given article.
func Comment(id, articleID, content string) domain.Comment {
	return domain.Comment{
		ID:         id,
		ArticleID:  articleID,
		Content:    content,
		AuthorName: "Jane Doe",
		DatePosted: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
	}
}
