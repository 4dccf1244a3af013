package web

import (
	"time"

	"blogreader/internal/domain"
	"blogreader/internal/usecases"
)

// EmptyArticlePlaceholder is shown when a body has no renderable content.
const EmptyArticlePlaceholder = "Empty Article"

const (
	dateLayout    = "02/01/2006" // en-IN style, as the reader UI displays dates
	excerptLength = 200
)

// ArticleSummary is the feed projection of one article.
type ArticleSummary struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Tags          []string `json:"tags"`
	DatePosted    string   `json:"datePosted,omitempty"`
	Excerpt       string   `json:"excerpt,omitempty"`
	NoOfLikes     int      `json:"noOfLikes"`
	NoOfComments  int      `json:"noOfComments"`
	Liked         bool     `json:"liked"`
	IsCommentOpen bool     `json:"isCommentOpen"`
}

// FeedView is the feed page projection.
type FeedView struct {
	Articles []ArticleSummary `json:"articles"`
	Version  uint64           `json:"version"`
}

// CommentView is one comment in the detail projection.
type CommentView struct {
	ID         string `json:"id"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
	DatePosted string `json:"datePosted"`
}

// ArticleDetailView is the detail page projection. Body carries sanitized
// HTML, or the placeholder text when the document is empty.
type ArticleDetailView struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Body          string        `json:"body"`
	IsEmpty       bool          `json:"isEmpty"`
	Tags          []string      `json:"tags"`
	DatePosted    string        `json:"datePosted,omitempty"`
	NoOfLikes     int           `json:"noOfLikes"`
	NoOfComments  int           `json:"noOfComments"`
	Liked         bool          `json:"liked"`
	IsCommentOpen bool          `json:"isCommentOpen"`
	Comments      []CommentView `json:"comments"`
}

func summarize(a domain.Article, excerpt string) ArticleSummary {
	return ArticleSummary{
		ID:            a.ID,
		Title:         a.Title,
		Tags:          tags(a),
		DatePosted:    formatDate(a.DatePosted),
		Excerpt:       excerpt,
		NoOfLikes:     a.NoOfLikes,
		NoOfComments:  a.NoOfComments,
		Liked:         a.Liked(),
		IsCommentOpen: a.IsCommentOpen,
	}
}

func detail(view usecases.ArticleView, stored domain.Article) ArticleDetailView {
	body := view.BodyHTML
	if view.Empty {
		body = EmptyArticlePlaceholder
	}

	comments := make([]CommentView, 0, len(view.Comments))
	for _, c := range view.Comments {
		comments = append(comments, CommentView{
			ID:         c.ID,
			AuthorName: c.AuthorName,
			Content:    c.Content,
			DatePosted: c.DatePosted.Format(dateLayout),
		})
	}

	return ArticleDetailView{
		ID:            view.Article.ID,
		Title:         view.Article.Title,
		Body:          body,
		IsEmpty:       view.Empty,
		Tags:          tags(view.Article),
		DatePosted:    formatDate(view.Article.DatePosted),
		NoOfLikes:     stored.NoOfLikes,
		NoOfComments:  stored.NoOfComments,
		Liked:         stored.Liked(),
		IsCommentOpen: stored.IsCommentOpen,
		Comments:      comments,
	}
}

// tags falls back to a single General tag when the article has no
// categories, matching the feed card's behavior.
func tags(a domain.Article) []string {
	if len(a.Categories) == 0 {
		return []string{"General"}
	}
	return a.Categories
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
