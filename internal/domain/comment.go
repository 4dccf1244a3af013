package domain

import "time"

// Comment represents a single comment attached to an article.
//
// The full comment list and the Article.NoOfComments counter travel on
// separate paths and may disagree until the next reload; neither is derived
// from the other.
type Comment struct {
	ID         string
	ArticleID  string
	Content    string
	AuthorName string // Display string derived from the comment author
	DatePosted time.Time
}
