// Package usecases wires the engagement flows: loading articles and
// comments, and the authenticated like/comment mutations that feed confirmed
// server state back into the engagement store.
package usecases

import (
	"context"

	"blogreader/internal/domain"
)

// ArticleAPI is the backend surface for article reads and the like mutation.
type ArticleAPI interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
	GetArticle(ctx context.Context, id string) (domain.Article, error)
	LikeArticle(ctx context.Context, articleID string) (domain.LikeUpdate, error)
}

// CommentAPI is the backend surface for comment reads and the comment
// mutation. The summary count and the full list travel on separate paths.
type CommentAPI interface {
	ListComments(ctx context.Context, articleID string) ([]domain.Comment, error)
	CommentCount(ctx context.Context, articleID string) (int, error)
	PostComment(ctx context.Context, articleID, content string) error
}

// AuthAPI exchanges credentials for a bearer token.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// MenuAPI fetches the navigation entries.
type MenuAPI interface {
	MainMenu(ctx context.Context) ([]domain.MenuItem, error)
}

// EngagementStore receives confirmed update events. Implemented by
// store.Store.
type EngagementStore interface {
	Load(articles []domain.Article)
	ApplyLikeUpdate(id string, noOfLikes int)
	ApplyCommentCountUpdate(id string, count int)
	ToggleCommentBox(id string)
}

// Authenticator is the session capability consulted before any mutation.
type Authenticator interface {
	IsAuthenticated() bool
}

// DocumentRenderer converts an article body to sanitized HTML.
type DocumentRenderer interface {
	Render(doc *domain.Document) (string, error)
}
