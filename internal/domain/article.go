// Package domain contains the core business entities and rules.
package domain

import "time"

// Article represents a single blog article as seen by the reader.
type Article struct {
	ID         string
	Title      string
	Body       *Document // Structured rich-text body, nil when the article has none
	Categories []string  // Ordered category names, possibly empty
	DatePosted *time.Time

	// Likes holds the user-id membership set sent by the backend. It drives
	// the liked/not-liked affordance only; the displayed count always comes
	// from NoOfLikes.
	Likes []string

	// NoOfLikes and NoOfComments are the display-authoritative counters.
	// They are never derived from Likes or from a loaded comment list.
	NoOfLikes    int
	NoOfComments int

	// IsCommentOpen is transient UI state (comment composer visibility).
	// It is never persisted and resets to false on every load.
	IsCommentOpen bool
}

// Liked reports whether the membership set suggests the reader already liked
// the article. Advisory only; see Likes.
func (a Article) Liked() bool {
	return len(a.Likes) > 0
}

// Clone returns a deep copy so callers can hand articles across view
// boundaries without sharing mutable slices.
func (a Article) Clone() Article {
	out := a
	if a.Categories != nil {
		out.Categories = append([]string(nil), a.Categories...)
	}
	if a.Likes != nil {
		out.Likes = append([]string(nil), a.Likes...)
	}
	if a.Body != nil {
		body := a.Body.Clone()
		out.Body = &body
	}
	return out
}
