package domain

import "errors"

var (
	// ErrEmptyDocument is returned when a document is nil, carries no text,
	// or is structurally unusable; the caller shows a placeholder instead of
	// rendered markup.
	ErrEmptyDocument = errors.New("document has no renderable content")

	// ErrArticleNotFound is returned when the backend has no article for the
	// requested id.
	ErrArticleNotFound = errors.New("article not found")

	// ErrNotAuthenticated is returned when a like or comment action is
	// attempted without a signed-in session. Not a failure: the web layer
	// answers it with a redirect to the login boundary.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired is returned when the backend rejects the session
	// credential. Global: the whole session is cleared, not just the one call.
	ErrSessionExpired = errors.New("session expired")

	// ErrEmptyComment is returned when a comment submission has no content.
	// Rejected locally, before any network round trip.
	ErrEmptyComment = errors.New("comment content is empty")

	// ErrCommentInFlight is returned when a comment for the same article is
	// already being submitted.
	ErrCommentInFlight = errors.New("comment submission already in flight")

	// ErrLoginFailed is returned when the backend rejects the credentials.
	ErrLoginFailed = errors.New("login failed")
)
