package usecases

import (
	"context"
	"strings"
	"sync"

	"blogreader/internal/domain"
	"blogreader/pkg/log"
)

// PostCommentUseCase submits comments and owns the comment-composer state
// machine: Closed --toggle--> Open --successful submit--> Closed. Both
// transitions are gated on authentication; an unauthenticated attempt never
// enters the state machine.
type PostCommentUseCase struct {
	api   CommentAPI
	store EngagementStore

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewPostCommentUseCase creates a new PostCommentUseCase.
func NewPostCommentUseCase(api CommentAPI, store EngagementStore) *PostCommentUseCase {
	return &PostCommentUseCase{
		api:      api,
		store:    store,
		inFlight: make(map[string]struct{}),
	}
}

// ToggleComposer flips the comment box for one article.
func (uc *PostCommentUseCase) ToggleComposer(sess Authenticator, articleID string) error {
	if !sess.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	uc.store.ToggleCommentBox(articleID)
	return nil
}

// Execute submits a comment.
//
// Empty content is rejected locally, with no network round trip. A second
// submission for the same article while one is in flight is refused rather
// than duplicated. On success the authoritative count is fetched fresh (the
// post response is never trusted for counters) and applied to the store,
// which also closes the composer. On failure the error carries the server's
// reason and the store is untouched, so the caller can keep the draft.
func (uc *PostCommentUseCase) Execute(ctx context.Context, sess Authenticator, articleID, content string) error {
	if !sess.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyComment
	}

	if !uc.begin(articleID) {
		log.WarnCtx(ctx, "double comment submit refused", "article_id", articleID)
		return domain.ErrCommentInFlight
	}
	defer uc.end(articleID)

	if err := uc.api.PostComment(ctx, articleID, content); err != nil {
		log.ErrorCtx(ctx, "comment mutation failed", "article_id", articleID, "error", err)
		return err
	}

	count, err := uc.api.CommentCount(ctx, articleID)
	if err != nil {
		// The post itself succeeded; a failed count refresh keeps prior
		// state until the next reload.
		log.WarnCtx(ctx, "comment count refresh failed", "article_id", articleID, "error", err)
		return nil
	}

	uc.store.ApplyCommentCountUpdate(articleID, count)
	return nil
}

func (uc *PostCommentUseCase) begin(articleID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[articleID]; busy {
		return false
	}
	uc.inFlight[articleID] = struct{}{}
	return true
}

func (uc *PostCommentUseCase) end(articleID string) {
	uc.mu.Lock()
	delete(uc.inFlight, articleID)
	uc.mu.Unlock()
}
