package usecases

import (
	"context"

	"blogreader/internal/domain"
	"blogreader/pkg/log"
)

// LikeArticleUseCase issues the like mutation and applies the confirmed
// counter to the store. There is no optimistic update: the displayed count
// only ever reflects server-confirmed state.
type LikeArticleUseCase struct {
	api   ArticleAPI
	store EngagementStore
}

// NewLikeArticleUseCase creates a new LikeArticleUseCase.
func NewLikeArticleUseCase(api ArticleAPI, store EngagementStore) *LikeArticleUseCase {
	return &LikeArticleUseCase{api: api, store: store}
}

// Execute toggles the reader's like on an article. An unauthenticated
// session returns domain.ErrNotAuthenticated before any network call; the
// web layer turns that into a login redirect, not an error surface. On
// mutation failure prior state is left untouched.
func (uc *LikeArticleUseCase) Execute(ctx context.Context, sess Authenticator, articleID string) error {
	if !sess.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}

	update, err := uc.api.LikeArticle(ctx, articleID)
	if err != nil {
		log.ErrorCtx(ctx, "like mutation failed", "article_id", articleID, "error", err)
		return err
	}

	uc.store.ApplyLikeUpdate(articleID, update.NoOfLikes)
	return nil
}
