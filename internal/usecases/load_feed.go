package usecases

import (
	"context"

	"blogreader/pkg/log"
)

// LoadFeedUseCase fetches the article list and replaces the engagement
// store's collection with it.
type LoadFeedUseCase struct {
	api   ArticleAPI
	store EngagementStore
}

// NewLoadFeedUseCase creates a new LoadFeedUseCase.
func NewLoadFeedUseCase(api ArticleAPI, store EngagementStore) *LoadFeedUseCase {
	return &LoadFeedUseCase{api: api, store: store}
}

// Execute reloads the feed. On failure the store keeps its previous state.
func (uc *LoadFeedUseCase) Execute(ctx context.Context) error {
	articles, err := uc.api.ListArticles(ctx)
	if err != nil {
		log.ErrorCtx(ctx, "feed load failed", "error", err)
		return err
	}

	uc.store.Load(articles)
	log.DebugCtx(ctx, "feed loaded", "articles", len(articles))
	return nil
}
